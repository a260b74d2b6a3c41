package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/viant/kdindex/engine"
	"github.com/viant/kdindex/kd"
	"github.com/viant/kdindex/pointset"
)

var queryCmd = &cobra.Command{
	Use:   "query <set> <coordinate>...",
	Short: "Find the stored point nearest to the given coordinates",
	Long: `Query loads a stored point set, builds a kd-tree over it, and
returns the index and coordinates of the point closest to the query.

Example:
  kdfind query cities 1.0 2.5`,
	Args: cobra.MinimumNArgs(2),
	RunE: runQuery,
}

func init() {
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	name := args[0]
	query := make(kd.Point, len(args)-1)
	for i, arg := range args[1:] {
		v, err := strconv.ParseFloat(arg, 32)
		if err != nil {
			return fmt.Errorf("invalid coordinate %q: %w", arg, err)
		}
		query[i] = float32(v)
	}

	db, err := engine.Open(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	store, err := pointset.NewSQLiteStore(db)
	if err != nil {
		return err
	}
	set, err := store.Load(cmd.Context(), name)
	if err != nil {
		return err
	}

	points := make([]kd.Point, len(set.Points))
	for i, p := range set.Points {
		points[i] = kd.Point(p)
	}
	tree, err := kd.New(points)
	if err != nil {
		return err
	}
	neighbor, err := tree.Nearest(query)
	if err != nil {
		return err
	}
	if neighbor == nil {
		fmt.Println("No result: set is empty")
		return nil
	}

	fmt.Printf("Nearest point: index %d, coordinates %v, distance %.6f\n",
		neighbor.Index, []float32(tree.Point(neighbor.Index)), neighbor.Distance)
	return nil
}
