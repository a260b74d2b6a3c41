package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/viant/kdindex/engine"
	"github.com/viant/kdindex/pointset"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored point sets",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	db, err := engine.Open(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	store, err := pointset.NewSQLiteStore(db)
	if err != nil {
		return err
	}
	names, err := store.Names(cmd.Context())
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Println("No stored point sets")
		return nil
	}
	for _, name := range names {
		set, err := store.Load(cmd.Context(), name)
		if err != nil {
			return err
		}
		fmt.Printf("%s: %d points, %d dimensions\n", name, len(set.Points), set.Dims)
	}
	return nil
}
