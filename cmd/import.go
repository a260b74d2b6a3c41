package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/viant/kdindex/engine"
	"github.com/viant/kdindex/pointset"
)

var importCmd = &cobra.Command{
	Use:   "import <set> <file>",
	Short: "Import a coordinates file into a named point set",
	Long: `Import reads one point per line from a text file, coordinates
separated by whitespace, and stores them as a named set. Every line must
have the same number of coordinates. Importing to an existing set name
replaces the set.

Example:
  kdfind import cities ./cities.txt`,
	Args: cobra.ExactArgs(2),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	name, path := args[0], args[1]

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open coordinates file: %w", err)
	}
	defer f.Close()

	set := pointset.Set{Name: name}
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		coords := make([]float32, len(fields))
		for i, field := range fields {
			v, err := strconv.ParseFloat(field, 32)
			if err != nil {
				return fmt.Errorf("line %d: invalid coordinate %q: %w", line, field, err)
			}
			coords[i] = float32(v)
		}
		if len(set.Points) == 0 {
			set.Dims = len(coords)
		} else if len(coords) != set.Dims {
			return fmt.Errorf("line %d: %d coordinates, want %d", line, len(coords), set.Dims)
		}
		set.Points = append(set.Points, coords)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read coordinates file: %w", err)
	}
	if len(set.Points) == 0 {
		return fmt.Errorf("no points found in %s", path)
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
	if err := store.Save(cmd.Context(), set); err != nil {
		return err
	}

	fmt.Printf("Imported %d points (%d dimensions) into set %q\n", len(set.Points), set.Dims, name)
	return nil
}
