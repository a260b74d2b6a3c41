package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "kdfind",
	Short: "Store point sets and answer nearest-neighbor queries",
	Long: `kdfind manages named sets of fixed-dimensional points in a SQLite
database and answers exact nearest-neighbor queries against them with a
kd-tree.

Example usage:
  kdfind import cities ./cities.txt   # Import coordinates into a named set
  kdfind query cities 1.0 2.5         # Find the point closest to (1.0, 2.5)
  kdfind list                         # List stored sets`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "kdfind.db", "Path to SQLite database")
}
