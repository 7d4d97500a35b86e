package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd runs the HTTP server when no subcommand is given.
var rootCmd = &cobra.Command{
	Use:   "cafeapi",
	Short: "Cafe & Wifi API",
	Long: `A small JSON API over a table of cafes: random pick, list, search by
location, add and partial update. Configuration comes from the environment
or a .env file (PORT, DATABASE_PATH, GIN_MODE, ALLOWED_ORIGINS, DB_LOG_LEVEL).`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(importCmd)
}
