package cmd

import (
	"fmt"
	"os"

	"cafeapi/config"
	"cafeapi/database"
	"cafeapi/importer"
	"cafeapi/store"

	"github.com/spf13/cobra"
)

var sheetName string

var importCmd = &cobra.Command{
	Use:   "import <file.xlsx>",
	Short: "Import cafes from a spreadsheet",
	Long: `Import cafes from an Excel workbook. The first row names the columns:
name, map_url, img_url, location, seats, has_toilet, has_wifi, has_sockets,
can_take_calls and optionally coffee_price. Rows that are incomplete or name
an existing cafe are skipped and listed.

Examples:
  cafeapi import cafes.xlsx
  cafeapi import cafes.xlsx --sheet London`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runImport(cmd, args[0])
	},
}

func init() {
	importCmd.Flags().StringVar(&sheetName, "sheet", "", "Sheet to read (defaults to the first sheet)")
}

func runImport(cmd *cobra.Command, path string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	db, err := database.Open(cfg)
	if err != nil {
		return err
	}
	defer database.Close(db)

	report, err := importer.ImportXLSX(cmd.Context(), store.NewCafeStore(db), f, sheetName)
	if report != nil {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Imported %d cafes\n", report.Imported)
		for _, skipped := range report.Skipped {
			fmt.Fprintf(out, "  skipped %s\n", skipped)
		}
	}
	return err
}
