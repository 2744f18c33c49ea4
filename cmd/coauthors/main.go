// Package main provides the coauthors CLI entry point.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "coauthors",
	Short: "Format collaboration co-author lists into journal LaTeX",
	Long: `coauthors turns the collaboration's shared author spreadsheet into
ready-to-paste LaTeX author blocks and acknowledgements.

The spreadsheet tabs (papers, affiliations, authors, acknowledgements) are
fetched as CSV, cross-checked, and rendered in the style the paper asks
for (AJ or A&A). A fuzzy matcher helps reconcile externally supplied
co-author lists against the canonical roster.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// A .env file may hold COAUTHORS_SHEET_ID; absence is fine.
		_ = godotenv.Load()
	},
}

func init() {
	rootCmd.Version = Version
}
