package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/nirps-collab/coauthors/internal/config"
	"github.com/nirps-collab/coauthors/internal/report"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved configuration",
	Long: `Show the resolved configuration: the config file path, the
spreadsheet ID and tab GIDs in effect, and the match score threshold.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	rep := report.NewTerminal()

	cfg, err := config.Load()
	if err != nil {
		rep.Errorf("error: %v\n", err)
		os.Exit(ExitConfigError)
	}

	rep.Printf("config file:          %s\n", config.Path())
	rep.Printf("sheet_id:             %s\n", cfg.SheetID)
	rep.Printf("papers_gid:           %s\n", cfg.PapersGID)
	rep.Printf("affiliations_gid:     %s\n", cfg.AffiliationsGID)
	rep.Printf("authors_gid:          %s\n", cfg.AuthorsGID)
	rep.Printf("extra_authors_gid:    %s\n", cfg.ExtraAuthorsGID)
	rep.Printf("acknowledgements_gid: %s\n", cfg.AcknowledgementsGID)
	rep.Printf("score_min:            %.0f\n", cfg.ScoreMin)

	return nil
}
