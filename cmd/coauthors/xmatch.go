package main

import (
	"context"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nirps-collab/coauthors/internal/config"
	"github.com/nirps-collab/coauthors/internal/report"
	"github.com/nirps-collab/coauthors/internal/roster"
	"github.com/nirps-collab/coauthors/internal/xmatch"
)

var (
	xmatchScoreMin float64
	xmatchSort     bool
)

func init() {
	xmatchCmd.Flags().Float64Var(&xmatchScoreMin, "score-min", 0, "Minimum score for matching authors (default from config, 80)")
	xmatchCmd.Flags().BoolVar(&xmatchSort, "sort", false, "Order the output by roster last name")
	rootCmd.AddCommand(xmatchCmd)
}

var xmatchCmd = &cobra.Command{
	Use:   "xmatch",
	Short: "Fuzzy-match an external co-author list against the roster",
	Long: `Fuzzy-match an external co-author list against the roster.

Names are read from stdin, comma separated, possibly across several lines;
a blank line ends the input. Each name is matched accent- and word-order-
insensitively against the roster and reported with its score. When every
score clears the threshold, the merged short-code list is printed ready to
paste into the paper's author list cell.`,
	RunE: runXmatch,
}

func runXmatch(cmd *cobra.Command, args []string) error {
	rep := report.NewTerminal()

	cfg, err := config.Load()
	if err != nil {
		rep.Errorf("error: %v\n", err)
		os.Exit(ExitConfigError)
	}
	if err := cfg.Validate(); err != nil {
		rep.Errorf("error: %v\n", err)
		os.Exit(ExitConfigError)
	}

	scoreMin := xmatchScoreMin
	if scoreMin == 0 {
		scoreMin = cfg.ScoreMin
	}

	r, err := loadRoster(context.Background(), cfg, rep)
	if err != nil {
		rep.Errorf("error: %v\n", err)
		os.Exit(ExitDataError)
	}

	people := r.People
	if xmatchSort {
		people = append([]roster.Person(nil), people...)
		sort.SliceStable(people, func(i, j int) bool {
			return people[i].Last < people[j].Last
		})
	}

	rep.Printf("Enter the co-authors to match, comma separated and can be on multiple lines (empty line to finish):\n")
	text, err := readUntilBlank(rep)
	if err != nil {
		rep.Errorf("error: reading input: %v\n", err)
		os.Exit(ExitError)
	}
	names := xmatch.ParseNameList(text)
	if len(names) == 0 {
		rep.Printf("No names entered.\n")
		return nil
	}

	results := xmatch.Match(names, people, scoreMin)
	if xmatchSort {
		xmatch.SortByRoster(results)
	}

	for _, res := range results {
		color := report.Green
		if !res.Matched() {
			color = report.Red
		}
		rep.Colorf(color, "%-30s --> %-35s | %-16s (score: %.2f%%)\n",
			res.Input, res.Author, res.ShortName, res.Score)
	}

	rep.Printf("\n")
	rep.Rule()
	if xmatch.MinScore(results) > scoreMin {
		merged := make([]string, len(results))
		for i, res := range results {
			merged[i] = res.ShortName
		}
		rep.Printf("Merged short names: %s\n", strings.Join(merged, ","))
	} else {
		rep.Printf("Some authors were not matched with a score above %.0f%%.\n", scoreMin)
		rep.Printf("Please check the output and adjust the input if necessary.\n")
		rep.Rule()
	}

	return nil
}

// readUntilBlank collects prompt lines until a blank line or EOF.
func readUntilBlank(rep report.Reporter) (string, error) {
	var lines []string
	for {
		line, err := rep.Ask("")
		if err != nil {
			if err == io.EOF {
				break
			}
			return "", err
		}
		if strings.TrimSpace(line) == "" {
			break
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}
