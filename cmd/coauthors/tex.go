package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nirps-collab/coauthors/internal/config"
	"github.com/nirps-collab/coauthors/internal/initials"
	"github.com/nirps-collab/coauthors/internal/render"
	"github.com/nirps-collab/coauthors/internal/report"
	"github.com/nirps-collab/coauthors/internal/roster"
)

func init() {
	rootCmd.AddCommand(texCmd)
}

var texCmd = &cobra.Command{
	Use:   "tex [paper-key]",
	Short: "Render the LaTeX author block and acknowledgements for a paper",
	Long: `Render the LaTeX author block and acknowledgements for a paper.

Usage:
  coauthors tex NIRPS-2026-01
  coauthors tex            (prompts for the paper)

The rendered output is printed and written to <paper-key>_coauthors.tex
in the current directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTex,
}

func runTex(cmd *cobra.Command, args []string) error {
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

	r, err := loadRoster(context.Background(), cfg, rep)
	if err != nil {
		rep.Errorf("error: %v\n", err)
		os.Exit(ExitDataError)
	}

	paper, err := selectPaper(r, args, rep)
	if err != nil {
		rep.Errorf("error: %v\n", err)
		os.Exit(ExitError)
	}

	authors, err := roster.AuthorsForPaper(paper, r)
	if err != nil {
		rep.Errorf("error: %v\n", err)
		os.Exit(ExitDataError)
	}

	names := make([]initials.Name, len(authors))
	for i, a := range authors {
		names[i] = initials.Name{First: a.First, Last: a.Last}
	}
	authorInitials, err := initials.Assign(names)
	if err != nil {
		var tooMany *initials.TooManyIterationsError
		if errors.As(err, &tooMany) {
			rep.Rule()
			rep.Errorf("error: %v\n", err)
			rep.Errorf("Please check the list of authors of paper %s\n", paper.Key)
			rep.Rule()
		} else {
			rep.Errorf("error: %v\n", err)
		}
		os.Exit(ExitDataError)
	}

	authorBlock, err := render.AuthorBlock(paper, authors, r)
	if err != nil {
		rep.Errorf("error: %v\n", err)
		os.Exit(ExitDataError)
	}
	ackBlock, err := render.Acknowledgements(paper, authors, authorInitials, r)
	if err != nil {
		rep.Errorf("error: %v\n", err)
		os.Exit(ExitDataError)
	}

	doc := render.Document(authorBlock, ackBlock)

	rep.Rule()
	rep.Printf("%s\n", doc)
	rep.Rule()
	rep.Printf("\tCo-author list for arXiv submission\n")
	rep.Rule()
	rep.Printf("%s\n", render.ArxivLine(authors))
	rep.Rule()
	rep.Printf("\tCo-author emails\n")
	rep.Rule()
	rep.Printf("%s\n", render.EmailLine(authors))
	rep.Rule()

	outPath := paper.Key + "_coauthors.tex"
	if err := os.WriteFile(outPath, []byte(doc), 0644); err != nil {
		rep.Errorf("error: writing %s: %v\n", outPath, err)
		os.Exit(ExitError)
	}
	rep.Printf("Wrote %s\n", outPath)

	return nil
}

// selectPaper resolves the paper from the command line, or lists the
// papers and prompts for a number when no key was given.
func selectPaper(r *roster.Roster, args []string, rep report.Reporter) (roster.Paper, error) {
	if len(args) == 1 {
		paper, ok := r.FindPaper(args[0])
		if !ok {
			return roster.Paper{}, fmt.Errorf("the paper *%s* is not in the papers list", args[0])
		}
		return paper, nil
	}

	rep.Printf("Select the paper for which you want the latex author list:\n")
	for i, p := range r.Papers {
		rep.Printf("[%d] %s\n", i+1, p.Key)
	}

	answer, err := rep.Ask("Enter the number of the paper: ")
	if err != nil {
		return roster.Paper{}, fmt.Errorf("reading selection: %w", err)
	}
	n, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil || n < 1 || n > len(r.Papers) {
		return roster.Paper{}, fmt.Errorf("the paper number %s is not in the list; select a number between 1 and %d", answer, len(r.Papers))
	}
	return r.Papers[n-1], nil
}
