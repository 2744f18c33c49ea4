package main

import (
	"context"
	"fmt"

	"github.com/nirps-collab/coauthors/internal/config"
	"github.com/nirps-collab/coauthors/internal/report"
	"github.com/nirps-collab/coauthors/internal/roster"
	"github.com/nirps-collab/coauthors/internal/sheet"
)

// loadRoster fetches every tab of the collaboration sheet, parses the
// rosters and runs full validation. Validation failures are printed
// through the reporter, all of them, before the aggregate error returns.
func loadRoster(ctx context.Context, cfg *config.Config, rep report.Reporter) (*roster.Roster, error) {
	client := sheet.NewClient(cfg.SheetID)

	rep.Printf("Fetching the list of papers...\n")
	papersTbl, err := client.FetchTab(ctx, "papers", cfg.PapersGID)
	if err != nil {
		return nil, err
	}

	rep.Printf("Fetching the list of affiliations...\n")
	affilTbl, err := client.FetchTab(ctx, "affiliations", cfg.AffiliationsGID)
	if err != nil {
		return nil, err
	}

	rep.Printf("Fetching the list of authors...\n")
	authorsTbl, err := client.FetchTab(ctx, "authors", cfg.AuthorsGID)
	if err != nil {
		return nil, err
	}

	// The second author group is optional; an empty GID disables it.
	if cfg.ExtraAuthorsGID != "" {
		rep.Printf("Fetching the list of authors [external]...\n")
		extraTbl, err := client.FetchTab(ctx, "authors-external", cfg.ExtraAuthorsGID)
		if err != nil {
			return nil, err
		}
		if err := sheet.CheckColumns(extraTbl, roster.AuthorColumns); err != nil {
			return nil, err
		}
		if err := authorsTbl.VStack(extraTbl); err != nil {
			return nil, err
		}
	}

	rep.Printf("Fetching the list of acknowledgements...\n")
	ackTbl, err := client.FetchTab(ctx, "acknowledgements", cfg.AcknowledgementsGID)
	if err != nil {
		return nil, err
	}

	r := &roster.Roster{}
	if r.Papers, err = roster.PapersFromTable(papersTbl); err != nil {
		return nil, err
	}
	if r.Affiliations, err = roster.AffiliationsFromTable(affilTbl); err != nil {
		return nil, err
	}
	if r.People, err = roster.PeopleFromTable(authorsTbl); err != nil {
		return nil, err
	}
	if r.Acknowledgements, err = roster.AcknowledgementsFromTable(ackTbl); err != nil {
		return nil, err
	}

	if errs := roster.Validate(r); len(errs) > 0 {
		rep.Rule()
		for _, e := range errs {
			rep.Errorf("error: %v\n", e)
		}
		rep.Rule()
		return nil, fmt.Errorf("the sheet failed validation with %d error(s)", len(errs))
	}

	return r, nil
}
