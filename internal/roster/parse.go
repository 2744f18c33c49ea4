package roster

import (
	"fmt"
	"strings"

	"github.com/nirps-collab/coauthors/internal/sheet"
)

// Column contracts, one exact set per tab. CheckColumns enforces these
// before any row is interpreted.
var (
	PaperColumns = []string{"paper key", "STYLE", "ACKNOWLEDGEMENTS", "author list", "PROGRAM"}

	AffiliationColumns = []string{"SHORTNAME", "AFFILIATION"}

	AuthorColumns = []string{
		"AUTHOR",
		"Last Name",
		"First Name",
		"ORCID",
		"EMAIL",
		"SHORTNAME",
		"AFFILIATIONS",
		"ACKNOWLEDGEMENTS",
	}

	AcknowledgementColumns = []string{"ACKNOWLEDGEMENTS", "ACKNOWLEDGEMENTS_TEXT"}
)

// noneMarker is the sheet convention for "no value" in list and email cells.
const noneMarker = "0"

// splitList parses a comma-separated cell into codes. The "0" marker and
// empty cells yield nil; surrounding spaces are ignored.
func splitList(cell string) []string {
	cell = strings.ReplaceAll(cell, " ", "")
	if cell == "" || cell == noneMarker {
		return nil
	}
	return strings.Split(cell, ",")
}

// PeopleFromTable converts an authors tab into Person records.
func PeopleFromTable(t *sheet.Table) ([]Person, error) {
	if err := sheet.CheckColumns(t, AuthorColumns); err != nil {
		return nil, err
	}
	people := make([]Person, t.Len())
	for i := range people {
		email := t.Cell(i, "EMAIL")
		if email == noneMarker {
			email = ""
		}
		people[i] = Person{
			ShortName:        t.Cell(i, "SHORTNAME"),
			Display:          t.Cell(i, "AUTHOR"),
			First:            t.Cell(i, "First Name"),
			Last:             t.Cell(i, "Last Name"),
			ORCID:            t.Cell(i, "ORCID"),
			Email:            email,
			Affiliations:     splitList(t.Cell(i, "AFFILIATIONS")),
			Acknowledgements: splitList(t.Cell(i, "ACKNOWLEDGEMENTS")),
		}
	}
	return people, nil
}

// AffiliationsFromTable converts the affiliations tab.
func AffiliationsFromTable(t *sheet.Table) ([]Affiliation, error) {
	if err := sheet.CheckColumns(t, AffiliationColumns); err != nil {
		return nil, err
	}
	affils := make([]Affiliation, t.Len())
	for i := range affils {
		affils[i] = Affiliation{
			ShortName: t.Cell(i, "SHORTNAME"),
			Text:      t.Cell(i, "AFFILIATION"),
		}
	}
	return affils, nil
}

// AcknowledgementsFromTable converts the acknowledgements tab.
func AcknowledgementsFromTable(t *sheet.Table) ([]Acknowledgement, error) {
	if err := sheet.CheckColumns(t, AcknowledgementColumns); err != nil {
		return nil, err
	}
	acks := make([]Acknowledgement, t.Len())
	for i := range acks {
		acks[i] = Acknowledgement{
			Code: t.Cell(i, "ACKNOWLEDGEMENTS"),
			Text: t.Cell(i, "ACKNOWLEDGEMENTS_TEXT"),
		}
	}
	return acks, nil
}

// PapersFromTable converts the papers tab. Style tags are upper-cased here;
// validation rejects tags outside AllowedStyles.
func PapersFromTable(t *sheet.Table) ([]Paper, error) {
	if err := sheet.CheckColumns(t, PaperColumns); err != nil {
		return nil, err
	}
	papers := make([]Paper, t.Len())
	for i := range papers {
		program := t.Cell(i, "PROGRAM")
		if program == noneMarker {
			program = ""
		}
		papers[i] = Paper{
			Key:              t.Cell(i, "paper key"),
			Style:            strings.ToUpper(t.Cell(i, "STYLE")),
			Authors:          splitList(t.Cell(i, "author list")),
			Acknowledgements: splitList(t.Cell(i, "ACKNOWLEDGEMENTS")),
			Program:          program,
		}
	}
	return papers, nil
}

// AuthorsForPaper resolves a paper's author short-codes against the roster,
// preserving byline order. Unknown or duplicated codes return an error;
// Validate reports these ahead of time, so hitting one here means the
// roster was not validated.
func AuthorsForPaper(paper Paper, r *Roster) ([]Person, error) {
	seen := make(map[string]bool, len(paper.Authors))
	authors := make([]Person, 0, len(paper.Authors))
	for _, code := range paper.Authors {
		if seen[code] {
			return nil, &DuplicateKeyError{Kind: "author", Key: code, Where: fmt.Sprintf("the author list of paper %s", paper.Key)}
		}
		seen[code] = true
		p, ok := r.FindPerson(code)
		if !ok {
			return nil, &UnknownReferenceError{Kind: "author", Code: code, ReferencedBy: fmt.Sprintf("paper %s", paper.Key)}
		}
		authors = append(authors, p)
	}
	return authors, nil
}
