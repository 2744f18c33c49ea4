package render

import (
	"strings"

	"github.com/nirps-collab/coauthors/internal/roster"
)

// AuthorBlockAJ renders the Astronomical Journal style: one \author
// command per author (ORCID in brackets when present) followed by one
// \affiliation command per affiliation, in the author's listed order.
func AuthorBlockAJ(authors []roster.Person, r *roster.Roster) (string, error) {
	var b strings.Builder
	for _, author := range authors {
		b.WriteString(`\author`)
		if author.ORCID != "" {
			b.WriteString("[" + author.ORCID + "]")
		}
		b.WriteString("{" + author.Display + "}\n")

		for _, code := range author.Affiliations {
			affil, ok := r.FindAffiliation(code)
			if !ok {
				return "", &roster.UnknownReferenceError{Kind: "affiliation", Code: code, ReferencedBy: "author " + author.Display}
			}
			b.WriteString(`\affiliation{` + affil.Text + "}\n")
		}

		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n"), nil
}
