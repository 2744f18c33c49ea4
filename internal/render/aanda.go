package render

import (
	"fmt"
	"strings"

	"github.com/nirps-collab/coauthors/internal/roster"
)

// OrderedAffiliations returns the distinct affiliation codes across the
// given authors in first-seen order. The position in the slice (1-based)
// is the numeric tag used by the AANDA institute block.
func OrderedAffiliations(authors []roster.Person) []string {
	seen := make(map[string]bool)
	var ordered []string
	for _, author := range authors {
		for _, code := range author.Affiliations {
			if !seen[code] {
				seen[code] = true
				ordered = append(ordered, code)
			}
		}
	}
	return ordered
}

// AuthorBlockAANDA renders the Astronomy & Astrophysics style: a single
// \author block where each author carries the comma-joined numeric tags of
// their affiliations (the first author additionally the corresponding-author
// mark), followed by an \institute block listing tag/text pairs and the
// corresponding-author email line.
func AuthorBlockAANDA(authors []roster.Person, r *roster.Roster) (string, error) {
	ordered := OrderedAffiliations(authors)
	tag := make(map[string]int, len(ordered))
	for i, code := range ordered {
		tag[code] = i + 1
	}

	var b strings.Builder
	b.WriteString("\\author{\n")
	for i, author := range authors {
		tags := make([]string, 0, len(author.Affiliations)+1)
		for _, code := range author.Affiliations {
			tags = append(tags, fmt.Sprintf("%d", tag[code]))
		}
		if i == 0 {
			// Corresponding-author mark; resolved to the email line below.
			tags = append(tags, "*")
		}

		b.WriteString(author.Display)
		b.WriteString(`\inst{` + strings.Join(tags, ",") + "}")
		if author.ORCID != "" {
			b.WriteString(`\orcidlink{` + author.ORCID + "}")
		}
		if i != len(authors)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("}\n\n")

	b.WriteString("\\institute{\n")
	for i, code := range ordered {
		affil, ok := r.FindAffiliation(code)
		if !ok {
			return "", &roster.UnknownReferenceError{Kind: "affiliation", Code: code, ReferencedBy: "the institute block"}
		}
		b.WriteString(fmt.Sprintf(`\inst{%d}%s\\`, i+1, affil.Text))
		b.WriteString("\n")
	}
	if len(authors) > 0 {
		b.WriteString(`\inst{*}\email{` + authors[0].Email + "}\n")
	}
	b.WriteString("}\n")

	return b.String(), nil
}

// AuthorBlock renders the author block for the paper's style.
func AuthorBlock(paper roster.Paper, authors []roster.Person, r *roster.Roster) (string, error) {
	switch paper.Style {
	case roster.StyleAJ:
		return AuthorBlockAJ(authors, r)
	case roster.StyleAANDA:
		return AuthorBlockAANDA(authors, r)
	default:
		return "", &roster.UnresolvedStyleError{Style: paper.Style, Paper: paper.Key}
	}
}
