package render

import (
	"strings"

	"github.com/nirps-collab/coauthors/internal/roster"
)

// ArxivLine renders the one-line comma-joined author list used for the
// arXiv submission form, with accents converted to LaTeX escapes.
func ArxivLine(authors []roster.Person) string {
	names := make([]string, len(authors))
	for i, a := range authors {
		names[i] = a.Display
	}
	return LatexifyAccents(strings.Join(names, ", "))
}

// EmailLine renders the comma-joined co-author email list. Authors without
// an email show their display name in brackets so the gap is visible.
func EmailLine(authors []roster.Person) string {
	emails := make([]string, len(authors))
	for i, a := range authors {
		if a.Email == "" {
			emails[i] = "[" + a.Display + "]"
		} else {
			emails[i] = a.Email
		}
	}
	return strings.Join(emails, ", ")
}
