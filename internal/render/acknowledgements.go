package render

import (
	"fmt"
	"strings"

	"github.com/nirps-collab/coauthors/internal/roster"
)

// BadTemplateError reports an acknowledgement template that uses the
// {INITIALS} placeholder at paper scope, where it cannot be attributed to
// a subset of authors.
type BadTemplateError struct {
	Code string
}

func (e *BadTemplateError) Error() string {
	return fmt.Sprintf("acknowledgement %s: the template contains %s but is used for the entire paper; attribute it to authors instead",
		e.Code, roster.InitialsPlaceholder)
}

// Acknowledgements assembles the acknowledgement section for a paper:
// paper-level templates verbatim, then author-level templates grouped by
// code in first-seen order with contributing authors' initials substituted
// for the {INITIALS} placeholder. The initials slice is parallel to authors.
func Acknowledgements(paper roster.Paper, authors []roster.Person, authorInitials []string, r *roster.Roster) (string, error) {
	var b strings.Builder

	for _, code := range paper.Acknowledgements {
		ack, ok := r.FindAcknowledgement(code)
		if !ok {
			return "", &roster.UnknownReferenceError{Kind: "acknowledgement", Code: code, ReferencedBy: "paper " + paper.Key}
		}
		if strings.Contains(ack.Text, roster.InitialsPlaceholder) {
			return "", &BadTemplateError{Code: code}
		}
		b.WriteString(LinkURLs(ack.Text))
		b.WriteString("\\\\\n")
	}

	codes := uniqueAuthorAcknowledgements(authors)
	for i, code := range codes {
		ack, ok := r.FindAcknowledgement(code)
		if !ok {
			return "", &roster.UnknownReferenceError{Kind: "acknowledgement", Code: code, ReferencedBy: "the author roster"}
		}

		var who []string
		for j, author := range authors {
			if hasCode(author.Acknowledgements, code) {
				who = append(who, authorInitials[j])
			}
		}

		text := strings.ReplaceAll(LinkURLs(ack.Text), roster.InitialsPlaceholder, joinInitials(who))
		b.WriteString(text)
		if i != len(codes)-1 {
			b.WriteString("\\\\\n")
		}
	}

	return b.String(), nil
}

// uniqueAuthorAcknowledgements collects the distinct acknowledgement codes
// across the paper's authors, in first-seen order.
func uniqueAuthorAcknowledgements(authors []roster.Person) []string {
	seen := make(map[string]bool)
	var codes []string
	for _, author := range authors {
		for _, code := range author.Acknowledgements {
			if !seen[code] {
				seen[code] = true
				codes = append(codes, code)
			}
		}
	}
	return codes
}

func hasCode(codes []string, code string) bool {
	for _, c := range codes {
		if c == code {
			return true
		}
	}
	return false
}

// joinInitials joins initials with commas and an ampersand before the last
// entry: "AB, CD \& EF ". The trailing space separates the substitution
// from following text; the space-collapsing pass removes any double-up.
func joinInitials(initials []string) string {
	switch len(initials) {
	case 0:
		return ""
	case 1:
		return initials[0] + " "
	default:
		return strings.Join(initials[:len(initials)-1], ", ") + ` \& ` + initials[len(initials)-1] + " "
	}
}

// LinkURLs wraps URL tokens in acknowledgement text with \href. The link
// keeps its scheme but loses a trailing period; the display text drops the
// scheme and a leading doi.org/ prefix.
func LinkURLs(text string) string {
	if !strings.Contains(text, "http") {
		return text
	}
	words := strings.Split(text, " ")
	for i, word := range words {
		if !strings.Contains(word, "http") {
			continue
		}
		link := strings.TrimSuffix(word, ".")
		display := link
		if idx := strings.Index(display, "://"); idx >= 0 {
			display = display[idx+3:]
		}
		display = strings.TrimPrefix(display, "doi.org/")
		words[i] = `\href{` + link + `}{` + display + `}`
	}
	return strings.Join(words, " ")
}
