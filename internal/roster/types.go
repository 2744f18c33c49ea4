// Package roster holds the author, affiliation, acknowledgement and paper
// rosters loaded from the collaboration spreadsheet, plus their validation.
package roster

import (
	"fmt"
	"strings"
)

// Paper styles supported by the renderers.
const (
	StyleAJ    = "AJ"    // Astronomical Journal
	StyleAANDA = "AANDA" // Astronomy & Astrophysics
)

// AllowedStyles lists the accepted paper style tags.
var AllowedStyles = []string{StyleAJ, StyleAANDA}

// Person is one author roster entry. ShortName is the join key used by
// papers; Display is the full typeset name.
type Person struct {
	ShortName        string
	Display          string
	First            string
	Last             string
	ORCID            string   // Empty or XXXX-XXXX-XXXX-XXXX
	Email            string   // Empty when unknown
	Affiliations     []string // Affiliation short-codes, in display order
	Acknowledgements []string // Acknowledgement codes
}

// Affiliation is one institute roster entry.
type Affiliation struct {
	ShortName string
	Text      string // Full display text, ending with ", <Country>"
}

// Country returns the last comma-segment of the affiliation text.
// Validation checks the segment against the known country list.
func (a Affiliation) Country() (string, error) {
	idx := strings.LastIndex(a.Text, ",")
	if idx < 0 {
		return "", fmt.Errorf("affiliation %s has no country segment: %q", a.ShortName, a.Text)
	}
	country := strings.TrimSpace(a.Text[idx+1:])
	if country == "" {
		return "", fmt.Errorf("affiliation %s has an empty country segment: %q", a.ShortName, a.Text)
	}
	return country, nil
}

// Acknowledgement is a reusable acknowledgement template. Text may contain
// the {INITIALS} placeholder, substituted with contributing authors'
// initials at render time.
type Acknowledgement struct {
	Code string
	Text string
}

// InitialsPlaceholder is the substitution marker in acknowledgement templates.
const InitialsPlaceholder = "{INITIALS}"

// Paper is one entry of the papers tab.
type Paper struct {
	Key              string
	Style            string   // Upper-cased style tag
	Authors          []string // Person short-codes, in byline order
	Acknowledgements []string // Paper-level acknowledgement codes
	Program          string   // Optional program identifier
}

// Roster bundles the four loaded tables. It is built once per run and
// passed read-only to validation and rendering.
type Roster struct {
	People           []Person
	Affiliations     []Affiliation
	Acknowledgements []Acknowledgement
	Papers           []Paper
}

// FindPerson returns the person with the given short-code.
func (r *Roster) FindPerson(shortName string) (Person, bool) {
	for _, p := range r.People {
		if p.ShortName == shortName {
			return p, true
		}
	}
	return Person{}, false
}

// FindPaper returns the paper with the given key.
func (r *Roster) FindPaper(key string) (Paper, bool) {
	for _, p := range r.Papers {
		if p.Key == key {
			return p, true
		}
	}
	return Paper{}, false
}

// FindAffiliation returns the affiliation with the given short-code.
func (r *Roster) FindAffiliation(shortName string) (Affiliation, bool) {
	for _, a := range r.Affiliations {
		if a.ShortName == shortName {
			return a, true
		}
	}
	return Affiliation{}, false
}

// FindAcknowledgement returns the acknowledgement with the given code.
func (r *Roster) FindAcknowledgement(code string) (Acknowledgement, bool) {
	for _, a := range r.Acknowledgements {
		if a.Code == code {
			return a, true
		}
	}
	return Acknowledgement{}, false
}
