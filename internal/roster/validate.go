package roster

import (
	"fmt"
	"regexp"
)

// orcidPattern is the fixed ORCID shape: four dash-separated groups of four,
// the last digit may be X.
var orcidPattern = regexp.MustCompile(`^\d{4}-\d{4}-\d{4}-\d{3}[\dX]$`)

// Validate runs every cross-reference and format check over the roster and
// returns all failures. It does not stop at the first problem: the point is
// to report everything wrong with the source sheet in one pass. An empty
// slice means the roster is usable.
func Validate(r *Roster) []error {
	var errs []error

	errs = append(errs, checkDuplicateKeys(r)...)
	errs = append(errs, checkPeople(r)...)
	errs = append(errs, checkAffiliationCountries(r)...)
	errs = append(errs, checkPapers(r)...)

	return errs
}

// checkDuplicateKeys verifies short-code uniqueness within each roster.
func checkDuplicateKeys(r *Roster) []error {
	var errs []error

	seen := make(map[string]bool)
	for _, p := range r.People {
		if seen[p.ShortName] {
			errs = append(errs, &DuplicateKeyError{Kind: "author", Key: p.ShortName, Where: "the author list"})
		}
		seen[p.ShortName] = true
	}

	seen = make(map[string]bool)
	for _, a := range r.Affiliations {
		if seen[a.ShortName] {
			errs = append(errs, &DuplicateKeyError{Kind: "affiliation", Key: a.ShortName, Where: "the affiliation list"})
		}
		seen[a.ShortName] = true
	}

	seen = make(map[string]bool)
	for _, a := range r.Acknowledgements {
		if seen[a.Code] {
			errs = append(errs, &DuplicateKeyError{Kind: "acknowledgement", Key: a.Code, Where: "the acknowledgement list"})
		}
		seen[a.Code] = true
	}

	return errs
}

// checkPeople validates ORCID format and that every affiliation and
// acknowledgement code a person references resolves.
func checkPeople(r *Roster) []error {
	var errs []error
	for _, p := range r.People {
		if p.ORCID != "" && !orcidPattern.MatchString(p.ORCID) {
			errs = append(errs, &InvalidFormatError{Field: "ORCID", Value: p.ORCID, Owner: "author " + p.Display})
		}
		for _, code := range p.Affiliations {
			if _, ok := r.FindAffiliation(code); !ok {
				errs = append(errs, &UnknownReferenceError{Kind: "affiliation", Code: code, ReferencedBy: "author " + p.Display})
			}
		}
		for _, code := range p.Acknowledgements {
			if _, ok := r.FindAcknowledgement(code); !ok {
				errs = append(errs, &UnknownReferenceError{Kind: "acknowledgement", Code: code, ReferencedBy: "author " + p.Display})
			}
		}
	}
	return errs
}

// checkAffiliationCountries verifies that every affiliation text ends with
// a recognizable ", <Country>" segment. Malformed entries fail validation
// rather than silently yielding a wrong country.
func checkAffiliationCountries(r *Roster) []error {
	var errs []error
	for _, a := range r.Affiliations {
		country, err := a.Country()
		if err != nil {
			errs = append(errs, &InvalidFormatError{Field: "country", Value: a.Text, Owner: "affiliation " + a.ShortName})
			continue
		}
		if !IsCountry(country) {
			errs = append(errs, &InvalidFormatError{Field: "country", Value: country, Owner: "affiliation " + a.ShortName})
		}
	}
	return errs
}

// checkPapers validates each paper's style, author references and
// acknowledgement references.
func checkPapers(r *Roster) []error {
	var errs []error
	for _, paper := range r.Papers {
		if !allowedStyle(paper.Style) {
			errs = append(errs, &UnresolvedStyleError{Style: paper.Style, Paper: paper.Key})
		}

		seen := make(map[string]bool, len(paper.Authors))
		for _, code := range paper.Authors {
			where := fmt.Sprintf("paper %s", paper.Key)
			if code == "" {
				errs = append(errs, &UnknownReferenceError{Kind: "author", Code: "", ReferencedBy: where})
				continue
			}
			if seen[code] {
				errs = append(errs, &DuplicateKeyError{Kind: "author", Key: code, Where: "the author list of " + where})
				continue
			}
			seen[code] = true
			if _, ok := r.FindPerson(code); !ok {
				errs = append(errs, &UnknownReferenceError{Kind: "author", Code: code, ReferencedBy: where})
			}
		}

		for _, code := range paper.Acknowledgements {
			if _, ok := r.FindAcknowledgement(code); !ok {
				errs = append(errs, &UnknownReferenceError{Kind: "acknowledgement", Code: code, ReferencedBy: fmt.Sprintf("paper %s", paper.Key)})
			}
		}
	}
	return errs
}

func allowedStyle(style string) bool {
	for _, s := range AllowedStyles {
		if style == s {
			return true
		}
	}
	return false
}
