// Package initials derives short, globally unique per-author labels from
// first and last names. Labels attribute shared acknowledgements, so two
// authors may never end up with the same one.
package initials

import (
	"sort"
	"strings"
)

// DefaultMaxRounds bounds the widening loop. Collisions that survive this
// many rounds mean the last names themselves cannot disambiguate.
const DefaultMaxRounds = 10

// Name is the input to Assign: canonical first and last name of one author.
type Name struct {
	First string
	Last  string
}

// TooManyIterationsError reports that widening could not produce unique
// labels within the round cap. Labels holds the still-colliding labels.
type TooManyIterationsError struct {
	Labels []string
}

func (e *TooManyIterationsError) Error() string {
	return "too many iterations to find unique initials for coauthors " +
		strings.Join(e.Labels, "+")
}

// Assign computes one label per name, in input order, using the default
// round cap. All returned labels are pairwise distinct.
func Assign(names []Name) ([]string, error) {
	return AssignWithCap(names, DefaultMaxRounds)
}

// AssignWithCap is Assign with an explicit widening-round cap.
//
// Each author starts with a last-name width of 1. Every round regenerates
// all labels from the canonical names, scans the whole set pairwise for
// identical labels, and widens only the colliding authors. Widths never
// shrink, so the loop either converges or hits the cap.
func AssignWithCap(names []Name, maxRounds int) ([]string, error) {
	lasts := make([]string, len(names))
	for i, n := range names {
		lasts[i] = stripPrefix(n.Last)
	}

	widths := make([]int, len(names))
	for i := range widths {
		widths[i] = 1
	}

	labels := make([]string, len(names))
	for round := 0; ; round++ {
		for i, n := range names {
			labels[i] = firstToken(n.First) + lastToken(lasts[i], widths[i])
		}

		colliding := findCollisions(labels)
		if len(colliding) == 0 {
			return labels, nil
		}
		if round+1 >= maxRounds {
			return nil, &TooManyIterationsError{Labels: collidingLabels(labels, colliding)}
		}
		for i := range colliding {
			widths[i]++
		}
	}
}

// stripPrefix removes one leading "de " or "da " particle from a last name,
// case-insensitive. Only a single particle is removed.
func stripPrefix(last string) string {
	lower := strings.ToLower(last)
	for _, prefix := range []string{"de ", "da "} {
		if strings.HasPrefix(lower, prefix) {
			return last[len(prefix):]
		}
	}
	return last
}

// firstToken derives the first-name part of a label: the first letter of
// the name, or of every part for compound names. Space-separated parts are
// concatenated; hyphen-separated parts keep the hyphen.
func firstToken(first string) string {
	if strings.Contains(first, " ") {
		return joinFirstLetters(strings.Split(first, " "), "")
	}
	if strings.Contains(first, "-") {
		return joinFirstLetters(strings.Split(first, "-"), "-")
	}
	return firstLetter(first)
}

// lastToken derives the last-name part of a label at width w: the first w
// letters of the name, or of every part for compound names.
func lastToken(last string, w int) string {
	if strings.Contains(last, " ") {
		return joinPrefixes(strings.Split(last, " "), "", w)
	}
	if strings.Contains(last, "-") {
		return joinPrefixes(strings.Split(last, "-"), "-", w)
	}
	return runePrefix(last, w)
}

func joinFirstLetters(parts []string, sep string) string {
	letters := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		letters = append(letters, firstLetter(p))
	}
	return strings.Join(letters, sep)
}

func joinPrefixes(parts []string, sep string, w int) string {
	prefixes := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		prefixes = append(prefixes, runePrefix(p, w))
	}
	return strings.Join(prefixes, sep)
}

func firstLetter(s string) string {
	return runePrefix(s, 1)
}

// runePrefix returns the first n runes of s.
func runePrefix(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// findCollisions returns the index set of every label involved in at least
// one pairwise collision.
func findCollisions(labels []string) map[int]bool {
	byLabel := make(map[string][]int, len(labels))
	for i, l := range labels {
		byLabel[l] = append(byLabel[l], i)
	}
	colliding := make(map[int]bool)
	for _, idxs := range byLabel {
		if len(idxs) < 2 {
			continue
		}
		for _, i := range idxs {
			colliding[i] = true
		}
	}
	return colliding
}

// collidingLabels returns the distinct colliding labels, sorted for a
// stable error message.
func collidingLabels(labels []string, colliding map[int]bool) []string {
	seen := make(map[string]bool)
	var out []string
	for i := range labels {
		if colliding[i] && !seen[labels[i]] {
			seen[labels[i]] = true
			out = append(out, labels[i])
		}
	}
	sort.Strings(out)
	return out
}
