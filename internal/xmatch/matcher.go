// Package xmatch fuzzy-matches free-text co-author names against the
// canonical author roster. Matching is accent- and token-order-insensitive;
// an unmatched name degrades to a sentinel result rather than an error.
package xmatch

import (
	"sort"
	"strings"
	"unicode"

	"github.com/antzucaro/matchr"
	"golang.org/x/text/unicode/norm"

	"github.com/nirps-collab/coauthors/internal/roster"
)

// NoMatch is the sentinel short-code for names below the score threshold.
const NoMatch = "NO MATCH"

// DefaultScoreMin is the default acceptance threshold. A match is accepted
// only when its score is strictly greater than the threshold.
const DefaultScoreMin = 80.0

// Result is the outcome of matching one input name.
type Result struct {
	Input       string  // The external name as entered
	Author      string  // Best roster display name; wrapped "? ... ?" when unmatched
	ShortName   string  // Roster short-code, or NoMatch
	Score       float64 // Similarity in [0, 100]
	RosterIndex int     // Index of the best candidate in the roster slice
}

// Matched reports whether the result cleared the threshold.
func (r Result) Matched() bool {
	return r.ShortName != NoMatch
}

// Normalize lower-cases a name, strips diacritic marks, maps punctuation
// to spaces and collapses whitespace, so "Jürgen Müller" and
// "Muller, Jurgen" reduce to the same token set.
func Normalize(s string) string {
	s = strings.ToLower(s)
	decomposed := norm.NFD.String(s)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		switch {
		case unicode.Is(unicode.Mn, r):
			// Combining mark left over from decomposition; drop it.
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// TokenSortRatio scores the similarity of two strings in [0, 100],
// insensitive to token order: the whitespace-separated tokens of both
// sides are sorted alphabetically before the edit-distance comparison, so
// "Smith John" scores 100 against "John Smith".
func TokenSortRatio(a, b string) float64 {
	as := sortTokens(a)
	bs := sortTokens(b)
	if as == "" && bs == "" {
		return 100
	}
	dist := matchr.Levenshtein(as, bs)
	longest := len([]rune(as))
	if l := len([]rune(bs)); l > longest {
		longest = l
	}
	if longest == 0 {
		return 100
	}
	score := 100 * (1 - float64(dist)/float64(longest))
	if score < 0 {
		return 0
	}
	return score
}

func sortTokens(s string) string {
	tokens := strings.Fields(s)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

// Match scores every input name against the roster and returns one Result
// per input, in input order. The best-scoring roster entry wins; ties go
// to the first encountered. Scores at or below scoreMin yield the NoMatch
// sentinel with the candidate's name wrapped to flag the uncertainty.
// Match never fails: bad input degrades, it does not abort.
func Match(inputs []string, people []roster.Person, scoreMin float64) []Result {
	normalized := make([]string, len(people))
	for i, p := range people {
		normalized[i] = Normalize(p.Display)
	}

	results := make([]Result, 0, len(inputs))
	for _, input := range inputs {
		name := Normalize(input)

		best := -1
		bestScore := -1.0
		for i, candidate := range normalized {
			if score := TokenSortRatio(name, candidate); score > bestScore {
				bestScore = score
				best = i
			}
		}

		res := Result{Input: input, Score: bestScore, RosterIndex: best}
		if best < 0 {
			res.Score = 0
			res.Author = "? ?"
			res.ShortName = NoMatch
		} else if bestScore > scoreMin {
			res.Author = people[best].Display
			res.ShortName = people[best].ShortName
		} else {
			res.Author = "? " + people[best].Display + " ?"
			res.ShortName = NoMatch
		}
		results = append(results, res)
	}
	return results
}

// ParseNameList splits free-text input into candidate names: lines are
// joined, names are comma-separated, and anything shorter than two runes
// is discarded.
func ParseNameList(text string) []string {
	joined := strings.Join(strings.Fields(strings.ReplaceAll(text, "\n", " ")), " ")
	var names []string
	for _, part := range strings.Split(joined, ",") {
		name := strings.TrimSpace(part)
		if len([]rune(name)) > 1 {
			names = append(names, name)
		}
	}
	return names
}

// SortByRoster orders results by the roster index of their best candidate,
// a presentation concern layered on top of the matching itself. The sort
// is stable so equal indices keep input order.
func SortByRoster(results []Result) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].RosterIndex < results[j].RosterIndex
	})
}

// MinScore returns the lowest score across results, or 0 for none.
// Callers gate the merged short-code list on this clearing the threshold.
func MinScore(results []Result) float64 {
	if len(results) == 0 {
		return 0
	}
	minScore := results[0].Score
	for _, r := range results[1:] {
		if r.Score < minScore {
			minScore = r.Score
		}
	}
	return minScore
}
