package render

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/nirps-collab/coauthors/internal/roster"
)

func testRoster() *roster.Roster {
	return &roster.Roster{
		People: []roster.Person{
			{
				ShortName:    "fa",
				Display:      "First Author",
				ORCID:        "0000-0001-2345-6789",
				Email:        "first@x.org",
				Affiliations: []string{"x", "y"},
			},
			{
				ShortName:    "sa",
				Display:      "Second Author",
				Affiliations: []string{"x"},
			},
		},
		Affiliations: []roster.Affiliation{
			{ShortName: "x", Text: "Institute X, France"},
			{ShortName: "y", Text: "Institute Y, Chile"},
		},
	}
}

func TestOrderedAffiliations(t *testing.T) {
	r := testRoster()
	got := OrderedAffiliations(r.People)
	if want := []string{"x", "y"}; !reflect.DeepEqual(got, want) {
		t.Errorf("OrderedAffiliations() = %v, want %v", got, want)
	}

	// First-seen order follows the byline, not the roster.
	reversed := []roster.Person{r.People[1], r.People[0]}
	got = OrderedAffiliations(reversed)
	if want := []string{"x", "y"}; !reflect.DeepEqual(got, want) {
		t.Errorf("OrderedAffiliations(reversed) = %v, want %v", got, want)
	}
}

func TestAuthorBlockAJ(t *testing.T) {
	r := testRoster()

	got, err := AuthorBlockAJ(r.People, r)
	if err != nil {
		t.Fatalf("AuthorBlockAJ() error = %v", err)
	}

	want := strings.Join([]string{
		`\author[0000-0001-2345-6789]{First Author}`,
		`\affiliation{Institute X, France}`,
		`\affiliation{Institute Y, Chile}`,
		``,
		`\author{Second Author}`,
		`\affiliation{Institute X, France}`,
		``,
	}, "\n")
	if got != want {
		t.Errorf("AuthorBlockAJ() =\n%s\nwant\n%s", got, want)
	}
}

func TestAuthorBlockAJUnknownAffiliation(t *testing.T) {
	r := testRoster()
	authors := []roster.Person{{Display: "Ghost Author", Affiliations: []string{"zz"}}}

	_, err := AuthorBlockAJ(authors, r)
	var unknown *roster.UnknownReferenceError
	if !errors.As(err, &unknown) {
		t.Fatalf("AuthorBlockAJ() error = %T, want *roster.UnknownReferenceError", err)
	}
	if unknown.Code != "zz" {
		t.Errorf("UnknownReferenceError.Code = %q, want %q", unknown.Code, "zz")
	}
}

func TestAuthorBlockAANDA(t *testing.T) {
	r := testRoster()

	got, err := AuthorBlockAANDA(r.People, r)
	if err != nil {
		t.Fatalf("AuthorBlockAANDA() error = %v", err)
	}

	want := strings.Join([]string{
		`\author{`,
		`First Author\inst{1,2,*}\orcidlink{0000-0001-2345-6789},`,
		`Second Author\inst{1}`,
		`}`,
		``,
		`\institute{`,
		`\inst{1}Institute X, France\\`,
		`\inst{2}Institute Y, Chile\\`,
		`\inst{*}\email{first@x.org}`,
		`}`,
		``,
	}, "\n")
	if got != want {
		t.Errorf("AuthorBlockAANDA() =\n%s\nwant\n%s", got, want)
	}
}

// The numeric tags in the author lines must resolve, through the institute
// block, to exactly the affiliations each author declares.
func TestAuthorBlockAANDATagsRoundTrip(t *testing.T) {
	r := testRoster()

	block, err := AuthorBlockAANDA(r.People, r)
	if err != nil {
		t.Fatalf("AuthorBlockAANDA() error = %v", err)
	}

	tagText := make(map[string]string)
	for _, line := range strings.Split(block, "\n") {
		if !strings.HasPrefix(line, `\inst{`) || strings.Contains(line, `\email`) {
			continue
		}
		end := strings.Index(line, "}")
		tag := line[len(`\inst{`):end]
		tagText[tag] = strings.TrimSuffix(line[end+1:], `\\`)
	}

	for _, author := range r.People {
		start := strings.Index(block, author.Display+`\inst{`)
		if start < 0 {
			t.Fatalf("author %s has no tag list in:\n%s", author.Display, block)
		}
		rest := block[start+len(author.Display)+len(`\inst{`):]
		tags := strings.Split(rest[:strings.Index(rest, "}")], ",")

		var resolved []string
		for _, tag := range tags {
			if tag == "*" {
				continue
			}
			text, ok := tagText[tag]
			if !ok {
				t.Fatalf("tag %s of %s missing from the institute block", tag, author.Display)
			}
			resolved = append(resolved, text)
		}

		want := make([]string, len(author.Affiliations))
		for i, code := range author.Affiliations {
			affil, _ := r.FindAffiliation(code)
			want[i] = affil.Text
		}
		if !reflect.DeepEqual(resolved, want) {
			t.Errorf("%s resolves to %v, want %v", author.Display, resolved, want)
		}
	}
}

func TestAuthorBlockDispatch(t *testing.T) {
	r := testRoster()

	for _, style := range []string{roster.StyleAJ, roster.StyleAANDA} {
		paper := roster.Paper{Key: "p", Style: style}
		if _, err := AuthorBlock(paper, r.People, r); err != nil {
			t.Errorf("AuthorBlock(%s) error = %v", style, err)
		}
	}

	_, err := AuthorBlock(roster.Paper{Key: "p", Style: "MNRAS"}, r.People, r)
	var unresolved *roster.UnresolvedStyleError
	if !errors.As(err, &unresolved) {
		t.Errorf("AuthorBlock(MNRAS) error = %T, want *roster.UnresolvedStyleError", err)
	}
}

func TestArxivLine(t *testing.T) {
	authors := []roster.Person{
		{Display: "Jérôme Dupont"},
		{Display: "Alice Brown"},
	}
	got := ArxivLine(authors)
	want := `J\'er\^ome Dupont, Alice Brown`
	if got != want {
		t.Errorf("ArxivLine() = %q, want %q", got, want)
	}
}

func TestEmailLine(t *testing.T) {
	authors := []roster.Person{
		{Display: "First Author", Email: "first@x.org"},
		{Display: "Second Author"},
	}
	got := EmailLine(authors)
	want := "first@x.org, [Second Author]"
	if got != want {
		t.Errorf("EmailLine() = %q, want %q", got, want)
	}
}

func ExampleAuthorBlockAJ() {
	r := &roster.Roster{
		Affiliations: []roster.Affiliation{{ShortName: "x", Text: "Institute X, France"}},
	}
	authors := []roster.Person{{Display: "First Author", Affiliations: []string{"x"}}}
	block, _ := AuthorBlockAJ(authors, r)
	fmt.Println(block)
	// Output:
	// \author{First Author}
	// \affiliation{Institute X, France}
}
