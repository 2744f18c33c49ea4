package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/nirps-collab/coauthors/internal/roster"
)

func ackRoster() *roster.Roster {
	return &roster.Roster{
		Acknowledgements: []roster.Acknowledgement{
			{Code: "k1", Text: "Thanks {INITIALS}for support."},
			{Code: "k2", Text: "Funded by grant 42 to {INITIALS}."},
			{Code: "kp", Text: "Based on observations at Observatory Z."},
		},
	}
}

func TestAcknowledgements(t *testing.T) {
	r := ackRoster()
	authors := []roster.Person{
		{Display: "A", Acknowledgements: []string{"k1"}},
		{Display: "B", Acknowledgements: []string{"k1"}},
		{Display: "C", Acknowledgements: []string{"k2"}},
	}
	initials := []string{"AA", "BB", "CC"}
	paper := roster.Paper{Key: "p", Acknowledgements: []string{"kp"}}

	got, err := Acknowledgements(paper, authors, initials, r)
	if err != nil {
		t.Fatalf("Acknowledgements() error = %v", err)
	}

	want := "Based on observations at Observatory Z.\\\\\n" +
		`Thanks AA \& BB for support.` + "\\\\\n" +
		`Funded by grant 42 to CC .`
	if got != want {
		t.Errorf("Acknowledgements() =\n%q\nwant\n%q", got, want)
	}
}

func TestAcknowledgementsPaperTemplateWithInitials(t *testing.T) {
	r := ackRoster()
	paper := roster.Paper{Key: "p", Acknowledgements: []string{"k1"}}

	_, err := Acknowledgements(paper, nil, nil, r)
	var bad *BadTemplateError
	if !errors.As(err, &bad) {
		t.Fatalf("Acknowledgements() error = %T, want *BadTemplateError", err)
	}
	if bad.Code != "k1" {
		t.Errorf("BadTemplateError.Code = %q, want %q", bad.Code, "k1")
	}
}

func TestAcknowledgementsUnknownCode(t *testing.T) {
	r := ackRoster()

	_, err := Acknowledgements(roster.Paper{Key: "p", Acknowledgements: []string{"nope"}}, nil, nil, r)
	var unknown *roster.UnknownReferenceError
	if !errors.As(err, &unknown) {
		t.Fatalf("paper-level: error = %T, want *roster.UnknownReferenceError", err)
	}

	authors := []roster.Person{{Display: "A", Acknowledgements: []string{"nope"}}}
	_, err = Acknowledgements(roster.Paper{Key: "p"}, authors, []string{"AA"}, r)
	if !errors.As(err, &unknown) {
		t.Fatalf("author-level: error = %T, want *roster.UnknownReferenceError", err)
	}
}

func TestAcknowledgementsEmpty(t *testing.T) {
	got, err := Acknowledgements(roster.Paper{Key: "p"}, nil, nil, ackRoster())
	if err != nil {
		t.Fatalf("Acknowledgements() error = %v", err)
	}
	if got != "" {
		t.Errorf("Acknowledgements() = %q, want empty", got)
	}
}

func TestJoinInitials(t *testing.T) {
	tests := []struct {
		in   []string
		want string
	}{
		{nil, ""},
		{[]string{"AB"}, "AB "},
		{[]string{"AB", "CD"}, `AB \& CD `},
		{[]string{"AB", "CD", "EF"}, `AB, CD \& EF `},
	}
	for _, tt := range tests {
		if got := joinInitials(tt.in); got != tt.want {
			t.Errorf("joinInitials(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLinkURLs(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "no url",
			in:   "Plain text only.",
			want: "Plain text only.",
		},
		{
			name: "doi url with trailing period",
			in:   "See https://doi.org/10.1000/xyz. for details",
			want: `See \href{https://doi.org/10.1000/xyz}{10.1000/xyz} for details`,
		},
		{
			name: "plain url keeps host in display",
			in:   "Data at https://example.org/data",
			want: `Data at \href{https://example.org/data}{example.org/data}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LinkURLs(tt.in); got != tt.want {
				t.Errorf("LinkURLs(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDocumentCollapsesInitialsSpacing(t *testing.T) {
	// The substitution leaves a trailing space before following text; the
	// document pass collapses the doubled space that results mid-sentence.
	r := &roster.Roster{
		Acknowledgements: []roster.Acknowledgement{
			{Code: "k", Text: "We thank {INITIALS} for comments."},
		},
	}
	authors := []roster.Person{{Display: "A", Acknowledgements: []string{"k"}}}

	ack, err := Acknowledgements(roster.Paper{Key: "p"}, authors, []string{"AA"}, r)
	if err != nil {
		t.Fatalf("Acknowledgements() error = %v", err)
	}
	doc := Document("", ack)
	if strings.Contains(doc, "  ") {
		t.Errorf("Document() left a doubled space: %q", doc)
	}
	if !strings.Contains(doc, "We thank AA for comments.") {
		t.Errorf("Document() = %q, want the substituted sentence", doc)
	}
}
