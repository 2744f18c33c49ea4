package report

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func newTestTerminal(in string) (*Terminal, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	t := &Terminal{
		In:    strings.NewReader(in),
		Out:   out,
		Err:   errOut,
		Width: 10,
	}
	return t, out, errOut
}

func TestRule(t *testing.T) {
	term, out, _ := newTestTerminal("")
	term.Rule()
	if got, want := out.String(), strings.Repeat("~", 10)+"\n"; got != want {
		t.Errorf("Rule() wrote %q, want %q", got, want)
	}
}

func TestRuleDefaultWidth(t *testing.T) {
	term, out, _ := newTestTerminal("")
	term.Width = 0
	term.Rule()
	if got, want := out.String(), strings.Repeat("~", DefaultWidth)+"\n"; got != want {
		t.Errorf("Rule() wrote %q, want %q", got, want)
	}
}

func TestPrintfAndErrorf(t *testing.T) {
	term, out, errOut := newTestTerminal("")
	term.Printf("hello %s\n", "out")
	term.Errorf("hello %s\n", "err")
	if got := out.String(); got != "hello out\n" {
		t.Errorf("Printf() wrote %q", got)
	}
	if got := errOut.String(); got != "hello err\n" {
		t.Errorf("Errorf() wrote %q", got)
	}
}

func TestColorf(t *testing.T) {
	term, out, _ := newTestTerminal("")

	term.Colorf(Green, "plain %d", 1)
	if got := out.String(); got != "plain 1" {
		t.Errorf("Colorf() without color wrote %q", got)
	}

	out.Reset()
	term.Color = true
	term.Colorf(Green, "lit %d", 2)
	if got, want := out.String(), Green+"lit 2"+"\033[0m"; got != want {
		t.Errorf("Colorf() with color wrote %q, want %q", got, want)
	}
}

func TestAsk(t *testing.T) {
	term, out, _ := newTestTerminal("first\r\nsecond\nlast")

	line, err := term.Ask("number? ")
	if err != nil {
		t.Fatalf("Ask() error = %v", err)
	}
	if line != "first" {
		t.Errorf("Ask() = %q, want %q", line, "first")
	}
	if got := out.String(); got != "number? " {
		t.Errorf("Ask() prompt wrote %q", got)
	}

	if line, err = term.Ask(""); err != nil || line != "second" {
		t.Errorf("Ask() = %q, %v, want %q", line, err, "second")
	}

	// A final line without a newline is still returned.
	if line, err = term.Ask(""); err != nil || line != "last" {
		t.Errorf("Ask() = %q, %v, want %q", line, err, "last")
	}

	if _, err = term.Ask(""); err != io.EOF {
		t.Errorf("Ask() at EOF error = %v, want io.EOF", err)
	}
}
