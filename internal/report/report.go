// Package report abstracts the terminal surface the CLI talks to: ruled
// diagnostic output, colorized lines and interactive prompts. Core packages
// never touch the terminal directly, which keeps them testable.
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ANSI color codes used by the match report.
const (
	Green = "\033[92m"
	Red   = "\033[91m"
	reset = "\033[0m"
)

// DefaultWidth is used when the terminal width cannot be determined.
const DefaultWidth = 80

// Reporter is the display/prompt collaborator the commands depend on.
type Reporter interface {
	// Rule prints a full-width horizontal rule.
	Rule()
	// Printf writes formatted output.
	Printf(format string, args ...any)
	// Colorf writes formatted output wrapped in an ANSI color.
	Colorf(color, format string, args ...any)
	// Errorf writes formatted output to the error stream.
	Errorf(format string, args ...any)
	// Ask prints a prompt and reads one line of input.
	Ask(prompt string) (string, error)
}

// Terminal is the Reporter backed by real terminal streams.
type Terminal struct {
	In    io.Reader
	Out   io.Writer
	Err   io.Writer
	Width int  // 0 means detect from Out, falling back to DefaultWidth
	Color bool // Disables ANSI codes when false

	reader *bufio.Reader
}

// NewTerminal returns a Reporter on stdin/stdout/stderr with width and
// color detected from the terminal.
func NewTerminal() *Terminal {
	t := &Terminal{
		In:  os.Stdin,
		Out: os.Stdout,
		Err: os.Stderr,
	}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		t.Color = true
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			t.Width = w
		}
	}
	return t
}

func (t *Terminal) width() int {
	if t.Width > 0 {
		return t.Width
	}
	return DefaultWidth
}

// Rule prints a full-width line of tildes, the separator used around every
// block of diagnostic or rendered output.
func (t *Terminal) Rule() {
	fmt.Fprintln(t.Out, strings.Repeat("~", t.width()))
}

// Printf writes formatted output to Out.
func (t *Terminal) Printf(format string, args ...any) {
	fmt.Fprintf(t.Out, format, args...)
}

// Colorf writes formatted output wrapped in an ANSI color when color is on.
func (t *Terminal) Colorf(color, format string, args ...any) {
	if !t.Color {
		fmt.Fprintf(t.Out, format, args...)
		return
	}
	fmt.Fprintf(t.Out, color+format+reset, args...)
}

// Errorf writes formatted output to Err.
func (t *Terminal) Errorf(format string, args ...any) {
	fmt.Fprintf(t.Err, format, args...)
}

// Ask prints a prompt to Out and reads one line from In. The returned line
// has its trailing newline trimmed.
func (t *Terminal) Ask(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(t.Out, prompt)
	}
	if t.reader == nil {
		t.reader = bufio.NewReader(t.In)
	}
	line, err := t.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
