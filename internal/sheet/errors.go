package sheet

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors returned by the sheet client.
var (
	// ErrNetworkError indicates a network connectivity issue.
	ErrNetworkError = errors.New("network error fetching sheet")

	// ErrInvalidResponse indicates an unexpected response body.
	ErrInvalidResponse = errors.New("invalid response from sheet export")
)

// StatusError represents a non-success HTTP status from the sheet export.
type StatusError struct {
	Tab        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("sheet export returned HTTP %d for tab %s", e.StatusCode, e.Tab)
}

// SchemaMismatchError reports a table whose column set differs from the
// required contract. Both the missing and the unexpected columns are named
// so the source sheet can be fixed in one pass.
type SchemaMismatchError struct {
	Table   string
	Missing []string
	Extra   []string
}

func (e *SchemaMismatchError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, fmt.Sprintf("missing column(s) %s", quoteList(e.Missing)))
	}
	if len(e.Extra) > 0 {
		parts = append(parts, fmt.Sprintf("unexpected column(s) %s", quoteList(e.Extra)))
	}
	return fmt.Sprintf("table %s: %s", e.Table, strings.Join(parts, "; "))
}

func quoteList(cols []string) string {
	quoted := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = "*" + c + "*"
	}
	return strings.Join(quoted, ", ")
}
