// Package sheet fetches and parses spreadsheet tabs exported as CSV.
package sheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Table holds one spreadsheet tab as ordered columns of string cells.
type Table struct {
	Name    string     // Tab name, used in diagnostics
	Columns []string   // Column names in sheet order
	Rows    [][]string // Cell values, one slice per row, aligned with Columns
}

// ParseCSV reads a CSV tab into a Table and applies the standard cleanup:
// cells are trimmed of spaces and stray commas, rows whose first column is
// empty or "0" are dropped, short ORCID values are blanked, and columns
// whose name contains COMMENT are removed.
func ParseCSV(name string, r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing CSV for %s: %w", name, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("tab %s is empty", name)
	}

	t := &Table{Name: name}
	for _, col := range records[0] {
		t.Columns = append(t.Columns, strings.TrimSpace(col))
	}
	for _, rec := range records[1:] {
		row := make([]string, len(t.Columns))
		for i := range row {
			if i < len(rec) {
				row[i] = cleanCell(rec[i])
			}
		}
		t.Rows = append(t.Rows, row)
	}

	t.dropEmptyRows()
	t.blankShortORCIDs()
	t.dropCommentColumns()

	return t, nil
}

// cleanCell strips surrounding whitespace and stray leading/trailing commas.
func cleanCell(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, ",")
	return strings.TrimSpace(s)
}

// dropEmptyRows removes rows whose first column is empty or the "0" marker.
func (t *Table) dropEmptyRows() {
	if len(t.Columns) == 0 {
		return
	}
	kept := t.Rows[:0]
	for _, row := range t.Rows {
		if row[0] == "" || row[0] == "0" {
			continue
		}
		kept = append(kept, row)
	}
	t.Rows = kept
}

// blankShortORCIDs clears ORCID cells too short to be a real identifier.
// Sheets use filler values like "0" in the ORCID column.
func (t *Table) blankShortORCIDs() {
	idx := t.ColumnIndex("ORCID")
	if idx < 0 {
		return
	}
	for _, row := range t.Rows {
		if len([]rune(row[idx])) < 16 {
			row[idx] = ""
		}
	}
}

// dropCommentColumns removes free-form comment columns from the table.
func (t *Table) dropCommentColumns() {
	var cols []string
	var keep []int
	for i, col := range t.Columns {
		if strings.Contains(strings.ToUpper(col), "COMMENT") {
			continue
		}
		cols = append(cols, col)
		keep = append(keep, i)
	}
	if len(cols) == len(t.Columns) {
		return
	}
	for ri, row := range t.Rows {
		next := make([]string, len(keep))
		for j, i := range keep {
			next[j] = row[i]
		}
		t.Rows[ri] = next
	}
	t.Columns = cols
}

// ColumnIndex returns the index of a column, or -1 if absent.
func (t *Table) ColumnIndex(name string) int {
	for i, col := range t.Columns {
		if col == name {
			return i
		}
	}
	return -1
}

// Column returns all values of the named column in row order.
// The second return is false if the column does not exist.
func (t *Table) Column(name string) ([]string, bool) {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil, false
	}
	vals := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		vals[i] = row[idx]
	}
	return vals, true
}

// Cell returns the value at (row, column name). Empty string if out of range.
func (t *Table) Cell(row int, name string) string {
	idx := t.ColumnIndex(name)
	if idx < 0 || row < 0 || row >= len(t.Rows) {
		return ""
	}
	return t.Rows[row][idx]
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// VStack appends the rows of other to t. Both tables must have the same
// column set; cells are realigned by column name.
func (t *Table) VStack(other *Table) error {
	if other == nil || len(other.Columns) == 0 {
		return nil
	}
	if err := CheckColumns(other, t.Columns); err != nil {
		return fmt.Errorf("stacking %s onto %s: %w", other.Name, t.Name, err)
	}
	idx := make([]int, len(t.Columns))
	for i, col := range t.Columns {
		idx[i] = other.ColumnIndex(col)
	}
	for _, row := range other.Rows {
		next := make([]string, len(t.Columns))
		for i, j := range idx {
			next[i] = row[j]
		}
		t.Rows = append(t.Rows, next)
	}
	return nil
}

// CheckColumns verifies that the table's column set is exactly the required
// set, order-insensitive. Any missing or extra column fails.
func CheckColumns(t *Table, required []string) error {
	have := make(map[string]bool, len(t.Columns))
	for _, col := range t.Columns {
		have[col] = true
	}
	want := make(map[string]bool, len(required))
	for _, col := range required {
		want[col] = true
	}

	var missing, extra []string
	for _, col := range required {
		if !have[col] {
			missing = append(missing, col)
		}
	}
	for _, col := range t.Columns {
		if !want[col] {
			extra = append(extra, col)
		}
	}

	if len(missing) > 0 || len(extra) > 0 {
		return &SchemaMismatchError{Table: t.Name, Missing: missing, Extra: extra}
	}
	return nil
}
