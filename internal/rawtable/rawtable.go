// Package rawtable holds the untyped tabular dataset that source files are
// decoded into before any processor runs, plus the column resolver that maps
// a semantic field to whichever header name the source used that era.
package rawtable

import (
	"strings"
)

// Table is a raw source table: a header row and string cells. Cell values
// arrive exactly as the decoder produced them; an empty string is a missing
// cell. Column names vary by year and source, which is why processors go
// through Resolve instead of indexing headers directly.
type Table struct {
	Columns []string
	Rows    [][]string
}

// New returns an empty table with the given header.
func New(columns []string) *Table {
	return &Table{Columns: columns}
}

// Append adds one data row. Short rows are legal; Value treats cells past
// the end of a row as missing.
func (t *Table) Append(row []string) {
	t.Rows = append(t.Rows, row)
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// IsEmpty reports whether the table is nil or has no data rows.
func (t *Table) IsEmpty() bool {
	return t == nil || len(t.Rows) == 0
}

// FindColumn returns the first candidate that matches one of the available
// column names, compared case-insensitively after trimming surrounding
// whitespace. Internal whitespace and newlines are significant; some source
// headers embed them and the candidate lists carry those variants verbatim.
// Candidate order expresses priority among historical naming conventions,
// so the first match wins even when a later candidate would also match.
// The returned name is the column as it appears in the table.
func FindColumn(available []string, candidates []string) (string, bool) {
	for _, cand := range candidates {
		want := strings.TrimSpace(cand)
		for _, col := range available {
			if strings.EqualFold(strings.TrimSpace(col), want) {
				return col, true
			}
		}
	}
	return "", false
}

// Resolve returns the index of the first candidate found in the table's
// header, or -1 when no candidate matches. Matching rules are those of
// FindColumn.
func (t *Table) Resolve(candidates ...string) int {
	if t == nil {
		return -1
	}
	for _, cand := range candidates {
		want := strings.TrimSpace(cand)
		for i, col := range t.Columns {
			if strings.EqualFold(strings.TrimSpace(col), want) {
				return i
			}
		}
	}
	return -1
}

// Value returns the cell at (row, col), or the empty string when col is -1
// or the row is too short to have that column. Row indexes outside the
// table are a caller bug and still return the empty string rather than
// panic.
func (t *Table) Value(row, col int) string {
	if t == nil || col < 0 || row < 0 || row >= len(t.Rows) {
		return ""
	}
	cells := t.Rows[row]
	if col >= len(cells) {
		return ""
	}
	return cells[col]
}
