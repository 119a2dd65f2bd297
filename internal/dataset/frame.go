// Package dataset provides the in-memory tabular type exchanged between the
// fetch, ranking, and persistence layers. A Frame is deliberately untyped:
// upstream stat tables carry hundreds of columns whose names and types drift
// between provider versions, so values stay strings until a consumer needs
// them as something else.
package dataset

import "strings"

// Row is one record of a Frame, keyed by column name.
type Row map[string]string

// Frame is an ordered set of columns plus the rows beneath them.
// Column order is preserved so the persistence layer writes files whose
// layout matches what the provider served.
type Frame struct {
	Columns []string
	Rows    []Row
}

// New creates a Frame with the given column order and no rows.
func New(columns ...string) *Frame {
	return &Frame{Columns: columns}
}

// Append adds a row. Keys not present in Columns are registered as new
// trailing columns so no fetched value is silently dropped.
func (f *Frame) Append(row Row) {
	for key := range row {
		if !f.HasColumn(key) {
			f.Columns = append(f.Columns, key)
		}
	}
	f.Rows = append(f.Rows, row)
}

// HasColumn reports whether the frame declares the named column.
func (f *Frame) HasColumn(name string) bool {
	for _, c := range f.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Len returns the number of rows.
func (f *Frame) Len() int {
	if f == nil {
		return 0
	}
	return len(f.Rows)
}

// Empty reports whether the frame holds no rows.
func (f *Frame) Empty() bool {
	return f.Len() == 0
}

// ColumnSet returns the column names as a set for membership checks.
func (f *Frame) ColumnSet() map[string]struct{} {
	set := make(map[string]struct{}, len(f.Columns))
	for _, c := range f.Columns {
		set[c] = struct{}{}
	}
	return set
}

// Get returns the trimmed value of a column in a row, and whether the cell
// exists. A cell that exists but holds only whitespace is treated as absent,
// matching how the provider marks fixtures that have not been played.
func (r Row) Get(column string) (string, bool) {
	v, ok := r[column]
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return "", false
	}
	return v, true
}
