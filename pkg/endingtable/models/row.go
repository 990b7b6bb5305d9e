// Package models defines data structures for ending table conversion.
package models

// Row represents a single data row of the ending table.
type Row struct {
	// R is the sheet row index (1-based).
	R int
	// C maps header name to displayed cell text. Empty cells are absent;
	// a blank row inside the table has an empty map.
	C map[string]string
	// Raw maps header name to the unformatted cell value, when the source
	// distinguishes the two (xlsx number formats). Nil for csv.
	Raw map[string]string
}

// Value returns the displayed cell text for column and whether the cell
// holds anything. An empty cell or a column past the end of the row is null.
// Whitespace-only text is a value, not null.
func (r Row) Value(column string) (string, bool) {
	v, ok := r.C[column]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// RawValue returns the unformatted value for column, falling back to the
// displayed text when no raw value was recorded.
func (r Row) RawValue(column string) (string, bool) {
	if v, ok := r.Raw[column]; ok && v != "" {
		return v, true
	}
	return r.Value(column)
}

// Table is a header plus the data rows beneath it.
type Table struct {
	// Sheet is the sheet the table was read from (empty for csv).
	Sheet string
	// Headers holds the trimmed header cells in column order.
	Headers []string
	// Rows holds the data rows in sheet order.
	Rows []Row
}
