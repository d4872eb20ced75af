package models

// Table represents the tabular content of a single sheet.
type Table struct {
	// Header holds the column names taken from the first non-blank row.
	Header []string
	// Records holds the remaining rows, each padded to len(Header).
	Records [][]string
}

// Width returns the number of columns in the table.
func (t *Table) Width() int {
	return len(t.Header)
}

// IsEmpty reports whether the sheet had no non-blank rows.
func (t *Table) IsEmpty() bool {
	return len(t.Header) == 0 && len(t.Records) == 0
}
