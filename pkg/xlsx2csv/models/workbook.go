// Package models defines data structures for workbook-to-CSV conversion.
package models

// Workbook represents an opened workbook and its sheet names.
type Workbook struct {
	// Name is the workbook file name (no path).
	Name string
	// Sheets lists sheet names in workbook order.
	Sheets []string
}

// SheetCount returns the number of sheets in the workbook.
func (w *Workbook) SheetCount() int {
	return len(w.Sheets)
}
