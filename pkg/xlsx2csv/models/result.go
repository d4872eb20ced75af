package models

// ConversionResult lists the CSV files produced by a conversion, in sheet order.
type ConversionResult struct {
	Files []string
}

// Add records a produced file.
func (r *ConversionResult) Add(path string) {
	r.Files = append(r.Files, path)
}

// Len returns the number of produced files.
func (r *ConversionResult) Len() int {
	return len(r.Files)
}
