// Package output serializes tables as delimited text files.
package output

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/ukaji3/xlsx2csv-go/pkg/xlsx2csv/models"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Delimiter is the field separator used for every output file.
const Delimiter = ','

// WriteCSV writes table to path as UTF-8 CSV prefixed with a byte-order mark.
// An existing file is truncated.
func WriteCSV(path string, table *models.Table) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return Encode(f, table)
}

// Encode writes the BOM, the header row and all records of table to w.
// An empty table produces only the BOM.
func Encode(w io.Writer, table *models.Table) error {
	bw := transform.NewWriter(w, unicode.UTF8BOM.NewEncoder())

	cw := csv.NewWriter(bw)
	cw.Comma = Delimiter

	if !table.IsEmpty() {
		if err := cw.Write(table.Header); err != nil {
			return err
		}
		if err := cw.WriteAll(table.Records); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}

	return bw.Close()
}

// Decode reads CSV produced by Encode, stripping the byte-order mark.
func Decode(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(transform.NewReader(r, unicode.UTF8BOM.NewDecoder()))
	cr.Comma = Delimiter
	cr.FieldsPerRecord = -1
	return cr.ReadAll()
}
