package xlsx2csv

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/ukaji3/xlsx2csv-go/pkg/xlsx2csv/models"
)

// reporter writes human-readable progress. Write errors are ignored.
type reporter struct {
	w io.Writer
}

func (r reporter) reading(path string) {
	fmt.Fprintf(r.w, "Reading %s...\n", path)
}

func (r reporter) sheets(wb *models.Workbook) {
	fmt.Fprintf(r.w, "Found %d sheet(s): %s\n", wb.SheetCount(), strings.Join(wb.Sheets, ", "))
}

func (r reporter) converting(sheet string) {
	fmt.Fprintf(r.w, "Converting sheet: %s...\n", sheet)
}

func (r reporter) converted(path string) {
	fmt.Fprintf(r.w, "  ✓ converted: %s\n", path)
}

func (r reporter) summary(result *models.ConversionResult) {
	fmt.Fprintf(r.w, "\nDone! Converted %d file(s):\n", result.Len())
	for _, path := range result.Files {
		if info, err := os.Stat(path); err == nil {
			fmt.Fprintf(r.w, "  - %s (%s)\n", path, humanize.Bytes(uint64(info.Size())))
		} else {
			fmt.Fprintf(r.w, "  - %s\n", path)
		}
	}
}
