// Package parser loads worksheet content into tables.
package parser

import (
	"github.com/ukaji3/xlsx2csv-go/pkg/xlsx2csv/models"
	"github.com/xuri/excelize/v2"
)

// ReadTable loads the full content of a sheet.
// Rows whose cells are all empty are skipped. The first remaining row becomes
// the header and every row is padded to the widest row in the sheet.
func ReadTable(f *excelize.File, sheetName string) (*models.Table, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	rows = dropBlankRows(rows)
	if len(rows) == 0 {
		return &models.Table{}, nil
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	table := &models.Table{
		Header:  normalizeHeader(padRow(rows[0], width)),
		Records: make([][]string, 0, len(rows)-1),
	}
	for _, row := range rows[1:] {
		table.Records = append(table.Records, padRow(row, width))
	}

	return table, nil
}

// dropBlankRows returns rows that contain at least one non-empty cell.
func dropBlankRows(rows [][]string) [][]string {
	result := rows[:0:0]
	for _, row := range rows {
		if !isBlankRow(row) {
			result = append(result, row)
		}
	}
	return result
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}

// padRow copies row and extends it with empty cells up to width.
func padRow(row []string, width int) []string {
	padded := make([]string, width)
	copy(padded, row)
	return padded
}
