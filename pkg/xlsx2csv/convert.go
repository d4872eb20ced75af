package xlsx2csv

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ukaji3/xlsx2csv-go/pkg/xlsx2csv/models"
	"github.com/ukaji3/xlsx2csv-go/pkg/xlsx2csv/output"
	"github.com/ukaji3/xlsx2csv-go/pkg/xlsx2csv/parser"
	"github.com/xuri/excelize/v2"
)

// Convert writes every sheet of the workbook at inputPath to its own CSV file.
// Files are written in sheet order; a failure stops the run and leaves files
// already written in place. On failure the returned result is nil.
func Convert(inputPath string, opts Options) (*models.ConversionResult, error) {
	logger := opts.logger().With("input", inputPath)
	report := reporter{w: opts.stdout()}

	if _, err := os.Stat(inputPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, inputPath)
		}
		return nil, NewConversionError(StageOpen, "", err)
	}

	report.reading(inputPath)

	kind, err := detectContainer(inputPath, logger)
	if err != nil {
		return nil, NewConversionError(StageOpen, "", err)
	}
	logger.Debug("container detected", "format", kind.String())
	if err := missingReader(kind); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(inputPath, excelize.Options{Password: opts.Password})
	if err != nil {
		return nil, NewConversionError(StageOpen, "", err)
	}
	defer f.Close()

	wb := &models.Workbook{
		Name:   filepath.Base(inputPath),
		Sheets: f.GetSheetList(),
	}
	report.sheets(wb)

	outDir := opts.ResolveOutputDir(inputPath)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, NewConversionError(StageMkdir, "", err)
	}

	result := &models.ConversionResult{Files: make([]string, 0, wb.SheetCount())}
	for _, sheetName := range wb.Sheets {
		report.converting(sheetName)

		table, err := parser.ReadTable(f, sheetName)
		if err != nil {
			return nil, NewConversionError(StageRead, sheetName, err)
		}

		csvPath := filepath.Join(outDir, OutputFileName(inputPath, sheetName))
		if err := output.WriteCSV(csvPath, table); err != nil {
			return nil, NewConversionError(StageWrite, sheetName, err)
		}
		logger.Debug("sheet written", "sheet", sheetName, "path", csvPath,
			"columns", table.Width(), "records", len(table.Records))

		result.Add(csvPath)
		report.converted(csvPath)
	}

	report.summary(result)
	return result, nil
}
