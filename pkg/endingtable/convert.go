package endingtable

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/endingtable-go/pkg/endingtable/models"
	"github.com/ukaji3/endingtable-go/pkg/endingtable/output"
	"github.com/ukaji3/endingtable-go/pkg/endingtable/parser"
	"go.uber.org/zap"
)

// Report summarizes a conversion run.
type Report struct {
	// Input and Output are the absolute paths used.
	Input  string
	Output string
	// Sheet is the sheet that was read (empty for csv).
	Sheet string
	// Rows is the number of non-blank data rows read.
	Rows int
	// Written is the number of records in the document.
	Written int
	// Skipped lists rows dropped from the document.
	Skipped []*RowError
	// Warnings lists rows kept with a defaulted value.
	Warnings []*RowError
	// Document is the converted document.
	Document *models.EndingDocument
}

// Convert reads the ending table at inputPath and writes the endings JSON
// document to outputPath. Fatal errors match ErrInputNotFound, ErrInputRead,
// ErrSchema or ErrOutputWrite; when one is returned no output is written.
// Problems with individual rows are logged and recorded in the Report.
func Convert(inputPath, outputPath string, opts Options) (*Report, error) {
	log := opts.logger()

	report := &Report{
		Input:  absPath(inputPath),
		Output: absPath(outputPath),
	}

	table, err := Load(inputPath, opts.Sheet)
	if err != nil {
		return nil, err
	}
	report.Sheet = table.Sheet
	report.Rows = len(table.Rows)
	log.Debug("loaded table",
		zap.String("input", report.Input),
		zap.String("sheet", table.Sheet),
		zap.Strings("headers", table.Headers),
		zap.Int("rows", len(table.Rows)))

	columns, missing := parser.ResolveColumns(table.Headers)
	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}

	records := make([]models.EndingRecord, 0, len(table.Rows))
	for _, row := range table.Rows {
		rec, warnings, err := transformSafely(TransformRow, row, columns)
		for _, w := range warnings {
			log.Warn("defaulted value", rowFields(w)...)
			report.Warnings = append(report.Warnings, w)
		}
		if err != nil {
			var rowErr *RowError
			if !errors.As(err, &rowErr) {
				rowErr = NewRowError(row.R, "", "", err)
			}
			log.Warn("skipping row", rowFields(rowErr)...)
			report.Skipped = append(report.Skipped, rowErr)
			continue
		}
		records = append(records, rec)
	}

	report.Document = models.NewEndingDocument(records)
	report.Written = len(records)

	if opts.DryRun {
		log.Debug("dry run, output not written", zap.String("output", report.Output))
		return report, nil
	}

	if err := output.WriteFile(outputPath, report.Document); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOutputWrite, err)
	}
	log.Debug("wrote output", zap.String("output", report.Output), zap.Int("endings", report.Written))

	return report, nil
}

// Load reads the table from inputPath. Files ending in .csv are parsed as
// csv; anything else is opened as an xlsx workbook.
func Load(inputPath, sheet string) (*models.Table, error) {
	info, err := os.Stat(inputPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, inputPath)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputRead, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrInputRead, inputPath)
	}

	var table *models.Table
	if strings.EqualFold(filepath.Ext(inputPath), ".csv") {
		table, err = parser.LoadCSV(inputPath)
	} else {
		table, err = parser.LoadWorkbook(inputPath, sheet)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInputRead, inputPath, err)
	}
	return table, nil
}

func rowFields(e *RowError) []zap.Field {
	fields := []zap.Field{zap.Int("row", e.Row)}
	if e.Column != "" {
		fields = append(fields, zap.String("column", e.Column), zap.String("value", e.Value))
	}
	return append(fields, zap.Error(e.Err))
}

func absPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
