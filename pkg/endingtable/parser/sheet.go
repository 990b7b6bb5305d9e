package parser

import (
	"errors"
	"fmt"

	"github.com/ukaji3/endingtable-go/pkg/endingtable/models"
	"github.com/xuri/excelize/v2"
)

// ErrSheetNotFound indicates the requested sheet is not in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrNoSheets indicates the workbook has no worksheets.
var ErrNoSheets = errors.New("workbook has no sheets")

// LoadWorkbook reads one sheet of an xlsx workbook into a Table.
// An empty sheetName selects the first sheet. When the sheet defines a print
// area, cells outside it are ignored. Rows carry both the displayed text and
// the unformatted values, since number formats such as "#,##0" change the
// displayed text of integer cells.
func LoadWorkbook(path, sheetName string) (*models.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheetName, err = selectSheet(f, sheetName)
	if err != nil {
		return nil, err
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheetName, err)
	}

	raw, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheetName, err)
	}

	if area, ok := FindPrintArea(f, sheetName); ok {
		rows = ClipRows(rows, area)
		raw = ClipRows(raw, area)
	}

	table := BuildTable(rows, raw)
	table.Sheet = sheetName
	return table, nil
}

// selectSheet resolves the sheet to read.
func selectSheet(f *excelize.File, sheetName string) (string, error) {
	sheetList := f.GetSheetList()
	if len(sheetList) == 0 {
		return "", ErrNoSheets
	}
	if sheetName == "" {
		return sheetList[0], nil
	}
	for _, name := range sheetList {
		if name == sheetName {
			return name, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrSheetNotFound, sheetName)
}
