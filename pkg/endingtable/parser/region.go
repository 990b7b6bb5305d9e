package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/endingtable-go/pkg/endingtable/models"
	"github.com/xuri/excelize/v2"
)

// Region is the bounding box of non-empty cells, 0-based and inclusive.
type Region struct {
	MinRow, MaxRow int
	MinCol, MaxCol int
}

// Empty reports whether the region holds no cells.
func (r Region) Empty() bool {
	return r.MinRow < 0
}

// String renders the region in Excel range notation (e.g. "A1:F12").
func (r Region) String() string {
	if r.Empty() {
		return ""
	}
	startCell, _ := excelize.CoordinatesToCellName(r.MinCol+1, r.MinRow+1)
	endCell, _ := excelize.CoordinatesToCellName(r.MaxCol+1, r.MaxRow+1)
	return fmt.Sprintf("%s:%s", startCell, endCell)
}

// DetectRegion finds the table region of a sheet: the bounding box of all
// non-blank cells.
func DetectRegion(rows [][]string) Region {
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	return Region{MinRow: minRow, MaxRow: maxRow, MinCol: minCol, MaxCol: maxCol}
}

// BuildTable turns raw sheet rows into a Table. The first row of the
// detected region is the header; every later row of the region becomes a
// Row, blank ones included, so callers can report them. raw, when non-nil,
// holds the same cells without number formatting and fills Row.Raw.
func BuildTable(rows, raw [][]string) *models.Table {
	region := DetectRegion(rows)
	table := &models.Table{}
	if region.Empty() {
		return table
	}

	headerRow := rows[region.MinRow]
	table.Headers = make([]string, 0, region.MaxCol-region.MinCol+1)
	for colIdx := region.MinCol; colIdx <= region.MaxCol; colIdx++ {
		table.Headers = append(table.Headers, strings.TrimSpace(cellAt(headerRow, colIdx)))
	}

	// duplicate headers: the first column wins
	firstIndex := make(map[string]int, len(table.Headers))
	for i, header := range table.Headers {
		if _, seen := firstIndex[header]; !seen {
			firstIndex[header] = i
		}
	}

	for rowIdx := region.MinRow + 1; rowIdx <= region.MaxRow; rowIdx++ {
		row := rows[rowIdx]
		var rawRow []string
		if rowIdx < len(raw) {
			rawRow = raw[rowIdx]
		}

		cellMap := make(map[string]string)
		var rawMap map[string]string
		if raw != nil {
			rawMap = make(map[string]string)
		}

		for i, header := range table.Headers {
			if header == "" || firstIndex[header] != i {
				continue
			}
			colIdx := region.MinCol + i
			value := cellAt(row, colIdx)
			if value == "" {
				continue
			}
			cellMap[header] = value
			if rawValue := cellAt(rawRow, colIdx); rawMap != nil && rawValue != "" {
				rawMap[header] = rawValue
			}
		}

		table.Rows = append(table.Rows, models.Row{
			R:   rowIdx + 1,
			C:   cellMap,
			Raw: rawMap,
		})
	}

	return table
}

// cellAt returns the cell at colIdx, or "" past the end of a short row.
func cellAt(row []string, colIdx int) string {
	if colIdx < len(row) {
		return row[colIdx]
	}
	return ""
}

// findDataBounds finds the bounding box of non-blank cells.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if strings.TrimSpace(cell) != "" {
				if minRow < 0 || rowIdx < minRow {
					minRow = rowIdx
				}
				if maxRow < 0 || rowIdx > maxRow {
					maxRow = rowIdx
				}
				if minCol < 0 || colIdx < minCol {
					minCol = colIdx
				}
				if maxCol < 0 || colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	return
}
