package parser

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// printAreaName is the defined name Excel uses for a sheet's print area.
const printAreaName = "_xlnm.Print_Area"

// FindPrintArea returns the first print area defined for sheetName.
// ok is false when the sheet has none.
func FindPrintArea(f *excelize.File, sheetName string) (Region, bool) {
	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, printAreaName) {
			continue
		}
		sheet, areas := parsePrintAreaReference(dn.RefersTo)
		if len(areas) == 0 {
			continue
		}
		if sheet == sheetName || (sheet == "" && dn.Scope == sheetName) {
			return areas[0], true
		}
	}
	return Region{}, false
}

// ClipRows blanks every cell outside area, keeping row indexes intact so
// row numbers still match the sheet.
func ClipRows(rows [][]string, area Region) [][]string {
	clipped := make([][]string, len(rows))
	for rowIdx, row := range rows {
		if rowIdx < area.MinRow || rowIdx > area.MaxRow {
			continue
		}
		out := make([]string, len(row))
		for colIdx := area.MinCol; colIdx <= area.MaxCol && colIdx < len(row); colIdx++ {
			out[colIdx] = row[colIdx]
		}
		clipped[rowIdx] = out
	}
	return clipped
}

// parsePrintAreaReference parses a print area reference string.
// Format: 'SheetName'!$A$1:$D$10 or SheetName!$A$1:$D$10
func parsePrintAreaReference(ref string) (string, []Region) {
	var areas []Region

	// Split by comma for multiple print areas
	parts := strings.Split(ref, ",")

	var sheetName string
	for _, part := range parts {
		part = strings.TrimSpace(strings.TrimPrefix(part, "="))
		if part == "" {
			continue
		}

		rangeStr := part
		if idx := strings.LastIndex(part, "!"); idx >= 0 {
			sheet := strings.Trim(part[:idx], "'")
			rangeStr = part[idx+1:]
			if sheetName == "" {
				sheetName = sheet
			}
		}

		if area, ok := parseRange(rangeStr); ok {
			areas = append(areas, area)
		}
	}

	return sheetName, areas
}

// parseRange parses a range string like $A$1:$D$10 into a 0-based Region.
func parseRange(rangeStr string) (Region, bool) {
	rangeStr = strings.ReplaceAll(rangeStr, "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) != 2 {
		return Region{}, false
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return Region{}, false
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return Region{}, false
	}

	return Region{
		MinRow: startRow - 1,
		MaxRow: endRow - 1,
		MinCol: startCol - 1,
		MaxCol: endCol - 1,
	}, true
}
