package parser

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// saveWorkbook writes cells (cell name → value) to Sheet1 of a new workbook.
func saveWorkbook(t *testing.T, cells map[string]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for cell, value := range cells {
		if err := f.SetCellValue("Sheet1", cell, value); err != nil {
			t.Fatalf("SetCellValue(%s): %v", cell, err)
		}
	}

	path := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	return path
}

func TestLoadWorkbook(t *testing.T) {
	path := saveWorkbook(t, map[string]interface{}{
		"A1": "ending_id", "B1": "title", "C1": "player_win",
		"A2": 1, "B2": "Dawn", "C2": true,
		"A3": 2, "B3": "Dusk", "C3": "false",
	})

	table, err := LoadWorkbook(path, "")
	if err != nil {
		t.Fatalf("LoadWorkbook failed: %v", err)
	}

	if table.Sheet != "Sheet1" {
		t.Errorf("Expected sheet Sheet1, got %q", table.Sheet)
	}
	if len(table.Headers) != 3 || table.Headers[0] != "ending_id" {
		t.Errorf("Unexpected headers: %v", table.Headers)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(table.Rows))
	}

	first := table.Rows[0]
	if first.R != 2 {
		t.Errorf("Expected row 2, got %d", first.R)
	}
	if first.C["ending_id"] != "1" {
		t.Errorf("Expected '1', got %q", first.C["ending_id"])
	}
	if first.C["player_win"] != "TRUE" {
		t.Errorf("Expected boolean cell to read 'TRUE', got %q", first.C["player_win"])
	}
	if table.Rows[1].C["title"] != "Dusk" {
		t.Errorf("Expected 'Dusk', got %q", table.Rows[1].C["title"])
	}
}

func TestLoadWorkbookFormattedNumbers(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetRow("Sheet1", "A1", &[]interface{}{"ending_id", "mood_max", "player_win"})
	f.SetSheetRow("Sheet1", "A2", &[]interface{}{1, 1000, true})
	style, err := f.NewStyle(&excelize.Style{NumFmt: 3}) // #,##0
	if err != nil {
		t.Fatalf("NewStyle: %v", err)
	}
	if err := f.SetCellStyle("Sheet1", "B2", "B2", style); err != nil {
		t.Fatalf("SetCellStyle: %v", err)
	}

	path := filepath.Join(t.TempDir(), "styled.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	table, err := LoadWorkbook(path, "")
	if err != nil {
		t.Fatalf("LoadWorkbook failed: %v", err)
	}
	if len(table.Rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(table.Rows))
	}

	row := table.Rows[0]
	if v, _ := row.Value("mood_max"); v != "1,000" {
		t.Errorf("Value(mood_max) = %q, expected formatted %q", v, "1,000")
	}
	if v, _ := row.RawValue("mood_max"); v != "1000" {
		t.Errorf("RawValue(mood_max) = %q, expected %q", v, "1000")
	}
	if v, _ := row.Value("player_win"); v != "TRUE" {
		t.Errorf("Value(player_win) = %q, expected %q", v, "TRUE")
	}
}

func TestLoadWorkbookNamedSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	if _, err := f.NewSheet("Endings"); err != nil {
		t.Fatalf("NewSheet: %v", err)
	}
	f.SetCellValue("Sheet1", "A1", "notes")
	f.SetCellValue("Endings", "A1", "ending_id")
	f.SetCellValue("Endings", "A2", 7)

	path := filepath.Join(t.TempDir(), "named.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	table, err := LoadWorkbook(path, "Endings")
	if err != nil {
		t.Fatalf("LoadWorkbook failed: %v", err)
	}
	if table.Sheet != "Endings" || len(table.Rows) != 1 || table.Rows[0].C["ending_id"] != "7" {
		t.Errorf("Unexpected table: %+v", table)
	}

	_, err = LoadWorkbook(path, "Missing")
	if !errors.Is(err, ErrSheetNotFound) {
		t.Errorf("Expected ErrSheetNotFound, got %v", err)
	}
}

func TestLoadWorkbookInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.xlsx")
	if err := writeFile(path, "not a zip archive"); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadWorkbook(path, ""); err == nil {
		t.Error("Expected error for invalid workbook")
	}
}
