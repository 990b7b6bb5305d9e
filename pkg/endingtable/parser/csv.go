package parser

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/ukaji3/endingtable-go/pkg/endingtable/models"
)

// utf8BOM is prepended by spreadsheet tools when exporting csv.
const utf8BOM = "\ufeff"

// LoadCSV reads a comma-separated export of the ending table.
func LoadCSV(path string) (*models.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing csv: %w", err)
	}

	if len(rows) > 0 && len(rows[0]) > 0 {
		rows[0][0] = strings.TrimPrefix(rows[0][0], utf8BOM)
	}

	return BuildTable(rows, nil), nil
}
