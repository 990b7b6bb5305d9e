package endingtable

import (
	"errors"
	"fmt"

	"github.com/ukaji3/endingtable-go/pkg/endingtable/models"
	"github.com/ukaji3/endingtable-go/pkg/endingtable/parser"
)

// ErrUnrecognizedBool indicates a player_win cell that is neither TRUE nor
// FALSE. The record is kept with PlayerWin set to false.
var ErrUnrecognizedBool = errors.New("unrecognized boolean, defaulting to false")

// TransformRow maps one data row to an EndingRecord. columns maps each
// canonical column name to the header carrying it, as returned by
// parser.ResolveColumns.
//
// A non-nil error is a *RowError and means the row must be skipped.
// Warnings describe values that were replaced by a default.
func TransformRow(row models.Row, columns map[string]string) (models.EndingRecord, []*RowError, error) {
	cell := func(column string) (string, bool) {
		return row.Value(columns[column])
	}

	// integers come from unformatted values: "#,##0" displays 1000 as "1,000"
	var ints [3]int
	for i, column := range []string{models.ColumnEndingID, models.ColumnMoodMin, models.ColumnMoodMax} {
		raw, _ := row.RawValue(columns[column])
		n, err := parser.ParseInt(raw)
		if err != nil {
			return models.EndingRecord{}, nil, NewRowError(row.R, column, raw, err)
		}
		ints[i] = n
	}

	var warnings []*RowError
	rawWin, _ := cell(models.ColumnPlayerWin)
	playerWin, ok := parser.ParseBool(rawWin)
	if !ok {
		warnings = append(warnings, NewRowError(row.R, models.ColumnPlayerWin, rawWin, ErrUnrecognizedBool))
	}

	title, _ := cell(models.ColumnTitle)
	body, hasBody := cell(models.ColumnBodyText)

	return models.EndingRecord{
		ID:         ints[0],
		MinScore:   ints[1],
		MaxScore:   ints[2],
		PlayerWin:  playerWin,
		Title:      title,
		EndingText: parser.SplitText(body, hasBody),
		ImagesName: []string{},
	}, warnings, nil
}

// rowTransform is the signature of TransformRow.
type rowTransform func(models.Row, map[string]string) (models.EndingRecord, []*RowError, error)

// transformSafely runs transform, turning a panic into a row error so one
// bad row cannot abort the run.
func transformSafely(transform rowTransform, row models.Row, columns map[string]string) (rec models.EndingRecord, warnings []*RowError, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = NewRowError(row.R, "", "", fmt.Errorf("unexpected error: %v", r))
		}
	}()
	return transform(row, columns)
}
