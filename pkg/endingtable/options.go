// Package endingtable converts the narrative ending spreadsheet into the
// JSON document loaded by the game at runtime.
package endingtable

import "go.uber.org/zap"

const (
	// DefaultInput is the workbook read when no input path is given.
	DefaultInput = "Endingtable.xlsx"
	// DefaultOutput is where the game's loader expects the endings file.
	DefaultOutput = "../lines/endings.json"
)

// Options configures a conversion run.
type Options struct {
	// Sheet names the sheet to read. Empty selects the first sheet.
	// Ignored for csv input.
	Sheet string
	// DryRun validates and transforms the input without writing output.
	DryRun bool
	// Logger receives per-row diagnostics. If nil, logging is disabled.
	Logger *zap.Logger
}

// DefaultOptions returns default conversion options.
func DefaultOptions() Options {
	return Options{}
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}
