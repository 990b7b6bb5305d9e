package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/endingtable-go/pkg/endingtable"
	"github.com/xuri/excelize/v2"
)

func writeInput(t *testing.T, dir string) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	rows := [][]interface{}{
		{"ending_id", "mood_min", "mood_max", "player_win", "title", "body_text"},
		{1, 0, 50, "TRUE", "Dawn", "a / b"},
		{"oops", 51, 100, "FALSE", "Dusk", "c"},
	}
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &rows[i]))
	}

	path := filepath.Join(dir, endingtable.DefaultInput)
	require.NoError(t, f.SaveAs(path))
	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if args == nil {
		args = []string{} // nil makes cobra fall back to os.Args
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// chdir switches to dir for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestRunPositionalArgs(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir)
	output := filepath.Join(dir, "out", "endings.json")

	stdout, stderr, err := execute(t, input, output)
	require.NoError(t, err)

	assert.Contains(t, stdout, "Input:  "+input)
	assert.Contains(t, stdout, "Output: "+output)
	assert.Contains(t, stdout, "Wrote 1 endings (1 rows skipped, 0 warnings)")
	assert.Contains(t, stderr, "skipping row")
	assert.FileExists(t, output)
}

func TestRunDefaults(t *testing.T) {
	root := t.TempDir()
	work := filepath.Join(root, "table")
	require.NoError(t, os.MkdirAll(work, 0755))
	writeInput(t, work)
	chdir(t, work)

	_, _, err := execute(t)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(root, "lines", "endings.json"))
}

func TestRunConfigFile(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir)
	output := filepath.Join(dir, "configured.json")
	cfg := filepath.Join(dir, "endingtable.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("input: "+input+"\noutput: "+output+"\n"), 0644))

	_, stderr, err := execute(t, "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, stderr, "Using config file")
	assert.FileExists(t, output)
}

func TestRunFlagOverridesConfig(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir)
	cfg := filepath.Join(dir, "endingtable.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("output: "+filepath.Join(dir, "from-config.json")+"\n"), 0644))
	output := filepath.Join(dir, "from-flag.json")

	_, _, err := execute(t, "--config", cfg, "-i", input, "-o", output)
	require.NoError(t, err)
	assert.FileExists(t, output)
	assert.NoFileExists(t, filepath.Join(dir, "from-config.json"))
}

func TestRunDryRun(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir)
	output := filepath.Join(dir, "endings.json")

	stdout, _, err := execute(t, "--dry-run", input, output)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Dry run: 1 endings validated")
	assert.NoFileExists(t, output)
}

func TestRunMissingInput(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "endings.json")

	_, stderr, err := execute(t, filepath.Join(dir, "nope.xlsx"), output)
	require.ErrorIs(t, err, endingtable.ErrInputNotFound)
	assert.Contains(t, stderr, "conversion failed: input file not found")
	assert.NoFileExists(t, output)
}

func TestRunTooManyArgs(t *testing.T) {
	_, stderr, err := execute(t, "a", "b", "c")
	require.Error(t, err)
	assert.Contains(t, stderr, "accepts at most 2 arg(s)")
}

func TestRunMalformedConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "endingtable.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("input: [unterminated\n"), 0644))

	_, stderr, err := execute(t, "--config", cfg)
	require.Error(t, err)
	assert.Contains(t, stderr, "reading config")
}
