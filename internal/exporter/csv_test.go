package exporter

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stanpulse/internal/config"
)

func testWriter(t *testing.T) (*CSVWriter, string) {
	t.Helper()
	dir := t.TempDir()
	return NewCSVWriter(&config.Paths{ReportsDir: dir}), dir
}

func TestWriteSimpleCSV(t *testing.T) {
	w, dir := testWriter(t)

	err := w.WriteSimpleCSV("scores.csv", []string{"field", "score"}, [][]string{
		{"방송미디어", "2.5"},
		{"광전송", "1.0"},
	})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "scores.csv"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(data), "\xEF\xBB\xBF"), "BOM present")

	reader := csv.NewReader(strings.NewReader(strings.TrimPrefix(string(data), "\xEF\xBB\xBF")))
	rows, err := reader.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"field", "score"}, rows[0])
	assert.Equal(t, []string{"방송미디어", "2.5"}, rows[1])
}

func TestWriteCSVCreatesNestedDirectory(t *testing.T) {
	w, dir := testWriter(t)

	err := w.WriteSimpleCSV(filepath.Join("sub", "out.csv"), []string{"a"}, nil)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "sub", "out.csv"))
}

func TestStreamWriter(t *testing.T) {
	w, dir := testWriter(t)

	sw, err := w.CreateStreamWriter("cleaned.csv", []string{"org", "division"})
	require.NoError(t, err)

	require.NoError(t, sw.WriteRecord([]string{"ETRI", "미디어본부"}))
	require.NoError(t, sw.WriteRecord([]string{"ETRI", "네트워크본부"}))
	require.NoError(t, sw.Close())

	data, err := os.ReadFile(filepath.Join(dir, "cleaned.csv"))
	require.NoError(t, err)

	reader := csv.NewReader(strings.NewReader(strings.TrimPrefix(string(data), "\xEF\xBB\xBF")))
	rows, err := reader.ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}
