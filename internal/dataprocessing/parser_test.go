package dataprocessing

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"stanpulse/internal/config"
)

// writeWorkbook creates a test workbook with the given rows on one sheet.
func writeWorkbook(t *testing.T, sheet string, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheet)
	require.NoError(t, err)
	f.SetActiveSheet(index)
	require.NoError(t, f.DeleteSheet("Sheet1"))

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "export.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func headerRow() []interface{} {
	row := make([]interface{}, len(config.RequiredColumns))
	for i, col := range config.RequiredColumns {
		row[i] = col
	}
	return row
}

func TestParseWorkbook(t *testing.T) {
	path := writeWorkbook(t, "표준화활동", [][]interface{}{
		{"2025년 표준화활동 현황"}, // title row above the header
		headerRow(),
		{"ETRI", "미디어본부", "미디어부", "미디어", "방송미디어", "제정", "3",
			"홍길동(ETRI)", "", "의장(홍길동)", "2023", "2025"},
		{}, // blank row is skipped
		{"ETRI", "네트워크본부", "전송부", "네트워크", "광전송", "계획", "신규",
			"", "0", "", "2025", ""},
	})

	records, err := ParseWorkbook(path, "")
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "ETRI", records[0].Organization)
	assert.Equal(t, "미디어본부", records[0].Division)
	assert.Equal(t, "방송미디어", records[0].DetailedField)
	assert.Equal(t, "제정", records[0].Status)
	assert.Equal(t, "3", records[0].Sequence)
	assert.Equal(t, "의장(홍길동)", records[0].Chairs)
	assert.Equal(t, "2023", records[0].StartYear)

	assert.Equal(t, "신규", records[1].Sequence)
	assert.Equal(t, "", records[1].EndYear, "short rows read missing cells as empty")
}

func TestParseWorkbookExplicitSheet(t *testing.T) {
	path := writeWorkbook(t, "데이터", [][]interface{}{
		headerRow(),
		{"ETRI", "미디어본부", "미디어부", "미디어", "방송미디어", "개발중", "1",
			"", "", "", "2024", "2026"},
	})

	records, err := ParseWorkbook(path, "데이터")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "개발중", records[0].Status)

	_, err = ParseWorkbook(path, "없는시트")
	assert.Error(t, err)
}

func TestParseWorkbookMissingColumn(t *testing.T) {
	// Header carries division and status so it is located, but the chair
	// column is absent: that must fail fast with a named-column error.
	header := []interface{}{
		config.ColOrganization, config.ColDivision, config.ColUnit,
		config.ColStrategicField, config.ColDetailedField, config.ColStatus,
		config.ColSequence, config.ColContributors, config.ColEditors,
		config.ColStartYear, config.ColEndYear,
	}
	path := writeWorkbook(t, "표준화활동", [][]interface{}{
		header,
		{"ETRI", "미디어본부", "미디어부", "미디어", "방송미디어", "제정", "1", "", "", "2024", "2025"},
	})

	_, err := ParseWorkbook(path, "")
	require.Error(t, err)

	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, config.ColChairs, schemaErr.Column)
}

func TestParseWorkbookNoHeader(t *testing.T) {
	path := writeWorkbook(t, "표준화활동", [][]interface{}{
		{"아무", "헤더도", "없음"},
	})

	_, err := ParseWorkbook(path, "")
	assert.Error(t, err)
}

func TestParseWorkbookMissingFile(t *testing.T) {
	_, err := ParseWorkbook(filepath.Join(t.TempDir(), "nope.xlsx"), "")
	assert.Error(t, err)
}
