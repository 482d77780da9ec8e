package dataprocessing

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"stanpulse/internal/config"
	"stanpulse/pkg/contracts/domain"
)

// SchemaError reports a required column missing from the source workbook.
// Schema errors are fatal: the run aborts before any derivation.
type SchemaError struct {
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing required column: %s", e.Column)
}

// ParseWorkbook reads a standardization-activity Excel export and extracts
// one raw ActivityRecord per data row. Cell values are trimmed but otherwise
// untouched; validation and derivation happen in later stages.
//
// sheetName selects the sheet to read; when empty, the first sheet carrying
// the expected header row is used.
func ParseWorkbook(filePath, sheetName string) ([]domain.ActivityRecord, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	rows, sheet, err := selectSheet(f, sheetName)
	if err != nil {
		return nil, err
	}

	headerRow, columnMap := locateHeader(rows)
	if headerRow == -1 {
		// No header row at all reads as every required column missing;
		// report the first so the message names a concrete column.
		return nil, &SchemaError{Column: config.RequiredColumns[0]}
	}

	for _, col := range config.RequiredColumns {
		if _, ok := columnMap[col]; !ok {
			return nil, &SchemaError{Column: col}
		}
	}

	slog.Info("located header row",
		slog.String("sheet", sheet),
		slog.Int("header_row", headerRow),
		slog.Int("total_rows", len(rows)))

	var records []domain.ActivityRecord
	for i := headerRow + 1; i < len(rows); i++ {
		row := rows[i]

		if isEmptyRow(row, columnMap) {
			continue
		}

		cell := func(col string) string {
			idx := columnMap[col]
			if idx < len(row) {
				return strings.TrimSpace(row[idx])
			}
			return ""
		}

		records = append(records, domain.ActivityRecord{
			Organization:   cell(config.ColOrganization),
			Division:       cell(config.ColDivision),
			Unit:           cell(config.ColUnit),
			StrategicField: cell(config.ColStrategicField),
			DetailedField:  cell(config.ColDetailedField),
			Status:         cell(config.ColStatus),
			Sequence:       cell(config.ColSequence),
			Contributors:   cell(config.ColContributors),
			Editors:        cell(config.ColEditors),
			Chairs:         cell(config.ColChairs),
			StartYear:      cell(config.ColStartYear),
			EndYear:        cell(config.ColEndYear),
		})
	}

	slog.Info("workbook parsed",
		slog.String("file", filePath),
		slog.Int("record_count", len(records)))

	return records, nil
}

// selectSheet returns the rows of the requested sheet, or of the first sheet
// that contains the expected header row when no name is given.
func selectSheet(f *excelize.File, sheetName string) ([][]string, string, error) {
	if sheetName != "" {
		rows, err := f.GetRows(sheetName)
		if err != nil {
			return nil, "", fmt.Errorf("failed to read sheet %q: %w", sheetName, err)
		}
		return rows, sheetName, nil
	}

	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			continue
		}
		if headerRow, _ := locateHeader(rows); headerRow != -1 {
			return rows, name, nil
		}
	}

	return nil, "", fmt.Errorf("no sheet with the expected header row found")
}

// locateHeader scans for the header row and maps column names to positions.
// The header row is the first row containing the division and status columns;
// completeness of the map is checked against RequiredColumns by the caller.
func locateHeader(rows [][]string) (int, map[string]int) {
	for i, row := range rows {
		columnMap := make(map[string]int, len(row))
		for j, header := range row {
			name := strings.TrimSpace(header)
			if name == "" {
				continue
			}
			if _, dup := columnMap[name]; !dup {
				columnMap[name] = j
			}
		}

		_, hasDivision := columnMap[config.ColDivision]
		_, hasStatus := columnMap[config.ColStatus]
		if hasDivision && hasStatus {
			return i, columnMap
		}
	}

	return -1, nil
}

// isEmptyRow reports whether every mapped column of the row is blank.
func isEmptyRow(row []string, columnMap map[string]int) bool {
	for _, idx := range columnMap {
		if idx < len(row) && strings.TrimSpace(row[idx]) != "" {
			return false
		}
	}
	return true
}
