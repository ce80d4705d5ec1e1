// =============================================================================
// BOM to Markdown Converter - XLSX Parser Module
// =============================================================================
//
// This module reads a bill of materials kept in an Excel workbook. The rows
// of one worksheet are returned as a table, the same shape the CSV parser
// produces, so the rest of the conversion does not care where rows came from.
//
// WORKBOOK LAYOUT:
//   Row 1 is the header, every following row is a part.
//   Cells are read as displayed (formatted values), not raw formulas.
//
// =============================================================================

package xlsxparser

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/bom2md/internal/config"
	"github.com/ginjaninja78/bom2md/internal/types"
)

// Extension is the file extension routed to this parser.
const Extension = ".xlsx"

// IsWorkbook reports whether filePath should be read as a workbook.
func IsWorkbook(filePath string) bool {
	return strings.EqualFold(filepath.Ext(filePath), Extension)
}

// Parse reads one worksheet of an XLSX workbook.
//
// PARAMETERS:
//   - filePath: The path to the XLSX file.
//   - settings: Selects the worksheet. The first sheet is used when empty.
//
// RETURNS:
//   - The worksheet rows. excelize omits trailing empty cells, so rows may
//     be shorter than the header.
//   - An error if the workbook cannot be opened or the sheet does not exist.
func Parse(filePath string, settings config.XLSXSettings) (*types.Table, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheetName, err := resolveSheet(f, settings.Sheet)
	if err != nil {
		return nil, err
	}

	records, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows from sheet %q: %w", sheetName, err)
	}

	rows := make([]types.Row, 0, len(records))
	for _, record := range records {
		rows = append(rows, types.Row(record))
	}

	return &types.Table{Rows: trimTrailingEmpty(rows), SourceFile: filePath}, nil
}

// resolveSheet picks the worksheet to read.
func resolveSheet(f *excelize.File, requested string) (string, error) {
	if requested == "" {
		name := f.GetSheetName(0)
		if name == "" {
			return "", fmt.Errorf("workbook has no sheets")
		}
		return name, nil
	}

	index, err := f.GetSheetIndex(requested)
	if err != nil {
		return "", fmt.Errorf("failed to look up sheet %q: %w", requested, err)
	}
	if index < 0 {
		return "", fmt.Errorf("sheet %q not found in workbook", requested)
	}

	return requested, nil
}

// trimTrailingEmpty drops the empty rows excelize reports after the last
// populated row (for example rows that only carry formatting).
func trimTrailingEmpty(rows []types.Row) []types.Row {
	end := len(rows)
	for end > 0 && isRowEmpty(rows[end-1]) {
		end--
	}
	return rows[:end]
}

// isRowEmpty checks if a row contains only empty values.
func isRowEmpty(row types.Row) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
