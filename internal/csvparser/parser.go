// =============================================================================
// BOM to Markdown Converter - CSV Parser Module
// =============================================================================
//
// This module is responsible for parsing the bill of materials CSV file.
// It handles:
//   - Quoted fields with embedded delimiters and line breaks
//   - Doubled quotes inside quoted fields
//   - Rows with differing cell counts (ragged rows)
//   - Stray quotes inside unquoted fields (inch marks such as 5" LCD)
//   - Blank lines, which become rows without cells
//
// The whole file is read into memory; rows are returned exactly as parsed.
// Cells are not trimmed and headers are not renamed.
//
// =============================================================================

package csvparser

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/ginjaninja78/bom2md/internal/config"
	"github.com/ginjaninja78/bom2md/internal/types"
)

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// Parse reads a CSV file and returns all of its rows.
//
// PARAMETERS:
//   - filePath: The path to the CSV file.
//   - settings: The CSV parsing settings.
//
// RETURNS:
//   - The parsed table. A file without rows yields an empty table, not an error.
//   - An error if the file cannot be opened, read, or parsed. Open errors wrap
//     the underlying *fs.PathError so callers can test for fs.ErrNotExist.
func Parse(filePath string, settings config.CSVSettings) (*types.Table, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	table, err := ParseReader(bufio.NewReader(file), settings)
	if err != nil {
		return nil, err
	}
	table.SourceFile = filePath

	return table, nil
}

// ParseReader parses CSV text from r.
//
// encoding/csv skips blank lines; they are put back as empty rows so that
// every line of the source is accounted for, trailing ones included.
func ParseReader(r io.Reader, settings config.CSVSettings) (*types.Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	csvReader := csv.NewReader(bytes.NewReader(data))
	configureReader(csvReader, settings)

	var rows []types.Row
	lastLine := 0
	for {
		record, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}

		startLine, _ := csvReader.FieldPos(0)
		rows = appendBlankRows(rows, startLine-lastLine-1)
		lastLine = endLine(csvReader, record)

		if err := checkEncoding(record); err != nil {
			return nil, fmt.Errorf("row %d: %w", len(rows)+1, err)
		}
		rows = append(rows, types.Row(record))
	}
	rows = appendBlankRows(rows, countLines(data)-lastLine)

	return &types.Table{Rows: rows}, nil
}

// endLine is the line a record finishes on. A quoted last field may span
// several lines.
func endLine(reader *csv.Reader, record []string) int {
	last := len(record) - 1
	line, _ := reader.FieldPos(last)
	return line + strings.Count(record[last], "\n")
}

// countLines counts lines the way the reader numbers them.
func countLines(data []byte) int {
	n := bytes.Count(data, []byte{'\n'})
	if len(data) > 0 && data[len(data)-1] != '\n' {
		n++
	}
	return n
}

func appendBlankRows(rows []types.Row, n int) []types.Row {
	for i := 0; i < n; i++ {
		rows = append(rows, types.Row{})
	}
	return rows
}

// configureReader configures the CSV reader based on the settings.
func configureReader(reader *csv.Reader, settings config.CSVSettings) {
	reader.Comma = settings.Comma()

	// Ragged rows are passed through untouched.
	reader.FieldsPerRecord = -1

	// Stray quotes are literal text unless strict quoting is requested.
	reader.LazyQuotes = !settings.StrictQuotes

	// Leading spaces are part of the cell value.
	reader.TrimLeadingSpace = false

	// Each record gets its own backing array; rows outlive the read loop.
	reader.ReuseRecord = false
}

// checkEncoding rejects cells that are not valid UTF-8.
func checkEncoding(record []string) error {
	for col, cell := range record {
		if !utf8.ValidString(cell) {
			return fmt.Errorf("column %d is not valid UTF-8", col+1)
		}
	}
	return nil
}
