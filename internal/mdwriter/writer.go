// =============================================================================
// BOM to Markdown Converter - Markdown Writer Module
// =============================================================================
//
// This module renders a parsed table as a Markdown document.
//
// DOCUMENT STRUCTURE:
//
//   # Bill of Materials                 <!-- Title -->
//                                       <!-- Blank line -->
//   | Part | Qty | Notes |              <!-- Header row -->
//   | --- | --- | --- |                 <!-- One separator per header cell -->
//   | Resistor | 10 |  |               <!-- Data rows, one per source row -->
//   | Capacitor | 5 | 100nF, 16V |
//
// Data rows keep their own cell count: a row shorter or longer than the
// header is written as-is. Cell text is emitted verbatim.
//
// =============================================================================

package mdwriter

import (
	"bytes"
	"strings"

	"github.com/ginjaninja78/bom2md/internal/types"
)

const (
	// Title is the top-level heading of every generated document.
	Title = "Bill of Materials"

	cellSeparator = " | "
	separatorCell = "---"
)

// FormatRow renders cells as one pipe-table line.
// A row without cells renders as "|  |".
func FormatRow(cells []string) string {
	return "| " + strings.Join(cells, cellSeparator) + " |"
}

// SeparatorRow renders the line placed under a header of columns cells.
func SeparatorRow(columns int) string {
	cells := make([]string, columns)
	for i := range cells {
		cells[i] = separatorCell
	}
	return FormatRow(cells)
}

// Lines renders the table as Markdown lines: header, separator, data rows.
// An empty table has no lines.
func Lines(table *types.Table) []string {
	if table.Empty() {
		return nil
	}

	header := table.Header()
	data := table.DataRows()

	lines := make([]string, 0, len(data)+2)
	lines = append(lines, FormatRow(header))
	lines = append(lines, SeparatorRow(len(header)))
	for _, row := range data {
		lines = append(lines, FormatRow(row))
	}

	return lines
}

// Render builds the full document: title, blank line, table lines, and a
// trailing newline.
func Render(table *types.Table) []byte {
	var buffer bytes.Buffer

	buffer.WriteString("# ")
	buffer.WriteString(Title)
	buffer.WriteString("\n\n")
	buffer.WriteString(strings.Join(Lines(table), "\n"))
	buffer.WriteString("\n")

	return buffer.Bytes()
}
