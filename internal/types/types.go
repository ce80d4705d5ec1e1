// =============================================================================
// BOM to Markdown Converter - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - csvparser
//   - xlsxparser
//   - mdwriter
//   - converter
//
// =============================================================================

package types

// =============================================================================
// TABLE TYPES
// =============================================================================

// Row is an ordered sequence of cells as read from one line of the source.
type Row []string

// Table is the full ordered sequence of rows read from a source file.
//
// When the table is not empty, Rows[0] is the header. Data rows may hold
// fewer or more cells than the header; nothing pads or truncates them.
type Table struct {
	// Rows contains every row in source order, header included.
	Rows []Row

	// SourceFile is the path the rows were read from.
	// Useful for log and error messages.
	SourceFile string
}

// Empty reports whether the table holds no rows at all.
func (t *Table) Empty() bool {
	return t == nil || len(t.Rows) == 0
}

// Header returns the first row, or nil for an empty table.
func (t *Table) Header() Row {
	if t.Empty() {
		return nil
	}
	return t.Rows[0]
}

// DataRows returns every row after the header.
func (t *Table) DataRows() []Row {
	if t.Empty() {
		return nil
	}
	return t.Rows[1:]
}

// ColumnCount is the number of cells in the header.
func (t *Table) ColumnCount() int {
	return len(t.Header())
}
