// =============================================================================
// BOM to Markdown Converter - Converter Module
// =============================================================================
//
// This module contains the core conversion logic: one source file in, one
// Markdown file out.
//
// CONVERSION PIPELINE:
//   1. Parse the source (CSV, or XLSX for .xlsx paths) into a table
//   2. Stop with a warning if the table has no rows
//   3. Render the table as a Markdown document
//   4. Write the document to the destination
//   5. Report the outcome
//
// ERROR HANDLING:
//   Convert returns classified errors (NotFound, ConversionError).
//   Run is the top-level call: it reports every outcome through the logger
//   and never returns an error.
//
// =============================================================================

package converter

import (
	"fmt"
	"time"

	"github.com/ginjaninja78/bom2md/internal/config"
	"github.com/ginjaninja78/bom2md/internal/csvparser"
	"github.com/ginjaninja78/bom2md/internal/logging"
	"github.com/ginjaninja78/bom2md/internal/mdwriter"
	"github.com/ginjaninja78/bom2md/internal/types"
	"github.com/ginjaninja78/bom2md/internal/xlsxparser"
	"github.com/ginjaninja78/bom2md/pkg/utils"
)

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of converting a single file.
type Result struct {
	// Source is the path of the file that was read.
	Source string

	// Destination is the path of the Markdown file.
	Destination string

	// Written is true once the destination has been written.
	Written bool

	// Replaced is true when Written overwrote an existing file.
	Replaced bool

	// Empty is true when the source had no rows. Nothing is written.
	Empty bool

	// Error is the classified error, nil on success and for empty sources.
	Error error

	// Stats contains conversion statistics.
	Stats Stats
}

// Stats contains statistics about a conversion.
type Stats struct {
	// DataRows is the number of rows after the header.
	DataRows int

	// Columns is the number of header cells.
	Columns int

	// Bytes is the size of the destination after writing.
	Bytes int64

	// Elapsed is the time taken by the conversion.
	Elapsed time.Duration
}

// =============================================================================
// CONVERTER STRUCTURE
// =============================================================================

// Converter turns bill of materials files into Markdown tables.
type Converter struct {
	config *config.Config
	logger logging.Logger
}

// New creates a new Converter.
// A nil config uses the defaults; a nil logger discards messages.
func New(cfg *config.Config, logger logging.Logger) *Converter {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Converter{
		config: cfg,
		logger: logger,
	}
}

// =============================================================================
// CONVERSION
// =============================================================================

// Run converts source into destination and reports the outcome.
//
// Errors are logged, recorded on the Result, and not returned: a failed
// conversion ends this invocation and nothing else.
func (c *Converter) Run(source, destination string) Result {
	result, err := c.convert(source, destination)
	if err != nil {
		result.Error = err
		c.logger.Error(Message(err), "source", source, "destination", destination)
		return result
	}

	if result.Empty {
		c.logger.Warn(fmt.Sprintf("Warning: %s is empty.", source), "source", source)
		return result
	}

	c.logger.Info(
		fmt.Sprintf("Successfully converted %s to %s", source, destination),
		"rows", result.Stats.DataRows,
		"columns", result.Stats.Columns,
		"bytes", result.Stats.Bytes,
		"replaced", result.Replaced,
		"elapsed", result.Stats.Elapsed,
	)
	return result
}

// Convert converts source into destination.
//
// RETURNS:
//   - nil on success, and for a source without rows (nothing is written).
//   - A NotFound error when the source does not exist.
//   - A ConversionError for any other read, parse, or write failure.
func (c *Converter) Convert(source, destination string) error {
	_, err := c.convert(source, destination)
	return err
}

func (c *Converter) convert(source, destination string) (Result, error) {
	startTime := time.Now()
	result := Result{
		Source:      source,
		Destination: destination,
	}

	c.logger.Debug("reading source", "source", source)

	table, err := c.parse(source)
	if err != nil {
		return result, SourceError(err)
	}

	if table.Empty() {
		result.Empty = true
		return result, nil
	}

	result.Stats.DataRows = len(table.DataRows())
	result.Stats.Columns = table.ColumnCount()
	c.logger.Debug("parsed source",
		"source", table.SourceFile,
		"rows", result.Stats.DataRows,
		"columns", result.Stats.Columns,
	)

	document := mdwriter.Render(table)
	replacing := utils.FileExists(destination)
	if replacing {
		c.logger.Debug("replacing destination", "destination", destination)
	}
	if err := utils.WriteFileAtomic(destination, document); err != nil {
		return result, conversionError(fmt.Errorf("failed to write %s: %w", destination, err))
	}

	result.Written = true
	result.Replaced = replacing
	result.Stats.Bytes = int64(len(document))
	if size, err := utils.GetFileSize(destination); err == nil {
		result.Stats.Bytes = size
	}
	result.Stats.Elapsed = time.Since(startTime)

	return result, nil
}

// parse reads source with the parser matching its extension.
func (c *Converter) parse(source string) (*types.Table, error) {
	if xlsxparser.IsWorkbook(source) {
		return xlsxparser.Parse(source, c.config.XLSX)
	}
	return csvparser.Parse(source, c.config.CSV)
}
