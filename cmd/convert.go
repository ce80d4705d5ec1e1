// =============================================================================
// BOM to Markdown Converter - Convert Command
// =============================================================================
//
// This file defines the 'convert' command, which converts an explicit source
// into an explicit destination. Omitted arguments fall back to the
// configured source and destination (bom.csv and bom.md by default).
//
// COMMAND USAGE:
//   bom2md convert [source] [destination]
//
// =============================================================================

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ginjaninja78/bom2md/internal/converter"
)

// convertCmd represents the 'convert' command.
var convertCmd = &cobra.Command{
	Use:   "convert [source] [destination]",
	Short: "Convert a bill of materials into a Markdown table",
	Long: `Convert reads the source bill of materials (CSV, or .xlsx workbook) and
writes a Markdown document titled "Bill of Materials" to the destination.

An empty source produces a warning and no output. A missing source or any
read, parse, or write failure is reported; the destination is left untouched.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(args)
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

// runConvert performs one conversion. Conversion failures are reported by
// the converter and do not surface as command errors; only configuration
// and logger setup problems do.
func runConvert(args []string) error {
	cfg, logger, err := loadRuntime()
	if err != nil {
		return err
	}

	source, destination := cfg.Source, cfg.Destination
	if len(args) > 0 {
		source = args[0]
	}
	if len(args) > 1 {
		destination = args[1]
	}

	converter.New(cfg, logger).Run(source, destination)
	return nil
}
