// =============================================================================
// BOM to Markdown Converter - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. Run without a
// subcommand, the root command converts the default bill of materials
// (bom.csv) into bom.md in the current working directory.
//
// COBRA CLI STRUCTURE:
//   rootCmd (bom2md)
//   ├── convertCmd (bom2md convert [source] [destination])
//   ├── previewCmd (bom2md preview [markdown])
//   └── versionCmd (bom2md version)
//
// CONFIGURATION:
//   The root command is responsible for:
//   1. Setting up global flags (--config, --verbose)
//   2. Loading the optional configuration file
//   3. Setting up logging
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/bom2md/internal/config"
	"github.com/ginjaninja78/bom2md/internal/logging"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// newLogger builds the logger handed to the converter.
var newLogger = logging.New

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "bom2md",
	Short: "Convert a bill of materials CSV file into a Markdown table",
	Long: `bom2md reads a bill of materials kept as CSV (or as an .xlsx workbook)
and writes it as a Markdown document with a pipe table.

Run without arguments it converts bom.csv into bom.md in the current
directory. Conversion problems are reported and never change the exit code.

Example Usage:
  bom2md                                # bom.csv -> bom.md
  bom2md convert parts.csv docs/bom.md  # explicit paths
  bom2md preview docs/bom.md            # render the table as HTML`,

	Args: cobra.NoArgs,

	// SilenceUsage keeps usage text out of runtime error output.
	SilenceUsage: true,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(nil)
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init sets up the persistent flags shared by every command.
func init() {
	// --config flag: optional configuration file. A missing file means defaults.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		config.DefaultConfigFile,
		"Path to the configuration file (defaults apply when it does not exist)",
	)

	// --verbose flag: Enables debug logging.
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}

// loadRuntime loads the configuration and builds the logger for a command.
func loadRuntime() (*config.Config, logging.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, err
	}

	logger, err := newLogger(cfg.Log, verbose)
	if err != nil {
		return nil, nil, err
	}

	return cfg, logger, nil
}
