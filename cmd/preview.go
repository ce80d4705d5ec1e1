// =============================================================================
// BOM to Markdown Converter - Preview Command
// =============================================================================
//
// This file defines the 'preview' command, which renders a generated
// Markdown document as HTML.
//
// COMMAND USAGE:
//   bom2md preview [markdown] [--out file.html]
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/bom2md/internal/converter"
	"github.com/ginjaninja78/bom2md/internal/preview"
	"github.com/ginjaninja78/bom2md/pkg/utils"
)

// previewOut is the HTML file to write. Empty means stdout.
var previewOut string

// previewCmd represents the 'preview' command.
var previewCmd = &cobra.Command{
	Use:   "preview [markdown]",
	Short: "Render a generated Markdown file as HTML",
	Long: `Preview renders a Markdown document (the configured destination by
default) to HTML using GitHub Flavored Markdown tables. The HTML goes to
stdout unless --out is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadRuntime()
		if err != nil {
			return err
		}

		source := cfg.Destination
		if len(args) > 0 {
			source = args[0]
		}

		html, err := preview.RenderFile(source)
		if err != nil {
			if converter.IsNotFound(converter.SourceError(err)) {
				return fmt.Errorf("markdown file not found: %s", source)
			}
			return err
		}

		if previewOut == "" {
			_, err = cmd.OutOrStdout().Write(html)
			return err
		}

		if err := utils.WriteFileAtomic(previewOut, html); err != nil {
			return fmt.Errorf("failed to write preview: %w", err)
		}
		logger.Info(fmt.Sprintf("Wrote preview of %s to %s", source, previewOut))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().StringVarP(
		&previewOut,
		"out",
		"o",
		"",
		"Write the HTML to this file instead of stdout",
	)
}
