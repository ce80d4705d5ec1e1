// =============================================================================
// BOM to Markdown Converter - Main Entry Point
// =============================================================================
//
// This is the main entry point for the bom2md CLI application.
// It delegates command execution to the cmd package.
//
// USAGE:
//   bom2md                               - Convert bom.csv into bom.md
//   bom2md convert [source] [dest]       - Convert explicit paths
//   bom2md preview [markdown]            - Render a generated file as HTML
//   bom2md version                       - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : Parsing, rendering, conversion, configuration, logging
//   - pkg/           : Shared file utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/bom2md/cmd"
)

func main() {
	cmd.Execute()
}
