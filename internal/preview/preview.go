// =============================================================================
// BOM to Markdown Converter - HTML Preview Module
// =============================================================================
//
// This module renders a generated bill of materials document to HTML so the
// table can be checked in a browser. It uses goldmark with the GitHub
// Flavored Markdown extension, which provides pipe tables.
//
// =============================================================================

package preview

import (
	"bytes"
	"fmt"
	"os"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var markdown = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM, // Tables
	),
	goldmark.WithRendererOptions(
		html.WithXHTML(),
	),
)

// Render converts a Markdown document to an HTML fragment.
func Render(source []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := markdown.Convert(source, &buf); err != nil {
		return nil, fmt.Errorf("failed to render markdown: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderFile reads the Markdown file at path and renders it.
// Read errors wrap the underlying *fs.PathError.
func RenderFile(path string) ([]byte, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Render(source)
}
