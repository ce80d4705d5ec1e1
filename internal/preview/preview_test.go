package preview

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/bom2md/internal/mdwriter"
	"github.com/ginjaninja78/bom2md/internal/types"
)

func TestRenderGeneratedTable(t *testing.T) {
	doc := mdwriter.Render(&types.Table{Rows: []types.Row{
		{"Part", "Qty", "Notes"},
		{"Resistor", "10", ""},
		{"Capacitor", "5", "100nF, 16V"},
	}})

	out, err := Render(doc)
	require.NoError(t, err)

	html := string(out)
	assert.Contains(t, html, "<h1>Bill of Materials</h1>")
	assert.Contains(t, html, "<table>")
	assert.Contains(t, html, "<th>Part</th>")
	assert.Contains(t, html, "<th>Notes</th>")
	assert.Contains(t, html, "<td>Capacitor</td>")
	assert.Contains(t, html, "<td>100nF, 16V</td>")
	assert.Equal(t, 2, strings.Count(html, "<tr>")-1, "two body rows after the header row")
}

func TestRenderFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bom.md")
	require.NoError(t, os.WriteFile(path, []byte("# Bill of Materials\n\n| A |\n| --- |\n| 1 |\n"), 0o644))

	out, err := RenderFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(out), "<td>1</td>")
}

func TestRenderFileMissing(t *testing.T) {
	_, err := RenderFile(filepath.Join(t.TempDir(), "absent.md"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}
