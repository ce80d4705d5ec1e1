package csvparser

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/bom2md/internal/config"
	"github.com/ginjaninja78/bom2md/internal/types"
)

func defaults() config.CSVSettings {
	return config.Default().CSV
}

func TestParseReaderQuoting(t *testing.T) {
	input := "Part,Qty,Notes\n" +
		"Resistor,10,\n" +
		"Capacitor,5,\"100nF, 16V\"\n" +
		"Header,1,\"2.54mm \"\"pitch\"\"\"\n" +
		"Crystal,1,\"line one\nline two\"\n"

	table, err := ParseReader(strings.NewReader(input), defaults())
	require.NoError(t, err)

	assert.Equal(t, []types.Row{
		{"Part", "Qty", "Notes"},
		{"Resistor", "10", ""},
		{"Capacitor", "5", "100nF, 16V"},
		{"Header", "1", `2.54mm "pitch"`},
		{"Crystal", "1", "line one\nline two"},
	}, table.Rows)
}

func TestParseReaderRaggedRows(t *testing.T) {
	input := "A,B,C\n1\n1,2,3,4,5\n"

	table, err := ParseReader(strings.NewReader(input), defaults())
	require.NoError(t, err)
	require.Len(t, table.Rows, 3)
	assert.Len(t, table.Rows[1], 1)
	assert.Len(t, table.Rows[2], 5)
}

func TestParseReaderKeepsLeadingSpace(t *testing.T) {
	table, err := ParseReader(strings.NewReader("a, b\n"), defaults())
	require.NoError(t, err)
	assert.Equal(t, types.Row{"a", " b"}, table.Rows[0])
}

func TestParseReaderEmpty(t *testing.T) {
	table, err := ParseReader(strings.NewReader(""), defaults())
	require.NoError(t, err)
	assert.True(t, table.Empty())
}

func TestParseReaderCRLF(t *testing.T) {
	table, err := ParseReader(strings.NewReader("a,b\r\n1,2\r\n"), defaults())
	require.NoError(t, err)
	assert.Equal(t, []types.Row{{"a", "b"}, {"1", "2"}}, table.Rows)
}

func TestParseReaderCustomDelimiter(t *testing.T) {
	settings := config.CSVSettings{Delimiter: ";"}
	table, err := ParseReader(strings.NewReader("a;b,c\n"), settings)
	require.NoError(t, err)
	assert.Equal(t, types.Row{"a", "b,c"}, table.Rows[0])
}

func TestParseReaderBareQuote(t *testing.T) {
	input := "Part,Size\nScreen,5\" LCD\n"

	table, err := ParseReader(strings.NewReader(input), defaults())
	require.NoError(t, err)
	assert.Equal(t, types.Row{"Screen", `5" LCD`}, table.Rows[1])

	strict := config.CSVSettings{Delimiter: ",", StrictQuotes: true}
	_, err = ParseReader(strings.NewReader(input), strict)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read CSV")
}

func TestParseReaderUnterminatedQuote(t *testing.T) {
	input := "Part,Notes\nLED,\"unterminated\n"

	table, err := ParseReader(strings.NewReader(input), defaults())
	require.NoError(t, err)
	assert.Equal(t, types.Row{"LED", "unterminated\n"}, table.Rows[1])

	strict := config.CSVSettings{Delimiter: ",", StrictQuotes: true}
	_, err = ParseReader(strings.NewReader(input), strict)
	require.Error(t, err)
}

func TestParseReaderBlankLines(t *testing.T) {
	input := "Part,Qty\nR1,1\n\nC1,2\n\r\n"

	table, err := ParseReader(strings.NewReader(input), defaults())
	require.NoError(t, err)
	assert.Equal(t, []types.Row{
		{"Part", "Qty"},
		{"R1", "1"},
		{},
		{"C1", "2"},
		{},
	}, table.Rows)
}

func TestParseReaderBlankLinesAfterMultilineCell(t *testing.T) {
	input := "Part,Notes\nX1,\"a\nb\"\n\nY1,c"

	table, err := ParseReader(strings.NewReader(input), defaults())
	require.NoError(t, err)
	assert.Equal(t, []types.Row{
		{"Part", "Notes"},
		{"X1", "a\nb"},
		{},
		{"Y1", "c"},
	}, table.Rows)
}

func TestParseReaderNewlineOnly(t *testing.T) {
	table, err := ParseReader(strings.NewReader("\n"), defaults())
	require.NoError(t, err)
	assert.False(t, table.Empty())
	assert.Equal(t, []types.Row{{}}, table.Rows)
}

func TestParseReaderKeepsByteOrderMark(t *testing.T) {
	table, err := ParseReader(strings.NewReader("\ufeffPart,Qty\nLED,1\n"), defaults())
	require.NoError(t, err)
	assert.Equal(t, types.Row{"\ufeffPart", "Qty"}, table.Header())
}

func TestParseReaderInvalidUTF8(t *testing.T) {
	input := "Part,Qty\nRes\xffistor,1\n"

	_, err := ParseReader(strings.NewReader(input), defaults())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
	assert.Contains(t, err.Error(), "column 1 is not valid UTF-8")
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bom.csv")
	require.NoError(t, os.WriteFile(path, []byte("Part,Qty\nLED,4\n"), 0o644))

	table, err := Parse(path, defaults())
	require.NoError(t, err)
	assert.Equal(t, path, table.SourceFile)
	assert.Equal(t, 2, table.ColumnCount())
	assert.Len(t, table.DataRows(), 1)
}

func TestParseMissingFile(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "missing.csv"), defaults())
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}
