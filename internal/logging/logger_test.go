package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/bom2md/internal/config"
)

func TestNewSupportedFormats(t *testing.T) {
	for _, format := range []string{"", "console", "json", "pretty", "JSON"} {
		logger, err := New(config.LogSettings{Level: "info", Format: format}, false)
		require.NoError(t, err, format)
		assert.NotNil(t, logger, format)
	}
}

func TestNewVerbose(t *testing.T) {
	logger, err := New(config.LogSettings{Level: "error"}, true)
	require.NoError(t, err)
	assert.NotNil(t, logger)
}

func TestNewUnsupportedFormat(t *testing.T) {
	_, err := New(config.LogSettings{Format: "xml"}, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported format "xml"`)
}

func TestNormalizeLevel(t *testing.T) {
	assert.Equal(t, "", normalizeLevel(""))
	assert.Equal(t, "", normalizeLevel("loud"))
	assert.NotEmpty(t, normalizeLevel(" Warning "))
	assert.Equal(t, normalizeLevel("warn"), normalizeLevel("warning"))
}

func TestNoOp(t *testing.T) {
	logger := NoOp()
	assert.NotPanics(t, func() {
		logger.Debug("d")
		logger.Info("i", "k", "v")
		logger.Warn("w")
		logger.Error("e")
	})
}

func TestRecorder(t *testing.T) {
	var r Recorder
	r.Info("converted", "rows", 3)
	r.Warn("empty")
	r.Error("boom")

	entries := r.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, []any{"rows", 3}, entries[0].Args)
	assert.Equal(t, []string{"empty"}, r.Messages("warn"))
	assert.Equal(t, "info: converted\nwarn: empty\nerror: boom\n", r.String())
}
