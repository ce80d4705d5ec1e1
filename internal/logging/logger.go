// =============================================================================
// BOM to Markdown Converter - Logging
// =============================================================================
//
// This package defines the leveled Logger contract used by the converter and
// builds the default implementation on top of go-logger.
//
// The converter never writes to stdout directly: every status, warning and
// error message goes through a Logger so the caller decides where it ends up.
//
// =============================================================================

package logging

import (
	"fmt"
	"strings"

	glog "github.com/goliatone/go-logger/glog"

	"github.com/ginjaninja78/bom2md/internal/config"
)

// Logger is the interface for logging.
// go-logger loggers satisfy it directly.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// New builds a go-logger backed Logger from the log settings.
// verbose forces the debug level regardless of the configured one.
func New(settings config.LogSettings, verbose bool) (Logger, error) {
	options := []glog.Option{}

	level := normalizeLevel(settings.Level)
	if verbose {
		level = glog.Debug
	}
	if level != "" {
		options = append(options, glog.WithLevel(level))
	}

	switch strings.ToLower(strings.TrimSpace(settings.Format)) {
	case "", "console":
		options = append(options, glog.WithLoggerTypeConsole())
	case "json":
		options = append(options, glog.WithLoggerTypeJSON())
	case "pretty":
		options = append(options, glog.WithLoggerTypePretty())
	default:
		return nil, fmt.Errorf("logging: unsupported format %q", settings.Format)
	}

	return glog.NewLogger(options...).GetLogger("bom2md"), nil
}

func normalizeLevel(level string) string {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return glog.Debug
	case "info":
		return glog.Info
	case "warn", "warning":
		return glog.Warn
	case "error":
		return glog.Error
	default:
		return ""
	}
}

// NoOp returns a Logger that discards everything.
func NoOp() Logger {
	return noop{}
}

type noop struct{}

func (noop) Debug(string, ...any) {}
func (noop) Info(string, ...any)  {}
func (noop) Warn(string, ...any)  {}
func (noop) Error(string, ...any) {}
