// =============================================================================
// BOM to Markdown Converter - Configuration Module
// =============================================================================
//
// This module is responsible for loading the optional configuration file.
// Every setting has a built-in default, so the converter runs without any
// configuration file present:
//
//   source:       bom.csv
//   destination:  bom.md
//   log.level:    info
//   log.format:   console
//   csv.delimiter ","
//
// CONFIGURATION FILE:
//   bom2md.yaml in the working directory, or the path given with --config.
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// DEFAULTS
// =============================================================================

const (
	// DefaultConfigFile is the configuration file looked up when --config is not given.
	DefaultConfigFile = "bom2md.yaml"

	// DefaultSource is the CSV file converted when no source is given.
	DefaultSource = "bom.csv"

	// DefaultDestination is the Markdown file written when no destination is given.
	DefaultDestination = "bom.md"

	// DefaultDelimiter separates fields in the CSV source.
	DefaultDelimiter = ","

	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"
)

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the application configuration.
type Config struct {
	// Source is the path of the bill of materials to convert.
	// Paths ending in .xlsx are read as workbooks.
	// Default: "bom.csv"
	Source string `yaml:"source"`

	// Destination is the path of the Markdown file to write.
	// Its parent directory must already exist.
	// Default: "bom.md"
	Destination string `yaml:"destination"`

	// Log contains the logging settings.
	Log LogSettings `yaml:"log"`

	// CSV contains the settings for parsing CSV sources.
	CSV CSVSettings `yaml:"csv"`

	// XLSX contains the settings for reading workbook sources.
	XLSX XLSXSettings `yaml:"xlsx"`
}

// LogSettings controls the logger built by the logging package.
type LogSettings struct {
	// Level controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	Level string `yaml:"level"`

	// Format selects the log line layout.
	// Valid values: "console", "json", "pretty"
	Format string `yaml:"format"`
}

// CSVSettings contains settings for parsing CSV files.
type CSVSettings struct {
	// Delimiter is the character used to separate fields.
	// Must be a single character other than a quote or line break.
	Delimiter string `yaml:"delimiter"`

	// StrictQuotes rejects quotes appearing inside unquoted fields (such as
	// inch marks in 5" LCD) and quoted fields left open at end of file.
	// Off by default: those quotes are kept as literal text.
	StrictQuotes bool `yaml:"strict_quotes"`
}

// XLSXSettings contains settings for reading .xlsx sources.
type XLSXSettings struct {
	// Sheet is the worksheet holding the bill of materials.
	// The first sheet is used when empty.
	Sheet string `yaml:"sheet"`
}

// Comma returns the delimiter as the rune encoding/csv expects.
func (s CSVSettings) Comma() rune {
	if s.Delimiter == "" {
		return ','
	}
	r, _ := utf8.DecodeRuneInString(s.Delimiter)
	return r
}

// =============================================================================
// LOADING
// =============================================================================

// Default returns the configuration used when no file is present.
func Default() *Config {
	config := &Config{}
	applyDefaults(config)
	return config
}

// Load reads the configuration file at configPath.
//
// A missing file is not an error: the defaults are returned instead. A file
// that exists but cannot be read, parsed, or validated is an error.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&config)

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(config *Config) {
	if config.Source == "" {
		config.Source = DefaultSource
	}
	if config.Destination == "" {
		config.Destination = DefaultDestination
	}
	if config.Log.Level == "" {
		config.Log.Level = DefaultLogLevel
	}
	if config.Log.Format == "" {
		config.Log.Format = DefaultLogFormat
	}
	if config.CSV.Delimiter == "" {
		config.CSV.Delimiter = DefaultDelimiter
	}
}

// validate checks the values the rest of the program relies on.
func validate(config *Config) error {
	var problems []string

	if utf8.RuneCountInString(config.CSV.Delimiter) != 1 {
		problems = append(problems, fmt.Sprintf("csv.delimiter must be a single character, got %q", config.CSV.Delimiter))
	} else {
		switch config.CSV.Comma() {
		case '"', '\r', '\n', utf8.RuneError:
			problems = append(problems, fmt.Sprintf("csv.delimiter %q is not allowed", config.CSV.Delimiter))
		}
	}

	switch strings.ToLower(config.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		problems = append(problems, fmt.Sprintf("log.level %q is not one of debug, info, warn, error", config.Log.Level))
	}

	switch strings.ToLower(config.Log.Format) {
	case "console", "json", "pretty":
	default:
		problems = append(problems, fmt.Sprintf("log.format %q is not one of console, json, pretty", config.Log.Format))
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}
