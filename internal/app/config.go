package app

import (
	"fmt"
	"path/filepath"
	"strings"
)

// AppConfig holds everything the application needs to run: the run-config
// file location, optional path overrides from the CLI, and logging options.
type AppConfig struct {
	ConfigPath string

	// Overrides for the corresponding run-config fields; empty means "use
	// the config file value".
	PatternPath  string
	SettingsPath string
	OutputPath   string

	LogFormat string
	LogLevel  string
}

// NewConfig validates a candidate AppConfig and applies defaults.
func NewConfig(c AppConfig) (*AppConfig, error) {
	if c.ConfigPath == "" && c.PatternPath == "" {
		return nil, fmt.Errorf("either a config file or a pattern table path is required")
	}
	if c.LogFormat == "" {
		c.LogFormat = "json"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", c.LogFormat)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", c.LogLevel)
	}
	return &c, nil
}

// inputFormat discriminates the supported table formats by file extension.
type inputFormat int

const (
	formatCSV inputFormat = iota
	formatXLSX
)

func detectFormat(path string) (inputFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return formatCSV, nil
	case ".xlsx", ".xlsm":
		return formatXLSX, nil
	default:
		return 0, fmt.Errorf("unsupported input format %q (want .csv, .xlsx or .xlsm)", filepath.Ext(path))
	}
}
