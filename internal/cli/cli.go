// Package cli parses command-line arguments into an app.AppConfig.
package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/vk/gridresolve/internal/app"
)

// ExitError is an error carrying a specific process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated AppConfig,
// a boolean indicating the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.AppConfig, bool, error) {
	flagSet := flag.NewFlagSet("gridresolve", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
gridresolve - pattern-node activation and scope resolver for trade-setting grids.

Usage:
  gridresolve [options] [CONFIG_PATH]

Arguments:
  CONFIG_PATH
    Path to an .hcl run-config file describing the pattern table and
    trade-setting grid locations.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to the run-config file.")
	cFlag := flagSet.String("c", "", "Path to the run-config file (shorthand).")
	patternFlag := flagSet.String("pattern", "", "Pattern table path; overrides the config file.")
	settingsFlag := flagSet.String("settings", "", "Trade-setting grid path; overrides the config file.")
	outFlag := flagSet.String("out", "", "Output path; overrides the config file.")
	logFormatFlag := flagSet.String("log-format", "json", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	configPath := ""
	if *configFlag != "" {
		configPath = *configFlag
	} else if *cFlag != "" {
		configPath = *cFlag
	} else if flagSet.NArg() > 0 {
		configPath = flagSet.Arg(0)
	}

	if configPath == "" && *patternFlag == "" {
		flagSet.Usage()
		return nil, true, nil
	}

	config, err := app.NewConfig(app.AppConfig{
		ConfigPath:   configPath,
		PatternPath:  *patternFlag,
		SettingsPath: *settingsFlag,
		OutputPath:   *outFlag,
		LogFormat:    strings.ToLower(*logFormatFlag),
		LogLevel:     strings.ToLower(*logLevelFlag),
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	return config, false, nil
}
