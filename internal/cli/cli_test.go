package cli_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/vk/gridresolve/internal/app"
	"github.com/vk/gridresolve/internal/cli"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		args           []string
		expectExit     bool
		expectErr      bool
		expectedConfig *app.AppConfig
		checkOutput    func(t *testing.T, output string)
	}{
		{
			name: "happy path with all flags",
			args: []string{
				"-config", "/test/run.hcl",
				"--pattern=/test/pattern.csv",
				"--settings=/test/settings.csv",
				"--out=/test/out.csv",
				"--log-level=debug",
				"--log-format=text",
			},
			expectedConfig: &app.AppConfig{
				ConfigPath:   "/test/run.hcl",
				PatternPath:  "/test/pattern.csv",
				SettingsPath: "/test/settings.csv",
				OutputPath:   "/test/out.csv",
				LogLevel:     "debug",
				LogFormat:    "text",
			},
		},
		{
			name: "shorthand flag and defaults",
			args: []string{"-c", "/short/run.hcl"},
			expectedConfig: &app.AppConfig{
				ConfigPath: "/short/run.hcl",
				LogLevel:   "info",
				LogFormat:  "json",
			},
		},
		{
			name: "positional argument for config path",
			args: []string{"/positional/run.hcl"},
			expectedConfig: &app.AppConfig{
				ConfigPath: "/positional/run.hcl",
				LogLevel:   "info",
				LogFormat:  "json",
			},
		},
		{
			name: "pattern path alone is enough",
			args: []string{"--pattern=/bare/pattern.csv"},
			expectedConfig: &app.AppConfig{
				PatternPath: "/bare/pattern.csv",
				LogLevel:    "info",
				LogFormat:   "json",
			},
		},
		{
			name:       "help flag triggers clean exit",
			args:       []string{"-h"},
			expectExit: true,
			checkOutput: func(t *testing.T, output string) {
				require.True(t, strings.Contains(output, "Usage:"), "expected help text to be printed")
			},
		},
		{
			name:       "no arguments prints usage and exits",
			args:       []string{},
			expectExit: true,
			checkOutput: func(t *testing.T, output string) {
				require.True(t, strings.Contains(output, "Usage:"))
			},
		},
		{
			name:      "invalid log level",
			args:      []string{"-c", "/run.hcl", "--log-level=verbose"},
			expectErr: true,
		},
		{
			name:      "invalid log format",
			args:      []string{"-c", "/run.hcl", "--log-format=xml"},
			expectErr: true,
		},
		{
			name:      "unknown flag",
			args:      []string{"--definitely-not-a-flag"},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var output bytes.Buffer

			config, shouldExit, err := cli.Parse(tc.args, &output)

			if tc.expectErr {
				require.Error(t, err)
				var exitErr *cli.ExitError
				require.ErrorAs(t, err, &exitErr)
				require.Equal(t, 2, exitErr.Code)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expectExit, shouldExit)

			if tc.expectedConfig != nil {
				if diff := cmp.Diff(tc.expectedConfig, config); diff != "" {
					t.Errorf("unexpected config (-want +got):\n%s", diff)
				}
			}
			if tc.checkOutput != nil {
				tc.checkOutput(t, output.String())
			}
		})
	}
}
