package app_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/vk/gridresolve/internal/app"
	"github.com/vk/gridresolve/internal/csvio"
	"github.com/vk/gridresolve/internal/hclcfg"
)

const patternCSV = `type,name,on_off,update,route_id,periods,terms,pairs,layer,trigger,pkg_out,route_out,and_or
S,PKG_ROOT,0,0,191^1,,,,,,,,
S,PKG_MID,0,0,192^1-2,,,,,,,,AND,191^1
S,PKG_LEAF,0,0,193^1-2-3,,,,,,,,AND,192^1-2
`

const settingsCSV = `group
MAIN
251PKG_LEAF
-
`

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestRunResolvesCSVInputs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	patternPath := writeFile(t, dir, "pattern.csv", patternCSV)
	settingsPath := writeFile(t, dir, "settings.csv", settingsCSV)
	outPath := filepath.Join(dir, "out.csv")

	cfg, err := app.NewConfig(app.AppConfig{
		PatternPath:  patternPath,
		SettingsPath: settingsPath,
		OutputPath:   outPath,
		LogLevel:     "error",
		LogFormat:    "text",
	})
	require.NoError(t, err)

	var logs bytes.Buffer
	a := app.NewApp(&logs, cfg, hclcfg.NewLoader())
	require.NoError(t, a.Run(context.Background()))

	out, err := os.Open(outPath)
	require.NoError(t, err)
	defer out.Close()

	tbl, err := csvio.ReadPatternTable(out)
	require.NoError(t, err)

	for _, name := range []string{"PKG_ROOT", "PKG_MID", "PKG_LEAF"} {
		n, _, ok := tbl.ByName(name)
		require.True(t, ok)
		require.True(t, n.OnOff, "%s must come out switched on", name)
		require.Equal(t, "2", n.Periods.String())
		require.Equal(t, "5", n.Terms.String())
	}
}

func TestRunResolvesMixedFormatInputs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	patternPath := writeFile(t, dir, "pattern.csv", patternCSV)
	settingsPath := filepath.Join(dir, "settings.xlsx")

	// The pattern table stays CSV while the trade settings come from a
	// workbook; each input resolves its format from its own extension.
	wb := excelize.NewFile()
	defer wb.Close()
	wb.SetSheetName(wb.GetSheetName(0), "TradeSetting")
	for i, row := range [][]any{{"group"}, {"MAIN"}, {"251PKG_LEAF"}, {"-"}} {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, wb.SetSheetRow("TradeSetting", cell, &row))
	}
	require.NoError(t, wb.SaveAs(settingsPath))

	outPath := filepath.Join(dir, "out.csv")
	cfg, err := app.NewConfig(app.AppConfig{
		PatternPath:  patternPath,
		SettingsPath: settingsPath,
		OutputPath:   outPath,
		LogLevel:     "error",
	})
	require.NoError(t, err)

	var logs bytes.Buffer
	a := app.NewApp(&logs, cfg, hclcfg.NewLoader())
	require.NoError(t, a.Run(context.Background()))

	out, err := os.Open(outPath)
	require.NoError(t, err)
	defer out.Close()
	tbl, err := csvio.ReadPatternTable(out)
	require.NoError(t, err)

	leaf, _, ok := tbl.ByName("PKG_LEAF")
	require.True(t, ok)
	require.True(t, leaf.OnOff)
	require.Equal(t, "2", leaf.Periods.String())
	require.Equal(t, "5", leaf.Terms.String())
}

func TestRunUsesConfigFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	patternPath := writeFile(t, dir, "pattern.csv", patternCSV)
	settingsPath := writeFile(t, dir, "settings.csv", settingsCSV)
	outPath := filepath.Join(dir, "out.csv")

	configPath := writeFile(t, dir, "run.hcl", `
resolver {
  pattern_path  = "`+patternPath+`"
  settings_path = "`+settingsPath+`"
  output_path   = "`+outPath+`"
  root_groups   = ["MAIN"]
}
`)

	cfg, err := app.NewConfig(app.AppConfig{
		ConfigPath: configPath,
		LogLevel:   "error",
		LogFormat:  "text",
	})
	require.NoError(t, err)

	var logs bytes.Buffer
	a := app.NewApp(&logs, cfg, hclcfg.NewLoader())
	require.Equal(t, patternPath, a.Model().PatternPath)
	require.NoError(t, a.Run(context.Background()))

	_, err = os.Stat(outPath)
	require.NoError(t, err)
}

func TestRunFailsOnUnknownLeaf(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	patternPath := writeFile(t, dir, "pattern.csv", patternCSV)
	settingsPath := writeFile(t, dir, "settings.csv", `group
MAIN
251PKG_NOBODY
-
`)
	outPath := filepath.Join(dir, "out.csv")

	cfg, err := app.NewConfig(app.AppConfig{
		PatternPath:  patternPath,
		SettingsPath: settingsPath,
		OutputPath:   outPath,
		LogLevel:     "error",
	})
	require.NoError(t, err)

	var logs bytes.Buffer
	a := app.NewApp(&logs, cfg, hclcfg.NewLoader())
	err = a.Run(context.Background())
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "PKG_NOBODY"))

	_, statErr := os.Stat(outPath)
	require.True(t, os.IsNotExist(statErr), "a failed run must not write output")
}

func TestUnsupportedExtensionRejected(t *testing.T) {
	t.Parallel()

	cfg, err := app.NewConfig(app.AppConfig{PatternPath: "pattern.parquet"})
	require.NoError(t, err)

	var logs bytes.Buffer
	a := app.NewApp(&logs, cfg, hclcfg.NewLoader())
	require.Error(t, a.Run(context.Background()))
}
