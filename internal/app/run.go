package app

import (
	"context"
	"fmt"
	"os"

	"github.com/vk/gridresolve/internal/csvio"
	"github.com/vk/gridresolve/internal/ctxlog"
	"github.com/vk/gridresolve/internal/grid"
	"github.com/vk/gridresolve/internal/pattern"
	"github.com/vk/gridresolve/internal/resolve"
	"github.com/vk/gridresolve/internal/xlsxio"
)

// Run loads the pattern table and trade-setting grid, resolves activations
// and scopes, and writes the result back. A failed resolution writes
// nothing.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	table, settings, err := a.loadInputs()
	if err != nil {
		return err
	}
	a.logger.Info("Inputs loaded.", "nodes", len(table.Nodes), "grid_rows", settings.Rows(), "groups", len(settings.Groups()))

	opts := resolve.Options{
		RootCriteria: a.model.RootCriteria,
		RootGroups:   a.model.RootGroups,
	}
	if err := resolve.Run(ctx, table, settings, opts); err != nil {
		return fmt.Errorf("resolution failed: %w", err)
	}

	on := 0
	for _, n := range table.Nodes {
		if n.OnOff {
			on++
		}
	}
	a.logger.Info("Resolution finished.", "activated", on, "total", len(table.Nodes))

	if err := a.writeOutput(table); err != nil {
		return err
	}
	a.logger.Debug("App.Run method finished.")
	return nil
}

// loadInputs reads both tables, resolving the format of each file from its
// own extension. Mixing a CSV pattern table with a workbook of settings, or
// the other way around, is fine.
func (a *App) loadInputs() (*pattern.Table, *grid.Grid, error) {
	table, err := a.loadPatternTable()
	if err != nil {
		return nil, nil, err
	}
	settings, err := a.loadSettingsGrid()
	if err != nil {
		return nil, nil, err
	}
	return table, settings, nil
}

func (a *App) loadPatternTable() (*pattern.Table, error) {
	format, err := detectFormat(a.model.PatternPath)
	if err != nil {
		return nil, err
	}
	if format == formatXLSX {
		table, err := xlsxio.ReadPatternTable(a.model.PatternPath, a.model.PatternSheet)
		if err != nil {
			return nil, fmt.Errorf("failed to load pattern table: %w", err)
		}
		return table, nil
	}

	f, err := os.Open(a.model.PatternPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open pattern table: %w", err)
	}
	defer f.Close()
	table, err := csvio.ReadPatternTable(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load pattern table: %w", err)
	}
	return table, nil
}

func (a *App) loadSettingsGrid() (*grid.Grid, error) {
	format, err := detectFormat(a.model.SettingsPath)
	if err != nil {
		return nil, err
	}
	if format == formatXLSX {
		settings, err := xlsxio.ReadGrid(a.model.SettingsPath, a.model.SettingsSheet)
		if err != nil {
			return nil, fmt.Errorf("failed to load trade settings: %w", err)
		}
		return settings, nil
	}

	f, err := os.Open(a.model.SettingsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open trade settings: %w", err)
	}
	defer f.Close()
	settings, err := csvio.ReadGrid(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load trade settings: %w", err)
	}
	return settings, nil
}

func (a *App) writeOutput(table *pattern.Table) error {
	format, err := detectFormat(a.model.PatternPath)
	if err != nil {
		return err
	}
	out := a.model.OutputPath
	if out == "" {
		out = a.model.PatternPath
	}

	switch format {
	case formatXLSX:
		if err := xlsxio.WriteResults(a.model.PatternPath, out, a.model.PatternSheet, table); err != nil {
			return fmt.Errorf("failed to write results: %w", err)
		}
	default:
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		if err := csvio.WritePatternTable(f, table); err != nil {
			return fmt.Errorf("failed to write results: %w", err)
		}
	}
	a.logger.Info("Results written.", "path", out)
	return nil
}
