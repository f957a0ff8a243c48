package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/gridresolve/internal/config"
	"github.com/vk/gridresolve/internal/ctxlog"
	"github.com/vk/gridresolve/internal/target"
)

// App encapsulates the application's dependencies and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	model  *config.Model
}

// NewApp constructs the application: it builds an isolated logger, loads the
// run config through the given loader, and applies CLI overrides. A config
// that cannot be loaded is a fatal startup error and panics; main recovers
// it into a clean exit.
func NewApp(outW io.Writer, appConfig *AppConfig, loader config.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model := &config.Model{RootCriteria: target.Root()}
	if appConfig.ConfigPath != "" {
		m, err := loader.Load(ctx, appConfig.ConfigPath)
		if err != nil {
			panic(fmt.Errorf("failed to load configuration: %w", err))
		}
		model = m
	}
	if appConfig.PatternPath != "" {
		model.PatternPath = appConfig.PatternPath
	}
	if appConfig.SettingsPath != "" {
		model.SettingsPath = appConfig.SettingsPath
	}
	if appConfig.OutputPath != "" {
		model.OutputPath = appConfig.OutputPath
	}
	if model.SettingsPath == "" {
		model.SettingsPath = model.PatternPath
	}
	if model.PatternSheet == "" {
		model.PatternSheet = "Pattern"
	}
	if model.SettingsSheet == "" {
		model.SettingsSheet = "TradeSetting"
	}
	logger.Debug("Run configuration assembled.",
		"pattern", model.PatternPath, "settings", model.SettingsPath, "output", model.OutputPath)

	return &App{outW: outW, logger: logger, model: model}
}

// Model returns the assembled run configuration. Primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}
