// Package config holds the format-agnostic run configuration model behind a
// Loader interface, keeping the HCL specifics out of the application core.
package config

import (
	"context"

	"github.com/vk/gridresolve/internal/target"
)

// Model is the unified run configuration for one resolution.
type Model struct {
	// PatternPath and SettingsPath locate the pattern table and the
	// trade-setting grid. For workbook inputs they may name the same file.
	PatternPath  string
	SettingsPath string
	// OutputPath is where the resolved table is written. Empty means the
	// pattern input is overwritten in place (workbook inputs only).
	OutputPath string

	// Sheet names, used only for workbook inputs.
	PatternSheet  string
	SettingsSheet string

	// RootCriteria is the ambient transform root groups are expanded
	// against; defaults to the identity 1/9/1.
	RootCriteria target.Transform
	// RootGroups names the expansion entry groups; empty means the grid's
	// first declared group.
	RootGroups []string
}

// Loader is implemented by format-specific configuration loaders.
type Loader interface {
	Load(ctx context.Context, path string) (*Model, error)
}
