// Package hclcfg is the HCL implementation of the config.Loader interface.
package hclcfg

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/gridresolve/internal/config"
	"github.com/vk/gridresolve/internal/ctxlog"
	"github.com/vk/gridresolve/internal/target"
)

// Loader parses a single .hcl run-config file.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses and translates the run-config file at path.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL config loader started.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, diags)
	}

	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, diags)
	}
	if root.Resolver == nil {
		return nil, fmt.Errorf("config file %s: missing resolver block", path)
	}

	model, err := l.translate(root.Resolver)
	if err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	logger.Debug("HCL config loaded.", "pattern", model.PatternPath, "settings", model.SettingsPath)
	return model, nil
}

// translate converts the HCL-specific block into the agnostic model,
// applying defaults and validating the criteria code.
func (l *Loader) translate(b *resolverBlock) (*config.Model, error) {
	m := &config.Model{
		PatternPath:   b.PatternPath,
		SettingsPath:  b.SettingsPath,
		OutputPath:    b.OutputPath,
		PatternSheet:  b.PatternSheet,
		SettingsSheet: b.SettingsSheet,
		RootCriteria:  target.Root(),
		RootGroups:    b.RootGroups,
	}
	if m.SettingsPath == "" {
		m.SettingsPath = m.PatternPath
	}
	if m.PatternSheet == "" {
		m.PatternSheet = "Pattern"
	}
	if m.SettingsSheet == "" {
		m.SettingsSheet = "TradeSetting"
	}

	if b.RootCriteria != nil {
		val, diags := b.RootCriteria.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("root_criteria: %w", diags)
		}
		if !val.IsNull() {
			val, err := convert.Convert(val, cty.String)
			if err != nil {
				return nil, fmt.Errorf("root_criteria: %w", err)
			}
			t, err := target.ParseFull(val.AsString())
			if err != nil {
				return nil, fmt.Errorf("root_criteria: %w", err)
			}
			m.RootCriteria = t
		}
	}
	return m, nil
}
