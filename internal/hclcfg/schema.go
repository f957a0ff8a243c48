package hclcfg

import "github.com/hashicorp/hcl/v2"

// resolverBlock mirrors the `resolver` block of a run-config file. The
// root_criteria attribute stays an expression so it can be evaluated and
// type-checked explicitly during translation.
type resolverBlock struct {
	PatternPath   string         `hcl:"pattern_path"`
	SettingsPath  string         `hcl:"settings_path,optional"`
	OutputPath    string         `hcl:"output_path,optional"`
	PatternSheet  string         `hcl:"pattern_sheet,optional"`
	SettingsSheet string         `hcl:"settings_sheet,optional"`
	RootCriteria  hcl.Expression `hcl:"root_criteria,optional"`
	RootGroups    []string       `hcl:"root_groups,optional"`
}

// fileRoot is the top-level structure of a run-config file.
type fileRoot struct {
	Resolver *resolverBlock `hcl:"resolver,block"`
	Remain   hcl.Body       `hcl:",remain"`
}
