// Package testutil provides compact builders for pattern tables and
// trade-setting grids used across the package tests.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/gridresolve/internal/grid"
	"github.com/vk/gridresolve/internal/pattern"
	"github.com/vk/gridresolve/internal/target"
)

// NodeSpec is a compact description of one pattern-table row.
type NodeSpec struct {
	Type   string
	Name   string
	Route  string
	Refs   []string
	Always bool
}

// BuildTable constructs a validated pattern table from specs, failing the
// test on any uniqueness violation.
func BuildTable(t *testing.T, specs ...NodeSpec) *pattern.Table {
	t.Helper()
	nodes := make([]*pattern.Node, 0, len(specs))
	for _, s := range specs {
		typ := s.Type
		if typ == "" {
			typ = string(pattern.TypeS)
		}
		nodes = append(nodes, &pattern.Node{
			Route:           target.RouteID(s.Route),
			Name:            s.Name,
			Type:            pattern.NodeType(typ),
			AlwaysRecompute: s.Always,
			ConditionRefs:   s.Refs,
		})
	}
	tbl, err := pattern.NewTable(nodes)
	require.NoError(t, err)
	return tbl
}

// BuildGrid constructs a trade-setting grid from raw cell rows.
func BuildGrid(t *testing.T, rows [][]string) *grid.Grid {
	t.Helper()
	g, err := grid.New(rows)
	require.NoError(t, err)
	return g
}

// Rows is a convenience for single-column grids: each string becomes one
// one-cell row.
func Rows(cells ...string) [][]string {
	rows := make([][]string, 0, len(cells))
	for _, c := range cells {
		rows = append(rows, []string{c})
	}
	return rows
}
