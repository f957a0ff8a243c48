// Package resolve implements the activation and parameter-propagation engine
// over a pattern table and a trade-setting grid: group expansion, stray
// activation, upward scope merging to a fixed point, scope canonicalization
// and the downward always-recompute closure.
package resolve

import (
	"context"

	"github.com/vk/gridresolve/internal/ctxlog"
	"github.com/vk/gridresolve/internal/grid"
	"github.com/vk/gridresolve/internal/pattern"
	"github.com/vk/gridresolve/internal/target"
)

// Options configures one resolution run.
type Options struct {
	// RootCriteria is the ambient transform the root groups are expanded
	// against. Zero value means the identity criteria 1/9/1.
	RootCriteria target.Transform

	// RootGroups names the groups expansion starts from. Empty means the
	// grid's first declared group. Groups nobody redirects into are only
	// reached by the stray sweep.
	RootGroups []string
}

func (o Options) rootCriteria() target.Transform {
	if o.RootCriteria == (target.Transform{}) {
		return target.Root()
	}
	return o.RootCriteria
}

// memoKey records one already-performed (composed target, group) expansion.
type memoKey struct {
	target string
	group  string
}

// resolver holds the per-run mutable state. The pattern table is the only
// thing written to; the grid and options stay read-only throughout.
type resolver struct {
	table *pattern.Table
	grid  *grid.Grid
	root  target.Transform

	memo    map[memoKey]struct{}
	visited map[int]bool
}

// Run executes the whole pipeline against tbl in place. On error the table
// must be considered unusable: there is no partial-result contract, callers
// fix the input and re-run from a reset table.
func Run(ctx context.Context, tbl *pattern.Table, g *grid.Grid, opts Options) error {
	logger := ctxlog.FromContext(ctx)
	r := &resolver{
		table:   tbl,
		grid:    g,
		root:    opts.rootCriteria(),
		memo:    make(map[memoKey]struct{}),
		visited: make(map[int]bool),
	}

	roots := opts.RootGroups
	if len(roots) == 0 {
		if all := g.Groups(); len(all) > 0 {
			roots = all[:1]
		}
	}
	logger.Debug("resolution started", "nodes", len(tbl.Nodes), "grid_rows", g.Rows(), "root_groups", roots)

	for _, name := range roots {
		row, ok := g.Group(name)
		if !ok {
			return &UnknownGroupError{Group: name}
		}
		if err := r.expand(ctx, row, 0, r.root); err != nil {
			return err
		}
	}
	logger.Debug("group expansion complete", "memo_entries", len(r.memo))

	if err := r.activateStrays(ctx); err != nil {
		return err
	}

	r.ascendAll(ctx)
	logger.Debug("parent ascent complete", "rows_visited", len(r.visited))

	r.canonicalize()
	r.propagateUpdates(ctx)
	logger.Debug("resolution finished")
	return nil
}

// canonicalize sorts and deduplicates every node's scope sets so downstream
// comparisons see a stable rendering.
func (r *resolver) canonicalize() {
	for _, n := range r.table.Nodes {
		n.Periods.Canonicalize()
		n.Terms.Canonicalize()
		n.Pairs.Canonicalize()
	}
}
