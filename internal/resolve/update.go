package resolve

import (
	"context"
	"strings"

	"github.com/vk/gridresolve/internal/ctxlog"
)

// propagateUpdates closes the always-recompute flag downward: every
// transitive dependent of a flagged node becomes flagged itself. Dependents
// always sit at later rows than their dependencies, so each hop only ever
// scans forward.
func (r *resolver) propagateUpdates(ctx context.Context) {
	before := 0
	for _, n := range r.table.Nodes {
		if n.AlwaysRecompute {
			before++
		}
	}
	for row, n := range r.table.Nodes {
		if n.AlwaysRecompute {
			r.propagateUpdate(n.BackRef(), row)
		}
	}
	after := 0
	for _, n := range r.table.Nodes {
		if n.AlwaysRecompute {
			after++
		}
	}
	if after > before {
		ctxlog.FromContext(ctx).Debug("always-recompute closure", "seeds", before, "flagged", after)
	}
}

// propagateUpdate marks every later row holding a condition reference that
// ends with backRef, recursing from each newly-flagged row.
func (r *resolver) propagateUpdate(backRef string, fromRow int) {
	if backRef == "" {
		return
	}
	for row := fromRow + 1; row < len(r.table.Nodes); row++ {
		n := r.table.Nodes[row]
		if n.AlwaysRecompute {
			continue
		}
		for _, ref := range n.ConditionRefs {
			if ref != "" && strings.HasSuffix(ref, backRef) {
				n.AlwaysRecompute = true
				r.propagateUpdate(n.BackRef(), row)
				break
			}
		}
	}
}
