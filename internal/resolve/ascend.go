package resolve

import (
	"context"
	"slices"
	"strconv"
	"strings"

	"github.com/vk/gridresolve/internal/ctxlog"
	"github.com/vk/gridresolve/internal/pattern"
	"github.com/vk/gridresolve/internal/target"
)

// ascendAll walks every switched-on row upward through its back-references.
// Parents activated along the way sit at earlier rows, but their own
// condition lists are already explored by the recursion, so a single forward
// sweep suffices.
func (r *resolver) ascendAll(ctx context.Context) {
	for row, n := range r.table.Nodes {
		if n.OnOff {
			r.ascend(ctx, string(n.Route), row)
		}
	}
}

// ascend locates the row the given route's back-reference points at, merges
// the child row's scopes into it, switches it on, and keeps climbing through
// that row's condition list while merges keep reporting changes. A
// back-reference no row matches is tolerated and simply ends the climb;
// matching the child row itself means the node is its own root, which skips
// the merge but still activates and explores the row.
func (r *resolver) ascend(ctx context.Context, routeID string, childRow int) {
	backRef := target.RouteID(routeID).BackRef()

	parentRow := childRow
	if backRef != "" {
		row, ok := r.table.FindSuffix(backRef, childRow)
		if !ok {
			return
		}
		parentRow = row
	}
	parent := r.table.Nodes[parentRow]

	changed := false
	if parentRow != childRow {
		changed = r.mergeScopes(r.root, childRow, parentRow)
	}
	if !parent.OnOff {
		parent.OnOff = true
		ctxlog.FromContext(ctx).Debug("parent activated by ascent", "route", parent.Route, "row", parentRow)
	}

	first := !r.visited[parentRow]
	r.visited[parentRow] = true
	if !changed && !first {
		return
	}
	for _, ref := range parent.ConditionRefs {
		if ref == "" {
			continue
		}
		r.ascend(ctx, ref, parentRow)
	}
}

// mergeScopes unions the child row's period/term/pair tokens into the parent
// row, recomposing each token against the run criteria, and reports whether
// the parent changed. Type W parents get their term set synthesized from the
// count of populated condition slots instead of merged; a type W child forces
// the parent's term to the wildcard.
func (r *resolver) mergeScopes(criteria target.Transform, childRow, parentRow int) bool {
	child := r.table.Nodes[childRow]
	parent := r.table.Nodes[parentRow]
	changed := false

	for _, tok := range child.Periods.Tokens() {
		if parent.Periods.Add(composePeriodToken(tok, criteria)) {
			changed = true
		}
	}

	switch {
	case parent.Type == pattern.TypeW:
		n := len(parent.ConditionRefs)
		toks := make([]string, 0, n+1)
		for i := 0; i <= n; i++ {
			toks = append(toks, strconv.Itoa(i))
		}
		if !sameTokens(parent.Terms.Tokens(), toks) {
			parent.Terms.Replace(toks...)
			changed = true
		}
	case child.Type == pattern.TypeW:
		wild := strconv.Itoa(target.Wildcard)
		if !sameTokens(parent.Terms.Tokens(), []string{wild}) {
			parent.Terms.Replace(wild)
			changed = true
		}
	default:
		for _, tok := range child.Terms.Tokens() {
			if parent.Terms.Add(composeTermToken(tok, criteria)) {
				changed = true
			}
		}
	}

	for _, tok := range child.Pairs.Tokens() {
		if parent.Pairs.Add(composePairToken(tok, criteria)) {
			changed = true
		}
	}
	return changed
}

// composePeriodToken recomposes one stored period token against the
// criteria: '$' tokens substitute their literal, everything else shifts by
// the criteria period and clamps into 1..9.
func composePeriodToken(tok string, criteria target.Transform) string {
	if lit, ok := strings.CutPrefix(tok, "$"); ok {
		return lit
	}
	if criteria.Period.Fixed {
		return strconv.Itoa(criteria.Period.Digit)
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return tok
	}
	return strconv.Itoa(target.ClampDigit(n + criteria.Period.Digit - 1))
}

// composeTermToken applies the wildcard rule per token: a stored 9 inherits
// the criteria's term, anything else passes through.
func composeTermToken(tok string, criteria target.Transform) string {
	if lit, ok := strings.CutPrefix(tok, "$"); ok {
		return lit
	}
	if criteria.Term.Fixed {
		return strconv.Itoa(criteria.Term.Digit)
	}
	if tok == strconv.Itoa(target.Wildcard) {
		return strconv.Itoa(criteria.Term.Digit)
	}
	return tok
}

// composePairToken is the pass-through identity, minus a consumed '$'.
func composePairToken(tok string, criteria target.Transform) string {
	if lit, ok := strings.CutPrefix(tok, "$"); ok {
		return lit
	}
	if criteria.Pair.Fixed {
		return strconv.Itoa(criteria.Pair.Digit)
	}
	return tok
}

func sameTokens(a, b []string) bool {
	a, b = slices.Clone(a), slices.Clone(b)
	slices.Sort(a)
	slices.Sort(b)
	return slices.Equal(a, b)
}
