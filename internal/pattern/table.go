package pattern

import (
	"github.com/vk/gridresolve/internal/target"
)

// Table is the loaded pattern table: the ordered node rows plus unique-name
// and unique-route lookup indexes. Parents always appear at a row index at or
// before their children, which is what lets the resolver find a parent with a
// bounded backward scan.
type Table struct {
	Nodes []*Node

	byName  map[string]int
	byRoute map[target.RouteID]int

	// loaded snapshots the mutable fields as they were at index time, so a
	// table can be reset for a clean re-run.
	loaded []resolutionState
}

type resolutionState struct {
	onOff           bool
	alwaysRecompute bool
	periods         []string
	terms           []string
	pairs           []string
}

// NewTable indexes the given rows. It fails with a DuplicateError on the
// first route-ID or name collision, before any resolution can run.
func NewTable(nodes []*Node) (*Table, error) {
	t := &Table{
		Nodes:   nodes,
		byName:  make(map[string]int, len(nodes)),
		byRoute: make(map[target.RouteID]int, len(nodes)),
	}
	for i, n := range nodes {
		if prev, ok := t.byRoute[n.Route]; ok {
			return nil, &DuplicateError{Kind: DuplicateRouteID, Value: string(n.Route), FirstRow: prev, SecondRow: i}
		}
		if prev, ok := t.byName[n.Name]; ok {
			return nil, &DuplicateError{Kind: DuplicateName, Value: n.Name, FirstRow: prev, SecondRow: i}
		}
		t.byRoute[n.Route] = i
		t.byName[n.Name] = i
		t.loaded = append(t.loaded, resolutionState{
			onOff:           n.OnOff,
			alwaysRecompute: n.AlwaysRecompute,
			periods:         n.Periods.Tokens(),
			terms:           n.Terms.Tokens(),
			pairs:           n.Pairs.Tokens(),
		})
	}
	return t, nil
}

// ByName looks a node up by its unique PKG name.
func (t *Table) ByName(name string) (*Node, int, bool) {
	i, ok := t.byName[name]
	if !ok {
		return nil, 0, false
	}
	return t.Nodes[i], i, true
}

// ByRoute looks a node up by its route ID.
func (t *Table) ByRoute(route target.RouteID) (*Node, int, bool) {
	i, ok := t.byRoute[route]
	if !ok {
		return nil, 0, false
	}
	return t.Nodes[i], i, true
}

// FindSuffix scans rows fromRow down to 0 and returns the first whose route
// ID ends with ref. This is the parent lookup: parents are declared before
// their children, so the scan never needs to look past fromRow.
func (t *Table) FindSuffix(ref string, fromRow int) (int, bool) {
	for i := fromRow; i >= 0; i-- {
		if t.Nodes[i].Route.HasSuffix(ref) {
			return i, true
		}
	}
	return 0, false
}

// ResetResolution restores every field the resolver accumulates to its
// load-time value, so a table can be re-run without reloading.
func (t *Table) ResetResolution() {
	for i, n := range t.Nodes {
		s := t.loaded[i]
		n.OnOff = s.onOff
		n.AlwaysRecompute = s.alwaysRecompute
		n.Periods.Replace(s.periods...)
		n.Terms.Replace(s.terms...)
		n.Pairs.Replace(s.pairs...)
	}
}
