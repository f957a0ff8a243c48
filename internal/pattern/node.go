// Package pattern models the pattern table: the dependency tree of named
// condition definitions that the resolver activates and scopes.
package pattern

import (
	"github.com/vk/gridresolve/internal/target"
)

// NodeType classifies a pattern node. The set is open; only type W changes
// merge behavior (its term scope is synthesized from its condition count
// rather than unioned).
type NodeType string

// Known node types observed in pattern tables.
const (
	TypeZ  NodeType = "Z"
	TypeS  NodeType = "S"
	TypeB  NodeType = "B"
	TypeAS NodeType = "AS"
	TypeW  NodeType = "W"
)

// Node is one row of the pattern table. Route, Name, Type, ConditionRefs and
// the passthrough columns are frozen after load; the resolver mutates only
// OnOff, AlwaysRecompute and the three scope sets.
type Node struct {
	Route target.RouteID
	Name  string
	Type  NodeType

	OnOff           bool
	AlwaysRecompute bool

	Periods ScopeSet
	Terms   ScopeSet
	Pairs   ScopeSet

	// ConditionRefs lists the route IDs this node depends on, in declared
	// order, already truncated at the first empty slot.
	ConditionRefs []string

	// Opaque columns carried through for round-tripping the table.
	Layer    string
	Trigger  string
	PkgOut   string
	RouteOut string
	AndOr    string
}

// BackRef returns the back-reference segment of the node's route ID.
func (n *Node) BackRef() string {
	return n.Route.BackRef()
}
