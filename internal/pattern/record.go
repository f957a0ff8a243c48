package pattern

import (
	"fmt"
	"strings"

	"github.com/vk/gridresolve/internal/target"
)

// Fixed column positions of a pattern-table row. The condition-reference run
// starts right after the and/or column and ends at the first empty cell.
const (
	ColType = iota
	ColName
	ColOnOff
	ColUpdate
	ColRoute
	ColPeriods
	ColTerms
	ColPairs
	ColLayer
	ColTrigger
	ColPkgOut
	ColRouteOut
	ColAndOr
	ColConditions
)

// NodeFromRecord decodes one table row. Missing trailing columns read as
// empty; the condition list is truncated at its first empty slot.
func NodeFromRecord(rec []string) (*Node, error) {
	field := func(i int) string {
		if i < len(rec) {
			return strings.TrimSpace(rec[i])
		}
		return ""
	}
	route := field(ColRoute)
	if route == "" {
		return nil, fmt.Errorf("row %v: empty route id", rec)
	}
	name := field(ColName)
	if name == "" {
		return nil, fmt.Errorf("route %q: empty pkg name", route)
	}

	n := &Node{
		Route:           target.RouteID(route),
		Name:            name,
		Type:            NodeType(field(ColType)),
		OnOff:           parseFlag(field(ColOnOff)),
		AlwaysRecompute: parseFlag(field(ColUpdate)),
		Periods:         ParseScopeSet(field(ColPeriods)),
		Terms:           ParseScopeSet(field(ColTerms)),
		Pairs:           ParseScopeSet(field(ColPairs)),
		Layer:           field(ColLayer),
		Trigger:         field(ColTrigger),
		PkgOut:          field(ColPkgOut),
		RouteOut:        field(ColRouteOut),
		AndOr:           field(ColAndOr),
	}
	for i := ColConditions; i < len(rec); i++ {
		ref := field(i)
		if ref == "" {
			break
		}
		n.ConditionRefs = append(n.ConditionRefs, ref)
	}
	return n, nil
}

// Record encodes the node back into the fixed column layout.
func (n *Node) Record() []string {
	rec := []string{
		string(n.Type),
		n.Name,
		formatFlag(n.OnOff),
		formatFlag(n.AlwaysRecompute),
		string(n.Route),
		n.Periods.String(),
		n.Terms.String(),
		n.Pairs.String(),
		n.Layer,
		n.Trigger,
		n.PkgOut,
		n.RouteOut,
		n.AndOr,
	}
	return append(rec, n.ConditionRefs...)
}

func parseFlag(s string) bool {
	switch strings.ToLower(s) {
	case "1", "on", "true", "yes":
		return true
	default:
		return false
	}
}

func formatFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
