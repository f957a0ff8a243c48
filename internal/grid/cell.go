package grid

import (
	"fmt"
	"strings"

	"github.com/vk/gridresolve/internal/target"
)

// CellKind classifies one trade-setting cell.
type CellKind int

const (
	// Empty is a blank cell.
	Empty CellKind = iota
	// Terminator is a one-character cell ending the current group column.
	Terminator
	// Leaf is a "<transform><pkg-name>" activation entry.
	Leaf
	// Redirect is a ">"-prefixed reference into another group.
	Redirect
	// Header is a bare group name opening a new group block.
	Header
)

// Cell is a classified trade-setting cell.
type Cell struct {
	Kind   CellKind
	Target target.Transform // Leaf and Redirect only
	Name   string           // leaf pkg name, redirect group name, or header group name
	Raw    string
}

// ParseCell classifies a raw cell value. The '>' redirect marker may be
// followed by an 'E' or 'T' variant letter, which only changes how many
// leading characters precede the embedded transform.
func ParseCell(raw string) (Cell, error) {
	switch {
	case raw == "":
		return Cell{Kind: Empty, Raw: raw}, nil
	case len(raw) == 1:
		return Cell{Kind: Terminator, Raw: raw}, nil
	case strings.HasPrefix(raw, ">"):
		body := raw[1:]
		if len(body) > 0 && (body[0] == 'E' || body[0] == 'T') {
			body = body[1:]
		}
		t, name, err := target.Parse(body)
		if err != nil {
			return Cell{}, fmt.Errorf("redirect cell %q: %w", raw, err)
		}
		if name == "" {
			return Cell{}, fmt.Errorf("redirect cell %q: missing group name", raw)
		}
		return Cell{Kind: Redirect, Target: t, Name: name, Raw: raw}, nil
	case raw[0] == '$' || (raw[0] >= '1' && raw[0] <= '9'):
		t, name, err := target.Parse(raw)
		if err != nil {
			return Cell{}, fmt.Errorf("leaf cell %q: %w", raw, err)
		}
		if name == "" {
			return Cell{}, fmt.Errorf("leaf cell %q: missing pkg name", raw)
		}
		return Cell{Kind: Leaf, Target: t, Name: name, Raw: raw}, nil
	default:
		return Cell{Kind: Header, Name: raw, Raw: raw}, nil
	}
}
