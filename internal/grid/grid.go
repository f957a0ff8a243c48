// Package grid models the trade-setting grid: an ordered sequence of named
// groups of activation rows, re-hydrated from CSV or workbook cells.
package grid

import "fmt"

// Grid is the read-only trade-setting grid plus its group index.
type Grid struct {
	cells [][]string

	groups map[string]int // group name -> first entry row
	order  []string       // group names in declared order
}

// New builds a Grid and its group index from raw cells. A row whose first
// cell classifies as a bare name opens a group whose entries start on the
// following row. Malformed cells are detected lazily during expansion; only
// duplicate group names fail here.
func New(cells [][]string) (*Grid, error) {
	g := &Grid{
		cells:  cells,
		groups: make(map[string]int),
	}
	for row := range cells {
		c, err := ParseCell(g.Cell(row, 0))
		if err != nil || c.Kind != Header {
			continue
		}
		if _, ok := g.groups[c.Name]; ok {
			return nil, fmt.Errorf("duplicate group %q at row %d", c.Name, row)
		}
		g.groups[c.Name] = row + 1
		g.order = append(g.order, c.Name)
	}
	return g, nil
}

// Cell returns the raw value at (row, col), or "" when out of range.
func (g *Grid) Cell(row, col int) string {
	if row < 0 || row >= len(g.cells) {
		return ""
	}
	r := g.cells[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// Rows returns the number of grid rows.
func (g *Grid) Rows() int {
	return len(g.cells)
}

// Cols returns the width of the given row; rows are ragged.
func (g *Grid) Cols(row int) int {
	if row < 0 || row >= len(g.cells) {
		return 0
	}
	return len(g.cells[row])
}

// Group returns the first entry row of the named group.
func (g *Grid) Group(name string) (int, bool) {
	row, ok := g.groups[name]
	return row, ok
}

// Groups lists group names in declared order.
func (g *Grid) Groups() []string {
	return append([]string(nil), g.order...)
}
