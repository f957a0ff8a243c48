package resolve

import (
	"context"
	"strconv"

	"github.com/vk/gridresolve/internal/ctxlog"
	"github.com/vk/gridresolve/internal/grid"
	"github.com/vk/gridresolve/internal/target"
)

// expand walks one group column from startRow downward, then moves one
// column right over the same row range for as long as columns keep carrying
// entries. Trade-setting columns are parallel, independently-terminated
// lists, not a single wide row.
func (r *resolver) expand(ctx context.Context, startRow, startCol int, criteria target.Transform) error {
	logger := ctxlog.FromContext(ctx)
	colUsed := false

scan:
	for row := startRow; row < r.grid.Rows(); row++ {
		cell, err := grid.ParseCell(r.grid.Cell(row, startCol))
		if err != nil {
			return err
		}
		switch cell.Kind {
		case grid.Empty:
			continue
		case grid.Terminator:
			// The terminator itself counts as column content, so a column
			// holding nothing but its terminator still advances the scan to
			// the next column.
			colUsed = true
			break scan
		case grid.Header:
			// Running into the next group's header closes the column too.
			break scan
		case grid.Redirect:
			colUsed = true
			composed := target.Compose(cell.Target, criteria)
			groupRow, ok := r.grid.Group(cell.Name)
			if !ok {
				return &UnknownGroupError{Group: cell.Name, Cell: cell.Raw}
			}
			key := memoKey{target: composed.String(), group: cell.Name}
			if _, seen := r.memo[key]; seen {
				logger.Debug("redirect already expanded", "group", cell.Name, "target", key.target)
				continue
			}
			// Recorded before descending so mutually-redirecting groups
			// resolve against the memo instead of recursing without bound.
			r.memo[key] = struct{}{}
			if err := r.expand(ctx, groupRow, 0, composed); err != nil {
				return err
			}
		case grid.Leaf:
			colUsed = true
			if err := r.activateLeaf(cell, criteria); err != nil {
				return err
			}
		}
	}

	if colUsed {
		return r.expand(ctx, startRow, startCol+1, criteria)
	}
	return nil
}

// activateLeaf merges a leaf entry's composed transform into its node's
// scope sets and switches the node on. A name the table does not know is
// fatal for the whole run.
func (r *resolver) activateLeaf(cell grid.Cell, criteria target.Transform) error {
	node, _, ok := r.table.ByName(cell.Name)
	if !ok {
		return &UnknownNameError{Name: cell.Name, Cell: cell.Raw}
	}
	composed := target.Compose(cell.Target, criteria)
	node.Periods.Add(strconv.Itoa(composed.Period.Digit))
	node.Terms.Add(strconv.Itoa(composed.Term.Digit))
	node.Pairs.Add(strconv.Itoa(composed.Pair.Digit))
	node.OnOff = true
	return nil
}

// activateStrays is the fallback sweep: any leaf entry anywhere in the grid
// whose node is still off gets activated against the identity criteria
// 1/9/1, so entries in groups nobody redirects into are never silently
// dropped and never rescaled by a configured root.
func (r *resolver) activateStrays(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	strays := 0
	for row := 0; row < r.grid.Rows(); row++ {
		for col := 0; col < r.grid.Cols(row); col++ {
			raw := r.grid.Cell(row, col)
			if raw == "" {
				continue
			}
			cell, err := grid.ParseCell(raw)
			if err != nil {
				return err
			}
			if cell.Kind != grid.Leaf {
				continue
			}
			node, _, ok := r.table.ByName(cell.Name)
			if !ok {
				return &UnknownNameError{Name: cell.Name, Cell: cell.Raw}
			}
			if node.OnOff {
				continue
			}
			if err := r.activateLeaf(cell, target.Root()); err != nil {
				return err
			}
			strays++
		}
	}
	if strays > 0 {
		logger.Debug("stray leaves activated", "count", strays)
	}
	return nil
}
