// Package csvio reads and writes the pattern table and trade-setting grid in
// their CSV form. Both files carry a single header row.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/vk/gridresolve/internal/grid"
	"github.com/vk/gridresolve/internal/pattern"
)

// header is the column title row written ahead of pattern-table data.
var header = []string{
	"type", "name", "on_off", "update", "route_id",
	"periods", "terms", "pairs", "layer", "trigger",
	"pkg_out", "route_out", "and_or",
}

// ReadPatternTable decodes a pattern table, skipping the header row and
// validating uniqueness of route IDs and names.
func ReadPatternTable(r io.Reader) (*pattern.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read pattern table: %w", err)
	}
	if len(records) > 0 {
		records = records[1:] // header row
	}

	nodes := make([]*pattern.Node, 0, len(records))
	for i, rec := range records {
		n, err := pattern.NodeFromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("pattern table row %d: %w", i+2, err)
		}
		nodes = append(nodes, n)
	}
	return pattern.NewTable(nodes)
}

// WritePatternTable emits the table back in the same column layout, with the
// resolved on/off, update-flag and scope columns.
func WritePatternTable(w io.Writer, t *pattern.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write pattern table: %w", err)
	}
	for _, n := range t.Nodes {
		if err := cw.Write(n.Record()); err != nil {
			return fmt.Errorf("write pattern table: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadGrid decodes a trade-setting grid. The header row is skipped; the
// remaining cells are kept verbatim for classification during expansion.
func ReadGrid(r io.Reader) (*grid.Grid, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read trade-setting grid: %w", err)
	}
	if len(records) > 0 {
		records = records[1:]
	}
	return grid.New(records)
}
