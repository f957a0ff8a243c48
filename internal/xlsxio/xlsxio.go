// Package xlsxio reads and writes the pattern table and trade-setting grid
// in their native workbook form. Results are written back into the same
// column positions of the pattern sheet rather than into a fresh layout.
package xlsxio

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/vk/gridresolve/internal/grid"
	"github.com/vk/gridresolve/internal/pattern"
)

// ReadPatternTable loads and validates the pattern table from one sheet.
// Row 1 is treated as a title row.
func ReadPatternTable(path, sheet string) (*pattern.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", sheet, err)
	}
	if len(rows) > 0 {
		rows = rows[1:]
	}

	nodes := make([]*pattern.Node, 0, len(rows))
	for i, rec := range rows {
		n, err := pattern.NodeFromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("sheet %q row %d: %w", sheet, i+2, err)
		}
		nodes = append(nodes, n)
	}
	return pattern.NewTable(nodes)
}

// ReadGrid loads the trade-setting grid from one sheet, skipping the title
// row and keeping cells verbatim.
func ReadGrid(path, sheet string) (*grid.Grid, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", sheet, err)
	}
	if len(rows) > 0 {
		rows = rows[1:]
	}
	return grid.New(rows)
}

// WriteResults reopens the source workbook, overwrites the on/off,
// update-flag and scope columns of the pattern sheet in place, and saves the
// workbook to outPath (which may equal inPath).
func WriteResults(inPath, outPath, sheet string, t *pattern.Table) error {
	f, err := excelize.OpenFile(inPath)
	if err != nil {
		return fmt.Errorf("open workbook %s: %w", inPath, err)
	}
	defer f.Close()

	for i, n := range t.Nodes {
		row := i + 2 // 1-based, after the title row
		rec := n.Record()
		for _, col := range []int{
			pattern.ColOnOff, pattern.ColUpdate,
			pattern.ColPeriods, pattern.ColTerms, pattern.ColPairs,
		} {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return fmt.Errorf("result cell for row %d: %w", row, err)
			}
			if err := f.SetCellValue(sheet, cell, rec[col]); err != nil {
				return fmt.Errorf("write %s!%s: %w", sheet, cell, err)
			}
		}
	}

	if outPath == inPath {
		if err := f.Save(); err != nil {
			return fmt.Errorf("save workbook %s: %w", inPath, err)
		}
		return nil
	}
	if err := f.SaveAs(outPath); err != nil {
		return fmt.Errorf("save workbook %s: %w", outPath, err)
	}
	return nil
}
