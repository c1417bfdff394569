// Package worksheet exports pick-up plans as spreadsheet workbooks the
// knitter can print and tick off row by row.
package worksheet

import (
	"fmt"
	"io"
	"math"

	"github.com/xuri/excelize/v2"

	"github.com/dyluth/tension/internal/plan"
	"github.com/dyluth/tension/pkg/evenly"
)

const (
	summarySheet = "Plan"
	chartSheet   = "Rows"
)

// Write renders the workbook for a pick-up plan and writes it to w.
func Write(w io.Writer, req plan.PickupRequest, p *plan.PickupPlan) error {
	f, err := build(req, p)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write worksheet: %w", err)
	}
	return nil
}

// Save renders the workbook and saves it to path.
func Save(path string, req plan.PickupRequest, p *plan.PickupPlan) error {
	f, err := build(req, p)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save worksheet to %s: %w", path, err)
	}
	return nil
}

// build lays out two sheets: a summary of the plan, and one row per slot of
// the full edge so each row end can be ticked off as it is worked.
func build(req plan.PickupRequest, p *plan.PickupPlan) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, fmt.Errorf("failed to lay out worksheet: %w", err)
	}
	if _, err := f.NewSheet(chartSheet); err != nil {
		return nil, fmt.Errorf("failed to lay out worksheet: %w", err)
	}

	f.SetCellValue(summarySheet, "A1", "Pick-up plan")

	type entry struct {
		label string
		value any
	}
	summary := []entry{
		{"Pattern stitches", req.PatternStitches},
		{"Pattern rows", req.PatternRows},
		{"Pattern gauge", req.PatternGauge.String()},
		{"Your gauge", req.PersonalGauge.String()},
		{"Edge rows", req.TotalRows},
		{"", nil},
		{"Adjusted stitches", round2(p.Rate.Stitches)},
		{"Adjusted rows", round2(p.Rate.Rows)},
		{"Stitches per row", round2(p.Rate.Ratio())},
		{"Stitches to pick up", p.Count},
		{"", nil},
		{"Cycle", fmt.Sprintf("%d over %d", p.Cycle.Items, p.Cycle.Slots)},
		{"Repeats", p.Cycle.Repeats},
		{"Instruction", p.Instruction},
		{"Markers", p.Markers},
	}
	row := 3
	for _, e := range summary {
		if e.label != "" {
			f.SetCellValue(summarySheet, cell(1, row), e.label)
			f.SetCellValue(summarySheet, cell(2, row), e.value)
		}
		row++
	}
	f.SetColWidth(summarySheet, "A", "A", 22)
	f.SetColWidth(summarySheet, "B", "B", 40)

	for i, h := range []string{"Slot", "Marker", "Stitches"} {
		f.SetCellValue(chartSheet, cell(i+1, 1), h)
	}
	for i, count := range p.FullSequence {
		r := i + 2
		f.SetCellValue(chartSheet, cell(1, r), i+1)
		f.SetCellValue(chartSheet, cell(2, r), evenly.Marker(count))
		f.SetCellValue(chartSheet, cell(3, r), count)
	}
	f.SetColWidth(chartSheet, "A", "C", 10)

	return f, nil
}

// cell converts 1-based coordinates to an A1-style reference. The inputs here
// are always in range, so the conversion cannot fail.
func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
