// Package plan composes the gauge math and the distribution engine into the
// complete answers the CLI and the HTTP API hand to the knitter: pick-up
// plans, even spreads, size recommendations and border counts.
package plan

import (
	"errors"
	"fmt"

	"github.com/dyluth/tension/internal/gauge"
	"github.com/dyluth/tension/pkg/evenly"
)

// ErrOverflow reports a pick-up that needs at least as many stitches as the
// edge has rows. A vertical edge takes at most one picked-up stitch per row
// end unless the knitter explicitly allows doubling up.
var ErrOverflow = errors.New("pick-up count reaches the row count")

// PickupRequest carries the inputs for a gauge-adjusted pick-up plan: the
// pattern's pick-up rate, the two gauges, and the length of the edge being
// worked.
type PickupRequest struct {
	PatternStitches int         `json:"pattern_stitches"`
	PatternRows     int         `json:"pattern_rows"`
	TotalRows       int         `json:"total_rows"`
	PatternGauge    gauge.Gauge `json:"pattern_gauge"`
	PersonalGauge   gauge.Gauge `json:"personal_gauge"`
	AllowOverflow   bool        `json:"allow_overflow"`
}

// Validate checks that every count is positive and both gauges are complete.
func (r PickupRequest) Validate() error {
	if r.PatternStitches <= 0 {
		return fmt.Errorf("pattern stitch count must be positive, got %d", r.PatternStitches)
	}
	if r.PatternRows <= 0 {
		return fmt.Errorf("pattern row count must be positive, got %d", r.PatternRows)
	}
	if r.TotalRows <= 0 {
		return fmt.Errorf("total row count must be positive, got %d", r.TotalRows)
	}
	if err := r.PatternGauge.Validate(); err != nil {
		return fmt.Errorf("pattern gauge: %w", err)
	}
	if err := r.PersonalGauge.Validate(); err != nil {
		return fmt.Errorf("personal gauge: %w", err)
	}
	return nil
}

// PickupPlan is a complete pick-up instruction: the adjusted rate, the stitch
// count for the edge, the minimal repeating cycle and its rendering, and the
// expanded slot-by-slot placement for the whole edge.
type PickupPlan struct {
	Rate          gauge.PickupRate `json:"rate"`
	Count         int              `json:"count"`
	TotalRows     int              `json:"total_rows"`
	Cycle         evenly.Cycle     `json:"cycle"`
	CycleSequence []int            `json:"cycle_sequence"`
	FullSequence  []int            `json:"full_sequence"`
	Runs          []evenly.Run     `json:"runs"`
	Instruction   string           `json:"instruction"`
	Markers       string           `json:"markers"`
}

// BuildPickup adjusts the pattern's pick-up rate to the knitter's gauge,
// guards the edge relationship, and reduces the result to its shortest
// repeating instruction.
func BuildPickup(req PickupRequest) (*PickupPlan, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	rate := gauge.AdjustPickup(req.PatternStitches, req.PatternRows, req.PatternGauge, req.PersonalGauge)
	count := rate.Count(req.TotalRows)
	if count >= req.TotalRows && !req.AllowOverflow {
		return nil, fmt.Errorf("cannot pick up %d stitches over %d rows: %w", count, req.TotalRows, ErrOverflow)
	}

	cycle, err := evenly.ReduceCycle(count, req.TotalRows)
	if err != nil {
		return nil, err
	}
	cycleSeq, err := evenly.Distribute(cycle.Items, cycle.Slots)
	if err != nil {
		return nil, err
	}
	fullSeq, err := evenly.Distribute(count, req.TotalRows)
	if err != nil {
		return nil, err
	}

	runs := evenly.DescribeRuns(cycleSeq)
	return &PickupPlan{
		Rate:          rate,
		Count:         count,
		TotalRows:     req.TotalRows,
		Cycle:         cycle,
		CycleSequence: cycleSeq,
		FullSequence:  fullSeq,
		Runs:          runs,
		Instruction:   evenly.Instruction(runs),
		Markers:       evenly.Markers(cycleSeq),
	}, nil
}
