package plan

import (
	"fmt"

	"github.com/dyluth/tension/pkg/evenly"
)

// SpreadRequest asks for items placed evenly across slots with no gauge
// involved: shaping increases across a row, buttonholes along a band, beads
// along a cast-on. Items above the slot count are legal here; slots simply
// take more than one.
type SpreadRequest struct {
	Items int `json:"items"`
	Slots int `json:"slots"`
}

// Validate checks the counts. Items may be zero (an empty spread is a valid
// answer); slots may not.
func (r SpreadRequest) Validate() error {
	if r.Items < 0 {
		return fmt.Errorf("item count must not be negative, got %d", r.Items)
	}
	if r.Slots <= 0 {
		return fmt.Errorf("slot count must be positive, got %d", r.Slots)
	}
	return nil
}

// SpreadPlan is the even placement of items across slots together with its
// minimal repeating cycle and rendering.
type SpreadPlan struct {
	Items         int          `json:"items"`
	Slots         int          `json:"slots"`
	Cycle         evenly.Cycle `json:"cycle"`
	CycleSequence []int        `json:"cycle_sequence"`
	FullSequence  []int        `json:"full_sequence"`
	Runs          []evenly.Run `json:"runs"`
	Instruction   string       `json:"instruction"`
	Markers       string       `json:"markers"`
}

// BuildSpread places items across slots and reduces the placement to its
// shortest repeating instruction.
func BuildSpread(req SpreadRequest) (*SpreadPlan, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	cycle, err := evenly.ReduceCycle(req.Items, req.Slots)
	if err != nil {
		return nil, err
	}
	cycleSeq, err := evenly.Distribute(cycle.Items, cycle.Slots)
	if err != nil {
		return nil, err
	}
	fullSeq, err := evenly.Distribute(req.Items, req.Slots)
	if err != nil {
		return nil, err
	}

	runs := evenly.DescribeRuns(cycleSeq)
	return &SpreadPlan{
		Items:         req.Items,
		Slots:         req.Slots,
		Cycle:         cycle,
		CycleSequence: cycleSeq,
		FullSequence:  fullSeq,
		Runs:          runs,
		Instruction:   evenly.Instruction(runs),
		Markers:       evenly.Markers(cycleSeq),
	}, nil
}
