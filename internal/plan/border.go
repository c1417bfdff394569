package plan

import (
	"fmt"

	"github.com/dyluth/tension/internal/gauge"
	"github.com/dyluth/tension/pkg/evenly"
)

// BorderRequest asks how many border-fabric stitches to pick up along a
// main-fabric edge when the two fabrics knit at different gauges.
type BorderRequest struct {
	MainCount         int            `json:"main_count"`
	MainGauge         gauge.Gauge    `json:"main_gauge"`
	BorderStitchGauge float64        `json:"border_stitch_gauge"`
	Edge              gauge.EdgeKind `json:"edge"`
}

// Validate checks the main count and defaults the edge to a stitch edge when
// unset. Gauge checks are left to the conversion, which knows which
// dimensions the edge actually needs.
func (r *BorderRequest) Validate() error {
	if r.MainCount <= 0 {
		return fmt.Errorf("main count must be positive, got %d", r.MainCount)
	}
	if r.Edge == "" {
		r.Edge = gauge.EdgeStitch
	}
	return nil
}

// BorderPlan is the border pick-up answer: the stitch count and the same
// relationship reduced to a border:main rate.
type BorderPlan struct {
	Stitches  int            `json:"stitches"`
	MainCount int            `json:"main_count"`
	Edge      gauge.EdgeKind `json:"edge"`
	Rate      evenly.Ratio   `json:"rate"`
}

// BuildBorder converts the main edge into centimetres and back into border
// stitches, then simplifies the border:main proportion.
func BuildBorder(req BorderRequest) (*BorderPlan, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	stitches, err := gauge.BorderStitches(req.MainCount, req.MainGauge, req.BorderStitchGauge, req.Edge)
	if err != nil {
		return nil, err
	}

	rate, err := evenly.SimplifyRatio(float64(stitches), float64(req.MainCount))
	if err != nil {
		return nil, err
	}

	return &BorderPlan{
		Stitches:  stitches,
		MainCount: req.MainCount,
		Edge:      req.Edge,
		Rate:      rate,
	}, nil
}
