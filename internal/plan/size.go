package plan

import (
	"fmt"
	"math"

	"github.com/dyluth/tension/internal/gauge"
)

// Dimension names which direction of the fabric a measurement runs in.
type Dimension string

const (
	// DimensionWidth measures across stitches and converts by stitch gauge
	DimensionWidth Dimension = "width"

	// DimensionLength measures along rows and converts by row gauge
	DimensionLength Dimension = "length"
)

// ParseDimension parses a dimension name.
func ParseDimension(s string) (Dimension, error) {
	switch Dimension(s) {
	case DimensionWidth:
		return DimensionWidth, nil
	case DimensionLength:
		return DimensionLength, nil
	default:
		return "", fmt.Errorf("invalid dimension: %s (use %q or %q)", s, DimensionWidth, DimensionLength)
	}
}

// SizeRequest asks which printed size to follow for a desired finished
// measurement, given the knitter's gauge and the pattern's. Sizes is the
// pattern's size table for this measurement and may be empty.
type SizeRequest struct {
	Desired       float64     `json:"desired"`
	Dimension     Dimension   `json:"dimension"`
	PersonalGauge gauge.Gauge `json:"personal_gauge"`
	PatternGauge  gauge.Gauge `json:"pattern_gauge"`
	Sizes         []float64   `json:"sizes,omitempty"`
}

// Validate checks the measurement and size table, and defaults the dimension
// to width when unset.
func (r *SizeRequest) Validate() error {
	if r.Desired <= 0 {
		return fmt.Errorf("desired measurement must be positive, got %g", r.Desired)
	}
	if r.Dimension == "" {
		r.Dimension = DimensionWidth
	}
	if _, err := ParseDimension(string(r.Dimension)); err != nil {
		return err
	}
	for _, s := range r.Sizes {
		if s <= 0 {
			return fmt.Errorf("printed sizes must be positive, got %g", s)
		}
	}
	return nil
}

// SizePlan answers a size question. Target is the measurement to look for in
// the pattern's table; ChosenSize is the printed size closest to it (zero when
// no table was supplied); Actual is the finished measurement the knitter's
// gauge produces when following the chosen size.
type SizePlan struct {
	Desired    float64   `json:"desired"`
	Dimension  Dimension `json:"dimension"`
	Target     float64   `json:"target"`
	ChosenSize float64   `json:"chosen_size,omitempty"`
	Actual     float64   `json:"actual"`
}

// BuildSize converts the desired measurement into pattern terms and, when a
// size table is supplied, picks the printed size that lands closest.
func BuildSize(req SizeRequest) (*SizePlan, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	personal, pattern, err := gaugeAlong(req.Dimension, req.PersonalGauge, req.PatternGauge)
	if err != nil {
		return nil, err
	}

	target := gauge.TargetPatternMeasurement(personal, pattern, req.Desired)
	p := &SizePlan{
		Desired:   req.Desired,
		Dimension: req.Dimension,
		Target:    target,
		Actual:    req.Desired,
	}

	if len(req.Sizes) > 0 {
		chosen := req.Sizes[0]
		for _, s := range req.Sizes[1:] {
			if math.Abs(s-target) < math.Abs(chosen-target) {
				chosen = s
			}
		}
		p.ChosenSize = chosen
		p.Actual = gauge.ActualMeasurement(personal, pattern, chosen)
	}
	return p, nil
}

// gaugeAlong picks the gauge values matching a dimension: stitch gauges for
// widths, row gauges for lengths.
func gaugeAlong(dim Dimension, personal, pattern gauge.Gauge) (float64, float64, error) {
	var p, q float64
	var name string
	switch dim {
	case DimensionWidth:
		p, q, name = personal.Stitches, pattern.Stitches, "stitch"
	case DimensionLength:
		p, q, name = personal.Rows, pattern.Rows, "row"
	default:
		return 0, 0, fmt.Errorf("invalid dimension: %s (use %q or %q)", dim, DimensionWidth, DimensionLength)
	}
	if p <= 0 {
		return 0, 0, fmt.Errorf("personal gauge is missing its %s dimension", name)
	}
	if q <= 0 {
		return 0, 0, fmt.Errorf("pattern gauge is missing its %s dimension", name)
	}
	return p, q, nil
}
