package gauge

import (
	"fmt"
	"math"
)

// TargetPatternMeasurement converts a measurement the knitter wants on the
// finished garment into the measurement to look for in the pattern's size
// table. personal and pattern are gauge values along the same dimension
// (stitch gauge for widths, row gauge for lengths).
func TargetPatternMeasurement(personal, pattern, desired float64) float64 {
	return desired * personal / pattern
}

// ActualMeasurement is the inverse of TargetPatternMeasurement: the finished
// size the knitter's gauge produces when following a given pattern
// measurement.
func ActualMeasurement(personal, pattern, measurement float64) float64 {
	return measurement * pattern / personal
}

// PickupRate is a "pick up S stitches over R rows" relationship after
// rescaling from the pattern's gauge to the knitter's own.
type PickupRate struct {
	Stitches float64 `json:"stitches"`
	Rows     float64 `json:"rows"`
}

// AdjustPickup rescales a pattern's pick-up rate. Stitch counts scale by the
// horizontal gauge ratio and row counts by the vertical one.
func AdjustPickup(patternStitches, patternRows int, pattern, personal Gauge) PickupRate {
	return PickupRate{
		Stitches: float64(patternStitches) * (personal.Stitches / pattern.Stitches),
		Rows:     float64(patternRows) * (personal.Rows / pattern.Rows),
	}
}

// Ratio is stitches picked up per row of edge.
func (r PickupRate) Ratio() float64 {
	return r.Stitches / r.Rows
}

// Count applies the rate to an edge of totalRows rows, rounded to the
// nearest whole stitch.
func (r PickupRate) Count(totalRows int) int {
	return int(math.Round(float64(totalRows) * r.Ratio()))
}

// EdgeKind selects which dimension of the main fabric runs along the edge
// being bordered.
type EdgeKind string

const (
	// EdgeStitch is a horizontal edge (cast-on or cast-off): main-fabric stitches run along it
	EdgeStitch EdgeKind = "stitch"

	// EdgeRow is a vertical edge (selvedge): main-fabric rows run along it
	EdgeRow EdgeKind = "row"
)

// ParseEdge parses an edge kind name.
func ParseEdge(s string) (EdgeKind, error) {
	switch EdgeKind(s) {
	case EdgeStitch:
		return EdgeStitch, nil
	case EdgeRow:
		return EdgeRow, nil
	default:
		return "", fmt.Errorf("invalid edge kind: %s (use %q or %q)", s, EdgeStitch, EdgeRow)
	}
}

// BorderStitches computes how many border-fabric stitches to pick up along a
// main-fabric edge of mainCount stitches (EdgeStitch) or rows (EdgeRow). The
// main gauge converts the count into centimetres of edge; the border's stitch
// gauge converts the length back into stitches.
func BorderStitches(mainCount int, main Gauge, borderStitchGauge float64, edge EdgeKind) (int, error) {
	var per10 float64
	switch edge {
	case EdgeStitch:
		per10 = main.Stitches
	case EdgeRow:
		per10 = main.Rows
	default:
		return 0, fmt.Errorf("invalid edge kind: %s (use %q or %q)", edge, EdgeStitch, EdgeRow)
	}
	if per10 <= 0 {
		return 0, fmt.Errorf("main gauge has no %s dimension: %s", edge, main)
	}
	if borderStitchGauge <= 0 {
		return 0, fmt.Errorf("border stitch gauge must be positive, got %g", borderStitchGauge)
	}

	length := (float64(mainCount) / per10) * 10
	return int(math.Round(length * borderStitchGauge / 10)), nil
}
