// Package gauge models knitting tension (stitches and rows per 10 cm) and the
// conversions between a pattern's gauge and a knitter's own.
package gauge

import (
	"fmt"
	"strconv"
)

// Gauge is a fabric density: how many stitches and rows fit in 10 cm.
// A swatch knitted at 22/30 is 22 stitches wide and 30 rows tall per 10 cm.
type Gauge struct {
	Stitches float64 `json:"stitches" yaml:"stitches"`
	Rows     float64 `json:"rows" yaml:"rows"`
}

// Validate checks that both dimensions are positive.
func (g Gauge) Validate() error {
	if g.Stitches <= 0 {
		return fmt.Errorf("stitch gauge must be positive, got %s", formatNumber(g.Stitches))
	}
	if g.Rows <= 0 {
		return fmt.Errorf("row gauge must be positive, got %s", formatNumber(g.Rows))
	}
	return nil
}

// String renders the gauge in "stitches/rows" form, e.g. "22/30".
func (g Gauge) String() string {
	if g.Rows == 0 {
		return formatNumber(g.Stitches)
	}
	return fmt.Sprintf("%s/%s", formatNumber(g.Stitches), formatNumber(g.Rows))
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
