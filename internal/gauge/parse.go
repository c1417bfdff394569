package gauge

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse parses a gauge specification. Supports two formats:
//   - "stitches/rows" per 10 cm: "22/30", "18.5/24"
//   - "stitches" alone: "8" (row gauge left at zero, for border fabrics where
//     only the stitch gauge matters)
//
// Values must be positive numbers.
func Parse(spec string) (Gauge, error) {
	trimmed := strings.TrimSpace(spec)
	if trimmed == "" {
		return Gauge{}, fmt.Errorf("empty gauge specification")
	}

	parts := strings.Split(trimmed, "/")
	if len(parts) > 2 {
		return Gauge{}, fmt.Errorf("invalid gauge specification: %s (use 'stitches/rows' like '22/30')", spec)
	}

	stitches, err := parsePositive(parts[0])
	if err != nil {
		return Gauge{}, fmt.Errorf("invalid stitch gauge in %q: %w", spec, err)
	}

	g := Gauge{Stitches: stitches}
	if len(parts) == 2 {
		rows, err := parsePositive(parts[1])
		if err != nil {
			return Gauge{}, fmt.Errorf("invalid row gauge in %q: %w", spec, err)
		}
		g.Rows = rows
	}
	return g, nil
}

func parsePositive(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %s", s)
	}
	if v <= 0 {
		return 0, fmt.Errorf("must be positive, got %s", s)
	}
	return v, nil
}
