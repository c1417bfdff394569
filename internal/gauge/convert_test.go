package gauge

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeasurementConversion(t *testing.T) {
	// Knitting tighter than the pattern: aim for a larger printed size.
	target := TargetPatternMeasurement(24, 20, 50)
	assert.InDelta(t, 60, target, 1e-9)

	// Following that size at the knitter's own gauge lands on the wish.
	actual := ActualMeasurement(24, 20, target)
	assert.InDelta(t, 50, actual, 1e-9)
}

func TestMeasurementConversion_InverseProperty(t *testing.T) {
	for _, personal := range []float64{18, 22.5, 24, 32} {
		for _, pattern := range []float64{16, 20, 28.5} {
			for _, desired := range []float64{10, 42.5, 120} {
				roundTrip := ActualMeasurement(personal, pattern, TargetPatternMeasurement(personal, pattern, desired))
				if math.Abs(roundTrip-desired) > 1e-9 {
					t.Fatalf("round trip for (%g, %g, %g) drifted to %g", personal, pattern, desired, roundTrip)
				}
			}
		}
	}
}

func TestAdjustPickup(t *testing.T) {
	rate := AdjustPickup(18, 20, Gauge{Stitches: 20, Rows: 28}, Gauge{Stitches: 24, Rows: 32})

	assert.InDelta(t, 21.6, rate.Stitches, 1e-9)
	assert.InDelta(t, 22.857142857, rate.Rows, 1e-6)
	assert.InDelta(t, 0.945, rate.Ratio(), 1e-9)
}

func TestPickupRateCount(t *testing.T) {
	rate := AdjustPickup(18, 20, Gauge{Stitches: 20, Rows: 28}, Gauge{Stitches: 24, Rows: 32})
	assert.Equal(t, 23, rate.Count(24))
	assert.Equal(t, 38, rate.Count(40))

	// Identical gauges leave the pattern's own rate untouched.
	same := AdjustPickup(3, 4, Gauge{Stitches: 22, Rows: 30}, Gauge{Stitches: 22, Rows: 30})
	assert.Equal(t, 18, same.Count(24))
}

func TestBorderStitches(t *testing.T) {
	tests := []struct {
		name      string
		mainCount int
		main      Gauge
		border    float64
		edge      EdgeKind
		expected  int
	}{
		{
			name:      "looser border along a cast-off edge",
			mainCount: 110,
			main:      Gauge{Stitches: 22, Rows: 30},
			border:    20,
			edge:      EdgeStitch,
			expected:  100,
		},
		{
			name:      "border along a selvedge",
			mainCount: 90,
			main:      Gauge{Stitches: 22, Rows: 30},
			border:    20,
			edge:      EdgeRow,
			expected:  60,
		},
		{
			name:      "half stitches round to nearest",
			mainCount: 33,
			main:      Gauge{Stitches: 22, Rows: 30},
			border:    19,
			edge:      EdgeStitch,
			expected:  29,
		},
		{
			name:      "same gauge keeps the count",
			mainCount: 44,
			main:      Gauge{Stitches: 22, Rows: 30},
			border:    22,
			edge:      EdgeStitch,
			expected:  44,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BorderStitches(tt.mainCount, tt.main, tt.border, tt.edge)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestBorderStitches_Invalid(t *testing.T) {
	_, err := BorderStitches(110, Gauge{Stitches: 22, Rows: 30}, 20, "diagonal")
	require.Error(t, err)

	// Row edge needs a row gauge.
	_, err = BorderStitches(90, Gauge{Stitches: 22}, 20, EdgeRow)
	require.Error(t, err)

	_, err = BorderStitches(110, Gauge{Stitches: 22, Rows: 30}, 0, EdgeStitch)
	require.Error(t, err)
}

func TestParseEdge(t *testing.T) {
	edge, err := ParseEdge("stitch")
	require.NoError(t, err)
	assert.Equal(t, EdgeStitch, edge)

	edge, err = ParseEdge("row")
	require.NoError(t, err)
	assert.Equal(t, EdgeRow, edge)

	_, err = ParseEdge("bias")
	assert.Error(t, err)
}
