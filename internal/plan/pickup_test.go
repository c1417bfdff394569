package plan

import (
	"errors"
	"testing"

	"github.com/dyluth/tension/internal/gauge"
	"github.com/dyluth/tension/pkg/evenly"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPickup() PickupRequest {
	return PickupRequest{
		PatternStitches: 18,
		PatternRows:     20,
		TotalRows:       24,
		PatternGauge:    gauge.Gauge{Stitches: 20, Rows: 28},
		PersonalGauge:   gauge.Gauge{Stitches: 24, Rows: 32},
	}
}

func TestBuildPickup(t *testing.T) {
	p, err := BuildPickup(validPickup())
	require.NoError(t, err)

	assert.Equal(t, 23, p.Count)
	assert.Equal(t, 24, p.TotalRows)
	assert.InDelta(t, 21.6, p.Rate.Stitches, 1e-9)
	assert.InDelta(t, 0.945, p.Rate.Ratio(), 1e-9)
	assert.Equal(t, evenly.Cycle{Items: 23, Slots: 24, Repeats: 1}, p.Cycle)

	// Coprime pair: the cycle covers the whole edge.
	assert.Equal(t, p.FullSequence, p.CycleSequence)

	sum := 0
	for _, c := range p.FullSequence {
		sum += c
	}
	assert.Equal(t, 23, sum)
}

func TestBuildPickup_ReducedCycle(t *testing.T) {
	// A 2-in-3 rate over 24 rows reduces to a 3-row cycle worked 8 times.
	req := PickupRequest{
		PatternStitches: 2,
		PatternRows:     3,
		TotalRows:       24,
		PatternGauge:    gauge.Gauge{Stitches: 22, Rows: 30},
		PersonalGauge:   gauge.Gauge{Stitches: 22, Rows: 30},
	}

	p, err := BuildPickup(req)
	require.NoError(t, err)

	assert.Equal(t, 16, p.Count)
	assert.Equal(t, evenly.Cycle{Items: 2, Slots: 3, Repeats: 8}, p.Cycle)
	assert.Equal(t, []int{1, 0, 1}, p.CycleSequence)
	assert.Len(t, p.FullSequence, 24)
	assert.Equal(t, "pick up 1 → skip 1 → pick up 1", p.Instruction)
	assert.Equal(t, "● ○ ●", p.Markers)
}

func TestBuildPickup_OverflowRejected(t *testing.T) {
	// Doubling the stitch gauge pushes the count past the row count.
	req := PickupRequest{
		PatternStitches: 18,
		PatternRows:     20,
		TotalRows:       10,
		PatternGauge:    gauge.Gauge{Stitches: 20, Rows: 28},
		PersonalGauge:   gauge.Gauge{Stitches: 40, Rows: 28},
	}

	_, err := BuildPickup(req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOverflow))

	req.AllowOverflow = true
	p, err := BuildPickup(req)
	require.NoError(t, err)
	assert.Equal(t, 18, p.Count)
	assert.Equal(t, evenly.Cycle{Items: 9, Slots: 5, Repeats: 2}, p.Cycle)

	// Some rows now take two stitches.
	max := 0
	for _, c := range p.FullSequence {
		if c > max {
			max = c
		}
	}
	assert.Equal(t, 2, max)
}

func TestBuildPickup_ExactRowCountRejected(t *testing.T) {
	// One stitch per row sits on the boundary and still trips the guard.
	req := PickupRequest{
		PatternStitches: 1,
		PatternRows:     1,
		TotalRows:       12,
		PatternGauge:    gauge.Gauge{Stitches: 22, Rows: 30},
		PersonalGauge:   gauge.Gauge{Stitches: 22, Rows: 30},
	}

	_, err := BuildPickup(req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOverflow))

	req.AllowOverflow = true
	p, err := BuildPickup(req)
	require.NoError(t, err)
	assert.Equal(t, 12, p.Count)
	assert.Equal(t, evenly.Cycle{Items: 1, Slots: 1, Repeats: 12}, p.Cycle)
}

func TestPickupRequestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PickupRequest)
	}{
		{
			name:   "zero pattern stitches",
			mutate: func(r *PickupRequest) { r.PatternStitches = 0 },
		},
		{
			name:   "negative pattern rows",
			mutate: func(r *PickupRequest) { r.PatternRows = -3 },
		},
		{
			name:   "zero total rows",
			mutate: func(r *PickupRequest) { r.TotalRows = 0 },
		},
		{
			name:   "incomplete pattern gauge",
			mutate: func(r *PickupRequest) { r.PatternGauge.Rows = 0 },
		},
		{
			name:   "incomplete personal gauge",
			mutate: func(r *PickupRequest) { r.PersonalGauge.Stitches = 0 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validPickup()
			tt.mutate(&req)
			_, err := BuildPickup(req)
			assert.Error(t, err)
		})
	}
}
