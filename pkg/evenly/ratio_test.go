package evenly

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGCD(t *testing.T) {
	tests := []struct {
		name     string
		a        int
		b        int
		expected int
	}{
		{
			name:     "coprime pair",
			a:        3,
			b:        8,
			expected: 1,
		},
		{
			name:     "shared factor",
			a:        6,
			b:        16,
			expected: 2,
		},
		{
			name:     "equal values",
			a:        12,
			b:        12,
			expected: 12,
		},
		{
			name:     "zero second operand",
			a:        7,
			b:        0,
			expected: 7,
		},
		{
			name:     "zero first operand",
			a:        0,
			b:        9,
			expected: 9,
		},
		{
			name:     "both zero",
			a:        0,
			b:        0,
			expected: 0,
		},
		{
			name:     "negative operand uses magnitude",
			a:        -9,
			b:        6,
			expected: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GCD(tt.a, tt.b))
		})
	}
}

func TestSimplifyRatio(t *testing.T) {
	tests := []struct {
		name     string
		a        float64
		b        float64
		expected Ratio
	}{
		{
			name:     "nine to six",
			a:        9,
			b:        6,
			expected: Ratio{A: 3, B: 2},
		},
		{
			name:     "already in lowest terms",
			a:        3,
			b:        4,
			expected: Ratio{A: 3, B: 4},
		},
		{
			name:     "equal values",
			a:        5,
			b:        5,
			expected: Ratio{A: 1, B: 1},
		},
		{
			name:     "fractional inputs round before reduction",
			a:        8.6,
			b:        6.2,
			expected: Ratio{A: 3, B: 2},
		},
		{
			name:     "zero numerator",
			a:        0,
			b:        4,
			expected: Ratio{A: 0, B: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SimplifyRatio(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSimplifyRatio_BothZero(t *testing.T) {
	_, err := SimplifyRatio(0, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "round to zero")

	// Values that only round to zero are just as degenerate.
	_, err = SimplifyRatio(0.4, -0.3)
	require.Error(t, err)
}

func TestSimplifyRatio_LowestTerms(t *testing.T) {
	for a := 1; a <= 30; a++ {
		for b := 1; b <= 30; b++ {
			r, err := SimplifyRatio(float64(a), float64(b))
			require.NoError(t, err)
			if g := GCD(r.A, r.B); g != 1 {
				t.Fatalf("SimplifyRatio(%d, %d) = %v is not in lowest terms (gcd %d)", a, b, r, g)
			}
		}
	}
}

func TestRatioString(t *testing.T) {
	assert.Equal(t, "3:2", Ratio{A: 3, B: 2}.String())
	assert.Equal(t, "0:1", Ratio{A: 0, B: 1}.String())
}
