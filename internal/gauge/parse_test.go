package gauge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		spec     string
		expected Gauge
	}{
		{
			name:     "stitches and rows",
			spec:     "22/30",
			expected: Gauge{Stitches: 22, Rows: 30},
		},
		{
			name:     "decimal values",
			spec:     "18.5/24",
			expected: Gauge{Stitches: 18.5, Rows: 24},
		},
		{
			name:     "stitches only",
			spec:     "8",
			expected: Gauge{Stitches: 8},
		},
		{
			name:     "surrounding whitespace",
			spec:     " 20 / 28 ",
			expected: Gauge{Stitches: 20, Rows: 28},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		spec string
	}{
		{name: "empty", spec: ""},
		{name: "whitespace only", spec: "   "},
		{name: "not a number", spec: "a/b"},
		{name: "zero stitch gauge", spec: "0/30"},
		{name: "negative row gauge", spec: "22/-30"},
		{name: "too many parts", spec: "22/30/40"},
		{name: "missing row value", spec: "22/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.spec)
			assert.Error(t, err)
		})
	}
}

func TestGaugeValidate(t *testing.T) {
	assert.NoError(t, Gauge{Stitches: 22, Rows: 30}.Validate())
	assert.Error(t, Gauge{Stitches: 0, Rows: 30}.Validate())
	assert.Error(t, Gauge{Stitches: 22}.Validate())
	assert.Error(t, Gauge{Stitches: -1, Rows: 30}.Validate())
}

func TestGaugeString(t *testing.T) {
	assert.Equal(t, "22/30", Gauge{Stitches: 22, Rows: 30}.String())
	assert.Equal(t, "18.5/24", Gauge{Stitches: 18.5, Rows: 24}.String())
	assert.Equal(t, "8", Gauge{Stitches: 8}.String())
}
