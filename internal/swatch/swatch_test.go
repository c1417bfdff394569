package swatch

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dyluth/tension/internal/gauge"
)

func TestGrid(t *testing.T) {
	got := Grid(gauge.Gauge{Stitches: 4, Rows: 3})
	assert.Equal(t, "vvvv\nvvvv\nvvvv\n", got)
}

func TestGridRoundsFractionalGauge(t *testing.T) {
	got := Grid(gauge.Gauge{Stitches: 4.4, Rows: 2.6})

	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	assert.Len(t, lines, 3)
	for _, line := range lines {
		assert.Equal(t, "vvvv", line)
	}
}

func TestGridInvalidGauge(t *testing.T) {
	assert.Equal(t, "", Grid(gauge.Gauge{}))
}

func TestCaption(t *testing.T) {
	assert.Equal(t, "22 sts × 30 rows = 10 cm", Caption(gauge.Gauge{Stitches: 22, Rows: 30}))
	assert.Equal(t, "22.5 sts × 31 rows = 10 cm", Caption(gauge.Gauge{Stitches: 22.5, Rows: 31}))
}

func TestWriteSVG(t *testing.T) {
	var buf bytes.Buffer
	err := WriteSVG(&buf, gauge.Gauge{Stitches: 22, Rows: 30})
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<?xml"), "SVG should start with an XML declaration")
	assert.Contains(t, out, "<svg xmlns=\"http://www.w3.org/2000/svg\"")
	assert.Contains(t, out, "22 sts × 30 rows = 10 cm")
	assert.Contains(t, out, "10 cm</text>")
	assert.True(t, strings.HasSuffix(out, "</svg>\n"))
}

func TestWriteSVGInvalidGauge(t *testing.T) {
	var buf bytes.Buffer
	err := WriteSVG(&buf, gauge.Gauge{Stitches: 22})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot render swatch")
	assert.Zero(t, buf.Len(), "nothing should be written on error")
}
