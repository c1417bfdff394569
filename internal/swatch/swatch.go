// Package swatch renders gauge swatches and pick-up charts, as a terminal
// grid for the CLI and as SVG for files and the HTTP API.
package swatch

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/dyluth/tension/internal/gauge"
)

// Canvas geometry. The swatch is always a 10 cm square; only the stitch
// count inside it changes with gauge.
const (
	pxPerCM = 40
	gridPx  = 10 * pxPerCM
	margin  = 30
)

// Grid returns the terminal preview of a 10 cm square: one line per row of
// knitting, one 'v' per stitch, counts rounded to whole stitches. The caller
// is expected to pass a validated gauge.
func Grid(g gauge.Gauge) string {
	cols := int(math.Round(g.Stitches))
	rows := int(math.Round(g.Rows))
	if cols <= 0 || rows <= 0 {
		return ""
	}

	line := strings.Repeat("v", cols)
	var b strings.Builder
	for i := 0; i < rows; i++ {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// Caption describes the swatch in knitters' terms, e.g. "22 sts × 30 rows = 10 cm".
func Caption(g gauge.Gauge) string {
	return fmt.Sprintf("%s sts × %s rows = 10 cm", formatNumber(g.Stitches), formatNumber(g.Rows))
}

// WriteSVG writes a 10 cm square swatch preview at the given gauge: a fabric
// rectangle filled with V-shaped stitch glyphs, each 10/stitches cm wide and
// 10/rows cm tall.
func WriteSVG(w io.Writer, g gauge.Gauge) error {
	if err := g.Validate(); err != nil {
		return fmt.Errorf("cannot render swatch: %w", err)
	}

	cols := int(math.Round(g.Stitches))
	rows := int(math.Round(g.Rows))
	cw := float64(gridPx) / float64(cols)
	ch := float64(gridPx) / float64(rows)

	width := gridPx + 2*margin
	height := gridPx + 2*margin + 26

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	fmt.Fprintf(&buf, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\" viewBox=\"0 0 %d %d\">\n", width, height, width, height)
	fmt.Fprintf(&buf, "  <rect width=\"100%%\" height=\"100%%\" fill=\"#fffdf8\"/>\n")
	fmt.Fprintf(&buf, "  <rect x=\"%d\" y=\"%d\" width=\"%d\" height=\"%d\" fill=\"#f5ead9\" stroke=\"#c9b99a\"/>\n", margin, margin, gridPx, gridPx)

	// One path holds every glyph; a small inset keeps neighbours from touching.
	const inset = 1.2
	var d strings.Builder
	for r := 0; r < rows; r++ {
		y0 := float64(margin) + float64(r)*ch
		for c := 0; c < cols; c++ {
			x0 := float64(margin) + float64(c)*cw
			fmt.Fprintf(&d, "M%.2f %.2f L%.2f %.2f L%.2f %.2f ",
				x0+inset, y0+inset,
				x0+cw/2, y0+ch-inset,
				x0+cw-inset, y0+inset)
		}
	}
	fmt.Fprintf(&buf, "  <path d=\"%s\" fill=\"none\" stroke=\"#8a6d4f\" stroke-width=\"1.4\" stroke-linecap=\"round\"/>\n", strings.TrimSpace(d.String()))

	centerX := margin + gridPx/2
	fmt.Fprintf(&buf, "  <text x=\"%d\" y=\"%d\" text-anchor=\"middle\" font-family=\"sans-serif\" font-size=\"12\" fill=\"#8a6d4f\">10 cm</text>\n", centerX, margin+gridPx+18)
	fmt.Fprintf(&buf, "  <text x=\"14\" y=\"%d\" text-anchor=\"middle\" font-family=\"sans-serif\" font-size=\"12\" fill=\"#8a6d4f\" transform=\"rotate(-90 14 %d)\">10 cm</text>\n", margin+gridPx/2, margin+gridPx/2)
	fmt.Fprintf(&buf, "  <text x=\"%d\" y=\"%d\" text-anchor=\"middle\" font-family=\"sans-serif\" font-size=\"13\" fill=\"#5b4a36\">%s</text>\n", width/2, height-8, Caption(g))
	fmt.Fprintf(&buf, "</svg>\n")

	_, err := w.Write(buf.Bytes())
	return err
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
