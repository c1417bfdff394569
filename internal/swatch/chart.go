package swatch

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Chart geometry. Long edges wrap so the chart stays printable.
const (
	chartMargin = 24
	slotSpacing = 26
	slotRadius  = 9
	rowSpacing  = 44
	slotsPerRow = 20
)

// WriteChartSVG writes a pick-up chart: one circle per slot, left to right.
// An empty circle is a skipped row, a filled circle is one picked-up stitch,
// and a filled circle with a number carries that many stitches. Slot numbers
// are printed under slot 1 and every fifth slot.
func WriteChartSVG(w io.Writer, seq []int) error {
	if len(seq) == 0 {
		return errors.New("cannot render a chart with no slots")
	}

	perRow := len(seq)
	if perRow > slotsPerRow {
		perRow = slotsPerRow
	}
	lines := (len(seq) + slotsPerRow - 1) / slotsPerRow

	width := 2*chartMargin + (perRow-1)*slotSpacing
	height := 2*chartMargin + (lines-1)*rowSpacing + 16

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	fmt.Fprintf(&buf, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\" viewBox=\"0 0 %d %d\">\n", width, height, width, height)
	fmt.Fprintf(&buf, "  <rect width=\"100%%\" height=\"100%%\" fill=\"#fffdf8\"/>\n")

	for i, count := range seq {
		cx := chartMargin + (i%slotsPerRow)*slotSpacing
		cy := chartMargin + (i/slotsPerRow)*rowSpacing

		if count == 0 {
			fmt.Fprintf(&buf, "  <circle cx=\"%d\" cy=\"%d\" r=\"%d\" fill=\"none\" stroke=\"#8a6d4f\" stroke-width=\"1.5\"/>\n", cx, cy, slotRadius)
		} else {
			fmt.Fprintf(&buf, "  <circle cx=\"%d\" cy=\"%d\" r=\"%d\" fill=\"#8a6d4f\"/>\n", cx, cy, slotRadius)
		}
		if count > 1 {
			fmt.Fprintf(&buf, "  <text x=\"%d\" y=\"%d\" text-anchor=\"middle\" font-family=\"sans-serif\" font-size=\"9\" fill=\"#fffdf8\">%d</text>\n", cx, cy+3, count)
		}

		slotNo := i + 1
		if slotNo == 1 || slotNo%5 == 0 {
			fmt.Fprintf(&buf, "  <text x=\"%d\" y=\"%d\" text-anchor=\"middle\" font-family=\"sans-serif\" font-size=\"9\" fill=\"#b09a7e\">%d</text>\n", cx, cy+slotRadius+12, slotNo)
		}
	}

	fmt.Fprintf(&buf, "</svg>\n")

	_, err := w.Write(buf.Bytes())
	return err
}
