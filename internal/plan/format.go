package plan

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/dyluth/tension/internal/gauge"
	"github.com/dyluth/tension/pkg/evenly"
)

// WriteJSON writes any plan as pretty-printed JSON to the provided writer.
func WriteJSON(w io.Writer, plan any) error {
	data, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal plan to JSON: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write JSON output: %w", err)
	}
	fmt.Fprintln(w)
	return nil
}

// WriteText writes the pick-up plan as an aligned text block.
func (p *PickupPlan) WriteText(w io.Writer) {
	fmt.Fprintf(w, "Pick up %d %s evenly over %d %s\n\n",
		p.Count, countWord(p.Count, "stitch"), p.TotalRows, countWord(p.TotalRows, "row"))
	fmt.Fprintf(w, "%-13s %.1f stitches over %.1f rows (%.2f per row)\n",
		"Rate:", p.Rate.Stitches, p.Rate.Rows, p.Rate.Ratio())
	fmt.Fprintf(w, "%-13s %d over %d, worked %d %s\n",
		"Cycle:", p.Cycle.Items, p.Cycle.Slots, p.Cycle.Repeats, countWord(p.Cycle.Repeats, "time"))
	fmt.Fprintf(w, "%-13s %s\n", "Instruction:", p.Instruction)
	fmt.Fprintf(w, "%-13s %s\n", "Chart:", p.Markers)
}

// WriteText writes the spread plan as an aligned text block.
func (p *SpreadPlan) WriteText(w io.Writer) {
	fmt.Fprintf(w, "Distribute %d %s evenly across %d %s\n\n",
		p.Items, countWord(p.Items, "stitch"), p.Slots, countWord(p.Slots, "stitch"))
	fmt.Fprintf(w, "%-13s %d over %d, worked %d %s\n",
		"Cycle:", p.Cycle.Items, p.Cycle.Slots, p.Cycle.Repeats, countWord(p.Cycle.Repeats, "time"))
	fmt.Fprintf(w, "%-13s %s\n", "Instruction:", p.Instruction)
	fmt.Fprintf(w, "%-13s %s\n", "Chart:", p.Markers)
}

// WriteText writes the size recommendation as an aligned text block.
func (p *SizePlan) WriteText(w io.Writer) {
	if p.ChosenSize != 0 {
		fmt.Fprintf(w, "Follow the %.1f cm printed size\n\n", p.ChosenSize)
	} else {
		fmt.Fprintf(w, "Follow the %.1f cm size in the pattern's table\n\n", p.Target)
	}
	fmt.Fprintf(w, "%-13s %.1f cm %s\n", "Desired:", p.Desired, p.Dimension)
	fmt.Fprintf(w, "%-13s %.1f cm in pattern terms\n", "Target:", p.Target)
	fmt.Fprintf(w, "%-13s %.1f cm knitted at your gauge\n", "Actual:", p.Actual)

	if p.ChosenSize != 0 {
		diff := p.Actual - p.Desired
		switch {
		case math.Abs(diff) < 0.05:
			fmt.Fprintf(w, "%-13s spot on\n", "Difference:")
		case diff > 0:
			fmt.Fprintf(w, "%-13s %.1f cm larger than desired\n", "Difference:", diff)
		default:
			fmt.Fprintf(w, "%-13s %.1f cm smaller than desired\n", "Difference:", -diff)
		}
	}
}

// WriteText writes the border plan as an aligned text block.
func (p *BorderPlan) WriteText(w io.Writer) {
	fmt.Fprintf(w, "Pick up %d border %s along %d main-fabric %s\n\n",
		p.Stitches, countWord(p.Stitches, "stitch"), p.MainCount, countWord(p.MainCount, edgeWord(p.Edge)))
	fmt.Fprintf(w, "%-13s %s (border:main)\n", "Rate:", p.Rate)
}

// countWord pluralizes the counting units used in plan output.
func countWord(n int, word string) string {
	if word == "stitch" && n != 1 {
		return "stitches"
	}
	return evenly.Pluralize(word, n)
}

func edgeWord(e gauge.EdgeKind) string {
	if e == gauge.EdgeRow {
		return "row"
	}
	return "stitch"
}
