package evenly

import (
	"fmt"
	"strings"
)

// Run is a maximal stretch of consecutive slots sharing the same count.
type Run struct {
	Value  int `json:"value"`
	Length int `json:"length"`
}

// DescribeRuns compresses a placement into its ordered runs. Adjacent runs
// never share a value, and the run lengths sum to len(seq). An empty
// placement yields no runs.
func DescribeRuns(seq []int) []Run {
	if len(seq) == 0 {
		return nil
	}
	runs := []Run{{Value: seq[0], Length: 1}}
	for _, v := range seq[1:] {
		last := &runs[len(runs)-1]
		if v == last.Value {
			last.Length++
			continue
		}
		runs = append(runs, Run{Value: v, Length: 1})
	}
	return runs
}

// Instruction renders runs as the instruction text a knitting pattern would
// print. A lone run reads as a full sentence ("Pick up 1 from each of 5
// rows"); multiple runs become fragments joined by arrows
// ("skip 1 → pick up 1 → skip 2").
func Instruction(runs []Run) string {
	switch len(runs) {
	case 0:
		return ""
	case 1:
		r := runs[0]
		if r.Value == 0 {
			return fmt.Sprintf("Skip %d %s", r.Length, Pluralize("row", r.Length))
		}
		return fmt.Sprintf("Pick up %d from each of %d %s", r.Value, r.Length, Pluralize("row", r.Length))
	}

	parts := make([]string, len(runs))
	for i, r := range runs {
		parts[i] = runFragment(r)
	}
	return strings.Join(parts, " → ")
}

func runFragment(r Run) string {
	switch {
	case r.Value == 0:
		return fmt.Sprintf("skip %d", r.Length)
	case r.Length == 1:
		return fmt.Sprintf("pick up %d", r.Value)
	default:
		return fmt.Sprintf("pick up %d × %d %s", r.Value, r.Length, Pluralize("row", r.Length))
	}
}

// Pluralize appends "s" to word when n is anything other than 1.
func Pluralize(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

// Marker renders a single slot count as a chart marker: an empty dot for 0, a
// filled dot for 1, and a filled dot annotated with the count above 1.
func Marker(count int) string {
	switch {
	case count == 0:
		return "○"
	case count == 1:
		return "●"
	default:
		return fmt.Sprintf("●%d", count)
	}
}

// Markers renders a whole placement as space-separated markers.
func Markers(seq []int) string {
	parts := make([]string, len(seq))
	for i, v := range seq {
		parts[i] = Marker(v)
	}
	return strings.Join(parts, " ")
}
