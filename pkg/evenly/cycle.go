package evenly

import "fmt"

// Cycle is the minimal repeating unit of a distribution. The placement for
// (Items, Slots) repeated Repeats times back to back reconstructs the full
// placement, and Items and Slots are coprime.
type Cycle struct {
	Items   int `json:"items"`
	Slots   int `json:"slots"`
	Repeats int `json:"repeats"`
}

// ReduceCycle reduces an (items, slots) pair to its minimal repeating cycle
// by dividing both by their GCD. The repeat count is the GCD itself.
func ReduceCycle(items, slots int) (Cycle, error) {
	if slots <= 0 {
		return Cycle{}, fmt.Errorf("cannot reduce a cycle across %d slots: need at least one slot", slots)
	}
	if items < 0 {
		return Cycle{}, fmt.Errorf("cannot reduce a cycle of %d items: item count must not be negative", items)
	}
	g := GCD(items, slots)
	return Cycle{Items: items / g, Slots: slots / g, Repeats: g}, nil
}
