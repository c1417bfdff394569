package evenly

import (
	"fmt"
	"math"
)

// Distribute places items across slots as evenly as possible and returns one
// count per slot. At each slot the cumulative total is re-anchored to
// round((i+1) * items / slots), so the counts sum to items exactly and no two
// counts differ by more than 1.
//
// items = 0 yields all zeros, items = slots yields all ones, and items > slots
// spreads the larger counts by the same rule.
func Distribute(items, slots int) ([]int, error) {
	if slots <= 0 {
		return nil, fmt.Errorf("cannot distribute across %d slots: need at least one slot", slots)
	}
	if items < 0 {
		return nil, fmt.Errorf("cannot distribute %d items: item count must not be negative", items)
	}

	counts := make([]int, slots)
	placed := 0
	for i := 0; i < slots; i++ {
		expected := int(math.Round(float64((i+1)*items) / float64(slots)))
		counts[i] = expected - placed
		placed = expected
	}
	return counts, nil
}
