// Package evenly implements the even-distribution and minimal-repeat engine
// behind tension's stitch pick-up planning.
//
// # Overview
//
// Knitters constantly need to place N things across M positions as evenly as
// possible: picking up N stitches along an edge of M rows, or working N
// increases across a row of M stitches. This package computes a slot-by-slot
// placement with maximal evenness, reduces it to the shortest repeating cycle,
// and renders the result in the wording a printed pattern would use.
//
// # Core Concepts
//
// A placement is an ordered sequence of per-slot counts produced by Distribute.
// Counts are 0 or 1 in the common pick-up case and can exceed 1 when more
// items than slots are placed.
//
// A Cycle is the reduced form of a placement: ReduceCycle divides items and
// slots by their GCD, and the full placement is exactly the cycle's placement
// repeated that many times. Knitters memorize the short cycle, not the full
// edge.
//
// Runs are maximal stretches of equal counts. DescribeRuns compresses a
// placement into runs, and Instruction renders the runs as instruction text
// ("Pick up 1 from each of 5 rows", "skip 1 → pick up 1 → skip 2").
//
// # Usage Example
//
//	import "github.com/dyluth/tension/pkg/evenly"
//
//	cycle, err := evenly.ReduceCycle(6, 16)
//	if err != nil {
//		log.Fatal(err)
//	}
//	// cycle = Cycle{Items: 3, Slots: 8, Repeats: 2}
//
//	seq, err := evenly.Distribute(cycle.Items, cycle.Slots)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	runs := evenly.DescribeRuns(seq)
//	fmt.Println(evenly.Instruction(runs))
//	fmt.Println(evenly.Markers(seq))
//
// # Design Principles
//
// - Purity: every function is a pure function of its arguments; nothing is cached or mutated
// - Exactness: distribution re-anchors to the true cumulative fraction at every slot, so totals are conserved without drift
// - Single representation: integer counts everywhere; boolean placement is the {0,1} special case
package evenly
