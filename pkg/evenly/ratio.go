package evenly

import (
	"fmt"
	"math"
)

// Ratio is a proportion reduced to lowest terms.
type Ratio struct {
	A int `json:"a"`
	B int `json:"b"`
}

// String renders the ratio in "a:b" form.
func (r Ratio) String() string {
	return fmt.Sprintf("%d:%d", r.A, r.B)
}

// GCD returns the greatest common divisor of the magnitudes of a and b using
// the Euclidean algorithm. GCD(a, 0) = a, so GCD(0, 0) is 0 and callers that
// go on to divide must guard that case.
func GCD(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// SimplifyRatio reduces a:b to lowest terms. Both inputs are rounded to the
// nearest integer, each original value is divided by the GCD of the rounded
// pair, and the quotients are rounded again. Returns an error when both
// inputs round to zero, since no proportion exists to simplify.
func SimplifyRatio(a, b float64) (Ratio, error) {
	g := GCD(int(math.Round(a)), int(math.Round(b)))
	if g == 0 {
		return Ratio{}, fmt.Errorf("cannot simplify ratio %g:%g: both values round to zero", a, b)
	}
	return Ratio{
		A: int(math.Round(a / float64(g))),
		B: int(math.Round(b / float64(g))),
	}, nil
}
