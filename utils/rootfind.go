package utils

import (
	"fmt"
	"math"

	"honnef.co/go/curve"

	"github.com/notargets/gomorph/types"
)

// SolveITP finds a zero of f inside [a, b] with the ITP method of
// curve.SolveITP. The bracket must contain a sign change, in either direction.
func SolveITP(f func(float64) float64, a, b, epsilon float64, n0 int, k1 float64) (x float64, err error) {
	var (
		ya, yb = f(a), f(b)
		g      = f
	)
	switch {
	case ya == 0:
		return a, nil
	case yb == 0:
		return b, nil
	case math.IsNaN(ya) || math.IsNaN(yb) || (ya > 0) == (yb > 0):
		err = fmt.Errorf("no sign change in [%g, %g], f = [%g, %g]: %w", a, b, ya, yb, types.ErrInvalidDomain)
		return
	}
	// curve.SolveITP expects f(a) < 0 < f(b)
	if ya > 0 {
		g = func(x float64) float64 { return -f(x) }
		ya, yb = -ya, -yb
	}
	x = curve.SolveITP(g, a, b, epsilon, n0, k1, ya, yb)
	if y := f(x); math.IsNaN(y) {
		err = fmt.Errorf("f(%g) is NaN: %w", x, types.ErrInvalidDomain)
	}
	return
}
