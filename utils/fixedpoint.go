package utils

import (
	"fmt"
	"math"

	"github.com/notargets/gomorph/types"
)

// FixedPoint iterates x = g(x) from x0 until successive iterates differ by
// less than tol. The iteration is capped at maxIter evaluations of g.
func FixedPoint(g func(x float64) (float64, error), x0, tol float64, maxIter int) (x float64, iter int, err error) {
	var (
		xNew, residual float64
	)
	x = x0
	residual = math.Inf(1)
	for iter = 1; iter <= maxIter; iter++ {
		if xNew, err = g(x); err != nil {
			return
		}
		if math.IsNaN(xNew) || math.IsInf(xNew, 0) {
			err = fmt.Errorf("iterate %d is %v: %w", iter, xNew, types.ErrNonConvergence)
			return
		}
		residual = math.Abs(xNew - x)
		x = xNew
		if residual < tol {
			return
		}
	}
	iter = maxIter
	err = fmt.Errorf("no fixed point after %d iterations, last residual %g > %g: %w",
		maxIter, residual, tol, types.ErrNonConvergence)
	return
}
