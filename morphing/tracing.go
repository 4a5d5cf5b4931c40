package morphing

import (
	"fmt"
	"math"

	"github.com/notargets/gomorph/CST2D"
	"github.com/notargets/gomorph/types"
	"github.com/notargets/gomorph/utils"
)

// TipLeadingCoefficient is the leading coefficient that places the curve end at
// the tip displacement (tipX, tipY)
func TipLeadingCoefficient(tipX, tipY float64) float64 {
	return -tipX / tipY
}

// TraceShape fits the CST coefficients of a curve of class cl through the
// points (x, y) with the leading coefficient fixed. One point is needed per
// free coefficient, so the curve order is len(x). The returned set holds the
// leading coefficient followed by the len(x) fitted ones.
func TraceShape(leading float64, x, y []float64, cl CST2D.Class, chord, endThickness float64) (A []float64, err error) {
	var (
		n = len(x)
	)
	if n == 0 || len(y) != n {
		err = fmt.Errorf("%d x and %d y target points: %w", len(x), len(y), types.ErrDimensionMismatch)
		return
	}
	if math.IsNaN(chord) || chord <= 0 {
		err = fmt.Errorf("chord %g is not positive: %w", chord, types.ErrInvalidDomain)
		return
	}
	var (
		psi = make([]float64, n)
		rhs = make([]float64, n)
		end = endThickness / chord
		sol []float64
	)
	for j := range x {
		psi[j] = x[j] / chord
		C := cl.C(psi[j])
		if C == 0 || math.IsNaN(C) || math.IsInf(C, 0) {
			err = fmt.Errorf("class function is %g at target %d, psi = %g: %w", C, j, psi[j], types.ErrInvalidDomain)
			return
		}
		rhs[j] = y[j]/chord - psi[j]*end - C*leading*utils.POW(1-psi[j], n)
	}
	if sol, _, err = utils.SolveSquare(bernsteinSystem(psi, n, cl), rhs, utils.ConditionLimit); err != nil {
		err = fmt.Errorf("shape tracing: %w", err)
		return
	}
	A = append([]float64{leading}, sol...)
	return
}
