package utils

import (
	"fmt"
	"math"

	"github.com/notargets/gomorph/types"
	"gonum.org/v1/gonum/mat"
)

// SolveSquare solves A x = b with an LU factorization with partial pivoting.
// A system whose condition number exceeds condLimit is rejected rather than
// solved, as is any solution that is not finite.
func SolveSquare(A mat.Matrix, b []float64, condLimit float64) (x []float64, cond float64, err error) {
	var (
		nr, nc = A.Dims()
		lu     mat.LU
	)
	if nr != nc || nr == 0 || len(b) != nr {
		err = fmt.Errorf("system is %dx%d with rhs length %d: %w", nr, nc, len(b), types.ErrDimensionMismatch)
		return
	}
	lu.Factorize(A)
	cond = lu.Cond()
	if math.IsNaN(cond) || math.IsInf(cond, 0) || cond > condLimit {
		err = fmt.Errorf("condition number %g exceeds %g: %w", cond, condLimit, types.ErrSingularSystem)
		return
	}
	X := mat.NewVecDense(nr, nil)
	if err = lu.SolveVecTo(X, false, mat.NewVecDense(nr, b)); err != nil {
		err = fmt.Errorf("%v: %w", err, types.ErrSingularSystem)
		return
	}
	x = X.RawVector().Data
	for i, val := range x {
		if math.IsNaN(val) || math.IsInf(val, 0) {
			err = fmt.Errorf("non finite solution component %d: %w", i, types.ErrSingularSystem)
			x = nil
			return
		}
	}
	return
}
