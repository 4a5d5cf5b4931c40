package morphing

import (
	"fmt"
	"math"

	"github.com/notargets/gomorph/CST2D"
	"github.com/notargets/gomorph/types"
	"github.com/notargets/gomorph/utils"
)

// Solver computes the dependent shape coefficients of a child airfoil. A
// Solver holds only settings and may be shared between goroutines, provided
// Trace is safe for concurrent use.
type Solver struct {
	Tolerance      float64 // Fixed point tolerance on the leading upper coefficient
	MaxIterations  int
	ConditionLimit float64 // Largest accepted condition number of the Bernstein system
	// Trace, when set, receives each fixed point evaluation
	Trace func(iteration int, leadingUpper, chord float64)
}

func NewSolver() *Solver {
	return &Solver{
		Tolerance:      utils.FixedPointTOL,
		MaxIterations:  utils.FixedPointMaxIter,
		ConditionLimit: utils.ConditionLimit,
	}
}

type Result struct {
	Direction       types.MorphingDirection
	Child           Configuration
	SparThicknesses []float64
	// Spars holds the spar geometry in the configuration where the spars are
	// not vertical: the parent for Backwards, the child for Forwards
	Spars      []CST2D.SparGeometry
	Stations   []float64
	Iterations int     // Fixed point evaluations for the leading upper coefficient
	Condition  float64 // Condition number of the class weighted Bernstein system
}

// Solve uses the default solver settings
func Solve(direction types.MorphingDirection, freeUpper, spars []float64, parent Configuration) (*Result, error) {
	return NewSolver().Solve(direction, freeUpper, spars, parent)
}

// Solve finds the child configuration whose upper surface has the free
// coefficients freeUpper, whose upper surface length and leading edge radius
// match the parent, and whose spars at the stations spars keep the parent
// spar thicknesses.
func (s *Solver) Solve(direction types.MorphingDirection, freeUpper, spars []float64, parent Configuration) (r *Result, err error) {
	if err = parent.Validate(); err != nil {
		return
	}
	var (
		n   = parent.Order()
		AuP = parent.Upper.All()
		cP  = parent.Chord
		gap = parent.TrailingEdgeGap
		cC  float64
		nIt int
	)
	if len(freeUpper) != n {
		err = fmt.Errorf("%d free upper coefficients for a parent of order %d: %w",
			len(freeUpper), n, types.ErrDimensionMismatch)
		return
	}
	if err = ValidateStations(spars, n); err != nil {
		return
	}
	if direction != types.Backwards && direction != types.Forwards {
		err = fmt.Errorf("%v: %w", direction, types.ErrInvalidDomain)
		return
	}
	childUpper := CoefficientSet{Free: append([]float64{}, freeUpper...)}

	// The leading upper coefficient keeps the leading edge radius, A0^2 c,
	// while the chord keeps the upper surface length. Both depend on each other.
	g := func(Au0 float64) (float64, error) {
		var err error
		childUpper.Leading = Au0
		if cC, err = CST2D.BaselineChord(cP, childUpper.All(), AuP, gap); err != nil {
			return 0, err
		}
		nIt++
		if s.Trace != nil {
			s.Trace(nIt, Au0, cC)
		}
		return math.Sqrt(cP/cC) * AuP[0], nil
	}
	// cC is left at the chord of the last evaluation, which is within the
	// fixed point tolerance of the converged one
	if childUpper.Leading, _, err = utils.FixedPoint(g, AuP[0], s.Tolerance, s.MaxIterations); err != nil {
		err = fmt.Errorf("leading upper coefficient: %w", err)
		return
	}

	r = &Result{
		Direction: direction,
		Child: Configuration{
			Upper:           childUpper,
			Lower:           CoefficientSet{Leading: math.Sqrt(cP/cC) * parent.Lower.Leading},
			Chord:           cC,
			TrailingEdgeGap: gap,
		},
		Stations:   append([]float64{}, spars...),
		Iterations: nIt,
	}
	switch direction {
	case types.Backwards:
		err = s.backwards(r, parent)
	case types.Forwards:
		err = s.forwards(r, parent)
	}
	if err != nil {
		r = nil
	}
	return
}

// backwards: the spars are vertical in the child. Their thicknesses are
// measured in the parent along the carried spar direction.
func (s *Solver) backwards(r *Result, parent Configuration) (err error) {
	var (
		spars    = r.Stations
		n        = len(spars)
		child    = &r.Child
		AuC      = child.Upper.All()
		AuP, AlP = parent.Upper.All(), parent.Lower.All()
		cC, cP   = child.Chord, parent.Chord
		gap      = parent.TrailingEdgeGap
		A0       = child.Upper.Leading + child.Lower.Leading
		rhs      = make([]float64, n)
		x        []float64
	)
	r.SparThicknesses = make([]float64, n)
	r.Spars = make([]CST2D.SparGeometry, n)
	for j, psi := range spars {
		if r.Spars[j], err = CST2D.SparIntersection(psi, AuC, AuP, AlP, gap, cC, cP); err != nil {
			return fmt.Errorf("spar %d: %w", j, err)
		}
		t := r.Spars[j].Distance
		r.SparThicknesses[j] = t
		// Vertical thickness in the child is c C(psi) (Su + Sl) + psi*gap
		rhs[j] = (t-psi*gap)/cC - CST2D.Airfoil.C(psi)*A0*utils.POW(1-psi, n)
	}
	if x, r.Condition, err = utils.SolveSquare(bernsteinSystem(spars, n, CST2D.Airfoil), rhs, s.ConditionLimit); err != nil {
		return fmt.Errorf("backwards spar system: %w", err)
	}
	// The system is solved for Au_i + Al_i
	child.Lower.Free = make([]float64, n)
	for i := range x {
		child.Lower.Free[i] = x[i] - child.Upper.Free[i]
	}
	return
}

// forwards: the spars are vertical in the parent. Each is carried rigidly onto
// the child upper surface and the child lower surface is made to pass through
// the spar ends.
func (s *Solver) forwards(r *Result, parent Configuration) (err error) {
	var (
		spars  = r.Stations
		n      = len(spars)
		child  = &r.Child
		AuC    = child.Upper.All()
		AuP    = parent.Upper.All()
		cC, cP = child.Chord, parent.Chord
		gap    = parent.TrailingEdgeGap
		dXi    = CST2D.DeltaXi(gap, cC)
		Al0    = child.Lower.Leading
		psiL   = make([]float64, n)
		rhs    = make([]float64, n)
		x      []float64
	)
	r.SparThicknesses = make([]float64, n)
	for j, psi := range spars {
		r.SparThicknesses[j] = parent.Thickness(psi)
	}
	if r.Spars, err = carrySpars(spars, r.SparThicknesses, AuP, AuC, gap, cP, cC); err != nil {
		return fmt.Errorf("forwards spars: %w", err)
	}
	for j, sg := range r.Spars {
		p := sg.PsiLower
		if math.IsNaN(p) || p <= 0 || p >= 1 {
			return fmt.Errorf("spar %d lands at psi = %g outside (0,1): %w", j, p, types.ErrInvalidDomain)
		}
		psiL[j] = p
		rhs[j] = -(sg.XiLower + p*dXi) - CST2D.Airfoil.C(p)*Al0*utils.POW(1-p, n)
	}
	if x, r.Condition, err = utils.SolveSquare(bernsteinSystem(psiL, n, CST2D.Airfoil), rhs, s.ConditionLimit); err != nil {
		return fmt.Errorf("forwards spar system: %w", err)
	}
	child.Lower.Free = x
	return
}
