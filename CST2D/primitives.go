package CST2D

import (
	"fmt"
	"math"

	"github.com/notargets/gomorph/types"
	"github.com/notargets/gomorph/utils"
)

// All primitives here work on the upper surface description of the Airfoil
// class unless a lower set is passed explicitly. Chords and the trailing edge
// gap are dimensional, psi is normalized by the chord of the configuration it
// belongs to.

func checkPsi(name string, psi float64) error {
	if math.IsNaN(psi) || psi < 0 || psi > 1 {
		return fmt.Errorf("%s = %g outside [0,1]: %w", name, psi, types.ErrInvalidDomain)
	}
	return nil
}

func checkChord(name string, c float64) error {
	if math.IsNaN(c) || c <= 0 {
		return fmt.Errorf("%s = %g is not positive: %w", name, c, types.ErrInvalidDomain)
	}
	return nil
}

// arcLength is the non-dimensional length of one surface between psi0 and psi1.
// The substitution psi = t^2 removes the square root singularity of the
// slope at the leading edge, leaving a smooth integrand in t.
func arcLength(psi0, psi1 float64, A []float64, dXi float64) float64 {
	integrand := func(t float64) float64 {
		var (
			dPsi = 2 * t
			dxi  = dPsi * DXi(t*t, A, dXi, Airfoil)
		)
		return math.Sqrt(dPsi*dPsi + dxi*dxi)
	}
	return utils.GaussLegendre(integrand, math.Sqrt(psi0), math.Sqrt(psi1), utils.LegendrePanels)
}

// ArcLength returns the dimensional length of the surface described by A
// between the chordwise stations psi0 and psi1
func ArcLength(psi0, psi1 float64, A []float64, gap, chord float64) (L float64, err error) {
	if err = checkPsi("psi0", psi0); err != nil {
		return
	}
	if err = checkPsi("psi1", psi1); err != nil {
		return
	}
	if err = checkChord("chord", chord); err != nil {
		return
	}
	L = chord * arcLength(psi0, psi1, A, DeltaXi(gap, chord))
	return
}

// BaselineChord returns the chord of the child upper surface AuC whose total
// length equals that of the parent upper surface AuP with chord cP
func BaselineChord(cP float64, AuC, AuP []float64, gap float64) (cC float64, err error) {
	if err = checkChord("parent chord", cP); err != nil {
		return
	}
	LP := arcLength(0, 1, AuP, DeltaXi(gap, cP))
	g := func(c float64) (float64, error) {
		if err := checkChord("child chord", c); err != nil {
			return 0, err
		}
		return cP * (LP / arcLength(0, 1, AuC, DeltaXi(gap, c))), nil
	}
	if cC, _, err = utils.FixedPoint(g, cP, utils.NODETOL*cP, utils.FixedPointMaxIter); err != nil {
		err = fmt.Errorf("baseline chord: %w", err)
	}
	return
}

// PsiGoal returns the station on the target upper surface whose arc length
// from the leading edge equals that of psiS on the source upper surface
func PsiGoal(psiS float64, AuS, AuT []float64, gap, cS, cT float64) (psiT float64, err error) {
	if err = checkPsi("psi", psiS); err != nil {
		return
	}
	if err = checkChord("source chord", cS); err != nil {
		return
	}
	if err = checkChord("target chord", cT); err != nil {
		return
	}
	if psiS == 0 {
		return 0, nil
	}
	var (
		Ls  = cS * arcLength(0, psiS, AuS, DeltaXi(gap, cS))
		dXi = DeltaXi(gap, cT)
	)
	f := func(psi float64) float64 {
		return cT*arcLength(0, psi, AuT, dXi) - Ls
	}
	if psiT, err = utils.SolveITP(f, 0, 1, utils.RootTOL, 1, 0.2); err != nil {
		err = fmt.Errorf("psi goal for psi = %g: %w", psiS, err)
	}
	return
}

// SparDirectionAt returns the unit vector, pointing from the lower to the upper
// surface, of a rigid spar that is vertical at psiA on configuration a and is
// attached at psiB on configuration b. The spar keeps its angle to the local
// upper surface tangent.
func SparDirectionAt(psiA, psiB float64, AuA, AuB []float64, gap, cA, cB float64) (s [2]float64) {
	var (
		dA     = DXi(psiA, AuA, DeltaXi(gap, cA), Airfoil)
		nA     = math.Hypot(1, dA)
		cb, sb = dA / nA, 1 / nA
		dB     = DXi(psiB, AuB, DeltaXi(gap, cB), Airfoil)
		nB     = math.Hypot(1, dB)
		t0, t1 = 1 / nB, dB / nB
	)
	// Rotate the tangent of b by the angle between the tangent of a and the vertical
	s[0] = t0*cb - t1*sb
	s[1] = t1*cb + t0*sb
	return
}

// SparDirection is SparDirectionAt with the chord of a and the attachment
// station on b derived from the upper surface length constraint
func SparDirection(psi float64, AuA, AuB []float64, gap, cB float64) (s [2]float64, err error) {
	var (
		cA, psiB float64
	)
	if cA, err = BaselineChord(cB, AuA, AuB, gap); err != nil {
		return
	}
	if psiB, err = PsiGoal(psi, AuA, AuB, gap, cA, cB); err != nil {
		return
	}
	s = SparDirectionAt(psi, psiB, AuA, AuB, gap, cA, cB)
	return
}

// SparGeometry is a spar carried onto configuration b, in b's normalized coordinates
type SparGeometry struct {
	PsiUpper, XiUpper float64
	PsiLower, XiLower float64
	Direction         [2]float64
	Distance          float64 // Dimensional length along Direction
}

// SparIntersection carries the spar that is vertical at psiA on a onto b and
// intersects it with b's lower surface AlB
func SparIntersection(psiA float64, AuA, AuB, AlB []float64, gap, cA, cB float64) (sg SparGeometry, err error) {
	if err = checkPsi("spar station", psiA); err != nil {
		return
	}
	if sg.PsiUpper, err = PsiGoal(psiA, AuA, AuB, gap, cA, cB); err != nil {
		return
	}
	sg.Direction = SparDirectionAt(psiA, sg.PsiUpper, AuA, AuB, gap, cA, cB)
	if sg.Direction[1] <= 0 {
		err = fmt.Errorf("spar at psi = %g does not point across the airfoil, direction = %v: %w",
			psiA, sg.Direction, types.ErrInvalidDomain)
		return
	}
	var (
		dXi   = DeltaXi(gap, cB)
		slope = sg.Direction[0] / sg.Direction[1]
	)
	sg.XiUpper = Xi(sg.PsiUpper, AuB, dXi, Airfoil)
	g := func(psiL float64) (float64, error) {
		if err := checkPsi("spar landing", psiL); err != nil {
			return 0, err
		}
		xiL := -Xi(psiL, AlB, dXi, Airfoil)
		return sg.PsiUpper + slope*(xiL-sg.XiUpper), nil
	}
	if sg.PsiLower, _, err = utils.FixedPoint(g, sg.PsiUpper, utils.NODETOL, utils.FixedPointMaxIter); err != nil {
		err = fmt.Errorf("spar landing for psi = %g: %w", psiA, err)
		return
	}
	if err = checkPsi("spar landing", sg.PsiLower); err != nil {
		return
	}
	sg.XiLower = -Xi(sg.PsiLower, AlB, dXi, Airfoil)
	sg.Distance = cB * (sg.XiUpper - sg.XiLower) / sg.Direction[1]
	return
}

// SparDistance returns the dimensional length of the spar that is vertical at
// psi on the upper surface AuA, measured on configuration b between its upper
// surface AuB and lower surface AlB
func SparDistance(psi float64, AuA, AuB, AlB []float64, gap, cB float64) (t float64, err error) {
	var (
		cA float64
		sg SparGeometry
	)
	if cA, err = BaselineChord(cB, AuA, AuB, gap); err != nil {
		return
	}
	if sg, err = SparIntersection(psi, AuA, AuB, AlB, gap, cA, cB); err != nil {
		return
	}
	t = sg.Distance
	return
}
