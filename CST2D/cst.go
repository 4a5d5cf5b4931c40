package CST2D

import (
	"math"

	"github.com/notargets/gomorph/utils"
	"gonum.org/v1/gonum/floats"
)

// Class holds the exponents of the class function C(psi) = psi^N1 (1-psi)^N2
type Class struct {
	N1, N2 float64
}

// Airfoil is the round nose, sharp trailing edge class used by the morphing solver
var Airfoil = Class{N1: 0.5, N2: 1.0}

func (cl Class) C(psi float64) float64 {
	return math.Pow(psi, cl.N1) * math.Pow(1-psi, cl.N2)
}

func (cl Class) DC(psi float64) float64 {
	var (
		a = cl.N1 * math.Pow(psi, cl.N1-1) * math.Pow(1-psi, cl.N2)
		b = cl.N2 * math.Pow(psi, cl.N1) * math.Pow(1-psi, cl.N2-1)
	)
	return a - b
}

// Shape evaluates the Bernstein shape function S(psi) = sum A_i K(n,i) psi^i (1-psi)^(n-i)
func Shape(A []float64, psi float64) (S float64) {
	n := len(A) - 1
	for i, a := range A {
		S += a * utils.Bernstein(i, n, psi)
	}
	return
}

func DShape(A []float64, psi float64) (dS float64) {
	n := len(A) - 1
	for i, a := range A {
		dS += a * utils.DBernstein(i, n, psi)
	}
	return
}

// Xi is the non-dimensional height C(psi) S(psi) + psi*dXi of one surface
// measured away from the chord line. The lower surface height is -Xi.
func Xi(psi float64, A []float64, dXi float64, cl Class) float64 {
	return cl.C(psi)*Shape(A, psi) + psi*dXi
}

// DXi is d(Xi)/d(psi)
func DXi(psi float64, A []float64, dXi float64, cl Class) float64 {
	return cl.DC(psi)*Shape(A, psi) + cl.C(psi)*DShape(A, psi) + dXi
}

// DeltaXi is the non-dimensional trailing edge offset of one surface for a
// total trailing edge gap split evenly between both surfaces
func DeltaXi(gap, chord float64) float64 {
	return gap / (2 * chord)
}

type Surfaces struct {
	Upper, Lower []float64
}

// CST evaluates dimensional surface heights y = c C(psi) S(psi) + psi*deltasz
// at the dimensional stations x. deltasz holds the dimensional trailing edge
// offsets of the upper and lower surface. A nil coefficient set leaves the
// corresponding output nil.
func CST(x []float64, chord float64, deltasz [2]float64, Au, Al []float64, cl Class) (s Surfaces) {
	eval := func(A []float64, dz, sign float64) (y []float64) {
		y = make([]float64, len(x))
		for i, xi := range x {
			psi := xi / chord
			y[i] = sign * (chord*cl.C(psi)*Shape(A, psi) + psi*dz)
		}
		return
	}
	if Au != nil {
		s.Upper = eval(Au, deltasz[0], 1)
	}
	if Al != nil {
		s.Lower = eval(Al, deltasz[1], -1)
	}
	return
}

// Coordinates samples the closed contour of an airfoil at n chordwise
// stations per surface, running from the trailing edge over the upper surface
// to the leading edge and back along the lower surface. The leading edge point
// is shared, giving 2n-1 points. Au and Al must both be set.
func Coordinates(chord, gap float64, Au, Al []float64, cl Class, n int) (X, Y []float64) {
	if n < 2 {
		n = 2
	}
	var (
		x  = floats.Span(make([]float64, n), 0, chord)
		s  = CST(x, chord, [2]float64{gap / 2, gap / 2}, Au, Al, cl)
		nc = 2*n - 1
	)
	X, Y = make([]float64, nc), make([]float64, nc)
	for i := 0; i < n; i++ {
		X[i], Y[i] = x[n-1-i], s.Upper[n-1-i]
	}
	for i := 1; i < n; i++ {
		X[n-1+i], Y[n-1+i] = x[i], s.Lower[i]
	}
	return
}
