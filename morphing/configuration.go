package morphing

import (
	"fmt"
	"math"

	"github.com/notargets/gomorph/CST2D"
	"github.com/notargets/gomorph/types"
)

// CoefficientSet holds the Bernstein coefficients of one surface. Leading is
// coefficient 0, which the morphing constraints derive from the leading edge
// radius rather than leave free.
type CoefficientSet struct {
	Leading float64
	Free    []float64 // Coefficients 1..n
}

func NewCoefficientSet(A []float64) (cs CoefficientSet, err error) {
	if len(A) == 0 {
		err = fmt.Errorf("empty coefficient set: %w", types.ErrDimensionMismatch)
		return
	}
	cs.Leading = A[0]
	cs.Free = append([]float64{}, A[1:]...)
	return
}

// All returns the n+1 coefficients in order
func (cs CoefficientSet) All() (A []float64) {
	A = make([]float64, 0, len(cs.Free)+1)
	A = append(A, cs.Leading)
	return append(A, cs.Free...)
}

// Order is the polynomial order n of the Bernstein shape function
func (cs CoefficientSet) Order() int { return len(cs.Free) }

func copySet(cs CoefficientSet) CoefficientSet {
	return CoefficientSet{Leading: cs.Leading, Free: append([]float64{}, cs.Free...)}
}

// Configuration is one complete airfoil: parent (given) or child (solved)
type Configuration struct {
	Upper, Lower    CoefficientSet
	Chord           float64
	TrailingEdgeGap float64 // Total dimensional gap, split evenly between both surfaces
}

func NewConfiguration(Au, Al []float64, chord, gap float64) (cfg Configuration, err error) {
	if cfg.Upper, err = NewCoefficientSet(Au); err != nil {
		return
	}
	if cfg.Lower, err = NewCoefficientSet(Al); err != nil {
		return
	}
	cfg.Chord, cfg.TrailingEdgeGap = chord, gap
	err = cfg.Validate()
	return
}

func (cfg Configuration) Validate() error {
	if cfg.Upper.Order() != cfg.Lower.Order() {
		return fmt.Errorf("upper order %d, lower order %d: %w",
			cfg.Upper.Order(), cfg.Lower.Order(), types.ErrDimensionMismatch)
	}
	if math.IsNaN(cfg.Chord) || cfg.Chord <= 0 {
		return fmt.Errorf("chord %g is not positive: %w", cfg.Chord, types.ErrInvalidDomain)
	}
	if math.IsNaN(cfg.TrailingEdgeGap) || cfg.TrailingEdgeGap < 0 {
		return fmt.Errorf("trailing edge gap %g is negative: %w", cfg.TrailingEdgeGap, types.ErrInvalidDomain)
	}
	return nil
}

// Order is the common polynomial order of both surfaces
func (cfg Configuration) Order() int { return cfg.Upper.Order() }

// Mirrored flips the airfoil about the chord line, so that a morph of the
// lower surface can be solved as a morph of the upper one. The lower surface
// heights are -(C S + psi dXi), so mirroring swaps the coefficient sets.
func (cfg Configuration) Mirrored() Configuration {
	return Configuration{
		Upper:           copySet(cfg.Lower),
		Lower:           copySet(cfg.Upper),
		Chord:           cfg.Chord,
		TrailingEdgeGap: cfg.TrailingEdgeGap,
	}
}

func (cfg Configuration) deltaXi() float64 {
	return CST2D.DeltaXi(cfg.TrailingEdgeGap, cfg.Chord)
}

// UpperXi and LowerXi are the signed non-dimensional surface heights at psi
func (cfg Configuration) UpperXi(psi float64) float64 {
	return CST2D.Xi(psi, cfg.Upper.All(), cfg.deltaXi(), CST2D.Airfoil)
}

func (cfg Configuration) LowerXi(psi float64) float64 {
	return -CST2D.Xi(psi, cfg.Lower.All(), cfg.deltaXi(), CST2D.Airfoil)
}

// Thickness is the dimensional vertical distance between both surfaces at psi
func (cfg Configuration) Thickness(psi float64) float64 {
	return cfg.Chord * (cfg.UpperXi(psi) - cfg.LowerXi(psi))
}

// Surfaces evaluates both dimensional surface heights at the dimensional stations x
func (cfg Configuration) Surfaces(x []float64) CST2D.Surfaces {
	half := cfg.TrailingEdgeGap / 2
	return CST2D.CST(x, cfg.Chord, [2]float64{half, half}, cfg.Upper.All(), cfg.Lower.All(), CST2D.Airfoil)
}

// Coordinates samples the closed dimensional contour, see CST2D.Coordinates
func (cfg Configuration) Coordinates(n int) (X, Y []float64) {
	return CST2D.Coordinates(cfg.Chord, cfg.TrailingEdgeGap, cfg.Upper.All(), cfg.Lower.All(), CST2D.Airfoil, n)
}

// ValidateStations checks that there are n stations, each inside (0,1) and
// strictly increasing
func ValidateStations(spars []float64, n int) error {
	if len(spars) != n {
		return fmt.Errorf("%d spar stations for %d unknowns: %w", len(spars), n, types.ErrDimensionMismatch)
	}
	for j, psi := range spars {
		if math.IsNaN(psi) || psi <= 0 || psi >= 1 {
			return fmt.Errorf("spar station %d = %g outside (0,1): %w", j, psi, types.ErrInvalidDomain)
		}
		if j > 0 && psi <= spars[j-1] {
			return fmt.Errorf("spar station %d = %g does not follow %g: %w", j, psi, spars[j-1], types.ErrInvalidDomain)
		}
	}
	return nil
}
