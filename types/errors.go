package types

import "errors"

// Every failure surfaced by the solver and its primitives matches one of
// these with errors.Is. Context is added by wrapping with fmt.Errorf("...: %w").
var (
	// ErrNonConvergence is returned when a bounded iteration (leading
	// coefficient fixed point, baseline chord, spar intersection) exhausts its
	// iteration cap before reaching tolerance.
	ErrNonConvergence = errors.New("morph: iteration did not converge")

	// ErrSingularSystem is returned when a Bernstein system is singular or
	// too ill-conditioned to trust, or the solve produced a non-finite value.
	ErrSingularSystem = errors.New("morph: singular or ill-conditioned system")

	// ErrDimensionMismatch is returned for inconsistent lengths between free
	// coefficients, spar stations and coefficient sets.
	ErrDimensionMismatch = errors.New("morph: dimension mismatch")

	// ErrInvalidDomain is returned for stations outside (0,1), non increasing
	// stations, non-positive chords, or a root find that cannot be bracketed.
	ErrInvalidDomain = errors.New("morph: invalid domain")
)
