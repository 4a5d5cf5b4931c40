package morphing

import (
	"fmt"
	"math"

	"github.com/notargets/gomorph/CST2D"
	"github.com/notargets/gomorph/types"
	"gonum.org/v1/gonum/floats"
)

// StrainReport compares parent (initial) and child (final) segment lengths.
// Segment j runs between consecutive boundaries: the leading edge, the spar
// landings on the lower surface, and the trailing edge.
type StrainReport struct {
	Initial, Final []float64
	Segment        []float64
	Average        float64 // Strain of the summed lengths
}

func newStrainReport(initial, final []float64) (sr *StrainReport) {
	sr = &StrainReport{
		Initial: initial,
		Final:   final,
		Segment: make([]float64, len(initial)),
	}
	for i := range initial {
		sr.Segment[i] = (final[i] - initial[i]) / initial[i]
	}
	Li := floats.Sum(initial)
	sr.Average = (floats.Sum(final) - Li) / Li
	return
}

func checkBounds(name string, bounds []float64) error {
	for i := 1; i < len(bounds); i++ {
		if math.IsNaN(bounds[i]) || bounds[i] <= bounds[i-1] || bounds[i] > 1 {
			return fmt.Errorf("%s boundaries %v are not increasing inside [0,1]: %w",
				name, bounds, types.ErrInvalidDomain)
		}
	}
	return nil
}

func lowerLengths(cfg Configuration, landings []float64) (L []float64, err error) {
	var (
		bounds = make([]float64, 0, len(landings)+2)
		Al     = cfg.Lower.All()
	)
	bounds = append(bounds, 0)
	bounds = append(bounds, landings...)
	bounds = append(bounds, 1)
	if err = checkBounds("lower surface", bounds); err != nil {
		return
	}
	L = make([]float64, len(bounds)-1)
	for i := range L {
		if L[i], err = CST2D.ArcLength(bounds[i], bounds[i+1], Al, cfg.TrailingEdgeGap, cfg.Chord); err != nil {
			return
		}
	}
	return
}

func checkPair(parent, child Configuration) error {
	if err := parent.Validate(); err != nil {
		return err
	}
	if err := child.Validate(); err != nil {
		return err
	}
	if parent.TrailingEdgeGap != child.TrailingEdgeGap {
		return fmt.Errorf("trailing edge gaps %g and %g differ: %w",
			parent.TrailingEdgeGap, child.TrailingEdgeGap, types.ErrInvalidDomain)
	}
	return nil
}

// Strains evaluates the lower surface strains of a morph whose spars are
// vertical in the parent at the stations spars, with the given thicknesses,
// and carried rigidly onto the child
func Strains(parent, child Configuration, spars, thicknesses []float64) (sr *StrainReport, err error) {
	var (
		sg      []CST2D.SparGeometry
		initial []float64
		final   []float64
	)
	if err = checkPair(parent, child); err != nil {
		return
	}
	if err = ValidateStations(spars, len(thicknesses)); err != nil {
		return
	}
	if sg, err = carrySpars(spars, thicknesses, parent.Upper.All(), child.Upper.All(),
		parent.TrailingEdgeGap, parent.Chord, child.Chord); err != nil {
		return
	}
	if initial, err = lowerLengths(parent, spars); err != nil {
		return
	}
	if final, err = lowerLengths(child, landings(sg)); err != nil {
		return
	}
	sr = newStrainReport(initial, final)
	return
}

func landings(sg []CST2D.SparGeometry) (psi []float64) {
	psi = make([]float64, len(sg))
	for j, g := range sg {
		psi[j] = g.PsiLower
	}
	return
}

// Strains evaluates the lower surface strains from the parent to the solved
// child, whichever configuration holds the vertical spars
func (r *Result) Strains(parent Configuration) (sr *StrainReport, err error) {
	if r.Direction == types.Forwards {
		return Strains(parent, r.Child, r.Stations, r.SparThicknesses)
	}
	var (
		initial, final []float64
	)
	if err = checkPair(parent, r.Child); err != nil {
		return
	}
	if initial, err = lowerLengths(parent, landings(r.Spars)); err != nil {
		return
	}
	if final, err = lowerLengths(r.Child, r.Stations); err != nil {
		return
	}
	sr = newStrainReport(initial, final)
	return
}

// SparLine holds the dimensional upper and lower end points of one spar in
// both configurations
type SparLine struct {
	Parent, Child [2][2]float64 // [upper, lower][x, y]
}

func verticalLine(cfg Configuration, psi, t float64) (l [2][2]float64) {
	var (
		x = psi * cfg.Chord
		y = cfg.Chord * cfg.UpperXi(psi)
	)
	l[0] = [2]float64{x, y}
	l[1] = [2]float64{x, y - t}
	return
}

func carriedLine(c float64, sg CST2D.SparGeometry) (l [2][2]float64) {
	l[0] = [2]float64{c * sg.PsiUpper, c * sg.XiUpper}
	l[1] = [2]float64{c * sg.PsiLower, c * sg.XiLower}
	return
}

// SparLines returns the spar end points of a solved morph
func (r *Result) SparLines(parent Configuration) (lines []SparLine) {
	lines = make([]SparLine, len(r.Stations))
	for j, psi := range r.Stations {
		t := r.SparThicknesses[j]
		switch r.Direction {
		case types.Forwards:
			lines[j].Parent = verticalLine(parent, psi, t)
			lines[j].Child = carriedLine(r.Child.Chord, r.Spars[j])
		default:
			lines[j].Parent = carriedLine(parent.Chord, r.Spars[j])
			lines[j].Child = verticalLine(r.Child, psi, t)
		}
	}
	return
}

// WireStrains measures the straight (chordal) distances between consecutive
// lower spar ends, starting at the leading edge and ending at the trailing edge
func WireStrains(parent, child Configuration, lines []SparLine) (sr *StrainReport, err error) {
	if err = checkPair(parent, child); err != nil {
		return
	}
	if len(lines) == 0 {
		err = fmt.Errorf("no spar lines: %w", types.ErrDimensionMismatch)
		return
	}
	wire := func(cfg Configuration, end func(SparLine) [2]float64) (L []float64) {
		var (
			pts = make([][2]float64, 0, len(lines)+2)
		)
		pts = append(pts, [2]float64{0, 0})
		for _, l := range lines {
			pts = append(pts, end(l))
		}
		pts = append(pts, [2]float64{cfg.Chord, -cfg.TrailingEdgeGap / 2})
		L = make([]float64, len(pts)-1)
		for i := range L {
			L[i] = math.Hypot(pts[i+1][0]-pts[i][0], pts[i+1][1]-pts[i][1])
		}
		return
	}
	initial := wire(parent, func(l SparLine) [2]float64 { return l.Parent[1] })
	final := wire(child, func(l SparLine) [2]float64 { return l.Child[1] })
	for i, L := range initial {
		if L == 0 {
			err = fmt.Errorf("wire segment %d has zero length: %w", i, types.ErrInvalidDomain)
			return
		}
	}
	sr = newStrainReport(initial, final)
	return
}

// WireStrains is WireStrains on the spar lines of a solved morph
func (r *Result) WireStrains(parent Configuration) (*StrainReport, error) {
	return WireStrains(parent, r.Child, r.SparLines(parent))
}
