package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"

	"github.com/notargets/gomorph/CST2D"
	"github.com/notargets/gomorph/morphing"
	"github.com/notargets/gomorph/types"
)

// Parameters obtained from the YAML case file
type MorphParameters struct {
	Title           string      `yaml:"Title"`
	Direction       string      `yaml:"Direction"` // backwards or forwards
	ParentUpper     []float64   `yaml:"ParentUpper"`
	ParentLower     []float64   `yaml:"ParentLower"`
	ParentChord     float64     `yaml:"ParentChord"`
	TrailingEdgeGap float64     `yaml:"TrailingEdgeGap"`
	SparStations    []float64   `yaml:"SparStations"`
	ChildUpper      []float64   `yaml:"ChildUpper"` // Free coefficients 1..n of the morphed surface
	Inverted        bool        `yaml:"Inverted"`   // Morph the lower surface instead of the upper
	Tolerance       float64     `yaml:"Tolerance"`
	MaxIterations   int         `yaml:"MaxIterations"`
	Strains         bool        `yaml:"Strains"`
	Sweep           [][]float64 `yaml:"Sweep"` // Spar station sets, each solved as its own case
}

func (mp *MorphParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, mp)
}

func (mp *MorphParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", mp.Title)
	fmt.Printf("[%s]\t\t= Direction\n", mp.Direction)
	fmt.Printf("%v\t= Parent Upper\n", mp.ParentUpper)
	fmt.Printf("%v\t= Parent Lower\n", mp.ParentLower)
	fmt.Printf("%8.5f\t\t= Parent Chord\n", mp.chord())
	fmt.Printf("%8.5f\t\t= Trailing Edge Gap\n", mp.TrailingEdgeGap)
	fmt.Printf("%v\t\t= Spar Stations\n", mp.SparStations)
	fmt.Printf("%v\t\t= Child Upper\n", mp.ChildUpper)
	if mp.Inverted {
		fmt.Printf("[%t]\t\t\t= Inverted\n", mp.Inverted)
	}
	for i, spars := range mp.Sweep {
		fmt.Printf("Sweep[%d] = %v\n", i, spars)
	}
}

func (mp *MorphParameters) chord() float64 {
	if mp.ParentChord == 0 {
		return 1
	}
	return mp.ParentChord
}

// MorphingDirection defaults to backwards
func (mp *MorphParameters) MorphingDirection() (types.MorphingDirection, error) {
	if len(mp.Direction) == 0 {
		return types.Backwards, nil
	}
	return types.NewMorphingDirection(mp.Direction)
}

// Parent is the parent configuration as the solver sees it, mirrored when the
// lower surface is the one being morphed
func (mp *MorphParameters) Parent() (parent morphing.Configuration, err error) {
	if parent, err = morphing.NewConfiguration(mp.ParentUpper, mp.ParentLower, mp.chord(), mp.TrailingEdgeGap); err != nil {
		return
	}
	if mp.Inverted {
		parent = parent.Mirrored()
	}
	return
}

// Solver applies the optional iteration settings over the defaults
func (mp *MorphParameters) Solver() (s *morphing.Solver) {
	s = morphing.NewSolver()
	if mp.Tolerance > 0 {
		s.Tolerance = mp.Tolerance
	}
	if mp.MaxIterations > 0 {
		s.MaxIterations = mp.MaxIterations
	}
	return
}

// Cases expands the sweep into solver cases. Without a sweep the case file
// holds a single case at SparStations.
func (mp *MorphParameters) Cases() (cases []morphing.Case, err error) {
	var (
		dir    types.MorphingDirection
		parent morphing.Configuration
		sets   = mp.Sweep
	)
	if dir, err = mp.MorphingDirection(); err != nil {
		return
	}
	if parent, err = mp.Parent(); err != nil {
		return
	}
	if len(sets) == 0 {
		sets = [][]float64{mp.SparStations}
	}
	cases = make([]morphing.Case, len(sets))
	for i, spars := range sets {
		cases[i] = morphing.Case{
			Direction: dir,
			FreeUpper: mp.ChildUpper,
			Spars:     spars,
			Parent:    parent,
		}
	}
	return
}

// Parameters of a shape tracing fit: a curve of class (N1, N2) running along y
// from the origin, whose x deflection passes through the target points and
// reaches TipX at the station TipY
type TracingParameters struct {
	Title   string    `yaml:"Title"`
	TipX    float64   `yaml:"TipX"`
	TipY    float64   `yaml:"TipY"`
	PointsX []float64 `yaml:"PointsX"`
	PointsY []float64 `yaml:"PointsY"`
	N1      float64   `yaml:"N1"`
	N2      float64   `yaml:"N2"`
}

func (tp *TracingParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, tp)
}

func (tp *TracingParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", tp.Title)
	fmt.Printf("(%8.5f, %8.5f)\t= Tip\n", tp.TipX, tp.TipY)
	fmt.Printf("%v\t\t= Points X\n", tp.PointsX)
	fmt.Printf("%v\t\t= Points Y\n", tp.PointsY)
	fmt.Printf("[%g, %g]\t\t= Class N1, N2\n", tp.N1, tp.N2)
}

// Class defaults to the airfoil class when neither exponent is set
func (tp *TracingParameters) Class() CST2D.Class {
	if tp.N1 == 0 && tp.N2 == 0 {
		return CST2D.Airfoil
	}
	return CST2D.Class{N1: tp.N1, N2: tp.N2}
}

// Trace fits the curve: the chord is the tip ordinate and the end thickness
// the tip deflection
func (tp *TracingParameters) Trace() (A []float64, err error) {
	if tp.TipY == 0 {
		err = fmt.Errorf("tip ordinate is zero: %w", types.ErrInvalidDomain)
		return
	}
	return morphing.TraceShape(morphing.TipLeadingCoefficient(tp.TipX, tp.TipY),
		tp.PointsY, tp.PointsX, tp.Class(), tp.TipY, tp.TipX)
}
