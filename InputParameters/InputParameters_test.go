package InputParameters

import (
	"errors"
	"testing"

	"github.com/notargets/gomorph/CST2D"
	"github.com/notargets/gomorph/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMorphParameters(t *testing.T) {
	fileInput := []byte(`
Title: Avian wing
Direction: backwards
ParentUpper: [0.2399, 0.3447, 0.1813, 0.3537, 0.2441, 0.2572]
ParentLower: [0.1889, -0.2469, 0.0776, -0.5478, -0.0047, -0.2399]
TrailingEdgeGap: 0.
SparStations: [0.2, 0.3, 0.5, 0.7, 0.9]
ChildUpper: [0.25, 0.25, 0.25, 0.25, 0.25]
MaxIterations: 200
Strains: true
Sweep:
  - [0.2, 0.3, 0.5, 0.7, 0.9]
  - [0.1, 0.3, 0.5, 0.6, 0.8]
`)
	var input MorphParameters
	require.NoError(t, input.Parse(fileInput))
	input.Print()
	assert.Equal(t, "Avian wing", input.Title)
	assert.Equal(t, 0.3537, input.ParentUpper[3])
	assert.Equal(t, -0.5478, input.ParentLower[3])
	assert.Len(t, input.Sweep, 2)
	assert.True(t, input.Strains)

	dir, err := input.MorphingDirection()
	require.NoError(t, err)
	assert.Equal(t, types.Backwards, dir)

	s := input.Solver()
	assert.Equal(t, 200, s.MaxIterations)
	assert.Greater(t, s.Tolerance, 0.)

	parent, err := input.Parent()
	require.NoError(t, err)
	assert.Equal(t, 1., parent.Chord)
	assert.Equal(t, 5, parent.Order())

	cases, err := input.Cases()
	require.NoError(t, err)
	require.Len(t, cases, 2)
	assert.Equal(t, 0.1, cases[1].Spars[0])
	assert.Equal(t, input.ChildUpper, cases[0].FreeUpper)

	input.Inverted = true
	mirrored, err := input.Parent()
	require.NoError(t, err)
	assert.Equal(t, parent.Lower.All(), mirrored.Upper.All())

	input.Sweep = nil
	cases, err = input.Cases()
	require.NoError(t, err)
	require.Len(t, cases, 1)
	assert.Equal(t, input.SparStations, cases[0].Spars)

	input.Direction = "sideways"
	_, err = input.Cases()
	assert.True(t, errors.Is(err, types.ErrInvalidDomain))
}

func TestTracingParameters(t *testing.T) {
	fileInput := []byte(`
Title: Beam
TipX: 1.
TipY: 0.5
PointsX: [0.25]
PointsY: [0.7]
N1: 1
N2: 1
`)
	var input TracingParameters
	require.NoError(t, input.Parse(fileInput))
	input.Print()
	assert.Equal(t, CST2D.Class{N1: 1, N2: 1}, input.Class())
	A, err := input.Trace()
	require.NoError(t, err)
	require.Len(t, A, 2)
	assert.Equal(t, -2., A[0])
	s := CST2D.CST([]float64{0.7}, 0.5, [2]float64{1, 0}, A, nil, input.Class())
	assert.InDelta(t, 0.25, s.Upper[0], 1.e-6)

	input.N1, input.N2 = 0, 0
	assert.Equal(t, CST2D.Airfoil, input.Class())
	input.TipY = 0
	_, err = input.Trace()
	assert.True(t, errors.Is(err, types.ErrInvalidDomain))
}
