package cmd

import (
	"context"
	"errors"
	"testing"

	"github.com/notargets/gomorph/InputParameters"
	"github.com/notargets/gomorph/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var caseInput = []byte(`
Title: Avian wing
ParentUpper: [0.2399, 0.3447, 0.1813, 0.3537, 0.2441, 0.2572]
ParentLower: [0.1889, -0.2469, 0.0776, -0.5478, -0.0047, -0.2399]
SparStations: [0.2, 0.3, 0.5, 0.7, 0.9]
ChildUpper: [0.25, 0.25, 0.25, 0.25, 0.25]
Sweep:
  - [0.2, 0.3, 0.5, 0.7, 0.9]
  - [0.3, 0.2, 0.5, 0.7, 0.9]
`)

func TestRunMorph(t *testing.T) {
	var mp InputParameters.MorphParameters
	require.NoError(t, mp.Parse(caseInput))
	assert.NoError(t, RunMorph(&ModelMorph{Strains: true, Verbose: true, Points: 5}, &mp))

	mp.Inverted = true
	mp.ChildUpper = []float64{-0.24, 0.08, -0.53, -0.01, -0.23}
	assert.NoError(t, RunMorph(&ModelMorph{}, &mp))

	mp.SparStations = []float64{0.2, 0.3}
	err := RunMorph(&ModelMorph{}, &mp)
	assert.True(t, errors.Is(err, types.ErrDimensionMismatch))
}

func TestRunSweep(t *testing.T) {
	var mp InputParameters.MorphParameters
	require.NoError(t, mp.Parse(caseInput))
	assert.NoError(t, RunSweep(context.Background(), &mp, 2))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, RunSweep(ctx, &mp, 2))
}

func TestRunTrace(t *testing.T) {
	tp := &InputParameters.TracingParameters{
		TipX: 1, TipY: 0.5, PointsX: []float64{0.25}, PointsY: []float64{0.7}, N1: 1, N2: 1,
	}
	assert.NoError(t, RunTrace(tp))
	tp.PointsY = nil
	assert.Error(t, RunTrace(tp))
}

func TestReadMorphInput(t *testing.T) {
	_, err := readMorphInput("")
	assert.Error(t, err)
}
