package CST2D

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	avianUpper = []float64{0.2399, 0.3447, 0.1813, 0.3537, 0.2441, 0.2572}
	avianLower = []float64{0.1889, -0.2469, 0.0776, -0.5478, -0.0047, -0.2399}
)

func TestClassFunction(t *testing.T) {
	assert.Equal(t, 0., Airfoil.C(0))
	assert.Equal(t, 0., Airfoil.C(1))
	assert.InDelta(t, math.Sqrt(0.25)*0.75, Airfoil.C(0.25), 1.e-15)
	h := 1.e-6
	for _, cl := range []Class{Airfoil, {1, 1}, {0.75, 1.5}} {
		for _, psi := range []float64{0.1, 0.4, 0.8} {
			fd := (cl.C(psi+h) - cl.C(psi-h)) / (2 * h)
			assert.InDeltaf(t, fd, cl.DC(psi), 1.e-7, "class %v at %g", cl, psi)
		}
	}
}

func TestShapeAndXi(t *testing.T) {
	{ // A single coefficient is a constant shape function
		assert.InDelta(t, 0.3, Shape([]float64{0.3}, 0.7), 1.e-15)
		assert.Equal(t, 0., DShape([]float64{0.3}, 0.7))
	}
	{ // Equal coefficients sum to a constant by partition of unity
		assert.InDelta(t, 0.25, Shape([]float64{0.25, 0.25, 0.25, 0.25}, 0.33), 1.e-15)
	}
	{ // End values of the shape function are the end coefficients
		assert.InDelta(t, avianUpper[0], Shape(avianUpper, 0), 1.e-15)
		assert.InDelta(t, avianUpper[5], Shape(avianUpper, 1), 1.e-15)
	}
	{ // Derivative against central differences
		h := 1.e-6
		for _, psi := range []float64{0.05, 0.3, 0.6, 0.95} {
			fd := (Xi(psi+h, avianUpper, 0.01, Airfoil) - Xi(psi-h, avianUpper, 0.01, Airfoil)) / (2 * h)
			assert.InDeltaf(t, fd, DXi(psi, avianUpper, 0.01, Airfoil), 1.e-6, "psi = %g", psi)
		}
	}
	{ // Trailing edge height equals the offset
		assert.InDelta(t, 0.01, Xi(1, avianUpper, 0.01, Airfoil), 1.e-15)
	}
}

func TestCST(t *testing.T) {
	{ // Upper and lower surfaces have opposite signs of the shape term
		x := []float64{0, 0.25, 0.5, 1}
		s := CST(x, 1, [2]float64{0, 0}, avianUpper, avianUpper, Airfoil)
		require.Len(t, s.Upper, 4)
		require.Len(t, s.Lower, 4)
		for i := range x {
			assert.InDelta(t, -s.Upper[i], s.Lower[i], 1.e-15)
		}
		assert.InDelta(t, Xi(0.25, avianUpper, 0, Airfoil), s.Upper[1], 1.e-15)
	}
	{ // Dimensional scaling with a chord and trailing edge offsets
		x := []float64{0.5, 2}
		s := CST(x, 2, [2]float64{0.02, 0.04}, avianUpper, avianLower, Airfoil)
		assert.InDelta(t, 2*Airfoil.C(0.25)*Shape(avianUpper, 0.25)+0.25*0.02, s.Upper[0], 1.e-15)
		assert.InDelta(t, 0.02, s.Upper[1], 1.e-15)
		assert.InDelta(t, -0.04, s.Lower[1], 1.e-15)
	}
	{ // Missing coefficient sets give no output
		s := CST([]float64{0.5}, 1, [2]float64{}, avianUpper, nil, Airfoil)
		assert.Nil(t, s.Lower)
		assert.Len(t, s.Upper, 1)
	}
}

func TestCoordinates(t *testing.T) {
	X, Y := Coordinates(1.5, 0.01, avianUpper, avianLower, Airfoil, 50)
	require.Len(t, X, 99)
	require.Len(t, Y, 99)
	// Trailing edge to trailing edge through the leading edge
	assert.InDelta(t, 1.5, X[0], 1.e-15)
	assert.InDelta(t, 0.005, Y[0], 1.e-15)
	assert.Equal(t, 0., X[49])
	assert.Equal(t, 0., Y[49])
	assert.InDelta(t, 1.5, X[98], 1.e-15)
	assert.InDelta(t, -0.005, Y[98], 1.e-15)
	for i := 1; i < 49; i++ {
		assert.Less(t, X[i], X[i-1])
		assert.Greater(t, Y[i], Y[98-i])
	}
}
