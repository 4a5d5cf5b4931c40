package utils

import (
	"gonum.org/v1/gonum/integrate/quad"
)

const (
	LegendreOrder  = 24
	LegendrePanels = 8
)

var legendreR, legendreW = legendreNodes(LegendreOrder)

func legendreNodes(n int) (r, w []float64) {
	r, w = make([]float64, n), make([]float64, n)
	quad.Legendre{}.FixedLocations(r, w, -1, 1)
	return
}

// GaussLegendre integrates f over [a,b] with a composite rule of panels equal
// width panels, each using LegendreOrder nodes. Reversed limits flip the sign.
func GaussLegendre(f func(float64) float64, a, b float64, panels int) (sum float64) {
	if a == b {
		return 0
	}
	if panels < 1 {
		panels = 1
	}
	var (
		h = (b - a) / float64(panels)
	)
	for p := 0; p < panels; p++ {
		var (
			lo  = a + float64(p)*h
			mid = lo + 0.5*h
			acc float64
		)
		for i, r := range legendreR {
			acc += legendreW[i] * f(mid+0.5*h*r)
		}
		sum += 0.5 * h * acc
	}
	return
}
