package utils

import (
	"math"

	"gonum.org/v1/gonum/stat/combin"
)

func POW(x float64, pp int) (y float64) {
	var (
		p       = pp
		flipped bool
	)
	if pp > 8 || pp < -8 {
		goto MATHPOW
	}

	if p < 0 {
		p = -pp
		flipped = true
	}
	switch p {
	case 0:
		y = 1
	case 1:
		y = x
	case 2:
		y = x * x
	case 3:
		y = x * x * x
	case 4:
		y = x * x
		y = y * y
	case 5:
		y = x * x
		y = y * y * x
	case 6:
		y = x * x
		y = y * y * y
	case 7:
		y = x * x
		y = y * y * y * x
	case 8:
		y = x * x
		y = y * y * y * y
	}
	if flipped {
		y = 1. / y
	}
	return

MATHPOW:
	y = math.Pow(x, float64(p))
	return
}

// Bernstein evaluates the Bernstein basis polynomial K(n,r) x^r (1-x)^(n-r)
func Bernstein(r, n int, x float64) float64 {
	if r < 0 || r > n {
		return 0
	}
	return float64(combin.Binomial(n, r)) * POW(x, r) * POW(1-x, n-r)
}

// DBernstein is d/dx of Bernstein(r, n, x), using the degree elevation identity
// n*(B(r-1,n-1) - B(r,n-1))
func DBernstein(r, n int, x float64) float64 {
	if n == 0 {
		return 0
	}
	return float64(n) * (Bernstein(r-1, n-1, x) - Bernstein(r, n-1, x))
}
