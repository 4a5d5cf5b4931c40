package morphing

import (
	"github.com/notargets/gomorph/CST2D"
	"github.com/notargets/gomorph/utils"
	"gonum.org/v1/gonum/mat"
)

// bernsteinSystem builds the square matrix of the class weighted basis
// functions C(psi) B(i,n,psi) for i = 1..n, the leading one excluded, with row
// j evaluated at psi[j]. Rows are left weighted by C so that stations where the
// class function vanishes show up in the condition number.
func bernsteinSystem(psi []float64, n int, cl CST2D.Class) (B *mat.Dense) {
	B = mat.NewDense(len(psi), n, nil)
	for j, p := range psi {
		C := cl.C(p)
		for i := 0; i < n; i++ {
			B.Set(j, i, C*utils.Bernstein(i+1, n, p))
		}
	}
	return
}

// carrySpars carries spars that are vertical at the stations spars on the
// upper surface AuA of configuration a onto the upper surface AuB of b, giving
// each the length of its thickness along the carried direction
func carrySpars(spars, thicknesses []float64, AuA, AuB []float64, gap, cA, cB float64) (sg []CST2D.SparGeometry, err error) {
	var (
		dXi = CST2D.DeltaXi(gap, cB)
	)
	sg = make([]CST2D.SparGeometry, len(spars))
	for j, psi := range spars {
		g := &sg[j]
		if g.PsiUpper, err = CST2D.PsiGoal(psi, AuA, AuB, gap, cA, cB); err != nil {
			return nil, err
		}
		g.Direction = CST2D.SparDirectionAt(psi, g.PsiUpper, AuA, AuB, gap, cA, cB)
		g.XiUpper = CST2D.Xi(g.PsiUpper, AuB, dXi, CST2D.Airfoil)
		g.Distance = thicknesses[j]
		g.PsiLower = g.PsiUpper - thicknesses[j]/cB*g.Direction[0]
		g.XiLower = g.XiUpper - thicknesses[j]/cB*g.Direction[1]
	}
	return
}
