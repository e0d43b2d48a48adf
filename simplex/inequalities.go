package simplex

import "github.com/loopmodels/polyhedral/matrix"

// NewFromInequalities builds a Simplex for {x >= 0 : a*x <= b} by
// introducing one slack variable per row (a*x + slack = b) and
// deferring to PositiveVariables for the underlying equality-with-
// artificials setup. Structural variable indices 0..n-1 (n = cols(a))
// are the caller's original decision variables; n..n+m-1 (m = rows(a))
// are the slacks.
func NewFromInequalities(a *matrix.Dense, b matrix.Vector) *Simplex {
	m, n := a.Dims()
	aug := matrix.NewDense(m, n+m, nil)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			aug.Set(i, j, a.At(i, j))
		}
		aug.Set(i, n+i, 1)
	}
	return PositiveVariables(aug, b)
}
