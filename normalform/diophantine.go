package normalform

import "github.com/loopmodels/polyhedral/matrix"

// SolveDiophantine finds an integer x solving a*x = b, or reports
// ok=false if no integer solution exists. It reduces a to Hermite
// normal form H = U*a, carries b through the same row operations
// (c = U*b), and back-substitutes through H's triangular pivot
// structure; rows of H with no pivot require the matching entry of c
// to vanish, and any pivot row whose accumulated remainder is not
// divisible by its pivot proves infeasibility. Non-pivot columns of x
// are left at 0, giving one particular solution rather than the full
// solution set.
func SolveDiophantine(a *matrix.Dense, b matrix.Vector) (matrix.Vector, bool) {
	m, n := a.Dims()
	res, _ := HNF(a)
	h, u := res.H, res.U
	c := matrix.MulVec(u, b)

	pivotCols := make([]int, m)
	for i := 0; i < m; i++ {
		pivotCols[i] = firstNonzeroCol(h, i)
	}
	for i := 0; i < m; i++ {
		if pivotCols[i] == -1 && c.At(i) != 0 {
			return matrix.Vector{}, false
		}
	}

	x := matrix.NewVector(n, 1, make([]int64, n))
	for i := m - 1; i >= 0; i-- {
		p := pivotCols[i]
		if p == -1 {
			continue
		}
		known := c.At(i)
		for col := p + 1; col < n; col++ {
			if v := h.At(i, col); v != 0 {
				known -= v * x.At(col)
			}
		}
		piv := h.At(i, p)
		if known%piv != 0 {
			return matrix.Vector{}, false
		}
		x.Set(p, known/piv)
	}
	return x, true
}

// firstNonzeroCol returns the column of row i's first nonzero entry,
// or -1 if row i is identically zero.
func firstNonzeroCol(m *matrix.Dense, i int) int {
	_, cols := m.Dims()
	for j := 0; j < cols; j++ {
		if m.At(i, j) != 0 {
			return j
		}
	}
	return -1
}
