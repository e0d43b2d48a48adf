package normalform

import "github.com/loopmodels/polyhedral/matrix"

// NullSpace returns a basis (one column per basis vector) for the
// right null space of a: every returned column x satisfies a*x = 0.
// The basis is computed by taking the Hermite normal form of aᵀ: H =
// U*aᵀ. Rows of U paired with an all-zero row of H satisfy U[i,:]*aᵀ =
// 0, i.e. a*U[i,:]ᵀ = 0, so those rows of U (transposed) form the
// null space.
func NullSpace(a *matrix.Dense) *matrix.Dense {
	at := matrix.Transpose(a)
	res, _ := HNF(at)
	h, u := res.H, res.U

	hRows, _ := h.Dims()
	_, uCols := u.Dims()
	var zeroRows []int
	for i := 0; i < hRows; i++ {
		if isZeroRow(h, i) {
			zeroRows = append(zeroRows, i)
		}
	}

	basis := matrix.NewDense(uCols, len(zeroRows), nil)
	for col, i := range zeroRows {
		for k := 0; k < uCols; k++ {
			basis.Set(k, col, u.At(i, k))
		}
	}
	return basis
}

func isZeroRow(m *matrix.Dense, i int) bool {
	_, cols := m.Dims()
	for j := 0; j < cols; j++ {
		if m.At(i, j) != 0 {
			return false
		}
	}
	return true
}
