package normalform

import "github.com/loopmodels/polyhedral/matrix"

// Unimodularize extends a, whose rows must be linearly independent,
// into a square unimodular matrix whose first rows equal a. Identity
// rows are appended for the dimensions a does not already span, the
// Hermite normal form of the result is computed, and unimodularity is
// confirmed by checking that H reduced to the identity (every
// diagonal entry is 1 and every off-diagonal entry, already bounded
// below the diagonal by HNF, is therefore 0). On success the inverse
// of the accumulated row-operation matrix is returned; ok is false if
// a's rows turn out not to be independent (H never reaches identity).
func Unimodularize(a *matrix.Dense) (*matrix.Dense, bool) {
	rows, cols := a.Dims()
	if rows > cols {
		return nil, false
	}
	aug := matrix.NewDense(cols, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			aug.Set(i, j, a.At(i, j))
		}
	}
	for i := rows; i < cols; i++ {
		aug.Set(i, i, 1)
	}

	res, ok := HNF(aug)
	if !ok || !isIdentity(res.H) {
		return nil, false
	}
	return InverseUnimodular(res.U)
}

// InverseUnimodular returns the inverse of a unimodular integer matrix
// u by running it back through HNF: since u has determinant +-1, its
// own Hermite normal form must be the identity, and the accumulated
// row-operation matrix produced along the way is exactly u's inverse.
// ok is false if u turns out not to be unimodular.
func InverseUnimodular(u *matrix.Dense) (*matrix.Dense, bool) {
	res, ok := HNF(u)
	if !ok || !isIdentity(res.H) {
		return nil, false
	}
	return res.U, true
}

func isIdentity(m *matrix.Dense) bool {
	rows, cols := m.Dims()
	if rows != cols {
		return false
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			want := int64(0)
			if i == j {
				want = 1
			}
			if m.At(i, j) != want {
				return false
			}
		}
	}
	return true
}
