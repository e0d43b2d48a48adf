// Package normalform implements the exact-integer canonical forms the
// rest of the polyhedral core relies on: Hermite normal form, Bareiss
// fraction-free elimination, null-space extraction, post-elimination
// simplification, and unimodularization. All routines preserve exact
// divisibility and never introduce fractions (spec §4.4).
package normalform

import (
	"github.com/loopmodels/polyhedral/matrix"
	"github.com/loopmodels/polyhedral/scalar"
)

// HNFResult holds a Hermite normal form H = U*A together with the
// unimodular row-operation matrix U that produced it.
type HNFResult struct {
	H *matrix.Dense
	U *matrix.Dense
}

// HNF computes the Hermite normal form of A: H = U*A with U unimodular
// (M x M, M = number of rows of A), H lower-triangular with positive
// pivots: for every row i with pivot column piv(i), H[i,j] = 0 for
// every column j > piv(i), and for every earlier established row r
// (pivot column piv(r) < piv(i)), 0 <= H[i,piv(r)] < H[r,piv(r)]. For
// each pivot column, extended gcd on the pivot entry and every entry
// below it eliminates the sub-diagonal without fractional arithmetic,
// applying the same row combination to U (initialized as the
// identity). Sub-diagonal reduction then clears every earlier row's
// entry at the new column by the same kind of row combination, and
// bounds the new pivot row's entry at each earlier row's own pivot
// column against that row's diagonal. If a column has no nonzero
// candidate at or below the current pivot row, it is skipped (rank
// deficiency) and ok is reported false.
func HNF(a *matrix.Dense) (res HNFResult, ok bool) {
	m, n := a.Dims()
	h := a.Clone()
	u := matrix.Identity(m)

	rankDeficient := false
	pivotRow := 0
	var pivotCols []int
	for col := 0; col < n && pivotRow < m; col++ {
		pivot := -1
		for r := pivotRow; r < m; r++ {
			if h.At(r, col) != 0 {
				pivot = r
				break
			}
		}
		if pivot == -1 {
			rankDeficient = true
			continue
		}
		h.SwapRows(pivotRow, pivot)
		u.SwapRows(pivotRow, pivot)

		for r := pivotRow + 1; r < m; r++ {
			arc := h.At(r, col)
			if arc == 0 {
				continue
			}
			prc := h.At(pivotRow, col)
			g, p, q := scalar.ExtGCD(prc, arc)
			prcr := prc / g
			arcr := arc / g
			combineRows(h, pivotRow, r, p, q, prcr, arcr)
			combineRows(u, pivotRow, r, p, q, prcr, arcr)
		}

		if h.At(pivotRow, col) < 0 {
			negateRow(h, pivotRow)
			negateRow(u, pivotRow)
		}
		reduceSubDiagonal(h, u, pivotRow, col, pivotCols)
		pivotCols = append(pivotCols, col)
		pivotRow++
	}
	return HNFResult{H: h, U: u}, !rankDeficient
}

// combineRows replaces rows j and i (for every column k) with:
//
//	newRow_j[k] = p*row_j[k] + q*row_i[k]
//	newRow_i[k] = pr*row_i[k] - ir*row_j[k]
//
// which zeroes column col's entry in row i, given p,q,pr,ir derived
// from extended gcd of (row_j[col], row_i[col]).
func combineRows(m *matrix.Dense, j, i int, p, q, pr, ir int64) {
	_, c := m.Dims()
	for k := 0; k < c; k++ {
		ajk := m.At(j, k)
		aik := m.At(i, k)
		m.Set(j, k, p*ajk+q*aik)
		m.Set(i, k, pr*aik-ir*ajk)
	}
}

// reduceSubDiagonal brings the newly established row `pivotRow` into
// correct relationship with every previously established pivot row.
// For each earlier row r (pivot column pivotCols[r]), visited most
// recently established first:
//
//   - if row r still has a nonzero entry at the new column `col`, an
//     extended-gcd combination between pivotRow and r (the same kind
//     combineRows performs below the diagonal) clears it to exactly
//     zero, refining pivotRow's own diagonal by their gcd along the
//     way — this is what keeps H[i,j] == 0 for every j past a row's
//     pivot column.
//   - pivotRow's entry at column pivotCols[r] is then bounded into
//     [0, H[r,pivotCols[r])) by subtracting a multiple of row r.
//
// Visiting earlier rows newest-first matters: clearing row r's entry
// can disturb pivotRow's entry at a still-older column (row r itself
// may be nonzero there), so that column must still be ahead of us in
// the loop when it happens.
func reduceSubDiagonal(h, u *matrix.Dense, pivotRow, col int, pivotCols []int) {
	for r := len(pivotCols) - 1; r >= 0; r-- {
		j := pivotCols[r]
		if v := h.At(r, col); v != 0 {
			prc := h.At(pivotRow, col)
			g, p, q := scalar.ExtGCD(prc, v)
			prcr := prc / g
			vr := v / g
			combineRows(h, pivotRow, r, p, q, prcr, vr)
			combineRows(u, pivotRow, r, p, q, prcr, vr)
		}
		if w := h.At(pivotRow, j); w != 0 {
			d := h.At(r, j)
			qf := floorDiv(w, d)
			subRows(h, pivotRow, r, qf)
			subRows(u, pivotRow, r, qf)
		}
	}
}

// subRows sets row_r -= q*row_pivot for every column.
func subRows(m *matrix.Dense, r, pivot int, q int64) {
	_, c := m.Dims()
	for k := 0; k < c; k++ {
		m.Set(r, k, m.At(r, k)-q*m.At(pivot, k))
	}
}

func negateRow(m *matrix.Dense, i int) {
	_, c := m.Dims()
	for k := 0; k < c; k++ {
		m.Set(i, k, -m.At(i, k))
	}
}

// floorDiv returns floor(a/b) for b>0, used so reduced remainders land
// in [0, b).
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
