package polyhedron

import "github.com/loopmodels/polyhedral/matrix"

// SubstituteEquality eliminates variable i using the equality row
// that involves it with the fewest non-zero entries (cheapest
// substitution), rewriting every other row of A and E to no longer
// depend on i. Inequality rows are rescaled by the sign of the pivot
// coefficient so their <= direction is preserved (grounded on
// spec.md §4.6's "sign discipline preserved for inequalities"); the
// chosen equality row itself is dropped, since it is now implied by
// substitution. Reports ok=false if i does not appear in any equality
// row.
func (p *Polyhedron) SubstituteEquality(i int) (out *Polyhedron, ok bool) {
	pivotRow := -1
	bestNNZ := -1
	rE := p.NumEqualities()
	for r := 0; r < rE; r++ {
		if p.e.At(r, i) == 0 {
			continue
		}
		nnz := nonZeroCount(p.e.Row(r))
		if pivotRow == -1 || nnz < bestNNZ {
			pivotRow, bestNNZ = r, nnz
		}
	}
	if pivotRow == -1 {
		return p, false
	}

	pivot := p.e.Row(pivotRow)
	pivotB := p.q.At(pivotRow)
	pv := pivot.At(i)
	n := p.numVars

	newE, newQ := eliminateEqualityAgainst(p.e, p.q, pivotRow, pivot, pivotB, i, n)
	newA, newB := eliminateInequalityAgainst(p.a, p.b, pivot, pivotB, pv, i, n)

	out = &Polyhedron{a: newA, b: newB, e: newE, q: newQ, numVars: n, state: Dirty}
	out.dropEmptyConstraints()
	return out, true
}

func nonZeroCount(v matrix.Vector) int {
	c := 0
	for i := 0; i < v.Len(); i++ {
		if v.At(i) != 0 {
			c++
		}
	}
	return c
}

// eliminateEqualityAgainst rewrites every row of E (and its rhs q)
// other than skipRow to eliminate column i using pivot/pivotB:
// row := pv*row - row[i]*pivot, rhs := pv*rhs - row[i]*pivotB. Unlike
// the inequality path, the combined row is only gcd-reduced when the
// gcd divides the rhs exactly — an equality's constant can never be
// floor-tightened the way an inequality's can, since that would
// change its solution set rather than merely restate it.
func eliminateEqualityAgainst(m *matrix.Dense, rhs matrix.Vector, skipRow int, pivot matrix.Vector, pivotB int64, i, n int) (*matrix.Dense, matrix.Vector) {
	rows, _ := m.Dims()
	pv := pivot.At(i)
	var outRows [][]int64
	var outRhs []int64
	for r := 0; r < rows; r++ {
		if r == skipRow {
			continue
		}
		row := m.Row(r)
		c := row.At(i)
		if c == 0 {
			outRows = append(outRows, rowSlice(m, r))
			outRhs = append(outRhs, rhs.At(r))
			continue
		}
		newRow := make([]int64, n)
		for k := 0; k < n; k++ {
			newRow[k] = pv*row.At(k) - c*pivot.At(k)
		}
		newRhs := pv*rhs.At(r) - c*pivotB
		newRow, newRhs = reduceEqualityRow(newRow, newRhs)
		outRows = append(outRows, newRow)
		outRhs = append(outRhs, newRhs)
	}
	return matrix.NewDense(len(outRows), n, flatten(outRows)), matrix.NewVector(len(outRhs), 1, outRhs)
}

func reduceEqualityRow(row []int64, rhs int64) ([]int64, int64) {
	v := matrix.NewVector(len(row), 1, append([]int64(nil), row...))
	g := v.GCD()
	if g <= 1 {
		return row, rhs
	}
	if rhs%g != 0 {
		return row, rhs // leave unreduced; dividing would change the solution set
	}
	for k := range row {
		row[k] /= g
	}
	return row, rhs / g
}

// eliminateInequalityAgainst rewrites every row of A (with bound b) to
// eliminate column i using the equality pivot/pivotB, rescaling by
// sign(pv) so the <= direction is never flipped by a negative pivot.
func eliminateInequalityAgainst(a *matrix.Dense, b matrix.Vector, pivot matrix.Vector, pivotB, pv int64, i, n int) (*matrix.Dense, matrix.Vector) {
	if a == nil {
		return a, b
	}
	rows, _ := a.Dims()
	var outRows [][]int64
	var outB []int64
	sign := int64(1)
	if pv < 0 {
		sign = -1
	}
	for r := 0; r < rows; r++ {
		row := a.Row(r)
		c := row.At(i)
		if c == 0 {
			outRows = append(outRows, rowSlice(a, r))
			outB = append(outB, b.At(r))
			continue
		}
		newRow := make([]int64, n)
		for k := 0; k < n; k++ {
			newRow[k] = sign*pv*row.At(k) - sign*c*pivot.At(k)
		}
		newB := sign*pv*b.At(r) - sign*c*pivotB
		newRow, newB = reduceRowAndBound(newRow, newB)
		outRows = append(outRows, newRow)
		outB = append(outB, newB)
	}
	return matrix.NewDense(len(outRows), n, flatten(outRows)), matrix.NewVector(len(outB), 1, outB)
}
