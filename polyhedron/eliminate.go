package polyhedron

import "github.com/loopmodels/polyhedral/matrix"

// EliminateVariable returns a new Polyhedron with variable i projected
// out of the inequality system by Fourier-Motzkin elimination: rows
// are partitioned by the sign of their i-th coefficient into
// lower-bound (negative), upper-bound (positive), and independent
// (zero) rows. Every lower/upper pair combines to a row whose i-th
// coefficient is trivially upperRow[i]*lowerRow[i] - lowerRow[i]*upperRow[i] = 0
// (grounded on original_source/include/Polyhedra.hpp's setBounds,
// which performs exactly this signed combination — "cu*la - cl*ua" in
// its notation), then the row is reduced by the gcd of its
// coefficients, Chvátal-Gomory-tightening the bound by floor division
// when that gcd doesn't evenly divide it (a valid tightening: any
// integer point satisfying the original pair already satisfies the
// floor-divided one). Equalities are left untouched; callers combine
// this with SubstituteEquality when i also appears in E.
func (p *Polyhedron) EliminateVariable(i int) *Polyhedron {
	var lower, upper, independent []int
	rA := p.NumInequalities()
	for r := 0; r < rA; r++ {
		switch c := p.a.At(r, i); {
		case c < 0:
			lower = append(lower, r)
		case c > 0:
			upper = append(upper, r)
		default:
			independent = append(independent, r)
		}
	}

	n := p.numVars
	var rows [][]int64
	var bs []int64
	for _, r := range independent {
		rows = append(rows, rowSlice(p.a, r))
		bs = append(bs, p.b.At(r))
	}
	for _, l := range lower {
		lrow := p.a.Row(l)
		lb := p.b.At(l)
		for _, u := range upper {
			urow := p.a.Row(u)
			ub := p.b.At(u)
			li, ui := lrow.At(i), urow.At(i)
			if independentOfInner(lrow, i) && independentOfInner(urow, i) {
				continue // both sides already constant in every other variable: uninformative
			}
			row := make([]int64, n)
			for k := 0; k < n; k++ {
				row[k] = ui*lrow.At(k) - li*urow.At(k)
			}
			b := ui*lb - li*ub
			row, b = reduceRowAndBound(row, b)
			rows = append(rows, row)
			bs = append(bs, b)
		}
	}

	out := &Polyhedron{numVars: n, e: p.e, q: p.q, state: Dirty}
	out.a = matrix.NewDense(len(rows), n, flatten(rows))
	out.b = matrix.NewVector(len(bs), 1, bs)
	out.dropEmptyConstraints()
	return out
}

// independentOfInner reports whether row has no non-zero entry other
// than (possibly) at column i — i.e. eliminating i from it would
// leave a trivial, variable-free constraint.
func independentOfInner(row matrix.Vector, i int) bool {
	for j := 0; j < row.Len(); j++ {
		if j != i && row.At(j) != 0 {
			return false
		}
	}
	return true
}

func rowSlice(m *matrix.Dense, r int) []int64 {
	_, c := m.Dims()
	out := make([]int64, c)
	for j := 0; j < c; j++ {
		out[j] = m.At(r, j)
	}
	return out
}

func flatten(rows [][]int64) []int64 {
	if len(rows) == 0 {
		return nil
	}
	out := make([]int64, 0, len(rows)*len(rows[0]))
	for _, r := range rows {
		out = append(out, r...)
	}
	return out
}

// reduceRowAndBound divides row and b by the gcd of row's entries,
// floor-dividing b when it isn't a multiple (a valid Chvátal-Gomory
// tightening for integer solutions).
func reduceRowAndBound(row []int64, b int64) ([]int64, int64) {
	v := matrix.NewVector(len(row), 1, append([]int64(nil), row...))
	g := v.GCD()
	if g <= 1 {
		return row, b
	}
	for k := range row {
		row[k] /= g
	}
	return row, floorDiv(b, g)
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
