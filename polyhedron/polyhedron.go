// Package polyhedron represents affine integer polyhedra — the set
// {x : A·x <= b, E·x = q} — together with the destructive reductions
// the dependence kernel drives them through: Fourier-Motzkin
// elimination, equality substitution, and comparator-backed bound
// pruning (spec §4.6).
package polyhedron

import (
	"github.com/loopmodels/polyhedral/comparator"
	"github.com/loopmodels/polyhedral/matrix"
	"github.com/loopmodels/polyhedral/simplex"
)

// State tracks how far a Polyhedron's destructive reduction pipeline
// has run. Any mutation resets it to Dirty; read-only queries that
// need a fully reduced representation (bound pruning, equality
// substitution) lazily re-run whatever stage is missing.
type State int

const (
	Dirty State = iota
	Simplified
	Pruned
)

// Polyhedron owns its constraint matrices; every transformation below
// either mutates it in place or returns a fresh Polyhedron, matching
// the "copy is deep" lifecycle spec.md §3 describes.
type Polyhedron struct {
	a *matrix.Dense // R_A x numVars, rows of A·x <= b
	b matrix.Vector
	e *matrix.Dense // R_E x numVars, rows of E·x = q
	q matrix.Vector

	numVars int
	state   State
}

// New builds a Polyhedron from {A·x <= b} with no equality
// constraints.
func New(a *matrix.Dense, b matrix.Vector) *Polyhedron {
	_, n := a.Dims()
	p := &Polyhedron{a: a, b: b, numVars: n, state: Dirty}
	p.dropEmptyConstraints()
	return p
}

// NewWithEqualities builds a Polyhedron from {A·x <= b, E·x = q}.
func NewWithEqualities(a *matrix.Dense, b matrix.Vector, e *matrix.Dense, q matrix.Vector) *Polyhedron {
	p := New(a, b)
	p.e, p.q = e, q
	p.dropEmptyConstraints()
	return p
}

// NumVars returns the number of columns shared by A and E.
func (p *Polyhedron) NumVars() int { return p.numVars }

// NumInequalities returns the current row count of A.
func (p *Polyhedron) NumInequalities() int {
	if p.a == nil {
		return 0
	}
	r, _ := p.a.Dims()
	return r
}

// NumEqualities returns the current row count of E.
func (p *Polyhedron) NumEqualities() int {
	if p.e == nil {
		return 0
	}
	r, _ := p.e.Dims()
	return r
}

// A, B, E, Q expose the raw constraint data for callers (e.g. the
// dependence kernel) building a comparator or simplex tableau directly
// from this polyhedron's rows.
func (p *Polyhedron) A() *matrix.Dense  { return p.a }
func (p *Polyhedron) B() matrix.Vector  { return p.b }
func (p *Polyhedron) E() *matrix.Dense  { return p.e }
func (p *Polyhedron) Q() matrix.Vector  { return p.q }

// Comparator builds a comparator.Comparator whose cone is, over the
// layout [literal-constant, var_0, ..., var_{n-1}], exactly this
// polyhedron's affine feasible region: A·x<=b rewritten as the
// non-negative row [b_r, -A_r] (b_r - A_r·x >= 0), plus the row
// [1, 0, ..., 0] stating that the literal constant is non-negative,
// and E·x=q rewritten as the equality row [q_r, -E_r]. Used by
// callers needing ad hoc implication queries against this
// polyhedron's constraints.
func (p *Polyhedron) Comparator() *comparator.Comparator {
	var rows [][]int64
	for r := 0; r < p.NumInequalities(); r++ {
		rows = append(rows, affineRowSlice(p.a, p.b, r))
	}
	rows = append(rows, constantRow(p.numVars))
	a := matrix.NewDense(len(rows), p.numVars+1, flatten(rows))
	if p.e == nil {
		return comparator.New(a)
	}
	return comparator.NewWithEqualities(a, affineRows(p.e, p.q))
}

// constantRow returns the affine row [1, 0, ..., 0] over n variables,
// the constraint 1 >= 0 on the literal-constant coordinate.
func constantRow(n int) []int64 {
	row := make([]int64, n+1)
	row[0] = 1
	return row
}

// affineRows builds the [rhs, -coeffs] layout a comparator cone
// expects from a (rows, rhs) constraint pair.
func affineRows(m *matrix.Dense, rhs matrix.Vector) *matrix.Dense {
	if m == nil {
		return matrix.NewDense(0, 1, nil)
	}
	rows, cols := m.Dims()
	out := matrix.NewDense(rows, cols+1, nil)
	for r := 0; r < rows; r++ {
		out.Set(r, 0, rhs.At(r))
		for c := 0; c < cols; c++ {
			out.Set(r, c+1, -m.At(r, c))
		}
	}
	return out
}

// IsEmpty reports whether the polyhedron's feasible region is empty,
// by splitting every free variable x into a difference of two
// non-negative variables (xp - xn) and testing the resulting system
// for simplex feasibility — avoiding the need for a dedicated
// free-variable LP solver.
func (p *Polyhedron) IsEmpty() bool {
	n := p.numVars
	rA := p.NumInequalities()
	rE := p.NumEqualities()
	rows := rA + 2*rE
	if rows == 0 {
		return false
	}
	aug := matrix.NewDense(rows, 2*n, nil)
	bData := make([]int64, rows)
	for i := 0; i < rA; i++ {
		for j := 0; j < n; j++ {
			v := p.a.At(i, j)
			aug.Set(i, j, v)
			aug.Set(i, n+j, -v)
		}
		bData[i] = p.b.At(i)
	}
	for i := 0; i < rE; i++ {
		for j := 0; j < n; j++ {
			v := p.e.At(i, j)
			aug.Set(rA+2*i, j, v)
			aug.Set(rA+2*i, n+j, -v)
			aug.Set(rA+2*i+1, j, -v)
			aug.Set(rA+2*i+1, n+j, v)
		}
		bData[rA+2*i] = p.q.At(i)
		bData[rA+2*i+1] = -p.q.At(i)
	}
	b := matrix.NewVector(rows, 1, bData)
	return !simplex.NewFromInequalities(aug, b).Feasible()
}

// dropEmptyConstraints removes any all-zero row of A whose bound is
// non-negative (trivially true, 0<=b) and any all-zero row of E whose
// right-hand side is zero (0=0). An all-zero row that cannot hold
// (0<=b with b<0, or 0=q with q!=0) is kept, so IsEmpty reports the
// polyhedron empty.
func (p *Polyhedron) dropEmptyConstraints() {
	if p.a != nil {
		p.a, p.b = dropZeroRows(p.a, p.b, false)
	}
	if p.e != nil {
		p.e, p.q = dropZeroRows(p.e, p.q, true)
	}
}

func dropZeroRows(m *matrix.Dense, rhs matrix.Vector, equality bool) (*matrix.Dense, matrix.Vector) {
	rows, cols := m.Dims()
	var keep []int
	for i := 0; i < rows; i++ {
		unsatisfiable := rhs.At(i) < 0 || (equality && rhs.At(i) != 0)
		if !m.Row(i).IsZero() || unsatisfiable {
			keep = append(keep, i)
		}
	}
	if len(keep) == rows {
		return m, rhs
	}
	out := matrix.NewDense(len(keep), cols, nil)
	outB := make([]int64, len(keep))
	for dst, src := range keep {
		for j := 0; j < cols; j++ {
			out.Set(dst, j, m.At(src, j))
		}
		outB[dst] = rhs.At(src)
	}
	return out, matrix.NewVector(len(keep), 1, outB)
}

