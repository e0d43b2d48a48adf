// Package comparator decides implication of affine inequalities over a
// linear, optionally symbolic-constant-extended, variable layout (spec
// §4.5). A Comparator is built once from a cone of known-nonnegative
// rows (and, optionally, a set of known-zero rows) and then answers
// many greaterEqualZero queries against it.
package comparator

import (
	"github.com/loopmodels/polyhedral/matrix"
	"github.com/loopmodels/polyhedral/simplex"
	"github.com/loopmodels/polyhedral/symbolic"
)

// Comparator owns the cone a query is tested against: A's rows are
// known to satisfy row·x >= 0, E's rows are known to satisfy
// row·x = 0. By Farkas' lemma, a query q satisfies q·x >= 0 for every
// x in that cone iff q decomposes as a non-negative combination of A's
// rows plus an arbitrary combination of E's rows — which is exactly
// the feasibility question simplex.Feasible answers once that
// decomposition is phrased as a linear system in the combination
// coefficients. This collapses spec.md's two described query paths
// (a direct column solve when the constraint matrix has full column
// rank, falling back to an auxiliary LP only when it doesn't) into the
// single LP-feasibility test below: the direct solve is just the
// special case where the LP's own phase-one happens to pivot in a
// unique basis, so one always-correct path covers both without ever
// materializing the original's U/V/d normal-form decomposition.
type Comparator struct {
	a, e    *matrix.Dense // may be nil (zero rows)
	numVars int

	poset      *symbolic.POSet
	numSymbols int // symbolic columns, 1..numSymbols, following column 0 (literal constant)
}

// New builds a Comparator from an inequality cone {x : A·x >= 0}.
func New(a *matrix.Dense) *Comparator {
	_, n := a.Dims()
	return &Comparator{a: a, numVars: n}
}

// NewWithEqualities builds a Comparator from a cone additionally
// constrained by equalities {x : A·x >= 0, E·x = 0}.
func NewWithEqualities(a, e *matrix.Dense) *Comparator {
	c := New(a)
	c.e = e
	if e != nil {
		_, n := e.Dims()
		c.numVars = n
	}
	return c
}

// WithSymbols attaches a POSet of known relations between the first
// numSymbols symbolic-constant columns (columns 1..numSymbols; column
// 0 is the literal-constant coordinate), consulted by GreaterEqualZero
// when the linear test alone is inconclusive.
func (c *Comparator) WithSymbols(poset *symbolic.POSet, numSymbols int) *Comparator {
	c.poset = poset
	c.numSymbols = numSymbols
	return c
}

// GreaterEqualZero decides whether q·x >= 0 holds for every x in the
// cone the comparator was built from. A false result means "not
// known" (per spec.md §4.3's knownGreaterEqualZero contract), not
// "known false": the underlying tests are sound but incomplete.
func (c *Comparator) GreaterEqualZero(q matrix.Vector) bool {
	if c.farkasImplies(q) {
		return true
	}
	if c.poset != nil && q.Len() > c.numSymbols && isZeroPastSymbols(q, c.numSymbols) {
		return symbolic.KnownGreaterEqualZero(toPolynomial(q, c.numSymbols), c.poset)
	}
	return false
}

// farkasImplies is the purely linear half of GreaterEqualZero: it
// builds the coefficient system A^T·y + E^T·(zp-zn) = q, y,zp,zn >= 0
// (splitting the free equality multipliers z into a non-negative
// difference, since the simplex package only solves non-negative
// systems) and tests it for feasibility.
func (c *Comparator) farkasImplies(q matrix.Vector) bool {
	rA, rE := 0, 0
	if c.a != nil {
		rA, _ = c.a.Dims()
	}
	if c.e != nil {
		rE, _ = c.e.Dims()
	}
	if rA == 0 && rE == 0 {
		return q.IsZero()
	}

	n := c.numVars
	cols := rA + 2*rE
	m := matrix.NewDense(n, cols, nil)
	for j := 0; j < rA; j++ {
		row := c.a.Row(j)
		for i := 0; i < n; i++ {
			m.Set(i, j, row.At(i))
		}
	}
	for j := 0; j < rE; j++ {
		row := c.e.Row(j)
		for i := 0; i < n; i++ {
			m.Set(i, rA+j, row.At(i))
			m.Set(i, rA+rE+j, -row.At(i))
		}
	}
	b := matrix.NewVector(n, 1, append([]int64(nil), q.Slc()...))
	return simplex.Feasible(m, b)
}

func isZeroPastSymbols(q matrix.Vector, numSymbols int) bool {
	for i := numSymbols + 1; i < q.Len(); i++ {
		if q.At(i) != 0 {
			return false
		}
	}
	return true
}

// toPolynomial reinterprets q's literal-constant and symbolic columns
// (0..numSymbols) as a polynomial linear in the symbol IDs 0..numSymbols-1.
func toPolynomial(q matrix.Vector, numSymbols int) symbolic.Polynomial {
	var terms []symbolic.Term
	if c := q.At(0); c != 0 {
		terms = append(terms, symbolic.Term{Coeff: c, Mono: symbolic.One})
	}
	for i := 1; i <= numSymbols; i++ {
		if c := q.At(i); c != 0 {
			terms = append(terms, symbolic.Term{Coeff: c, Mono: symbolic.NewMonomial(i - 1)})
		}
	}
	return symbolic.NewPolynomial(terms...)
}

func negate(v matrix.Vector) matrix.Vector {
	out := v.Clone()
	matrix.ScaleTo(out, -1, v)
	return out
}

func sub(x, y matrix.Vector) matrix.Vector {
	out := x.Clone()
	matrix.SubTo(out, x, y)
	return out
}

// decrementConst returns v with its literal-constant (column 0) slot
// reduced by one, converting a non-strict difference into the strict
// one: x > y iff (x-y)-1 >= 0 over the integers.
func decrementConst(v matrix.Vector) matrix.Vector {
	out := v.Clone()
	out.Set(0, out.At(0)-1)
	return out
}

// LessEqualZero decides whether q·x <= 0 for every x in the cone.
func (c *Comparator) LessEqualZero(q matrix.Vector) bool {
	return c.GreaterEqualZero(negate(q))
}

// GreaterEqual decides x >= y.
func (c *Comparator) GreaterEqual(x, y matrix.Vector) bool {
	return c.GreaterEqualZero(sub(x, y))
}

// Greater decides x > y.
func (c *Comparator) Greater(x, y matrix.Vector) bool {
	return c.GreaterEqualZero(decrementConst(sub(x, y)))
}

// LessEqual decides x <= y.
func (c *Comparator) LessEqual(x, y matrix.Vector) bool {
	return c.GreaterEqual(y, x)
}

// Less decides x < y.
func (c *Comparator) Less(x, y matrix.Vector) bool {
	return c.Greater(y, x)
}

// Equal decides x == y by testing both orderings.
func (c *Comparator) Equal(x, y matrix.Vector) bool {
	return c.GreaterEqual(x, y) && c.GreaterEqual(y, x)
}
