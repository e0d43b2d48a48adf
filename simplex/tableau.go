// Package simplex implements an exact-integer tableau simplex method:
// feasibility testing, linear-program optimization, and branch and
// bound for integer solutions, all without floating point or
// fractional intermediates (spec §4.7).
package simplex

import "github.com/loopmodels/polyhedral/matrix"

// Simplex owns a tableau stored as a dense int64 matrix:
//
//	row 0: basic-variable markers — tab(0,j)!=0 iff column j is basic
//	row 1: cost row — reduced-cost numerators, scaled the same way a
//	       constraint row is
//	rows 2..: constraint rows — col 0 the row's basic column index,
//	          col>=1 coefficient numerators
//
// There is no separate denominator column: a row's effective scale is
// always the coefficient its own basic variable carries in column
// colBasic(row), which is the standard invariant a Gauss-Jordan
// tableau pivot preserves (every basic column is a unit column whose
// only nonzero entry is in its own row). Column 1 is a fixed
// pseudo-variable always equal to 1 (the constant term), following
// the rest of the module's convention that column 0 of a constraint
// system is the literal-constant coordinate. Columns after it are, in
// order, the structural variables and then (while a phase-one
// objective is in play) one artificial variable per row.
type Simplex struct {
	tab     *matrix.Dense
	numCons int
	// numStruct is the number of structural (caller-visible) variables;
	// columns [2, 2+numStruct) of the tableau.
	numStruct int
	// artificial is true while column (2+numStruct)..end holds phase-one
	// artificial variables not yet dropped.
	artificial bool
}

const (
	colBasic = 0
	colConst = 1
	rowFlags = 0
	rowCost  = 1
	rowCon0  = 2
)

func newSimplex(cons, structVars, artVars int) *Simplex {
	cols := 2 + structVars + artVars
	tab := matrix.NewDense(cons+2, cols, nil)
	return &Simplex{tab: tab, numCons: cons, numStruct: structVars, artificial: artVars > 0}
}

// numCols returns the total column count of the tableau.
func (s *Simplex) numCols() int { _, c := s.tab.Dims(); return c }

// rowScale returns the coefficient constraint row r's basic variable
// carries in its own column — the implicit denominator every other
// entry in the row is scaled against.
func (s *Simplex) rowScale(r int) int64 {
	return s.tab.At(r, int(s.tab.At(r, colBasic)))
}

// basicValue returns the current value of the basic variable in
// constraint row r, as an exact rational (numerator, denominator):
// value = -tab(r,colConst) / rowScale(r).
func (s *Simplex) basicValue(r int) (num, den int64) {
	den = s.rowScale(r)
	num = -s.tab.At(r, colConst)
	if den < 0 {
		den, num = -den, -num
	}
	return num, den
}

// isIntegral reports whether constraint row r's basic value is an
// integer.
func (s *Simplex) isIntegral(r int) bool {
	num, den := s.basicValue(r)
	return num%den == 0
}

// pivot performs a tableau pivot at (pivotRow, pivotCol): eliminates
// pivotCol from every other row (including the cost row) by cross
// multiplication, keeping all entries exact integers (the pivot row
// itself is left untouched, preserving the invariant that its basic
// column's own entry is whatever scale the row already carries), then
// reduces each touched row by the gcd of its entries and updates the
// basic-variable bookkeeping.
func (s *Simplex) pivot(pivotRow, pivotCol int) {
	cols := s.numCols()
	pv := s.tab.At(pivotRow, pivotCol)
	for r := rowCost; r < s.numCons+2; r++ {
		if r == pivotRow {
			continue
		}
		factor := s.tab.At(r, pivotCol)
		if factor == 0 {
			continue
		}
		for c := colConst; c < cols; c++ {
			s.tab.Set(r, c, s.tab.At(r, c)*pv-s.tab.At(pivotRow, c)*factor)
		}
		reduceRow(s.tab, r, cols, basicScaleCol(s, r))
	}

	oldBasic := int(s.tab.At(pivotRow, colBasic))
	s.tab.Set(rowFlags, oldBasic, 0)
	s.tab.Set(rowFlags, pivotCol, 1)
	s.tab.Set(pivotRow, colBasic, int64(pivotCol))
}

// basicScaleCol returns the column whose sign should be treated as
// canonical when reducing row r: its own basic column for a
// constraint row, or -1 (no canonical sign) for the cost row.
func basicScaleCol(s *Simplex, r int) int {
	if r == rowCost {
		return -1
	}
	return int(s.tab.At(r, colBasic))
}

// reduceRow divides row r's coefficient columns by their shared gcd.
// If scaleCol >= 0, the row is additionally negated as a whole when
// that column's entry is negative, keeping rowScale always positive.
func reduceRow(m *matrix.Dense, r, cols, scaleCol int) {
	var g int64
	for c := colConst; c < cols; c++ {
		v := m.At(r, c)
		if v < 0 {
			v = -v
		}
		g = gcd(g, v)
	}
	if g > 1 {
		for c := colConst; c < cols; c++ {
			m.Set(r, c, m.At(r, c)/g)
		}
	}
	if scaleCol >= 0 && m.At(r, scaleCol) < 0 {
		for c := colConst; c < cols; c++ {
			m.Set(r, c, -m.At(r, c))
		}
	}
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		a = -a
	}
	return a
}
