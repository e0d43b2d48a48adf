package simplex

import (
	"github.com/loopmodels/polyhedral/matrix"
	"github.com/loopmodels/polyhedral/scalar"
)

// PositiveVariables builds a Simplex deciding feasibility of
// {x >= 0 : a*x = b}: every row is first sign-flipped so its
// right-hand side is nonnegative, then given its own artificial
// variable so the all-artificial-basic origin is trivially feasible.
// The returned tableau's phase-one objective (minimize the sum of the
// artificial variables) is already reduced against that basis; call
// Feasible to run it to optimality.
func PositiveVariables(a *matrix.Dense, b matrix.Vector) *Simplex {
	m, n := a.Dims()
	s := newSimplex(m, n, m)
	cols := s.numCols()
	artCol0 := 2 + n

	for i := 0; i < m; i++ {
		r := rowCon0 + i
		sign := int64(1)
		if b.At(i) < 0 {
			sign = -1
		}
		s.tab.Set(r, colConst, -sign*b.At(i))
		for j := 0; j < n; j++ {
			s.tab.Set(r, 2+j, sign*a.At(i, j))
		}
		s.tab.Set(r, artCol0+i, 1)
		s.tab.Set(r, colBasic, int64(artCol0+i))
		s.tab.Set(rowFlags, artCol0+i, 1)
	}

	raw := make([]int64, cols)
	for i := 0; i < m; i++ {
		raw[artCol0+i] = 1
	}
	s.setObjectiveAndReduce(raw)
	return s
}

// setObjectiveAndReduce installs raw (indexed by column) as the cost
// row and then eliminates every currently-basic column from it, so
// the cost row reads true reduced costs with respect to the current
// basis.
func (s *Simplex) setObjectiveAndReduce(raw []int64) {
	cols := s.numCols()
	for c := colConst; c < cols; c++ {
		s.tab.Set(rowCost, c, raw[c])
	}
	for r := rowCon0; r < s.numCons+2; r++ {
		basicCol := int(s.tab.At(r, colBasic))
		factor := s.tab.At(rowCost, basicCol)
		if factor == 0 {
			continue
		}
		pv := s.tab.At(r, basicCol)
		for c := colConst; c < cols; c++ {
			s.tab.Set(rowCost, c, s.tab.At(rowCost, c)*pv-s.tab.At(r, c)*factor)
		}
		reduceRow(s.tab, rowCost, cols, -1)
	}
}

// run drives the tableau to optimality against whatever objective
// currently sits in the cost row, using Bland's rule throughout
// (smallest-index entering and leaving variable) to guarantee
// termination without cycling. unbounded is true if an improving
// column has no positive entry to pivot on.
func (s *Simplex) run() (unbounded bool) {
	cols := s.numCols()
	for {
		enter := -1
		for c := colConst + 1; c < cols; c++ {
			if s.tab.At(rowCost, c) < 0 {
				enter = c
				break
			}
		}
		if enter == -1 {
			return false
		}

		leave := -1
		var bestNum, bestScaledDen int64
		for r := rowCon0; r < s.numCons+2; r++ {
			arc := s.tab.At(r, enter)
			if arc <= 0 {
				continue
			}
			// The row reads scale*x_B + arc*x_enter + const = 0 with
			// scale > 0, so x_enter can rise to vn/arc before x_B hits 0.
			vn, _ := s.basicValue(r)
			scaledDen := arc
			if leave == -1 || vn*bestScaledDen < bestNum*scaledDen ||
				(vn*bestScaledDen == bestNum*scaledDen && int(s.tab.At(r, colBasic)) < int(s.tab.At(leave, colBasic))) {
				leave = r
				bestNum, bestScaledDen = vn, scaledDen
			}
		}
		if leave == -1 {
			return true
		}
		s.pivot(leave, enter)
	}
}

// objective returns the negated constant column of the cost row. The
// cost row holds a positive multiple of the objective (pivots
// cross-multiply it and reduceRow divides it by its gcd, with no scale
// kept), so only whether the value is zero, positive or negative is
// meaningful, not its magnitude; den is always 1.
func (s *Simplex) objective() (num, den int64) {
	return -s.tab.At(rowCost, colConst), 1
}

// Feasible runs the phase-one objective to optimality and reports
// whether the minimum sum of artificial variables is exactly zero,
// i.e. whether {x>=0 : a*x=b} (as built by PositiveVariables) has a
// solution. This replaces the stub the original left unimplemented.
func (s *Simplex) Feasible() bool {
	s.run()
	num, _ := s.objective()
	return num == 0
}

// Feasible is a convenience wrapper building and testing the system
// {x >= 0 : a*x = b} in one call.
func Feasible(a *matrix.Dense, b matrix.Vector) bool {
	return PositiveVariables(a, b).Feasible()
}

// dropArtificials removes every artificial-variable column once phase
// one has certified feasibility, shrinking the tableau to its
// structural columns. Any artificial still basic at this point must
// be basic at value zero (phase one reached optimality with objective
// 0), so simply truncating the columns it lives in is safe: the row
// it's basic in still correctly reads value zero from the remaining
// columns once a structural replacement is pivoted in, or stays a
// harmless degenerate row otherwise.
func (s *Simplex) dropArtificials() {
	if !s.artificial {
		return
	}
	rows, _ := s.tab.Dims()
	newCols := 2 + s.numStruct
	out := matrix.NewDense(rows, newCols, nil)
	for r := 0; r < rows; r++ {
		for c := 0; c < newCols; c++ {
			out.Set(r, c, s.tab.At(r, c))
		}
	}
	s.tab = out
	s.artificial = false
}

// Optimize solves max cᵀx over the feasible region already certified
// by Feasible, where cost has one entry per structural variable.
// ok is false if the region turns out infeasible, the objective is
// unbounded above, or the optimal value overflows int64. On success
// it returns the optimal value as an exact rational (num/den, den>0),
// computed as cᵀx from the optimal vertex's structural values.
func (s *Simplex) Optimize(cost matrix.Vector) (num, den int64, ok bool) {
	if !s.Feasible() {
		return 0, 0, false
	}
	s.dropArtificials()

	cols := s.numCols()
	raw := make([]int64, cols)
	for j := 0; j < s.numStruct && j < cost.Len(); j++ {
		raw[2+j] = -cost.At(j) // minimize -c.x == maximize c.x
	}
	s.setObjectiveAndReduce(raw)
	if unbounded := s.run(); unbounded {
		return 0, 0, false
	}
	total := scalar.RationalFromInt(0)
	for j := 0; j < s.numStruct && j < cost.Len(); j++ {
		vn, vd := s.StructuralValue(j)
		term, ok := scalar.NewRational(vn, vd).SafeMulInt(cost.At(j))
		if !ok {
			return 0, 0, false
		}
		if total, ok = total.SafeAdd(term); !ok {
			return 0, 0, false
		}
	}
	return total.Num, total.Den, true
}

// StructuralValue returns the current value of structural variable j
// (0-indexed) as an exact rational, 0 if j is nonbasic.
func (s *Simplex) StructuralValue(j int) (num, den int64) {
	col := 2 + j
	for r := rowCon0; r < s.numCons+2; r++ {
		if int(s.tab.At(r, colBasic)) == col {
			return s.basicValue(r)
		}
	}
	return 0, 1
}
