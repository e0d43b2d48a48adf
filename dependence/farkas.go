package dependence

import (
	"github.com/loopmodels/polyhedral/matrix"
	"github.com/loopmodels/polyhedral/polyhedron"
)

// FarkasScheduleGap dualizes a Dependence's polyhedron via Farkas'
// lemma into a polyhedron over schedule coefficients, feasible iff
// there exists an assignment of a depth-dimensional schedule
// coefficient vector c (applied identically to both the source and
// target iteration vectors, i.e. a single shared affine schedule
// φ(x)=c·x) and constant c0 making
//
//	φ(i') - φ(i) + c0 >= strictBound
//
// for every (i,i') satisfying d.Polyhedron, where strictBound is 1 if
// strict else 0. The dualization: that affine form must equal a
// non-negative combination of d.Polyhedron's inequality rows (duals y
// >= 0) plus an unrestricted combination of its equality rows (duals
// z), matched coefficient-by-coefficient in the stacked (i,i')
// variables; the returned polyhedron's own variables are, in order,
// [c_0..c_{depth-1}, c0, y_0..y_{rA-1}, z_0..z_{rE-1}].
func FarkasScheduleGap(d Dependence, depth int, strict bool) *polyhedron.Polyhedron {
	n1 := d.SrcDepth
	totalX := d.SrcDepth + d.TgtDepth
	a, b := d.Polyhedron.A(), d.Polyhedron.B()
	e, q := d.Polyhedron.E(), d.Polyhedron.Q()
	rA := rowsOf(a)
	rE := rowsOf(e)

	cOf := func(k int) int { return k }
	c0Var := depth
	yOf := func(r int) int { return depth + 1 + r }
	zOf := func(r int) int { return depth + 1 + rA + r }
	total := depth + 1 + rA + rE

	var eqRows []int64
	var eqRhs []int64

	for j := 0; j < totalX; j++ {
		row := make([]int64, total)
		if j < depth {
			row[cOf(j)] += -1
		}
		if j >= n1 && j-n1 < depth {
			row[cOf(j-n1)] += 1
		}
		for r := 0; r < rA; r++ {
			if v := a.At(r, j); v != 0 {
				row[yOf(r)] += v
			}
		}
		for r := 0; r < rE; r++ {
			if v := e.At(r, j); v != 0 {
				row[zOf(r)] += v
			}
		}
		eqRows = append(eqRows, row...)
		eqRhs = append(eqRhs, 0)
	}

	constRow := make([]int64, total)
	constRow[c0Var] = 1
	for r := 0; r < rA; r++ {
		constRow[yOf(r)] -= b.At(r)
	}
	for r := 0; r < rE; r++ {
		constRow[zOf(r)] -= q.At(r)
	}
	strictBound := int64(0)
	if strict {
		strictBound = 1
	}
	eqRows = append(eqRows, constRow...)
	eqRhs = append(eqRhs, strictBound)

	var ineqRows []int64
	var ineqRhs []int64
	for r := 0; r < rA; r++ {
		row := make([]int64, total)
		row[yOf(r)] = -1
		ineqRows = append(ineqRows, row...)
		ineqRhs = append(ineqRhs, 0)
	}

	aOut := matrix.NewDense(len(ineqRhs), total, ineqRows)
	bOut := matrix.NewVector(len(ineqRhs), 1, ineqRhs)
	eOut := matrix.NewDense(len(eqRhs), total, eqRows)
	qOut := matrix.NewVector(len(eqRhs), 1, eqRhs)
	return polyhedron.NewWithEqualities(aOut, bOut, eOut, qOut)
}

func rowsOf(m *matrix.Dense) int {
	if m == nil {
		return 0
	}
	r, _ := m.Dims()
	return r
}
