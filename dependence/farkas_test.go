package dependence

import (
	"testing"

	"github.com/loopmodels/polyhedral/matrix"
	"github.com/loopmodels/polyhedral/polyhedron"
)

func TestFarkasScheduleGapFeasibleForKnownSchedule(t *testing.T) {
	// D: 0<=i<=9, 0<=i'<=9, i-i'=1. Since i'=i-1 on every point of D,
	// the constant schedule c=0, c0=1 satisfies
	// c*i' - c*i + c0 = 1 >= 1 everywhere on D, so the strict
	// schedule-gap polyhedron must be feasible.
	a := matrix.NewDense(4, 2, []int64{
		-1, 0,
		1, 0,
		0, -1,
		0, 1,
	})
	b := matrix.NewVector(4, 1, []int64{0, 9, 0, 9})
	e := matrix.NewDense(1, 2, []int64{1, -1})
	q := matrix.NewVector(1, 1, []int64{1})
	d := Dependence{
		Polyhedron: polyhedron.NewWithEqualities(a, b, e, q),
		Depth:      0,
		Forward:    false,
		SrcDepth:   1,
		TgtDepth:   1,
	}

	gap := FarkasScheduleGap(d, 1, true)
	if gap.IsEmpty() {
		t.Errorf("expected a feasible schedule-gap polyhedron for a dependence with constant gap 1")
	}
	if gap.NumVars() != 1+1+4+1 {
		t.Errorf("expected NumVars = depth(1)+c0(1)+rA(4)+rE(1) = 7, got %d", gap.NumVars())
	}
}

func TestFarkasScheduleGapNonStrictAlsoFeasible(t *testing.T) {
	a := matrix.NewDense(4, 2, []int64{
		-1, 0,
		1, 0,
		0, -1,
		0, 1,
	})
	b := matrix.NewVector(4, 1, []int64{0, 9, 0, 9})
	e := matrix.NewDense(1, 2, []int64{1, -1})
	q := matrix.NewVector(1, 1, []int64{1})
	d := Dependence{
		Polyhedron: polyhedron.NewWithEqualities(a, b, e, q),
		Depth:      0,
		Forward:    false,
		SrcDepth:   1,
		TgtDepth:   1,
	}

	gap := FarkasScheduleGap(d, 1, false)
	if gap.IsEmpty() {
		t.Errorf("expected the weaker non-strict schedule-gap polyhedron to remain feasible")
	}
}
