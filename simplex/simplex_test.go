package simplex

import (
	"testing"

	"golang.org/x/exp/rand"

	"github.com/loopmodels/polyhedral/matrix"
)

func TestFeasibleSimpleSystem(t *testing.T) {
	a := matrix.MustParse("[1 1]")
	b := matrix.NewVector(1, 1, []int64{4}) // x0+x1=4, x>=0: feasible (e.g. x0=4,x1=0)
	if !Feasible(a, b) {
		t.Errorf("expected x0+x1=4, x>=0 to be feasible")
	}
}

func TestInfeasibleSystem(t *testing.T) {
	a := matrix.MustParse("[1 1]")
	b := matrix.NewVector(1, 1, []int64{-4}) // x0+x1=-4 has no nonnegative solution
	if Feasible(a, b) {
		t.Errorf("expected x0+x1=-4, x>=0 to be infeasible")
	}
}

func TestOptimizeLPTextbookExample(t *testing.T) {
	a := matrix.MustParse("[3 2 1; 2 5 3]")
	b := matrix.NewVector(2, 1, []int64{10, 15})
	s := NewFromInequalities(a, b)
	cost := matrix.NewVector(3, 1, []int64{2, 3, 4})
	num, den, ok := s.Optimize(cost)
	if !ok {
		t.Fatalf("expected the LP to be bounded and feasible")
	}
	if num != 20 || den != 1 {
		t.Errorf("optimum = %d/%d, want 20/1", num, den)
	}
}

// TestOptimizeBoxConstraintsMatchesClosedForm checks Optimize against a
// family of randomly generated box-constrained LPs (x_i <= bound_i,
// x >= 0, maximize a nonnegative cost) whose optimum has an obvious
// closed form: sum(cost_i*bound_i), each variable pinned to its upper
// bound. Cases are drawn from a seeded source so a failure is
// reproducible.
func TestOptimizeBoxConstraintsMatchesClosedForm(t *testing.T) {
	rng := rand.New(rand.NewSource(20240712))
	const vars = 4
	for trial := 0; trial < 50; trial++ {
		bounds := make([]int64, vars)
		cost := make([]int64, vars)
		data := make([]int64, vars*vars)
		var want int64
		for i := 0; i < vars; i++ {
			bounds[i] = 1 + int64(rng.Intn(20))
			cost[i] = int64(rng.Intn(10))
			data[i*vars+i] = 1
			want += bounds[i] * cost[i]
		}
		a := matrix.NewDense(vars, vars, data)
		b := matrix.NewVector(vars, 1, bounds)
		s := NewFromInequalities(a, b)
		num, den, ok := s.Optimize(matrix.NewVector(vars, 1, cost))
		if !ok {
			t.Fatalf("trial %d: expected bounded feasible optimum, bounds=%v cost=%v", trial, bounds, cost)
		}
		if den != 1 || num != want {
			t.Errorf("trial %d: optimum = %d/%d, want %d/1 (bounds=%v cost=%v)", trial, num, den, want, bounds, cost)
		}
	}
}

func TestOptimizeUnbounded(t *testing.T) {
	a := matrix.MustParse("[0 1]") // 0*x0 + x1 <= 5: x0 is unbounded above
	b := matrix.NewVector(1, 1, []int64{5})
	s := NewFromInequalities(a, b)
	cost := matrix.NewVector(2, 1, []int64{1, 0})
	_, _, ok := s.Optimize(cost)
	if ok {
		t.Errorf("expected an unbounded objective to be reported as not ok")
	}
}
