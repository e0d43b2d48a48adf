package normalform

import (
	"testing"

	"github.com/loopmodels/polyhedral/matrix"
)

func TestSolveDiophantineSolvable(t *testing.T) {
	a := matrix.MustParse("[2 3]")
	b := matrix.NewVector(1, 1, []int64{7}) // 2x+3y=7, e.g. x=2,y=1
	x, ok := SolveDiophantine(a, b)
	if !ok {
		t.Fatalf("expected 2x+3y=7 to be solvable")
	}
	got := a.At(0, 0)*x.At(0) + a.At(0, 1)*x.At(1)
	if got != 7 {
		t.Errorf("a*x = %d, want 7", got)
	}
}

func TestSolveDiophantineUnsolvable(t *testing.T) {
	a := matrix.MustParse("[2 4]")
	b := matrix.NewVector(1, 1, []int64{5}) // gcd(2,4)=2 does not divide 5
	_, ok := SolveDiophantine(a, b)
	if ok {
		t.Errorf("expected 2x+4y=5 to be unsolvable")
	}
}
