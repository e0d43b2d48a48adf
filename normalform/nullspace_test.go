package normalform

import (
	"testing"

	"github.com/loopmodels/polyhedral/matrix"
)

func TestNullSpaceAnnihilatesA(t *testing.T) {
	a := matrix.MustParse("[1 2 3; 2 4 6]") // rank 1, 2x3
	basis := NullSpace(a)
	_, basisCols := basis.Dims()
	if basisCols != 2 {
		t.Fatalf("expected a 2-dimensional null space for a rank-1 3-column matrix, got %d", basisCols)
	}
	prod := matrix.Mul(a, basis)
	pr, pc := prod.Dims()
	for i := 0; i < pr; i++ {
		for j := 0; j < pc; j++ {
			if prod.At(i, j) != 0 {
				t.Errorf("a*basis[%d,%d] = %d, want 0", i, j, prod.At(i, j))
			}
		}
	}
}

func TestNullSpaceFullRankEmpty(t *testing.T) {
	a := matrix.Identity(3)
	basis := NullSpace(a)
	_, basisCols := basis.Dims()
	if basisCols != 0 {
		t.Errorf("expected an empty null space basis for the identity, got %d columns", basisCols)
	}
}
