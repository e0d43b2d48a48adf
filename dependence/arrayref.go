package dependence

import "github.com/loopmodels/polyhedral/matrix"

// ArrayRef is the minimal (loop-nest, index-matrix, offset) tuple
// spec.md's dependence kernel needs: a memory access's subscript
// function is index·i + offset, one row per array dimension, evaluated
// over the enclosing loop nest's iteration vector i. The instruction/IR
// linkage the original ArrayReference.hpp attaches (source operand,
// stride bookkeeping for the underlying memory layout) is out of scope —
// this carrier only has to support the equal-subscript system Check
// builds.
type ArrayRef struct {
	ArrayID int
	Loop    *LoopNest
	Index   *matrix.Dense // numDims x Loop.Depth()
	Offset  matrix.Vector // length numDims
}

// NewArrayRef builds an ArrayRef, panicking (matching the package's
// construction-time shape discipline) if index's column count doesn't
// match the loop nest's depth or offset's length doesn't match index's
// row count.
func NewArrayRef(arrayID int, loop *LoopNest, index *matrix.Dense, offset matrix.Vector) *ArrayRef {
	rows, cols := index.Dims()
	if cols != loop.Depth() {
		panic("dependence: index matrix column count must equal loop nest depth")
	}
	if offset.Len() != rows {
		panic("dependence: offset length must equal index matrix row count")
	}
	return &ArrayRef{ArrayID: arrayID, Loop: loop, Index: index, Offset: offset}
}

// NumDims returns the number of array dimensions (subscript rows).
func (r *ArrayRef) NumDims() int {
	rows, _ := r.Index.Dims()
	return rows
}
