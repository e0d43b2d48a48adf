package dependence

import (
	"github.com/loopmodels/polyhedral/matrix"
	"github.com/loopmodels/polyhedral/polyhedron"
)

// Dependence records one feasible (depth, direction) dependence
// relation found by Check between a source and target access sharing
// an array: the polyhedron of iteration-vector pairs satisfying it,
// the depth up to which lexicographic equality was required, a
// forward/backward direction flag, and the two accesses' loop depths
// (needed to split the combined variable block back into i and i' when
// building a schedule-gap polyhedron).
type Dependence struct {
	Polyhedron *polyhedron.Polyhedron
	Depth      int
	Forward    bool
	SrcDepth   int
	TgtDepth   int
}

// Check finds every dependence relation between two array references
// sharing an array: for each candidate depth d (0 up to the shorter of
// the two loop depths) and each direction, it assembles a polyhedron
// over the stacked iteration vector (i, i') combining both loop nests'
// bounds, the subscript-equality system (src.Index·i+src.Offset =
// tgt.Index·i'+tgt.Offset), equality of i[0..d-1] with i'[0..d-1], and
// the strict order i[d] < i'[d] (forward) or i[d] > i'[d] (backward).
// Each depth/direction combination whose polyhedron is non-empty
// yields one Dependence, appended to the returned slice in depth order
// (spec §4.8: "repeated checks discover all relevant depth/direction
// combinations").
func Check(src, tgt *ArrayRef) []Dependence {
	if src.ArrayID != tgt.ArrayID || src.NumDims() != tgt.NumDims() {
		return nil
	}
	n1, n2 := src.Loop.Depth(), tgt.Loop.Depth()
	total := n1 + n2

	boundRows, boundRhs := combinedBounds(src.Loop, tgt.Loop, n1, total)
	subRows, subRhs := subscriptEqualities(src, tgt, n1, total)

	depthLimit := n1
	if n2 < depthLimit {
		depthLimit = n2
	}

	var found []Dependence
	for d := 0; d < depthLimit; d++ {
		lexRows, lexRhs := lexPrefixEqualities(d, n1, total)
		eqRows := append(append([]int64{}, subRows...), lexRows...)
		eqRhs := append(append([]int64{}, subRhs...), lexRhs...)

		for _, forward := range [...]bool{true, false} {
			strictRow, strictRhs := orderRow(d, n1, total, forward)
			aRows := append(append([]int64{}, boundRows...), strictRow...)
			aRhs := append(append([]int64{}, boundRhs...), strictRhs)

			a := matrix.NewDense(len(aRhs), total, aRows)
			b := matrix.NewVector(len(aRhs), 1, aRhs)
			e := matrix.NewDense(len(eqRhs), total, eqRows)
			q := matrix.NewVector(len(eqRhs), 1, eqRhs)

			p := polyhedron.NewWithEqualities(a, b, e, q)
			if p.IsEmpty() {
				continue
			}
			found = append(found, Dependence{
				Polyhedron: p,
				Depth:      d,
				Forward:    forward,
				SrcDepth:   n1,
				TgtDepth:   n2,
			})
		}
	}
	return found
}

// combinedBounds stacks src's and tgt's loop-nest inequalities into one
// flat row system over the total-width variable block, src's rows
// occupying columns [0,n1) and tgt's occupying [n1,total).
func combinedBounds(src, tgt *LoopNest, n1, total int) (rows []int64, rhs []int64) {
	srcRows, srcRhs := embed(src.Space().A(), src.Space().B(), 0, total)
	tgtRows, tgtRhs := embed(tgt.Space().A(), tgt.Space().B(), n1, total)
	return append(srcRows, tgtRows...), append(srcRhs, tgtRhs...)
}

// subscriptEqualities builds, for each array dimension, the equality
// row src.Index[dim]·i − tgt.Index[dim]·i' = tgt.Offset[dim] −
// src.Offset[dim] (i.e. src.Index·i + src.Offset = tgt.Index·i' +
// tgt.Offset).
func subscriptEqualities(src, tgt *ArrayRef, n1, total int) (rows []int64, rhs []int64) {
	dims := src.NumDims()
	rows = make([]int64, 0, dims*total)
	rhs = make([]int64, 0, dims)
	for d := 0; d < dims; d++ {
		row := make([]int64, total)
		srcRow := src.Index.Row(d)
		tgtRow := tgt.Index.Row(d)
		for k := 0; k < n1; k++ {
			row[k] = srcRow.At(k)
		}
		for k := 0; k < tgt.Loop.Depth(); k++ {
			row[n1+k] = -tgtRow.At(k)
		}
		rows = append(rows, row...)
		rhs = append(rhs, tgt.Offset.At(d)-src.Offset.At(d))
	}
	return rows, rhs
}

// lexPrefixEqualities builds the equality rows i[k] = i'[k] for k < d.
func lexPrefixEqualities(d, n1, total int) (rows []int64, rhs []int64) {
	rows = make([]int64, 0, d*total)
	rhs = make([]int64, 0, d)
	for k := 0; k < d; k++ {
		row := make([]int64, total)
		row[k] = 1
		row[n1+k] = -1
		rows = append(rows, row...)
		rhs = append(rhs, 0)
	}
	return rows, rhs
}

// orderRow builds the single strict-order inequality row at depth d:
// i[d] - i'[d] <= -1 (forward, i.e. i[d] < i'[d]) or i'[d] - i[d] <= -1
// (backward, i.e. i[d] > i'[d]).
func orderRow(d, n1, total int, forward bool) (row []int64, rhs int64) {
	row = make([]int64, total)
	if forward {
		row[d] = 1
		row[n1+d] = -1
	} else {
		row[d] = -1
		row[n1+d] = 1
	}
	return row, -1
}

func embed(m *matrix.Dense, rhs matrix.Vector, shift, total int) (rows []int64, rhsOut []int64) {
	r, cols := m.Dims()
	rows = make([]int64, 0, r*total)
	rhsOut = make([]int64, r)
	for i := 0; i < r; i++ {
		row := make([]int64, total)
		for c := 0; c < cols; c++ {
			row[shift+c] = m.At(i, c)
		}
		rows = append(rows, row...)
		rhsOut[i] = rhs.At(i)
	}
	return rows, rhsOut
}
