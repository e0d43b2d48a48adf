package dependence

import (
	"testing"

	"github.com/loopmodels/polyhedral/matrix"
)

func boundedLoop(n int64) *LoopNest {
	// 0 <= i <= n-1
	a := matrix.NewDense(2, 1, []int64{-1, 1})
	b := matrix.NewVector(2, 1, []int64{0, n - 1})
	return NewLoopNest(a, b)
}

func TestCheckNoDependenceSameSubscriptSingleLoop(t *testing.T) {
	// Both accesses read/write x[i] inside the same single loop
	// 0<=i<=9: the subscript equality forces i=i', which makes any
	// strict lexicographic order (i<i' or i>i') infeasible, so no
	// dependence should be reported.
	loop := boundedLoop(10)
	index := matrix.NewDense(1, 1, []int64{1})
	offset := matrix.NewVector(1, 1, []int64{0})
	src := NewArrayRef(0, loop, index, offset)
	tgt := NewArrayRef(0, loop, index, offset)

	deps := Check(src, tgt)
	if len(deps) != 0 {
		t.Errorf("expected no dependence when subscript equality forces i=i', got %d", len(deps))
	}
}

func TestCheckFindsBackwardDependence(t *testing.T) {
	// src writes a[i] (offset 0) and tgt reads a[i'+1] (offset 1), so
	// the subscript equality is i = i'+1, i.e. i - i' = 1: every solution has i strictly greater than i', so
	// only the backward (i > i') direction at depth 0 should be
	// feasible.
	loop := boundedLoop(10)
	srcIndex := matrix.NewDense(1, 1, []int64{1})
	srcOffset := matrix.NewVector(1, 1, []int64{0})
	tgtIndex := matrix.NewDense(1, 1, []int64{1})
	tgtOffset := matrix.NewVector(1, 1, []int64{1})
	src := NewArrayRef(0, loop, srcIndex, srcOffset)
	tgt := NewArrayRef(0, loop, tgtIndex, tgtOffset)

	deps := Check(src, tgt)
	if len(deps) != 1 {
		t.Fatalf("expected exactly one dependence, got %d", len(deps))
	}
	d := deps[0]
	if d.Depth != 0 || d.Forward {
		t.Errorf("expected a backward dependence at depth 0, got depth=%d forward=%v", d.Depth, d.Forward)
	}
	if d.Polyhedron.IsEmpty() {
		t.Errorf("the reported dependence's own polyhedron must be feasible")
	}
}

func TestCheckDifferentArraysNoDependence(t *testing.T) {
	loop := boundedLoop(10)
	index := matrix.NewDense(1, 1, []int64{1})
	offset := matrix.NewVector(1, 1, []int64{0})
	src := NewArrayRef(0, loop, index, offset)
	tgt := NewArrayRef(1, loop, index, offset)

	if deps := Check(src, tgt); deps != nil {
		t.Errorf("expected no dependence between references to different arrays, got %v", deps)
	}
}
