// Package dependence builds dependence polyhedra between pairs of array
// references sharing an underlying array, and dualizes a dependence
// polyhedron via Farkas' lemma into a polyhedron over schedule
// coefficients (spec §4.8).
package dependence

import (
	"github.com/loopmodels/polyhedral/matrix"
	"github.com/loopmodels/polyhedral/polyhedron"
)

// LoopNest is the iteration-space polyhedron of a loop nest: a
// Polyhedron whose numVars equals the loop depth, one column per
// enclosing loop induction variable, outermost first.
type LoopNest struct {
	space *polyhedron.Polyhedron
}

// NewLoopNest wraps an inequality system {A·i <= b} as a loop nest of
// depth equal to A's column count.
func NewLoopNest(a *matrix.Dense, b matrix.Vector) *LoopNest {
	return &LoopNest{space: polyhedron.New(a, b)}
}

// Depth returns the loop nest's iteration-vector length.
func (l *LoopNest) Depth() int { return l.space.NumVars() }

// Space exposes the underlying iteration-space polyhedron, e.g. for a
// caller that wants to prune or simplify it before building a
// dependence test.
func (l *LoopNest) Space() *polyhedron.Polyhedron { return l.space }
