package simplex

import "github.com/loopmodels/polyhedral/matrix"

// bound is one branching decision: x[varIdx] <= limit (upper) or
// x[varIdx] >= limit (!upper).
type bound struct {
	varIdx int
	upper  bool
	limit  int64
}

// BranchAndBoundInteger solves max cᵀx over {x >= 0 : a*x <= b} with
// every structural variable additionally constrained to an integer
// value. It relaxes to the LP, and whenever the relaxed optimum has a
// fractional basic variable, branches into two subproblems — one
// adding x[j] <= floor(v), the other x[j] >= ceil(v) — following the
// same floor/ceil split the teacher's own branch-and-bound does
// (_teacher_ref/optimize/convex/lp/branch_and_bound.go), rendered over
// exact-rational values instead of floats so the integrality check
// (num%den == 0) never suffers rounding error. ok is false if the
// region has no integer point at all.
func BranchAndBoundInteger(a *matrix.Dense, b matrix.Vector, cost matrix.Vector) (num, den int64, assignment []int64, ok bool) {
	_, n := a.Dims()

	type best struct {
		num, den int64
		x        []int64
	}
	var found *best

	queue := [][]bound{nil}
	for len(queue) > 0 {
		node := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		aug, bAug := applyBounds(a, b, node)
		s := NewFromInequalities(aug, bAug)
		onum, oden, feasOK := s.Optimize(cost)
		if !feasOK {
			continue
		}
		if found != nil && !better(onum, oden, found.num, found.den) {
			continue
		}

		fracRow, fracJ := -1, -1
		for r := rowCon0; r < s.numCons+2; r++ {
			bc := int(s.tab.At(r, colBasic))
			j := bc - 2
			if j < 0 || j >= n {
				continue
			}
			if !s.isIntegral(r) {
				fracRow, fracJ = r, j
				break
			}
		}

		if fracRow == -1 {
			x := make([]int64, n)
			for j := 0; j < n; j++ {
				vn, vd := s.StructuralValue(j)
				x[j] = vn / vd
			}
			found = &best{num: onum, den: oden, x: x}
			continue
		}

		vn, vd := s.basicValue(fracRow)
		floorV := floorDiv(vn, vd)
		queue = append(queue,
			append(append([]bound{}, node...), bound{varIdx: fracJ, upper: true, limit: floorV}),
			append(append([]bound{}, node...), bound{varIdx: fracJ, upper: false, limit: floorV + 1}),
		)
	}

	if found == nil {
		return 0, 0, nil, false
	}
	return found.num, found.den, found.x, true
}

// better reports whether a/b strictly exceeds c/d (both dens > 0).
func better(a, b, c, d int64) bool {
	return a*d > c*b
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// applyBounds stacks one inequality row per branching bound onto a
// copy of a/b: x[j] <= limit as-is, x[j] >= limit as -x[j] <= -limit.
func applyBounds(a *matrix.Dense, b matrix.Vector, bounds []bound) (*matrix.Dense, matrix.Vector) {
	m, n := a.Dims()
	aug := matrix.NewDense(m+len(bounds), n, nil)
	bData := make([]int64, m+len(bounds))
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			aug.Set(i, j, a.At(i, j))
		}
		bData[i] = b.At(i)
	}
	for k, bd := range bounds {
		r := m + k
		if bd.upper {
			aug.Set(r, bd.varIdx, 1)
			bData[r] = bd.limit
		} else {
			aug.Set(r, bd.varIdx, -1)
			bData[r] = -bd.limit
		}
	}
	return aug, matrix.NewVector(len(bData), 1, bData)
}
