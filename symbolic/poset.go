package symbolic

// POSet (PartiallyOrderedSet) records, for every pair of symbol IDs
// i<j, a saturating Interval bounding sym_j - sym_i, maintained under
// transitive closure. Grounded on the original LoopModels POSet: a
// delta table indexed at i + j*(j-1)/2, used to prove loop-bound
// relations a linear comparator pass alone cannot establish (e.g. from
// delinearization side conditions like N <= K).
type POSet struct {
	delta []Interval
	nVar  int
}

// NewPOSet returns an empty POSet over the given number of symbols; all
// pairwise differences start Unconstrained.
func NewPOSet(nVar int) *POSet {
	n := bin2(nVar)
	delta := make([]Interval, n)
	for i := range delta {
		delta[i] = Unconstrained()
	}
	return &POSet{delta: delta, nVar: nVar}
}

func bin2(j int) int { return (j * (j - 1)) / 2 }

func linearIndex(i, j int) int {
	if i >= j {
		panic("symbolic: POSet requires i < j")
	}
	return i + bin2(j)
}

// NumVars returns the number of symbols tracked.
func (p *POSet) NumVars() int { return p.nVar }

// Get returns the known interval for sym_j - sym_i (i<j required).
func (p *POSet) Get(i, j int) Interval {
	if i == j {
		return ZeroInterval()
	}
	if i > j {
		return p.Get(j, i).Neg()
	}
	return p.delta[linearIndex(i, j)]
}

// Push intersects the stored interval for sym_j - sym_i with iv and
// propagates the tightening through the transitive closure: pairs
// sharing an endpoint with (i,j) are restricted by interval addition
// and subtraction through (i,j), and any pair whose bound changes significantly is
// recursively propagated further. Mirrors the original
// PartiallyOrderedSet::push/update.
func (p *POSet) Push(i, j int, iv Interval) {
	if i > j {
		p.Push(j, i, iv.Neg())
		return
	}
	if i == j {
		return
	}
	cur := p.delta[linearIndex(i, j)]
	next := cur.Intersect(iv)
	if next.EquivalentRange(cur) {
		return
	}
	p.delta[linearIndex(i, j)] = next
	p.propagate(i, j, next, cur)
}

// propagate re-derives bounds on every pair touching i or j after the
// (i,j) interval changed from old to next.
func (p *POSet) propagate(i, j int, next, old Interval) {
	// k < i: j-k = (j-i) + (i-k), so update via restrictAdd on (i-k, j-k)... here
	// we index stored intervals as sym_b - sym_a for a<b, so:
	// ji = next (sym_j - sym_i). For k<i: ik = sym_i - sym_k, jk = sym_j - sym_k.
	// jk = ji + ik -> restrictAdd.
	for k := 0; k < i; k++ {
		ik := p.Get(k, i)
		jk := p.Get(k, j)
		jkNew := jk.Intersect(next.Add(ik))
		ikNew := ik.Intersect(jkNew.Sub(next))
		if jkNew.SignificantlyDifferent(jk) {
			p.delta[linearIndex(k, j)] = jkNew
			p.propagate(k, j, jkNew, jk)
		} else {
			p.delta[linearIndex(k, j)] = jkNew
		}
		if ikNew.SignificantlyDifferent(ik) {
			p.delta[linearIndex(k, i)] = ikNew
			p.propagate(k, i, ikNew, ik)
		} else {
			p.delta[linearIndex(k, i)] = ikNew
		}
	}
	// i < k < j: jk = ji... actually jk - ik = ji where ik = sym_k-sym_i,
	// jk = sym_j - sym_k: ji = ik + jk (sym_j-sym_i = (sym_k-sym_i)+(sym_j-sym_k))
	for k := i + 1; k < j; k++ {
		ik := p.Get(i, k)
		jk := p.Get(k, j)
		ikNew := ik.Intersect(next.Sub(jk))
		jkNew := jk.Intersect(next.Sub(ik))
		if ikNew.SignificantlyDifferent(ik) {
			p.delta[linearIndex(i, k)] = ikNew
			p.propagate(i, k, ikNew, ik)
		} else {
			p.delta[linearIndex(i, k)] = ikNew
		}
		if jkNew.SignificantlyDifferent(jk) {
			p.delta[linearIndex(k, j)] = jkNew
			p.propagate(k, j, jkNew, jk)
		} else {
			p.delta[linearIndex(k, j)] = jkNew
		}
	}
	// k > j: ik = sym_k - sym_i, jk = sym_k - sym_j; ik = ji + jk -> restrictAdd
	for k := j + 1; k < p.nVar; k++ {
		jk := p.Get(j, k)
		ik := p.Get(i, k)
		ikNew := ik.Intersect(next.Add(jk))
		jkNew := jk.Intersect(ikNew.Sub(next))
		if ikNew.SignificantlyDifferent(ik) {
			p.delta[linearIndex(i, k)] = ikNew
			p.propagate(i, k, ikNew, ik)
		} else {
			p.delta[linearIndex(i, k)] = ikNew
		}
		if jkNew.SignificantlyDifferent(jk) {
			p.delta[linearIndex(j, k)] = jkNew
			p.propagate(j, k, jkNew, jk)
		} else {
			p.delta[linearIndex(j, k)] = jkNew
		}
	}
}

// KnownGreaterEqual reports whether sym_j - sym_i is known to be >= x.
func (p *POSet) KnownGreaterEqual(i, j int, x int64) bool {
	return p.Get(i, j).Lo >= x
}
