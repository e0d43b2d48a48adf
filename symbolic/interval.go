package symbolic

import "math"

const (
	maxI = math.MaxInt64
	minI = math.MinInt64
)

// Interval is a closed integer interval [Lo, Hi] used to bound the
// difference between two program symbols. All arithmetic saturates at
// ±maxI/minI instead of wrapping, per spec §4.3/§9.
type Interval struct {
	Lo, Hi int64
}

// Point returns the degenerate interval [x, x].
func Point(x int64) Interval { return Interval{x, x} }

// Unconstrained returns [minI, maxI].
func Unconstrained() Interval { return Interval{minI, maxI} }

// ZeroInterval returns [0, 0].
func ZeroInterval() Interval { return Interval{0, 0} }

// Positive returns [1, maxI].
func Positive() Interval { return Interval{1, maxI} }

// Negative returns [minI, -1].
func Negative() Interval { return Interval{minI, -1} }

// NonNegative returns [0, maxI].
func NonNegative() Interval { return Interval{0, maxI} }

// NonPositive returns [minI, 0].
func NonPositive() Interval { return Interval{minI, 0} }

// LowerBound returns [x, maxI].
func LowerBound(x int64) Interval { return Interval{x, maxI} }

// UpperBoundI returns [minI, x].
func UpperBoundI(x int64) Interval { return Interval{minI, x} }

// IsEmpty reports whether the interval is infeasible (Lo > Hi).
func (a Interval) IsEmpty() bool { return a.Lo > a.Hi }

// IsConstant reports whether the interval is a single point.
func (a Interval) IsConstant() bool { return a.Lo == a.Hi }

// Intersect returns the tightest interval consistent with both a and b.
func (a Interval) Intersect(b Interval) Interval {
	return Interval{maxI64(a.Lo, b.Lo), minI64(a.Hi, b.Hi)}
}

func satAdd(a, b int64) int64 {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		if a > 0 && b > 0 {
			return maxI
		}
		return minI
	}
	return s
}

func satSub(a, b int64) int64 {
	if b == minI {
		if a >= 0 {
			return maxI
		}
		return satAdd(a, maxI)
	}
	return satAdd(a, -b)
}

func satMul(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	p := a * b
	if p/b != a {
		if (a > 0) == (b > 0) {
			return maxI
		}
		return minI
	}
	return p
}

func satNeg(a int64) int64 {
	if a == minI {
		return maxI
	}
	return -a
}

func satAbs(a int64) int64 {
	if a == minI {
		return maxI
	}
	if a < 0 {
		return -a
	}
	return a
}

// Add returns a+b with saturating bounds.
func (a Interval) Add(b Interval) Interval {
	return Interval{satAdd(a.Lo, b.Lo), satAdd(a.Hi, b.Hi)}
}

// Sub returns a-b with saturating bounds.
func (a Interval) Sub(b Interval) Interval {
	return Interval{satSub(a.Lo, b.Hi), satSub(a.Hi, b.Lo)}
}

// Neg returns -a.
func (a Interval) Neg() Interval {
	return Interval{satNeg(a.Hi), satNeg(a.Lo)}
}

// Mul returns a*b: the min/max of the four corner products.
func (a Interval) Mul(b Interval) Interval {
	ll := satMul(a.Lo, b.Lo)
	lh := satMul(a.Lo, b.Hi)
	hl := satMul(a.Hi, b.Lo)
	hh := satMul(a.Hi, b.Hi)
	lo := minI64(minI64(ll, lh), minI64(hl, hh))
	hi := maxI64(maxI64(ll, lh), maxI64(hl, hh))
	return Interval{lo, hi}
}

// RestrictAdd treats *a as the interval for c = x+y given known
// intervals x and y, tightens *a to intersect(x+y), and returns the
// correspondingly tightened x and y (x ∩ (*a - y), y ∩ (*a - x)).
// Mirrors original Interval::restrictAdd.
func (a *Interval) RestrictAdd(x, y Interval) (Interval, Interval) {
	c := a.Intersect(x.Add(y))
	xNew := x.Intersect(c.Sub(y))
	yNew := y.Intersect(c.Sub(x))
	*a = c
	return xNew, yNew
}

// RestrictSub treats *a as the interval for c = x-y, tightens *a to
// intersect(x-y), and returns tightened x, y. Mirrors
// Interval::restrictSub.
func (a *Interval) RestrictSub(x, y Interval) (Interval, Interval) {
	c := a.Intersect(x.Sub(y))
	xNew := x.Intersect(c.Add(y))
	yNew := y.Intersect(x.Sub(c))
	*a = c
	return xNew, yNew
}

// SignUnknown reports whether a straddles zero strictly (both a
// negative and a positive value are possible).
func (a Interval) SignUnknown() bool { return a.Lo < 0 && a.Hi > 0 }

// KnownGreaterEqual reports whether a's range proves a >= b for every
// possible pair of values, i.e. a.Lo >= b.Hi.
func (a Interval) KnownGreaterEqual(b Interval) bool { return a.Lo >= b.Hi }

// KnownGreater reports whether a's range proves a > b.
func (a Interval) KnownGreater(b Interval) bool { return a.Lo > b.Hi }

// EquivalentRange reports whether a and b describe the same bounds.
func (a Interval) EquivalentRange(b Interval) bool { return a.Lo == b.Lo && a.Hi == b.Hi }

// SignificantlyDifferent reports whether a and b differ in a way worth
// propagating further: a bound changed, and both the old and new bound
// have magnitude under half of int64's range. Bounds already saturated
// near ±max do not propagate further, preventing saturating noise from
// cascading (spec §4.3 push/update).
func (a Interval) SignificantlyDifferent(b Interval) bool {
	const half = maxI >> 1
	loDiff := a.Lo != b.Lo && maxI64(satAbs(a.Lo), satAbs(b.Lo)) < half
	hiDiff := a.Hi != b.Hi && maxI64(satAbs(a.Hi), satAbs(b.Hi)) < half
	return loDiff || hiDiff
}

func maxI64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

func minI64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
