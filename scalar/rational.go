package scalar

import "fmt"

// Rational is an exact fraction with a 64-bit numerator and a strictly
// positive 64-bit denominator, always reduced to lowest terms. The zero
// value is 0/1.
//
// Every binary operation has a "safe" entry point returning ok=false on
// overflow (mirroring the original Rational::safeAdd/safeMul family) and
// an operator-style method that checks the same way but panics on
// overflow instead of reporting it.
type Rational struct {
	Num int64
	Den int64
}

// NewRational builds a reduced Rational from a numerator and a non-zero
// denominator. The sign is normalized onto the numerator and the pair is
// divided by their gcd. Zero is always canonicalized to (0, 1).
func NewRational(n, d int64) Rational {
	if d == 0 {
		panic("scalar: zero denominator")
	}
	if n == 0 {
		return Rational{0, 1}
	}
	if d < 0 {
		n, d = -n, -d
	}
	n, d = DivGCD(n, d)
	return Rational{n, d}
}

// RationalFromInt returns the Rational representation of an integer.
func RationalFromInt(n int64) Rational { return Rational{n, 1} }

// IsZero reports whether r is exactly zero.
func (r Rational) IsZero() bool { return r.Num == 0 }

// Sign returns -1, 0, or 1 according to the sign of r.
func (r Rational) Sign() int {
	switch {
	case r.Num < 0:
		return -1
	case r.Num > 0:
		return 1
	default:
		return 0
	}
}

// Neg returns -r.
func (r Rational) Neg() Rational { return Rational{-r.Num, r.Den} }

// Inv returns 1/r. Panics if r is zero.
func (r Rational) Inv() Rational {
	if r.Num == 0 {
		panic("scalar: division by zero")
	}
	if r.Num < 0 {
		return Rational{-r.Den, -r.Num}
	}
	return Rational{r.Den, r.Num}
}

// SafeAdd returns r+y, or ok=false if the computation overflows int64.
func (r Rational) SafeAdd(y Rational) (sum Rational, ok bool) {
	xd, yd := DivGCD(r.Den, y.Den)
	a, o1 := checkedMul(r.Num, yd)
	b, o2 := checkedMul(y.Num, xd)
	d, o3 := checkedMul(r.Den, yd)
	n, o4 := checkedAdd(a, b)
	if !(o1 && o2 && o3 && o4) {
		return Rational{}, false
	}
	if n == 0 {
		return Rational{0, 1}, true
	}
	nn, nd := DivGCD(n, d)
	if nd < 0 {
		nn, nd = -nn, -nd
	}
	return Rational{nn, nd}, true
}

// Add returns r+y, panicking on overflow.
func (r Rational) Add(y Rational) Rational {
	v, ok := r.SafeAdd(y)
	if !ok {
		panic("scalar: Rational addition overflow")
	}
	return v
}

// SafeSub returns r-y, or ok=false on overflow.
func (r Rational) SafeSub(y Rational) (Rational, bool) {
	return r.SafeAdd(y.Neg())
}

// Sub returns r-y, panicking on overflow.
func (r Rational) Sub(y Rational) Rational {
	v, ok := r.SafeSub(y)
	if !ok {
		panic("scalar: Rational subtraction overflow")
	}
	return v
}

// SafeMul returns r*y, or ok=false on overflow.
func (r Rational) SafeMul(y Rational) (Rational, bool) {
	if r.Num == 0 || y.Num == 0 {
		return Rational{0, 1}, true
	}
	xn, yd := DivGCD(r.Num, y.Den)
	xd, yn := DivGCD(r.Den, y.Num)
	n, o1 := checkedMul(xn, yn)
	d, o2 := checkedMul(xd, yd)
	if !(o1 && o2) {
		return Rational{}, false
	}
	if d < 0 {
		n, d = -n, -d
	}
	return Rational{n, d}, true
}

// Mul returns r*y, panicking on overflow.
func (r Rational) Mul(y Rational) Rational {
	v, ok := r.SafeMul(y)
	if !ok {
		panic("scalar: Rational multiplication overflow")
	}
	return v
}

// SafeMulInt returns r*y for an integer y, or ok=false on overflow.
func (r Rational) SafeMulInt(y int64) (Rational, bool) {
	if y == 0 || r.Num == 0 {
		return Rational{0, 1}, true
	}
	xd, yn := DivGCD(r.Den, y)
	n, ok := checkedMul(r.Num, yn)
	if !ok {
		return Rational{}, false
	}
	if xd < 0 {
		n, xd = -n, -xd
	}
	return Rational{n, xd}, true
}

// SafeDiv returns r/y, or ok=false on overflow or division by zero.
func (r Rational) SafeDiv(y Rational) (Rational, bool) {
	if y.Num == 0 {
		return Rational{}, false
	}
	return r.SafeMul(y.Inv())
}

// Div returns r/y, panicking on overflow or division by zero.
func (r Rational) Div(y Rational) Rational {
	v, ok := r.SafeDiv(y)
	if !ok {
		panic("scalar: Rational division overflow or by zero")
	}
	return v
}

// Cmp compares r and y, returning -1, 0, or 1. Comparison cross-multiplies
// in 128-bit precision so it never overflows, independent of whether the
// reduced numerators/denominators are large.
func (r Rational) Cmp(y Rational) int {
	lhs := mulSigned128(r.Num, y.Den)
	rhs := mulSigned128(y.Num, r.Den)
	return lhs.cmp(rhs)
}

// Equal reports whether r and y represent the same value.
func (r Rational) Equal(y Rational) bool { return r.Num == y.Num && r.Den == y.Den }

// Float64 returns the nearest float64 approximation of r.
func (r Rational) Float64() float64 { return float64(r.Num) / float64(r.Den) }

// String renders r as "n/d", or just "n" when the denominator is 1.
func (r Rational) String() string {
	if r.Den == 1 {
		return fmt.Sprintf("%d", r.Num)
	}
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}

func checkedAdd(a, b int64) (int64, bool) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, false
	}
	return s, true
}

func checkedMul(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	p := a * b
	if p/b != a {
		return 0, false
	}
	// The division check misses MinInt64 * -1: the product wraps to
	// MinInt64, and MinInt64 / -1 wraps back to MinInt64 == a. Reject
	// the -1, MinInt64 pair explicitly in either order.
	if a == -1 && b == minInt64 {
		return 0, false
	}
	if b == -1 && a == minInt64 {
		return 0, false
	}
	return p, true
}

const minInt64 = -1 << 63

// signed128 is a minimal 128-bit signed integer used only for comparing
// the cross products in Rational.Cmp.
type signed128 struct {
	neg    bool
	hi, lo uint64
}

func mulSigned128(a, b int64) signed128 {
	neg := (a < 0) != (b < 0)
	ua, ub := absU64(a), absU64(b)
	hi, lo := mulU128(ua, ub)
	return signed128{neg: neg && (hi != 0 || lo != 0), hi: hi, lo: lo}
}

func absU64(x int64) uint64 {
	if x < 0 {
		return uint64(-x)
	}
	return uint64(x)
}

func (s signed128) cmp(o signed128) int {
	if s.neg != o.neg {
		if s.hi == 0 && s.lo == 0 && o.hi == 0 && o.lo == 0 {
			return 0
		}
		if s.neg {
			return -1
		}
		return 1
	}
	var mag int
	switch {
	case s.hi != o.hi:
		if s.hi < o.hi {
			mag = -1
		} else {
			mag = 1
		}
	case s.lo != o.lo:
		if s.lo < o.lo {
			mag = -1
		} else {
			mag = 1
		}
	}
	if s.neg {
		return -mag
	}
	return mag
}
