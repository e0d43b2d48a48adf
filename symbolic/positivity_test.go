package symbolic

import "testing"

func TestKnownGreaterEqualZeroAllNonNeg(t *testing.T) {
	p := NewPolynomial(Term{Coeff: 2, Mono: x(0)}, Term{Coeff: 1, Mono: One})
	if !KnownGreaterEqualZero(p, nil) {
		t.Errorf("expected all-non-negative polynomial to be provably >= 0")
	}
}

func TestKnownGreaterEqualZeroUnknownNegative(t *testing.T) {
	p := NewPolynomial(Term{Coeff: -1, Mono: x(0)}, Term{Coeff: 1, Mono: One})
	if KnownGreaterEqualZero(p, nil) {
		t.Errorf("expected -x0+1 to be unprovable without bounds on x0")
	}
}

func TestKnownGreaterEqualZeroCancellation(t *testing.T) {
	poset := NewPOSet(2)
	poset.Push(0, 1, LowerBound(0)) // sym1 >= sym0
	// sym1 - sym0 >= 0, i.e. x1 - x0 is provably >= 0.
	p := NewPolynomial(Term{Coeff: 1, Mono: x(1)}, Term{Coeff: -1, Mono: x(0)})
	if !KnownGreaterEqualZero(p, poset) {
		t.Errorf("expected x1 - x0 >= 0 to be provable from poset bound sym1 >= sym0")
	}
}
