package symbolic

import "testing"

func x(i int) Monomial { return NewMonomial(i) }

func TestPolynomialCanonicalization(t *testing.T) {
	p := NewPolynomial(
		Term{Coeff: 2, Mono: x(0)},
		Term{Coeff: 3, Mono: x(0)},
		Term{Coeff: 0, Mono: x(1)},
	)
	terms := p.Terms()
	if len(terms) != 1 || terms[0].Coeff != 5 {
		t.Fatalf("expected single merged term coeff 5, got %v", terms)
	}
}

func TestPolynomialAddSub(t *testing.T) {
	p := NewPolynomial(Term{Coeff: 2, Mono: x(0)}, Term{Coeff: 1, Mono: One})
	q := NewPolynomial(Term{Coeff: -2, Mono: x(0)}, Term{Coeff: 4, Mono: One})
	sum := p.Add(q)
	if !sum.Equal(Constant(5)) {
		t.Errorf("p+q = %v, want constant 5", sum)
	}
}

func (p Polynomial) Equal(q Polynomial) bool {
	pt, qt := p.Terms(), q.Terms()
	if len(pt) != len(qt) {
		return false
	}
	for i := range pt {
		if pt[i].Coeff != qt[i].Coeff || !pt[i].Mono.Equal(qt[i].Mono) {
			return false
		}
	}
	return true
}

func TestPolynomialMulAndDivExact(t *testing.T) {
	p := NewPolynomial(Term{Coeff: 1, Mono: x(0)}, Term{Coeff: 1, Mono: One})
	q := NewPolynomial(Term{Coeff: 1, Mono: x(0)}, Term{Coeff: -1, Mono: One})
	prod := p.Mul(q) // x0^2 - 1
	quotient, ok := prod.DivExact(p)
	if !ok {
		t.Fatalf("expected exact division to succeed")
	}
	if !quotient.Equal(q) {
		t.Errorf("(p*q)/p = %v, want %v", quotient, q)
	}
}

func TestPolynomialGCDConstant(t *testing.T) {
	p := NewPolynomial(Term{Coeff: 6, Mono: x(0)}, Term{Coeff: 4, Mono: One})
	q := NewPolynomial(Term{Coeff: 2, Mono: One})
	g := p.GCD(q)
	if g.IsZero() {
		t.Fatalf("gcd should not be zero")
	}
}
