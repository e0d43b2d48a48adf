package symbolic

import (
	"sort"
	"strings"

	"github.com/loopmodels/polyhedral/scalar"
)

// Term is one (coefficient, monomial) pair of a Polynomial.
type Term struct {
	Coeff int64
	Mono  Monomial
}

// Polynomial is an ordered sequence of terms, lex-descending by
// monomial, with no zero coefficients and no duplicate monomials.
type Polynomial struct {
	terms []Term
}

// Zero is the empty polynomial.
var Zero = Polynomial{}

// NewPolynomial builds the canonical form of the given terms: duplicate
// monomials are summed, zero-coefficient terms are dropped, and the
// result is sorted lex-descending.
func NewPolynomial(terms ...Term) Polynomial {
	acc := map[string]Term{}
	order := []string{}
	for _, t := range terms {
		if t.Coeff == 0 {
			continue
		}
		key := monoKey(t.Mono)
		if cur, ok := acc[key]; ok {
			acc[key] = Term{Coeff: cur.Coeff + t.Coeff, Mono: t.Mono}
		} else {
			acc[key] = t
			order = append(order, key)
		}
	}
	out := make([]Term, 0, len(order))
	for _, key := range order {
		if t := acc[key]; t.Coeff != 0 {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Mono.Less(out[j].Mono) })
	return Polynomial{terms: out}
}

func monoKey(m Monomial) string {
	var sb strings.Builder
	for _, v := range m.vars {
		sb.WriteByte(byte(v))
		sb.WriteByte(',')
	}
	return sb.String()
}

// Constant returns the constant polynomial c.
func Constant(c int64) Polynomial {
	if c == 0 {
		return Zero
	}
	return Polynomial{terms: []Term{{Coeff: c, Mono: One}}}
}

// Terms returns a copy of p's terms, in canonical order.
func (p Polynomial) Terms() []Term { return append([]Term(nil), p.terms...) }

// IsZero reports whether p has no terms.
func (p Polynomial) IsZero() bool { return len(p.terms) == 0 }

// ConstantTerm returns the coefficient of the degree-0 monomial (0 if
// absent).
func (p Polynomial) ConstantTerm() int64 {
	for _, t := range p.terms {
		if t.Mono.IsOne() {
			return t.Coeff
		}
	}
	return 0
}

// Add returns p+q.
func (p Polynomial) Add(q Polynomial) Polynomial {
	return NewPolynomial(append(p.Terms(), q.Terms()...)...)
}

// Neg returns -p.
func (p Polynomial) Neg() Polynomial {
	out := make([]Term, len(p.terms))
	for i, t := range p.terms {
		out[i] = Term{Coeff: -t.Coeff, Mono: t.Mono}
	}
	return Polynomial{terms: out}
}

// Sub returns p-q.
func (p Polynomial) Sub(q Polynomial) Polynomial { return p.Add(q.Neg()) }

// Mul returns p*q.
func (p Polynomial) Mul(q Polynomial) Polynomial {
	terms := make([]Term, 0, len(p.terms)*len(q.terms))
	for _, a := range p.terms {
		for _, b := range q.terms {
			terms = append(terms, Term{Coeff: a.Coeff * b.Coeff, Mono: a.Mono.Mul(b.Mono)})
		}
	}
	return NewPolynomial(terms...)
}

// leadTerm returns the lex-leading term of p (the zero Term if p is
// zero).
func (p Polynomial) leadTerm() Term {
	if len(p.terms) == 0 {
		return Term{}
	}
	return p.terms[0]
}

// DivExact divides p by d, returning the quotient when the remainder of
// the Euclidean-style division is exactly zero; ok is false otherwise
// (mirroring the original divExact contract).
func (p Polynomial) DivExact(d Polynomial) (quotient Polynomial, ok bool) {
	if d.IsZero() {
		return Zero, false
	}
	lead := d.leadTerm()
	remainder := p
	var qTerms []Term
	for !remainder.IsZero() {
		rl := remainder.leadTerm()
		monoQ, divisible := rl.Mono.DivExact(lead.Mono)
		if !divisible || rl.Coeff%lead.Coeff != 0 {
			return Zero, false
		}
		coeffQ := rl.Coeff / lead.Coeff
		qTerms = append(qTerms, Term{Coeff: coeffQ, Mono: monoQ})
		sub := d.Mul(NewPolynomial(Term{Coeff: coeffQ, Mono: monoQ}))
		remainder = remainder.Sub(sub)
	}
	return NewPolynomial(qTerms...), true
}

// GCD returns an approximate polynomial gcd of p and q via a
// primitive-part / pseudo-remainder sequence: it repeatedly reduces the
// pair by pseudo-division until one side vanishes, then returns the
// surviving side with its integer content removed. For polynomials that
// are not exactly divisible at each pseudo-division step (the common
// multivariate case), it degrades to the constant 1, which is always a
// safe (if uninformative) answer.
func (p Polynomial) GCD(q Polynomial) Polynomial {
	a, b := p, q
	for !b.IsZero() {
		rem, ok := pseudoRemainder(a, b)
		if !ok {
			return Constant(1)
		}
		a, b = b, rem
	}
	return a.primitivePart()
}

// pseudoRemainder computes a pseudo-remainder of a by b using b's lead
// term as pivot, stopping (ok=false) if a term ever fails to reduce
// (i.e. the two polynomials do not share a common leading-variable
// structure the simple sequence can handle).
func pseudoRemainder(a, b Polynomial) (Polynomial, bool) {
	if b.IsZero() {
		return Zero, false
	}
	lead := b.leadTerm()
	rem := a
	limit := 10000
	for !rem.IsZero() && limit > 0 {
		limit--
		rl := rem.leadTerm()
		monoQ, divisible := rl.Mono.DivExact(lead.Mono)
		if !divisible {
			return rem, false
		}
		g := scalar.GCD(rl.Coeff, lead.Coeff)
		cq := rl.Coeff / g
		cd := lead.Coeff / g
		scaled := NewPolynomial(scaleTerms(rem.terms, cd)...)
		sub := b.Mul(NewPolynomial(Term{Coeff: cq, Mono: monoQ}))
		rem = scaled.Sub(sub)
	}
	return rem, true
}

func scaleTerms(terms []Term, c int64) []Term {
	out := make([]Term, len(terms))
	for i, t := range terms {
		out[i] = Term{Coeff: t.Coeff * c, Mono: t.Mono}
	}
	return out
}

// primitivePart divides out the gcd of p's coefficients.
func (p Polynomial) primitivePart() Polynomial {
	if p.IsZero() {
		return Zero
	}
	g := p.terms[0].Coeff
	if g < 0 {
		g = -g
	}
	for _, t := range p.terms[1:] {
		g = scalar.GCD(g, t.Coeff)
	}
	if g <= 1 {
		return p
	}
	out := make([]Term, len(p.terms))
	for i, t := range p.terms {
		out[i] = Term{Coeff: t.Coeff / g, Mono: t.Mono}
	}
	return Polynomial{terms: out}
}

// String renders p in descending-monomial order, e.g. "2*x0*x1 - x2 + 3".
func (p Polynomial) String() string {
	if p.IsZero() {
		return "0"
	}
	var sb strings.Builder
	for i, t := range p.terms {
		if i > 0 {
			if t.Coeff >= 0 {
				sb.WriteString(" + ")
			} else {
				sb.WriteString(" - ")
			}
		} else if t.Coeff < 0 {
			sb.WriteString("-")
		}
		c := t.Coeff
		if c < 0 {
			c = -c
		}
		if t.Mono.IsOne() {
			sb.WriteString(itoa(c))
			continue
		}
		if c != 1 {
			sb.WriteString(itoa(c))
			sb.WriteString("*")
		}
		for j, v := range t.Mono.vars {
			if j > 0 {
				sb.WriteString("*")
			}
			sb.WriteString("x")
			sb.WriteString(itoa(int64(v)))
		}
	}
	return sb.String()
}

func itoa(v int64) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
