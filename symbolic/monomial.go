// Package symbolic provides the small multivariate-polynomial algebra
// used to express symbolic loop bounds (program parameters) and the
// partially ordered set of known relations between them that the
// comparator consults when a purely linear proof is inconclusive.
package symbolic

import "sort"

// Monomial is a canonically sorted multiset of variable IDs: equal
// monomials always compare bitwise equal because both are kept sorted
// ascending. The distinguished One value (degree 0) is the empty slice.
type Monomial struct {
	vars []int
}

// One is the degree-0 monomial.
var One = Monomial{}

// NewMonomial returns the canonical Monomial for the given variable IDs
// (duplicates indicate repeated factors, e.g. {0,0,1} means x0^2*x1).
func NewMonomial(vars ...int) Monomial {
	cp := append([]int(nil), vars...)
	sort.Ints(cp)
	return Monomial{vars: cp}
}

// Degree returns the total degree (number of factors, with
// multiplicity) of m.
func (m Monomial) Degree() int { return len(m.vars) }

// IsOne reports whether m is the degree-0 monomial.
func (m Monomial) IsOne() bool { return len(m.vars) == 0 }

// Equal reports whether m and n are the same monomial.
func (m Monomial) Equal(n Monomial) bool {
	if len(m.vars) != len(n.vars) {
		return false
	}
	for i := range m.vars {
		if m.vars[i] != n.vars[i] {
			return false
		}
	}
	return true
}

// Mul returns the product m*n: a merge of the two sorted variable
// lists.
func (m Monomial) Mul(n Monomial) Monomial {
	out := make([]int, 0, len(m.vars)+len(n.vars))
	i, j := 0, 0
	for i < len(m.vars) && j < len(n.vars) {
		if m.vars[i] <= n.vars[j] {
			out = append(out, m.vars[i])
			i++
		} else {
			out = append(out, n.vars[j])
			j++
		}
	}
	out = append(out, m.vars[i:]...)
	out = append(out, n.vars[j:]...)
	return Monomial{vars: out}
}

// exponents returns a map from variable ID to exponent, for GCD/divide.
func (m Monomial) exponents() map[int]int {
	e := make(map[int]int, len(m.vars))
	for _, v := range m.vars {
		e[v]++
	}
	return e
}

// GCD returns the pointwise-minimum-exponent monomial of m and n.
func (m Monomial) GCD(n Monomial) Monomial {
	em, en := m.exponents(), n.exponents()
	var out []int
	for v, ce := range em {
		if de, ok := en[v]; ok {
			if de < ce {
				ce = de
			}
			for k := 0; k < ce; k++ {
				out = append(out, v)
			}
		}
	}
	sort.Ints(out)
	return Monomial{vars: out}
}

// DivExact divides m by n, returning (m/n, true) if n's exponent vector
// is dominated by m's at every variable, or (zero, false) otherwise.
func (m Monomial) DivExact(n Monomial) (Monomial, bool) {
	em := m.exponents()
	en := n.exponents()
	for v, de := range en {
		if em[v] < de {
			return Monomial{}, false
		}
		em[v] -= de
	}
	var out []int
	for v, ce := range em {
		for k := 0; k < ce; k++ {
			out = append(out, v)
		}
	}
	sort.Ints(out)
	return Monomial{vars: out}, true
}

// Less orders m and n lexicographically descending by (degree, then
// the sorted variable list compared lexicographically): higher degree
// sorts first, matching the polynomial's lex-descending term order.
func (m Monomial) Less(n Monomial) bool {
	if len(m.vars) != len(n.vars) {
		return len(m.vars) > len(n.vars)
	}
	for i := range m.vars {
		if m.vars[i] != n.vars[i] {
			return m.vars[i] < n.vars[i]
		}
	}
	return false
}

// Vars returns a copy of m's sorted variable-ID multiset.
func (m Monomial) Vars() []int { return append([]int(nil), m.vars...) }
