package symbolic

// KnownGreaterEqualZero conservatively decides whether p >= 0 for every
// assignment of the symbols consistent with poset, under the modeling
// convention (spec §4.3/§4.5) that every symbol column represents a
// loop-bound parameter and so is itself known non-negative unless poset
// says otherwise. It returns true only if a proof succeeds; false means
// "not known," never "known false" (spec §7 propagation policy).
//
// The proof strategy folds degree-1 terms pairwise: a positive-
// coefficient symbol term can cancel a negative-coefficient symbol term
// when poset proves their difference has the matching sign, exploiting
// cancellations the way the original's bipartite-matching pass over
// monomials does. Remaining terms must each be individually known
// non-negative (nonneg coefficient on a product of non-negative
// symbols, or an already-proved-nonnegative constant) for the fold to
// succeed.
func KnownGreaterEqualZero(p Polynomial, poset *POSet) bool {
	terms := p.Terms()

	// Fast path: every term already has a non-negative coefficient, and
	// every monomial is a product of symbols (assumed non-negative) or
	// the constant monomial with non-negative value.
	allNonNeg := true
	for _, t := range terms {
		if t.Coeff < 0 {
			allNonNeg = false
			break
		}
	}
	if allNonNeg {
		return true
	}

	// Degree-1 cancellation pass: match positive-coefficient symbol
	// terms against negative-coefficient symbol terms via poset-proved
	// ordering, consuming matched magnitude (a simple greedy bipartite
	// match — sufficient since ties only ever need a witness, not a
	// maximum matching).
	type linTerm struct {
		sym   int
		coeff int64
	}
	var pos, neg []linTerm
	residual := int64(0)
	for _, t := range terms {
		if t.Mono.Degree() == 0 {
			residual += t.Coeff
			continue
		}
		if t.Mono.Degree() != 1 {
			if t.Coeff < 0 {
				return false // degree > 1 negative term: no cancellation strategy
			}
			continue
		}
		sym := t.Mono.vars[0]
		if t.Coeff >= 0 {
			pos = append(pos, linTerm{sym, t.Coeff})
		} else {
			neg = append(neg, linTerm{sym, t.Coeff})
		}
	}

	if poset == nil {
		return residual >= 0 && len(neg) == 0
	}

	matched := make([]bool, len(pos))
	for _, n := range neg {
		need := -n.coeff
		covered := int64(0)
		for pi := range pos {
			if matched[pi] {
				continue
			}
			pterm := pos[pi]
			if pterm.coeff == 0 {
				continue
			}
			if !symGreaterEqual(poset, pterm.sym, n.sym) {
				continue
			}
			take := pterm.coeff
			if take > need-covered {
				take = need - covered
			}
			pos[pi].coeff -= take
			covered += take
			if pos[pi].coeff == 0 {
				matched[pi] = true
			}
			if covered >= need {
				break
			}
		}
		if covered < need {
			return false
		}
	}
	return residual >= 0
}

// symGreaterEqual reports whether poset proves sym_a >= sym_b, i.e. the
// interval for sym_a - sym_b has non-negative lower bound.
func symGreaterEqual(poset *POSet, a, b int) bool {
	if a == b {
		return true
	}
	if a < b {
		return poset.Get(a, b).Neg().Lo >= 0
	}
	return poset.Get(b, a).Lo >= 0
}
