package monomial

// Exp returns the exponent of variable j in m (0 when absent).
//
// Complexity: O(len(m)); the term lists in play are short enough that a
// binary search would not pay for itself.
func (m Monomial) Exp(j int) int {
	for _, t := range m.terms {
		if t.Var == j {
			return t.Exp
		}
		if t.Var > j {
			break
		}
	}

	return 0
}

// Divides reports whether m divides b: every stored exponent of m is ≤ the
// matching exponent of b (absent entries count as 0).
//
// Fail-fast: a monomial with more nonzero entries than b cannot divide it.
// Complexity: O(len(m)+len(b)).
func (m Monomial) Divides(b Monomial) bool {
	if len(m.terms) > len(b.terms) {
		return false
	}
	j := 0
	for _, t := range m.terms {
		// advance b to the matching variable
		for j < len(b.terms) && b.terms[j].Var < t.Var {
			j++
		}
		if j == len(b.terms) || b.terms[j].Var != t.Var || b.terms[j].Exp < t.Exp {
			return false
		}
		j++
	}

	return true
}

// Colon returns m / gcd(m, b): for every entry of m, the positive part of
// m[i]-b[i]. Entries that drop to zero are not stored.
//
// Complexity: O(len(m)+len(b)).
func (m Monomial) Colon(b Monomial) Monomial {
	out := make([]Term, 0, len(m.terms))
	j := 0
	for _, t := range m.terms {
		for j < len(b.terms) && b.terms[j].Var < t.Var {
			j++
		}
		e := t.Exp
		if j < len(b.terms) && b.terms[j].Var == t.Var {
			e -= b.terms[j].Exp
		}
		if e > 0 {
			out = append(out, Term{Var: t.Var, Exp: e})
		}
	}

	return Monomial{terms: out}
}

// DivideByVar returns m with the exponent of variable j decremented by one,
// dropping the entry when it reaches zero. The second result is false when
// variable j does not occur in m.
//
// Complexity: O(len(m)).
func (m Monomial) DivideByVar(j int) (Monomial, bool) {
	for i, t := range m.terms {
		if t.Var != j {
			continue
		}
		out := make([]Term, 0, len(m.terms))
		out = append(out, m.terms[:i]...)
		if t.Exp > 1 {
			out = append(out, Term{Var: j, Exp: t.Exp - 1})
		}
		out = append(out, m.terms[i+1:]...)

		return Monomial{terms: out}, true
	}

	return Monomial{}, false
}

// Degree returns the weighted total degree Σ exp·w[var]. A nil weight
// vector means uniform weight 1 (plain total degree). Callers guarantee
// len(w) covers every variable of m when w is non-nil.
func (m Monomial) Degree(w []int) int {
	d := 0
	for _, t := range m.terms {
		if w == nil {
			d += t.Exp
		} else {
			d += t.Exp * w[t.Var]
		}
	}

	return d
}

// ColonDegree returns Degree(m.Colon(b), w) without materializing the
// quotient vector. Used by the closed-form series formulas on hot paths.
//
// Complexity: O(len(m)+len(b)).
func (m Monomial) ColonDegree(b Monomial, w []int) int {
	d := 0
	j := 0
	for _, t := range m.terms {
		for j < len(b.terms) && b.terms[j].Var < t.Var {
			j++
		}
		e := t.Exp
		if j < len(b.terms) && b.terms[j].Var == t.Var {
			e -= b.terms[j].Exp
		}
		if e > 0 {
			if w == nil {
				d += e
			} else {
				d += e * w[t.Var]
			}
		}
	}

	return d
}

// add returns the exponent-wise sum of two vectors (merge of sorted terms).
func (m Monomial) add(b Monomial) Monomial {
	out := make([]Term, 0, len(m.terms)+len(b.terms))
	i, j := 0, 0
	for i < len(m.terms) && j < len(b.terms) {
		switch {
		case m.terms[i].Var < b.terms[j].Var:
			out = append(out, m.terms[i])
			i++
		case m.terms[i].Var > b.terms[j].Var:
			out = append(out, b.terms[j])
			j++
		default:
			out = append(out, Term{Var: m.terms[i].Var, Exp: m.terms[i].Exp + b.terms[j].Exp})
			i++
			j++
		}
	}
	out = append(out, m.terms[i:]...)
	out = append(out, b.terms[j:]...)

	return Monomial{terms: out}
}

// Sum returns the exponent-wise sum of all vectors in ms, the unit monomial
// for an empty list. The summation is a balanced pairwise fold: addition is
// associative, so the pairing cannot change the result — balancing only
// bounds the size of intermediate vectors.
//
// Complexity: O(total terms · log len(ms)).
func Sum(ms []Monomial) Monomial {
	switch len(ms) {
	case 0:
		return Monomial{}
	case 1:
		return ms[0]
	}
	half := len(ms) / 2

	return Sum(ms[:half]).add(Sum(ms[half:]))
}
