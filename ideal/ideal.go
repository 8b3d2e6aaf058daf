package ideal

import (
	"sort"
	"strings"

	"github.com/katalvlaran/hilbert/monomial"
)

// Ideal is an immutable monomial ideal presentation: generators sorted
// ascending by total unweighted degree and interreduced (no generator
// divides another). The zero value is the zero ideal (no generators).
type Ideal struct {
	gens []monomial.Monomial
}

// New sorts gens ascending by total degree (stable for equal degrees) and
// interreduces them: scanning left to right, a monomial is kept iff no
// earlier-kept monomial divides it. Idempotent.
//
// Complexity: O(k log k) for the sort plus O(k²·v) for the keep-scan.
func New(gens []monomial.Monomial) Ideal {
	sorted := make([]monomial.Monomial, len(gens))
	copy(sorted, gens)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Degree(nil) < sorted[j].Degree(nil)
	})

	kept := sorted[:0]
	for _, g := range sorted {
		divisible := false
		for _, h := range kept {
			if h.Divides(g) {
				divisible = true
				break
			}
		}
		if !divisible {
			kept = append(kept, g)
		}
	}
	// kept aliases sorted's backing array, which New owns exclusively.
	return Ideal{gens: kept}
}

// Len returns the number of generators.
func (id Ideal) Len() int { return len(id.gens) }

// Gen returns the i-th generator in ascending-degree order.
func (id Ideal) Gen(i int) monomial.Monomial { return id.gens[i] }

// Gens returns a copy of the generator list.
func (id Ideal) Gens() []monomial.Monomial {
	out := make([]monomial.Monomial, len(id.gens))
	copy(out, id.gens)

	return out
}

// IsZero reports whether the ideal has no generators.
func (id Ideal) IsZero() bool { return len(id.gens) == 0 }

// ContainsUnit reports whether the ideal is the whole ring. Interreduction
// collapses any list containing the unit monomial to exactly {1}, so a
// single check of the last generator suffices.
func (id Ideal) ContainsUnit() bool {
	return len(id.gens) > 0 && id.gens[len(id.gens)-1].IsUnit()
}

// WithoutIndex returns the ideal with generator i removed. A subset of an
// interreduced sorted list is still interreduced and sorted, so no
// re-reduction is needed.
func (id Ideal) WithoutIndex(i int) Ideal {
	out := make([]monomial.Monomial, 0, len(id.gens)-1)
	out = append(out, id.gens[:i]...)
	out = append(out, id.gens[i+1:]...)

	return Ideal{gens: out}
}

// Quotient returns the ideal quotient I : (m): the interreduction of the
// generators together with every colon g : m.
//
// Complexity: one Colon per generator plus a full interreduction.
func (id Ideal) Quotient(m monomial.Monomial) Ideal {
	union := make([]monomial.Monomial, 0, 2*len(id.gens))
	union = append(union, id.gens...)
	for _, g := range id.gens {
		union = append(union, g.Colon(m))
	}

	return New(union)
}

// QuotientByVar returns the ideal quotient I : (xj). Generators not
// involving xj pass through; the rest contribute their single-variable
// quotient as well.
func (id Ideal) QuotientByVar(j int) Ideal {
	union := make([]monomial.Monomial, 0, 2*len(id.gens))
	union = append(union, id.gens...)
	for _, g := range id.gens {
		if q, ok := g.DivideByVar(j); ok {
			union = append(union, q)
		}
	}

	return New(union)
}

// String renders the generator list, e.g. "(x0^2, x0*x1, x1^3)".
// Debug surface only.
func (id Ideal) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, g := range id.gens {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(g.String())
	}
	sb.WriteByte(')')

	return sb.String()
}
