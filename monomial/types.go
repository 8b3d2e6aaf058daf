// Package monomial: this file declares the Term and Monomial types, the
// validating constructors (the only boundary where malformed exponent data
// can appear), and the package's sentinel errors.
package monomial

import (
	"errors"
	"strconv"
	"strings"
)

// Sentinel errors for monomial construction.
var (
	// ErrNegativeVar indicates a term with a negative variable index.
	ErrNegativeVar = errors.New("monomial: negative variable index")

	// ErrNonPositiveExp indicates a term with a zero or negative exponent.
	ErrNonPositiveExp = errors.New("monomial: exponent must be positive")

	// ErrUnsortedTerms indicates variable indices that are not strictly
	// increasing (covers duplicate indices).
	ErrUnsortedTerms = errors.New("monomial: variable indices must be strictly increasing")

	// ErrNegativeExp indicates a negative entry in a dense exponent row.
	ErrNegativeExp = errors.New("monomial: negative exponent")
)

// Term is one (variable, exponent) pair of a sparse exponent vector.
type Term struct {
	// Var is the zero-based ring variable index.
	Var int

	// Exp is the exponent of that variable; always > 0 when stored.
	Exp int
}

// Monomial is an immutable sparse exponent vector: the ordered nonzero
// entries of a monomial's exponent row. The zero value is the unit
// monomial 1.
//
// Invariant: terms[i].Var < terms[i+1].Var and terms[i].Exp > 0 for all i.
type Monomial struct {
	terms []Term
}

// New builds a Monomial from terms with strictly increasing variable
// indices and positive exponents.
//
// Errors: ErrNegativeVar, ErrNonPositiveExp, ErrUnsortedTerms.
// Complexity: O(len(terms)).
func New(terms ...Term) (Monomial, error) {
	for i, t := range terms {
		if t.Var < 0 {
			return Monomial{}, ErrNegativeVar
		}
		if t.Exp <= 0 {
			return Monomial{}, ErrNonPositiveExp
		}
		if i > 0 && terms[i-1].Var >= t.Var {
			return Monomial{}, ErrUnsortedTerms
		}
	}
	out := make([]Term, len(terms))
	copy(out, terms)

	return Monomial{terms: out}, nil
}

// MustNew is New that panics on error. Intended for fixtures and tests
// with literal, known-good terms.
func MustNew(terms ...Term) Monomial {
	m, err := New(terms...)
	if err != nil {
		panic(err)
	}

	return m
}

// FromExponents converts a dense exponent row into a Monomial, dropping
// zero entries. Entry i is the exponent of variable i.
//
// Errors: ErrNegativeExp.
// Complexity: O(len(exps)).
func FromExponents(exps []int) (Monomial, error) {
	var terms []Term
	for i, e := range exps {
		if e < 0 {
			return Monomial{}, ErrNegativeExp
		}
		if e > 0 {
			terms = append(terms, Term{Var: i, Exp: e})
		}
	}

	return Monomial{terms: terms}, nil
}

// IsUnit reports whether m is the unit monomial 1 (empty exponent vector).
func (m Monomial) IsUnit() bool { return len(m.terms) == 0 }

// Len returns the number of variables with nonzero exponent.
func (m Monomial) Len() int { return len(m.terms) }

// Terms returns a copy of the stored (variable, exponent) pairs.
func (m Monomial) Terms() []Term {
	out := make([]Term, len(m.terms))
	copy(out, m.terms)

	return out
}

// MaxVar returns the largest variable index with nonzero exponent,
// or -1 for the unit monomial.
func (m Monomial) MaxVar() int {
	if len(m.terms) == 0 {
		return -1
	}

	return m.terms[len(m.terms)-1].Var
}

// Equal reports componentwise equality of two exponent vectors.
func (m Monomial) Equal(b Monomial) bool {
	if len(m.terms) != len(b.terms) {
		return false
	}
	for i, t := range m.terms {
		if t != b.terms[i] {
			return false
		}
	}

	return true
}

// String renders the monomial as a product of powers, e.g. "x0*x2^3",
// or "1" for the unit monomial. Debug/event surface only.
func (m Monomial) String() string {
	if len(m.terms) == 0 {
		return "1"
	}
	var sb strings.Builder
	for i, t := range m.terms {
		if i > 0 {
			sb.WriteByte('*')
		}
		sb.WriteByte('x')
		sb.WriteString(strconv.Itoa(t.Var))
		if t.Exp > 1 {
			sb.WriteByte('^')
			sb.WriteString(strconv.Itoa(t.Exp))
		}
	}

	return sb.String()
}
