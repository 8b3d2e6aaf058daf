package monomial_test

import (
	"testing"

	"github.com/katalvlaran/hilbert/monomial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mk builds a monomial from (var, exp) pairs; fixtures only.
func mk(pairs ...[2]int) monomial.Monomial {
	terms := make([]monomial.Term, len(pairs))
	for i, p := range pairs {
		terms[i] = monomial.Term{Var: p[0], Exp: p[1]}
	}

	return monomial.MustNew(terms...)
}

// TestNew_RejectsMalformedTerms verifies every constructor sentinel.
func TestNew_RejectsMalformedTerms(t *testing.T) {
	_, err := monomial.New(monomial.Term{Var: -1, Exp: 1})
	assert.ErrorIs(t, err, monomial.ErrNegativeVar, "negative variable index must error")

	_, err = monomial.New(monomial.Term{Var: 0, Exp: 0})
	assert.ErrorIs(t, err, monomial.ErrNonPositiveExp, "zero exponent must error")

	_, err = monomial.New(monomial.Term{Var: 0, Exp: 1}, monomial.Term{Var: 0, Exp: 2})
	assert.ErrorIs(t, err, monomial.ErrUnsortedTerms, "duplicate index must error")

	_, err = monomial.New(monomial.Term{Var: 3, Exp: 1}, monomial.Term{Var: 1, Exp: 2})
	assert.ErrorIs(t, err, monomial.ErrUnsortedTerms, "descending indices must error")
}

// TestFromExponents_DropsZerosRejectsNegatives checks dense-to-sparse
// conversion keeps only positive entries.
func TestFromExponents_DropsZerosRejectsNegatives(t *testing.T) {
	m, err := monomial.FromExponents([]int{0, 2, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, []monomial.Term{{Var: 1, Exp: 2}, {Var: 3, Exp: 1}}, m.Terms())

	_, err = monomial.FromExponents([]int{1, -1})
	assert.ErrorIs(t, err, monomial.ErrNegativeExp, "negative dense entry must error")
}

// TestDivides_Reflexive checks divides(a, a) for a spread of vectors.
func TestDivides_Reflexive(t *testing.T) {
	for _, m := range []monomial.Monomial{
		{},
		mk([2]int{0, 1}),
		mk([2]int{0, 2}, [2]int{3, 5}),
		mk([2]int{1, 1}, [2]int{2, 1}, [2]int{7, 4}),
	} {
		assert.True(t, m.Divides(m), "every monomial divides itself: %s", m)
	}
}

// TestDivides_Transitive checks a|b and b|c imply a|c on a concrete chain.
func TestDivides_Transitive(t *testing.T) {
	a := mk([2]int{0, 1})
	b := mk([2]int{0, 2}, [2]int{1, 1})
	c := mk([2]int{0, 3}, [2]int{1, 2}, [2]int{2, 1})

	require.True(t, a.Divides(b))
	require.True(t, b.Divides(c))
	assert.True(t, a.Divides(c), "divisibility must be transitive")
}

// TestDivides_FailFastAndAbsentVars covers the length short-circuit and
// absent-variable handling.
func TestDivides_FailFastAndAbsentVars(t *testing.T) {
	xy := mk([2]int{0, 1}, [2]int{1, 1})
	x2 := mk([2]int{0, 2})

	assert.False(t, xy.Divides(x2), "more nonzero entries cannot divide fewer")
	assert.False(t, mk([2]int{1, 1}).Divides(x2), "absent variable counts as exponent 0")
	assert.True(t, monomial.Monomial{}.Divides(x2), "unit divides everything")
	assert.False(t, x2.Divides(mk([2]int{0, 1})), "larger exponent does not divide smaller")
}

// TestColon_SelfIsUnit checks colon(a, a) yields the unit vector.
func TestColon_SelfIsUnit(t *testing.T) {
	for _, m := range []monomial.Monomial{
		{},
		mk([2]int{0, 2}),
		mk([2]int{1, 3}, [2]int{4, 1}),
	} {
		assert.True(t, m.Colon(m).IsUnit(), "a : a must be the unit monomial")
	}
}

// TestColon_KeepsPositivePartsOnly checks entrywise max(0, a-b) semantics.
func TestColon_KeepsPositivePartsOnly(t *testing.T) {
	a := mk([2]int{0, 3}, [2]int{1, 1}, [2]int{2, 2})
	b := mk([2]int{0, 1}, [2]int{1, 5}, [2]int{3, 7})

	got := a.Colon(b)
	assert.Equal(t, []monomial.Term{{Var: 0, Exp: 2}, {Var: 2, Exp: 2}}, got.Terms())
}

// TestDivideByVar covers decrement, entry removal, and the absent case.
func TestDivideByVar(t *testing.T) {
	m := mk([2]int{0, 2}, [2]int{1, 1})

	q, ok := m.DivideByVar(0)
	require.True(t, ok)
	assert.Equal(t, []monomial.Term{{Var: 0, Exp: 1}, {Var: 1, Exp: 1}}, q.Terms())

	q, ok = m.DivideByVar(1)
	require.True(t, ok)
	assert.Equal(t, []monomial.Term{{Var: 0, Exp: 2}}, q.Terms(), "exponent 1 entry must vanish")

	_, ok = m.DivideByVar(5)
	assert.False(t, ok, "absent variable must report false")
}

// TestExp checks the per-variable exponent accessor, absent included.
func TestExp(t *testing.T) {
	m := mk([2]int{1, 2}, [2]int{4, 3})

	assert.Equal(t, 0, m.Exp(0))
	assert.Equal(t, 2, m.Exp(1))
	assert.Equal(t, 3, m.Exp(4))
	assert.Equal(t, 0, m.Exp(9))
	assert.Equal(t, 0, monomial.Monomial{}.Exp(0))
}

// TestDegree_UniformAndWeighted checks both grading modes plus ColonDegree
// consistency with the materialized quotient.
func TestDegree_UniformAndWeighted(t *testing.T) {
	m := mk([2]int{0, 2}, [2]int{2, 3})

	assert.Equal(t, 5, m.Degree(nil), "uniform degree sums exponents")
	assert.Equal(t, 2*2+3*5, m.Degree([]int{2, 9, 5}), "weighted degree uses w[var]")
	assert.Equal(t, 0, monomial.Monomial{}.Degree(nil), "unit has degree 0")

	b := mk([2]int{0, 1}, [2]int{1, 4})
	w := []int{3, 1, 2}
	assert.Equal(t, m.Colon(b).Degree(w), m.ColonDegree(b, w),
		"ColonDegree must match degree of the materialized colon")
	assert.Equal(t, m.Colon(b).Degree(nil), m.ColonDegree(b, nil))
}

// TestSum_BalancedFoldMatchesSequential checks the pairwise fold against a
// plain left fold expressed through repeated two-element sums.
func TestSum_BalancedFoldMatchesSequential(t *testing.T) {
	ms := []monomial.Monomial{
		mk([2]int{0, 1}, [2]int{1, 1}),
		mk([2]int{1, 2}),
		mk([2]int{0, 2}, [2]int{3, 1}),
		mk([2]int{2, 4}),
		mk([2]int{3, 1}),
	}

	got := monomial.Sum(ms)
	want := monomial.Monomial{}
	for _, m := range ms {
		want = monomial.Sum([]monomial.Monomial{want, m})
	}
	assert.True(t, got.Equal(want), "any pairing of an associative sum agrees")
	assert.Equal(t, []monomial.Term{{Var: 0, Exp: 3}, {Var: 1, Exp: 3}, {Var: 2, Exp: 4}, {Var: 3, Exp: 2}}, got.Terms())
}

// TestSum_Empty checks the empty list sums to the unit vector.
func TestSum_Empty(t *testing.T) {
	assert.True(t, monomial.Sum(nil).IsUnit())
}

// TestString covers the debug rendering.
func TestString(t *testing.T) {
	assert.Equal(t, "1", monomial.Monomial{}.String())
	assert.Equal(t, "x0^2*x3", mk([2]int{0, 2}, [2]int{3, 1}).String())
}
