// Package series - public entry points for the Hilbert series engine.
//
// This file provides the canonical API:
//
//   - Numerator: validate the adapter payload (variable count, generators,
//     optional grading), interreduce, and run the evaluator to obtain the
//     first Hilbert series.
//   - Poincare: Numerator plus the grading denominator Π(1 − t^{wᵢ}), with
//     the sign of the pair normalized.
//
// Design principles:
//   - Deterministic: no randomness anywhere; identical inputs ⇒ identical
//     series and identical split trees.
//   - Strict sentinels: all rejection happens here with the errors from
//     types.go; the internals assume validated input and are total.
//   - Purity: no shared state between calls; a caller cancels simply by
//     dropping the call, which releases the in-flight tree.
package series

import (
	"github.com/katalvlaran/hilbert/ideal"
	"github.com/katalvlaran/hilbert/monomial"
	"github.com/katalvlaran/hilbert/poly"
)

// Numerator computes the first Hilbert series of the monomial ideal
// generated by gens in a ring of numVars variables graded by weights.
// A nil weights vector means the uniform grading (every variable has
// degree 1); otherwise len(weights) must equal numVars and every weight
// must be positive.
//
// The generator list need not be interreduced, sorted, or duplicate-free;
// it is normalized here. Malformed monomials cannot occur: the monomial
// constructors are the only source of Monomial values.
//
// Errors: ErrNumVars, ErrVarOutOfRange, ErrGradingLength, ErrBadWeight.
func Numerator(numVars int, gens []monomial.Monomial, weights []int) (poly.Poly, error) {
	if err := validate(numVars, gens, weights); err != nil {
		return poly.Poly{}, err
	}

	return evaluate(ideal.New(gens), weights), nil
}

// Poincare computes the Hilbert–Poincaré series of the ideal as the pair
// (first Hilbert series, Π(1 − t^{wᵢ}) over all numVars variables). When
// the denominator's leading coefficient comes out negative (odd variable
// count), both parts are negated so the denominator leads positively.
//
// The returned Series carries the grading actually used — the uniform
// vector is materialized when weights is nil.
//
// Errors: same as Numerator.
func Poincare(numVars int, gens []monomial.Monomial, weights []int) (Series, error) {
	num, err := Numerator(numVars, gens, weights)
	if err != nil {
		return Series{}, err
	}

	used := make([]int, numVars)
	if weights == nil {
		for i := range used {
			used[i] = 1
		}
	} else {
		copy(used, weights)
	}

	den := poly.One()
	for _, wi := range used {
		den = den.Mul(poly.OneMinusT(wi))
	}
	if den.LeadingCoeff() < 0 {
		num = num.Neg()
		den = den.Neg()
	}

	return Series{Numerator: num, Denominator: den, Weights: used}, nil
}

// validate enforces the adapter contract of the two entry points.
func validate(numVars int, gens []monomial.Monomial, weights []int) error {
	if numVars < 0 {
		return ErrNumVars
	}
	for _, g := range gens {
		if g.MaxVar() >= numVars {
			return ErrVarOutOfRange
		}
	}
	if weights == nil {
		return nil
	}
	if len(weights) != numVars {
		return ErrGradingLength
	}
	for _, w := range weights {
		if w <= 0 {
			return ErrBadWeight
		}
	}

	return nil
}
