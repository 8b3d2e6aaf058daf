// Package hilbert computes Hilbert series of monomial ideals in polynomial
// rings graded by a weight vector — from sparse exponent-vector primitives
// to the final Hilbert–Poincaré rational series.
//
// 🚀 What is hilbert?
//
//	A deterministic, allocation-conscious library that brings together:
//		• Sparse monomials: exponent-vector algebra (divisibility, colon, degrees)
//		• Ideals: interreduction and ideal quotients, always kept reduced
//		• Polynomials: dense univariate integer arithmetic
//		• Series: a divide-and-conquer Hilbert series engine with closed-form
//		  base cases, a heuristic splitting rule, and a stack-safe iterative
//		  tree walk bounded by traversal depth, not tree size
//
// ✨ Why choose hilbert?
//
//   - Deterministic – same generators and grading ⇒ identical output, always
//   - Rock-solid guarantees – sentinel errors at the boundary, total internals
//   - Pure Go – no cgo, no hidden deps
//   - Memory-bounded – the splitting tree is released eagerly while walking
//
// Under the hood, everything is organized under four subpackages:
//
//	monomial/ — sparse exponent vectors and their algebra
//	ideal/    — interreduced monomial ideals and quotients
//	poly/     — dense univariate polynomials over int64
//	series/   — base cases, splitting engine, evaluator, Poincaré assembly
//
// Quick example:
//
//	gens := []monomial.Monomial{
//	    monomial.MustNew(monomial.Term{Var: 0, Exp: 2}),
//	    monomial.MustNew(monomial.Term{Var: 1, Exp: 2}),
//	    monomial.MustNew(monomial.Term{Var: 2, Exp: 2}),
//	}
//	num, err := series.Numerator(3, gens, nil)
//	// num = 1 - 3t^2 + 3t^4 - t^6
//
// Dive into each package's doc.go for contracts, complexity notes and
// worked examples.
//
//	go get github.com/katalvlaran/hilbert/series
package hilbert
