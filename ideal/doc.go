// Package ideal implements monomial ideals as interreduced generator lists
// and the two ideal quotients the Hilbert series engine needs.
//
// 🚀 What is an interreduced ideal?
//
//	A monomial ideal is presented by finitely many generator monomials.
//	The presentation is *interreduced* when no generator divides another;
//	every Ideal in this package is kept interreduced and sorted ascending
//	by total (unweighted) degree, with equal-degree generators keeping
//	their input order.
//
// ✨ Key operations:
//   - New           — sort + interreduce an arbitrary generator list
//   - Quotient      — the ideal quotient I : (m) for a monomial m
//   - QuotientByVar — the ideal quotient I : (xj) in one cheap pass
//   - WithoutIndex  — drop a single generator (used by the splitting engine)
//
// Ideals are immutable: every operation returns a new Ideal.
//
// ⚙️ Usage:
//
//	import (
//	    "github.com/katalvlaran/hilbert/ideal"
//	    "github.com/katalvlaran/hilbert/monomial"
//	)
//
//	id := ideal.New([]monomial.Monomial{x2, xy, y3})
//	colon := id.Quotient(xy) // I : (xy)
//
// Performance: interreduction is O(k²·v) for k generators over vectors of
// length ≤ v — the divisibility scan dominates; quotients add one colon
// per generator before re-reducing.
package ideal
