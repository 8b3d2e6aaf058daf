// Package monomial implements sparse exponent vectors — the monomials of a
// polynomial ring — and the handful of monomial-theoretic operations the
// Hilbert series engine is built on.
//
// 🚀 What is a sparse exponent vector?
//
//	A monomial x₀^a₀·x₁^a₁·…·xₙ^aₙ stored as the ordered list of its
//	nonzero (variable, exponent) pairs.  The zero value of Monomial is the
//	unit monomial 1 (empty exponent vector).
//
// ✨ Key operations:
//   - Divides      — componentwise ≤, with a fail-fast length check
//   - Colon        — a / gcd(a,b), the building block of ideal quotients
//   - DivideByVar  — strip one power of a single variable
//   - Degree       — weighted total degree under an optional grading
//   - Sum          — balanced pairwise summation of many vectors
//
// Invariants (enforced by the constructors, assumed everywhere else):
//   - variable indices are non-negative and strictly increasing
//   - stored exponents are strictly positive (zeros are never stored)
//
// Monomials are immutable: every operation returns a fresh value and never
// aliases the receiver's backing storage with a caller-visible slice.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/hilbert/monomial"
//
//	xy2, err := monomial.New(
//	    monomial.Term{Var: 0, Exp: 1},
//	    monomial.Term{Var: 1, Exp: 2},
//	)
//	deg := xy2.Degree(nil) // 3
//
// Performance: all pairwise operations are O(len(a)+len(b)) merge scans;
// Sum of k vectors performs O(log k) rounds of pairwise merges.
package monomial
