// Package series computes the first Hilbert series of a monomial ideal and
// assembles the Hilbert–Poincaré rational series under an optional grading.
//
// 🚀 What is the first Hilbert series?
//
//	For a monomial ideal I in k[x₀..xₙ₋₁] graded by positive integer
//	weights w, the Hilbert–Poincaré series of k[x]/I is the rational
//	function HP(t) / Π(1 − t^{wᵢ}).  The numerator HP(t) — an integer
//	polynomial — is the first Hilbert series; this package computes it by
//	divide and conquer:
//	  1. interreduce the generators,
//	  2. answer four families of ideals in closed form,
//	  3. otherwise split on a heuristically chosen cut monomial f using
//	     HS(I) = HS(I + (f)) + t^{deg f} · HS(I : f),
//	  4. walk the resulting subproblem tree with an explicit iterative
//	     traversal that releases each consumed subtree immediately.
//
// ✨ Why this engine?
//
//   - Stack-safe – no call-stack recursion; arbitrarily deep splitting
//     trees walk in constant goroutine stack
//   - Memory-bounded – live nodes are O(current depth), not O(tree size)
//   - Deterministic – stable sorts and a fixed lower-median cut heuristic
//
// ⚙️ Usage:
//
//	import (
//	    "github.com/katalvlaran/hilbert/monomial"
//	    "github.com/katalvlaran/hilbert/series"
//	)
//
//	gens := []monomial.Monomial{x2, y2, z2}
//	num, err := series.Numerator(3, gens, nil)   // 1 - 3t^2 + 3t^4 - t^6
//	hp, err := series.Poincare(3, gens, nil)     // num / (1-t)^3
//
// Errors: all validation happens at the two public entry points; see the
// sentinels in types.go. The internal algebra is total on validated input.
//
// Complexity: worst case exponential in the number of generators (the
// Hilbert series problem is #P-hard); the cut heuristic keeps practical
// inputs shallow and every split strictly shrinks generator count or total
// exponent mass, so termination is unconditional.
package series
