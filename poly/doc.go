// Package poly implements dense univariate polynomials over int64
// coefficients — the value type Hilbert series are computed in.
//
// 🚀 Representation:
//
//	A polynomial c0 + c1·t + c2·t² + … is a coefficient slice in ascending
//	degree, always normalized: no trailing zeros, and the zero polynomial
//	is the empty slice. The zero value of Poly is the zero polynomial.
//
// ✨ Key operations:
//   - One, T(d), OneMinusT(d) — the constructors the series engine lives on
//   - Add, Sub, Mul, Neg     — exact integer arithmetic, zero-skipping Mul
//   - Degree, Coeff, LeadingCoeff, Equal, String
//
// Polynomials are immutable: every operation allocates its result and never
// mutates an operand.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/hilbert/poly"
//
//	p := poly.OneMinusT(2).Mul(poly.OneMinusT(3))
//	fmt.Println(p) // 1 - t^2 - t^3 + t^5
//
// Performance: Add/Sub are O(max deg), Mul is the schoolbook O(deg·deg)
// with zero-coefficient skipping — series numerators are short and sparse,
// so asymptotically fancier multiplication never pays for itself here.
package poly
