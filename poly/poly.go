package poly

import (
	"strconv"
	"strings"
)

// Poly is an immutable univariate polynomial over int64: coeffs[i] is the
// coefficient of t^i. Invariant: the slice carries no trailing zeros; the
// zero polynomial is represented by an empty (or nil) slice.
type Poly struct {
	coeffs []int64
}

// Zero returns the zero polynomial.
func Zero() Poly { return Poly{} }

// One returns the constant polynomial 1.
func One() Poly { return Poly{coeffs: []int64{1}} }

// T returns the monomial t^d. T(0) is One. Negative d panics: degrees come
// from validated gradings and a negative one is a programming error.
func T(d int) Poly {
	if d < 0 {
		panic("poly: negative degree")
	}
	c := make([]int64, d+1)
	c[d] = 1

	return Poly{coeffs: c}
}

// OneMinusT returns 1 - t^d for d > 0, the atomic factor of every Hilbert
// series formula in this module. OneMinusT(0) would be the zero polynomial
// 1-1; it panics instead, as no grading admits a degree-0 variable.
func OneMinusT(d int) Poly {
	if d <= 0 {
		panic("poly: OneMinusT needs a positive degree")
	}
	c := make([]int64, d+1)
	c[0] = 1
	c[d] = -1

	return Poly{coeffs: c}
}

// FromCoeffs builds a polynomial from ascending coefficients, trimming
// trailing zeros. The slice is copied.
func FromCoeffs(coeffs []int64) Poly {
	n := len(coeffs)
	for n > 0 && coeffs[n-1] == 0 {
		n--
	}
	out := make([]int64, n)
	copy(out, coeffs[:n])

	return Poly{coeffs: out}
}

// IsZero reports whether p is the zero polynomial.
func (p Poly) IsZero() bool { return len(p.coeffs) == 0 }

// IsOne reports whether p is the constant polynomial 1.
func (p Poly) IsOne() bool { return len(p.coeffs) == 1 && p.coeffs[0] == 1 }

// Degree returns the degree of p, or -1 for the zero polynomial.
func (p Poly) Degree() int { return len(p.coeffs) - 1 }

// Coeff returns the coefficient of t^i (0 beyond the stored degree).
func (p Poly) Coeff(i int) int64 {
	if i < 0 || i >= len(p.coeffs) {
		return 0
	}

	return p.coeffs[i]
}

// Coeffs returns a copy of the ascending coefficient slice.
func (p Poly) Coeffs() []int64 {
	out := make([]int64, len(p.coeffs))
	copy(out, p.coeffs)

	return out
}

// LeadingCoeff returns the highest-degree coefficient, 0 for the zero
// polynomial.
func (p Poly) LeadingCoeff() int64 {
	if len(p.coeffs) == 0 {
		return 0
	}

	return p.coeffs[len(p.coeffs)-1]
}

// Equal reports coefficientwise equality.
func (p Poly) Equal(q Poly) bool {
	if len(p.coeffs) != len(q.coeffs) {
		return false
	}
	for i, c := range p.coeffs {
		if c != q.coeffs[i] {
			return false
		}
	}

	return true
}

// Add returns p + q.
func (p Poly) Add(q Poly) Poly {
	n := len(p.coeffs)
	if len(q.coeffs) > n {
		n = len(q.coeffs)
	}
	out := make([]int64, n)
	copy(out, p.coeffs)
	for i, c := range q.coeffs {
		out[i] += c
	}

	return trim(out)
}

// Sub returns p - q.
func (p Poly) Sub(q Poly) Poly {
	n := len(p.coeffs)
	if len(q.coeffs) > n {
		n = len(q.coeffs)
	}
	out := make([]int64, n)
	copy(out, p.coeffs)
	for i, c := range q.coeffs {
		out[i] -= c
	}

	return trim(out)
}

// Neg returns -p.
func (p Poly) Neg() Poly {
	out := make([]int64, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = -c
	}

	return Poly{coeffs: out}
}

// Mul returns p · q by the schoolbook convolution, skipping zero
// coefficients of p (series factors like 1 - t^d are mostly zeros).
//
// Complexity: O(deg p · deg q).
func (p Poly) Mul(q Poly) Poly {
	if len(p.coeffs) == 0 || len(q.coeffs) == 0 {
		return Poly{}
	}
	out := make([]int64, len(p.coeffs)+len(q.coeffs)-1)
	for i, a := range p.coeffs {
		if a == 0 {
			continue
		}
		for j, b := range q.coeffs {
			out[i+j] += a * b
		}
	}

	return trim(out)
}

// String renders p ascending by degree, e.g. "1 - 3t^2 + 2t^3"; the zero
// polynomial renders as "0".
func (p Poly) String() string {
	if len(p.coeffs) == 0 {
		return "0"
	}
	var sb strings.Builder
	first := true
	for i, c := range p.coeffs {
		if c == 0 {
			continue
		}
		abs := c
		if first {
			if c < 0 {
				sb.WriteByte('-')
				abs = -c
			}
			first = false
		} else {
			if c < 0 {
				sb.WriteString(" - ")
				abs = -c
			} else {
				sb.WriteString(" + ")
			}
		}
		switch {
		case i == 0:
			sb.WriteString(strconv.FormatInt(abs, 10))
		default:
			if abs != 1 {
				sb.WriteString(strconv.FormatInt(abs, 10))
			}
			sb.WriteByte('t')
			if i > 1 {
				sb.WriteByte('^')
				sb.WriteString(strconv.Itoa(i))
			}
		}
	}

	return sb.String()
}

// trim drops trailing zeros, taking ownership of out.
func trim(out []int64) Poly {
	n := len(out)
	for n > 0 && out[n-1] == 0 {
		n--
	}

	return Poly{coeffs: out[:n]}
}
