// Package series: this file declares the public result type and the
// sentinel errors returned by the entry points in series.go.
package series

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hilbert/poly"
)

// Sentinel errors for input validation.
var (
	// ErrNumVars indicates a negative ring variable count.
	ErrNumVars = errors.New("series: number of variables must be non-negative")

	// ErrVarOutOfRange indicates a generator mentioning a variable index
	// outside [0, numVars).
	ErrVarOutOfRange = errors.New("series: generator variable index out of range")

	// ErrGradingLength indicates a grading vector whose length differs from
	// the number of ring variables.
	ErrGradingLength = errors.New("series: grading length must equal number of variables")

	// ErrBadWeight indicates a grading weight that is zero or negative.
	ErrBadWeight = errors.New("series: grading weights must be positive")
)

// Series is a Hilbert–Poincaré rational series: Numerator / Denominator,
// with Denominator = Π (1 − t^{Weights[i]}) over all ring variables and
// both parts sign-normalized so the denominator's leading coefficient is
// positive.
type Series struct {
	// Numerator is the (possibly negated) first Hilbert series.
	Numerator poly.Poly

	// Denominator is the grading denominator, leading coefficient positive.
	Denominator poly.Poly

	// Weights is the grading actually used: the caller's vector, or the
	// uniform all-ones vector when the caller passed nil.
	Weights []int
}

// String renders the rational series as "(numerator) / (denominator)".
// Debug surface only.
func (s Series) String() string {
	return fmt.Sprintf("(%s) / (%s)", s.Numerator, s.Denominator)
}
