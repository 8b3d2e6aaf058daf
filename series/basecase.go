package series

import (
	"github.com/katalvlaran/hilbert/ideal"
	"github.com/katalvlaran/hilbert/poly"
)

// closedForm answers the four generator families with a known first
// Hilbert series. The second result is false when the ideal fits none of
// them and the splitting engine must take over.
//
// Families, checked in order (id is interreduced, ascending by degree):
//  1. no generators              → 1
//  2. the ideal is the ring      → 0
//  3. pure variable powers only  → Π (1 − t^{deg g})
//  4. a single mixed generator m → Π_{g≠m} (1 − t^{deg g})
//     − t^{deg m} · Π_{g≠m} (1 − t^{deg(g : m)})
//
// Family 3 relies on interreduction: two pure powers of the same variable
// cannot both survive, so the factors are independent. Family 4 excludes m
// by its slice index, never by value.
func closedForm(id ideal.Ideal, w []int) (poly.Poly, bool) {
	k := id.Len()
	if k == 0 {
		return poly.One(), true
	}
	if id.ContainsUnit() {
		return poly.Zero(), true
	}

	// Locate mixed (support ≥ 2) generators; bail after the second.
	mixed := -1
	mixedCount := 0
	for i := 0; i < k; i++ {
		if id.Gen(i).Len() > 1 {
			mixed = i
			mixedCount++
			if mixedCount > 1 {
				return poly.Poly{}, false
			}
		}
	}

	if mixedCount == 0 {
		out := poly.One()
		for i := 0; i < k; i++ {
			out = out.Mul(poly.OneMinusT(id.Gen(i).Degree(w)))
		}

		return out, true
	}

	// One mixed generator m among pure powers.
	m := id.Gen(mixed)
	pure := poly.One()
	colon := poly.One()
	for i := 0; i < k; i++ {
		if i == mixed {
			continue
		}
		g := id.Gen(i)
		pure = pure.Mul(poly.OneMinusT(g.Degree(w)))
		colon = colon.Mul(poly.OneMinusT(g.ColonDegree(m, w)))
	}

	return pure.Sub(poly.T(m.Degree(w)).Mul(colon)), true
}
