package series

import (
	"sort"

	"github.com/katalvlaran/hilbert/ideal"
	"github.com/katalvlaran/hilbert/monomial"
	"github.com/katalvlaran/hilbert/poly"
)

// node is one subproblem of the splitting tree. Children are uniquely
// owned by their parent and nilled out by the evaluator the moment their
// result has been consumed, so the live tree never exceeds the current
// traversal depth.
type node struct {
	// id is this subproblem's interreduced ideal.
	id ideal.Ideal

	// back points to the parent node; nil at the root.
	back *node

	// left and right are the owned subproblems created by split.
	// right stays nil on a pure split (one-sided combine).
	left  *node
	right *node

	// lMult and rMult are the combination multipliers of the governing
	// identity HS(I) = lMult·HS(left) + rMult·HS(right).
	lMult poly.Poly
	rMult poly.Poly

	// leftFHS caches the finished left result while the right subtree is
	// being evaluated.
	leftFHS poly.Poly
}

// weightOf returns the grading weight of variable j (1 under the uniform
// grading).
func weightOf(w []int, j int) int {
	if w == nil {
		return 1
	}

	return w[j]
}

// split chooses a cut monomial for n.id and attaches the subproblems and
// multipliers implied by HS(I) = HS(I + (f)) + t^{deg f}·HS(I : f).
// Called only when closedForm declined, so the ideal has ≥ 2 generators of
// mixed support. Every branch strictly shrinks the generator count or the
// total exponent mass, so the tree is finite.
//
// Heuristic (deterministic):
//   - m == 1 (squarefree, every variable occurs in at most one generator):
//     cut on the last variable of the highest-degree generator, which
//     detaches that generator from the rest.
//   - m > 1: cut on the first variable attaining the maximal accumulated
//     exponent, raised to the lower median of its positive exponents.
//     Three sub-shapes: the cut is itself a generator (pure split, no
//     right subtree), a proper power, or a single variable.
func split(n *node, w []int) {
	id := n.id
	k := id.Len()
	gens := id.Gens()

	// Accumulated exponent profile across all generators.
	total := monomial.Sum(gens)
	maxExp, j := 0, -1
	for _, t := range total.Terms() {
		if t.Exp > maxExp {
			maxExp, j = t.Exp, t.Var
		}
	}

	if maxExp == 1 {
		// Squarefree profile: the highest-degree generator is mixed (the
		// closed forms excluded everything else) and its last variable
		// occurs nowhere else in the ideal.
		last := gens[k-1]
		j = last.MaxVar()
		wj := weightOf(w, j)

		rest := id.WithoutIndex(k - 1)
		stripped, _ := last.DivideByVar(j)

		n.lMult = poly.OneMinusT(wj)
		n.left = &node{id: rest, back: n}
		n.rMult = poly.T(wj)
		n.right = &node{id: ideal.New(append(rest.Gens(), stripped)), back: n}

		return
	}

	// Lower median of the positive j-exponents.
	var exps []int
	for _, g := range gens {
		if e := g.Exp(j); e > 0 {
			exps = append(exps, e)
		}
	}
	sort.Ints(exps)
	e := exps[(len(exps)-1)/2]
	wj := weightOf(w, j)
	cut := monomial.MustNew(monomial.Term{Var: j, Exp: e})

	// The cut may be a generator itself: removing it and multiplying by
	// its factor is exact, because no other generator can touch xj then.
	for i, g := range gens {
		if g.Equal(cut) {
			n.lMult = poly.OneMinusT(e * wj)
			n.left = &node{id: id.WithoutIndex(i), back: n}

			return
		}
	}

	if e > 1 {
		n.lMult = poly.One()
		n.left = &node{id: ideal.New(append(gens, cut)), back: n}
		n.rMult = poly.T(e * wj)
		n.right = &node{id: id.Quotient(cut), back: n}

		return
	}

	// e == 1: cut on the bare variable. I + (xj) factors as
	// (1 - t^{wj}) times the generators avoiding xj.
	var avoid []monomial.Monomial
	for _, g := range gens {
		if g.Exp(j) == 0 {
			avoid = append(avoid, g)
		}
	}
	n.lMult = poly.OneMinusT(wj)
	n.left = &node{id: ideal.New(avoid), back: n}
	n.rMult = poly.T(wj)
	n.right = &node{id: id.QuotientByVar(j), back: n}
}
