package series

import (
	"github.com/katalvlaran/hilbert/ideal"
	"github.com/katalvlaran/hilbert/poly"
)

// evaluate computes the first Hilbert series of id by driving the
// closed-form solver and the splitting engine over an explicitly walked
// subproblem tree.
//
// The walk is a two-register state machine — the current node and the
// current result (or "no closed form yet") — with parent back-links
// instead of a call stack:
//
//   - no result yet          → split the node, descend into its left child
//   - at the root            → done
//   - finished a left child  → pure split: fold into the parent and keep
//     ascending; otherwise park the result on the
//     parent and descend into the right child
//   - finished a right child → combine both child results at the parent
//
// A child is released (the parent's link to it nilled) as soon as its result has
// been consumed, so live memory is O(traversal depth) while the full tree
// can be exponentially larger. No call-stack recursion anywhere.
func evaluate(id ideal.Ideal, w []int) poly.Poly {
	return evaluateFrom(&node{id: id}, w)
}

// evaluateFrom runs the walk from an externally built root node and
// returns the first Hilbert series of root.id.
func evaluateFrom(root *node, w []int) poly.Poly {
	an := root
	fhs, solved := closedForm(an.id, w)

	for {
		switch {
		case !solved:
			split(an, w)
			an = an.left
			fhs, solved = closedForm(an.id, w)

		case an.back == nil:
			return fhs

		case an == an.back.left:
			if an.back.right == nil {
				// Pure split: one factor, one child.
				an = an.back
				fhs = fhs.Mul(an.lMult)
				an.left = nil
			} else {
				parent := an.back
				parent.leftFHS = fhs
				parent.left = nil
				an = parent.right
				fhs, solved = closedForm(an.id, w)
			}

		default: // an is the right child
			an = an.back
			fhs = an.lMult.Mul(an.leftFHS).Add(an.rMult.Mul(fhs))
			an.right = nil
		}
	}
}
