package monomial_test

import (
	"fmt"

	"github.com/katalvlaran/hilbert/monomial"
)

// ExampleMonomial_Divides demonstrates divisibility between sparse
// exponent vectors: x0*x1 divides x0^2*x1*x2 but not x0^2.
func ExampleMonomial_Divides() {
	xy := monomial.MustNew(monomial.Term{Var: 0, Exp: 1}, monomial.Term{Var: 1, Exp: 1})
	big := monomial.MustNew(
		monomial.Term{Var: 0, Exp: 2},
		monomial.Term{Var: 1, Exp: 1},
		monomial.Term{Var: 2, Exp: 1},
	)
	x2 := monomial.MustNew(monomial.Term{Var: 0, Exp: 2})

	fmt.Println(xy.Divides(big))
	fmt.Println(xy.Divides(x2))
	// Output:
	// true
	// false
}

// ExampleMonomial_Colon demonstrates the colon quotient a / gcd(a,b):
// only the positive exponent differences survive.
func ExampleMonomial_Colon() {
	a := monomial.MustNew(monomial.Term{Var: 0, Exp: 3}, monomial.Term{Var: 1, Exp: 1})
	b := monomial.MustNew(monomial.Term{Var: 0, Exp: 1}, monomial.Term{Var: 1, Exp: 4})

	fmt.Println(a.Colon(b))
	// Output:
	// x0^2
}

// ExampleMonomial_Degree demonstrates weighted total degree under an
// explicit grading vector.
func ExampleMonomial_Degree() {
	m := monomial.MustNew(monomial.Term{Var: 0, Exp: 2}, monomial.Term{Var: 1, Exp: 1})

	fmt.Println(m.Degree(nil))         // uniform grading
	fmt.Println(m.Degree([]int{2, 3})) // deg x0 = 2, deg x1 = 3
	// Output:
	// 3
	// 7
}
