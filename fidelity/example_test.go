package fidelity_test

import (
	"fmt"

	"github.com/quantalg/qfid/fidelity"
	"github.com/quantalg/qfid/qmat"
)

// Fidelity between a pure state and the maximally mixed qubit.
func ExampleFidelity() {
	rho, _ := qmat.PureState([]complex128{1, 0})
	sigma, _ := qmat.MaxMixed(2)

	f, _ := fidelity.Fidelity(rho, sigma)
	fmt.Printf("%.3f\n", f)
	// Output: 0.707
}

// The closed form agrees and needs no solver.
func ExampleClosedForm() {
	bell, _ := qmat.PureState([]complex128{1, 0, 0, 1})

	f, _ := fidelity.ClosedForm(bell, bell)
	fmt.Printf("%.3f\n", f)
	// Output: 1.000
}
