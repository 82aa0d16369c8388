package qmat_test

import (
	"fmt"

	"github.com/quantalg/qfid/qmat"
)

// Eigenvalues of the Pauli Y matrix.
func ExampleEigvalsHermitian() {
	y, _ := qmat.NewDenseData(2, 2, []complex128{0, -1i, 1i, 0})
	vals, _ := qmat.EigvalsHermitian(y)
	fmt.Printf("%.3f %.3f\n", vals[0], vals[1])
	// Output: -1.000 1.000
}

// The PSD square root of a diagonal matrix is element-wise.
func ExampleSqrtPSD() {
	m, _ := qmat.NewDenseData(2, 2, []complex128{4, 0, 0, 9})
	sq, _ := qmat.SqrtPSD(m, 1e-9)
	a, _ := sq.At(0, 0)
	b, _ := sq.At(1, 1)
	fmt.Printf("%.3f %.3f\n", real(a), real(b))
	// Output: 2.000 3.000
}

// The trace norm sums singular values.
func ExampleTraceNorm() {
	y, _ := qmat.NewDenseData(2, 2, []complex128{0, -1i, 1i, 0})
	norm, _ := qmat.TraceNorm(y)
	fmt.Printf("%.3f\n", norm)
	// Output: 2.000
}

// A rank-two state on four dimensions compresses to a 4×2 isometry.
func ExampleSupportIsometry() {
	m, _ := qmat.NewDenseData(4, 4, []complex128{
		0.5, 0, 0, 0,
		0, 0.5, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	})
	u, _ := qmat.SupportIsometry(m, 1e-9)
	fmt.Println(u.Rows(), u.Cols())
	// Output: 4 2
}
