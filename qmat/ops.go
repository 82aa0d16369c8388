// SPDX-License-Identifier: MIT
// Package qmat: universal operations on Dense matrices — element-wise
// addition and subtraction, matrix multiplication, conjugate transpose,
// scalar scaling, trace, and the Frobenius norm. All functions perform
// strict fail-fast validation through the central validators and return
// clear sentinel errors on dimension mismatches. Operands are never mutated.

package qmat

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd           = "Add"
	opSub           = "Sub"
	opMul           = "Mul"
	opConjTranspose = "ConjTranspose"
	opScale         = "Scale"
	opTrace         = "Trace"
	opFrobenius     = "FrobeniusNorm"
)

// qmatErrorf wraps err with an operation tag, preserving the original error
// via %w so errors.Is/As keep working. Call only when err != nil.
func qmatErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands
// are not mutated. Internal helper for Add/Sub to share validation.
// Complexity: Time O(r*c), Space O(r*c).
func addSub(a, b *Dense, sign complex128, opTag string) (*Dense, error) {
	// Validate shapes match
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, qmatErrorf(opTag, err)
	}

	// Allocate result and run a single flat loop in fixed 0..n-1 order.
	res := &Dense{r: a.r, c: a.c, data: make([]complex128, len(a.data))}
	for idx := range a.data {
		res.data[idx] = a.data[idx] + sign*b.data[idx]
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense.
// Errors: ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
// Complexity: Time O(r*c), Space O(r*c).
func Add(a, b *Dense) (*Dense, error) { return addSub(a, b, 1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense.
// Errors: ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
// Complexity: Time O(r*c), Space O(r*c).
func Sub(a, b *Dense) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A, B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: Fixed i→k→j loop order with row-major strides, skipping
//     zero A[i,k] entries.
//
// Errors: ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
// Complexity: Time O(r*n*c), Space O(r*c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, qmatErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.r, a.c, b.c
	res := &Dense{r: aRows, c: bCols, data: make([]complex128, aRows*bCols)}

	var i, j, k int
	var av complex128
	var rowA, rowB, rowR int
	for i = 0; i < aRows; i++ {
		rowA = i * aCols
		rowR = i * bCols
		for k = 0; k < aCols; k++ {
			av = a.data[rowA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowR+j] += av * b.data[rowB+j]
			}
		}
	}

	return res, nil
}

// ConjTranspose returns the adjoint A† (conjugate transpose) as a new matrix.
// This is the standard dagger operation: (A†)[i,j] = conj(A[j,i]).
// The original matrix is never mutated.
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func ConjTranspose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, qmatErrorf(opConjTranspose, err)
	}

	res := &Dense{r: m.c, c: m.r, data: make([]complex128, len(m.data))}
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			// data[i*c + j] → res.data[j*r + i], conjugated
			res.data[j*m.r+i] = cmplx.Conj(m.data[base+j])
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// Errors: ErrNilMatrix, ErrNaNInf (non-finite alpha).
// Complexity: Time O(r*c), Space O(r*c).
func Scale(m *Dense, alpha complex128) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, qmatErrorf(opScale, err)
	}
	if !isFinite(alpha) {
		return nil, qmatErrorf(opScale, ErrNaNInf)
	}

	res := &Dense{r: m.r, c: m.c, data: make([]complex128, len(m.data))}
	for idx := range m.data {
		res.data[idx] = alpha * m.data[idx]
	}

	return res, nil
}

// Trace returns the sum of the diagonal elements of a square matrix.
// For a Hermitian matrix the result is real up to floating-point noise;
// Trace does not enforce that — it reports the exact complex sum.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: Time O(n), Space O(1).
func Trace(m *Dense) (complex128, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, qmatErrorf(opTrace, err)
	}

	var sum complex128
	for i := 0; i < m.r; i++ {
		sum += m.data[i*m.c+i]
	}

	return sum, nil
}

// FrobeniusNorm returns ‖M‖_F = sqrt(Σ |m[i,j]|²).
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(1).
func FrobeniusNorm(m *Dense) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, qmatErrorf(opFrobenius, err)
	}

	var sum float64
	for _, v := range m.data {
		re, im := real(v), imag(v)
		sum += re*re + im*im
	}

	return math.Sqrt(sum), nil
}
