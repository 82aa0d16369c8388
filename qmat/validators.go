// SPDX-License-Identifier: MIT
// Package qmat: centralized, fail-fast validators.
// Every public kernel funnels its precondition checks through this file so
// that error semantics stay uniform: validators return bare sentinels (or a
// sentinel wrapped with minimal context) and NEVER panic on user input.

package qmat

import (
	"math"
	"math/cmplx"
)

// ValidateNotNil ensures m is a usable matrix (non-nil with backing storage).
// Errors: ErrNilMatrix.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil || m.data == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateSquareNonNil ensures m is non-nil and square.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(1).
func ValidateSquareNonNil(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r != m.c {
		return ErrNonSquare
	}

	return nil
}

// ValidateBinarySameShape ensures a and b are non-nil and share a shape.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateBinarySameShape(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.r != b.r || a.c != b.c {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateMulCompatible ensures a and b are non-nil and a.Cols == b.Rows.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.c != b.r {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateFinite ensures every element of m has finite real and imaginary
// components. Constructors already enforce this at ingestion; ValidateFinite
// exists for matrices assembled element-by-element through other paths.
// Errors: ErrNilMatrix, ErrNaNInf.
// Complexity: O(r*c).
func ValidateFinite(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	for _, v := range m.data {
		if !isFinite(v) {
			return ErrNaNInf
		}
	}

	return nil
}

// ValidateHermitian ensures m is square and satisfies |m[i,j] - conj(m[j,i])|
// <= tol for every pair (i, j). A negative tol is treated as zero.
// Errors: ErrNilMatrix, ErrNonSquare, ErrNotHermitian.
// Complexity: O(n²).
func ValidateHermitian(m *Dense, tol float64) error {
	if err := ValidateSquareNonNil(m); err != nil {
		return err
	}
	if tol < 0 || math.IsNaN(tol) {
		tol = 0
	}

	var i, j int
	for i = 0; i < m.r; i++ {
		for j = i; j < m.c; j++ {
			d := m.data[i*m.c+j] - cmplx.Conj(m.data[j*m.c+i])
			if cmplx.Abs(d) > tol {
				return ErrNotHermitian
			}
		}
	}

	return nil
}

// ValidateDensity ensures m is a density matrix within tol: Hermitian,
// positive semidefinite (λ_min >= -tol), and Tr(m) within tol of 1.
// Implementation:
//   - Stage 1: structural checks (non-nil, square, finite, Hermitian).
//   - Stage 2: trace check against 1.
//   - Stage 3: spectrum check via the real-embedding eigensolver.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNaNInf, ErrNotHermitian,
// ErrNotDensity (trace or PSD violation), ErrEigenFailed.
// Complexity: O(n³) dominated by the eigensolve.
func ValidateDensity(m *Dense, tol float64) error {
	if err := ValidateFinite(m); err != nil {
		return err
	}
	if err := ValidateHermitian(m, tol); err != nil {
		return err
	}
	if tol < 0 || math.IsNaN(tol) {
		tol = 0
	}

	// Trace must be 1 within tol. Hermitian already holds, so the trace is
	// real up to noise; the imaginary part is covered by the Hermitian check.
	tr, err := Trace(m)
	if err != nil {
		return err
	}
	if math.Abs(real(tr)-1) > tol {
		return ErrNotDensity
	}

	// Smallest eigenvalue must be >= -tol.
	vals, err := EigvalsHermitian(m)
	if err != nil {
		return err
	}
	if vals[0] < -tol {
		return ErrNotDensity
	}

	return nil
}
