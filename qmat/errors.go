// SPDX-License-Identifier: MIT
// Package qmat: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the qmat
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel should panic on user-triggered error conditions;
// panics are reserved for programmer errors in private helpers (if any).

package qmat

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "qmat: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrBadShape is returned when a requested shape is invalid (r<=0 or c<=0).
	// Constructors must validate before allocation.
	ErrBadShape = errors.New("qmat: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("qmat: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add/Sub with different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("qmat: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("qmat: matrix is not square")

	// ErrNotHermitian signals that a matrix expected to satisfy A = A† violated
	// it within the configured tolerance.
	ErrNotHermitian = errors.New("qmat: matrix is not Hermitian within tol")

	// ErrNotPSD signals that a matrix expected to be positive semidefinite has
	// an eigenvalue below -tol.
	ErrNotPSD = errors.New("qmat: matrix is not positive semidefinite within tol")

	// ErrNotDensity signals that a matrix is not a density matrix within the
	// configured tolerance (Hermitian, PSD, and trace ≈ 1 are all required).
	ErrNotDensity = errors.New("qmat: matrix is not a density matrix within tol")

	// ErrNaNInf signals a NaN or ±Inf component where finite values are
	// required by the numeric policy (ingestion, Set, etc.).
	ErrNaNInf = errors.New("qmat: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("qmat: nil matrix")

	// ErrEigenFailed indicates that the underlying real symmetric eigensolver
	// or SVD did not converge on the embedded matrix.
	ErrEigenFailed = errors.New("qmat: eigen decomposition failed")

	// ErrZeroVector indicates that a state vector with zero norm was passed
	// where a normalizable state is required (PureState).
	ErrZeroVector = errors.New("qmat: zero state vector")
)
