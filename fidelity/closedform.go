// SPDX-License-Identifier: MIT
// Package fidelity: the eigendecomposition evaluator.
// ClosedForm avoids the SDP entirely: F(ρ, σ) = ‖√ρ·√σ‖₁ follows from two
// PSD square roots and one trace norm. It shares validation, tolerance,
// and clamping semantics with Fidelity, which makes the two evaluators
// directly comparable in tests.

package fidelity

import (
	"errors"
	"fmt"

	"github.com/quantalg/qfid/qmat"
)

// ClosedForm computes F(rho, sigma) = ‖√rho·√sigma‖₁ by eigendecomposition.
// The solver options (WithSolver, WithMaxIter) are irrelevant here; the
// shared ones (tolerance, validation, logger) apply unchanged.
// Errors: ErrInvalidInput, qmat.ErrEigenFailed.
// Complexity: O(n³).
func ClosedForm(rho, sigma *qmat.Dense, opts ...Option) (float64, error) {
	o := gatherOptions(opts...)
	if err := checkInputs(rho, sigma, o); err != nil {
		return 0, err
	}

	sqRho, err := qmat.SqrtPSD(rho, o.tol)
	if err != nil {
		return 0, wrapSqrtErr("rho", err)
	}
	sqSigma, err := qmat.SqrtPSD(sigma, o.tol)
	if err != nil {
		return 0, wrapSqrtErr("sigma", err)
	}

	prod, err := qmat.Mul(sqRho, sqSigma)
	if err != nil {
		return 0, err
	}
	norm, err := qmat.TraceNorm(prod)
	if err != nil {
		return 0, err
	}

	o.logger.Debug().Float64("value", norm).Msg("closed form evaluated")

	return clampUnit(norm, o.tol)
}

// wrapSqrtErr classifies square-root failures: a non-PSD input is the
// caller's fault (reachable only with validation disabled), anything else
// passes through untouched.
func wrapSqrtErr(name string, err error) error {
	if errors.Is(err, qmat.ErrNotPSD) {
		return fmt.Errorf("%w: %s: %w", ErrInvalidInput, name, err)
	}

	return err
}
