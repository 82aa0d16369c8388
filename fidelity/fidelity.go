// SPDX-License-Identifier: MIT
// Package fidelity: the SDP evaluator.
// Fidelity compresses both states onto their numerical supports, poses the
// block-matrix program over the compressed blocks, and hands it to the
// configured sdp.Solver. The compression keeps the program strictly
// feasible even when the inputs are rank deficient (pure states).

package fidelity

import (
	"fmt"
	"math"

	"github.com/quantalg/qfid/qmat"
	"github.com/quantalg/qfid/sdp"
)

// Fidelity computes F(rho, sigma) by semidefinite programming.
//
// Implementation:
//   - Stage 1: structural checks, then (unless disabled) full density
//     validation of both inputs.
//   - Stage 2: support compression. With U, V spanning the supports of rho
//     and sigma, the program over X′ = U†·X·V reads
//
//     maximize   Re Tr((U†V)†·X′)
//     subject to ⎡U†ρU   X′ ⎤
//     ⎣X′†   V†σV⎦  ⪰ 0
//
//     and shares its optimum with the full program. Orthogonal supports
//     short-circuit to 0 without a solve.
//   - Stage 3: solve, then clamp the optimum into [0, 1]. Drift beyond the
//     tolerance is a solver failure, not silently clamped.
//
// Errors: ErrInvalidInput, sdp.ErrInfeasible, sdp.ErrUnbounded,
// sdp.ErrSolverFailure.
// Complexity: O(n³) preprocessing plus the interior-point solve over the
// compressed dimensions.
func Fidelity(rho, sigma *qmat.Dense, opts ...Option) (float64, error) {
	o := gatherOptions(opts...)
	if err := checkInputs(rho, sigma, o); err != nil {
		return 0, err
	}

	u, err := qmat.SupportIsometry(rho, o.supportTol)
	if err != nil {
		return 0, fmt.Errorf("%w: rho support: %w", ErrInvalidInput, err)
	}
	v, err := qmat.SupportIsometry(sigma, o.supportTol)
	if err != nil {
		return 0, fmt.Errorf("%w: sigma support: %w", ErrInvalidInput, err)
	}

	rhoC, err := compressState(u, rho)
	if err != nil {
		return 0, err
	}
	sigmaC, err := compressState(v, sigma)
	if err != nil {
		return 0, err
	}

	// Objective C′ = U†V; its Frobenius norm vanishes exactly when the
	// supports are orthogonal, in which case F = 0 with no solve needed.
	ut, err := qmat.ConjTranspose(u)
	if err != nil {
		return 0, err
	}
	obj, err := qmat.Mul(ut, v)
	if err != nil {
		return 0, err
	}
	overlap, err := qmat.FrobeniusNorm(obj)
	if err != nil {
		return 0, err
	}
	if overlap <= o.supportTol {
		o.logger.Debug().
			Int("rank_rho", u.Cols()).
			Int("rank_sigma", v.Cols()).
			Msg("orthogonal supports, fidelity is 0")

		return 0, nil
	}

	p := &sdp.Problem{
		Sense:       sdp.Maximize,
		Rows:        u.Cols(),
		Cols:        v.Cols(),
		C:           obj,
		Constraints: []sdp.Constraint{sdp.BlockPSD(rhoC, sigmaC)},
	}

	o.logger.Debug().
		Int("dim", rho.Rows()).
		Int("rank_rho", u.Cols()).
		Int("rank_sigma", v.Cols()).
		Msg("solving fidelity program")

	res, err := o.solver.Solve(p)
	if err != nil {
		return 0, err
	}

	o.logger.Debug().
		Float64("value", res.Value).
		Int("iterations", res.Iterations).
		Msg("fidelity program solved")

	return clampUnit(res.Value, o.tol)
}

// checkInputs runs the structural checks that always apply, then the full
// density validation when enabled. All failures wrap ErrInvalidInput.
func checkInputs(rho, sigma *qmat.Dense, o options) error {
	for _, in := range []struct {
		name string
		m    *qmat.Dense
	}{{"rho", rho}, {"sigma", sigma}} {
		if err := qmat.ValidateSquareNonNil(in.m); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidInput, in.name, err)
		}
		if err := qmat.ValidateFinite(in.m); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidInput, in.name, err)
		}
	}
	if rho.Rows() != sigma.Rows() {
		return fmt.Errorf("%w: dimension mismatch %d vs %d",
			ErrInvalidInput, rho.Rows(), sigma.Rows())
	}
	if !o.validate {
		return nil
	}
	if err := qmat.ValidateDensity(rho, o.tol); err != nil {
		return fmt.Errorf("%w: rho: %w", ErrInvalidInput, err)
	}
	if err := qmat.ValidateDensity(sigma, o.tol); err != nil {
		return fmt.Errorf("%w: sigma: %w", ErrInvalidInput, err)
	}

	return nil
}

// compressState computes U†·m·U, the restriction of m to its support. The
// result is re-hermitized so that Hermitian drift in m (tolerated up to the
// evaluator tolerance) cannot leak into the solver's constraint blocks.
func compressState(u, m *qmat.Dense) (*qmat.Dense, error) {
	ut, err := qmat.ConjTranspose(u)
	if err != nil {
		return nil, err
	}
	mu, err := qmat.Mul(m, u)
	if err != nil {
		return nil, err
	}
	prod, err := qmat.Mul(ut, mu)
	if err != nil {
		return nil, err
	}
	adj, err := qmat.ConjTranspose(prod)
	if err != nil {
		return nil, err
	}
	sum, err := qmat.Add(prod, adj)
	if err != nil {
		return nil, err
	}

	return qmat.Scale(sum, 0.5)
}

// clampUnit forces v into [0, 1]. Drift within tol is clamped; anything
// beyond means the optimum cannot be trusted.
func clampUnit(v, tol float64) (float64, error) {
	if v < -tol || v > 1+tol {
		return 0, fmt.Errorf("%w: value %g outside [0,1] beyond tolerance %g",
			sdp.ErrSolverFailure, v, tol)
	}

	return math.Min(math.Max(v, 0), 1), nil
}
