// SPDX-License-Identifier: MIT
// Package sdp: sentinel error set (unified, consistent).
// Solve outcomes other than optimality are reported through these sentinels
// so that callers branch with errors.Is instead of parsing status strings.

package sdp

import "errors"

var (
	// ErrBadProblem is returned when a Problem fails structural validation:
	// nil or mis-shaped objective, missing cone constraints, conflicting or
	// duplicated equality constraints, non-Hermitian fixed blocks.
	ErrBadProblem = errors.New("sdp: malformed problem")

	// ErrInfeasible signals that the solver certified primal infeasibility:
	// no X satisfies the constraints.
	ErrInfeasible = errors.New("sdp: problem is infeasible")

	// ErrUnbounded signals that the solver certified dual infeasibility,
	// i.e. the objective is unbounded in the optimization direction.
	ErrUnbounded = errors.New("sdp: objective is unbounded")

	// ErrSolverFailure covers everything else that prevents a trustworthy
	// optimum: iteration limit, numerical breakdown, unknown termination.
	ErrSolverFailure = errors.New("sdp: solver failed to converge")
)
