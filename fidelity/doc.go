// Package fidelity computes the Uhlmann fidelity of two density matrices.
//
// 🚀 What is fidelity?
//
//	F(ρ, σ) = ‖√ρ·√σ‖₁ ∈ [0, 1], with F = 1 iff ρ = σ and F = 0 iff the
//	states have orthogonal supports.
//
// Two evaluators are exposed:
//
//   - Fidelity — solves Watrous' semidefinite program
//
//     maximize   ½·Tr(X) + ½·Tr(X†)
//     subject to ⎡ρ  X⎤
//     ⎣X† σ⎦  ⪰ 0
//
//     through a pluggable sdp.Solver. Inputs are first compressed onto
//     their numerical supports, which keeps the program strictly feasible
//     even for pure states.
//
//   - ClosedForm — evaluates ‖√ρ·√σ‖₁ directly by eigendecomposition.
//     Faster, and the natural cross-check for the SDP path.
//
// ⚙️ Usage:
//
//	rho, _ := qmat.PureState([]complex128{1, 0, 0, 1})
//	sigma, _ := qmat.MaxMixed(4)
//	f, err := fidelity.Fidelity(rho, sigma)
//
// Validation is on by default: both inputs must be density matrices within
// the configured tolerance. Disable with WithNoValidation when the inputs
// are already trusted.
package fidelity
