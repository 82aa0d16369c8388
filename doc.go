// Package qfid evaluates quantum-state fidelity by posing the standard
// semidefinite program and delegating the conic solve to an external
// interior-point backend.
//
// 🚀 What is qfid?
//
//	A small, focused library that brings together:
//		• Complex density-matrix primitives: Hermitian checks, traces,
//		  conjugate transposes, real embeddings (qmat/)
//		• A minimal SDP boundary: one matrix variable, a linear Re-trace
//		  objective, block PSD and equality constraints, and a pluggable
//		  Solver backend (sdp/)
//		• The fidelity evaluator itself: the Watrous block-matrix SDP
//		  with support compression, plus the eigen-decomposition
//		  closed form ‖√ρ·√σ‖₁ for cross-validation (fidelity/)
//
// ✨ Why choose qfid?
//
//   - Minimal API, clear naming — two calls cover most uses:
//     fidelity.Fidelity and fidelity.ClosedForm
//   - The heavy lifting stays where it belongs: interior-point solving
//     in github.com/hrautila/cvx, spectra in gonum — qfid only builds
//     the programs and interprets the results
//   - Replaceable backend — any sdp.Solver can stand in for the
//     bundled cone solver, in tests or production
//
// Under the hood, everything is organized under three subpackages:
//
//	fidelity/ — the evaluator: SDP formulation, closed form, options
//	qmat/     — complex dense matrices, validators, spectral bridge
//	sdp/      — problem model, status taxonomy, cvx-backed ConeSolver
//
// The block-matrix program solved for two density matrices ρ and σ:
//
//	maximize   ½·Tr(X) + ½·Tr(X†)
//	subject to ⎡ρ  X⎤
//	           ⎣X† σ⎦  ⪰ 0
//
// whose optimum is the fidelity F(ρ,σ) = ‖√ρ·√σ‖₁ ∈ [0,1].
//
//	go get github.com/quantalg/qfid/fidelity
package qfid
