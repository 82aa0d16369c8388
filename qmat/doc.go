// Package qmat provides the complex dense-matrix primitives used by the
// fidelity evaluator: density matrices, conjugate transposes, traces, and
// a spectral bridge into gonum via the real embedding
//
//	E(A + iB) = ⎡A  −B⎤
//	            ⎣B   A⎦
//
// which turns every Hermitian eigenproblem and every singular-value
// computation on complex matrices into a real symmetric one that
// gonum.org/v1/gonum/mat solves directly (EigenSym, SVD). qmat never
// implements an eigensolver of its own.
//
// ✨ Key pieces:
//   - Dense — row-major complex128 matrix with O(1) indexing
//   - state constructors — Identity, MaxMixed, PureState, Mix
//   - validators — NotNil/Square/SameShape/Finite/Hermitian/Density,
//     all returning package sentinels matched via errors.Is
//   - spectral kernels — EigvalsHermitian, SqrtPSD, TraceNorm,
//     SupportIsometry (orthonormal basis of the numerical support)
//
// ⚙️ Usage:
//
//	rho, _ := qmat.PureState([]complex128{1, 0, 0, 1}) // |Φ+⟩⟨Φ+|
//	if err := qmat.ValidateDensity(rho, 1e-9); err != nil { ... }
//	sq, _ := qmat.SqrtPSD(rho, 1e-9)
//
// All operations are pure: operands are never mutated, results are freshly
// allocated, and loop orders are fixed for reproducibility.
package qmat
