// Package sdp models a narrow class of complex semidefinite programs and
// solves them through an interior-point cone LP backend.
//
// A Problem has exactly one matrix variable X (general rectangular or
// constrained Hermitian), a linear objective Re Tr(C†·X), and constraints of
// three kinds:
//
//   - BlockPSD(A, B) — the block matrix ⎡A  X⎤ must be PSD
//     ⎣X† B⎦
//   - VarPSD()       — X itself must be PSD (Hermitian problems only)
//   - VarEquals(M)   — X is pinned to a fixed matrix
//
// The bundled ConeSolver lowers a Problem to the real cone program
//
//	minimize c'x  subject to  Gx + s = h,  s ⪰ 0,  Ax = b
//
// via the real embedding E(A+iB) = [[A,−B],[B,A]] and delegates the solve
// to github.com/hrautila/cvx. Alternative backends implement the Solver
// interface; tests use it to stub solver behavior.
//
// Status outcomes map to sentinel errors: ErrInfeasible, ErrUnbounded, and
// ErrSolverFailure, all matched with errors.Is.
package sdp
