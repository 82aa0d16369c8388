// SPDX-License-Identifier: MIT
// Package qmat: spectral kernels over the real embedding.
// All eigen and singular-value work is delegated to gonum's symmetric
// eigensolver and SVD on E(m); the complex-side results are recovered from
// the doubled real spectrum. No eigensolver is implemented here.

package qmat

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// mgsTol separates "still spans new directions" from "numerically zero" in
// the support-basis extraction. The candidate frame guarantees residual
// norms of at least 1/sqrt(rank) before the basis is complete, so any value
// far below that and far above machine epsilon works.
const mgsTol = 1e-7

// EigvalsHermitian returns the eigenvalues of a Hermitian matrix in
// ascending order. The matrix is assumed Hermitian; run ValidateHermitian
// first when the input comes from outside.
// Implementation: the spectrum of E(m) is that of m with every eigenvalue
// doubled, so adjacent pairs of the real symmetric spectrum are averaged.
// Errors: ErrNilMatrix, ErrNonSquare, ErrEigenFailed.
// Complexity: O(n³).
func EigvalsHermitian(m *Dense) ([]float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, err
	}

	var es mat.EigenSym
	if !es.Factorize(symEmbed(m), false) {
		return nil, ErrEigenFailed
	}
	vals := es.Values(nil) // ascending, length 2n

	n := m.r
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = (vals[2*i] + vals[2*i+1]) / 2
	}

	return out, nil
}

// SqrtPSD returns the unique positive semidefinite square root of a
// Hermitian PSD matrix. Eigenvalues in [-tol, 0) are clamped to zero;
// an eigenvalue below -tol makes the input non-PSD and is an error.
// Implementation: √E(m) = E(√m), so the root is formed in the real
// embedding as V·diag(√λ)·Vᵀ and mapped back with block averaging.
// Errors: ErrNilMatrix, ErrNonSquare, ErrNotPSD, ErrEigenFailed.
// Complexity: O(n³).
func SqrtPSD(m *Dense, tol float64) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, err
	}
	if tol < 0 || math.IsNaN(tol) {
		tol = 0
	}

	var es mat.EigenSym
	if !es.Factorize(symEmbed(m), true) {
		return nil, ErrEigenFailed
	}
	vals := es.Values(nil)
	if vals[0] < -tol {
		return nil, ErrNotPSD
	}
	var vecs mat.Dense
	es.VectorsTo(&vecs)

	// scaled[:,k] = sqrt(max(λ_k, 0)) * V[:,k]
	d := 2 * m.r
	scaled := mat.NewDense(d, d, nil)
	var i, k int
	for k = 0; k < d; k++ {
		s := math.Sqrt(math.Max(vals[k], 0))
		for i = 0; i < d; i++ {
			scaled.Set(i, k, s*vecs.At(i, k))
		}
	}
	var root mat.Dense
	root.Mul(scaled, vecs.T())

	return Unembed(&root)
}

// TraceNorm returns ‖m‖₁, the sum of the singular values of m.
// Implementation: the singular values of E(m) are those of m doubled, so
// the real SVD sum is halved.
// Errors: ErrNilMatrix, ErrEigenFailed.
// Complexity: O(min(r,c)·r·c) for the SVD on the embedding.
func TraceNorm(m *Dense) (float64, error) {
	e, err := Embed(m)
	if err != nil {
		return 0, err
	}

	var svd mat.SVD
	if !svd.Factorize(e, mat.SVDNone) {
		return 0, ErrEigenFailed
	}

	var sum float64
	for _, s := range svd.Values(nil) {
		sum += s
	}

	return sum / 2, nil
}

// SupportIsometry returns an n×r matrix U with orthonormal columns spanning
// the support of a Hermitian PSD matrix, where the support collects the
// eigenvectors with eigenvalue above tol. U satisfies U†U = I_r, and
// U†·m·U is the restriction of m to its support.
//
// Implementation:
//   - Stage 1: eigendecompose E(m); eigenvectors with λ > tol come in pairs
//     w = [x; y] that map to complex candidates z = x + iy.
//   - Stage 2: the candidates form a tight frame over the support
//     (Σ zz† = 2P), so a pivoted modified Gram–Schmidt sweep extracts an
//     orthonormal basis: residual norms stay at 1/√r or above until the
//     basis is complete, then collapse to roundoff. Pivot selection is by
//     largest residual norm, ties broken by lowest candidate index, which
//     keeps the output deterministic.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrEigenFailed, ErrZeroVector (no
// eigenvalue above tol, i.e. the matrix is numerically zero).
// Complexity: O(n³).
func SupportIsometry(m *Dense, tol float64) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, err
	}
	if tol < 0 || math.IsNaN(tol) {
		tol = 0
	}

	n := m.r
	var es mat.EigenSym
	if !es.Factorize(symEmbed(m), true) {
		return nil, ErrEigenFailed
	}
	vals := es.Values(nil)
	var vecs mat.Dense
	es.VectorsTo(&vecs)

	// Collect complex candidates from the above-threshold eigenvectors.
	cands := make([][]complex128, 0, 2*n)
	var i, k int
	for k = 0; k < 2*n; k++ {
		if vals[k] <= tol {
			continue
		}
		z := make([]complex128, n)
		for i = 0; i < n; i++ {
			z[i] = complex(vecs.At(i, k), vecs.At(n+i, k))
		}
		cands = append(cands, z)
	}
	if len(cands) == 0 {
		return nil, ErrZeroVector
	}

	// Pivoted modified Gram–Schmidt over the candidate frame.
	basis := make([][]complex128, 0, len(cands)/2+1)
	for len(basis) < n {
		best, bestNorm := -1, mgsTol
		for j, z := range cands {
			if z == nil {
				continue
			}
			if nz := vecNorm(z); nz > bestNorm {
				best, bestNorm = j, nz
			}
		}
		if best < 0 {
			break // remaining candidates are numerically zero
		}
		q := vecScale(cands[best], complex(1/bestNorm, 0))
		cands[best] = nil
		for _, z := range cands {
			if z == nil {
				continue
			}
			vecAxpy(z, q, -vecDot(q, z))
		}
		basis = append(basis, q)
	}

	r := len(basis)
	u := &Dense{r: n, c: r, data: make([]complex128, n*r)}
	for j, q := range basis {
		for i = 0; i < n; i++ {
			u.data[i*r+j] = q[i]
		}
	}

	return u, nil
}

// vecNorm returns the Euclidean norm of z.
func vecNorm(z []complex128) float64 {
	var sum float64
	for _, v := range z {
		re, im := real(v), imag(v)
		sum += re*re + im*im
	}

	return math.Sqrt(sum)
}

// vecDot returns ⟨q, z⟩ = Σ conj(q_i)·z_i.
func vecDot(q, z []complex128) complex128 {
	var sum complex128
	for i := range q {
		sum += cmplx.Conj(q[i]) * z[i]
	}

	return sum
}

// vecScale returns a fresh copy of alpha·z.
func vecScale(z []complex128, alpha complex128) []complex128 {
	out := make([]complex128, len(z))
	for i, v := range z {
		out[i] = alpha * v
	}

	return out
}

// vecAxpy updates z in place to z + alpha·q.
func vecAxpy(z, q []complex128, alpha complex128) {
	for i := range z {
		z[i] += alpha * q[i]
	}
}
