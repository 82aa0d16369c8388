// SPDX-License-Identifier: MIT
// Package qmat: the real embedding bridge.
// Every spectral computation in this module runs on real matrices via
//
//	E(A + iB) = ⎡A  −B⎤
//	            ⎣B   A⎦
//
// E is an injective *-homomorphism: E(MN) = E(M)E(N) and E(M†) = E(M)ᵀ.
// For Hermitian H, E(H) is real symmetric with the spectrum of H doubled,
// and H ⪰ 0 iff E(H) ⪰ 0. For general M the singular values of E(M) are
// those of M, each repeated twice.

package qmat

import "gonum.org/v1/gonum/mat"

// Embed returns the 2r×2c real embedding E(m) as a gonum dense matrix.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Embed(m *Dense) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	r, c := m.r, m.c
	out := mat.NewDense(2*r, 2*c, nil)
	var i, j int
	var v complex128
	var re, im float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v = m.data[i*c+j]
			re, im = real(v), imag(v)
			out.Set(i, j, re)        // top-left:     A
			out.Set(i, c+j, -im)     // top-right:   −B
			out.Set(r+i, j, im)      // bottom-left:  B
			out.Set(r+i, c+j, re)    // bottom-right: A
		}
	}

	return out, nil
}

// Unembed reconstructs an r×c complex matrix from a 2r×2c real matrix that
// is (approximately) of the embedded form. Floating-point drift between the
// redundant blocks is removed by averaging: A = (R₁₁+R₂₂)/2, B = (R₂₁−R₁₂)/2.
// Errors: ErrNilMatrix, ErrBadShape (odd dimensions).
// Complexity: O(r*c).
func Unembed(e *mat.Dense) (*Dense, error) {
	if e == nil {
		return nil, ErrNilMatrix
	}
	er, ec := e.Dims()
	if er%2 != 0 || ec%2 != 0 || er == 0 || ec == 0 {
		return nil, ErrBadShape
	}

	r, c := er/2, ec/2
	out := &Dense{r: r, c: c, data: make([]complex128, r*c)}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			a := (e.At(i, j) + e.At(r+i, c+j)) / 2
			b := (e.At(r+i, j) - e.At(i, c+j)) / 2
			out.data[i*c+j] = complex(a, b)
		}
	}

	return out, nil
}

// symEmbed builds E(m) as a gonum SymDense for a square Hermitian m.
// Only the upper triangle is written; SymDense mirrors it. The caller is
// responsible for m being square and Hermitian within tolerance, so the
// diagonal blocks carry Re(m) and the off-diagonal block −Im(m).
// Complexity: O(n²).
func symEmbed(m *Dense) *mat.SymDense {
	n := m.r
	out := mat.NewSymDense(2*n, nil)
	var i, j int
	var v complex128
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			v = m.data[i*n+j]
			out.SetSym(i, j, real(v))     // top-left block A, upper part
			out.SetSym(n+i, n+j, real(v)) // bottom-right block A
		}
		for j = 0; j < n; j++ {
			// Top-right block −B: for Hermitian m, B is antisymmetric, so
			// the full off-diagonal block lives in the upper triangle of E.
			out.SetSym(i, n+j, -imag(m.data[i*n+j]))
		}
	}

	return out
}
