// SPDX-License-Identifier: MIT
// Package qmat: canonical state constructors.
// These build the density matrices that show up in nearly every fidelity
// computation: the identity, the maximally mixed state, pure-state
// projectors, and convex mixtures of two states.

package qmat

import (
	"math"
	"math/cmplx"
)

// Identity returns the n×n identity matrix.
// Errors: ErrBadShape (n <= 0).
// Complexity: O(n²).
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// MaxMixed returns the maximally mixed state I/n of dimension n.
// It is the unique density matrix with a flat spectrum {1/n, ..., 1/n}.
// Errors: ErrBadShape (n <= 0).
// Complexity: O(n²).
func MaxMixed(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	p := complex(1/float64(n), 0)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = p
	}

	return m, nil
}

// PureState builds the rank-one projector |ψ⟩⟨ψ| / ⟨ψ|ψ⟩ from an amplitude
// vector psi. The vector need not be normalized; normalization happens here.
// Implementation:
//   - Stage 1: validate length, finiteness, and non-zero norm.
//   - Stage 2: form the outer product ψψ† scaled by 1/‖ψ‖².
//
// Errors: ErrBadShape (empty vector), ErrNaNInf, ErrZeroVector.
// Complexity: O(n²).
func PureState(psi []complex128) (*Dense, error) {
	n := len(psi)
	if n == 0 {
		return nil, ErrBadShape
	}

	var norm2 float64
	for _, v := range psi {
		if !isFinite(v) {
			return nil, ErrNaNInf
		}
		re, im := real(v), imag(v)
		norm2 += re*re + im*im
	}
	if norm2 == 0 {
		return nil, ErrZeroVector
	}

	m := &Dense{r: n, c: n, data: make([]complex128, n*n)}
	inv := complex(1/norm2, 0)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			m.data[i*n+j] = psi[i] * cmplx.Conj(psi[j]) * inv
		}
	}

	return m, nil
}

// Mix returns the convex mixture p·a + (1-p)·b of two same-shaped matrices.
// When a and b are density matrices and p ∈ [0,1], the result is again a
// density matrix.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrOutOfRange (p outside [0,1]
// or non-finite).
// Complexity: O(n²).
func Mix(p float64, a, b *Dense) (*Dense, error) {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return nil, ErrOutOfRange
	}
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, err
	}

	res := &Dense{r: a.r, c: a.c, data: make([]complex128, len(a.data))}
	cp, cq := complex(p, 0), complex(1-p, 0)
	for idx := range a.data {
		res.data[idx] = cp*a.data[idx] + cq*b.data[idx]
	}

	return res, nil
}
