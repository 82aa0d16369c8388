// SPDX-License-Identifier: MIT
// Package sdp: real parametrization of the complex matrix variable.
// The cone backend works over a real vector x ∈ R^m; basis fixes the
// bijection between x and the complex variable X. Parameter order is part
// of the package contract: objective gradients, constraint columns, and
// solution recovery all index through the same basis.

package sdp

import "github.com/quantalg/qfid/qmat"

// basis describes the parametrization of an r×c variable.
//
// General variable (m = 2rc):
//
//	k ∈ [0, rc)    — Re X[k/c, k%c]
//	k ∈ [rc, 2rc)  — Im X[(k-rc)/c, (k-rc)%c]
//
// Hermitian variable, r = c = n (m = n²):
//
//	k ∈ [0, n)          — X[k,k] (real diagonal)
//	k ∈ [n, n+P)        — symmetric pair: X[i,j] = X[j,i] = t
//	k ∈ [n+P, n+2P)     — antisymmetric pair: X[i,j] = it, X[j,i] = -it
//
// with P = n(n-1)/2 and pairs (i, j), i < j, enumerated row-major.
type basis struct {
	rows, cols int
	hermitian  bool
}

func newBasis(rows, cols int, hermitian bool) basis {
	return basis{rows: rows, cols: cols, hermitian: hermitian}
}

// size returns the number of real parameters m.
func (b basis) size() int {
	if b.hermitian {
		return b.rows * b.rows
	}

	return 2 * b.rows * b.cols
}

// pairAt maps a pair ordinal p ∈ [0, n(n-1)/2) to indices (i, j), i < j,
// in row-major enumeration order.
func (b basis) pairAt(p int) (int, int) {
	n := b.rows
	for i := 0; i < n-1; i++ {
		rowLen := n - 1 - i
		if p < rowLen {
			return i, i + 1 + p
		}
		p -= rowLen
	}
	panic("sdp: pair ordinal out of range")
}

// element returns the k-th basis matrix B_k, so that X = Σ x_k·B_k.
func (b basis) element(k int) *qmat.Dense {
	out, _ := qmat.NewDense(b.rows, b.cols)

	if !b.hermitian {
		rc := b.rows * b.cols
		if k < rc {
			_ = out.Set(k/b.cols, k%b.cols, 1)
		} else {
			k -= rc
			_ = out.Set(k/b.cols, k%b.cols, 1i)
		}

		return out
	}

	n := b.rows
	switch {
	case k < n:
		_ = out.Set(k, k, 1)
	case k < n+n*(n-1)/2:
		i, j := b.pairAt(k - n)
		_ = out.Set(i, j, 1)
		_ = out.Set(j, i, 1)
	default:
		i, j := b.pairAt(k - n - n*(n-1)/2)
		_ = out.Set(i, j, 1i)
		_ = out.Set(j, i, -1i)
	}

	return out
}

// objective returns the gradient g with g·x = Re Tr(C†·X(x)).
func (b basis) objective(c *qmat.Dense) []float64 {
	g := make([]float64, b.size())

	if !b.hermitian {
		rc := b.rows * b.cols
		for i := 0; i < b.rows; i++ {
			for j := 0; j < b.cols; j++ {
				v, _ := c.At(i, j)
				g[i*b.cols+j] = real(v)
				g[rc+i*b.cols+j] = imag(v)
			}
		}

		return g
	}

	n := b.rows
	p := n * (n - 1) / 2
	for i := 0; i < n; i++ {
		v, _ := c.At(i, i)
		g[i] = real(v)
	}
	for ord := 0; ord < p; ord++ {
		i, j := b.pairAt(ord)
		cij, _ := c.At(i, j)
		cji, _ := c.At(j, i)
		g[n+ord] = real(cij) + real(cji)
		g[n+p+ord] = imag(cij) - imag(cji)
	}

	return g
}

// matrixOf reconstructs the variable X from the parameter vector.
func (b basis) matrixOf(x []float64) *qmat.Dense {
	out, _ := qmat.NewDense(b.rows, b.cols)

	if !b.hermitian {
		rc := b.rows * b.cols
		for i := 0; i < b.rows; i++ {
			for j := 0; j < b.cols; j++ {
				_ = out.Set(i, j, complex(x[i*b.cols+j], x[rc+i*b.cols+j]))
			}
		}

		return out
	}

	n := b.rows
	p := n * (n - 1) / 2
	for i := 0; i < n; i++ {
		_ = out.Set(i, i, complex(x[i], 0))
	}
	for ord := 0; ord < p; ord++ {
		i, j := b.pairAt(ord)
		s, a := x[n+ord], x[n+p+ord]
		_ = out.Set(i, j, complex(s, a))
		_ = out.Set(j, i, complex(s, -a))
	}

	return out
}

// paramsOf projects a matrix onto the parameter vector; the inverse of
// matrixOf on its range. Non-Hermitian input to a Hermitian basis is
// symmetrized by the projection.
func (b basis) paramsOf(m *qmat.Dense) []float64 {
	x := make([]float64, b.size())

	if !b.hermitian {
		rc := b.rows * b.cols
		for i := 0; i < b.rows; i++ {
			for j := 0; j < b.cols; j++ {
				v, _ := m.At(i, j)
				x[i*b.cols+j] = real(v)
				x[rc+i*b.cols+j] = imag(v)
			}
		}

		return x
	}

	n := b.rows
	p := n * (n - 1) / 2
	for i := 0; i < n; i++ {
		v, _ := m.At(i, i)
		x[i] = real(v)
	}
	for ord := 0; ord < p; ord++ {
		i, j := b.pairAt(ord)
		vij, _ := m.At(i, j)
		vji, _ := m.At(j, i)
		x[n+ord] = (real(vij) + real(vji)) / 2
		x[n+p+ord] = (imag(vij) - imag(vji)) / 2
	}

	return x
}
