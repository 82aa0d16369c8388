package sdp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantalg/qfid/qmat"
)

func TestBasis_Size(t *testing.T) {
	assert.Equal(t, 12, newBasis(2, 3, false).size())
	assert.Equal(t, 8, newBasis(2, 2, false).size())
	assert.Equal(t, 9, newBasis(3, 3, true).size())
	assert.Equal(t, 1, newBasis(1, 1, true).size())
}

func TestBasis_PairEnumeration(t *testing.T) {
	b := newBasis(3, 3, true)
	wantPairs := [][2]int{{0, 1}, {0, 2}, {1, 2}}
	for p, want := range wantPairs {
		i, j := b.pairAt(p)
		assert.Equal(t, want[0], i)
		assert.Equal(t, want[1], j)
	}
}

func TestBasis_RoundtripGeneral(t *testing.T) {
	b := newBasis(2, 3, false)
	m, err := qmat.NewDenseData(2, 3, []complex128{
		1 + 2i, -3, 0.5i,
		4, -1 - 1i, 2 + 0.25i,
	})
	require.NoError(t, err)

	back := b.matrixOf(b.paramsOf(m))
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			w, _ := m.At(i, j)
			g, _ := back.At(i, j)
			assert.Equal(t, w, g, "(%d,%d)", i, j)
		}
	}
}

func TestBasis_RoundtripHermitian(t *testing.T) {
	b := newBasis(2, 2, true)
	m, err := qmat.NewDenseData(2, 2, []complex128{
		1, 0.5 + 0.25i,
		0.5 - 0.25i, 2,
	})
	require.NoError(t, err)

	back := b.matrixOf(b.paramsOf(m))
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			w, _ := m.At(i, j)
			g, _ := back.At(i, j)
			assert.Equal(t, w, g, "(%d,%d)", i, j)
		}
	}
}

func TestBasis_ElementsSpanMatrixOf(t *testing.T) {
	// X(x) assembled from basis elements must agree with matrixOf.
	for _, b := range []basis{newBasis(2, 2, false), newBasis(3, 3, true)} {
		m := b.size()
		x := make([]float64, m)
		for k := range x {
			x[k] = float64(k+1) * 0.5
		}

		sum, err := qmat.NewDense(b.rows, b.cols)
		require.NoError(t, err)
		for k := 0; k < m; k++ {
			scaled, err := qmat.Scale(b.element(k), complex(x[k], 0))
			require.NoError(t, err)
			sum, err = qmat.Add(sum, scaled)
			require.NoError(t, err)
		}

		want := b.matrixOf(x)
		for i := 0; i < b.rows; i++ {
			for j := 0; j < b.cols; j++ {
				w, _ := want.At(i, j)
				g, _ := sum.At(i, j)
				assert.Equal(t, w, g, "hermitian=%v (%d,%d)", b.hermitian, i, j)
			}
		}
	}
}

func TestBasis_ObjectiveMatchesTraceForm(t *testing.T) {
	// g·x must equal Re Tr(C†·X(x)) for both parametrizations.
	cases := []struct {
		b basis
		c []complex128
	}{
		{newBasis(2, 2, false), []complex128{1 + 1i, -2, 0.5i, 3}},
		{newBasis(2, 2, true), []complex128{1, 2 - 1i, 0.5 + 0.25i, -1}},
	}
	for _, tc := range cases {
		c, err := qmat.NewDenseData(tc.b.rows, tc.b.cols, tc.c)
		require.NoError(t, err)

		x := make([]float64, tc.b.size())
		for k := range x {
			x[k] = 0.1*float64(k) - 0.3
		}

		g := tc.b.objective(c)
		var dot float64
		for k := range g {
			dot += g[k] * x[k]
		}

		// Direct evaluation of Re Tr(C†·X).
		xm := tc.b.matrixOf(x)
		ct, err := qmat.ConjTranspose(c)
		require.NoError(t, err)
		prod, err := qmat.Mul(ct, xm)
		require.NoError(t, err)
		tr, err := qmat.Trace(prod)
		require.NoError(t, err)

		assert.InDelta(t, real(tr), dot, 1e-12, "hermitian=%v", tc.b.hermitian)
	}
}
