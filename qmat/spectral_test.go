package qmat_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantalg/qfid/qmat"
)

func TestEigvalsHermitian_PauliY(t *testing.T) {
	y := mustDense(t, 2, 2, []complex128{0, -1i, 1i, 0})

	vals, err := qmat.EigvalsHermitian(y)
	require.NoError(t, err)
	require.Len(t, vals, 2)
	assert.InDelta(t, -1, vals[0], 1e-12)
	assert.InDelta(t, 1, vals[1], 1e-12)
}

func TestEigvalsHermitian_DiagonalSorted(t *testing.T) {
	m := mustDense(t, 3, 3, []complex128{3, 0, 0, 0, 1, 0, 0, 0, 2})

	vals, err := qmat.EigvalsHermitian(m)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 2, 3}, vals, 1e-12)
}

func TestEigvalsHermitian_Errors(t *testing.T) {
	_, err := qmat.EigvalsHermitian(nil)
	assert.ErrorIs(t, err, qmat.ErrNilMatrix)

	rect := mustDense(t, 1, 2, []complex128{1, 2})
	_, err = qmat.EigvalsHermitian(rect)
	assert.ErrorIs(t, err, qmat.ErrNonSquare)
}

func TestSqrtPSD_Diagonal(t *testing.T) {
	m := mustDense(t, 2, 2, []complex128{4, 0, 0, 9})

	sq, err := qmat.SqrtPSD(m, 1e-9)
	require.NoError(t, err)
	assertMatEqual(t, mustDense(t, 2, 2, []complex128{2, 0, 0, 3}), sq, 1e-9)
}

func TestSqrtPSD_SquaresBack(t *testing.T) {
	// A projector is its own square root.
	rho, err := qmat.PureState([]complex128{1, 0, 0, 1})
	require.NoError(t, err)

	sq, err := qmat.SqrtPSD(rho, 1e-9)
	require.NoError(t, err)
	prod, err := qmat.Mul(sq, sq)
	require.NoError(t, err)
	assertMatEqual(t, rho, prod, 1e-9)

	// And for a generic Hermitian PSD matrix with complex entries.
	h := mustDense(t, 2, 2, []complex128{2, 1i, -1i, 2})
	sq, err = qmat.SqrtPSD(h, 1e-9)
	require.NoError(t, err)
	prod, err = qmat.Mul(sq, sq)
	require.NoError(t, err)
	assertMatEqual(t, h, prod, 1e-9)
}

func TestSqrtPSD_RejectsIndefinite(t *testing.T) {
	m := mustDense(t, 2, 2, []complex128{1, 0, 0, -1})
	_, err := qmat.SqrtPSD(m, 1e-9)
	assert.ErrorIs(t, err, qmat.ErrNotPSD)
}

func TestTraceNorm(t *testing.T) {
	y := mustDense(t, 2, 2, []complex128{0, -1i, 1i, 0})
	norm, err := qmat.TraceNorm(y)
	require.NoError(t, err)
	assert.InDelta(t, 2, norm, 1e-12)

	m := mustDense(t, 3, 3, []complex128{1, 0, 0, 0, -2, 0, 0, 0, 3})
	norm, err = qmat.TraceNorm(m)
	require.NoError(t, err)
	assert.InDelta(t, 6, norm, 1e-12)

	// Rectangular input: singular values of [[3, 4]] are {5}.
	rect := mustDense(t, 1, 2, []complex128{3, 4})
	norm, err = qmat.TraceNorm(rect)
	require.NoError(t, err)
	assert.InDelta(t, 5, norm, 1e-12)
}

func TestSupportIsometry_RankTwo(t *testing.T) {
	m := mustDense(t, 4, 4, []complex128{
		0.5, 0, 0, 0,
		0, 0.5, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	})

	u, err := qmat.SupportIsometry(m, 1e-9)
	require.NoError(t, err)
	require.Equal(t, 4, u.Rows())
	require.Equal(t, 2, u.Cols())
	assertIsometry(t, u)

	// The compression U†·m·U must be 0.5·I on the support.
	comp := compress(t, u, m)
	assertMatEqual(t, mustDense(t, 2, 2, []complex128{0.5, 0, 0, 0.5}), comp, 1e-9)
}

func TestSupportIsometry_FullRank(t *testing.T) {
	m, err := qmat.MaxMixed(3)
	require.NoError(t, err)

	u, err := qmat.SupportIsometry(m, 1e-9)
	require.NoError(t, err)
	assert.Equal(t, 3, u.Cols())
	assertIsometry(t, u)
}

func TestSupportIsometry_ComplexPureState(t *testing.T) {
	rho, err := qmat.PureState([]complex128{1, 1i})
	require.NoError(t, err)

	u, err := qmat.SupportIsometry(rho, 1e-9)
	require.NoError(t, err)
	require.Equal(t, 1, u.Cols())
	assertIsometry(t, u)

	comp := compress(t, u, rho)
	v, err := comp.At(0, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0, cmplx.Abs(v-1), 1e-9, "rank-one compression must be [[1]]")
}

func TestSupportIsometry_ZeroMatrix(t *testing.T) {
	z, err := qmat.NewDense(3, 3)
	require.NoError(t, err)
	_, err = qmat.SupportIsometry(z, 1e-9)
	assert.ErrorIs(t, err, qmat.ErrZeroVector)
}

// assertIsometry checks U†U = I within 1e-9.
func assertIsometry(t *testing.T, u *qmat.Dense) {
	t.Helper()
	ut, err := qmat.ConjTranspose(u)
	require.NoError(t, err)
	gram, err := qmat.Mul(ut, u)
	require.NoError(t, err)
	for i := 0; i < gram.Rows(); i++ {
		for j := 0; j < gram.Cols(); j++ {
			want := complex128(0)
			if i == j {
				want = 1
			}
			v, err := gram.At(i, j)
			require.NoError(t, err)
			assert.InDelta(t, 0, cmplx.Abs(v-want), 1e-9, "gram(%d,%d)", i, j)
		}
	}
}

// compress computes U†·m·U.
func compress(t *testing.T, u, m *qmat.Dense) *qmat.Dense {
	t.Helper()
	ut, err := qmat.ConjTranspose(u)
	require.NoError(t, err)
	mu, err := qmat.Mul(m, u)
	require.NoError(t, err)
	out, err := qmat.Mul(ut, mu)
	require.NoError(t, err)
	return out
}

func TestEmbedUnembed_Roundtrip(t *testing.T) {
	m := mustDense(t, 2, 3, []complex128{1 + 2i, 0, -1i, 3, 4 - 5i, 2})

	e, err := qmat.Embed(m)
	require.NoError(t, err)
	er, ec := e.Dims()
	assert.Equal(t, 4, er)
	assert.Equal(t, 6, ec)

	back, err := qmat.Unembed(e)
	require.NoError(t, err)
	assertMatEqual(t, m, back, 0)
}

func TestUnembed_RejectsOddShape(t *testing.T) {
	_, err := qmat.Unembed(nil)
	assert.ErrorIs(t, err, qmat.ErrNilMatrix)
}

func TestEigvalsHermitian_MatchesTraceForDensity(t *testing.T) {
	rho, err := qmat.Mix(0.25, mixedState(t), pureZero(t))
	require.NoError(t, err)

	vals, err := qmat.EigvalsHermitian(rho)
	require.NoError(t, err)

	var sum float64
	for _, v := range vals {
		sum += v
	}
	assert.InDelta(t, 1, sum, 1e-12)
	assert.GreaterOrEqual(t, vals[0], -1e-12)
	assert.True(t, !math.IsNaN(vals[0]))
}
