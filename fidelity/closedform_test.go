package fidelity_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantalg/qfid/fidelity"
	"github.com/quantalg/qfid/qmat"
)

func TestClosedForm_IdenticalStates(t *testing.T) {
	bell := bellState(t)
	f, err := fidelity.ClosedForm(bell, bell)
	require.NoError(t, err)
	assert.InDelta(t, 1, f, 1e-9)

	mixed, err := qmat.MaxMixed(3)
	require.NoError(t, err)
	f, err = fidelity.ClosedForm(mixed, mixed)
	require.NoError(t, err)
	assert.InDelta(t, 1, f, 1e-9)
}

func TestClosedForm_OrthogonalStates(t *testing.T) {
	rho := diagState(t, 1, 0)
	sigma := diagState(t, 0, 1)

	f, err := fidelity.ClosedForm(rho, sigma)
	require.NoError(t, err)
	assert.InDelta(t, 0, f, 1e-9)
}

func TestClosedForm_PureVersusMaxMixed(t *testing.T) {
	pure := diagState(t, 1, 0)
	mixed, err := qmat.MaxMixed(2)
	require.NoError(t, err)

	f, err := fidelity.ClosedForm(pure, mixed)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(0.5), f, 1e-9)
}

func TestClosedForm_DiagonalStates(t *testing.T) {
	// For commuting states F = Σ sqrt(p_i·q_i).
	rho := diagState(t, 0.75, 0.25)
	sigma := diagState(t, 0.25, 0.75)
	want := math.Sqrt(0.75*0.25) + math.Sqrt(0.25*0.75)

	f, err := fidelity.ClosedForm(rho, sigma)
	require.NoError(t, err)
	assert.InDelta(t, want, f, 1e-9)
}

func TestClosedForm_InvalidInputs(t *testing.T) {
	mixed, err := qmat.MaxMixed(2)
	require.NoError(t, err)

	_, err = fidelity.ClosedForm(nil, mixed)
	assert.ErrorIs(t, err, fidelity.ErrInvalidInput)

	id, err := qmat.Identity(2)
	require.NoError(t, err)
	_, err = fidelity.ClosedForm(id, mixed)
	assert.ErrorIs(t, err, fidelity.ErrInvalidInput)

	// With validation off, an indefinite input is caught at the square root.
	indefinite := diagState(t, 1.5, -0.5)
	_, err = fidelity.ClosedForm(indefinite, mixed, fidelity.WithNoValidation())
	assert.ErrorIs(t, err, fidelity.ErrInvalidInput)
	assert.ErrorIs(t, err, qmat.ErrNotPSD)
}
