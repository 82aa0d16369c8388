// SPDX-License-Identifier: MIT
// Package fidelity: sentinel error set.

package fidelity

import "errors"

// ErrInvalidInput is returned when an argument is not a usable density
// matrix: nil, non-square, mismatched dimensions, non-finite entries, or
// (with validation enabled) failing the Hermitian/PSD/trace-one checks.
// The wrapped cause from qmat is preserved for errors.Is.
var ErrInvalidInput = errors.New("fidelity: invalid input state")
