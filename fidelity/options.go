// SPDX-License-Identifier: MIT
// Package fidelity: functional options.
// Defaults live in constants; Option closures tweak a private options
// struct gathered once per call.

package fidelity

import (
	"github.com/rs/zerolog"

	"github.com/quantalg/qfid/sdp"
)

const (
	// DefaultTolerance bounds the acceptable numerical drift everywhere a
	// tolerance is needed: Hermitian and trace checks, PSD eigenvalue
	// clamping, and the final clamp of the result into [0, 1].
	DefaultTolerance = 1e-6

	// DefaultSupportTolerance separates support eigenvalues from numerical
	// zeros when compressing states onto their supports.
	DefaultSupportTolerance = 1e-9
)

// options carries the resolved per-call configuration.
type options struct {
	tol        float64
	supportTol float64
	validate   bool
	solver     sdp.Solver
	logger     zerolog.Logger
}

// Option configures a fidelity evaluation.
type Option func(*options)

// WithTolerance overrides DefaultTolerance. Non-positive and non-finite
// values are ignored.
func WithTolerance(tol float64) Option {
	return func(o *options) {
		if tol > 0 {
			o.tol = tol
		}
	}
}

// WithSupportTolerance overrides DefaultSupportTolerance, the eigenvalue
// cutoff for the support compression. Non-positive values are ignored.
func WithSupportTolerance(tol float64) Option {
	return func(o *options) {
		if tol > 0 {
			o.supportTol = tol
		}
	}
}

// WithValidation toggles the full density-matrix validation of the inputs
// (Hermitian, PSD, unit trace). On by default.
func WithValidation(on bool) Option {
	return func(o *options) { o.validate = on }
}

// WithNoValidation skips the density-matrix validation. Structural checks
// (nil, shape, finiteness) always run.
func WithNoValidation() Option {
	return func(o *options) { o.validate = false }
}

// WithSolver substitutes the SDP backend. The default is a fresh
// sdp.NewConeSolver sharing the configured logger.
func WithSolver(s sdp.Solver) Option {
	return func(o *options) {
		if s != nil {
			o.solver = s
		}
	}
}

// WithLogger attaches a structured logger; evaluations are traced at debug
// level. The default is a no-op logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// gatherOptions folds the user's options over the defaults. The solver is
// resolved last so a custom logger reaches the default backend.
func gatherOptions(opts ...Option) options {
	o := options{
		tol:        DefaultTolerance,
		supportTol: DefaultSupportTolerance,
		validate:   true,
		logger:     zerolog.Nop(),
	}
	for _, fn := range opts {
		fn(&o)
	}
	if o.solver == nil {
		o.solver = sdp.NewConeSolver(sdp.WithLogger(o.logger))
	}

	return o
}
