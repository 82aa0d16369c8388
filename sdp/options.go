// SPDX-License-Identifier: MIT
// Package sdp: functional options for the ConeSolver.
// Defaults live in constants; Option closures tweak a private options
// struct, gathered once per solver construction.

package sdp

import "github.com/rs/zerolog"

// DefaultMaxIter caps interior-point iterations. The backend's own default
// is applied when a non-positive value sneaks through, so this is explicit
// rather than load-bearing.
const DefaultMaxIter = 100

// options carries the resolved ConeSolver configuration.
type options struct {
	maxIter   int
	progress  bool
	kktSolver string
	logger    zerolog.Logger
}

// Option configures a ConeSolver.
type Option func(*options)

// WithMaxIter caps the number of interior-point iterations.
// Non-positive values are ignored in favor of DefaultMaxIter.
func WithMaxIter(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxIter = n
		}
	}
}

// WithProgress makes the backend print per-iteration progress to stdout.
// Useful when debugging convergence, noisy everywhere else.
func WithProgress() Option {
	return func(o *options) { o.progress = true }
}

// WithKKTSolver selects the backend's KKT solver by name (e.g. "ldl",
// "chol"). An empty name keeps the backend default.
func WithKKTSolver(name string) Option {
	return func(o *options) { o.kktSolver = name }
}

// WithLogger attaches a structured logger; solve lifecycles are traced at
// debug level. The default is a no-op logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// gatherOptions folds the user's options over the defaults.
func gatherOptions(opts ...Option) options {
	o := options{
		maxIter: DefaultMaxIter,
		logger:  zerolog.Nop(),
	}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
