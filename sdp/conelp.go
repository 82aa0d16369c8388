// SPDX-License-Identifier: MIT
// Package sdp: the cvx-backed cone solver.
// ConeSolver lowers a Problem to the conelp standard form
//
//	minimize c'x  subject to  Gx + s = h,  s in PSD cones,  Ax = b
//
// over the real parameters of the variable. Each PSD constraint becomes one
// 's' cone holding the real embedding of the complex block; equality pins
// the full parameter vector through A = I.

package sdp

import (
	"fmt"

	"github.com/hrautila/cvx"
	"github.com/hrautila/cvx/sets"
	"github.com/hrautila/matrix"

	"github.com/quantalg/qfid/qmat"
)

// ConeSolver solves Problems through github.com/hrautila/cvx's interior
// point ConeLp. Construct with NewConeSolver; the zero value works but
// carries no options.
type ConeSolver struct {
	opts options
}

// NewConeSolver returns a ConeSolver with the given options applied over
// the defaults (DefaultMaxIter iterations, silent, no-op logger).
func NewConeSolver(opts ...Option) *ConeSolver {
	return &ConeSolver{opts: gatherOptions(opts...)}
}

// Solve validates p, lowers it to conelp form, runs the backend, and maps
// the termination status back to the package's error taxonomy.
// Errors: ErrBadProblem, ErrInfeasible, ErrUnbounded, ErrSolverFailure.
func (s *ConeSolver) Solve(p *Problem) (*Result, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	bs := newBasis(p.Rows, p.Cols, p.Hermitian)
	m := bs.size()
	g := bs.objective(p.C)

	// conelp minimizes; flip the gradient for maximization.
	cdata := make([]float64, m)
	for k, v := range g {
		if p.Sense == Maximize {
			cdata[k] = -v
		} else {
			cdata[k] = v
		}
	}

	// First pass: cone dimensions and total row count of G/h.
	var sdims []int
	total := 0
	for _, con := range p.Constraints {
		var d int
		switch con.kind {
		case conBlockPSD:
			d = 2 * (p.Rows + p.Cols)
		case conVarPSD:
			d = 2 * p.Rows
		default:
			continue
		}
		sdims = append(sdims, d)
		total += d * d
	}

	// Second pass: stack h and the columns of G cone by cone. The backend
	// matrix type is column-major, so G's data is filled per parameter k.
	hdata := make([]float64, total)
	gdata := make([]float64, total*m)
	offset := 0
	for _, con := range p.Constraints {
		switch con.kind {
		case conBlockPSD:
			// Fixed part [[A, 0], [0, B]]; variable part [[0, Bk], [Bk†, 0]].
			fixed := buildBlock(hermitize(con.a), hermitize(con.b), nil, p.Rows, p.Cols)
			d2 := copyVec(hdata[offset:], embedVec(fixed))
			for k := 0; k < m; k++ {
				blk := buildBlock(nil, nil, bs.element(k), p.Rows, p.Cols)
				fillColumn(gdata, k*total+offset, embedVec(blk))
			}
			offset += d2
		case conVarPSD:
			// h part stays zero: X(x) - s = 0 with s ⪰ 0.
			d := 2 * p.Rows
			for k := 0; k < m; k++ {
				fillColumn(gdata, k*total+offset, embedVec(bs.element(k)))
			}
			offset += d * d
		}
	}

	// Equality Ax = b pins every parameter to the target's.
	var eqA, eqB *matrix.FloatMatrix
	for _, con := range p.Constraints {
		if con.kind == conVarEquals {
			eqA = matrix.FloatIdentity(m)
			eqB = matrix.FloatNew(m, 1, bs.paramsOf(con.target))
		}
	}

	dims := sets.DSetNew("l", "q", "s")
	dims.Set("s", sdims)

	solopts := &cvx.SolverOptions{
		MaxIter:       s.opts.maxIter,
		ShowProgress:  s.opts.progress,
		KKTSolverName: s.opts.kktSolver,
	}

	s.opts.logger.Debug().
		Str("sense", p.Sense.String()).
		Int("params", m).
		Ints("cones", sdims).
		Bool("equality", eqA != nil).
		Msg("lowered problem to conelp")

	sol, err := cvx.ConeLp(
		matrix.FloatNew(m, 1, cdata),
		matrix.FloatNew(total, m, gdata),
		matrix.FloatNew(total, 1, hdata),
		eqA, eqB, dims, solopts, nil, nil)
	if err != nil {
		s.opts.logger.Debug().Err(err).Msg("cone backend error")
		return nil, fmt.Errorf("%w: %v", ErrSolverFailure, err)
	}
	if sol == nil {
		return nil, ErrSolverFailure
	}

	switch sol.Status {
	case cvx.Optimal:
		// fall through to recovery
	case cvx.PrimalInfeasible:
		return nil, ErrInfeasible
	case cvx.DualInfeasible:
		return nil, ErrUnbounded
	default:
		return nil, fmt.Errorf("%w: status %v after %d iterations",
			ErrSolverFailure, sol.Status, sol.Iterations)
	}

	x := sol.Result.At("x")[0].FloatArray()
	if len(x) != m {
		return nil, fmt.Errorf("%w: backend returned %d parameters, want %d",
			ErrSolverFailure, len(x), m)
	}

	// Recompute the objective from the original gradient; immune to the
	// minimize/maximize sign flip.
	var value float64
	for k, v := range g {
		value += v * x[k]
	}

	s.opts.logger.Debug().
		Float64("value", value).
		Int("iterations", sol.Iterations).
		Msg("cone solve optimal")

	return &Result{
		Status:     StatusOptimal,
		Value:      value,
		X:          bs.matrixOf(x),
		Iterations: sol.Iterations,
	}, nil
}

// hermitize returns (a + a†)/2; the backend requires exactly symmetric
// s-cone blocks and validation only bounds drift.
func hermitize(a *qmat.Dense) *qmat.Dense {
	ad, _ := qmat.ConjTranspose(a)
	sum, _ := qmat.Add(a, ad)
	out, _ := qmat.Scale(sum, 0.5)

	return out
}

// buildBlock assembles [[a, x], [x†, b]] of complex size (r+c)×(r+c).
// Nil blocks are zero.
func buildBlock(a, b, x *qmat.Dense, r, c int) *qmat.Dense {
	n := r + c
	out, _ := qmat.NewDense(n, n)
	var i, j int
	if a != nil {
		for i = 0; i < r; i++ {
			for j = 0; j < r; j++ {
				v, _ := a.At(i, j)
				_ = out.Set(i, j, v)
			}
		}
	}
	if b != nil {
		for i = 0; i < c; i++ {
			for j = 0; j < c; j++ {
				v, _ := b.At(i, j)
				_ = out.Set(r+i, r+j, v)
			}
		}
	}
	if x != nil {
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				v, _ := x.At(i, j)
				_ = out.Set(i, r+j, v)
				re, im := real(v), imag(v)
				_ = out.Set(r+j, i, complex(re, -im))
			}
		}
	}

	return out
}

// embedVec returns vec(E(m)) in column-major order, the layout the backend
// expects for an 's' cone block.
func embedVec(m *qmat.Dense) []float64 {
	e, _ := qmat.Embed(m)
	r, c := e.Dims()
	out := make([]float64, r*c)
	var i, j int
	for j = 0; j < c; j++ {
		for i = 0; i < r; i++ {
			out[j*r+i] = e.At(i, j)
		}
	}

	return out
}

// copyVec copies src into dst and returns len(src).
func copyVec(dst, src []float64) int {
	copy(dst, src)

	return len(src)
}

// fillColumn writes -src into gdata starting at base (Gx + s = h keeps the
// slack equal to the embedded block, hence the sign).
func fillColumn(gdata []float64, base int, src []float64) {
	for idx, v := range src {
		gdata[base+idx] = -v
	}
}
