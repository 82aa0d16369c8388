// SPDX-License-Identifier: MIT
// Package sdp: problem model.
// Problem is a declarative description of a one-variable complex SDP; it
// carries no solver state. Constraints are built with the BlockPSD, VarPSD,
// and VarEquals constructors and stay opaque outside the package.

package sdp

import (
	"fmt"

	"github.com/quantalg/qfid/qmat"
)

// Sense selects the optimization direction.
type Sense int

const (
	// Minimize the objective Re Tr(C†·X).
	Minimize Sense = iota
	// Maximize the objective Re Tr(C†·X).
	Maximize
)

// String implements fmt.Stringer.
func (s Sense) String() string {
	if s == Maximize {
		return "maximize"
	}

	return "minimize"
}

// Status reports the solver's termination classification.
type Status int

const (
	// StatusUnknown means the solver stopped without a certificate.
	StatusUnknown Status = iota
	// StatusOptimal means an optimal primal/dual pair was found.
	StatusOptimal
	// StatusInfeasible means primal infeasibility was certified.
	StatusInfeasible
	// StatusUnbounded means dual infeasibility was certified.
	StatusUnbounded
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusInfeasible:
		return "infeasible"
	case StatusUnbounded:
		return "unbounded"
	default:
		return "unknown"
	}
}

// conKind discriminates the constraint variants.
type conKind int

const (
	conBlockPSD conKind = iota
	conVarPSD
	conVarEquals
)

// Constraint is one condition imposed on the matrix variable X.
// Build values with BlockPSD, VarPSD, or VarEquals; the zero value is
// invalid and rejected by validation.
type Constraint struct {
	kind   conKind
	a, b   *qmat.Dense // fixed diagonal blocks for BlockPSD
	target *qmat.Dense // pinned value for VarEquals
}

// BlockPSD requires the block matrix [[a, X], [X†, b]] to be positive
// semidefinite. a must be Rows×Rows and b Cols×Cols, both Hermitian.
func BlockPSD(a, b *qmat.Dense) Constraint {
	return Constraint{kind: conBlockPSD, a: a, b: b}
}

// VarPSD requires X itself to be positive semidefinite. Only valid on
// Hermitian problems.
func VarPSD() Constraint {
	return Constraint{kind: conVarPSD}
}

// VarEquals pins X to the fixed matrix m (shape Rows×Cols). At most one
// equality constraint per problem.
func VarEquals(m *qmat.Dense) Constraint {
	return Constraint{kind: conVarEquals, target: m}
}

// Problem is a complex SDP over a single Rows×Cols matrix variable X with
// objective Re Tr(C†·X). When Hermitian is set, X is restricted to the
// Hermitian matrices (Rows must equal Cols) and the parametrization shrinks
// accordingly.
type Problem struct {
	Sense       Sense
	Rows, Cols  int
	C           *qmat.Dense
	Hermitian   bool
	Constraints []Constraint
}

// Result carries the solver outcome for an optimally solved Problem.
type Result struct {
	Status     Status
	Value      float64     // objective Re Tr(C†·X) at the optimum
	X          *qmat.Dense // optimizing variable, Rows×Cols
	Iterations int
}

// Solver is the pluggable backend boundary. Implementations must return a
// non-nil Result only for StatusOptimal, and classify other terminations
// through the package sentinels.
type Solver interface {
	Solve(p *Problem) (*Result, error)
}

// hermTol bounds acceptable Hermitian drift in fixed constraint blocks.
// The backend hermitizes the blocks before embedding, so this gate exists
// only to reject blocks that are asymmetric beyond any numerical drift.
const hermTol = 1e-6

// validate checks the structural well-formedness of the problem.
// All failures wrap ErrBadProblem with a reason.
func (p *Problem) validate() error {
	if p == nil {
		return fmt.Errorf("%w: nil problem", ErrBadProblem)
	}
	if p.Rows <= 0 || p.Cols <= 0 {
		return fmt.Errorf("%w: variable shape %dx%d", ErrBadProblem, p.Rows, p.Cols)
	}
	if p.Hermitian && p.Rows != p.Cols {
		return fmt.Errorf("%w: Hermitian variable must be square", ErrBadProblem)
	}
	if p.C == nil {
		return fmt.Errorf("%w: nil objective matrix", ErrBadProblem)
	}
	if p.C.Rows() != p.Rows || p.C.Cols() != p.Cols {
		return fmt.Errorf("%w: objective shape %dx%d, want %dx%d",
			ErrBadProblem, p.C.Rows(), p.C.Cols(), p.Rows, p.Cols)
	}

	cones, equalities := 0, 0
	for i, con := range p.Constraints {
		switch con.kind {
		case conBlockPSD:
			if con.a == nil || con.b == nil {
				return fmt.Errorf("%w: constraint %d: nil block", ErrBadProblem, i)
			}
			if con.a.Rows() != p.Rows || con.a.Cols() != p.Rows {
				return fmt.Errorf("%w: constraint %d: block A shape", ErrBadProblem, i)
			}
			if con.b.Rows() != p.Cols || con.b.Cols() != p.Cols {
				return fmt.Errorf("%w: constraint %d: block B shape", ErrBadProblem, i)
			}
			if err := qmat.ValidateHermitian(con.a, hermTol); err != nil {
				return fmt.Errorf("%w: constraint %d: block A: %s", ErrBadProblem, i, err)
			}
			if err := qmat.ValidateHermitian(con.b, hermTol); err != nil {
				return fmt.Errorf("%w: constraint %d: block B: %s", ErrBadProblem, i, err)
			}
			cones++
		case conVarPSD:
			if !p.Hermitian {
				return fmt.Errorf("%w: constraint %d: VarPSD needs a Hermitian variable", ErrBadProblem, i)
			}
			cones++
		case conVarEquals:
			if con.target == nil {
				return fmt.Errorf("%w: constraint %d: nil equality target", ErrBadProblem, i)
			}
			if con.target.Rows() != p.Rows || con.target.Cols() != p.Cols {
				return fmt.Errorf("%w: constraint %d: equality target shape", ErrBadProblem, i)
			}
			equalities++
		default:
			return fmt.Errorf("%w: constraint %d: unknown kind", ErrBadProblem, i)
		}
	}
	if cones == 0 {
		return fmt.Errorf("%w: at least one cone constraint required", ErrBadProblem)
	}
	if equalities > 1 {
		return fmt.Errorf("%w: at most one equality constraint allowed", ErrBadProblem)
	}

	return nil
}
