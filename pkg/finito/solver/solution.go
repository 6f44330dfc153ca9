package solver

import (
	"errors"

	"github.com/finito-solver/finito/pkg/finito"
)

// Solution is returned by the Solver when the backend executed
// successfully. A successful execution can still mean the instance
// has no solution; that outcome is carried as a verdict and a
// NotSatisfiable error, distinct from programmer errors, which are
// returned by Solve itself.
type Solution struct {
	verdict finito.Verdict
	model   finito.Model
	err     error
}

// Verdict reports whether the instance was satisfiable.
func (s *Solution) Verdict() finito.Verdict {
	return s.verdict
}

// Model returns the satisfying assignment, or nil when the verdict is
// not VerdictSat. Decoders must check the verdict before reading it.
func (s *Solution) Model() finito.Model {
	return s.model
}

// NotSatisfiable returns the conflict error when the verdict is
// VerdictUnsat, and nil otherwise.
func (s *Solution) NotSatisfiable() error {
	return s.err
}

// IsUnsat is a convenience wrapper distinguishing an unsatisfiable
// instance from a programming fault.
func (s *Solution) IsUnsat() bool {
	ns := finito.NotSatisfiable{}
	return s.err != nil && errors.As(s.err, &ns)
}
