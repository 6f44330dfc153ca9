package solver

import (
	"context"
	"errors"
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/inter"

	"github.com/finito-solver/finito/logger"
	"github.com/finito-solver/finito/pkg/finito"
)

// ErrIncomplete is returned when the backend stops before reaching a
// verdict.
var ErrIncomplete = errors.New("stopped before a verdict could be reached")

const (
	satisfiable   = 1
	unsatisfiable = -1
	unknown       = 0
)

type Solver struct {
	tracer Tracer
}

// Solve seals the given Instance, submits it to the backend, and
// returns a Solution carrying the verdict and, when satisfiable, one
// model. The backend call blocks until the search terminates; no
// timeout is imposed, and the context is accepted for signature
// compatibility only.
func (s *Solver) Solve(_ context.Context, instance *finito.Instance) (*Solution, error) {
	instance.Seal()

	giniSolver := gini.New()
	litMap := newLitMapping(instance)

	result, err := s.solve(giniSolver, litMap)

	// This likely indicates a bug, so discard whatever
	// return values were produced.
	if derr := litMap.Error(); derr != nil {
		return nil, derr
	}

	return result, err
}

func (s *Solver) solve(giniSolver inter.S, litMap *litMapping) (*Solution, error) {
	log := logger.Logger().With().Str("component", "solver").Logger()

	// teach all constraints to the solver
	litMap.AddConstraints(giniSolver)

	// assume that all constraints hold
	litMap.AssumeConstraints(giniSolver)

	start := time.Now()
	outcome := giniSolver.Solve()
	log.Debug().
		Int("variables", len(litMap.inorder)).
		Int("constraints", len(litMap.constraints)).
		Str("verdict", verdictOf(outcome).String()).
		Dur("took", time.Since(start)).
		Msg("solve finished")

	switch outcome {
	case satisfiable:
		return &Solution{
			verdict: finito.VerdictSat,
			model:   litMap.Model(giniSolver),
		}, nil
	case unsatisfiable:
		conflicts := litMap.Conflicts(giniSolver)
		s.tracer.Trace(position{conflicts: conflicts, variables: litMap.inorder})
		return &Solution{
			verdict: finito.VerdictUnsat,
			err:     finito.NotSatisfiable(conflicts),
		}, nil
	}

	return nil, ErrIncomplete
}

func verdictOf(outcome int) finito.Verdict {
	switch outcome {
	case satisfiable:
		return finito.VerdictSat
	case unsatisfiable:
		return finito.VerdictUnsat
	default:
		return finito.VerdictUnknown
	}
}

func New(options ...Option) (*Solver, error) {
	s := Solver{}
	for _, option := range append(options, defaults...) {
		if err := option(&s); err != nil {
			return nil, err
		}
	}
	return &s, nil
}

type Option func(s *Solver) error

func WithTracer(t Tracer) Option {
	return func(s *Solver) error {
		s.tracer = t
		return nil
	}
}

var defaults = []Option{
	func(s *Solver) error {
		if s.tracer == nil {
			s.tracer = DefaultTracer{}
		}
		return nil
	},
}
