package solver

import (
	"fmt"
	"io"

	"github.com/finito-solver/finito/pkg/finito"
)

type SearchPosition interface {
	Variables() []finito.Variable
	Conflicts() []finito.Constraint
}

// Tracer is notified when the solver reaches an unsatisfiable
// position, with the variables in play and the conflicting
// constraints.
type Tracer interface {
	Trace(p SearchPosition)
}

type position struct {
	variables []finito.Variable
	conflicts []finito.Constraint
}

func (p position) Variables() []finito.Variable {
	return p.variables
}

func (p position) Conflicts() []finito.Constraint {
	return p.conflicts
}

type DefaultTracer struct{}

func (DefaultTracer) Trace(_ SearchPosition) {
}

type LoggingTracer struct {
	Writer io.Writer
}

func (t LoggingTracer) Trace(p SearchPosition) {
	fmt.Fprintf(t.Writer, "---\nVariables:\n")
	for _, v := range p.Variables() {
		lo, hi := v.Domain()
		fmt.Fprintf(t.Writer, "- %s in [%d,%d]\n", v.Identifier(), lo, hi)
	}
	fmt.Fprintf(t.Writer, "Conflict:\n")
	for _, c := range p.Conflicts() {
		fmt.Fprintf(t.Writer, "- %s\n", c)
	}
}
