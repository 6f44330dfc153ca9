package finito

import (
	"fmt"
	"strings"

	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
)

// NotSatisfiable is an error composed of a set of applied constraints
// that is sufficient to make a solution impossible.
type NotSatisfiable []Constraint

func (e NotSatisfiable) Error() string {
	const msg = "constraints not satisfiable"
	if len(e) == 0 {
		return msg
	}
	s := make([]string, len(e))
	for i, c := range e {
		s[i] = c.String()
	}
	return fmt.Sprintf("%s:\n%s", msg, strings.Join(s, "\n"))
}

// Identifier values uniquely identify particular Variables within
// the input to a single call to Solve.
type Identifier string

func (id Identifier) String() string {
	return string(id)
}

// IdentifierFromString returns an Identifier based on a provided
// string.
func IdentifierFromString(s string) Identifier {
	return Identifier(s)
}

// Variable is a named integer unknown together with its inclusive
// finite domain [Lo, Hi]. Variables are immutable once declared on an
// Instance.
type Variable struct {
	id Identifier
	lo int
	hi int
}

// Identifier returns the Identifier that uniquely identifies this
// Variable among all other Variables in a given Instance.
func (v Variable) Identifier() Identifier {
	return v.id
}

// Domain returns the inclusive bounds of the Variable's domain.
func (v Variable) Domain() (lo, hi int) {
	return v.lo, v.hi
}

// LitMapping performs translation between the input and output types
// of Solve (Constraints, Variables, Models) and the boolean literals
// that appear in the SAT formula. Each Variable is represented by a
// one-hot group of literals, one per domain value.
type LitMapping interface {
	// LitOf returns the literal that is true iff the named Variable
	// takes the given value.
	LitOf(id Identifier, value int) z.Lit
	// DomainOf returns the declared bounds of the named Variable.
	// An unknown Identifier yields an empty domain (lo > hi) and is
	// recorded as an error on the mapping.
	DomainOf(id Identifier) (lo, hi int)
	LogicCircuit() *logic.C
}

// Constraint implementations restrict the values that Variables can
// take in a solution.
type Constraint interface {
	String() string
	// Apply encodes the constraint as a single gate literal in the
	// mapping's circuit. A return of z.LitNull means the constraint
	// has no useful representation in the SAT inputs and is skipped.
	Apply(lm LitMapping) z.Lit
	// Vars returns the Identifiers the constraint references.
	Vars() []Identifier
}

// Model is a satisfying assignment: one concrete value per declared
// Variable. Produced only by the solver; read-only to decoders.
type Model map[Identifier]int

// Verdict is the outcome of a satisfiability check.
type Verdict int

const (
	VerdictUnknown Verdict = iota
	VerdictSat
	VerdictUnsat
)

func (v Verdict) String() string {
	switch v {
	case VerdictSat:
		return "sat"
	case VerdictUnsat:
		return "unsat"
	default:
		return "unknown"
	}
}
