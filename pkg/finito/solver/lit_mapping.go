package solver

import (
	"fmt"
	"strings"

	"github.com/go-air/gini/inter"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"

	"github.com/finito-solver/finito/pkg/finito"
)

type inconsistentLitMapping []error

func (inconsistentLitMapping) Error() string {
	return "internal solver failure"
}

// domainConstraint forces a Variable's one-hot group to select
// exactly one value. It is synthesized by the litMapping for every
// declared Variable so that UNSAT conflicts can name it.
type domainConstraint struct {
	id finito.Identifier
	lo int
	hi int
}

func (constraint *domainConstraint) String() string {
	return fmt.Sprintf("%s takes exactly one value in [%d,%d]", constraint.id, constraint.lo, constraint.hi)
}

func (constraint *domainConstraint) Apply(lm finito.LitMapping) z.Lit {
	c := lm.LogicCircuit()
	ms := make([]z.Lit, 0, constraint.hi-constraint.lo+1)
	for v := constraint.lo; v <= constraint.hi; v++ {
		ms = append(ms, lm.LitOf(constraint.id, v))
	}
	return c.And(c.Ors(ms...), c.CardSort(ms).Leq(1))
}

func (constraint *domainConstraint) Vars() []finito.Identifier {
	return []finito.Identifier{constraint.id}
}

// litMapping performs translation between the input and output types
// of Solve (Constraints, Variables, Models) and the variables that
// appear in the SAT formula. Each integer Variable maps to one
// boolean literal per domain value.
type litMapping struct {
	inorder     []finito.Variable
	lits        map[finito.Identifier][]z.Lit
	domains     map[finito.Identifier][2]int
	constraints map[z.Lit]finito.Constraint
	c           *logic.C
	errs        inconsistentLitMapping
}

// newLitMapping returns a new litMapping with its state initialized
// based on the provided Instance. This includes construction of the
// translation tables between Variables/Constraints and the inputs to
// the underlying solver.
func newLitMapping(instance *finito.Instance) *litMapping {
	variables := instance.Variables()
	d := &litMapping{
		inorder:     variables,
		lits:        make(map[finito.Identifier][]z.Lit, len(variables)),
		domains:     make(map[finito.Identifier][2]int, len(variables)),
		constraints: make(map[z.Lit]finito.Constraint),
		c:           logic.NewCCap(len(variables)),
	}

	// First pass to assign lits:
	for _, variable := range variables {
		lo, hi := variable.Domain()
		ms := make([]z.Lit, 0, hi-lo+1)
		for v := lo; v <= hi; v++ {
			ms = append(ms, d.c.Lit())
		}
		d.lits[variable.Identifier()] = ms
		d.domains[variable.Identifier()] = [2]int{lo, hi}
	}

	// Second pass to gate the one-hot domain groups and the
	// asserted constraints:
	for _, variable := range variables {
		lo, hi := variable.Domain()
		dc := &domainConstraint{id: variable.Identifier(), lo: lo, hi: hi}
		d.constraints[dc.Apply(d)] = dc
	}
	for _, constraint := range instance.Constraints() {
		m := constraint.Apply(d)
		if m == z.LitNull {
			// This constraint doesn't have a useful
			// representation in the SAT inputs.
			continue
		}
		d.constraints[m] = constraint
	}

	return d
}

// LitOf returns the literal corresponding to the named Variable
// taking the given value.
func (d *litMapping) LitOf(id finito.Identifier, value int) z.Lit {
	ms, ok := d.lits[id]
	if !ok {
		d.errs = append(d.errs, finito.UnknownVariableError(id))
		return z.LitNull
	}
	lo, _ := d.domainOf(id)
	i := value - lo
	if i < 0 || i >= len(ms) {
		d.errs = append(d.errs, fmt.Errorf("value %d outside the domain of variable %q", value, id))
		return z.LitNull
	}
	return ms[i]
}

// DomainOf returns the declared bounds of the named Variable, or an
// empty domain if it was never declared.
func (d *litMapping) DomainOf(id finito.Identifier) (lo, hi int) {
	if _, ok := d.lits[id]; !ok {
		d.errs = append(d.errs, finito.UnknownVariableError(id))
		return 0, -1
	}
	return d.domainOf(id)
}

func (d *litMapping) domainOf(id finito.Identifier) (lo, hi int) {
	dom, ok := d.domains[id]
	if !ok {
		return 0, -1
	}
	return dom[0], dom[1]
}

func (d *litMapping) LogicCircuit() *logic.C {
	return d.c
}

// Error returns a single error value that is an aggregation of all
// errors encountered during a litMapping's lifetime, or nil if there
// have been no errors. A non-nil return value likely indicates a
// problem with the solver or constraint implementations.
func (d *litMapping) Error() error {
	if len(d.errs) == 0 {
		return nil
	}
	s := make([]string, len(d.errs))
	for i, err := range d.errs {
		s[i] = err.Error()
	}
	return fmt.Errorf("%d errors encountered: %s", len(s), strings.Join(s, ", "))
}

// AddConstraints adds the current constraints encoded in the embedded
// circuit to the solver g
func (d *litMapping) AddConstraints(g inter.S) {
	d.c.ToCnf(g)
}

// AssumeConstraints assumes every constraint gate, so that an UNSAT
// outcome can be traced back to the constraints involved.
func (d *litMapping) AssumeConstraints(s inter.S) {
	for m := range d.constraints {
		s.Assume(m)
	}
}

// Model reads one concrete value per Variable out of a satisfying
// assignment held by g.
func (d *litMapping) Model(g inter.S) finito.Model {
	model := make(finito.Model, len(d.inorder))
	for _, variable := range d.inorder {
		id := variable.Identifier()
		lo, hi := variable.Domain()
		for v := lo; v <= hi; v++ {
			if g.Value(d.LitOf(id, v)) {
				model[id] = v
				break
			}
		}
	}
	return model
}

// Conflicts returns the constraints corresponding to the failed
// assumptions reported by the solver.
func (d *litMapping) Conflicts(g inter.Assumable) []finito.Constraint {
	whys := g.Why(nil)
	cs := make([]finito.Constraint, 0, len(whys))
	for _, why := range whys {
		if c, ok := d.constraints[why]; ok {
			cs = append(cs, c)
		}
	}
	return cs
}
