package finito

import (
	"errors"
	"fmt"
)

// ErrInstanceSealed is returned when an Instance is modified after it
// has been handed to a solver.
var ErrInstanceSealed = errors.New("instance is sealed and can no longer be modified")

// InvalidDomainError is returned by Declare when lo > hi.
type InvalidDomainError struct {
	ID Identifier
	Lo int
	Hi int
}

func (e InvalidDomainError) Error() string {
	return fmt.Sprintf("invalid domain [%d,%d] for variable %q", e.Lo, e.Hi, e.ID)
}

// DuplicateVariableError is returned by Declare when a name is
// declared a second time with a differing domain.
type DuplicateVariableError Identifier

func (e DuplicateVariableError) Error() string {
	return fmt.Sprintf("duplicate variable %q in input", Identifier(e))
}

// UnknownVariableError is returned by Assert when a constraint
// references a name that was never declared.
type UnknownVariableError Identifier

func (e UnknownVariableError) Error() string {
	return fmt.Sprintf("variable %q referenced but not declared", Identifier(e))
}

// Instance is the accumulated set of declared Variables and asserted
// Constraints for one satisfiability check. Instances are built
// incrementally, sealed when handed to a solver, and never reused.
// All Constraints are conjoined: the Instance is satisfiable iff some
// assignment satisfies every one of them simultaneously.
type Instance struct {
	inorder     []Variable
	domains     map[Identifier]Variable
	constraints []Constraint
	sealed      bool
}

func NewInstance() *Instance {
	return &Instance{
		domains: map[Identifier]Variable{},
	}
}

// Declare registers an integer Variable with an inclusive range
// domain. Re-declaring a name with the identical domain is
// idempotent; a differing domain is a DuplicateVariableError.
func (in *Instance) Declare(id Identifier, lo, hi int) error {
	if in.sealed {
		return ErrInstanceSealed
	}
	if lo > hi {
		return InvalidDomainError{ID: id, Lo: lo, Hi: hi}
	}
	if prev, ok := in.domains[id]; ok {
		if prev.lo != lo || prev.hi != hi {
			return DuplicateVariableError(id)
		}
		return nil
	}
	v := Variable{id: id, lo: lo, hi: hi}
	in.domains[id] = v
	in.inorder = append(in.inorder, v)
	return nil
}

// Assert conjoins one Constraint into the Instance. Every Identifier
// the Constraint references must already have been declared.
func (in *Instance) Assert(c Constraint) error {
	if in.sealed {
		return ErrInstanceSealed
	}
	for _, id := range c.Vars() {
		if _, ok := in.domains[id]; !ok {
			return UnknownVariableError(id)
		}
	}
	in.constraints = append(in.constraints, c)
	return nil
}

// Variables returns the declared Variables in declaration order.
func (in *Instance) Variables() []Variable {
	return in.inorder
}

// Constraints returns the asserted Constraints in assertion order.
func (in *Instance) Constraints() []Constraint {
	return in.constraints
}

// Domain reports the declared bounds for id, or ok == false if id was
// never declared.
func (in *Instance) Domain(id Identifier) (lo, hi int, ok bool) {
	v, ok := in.domains[id]
	if !ok {
		return 0, -1, false
	}
	return v.lo, v.hi, true
}

// Seal marks the Instance immutable. The solver seals every Instance
// it is handed; subsequent Declare or Assert calls fail with
// ErrInstanceSealed.
func (in *Instance) Seal() {
	in.sealed = true
}
