package constraint

import (
	"fmt"
	"strings"

	"github.com/go-air/gini/z"

	"github.com/finito-solver/finito/pkg/finito"
)

type FixConstraint struct {
	subject finito.Identifier
	value   int
}

func (constraint *FixConstraint) String() string {
	return fmt.Sprintf("%s == %d", constraint.subject, constraint.value)
}

func (constraint *FixConstraint) Apply(lm finito.LitMapping) z.Lit {
	lo, hi := lm.DomainOf(constraint.subject)
	if constraint.value < lo || constraint.value > hi {
		// fixing to a value outside the domain is unsatisfiable
		return lm.LogicCircuit().F
	}
	return lm.LitOf(constraint.subject, constraint.value)
}

func (constraint *FixConstraint) Vars() []finito.Identifier {
	return []finito.Identifier{constraint.subject}
}

// Fix returns a Constraint that forces the named Variable to take the
// given value.
func Fix(subject finito.Identifier, value int) finito.Constraint {
	return &FixConstraint{subject: subject, value: value}
}

type ExcludeConstraint struct {
	subject finito.Identifier
	value   int
}

func (constraint *ExcludeConstraint) String() string {
	return fmt.Sprintf("%s != %d", constraint.subject, constraint.value)
}

func (constraint *ExcludeConstraint) Apply(lm finito.LitMapping) z.Lit {
	lo, hi := lm.DomainOf(constraint.subject)
	if constraint.value < lo || constraint.value > hi {
		// the domain already excludes the value
		return lm.LogicCircuit().T
	}
	return lm.LitOf(constraint.subject, constraint.value).Not()
}

func (constraint *ExcludeConstraint) Vars() []finito.Identifier {
	return []finito.Identifier{constraint.subject}
}

// Exclude returns a Constraint that forbids the named Variable from
// taking the given value.
func Exclude(subject finito.Identifier, value int) finito.Constraint {
	return &ExcludeConstraint{subject: subject, value: value}
}

type EqualConstraint struct {
	subject finito.Identifier
	operand finito.Identifier
}

func (constraint *EqualConstraint) String() string {
	return fmt.Sprintf("%s == %s", constraint.subject, constraint.operand)
}

func (constraint *EqualConstraint) Apply(lm finito.LitMapping) z.Lit {
	c := lm.LogicCircuit()
	sLo, sHi := lm.DomainOf(constraint.subject)
	oLo, oHi := lm.DomainOf(constraint.operand)
	lo, hi := sLo, sHi
	if oLo < lo {
		lo = oLo
	}
	if oHi > hi {
		hi = oHi
	}
	gates := make([]z.Lit, 0, hi-lo+1)
	for v := lo; v <= hi; v++ {
		inS := v >= sLo && v <= sHi
		inO := v >= oLo && v <= oHi
		switch {
		case inS && inO:
			a := lm.LitOf(constraint.subject, v)
			b := lm.LitOf(constraint.operand, v)
			gates = append(gates, c.And(c.Or(a.Not(), b), c.Or(b.Not(), a)))
		case inS:
			gates = append(gates, lm.LitOf(constraint.subject, v).Not())
		case inO:
			gates = append(gates, lm.LitOf(constraint.operand, v).Not())
		}
	}
	return c.Ands(gates...)
}

func (constraint *EqualConstraint) Vars() []finito.Identifier {
	return []finito.Identifier{constraint.subject, constraint.operand}
}

// Equal returns a Constraint that forces two Variables to take the
// same value.
func Equal(subject, operand finito.Identifier) finito.Constraint {
	return &EqualConstraint{subject: subject, operand: operand}
}

type NotEqualConstraint struct {
	subject finito.Identifier
	operand finito.Identifier
}

func (constraint *NotEqualConstraint) String() string {
	return fmt.Sprintf("%s != %s", constraint.subject, constraint.operand)
}

func (constraint *NotEqualConstraint) Apply(lm finito.LitMapping) z.Lit {
	c := lm.LogicCircuit()
	sLo, sHi := lm.DomainOf(constraint.subject)
	oLo, oHi := lm.DomainOf(constraint.operand)
	var gates []z.Lit
	for v := sLo; v <= sHi; v++ {
		if v < oLo || v > oHi {
			continue
		}
		a := lm.LitOf(constraint.subject, v)
		b := lm.LitOf(constraint.operand, v)
		gates = append(gates, c.Or(a.Not(), b.Not()))
	}
	return c.Ands(gates...)
}

func (constraint *NotEqualConstraint) Vars() []finito.Identifier {
	return []finito.Identifier{constraint.subject, constraint.operand}
}

// NotEqual returns a Constraint that forbids two Variables from
// taking the same value.
func NotEqual(subject, operand finito.Identifier) finito.Constraint {
	return &NotEqualConstraint{subject: subject, operand: operand}
}

type DiffNotEqualConstraint struct {
	subject finito.Identifier
	operand finito.Identifier
	diff    int
}

func (constraint *DiffNotEqualConstraint) String() string {
	return fmt.Sprintf("%s - %s != %d", constraint.subject, constraint.operand, constraint.diff)
}

func (constraint *DiffNotEqualConstraint) Apply(lm finito.LitMapping) z.Lit {
	c := lm.LogicCircuit()
	sLo, sHi := lm.DomainOf(constraint.subject)
	oLo, oHi := lm.DomainOf(constraint.operand)
	var gates []z.Lit
	for a := sLo; a <= sHi; a++ {
		b := a - constraint.diff
		if b < oLo || b > oHi {
			continue
		}
		gates = append(gates, c.Or(lm.LitOf(constraint.subject, a).Not(), lm.LitOf(constraint.operand, b).Not()))
	}
	return c.Ands(gates...)
}

func (constraint *DiffNotEqualConstraint) Vars() []finito.Identifier {
	return []finito.Identifier{constraint.subject, constraint.operand}
}

// DiffNotEqual returns a Constraint that forbids subject - operand
// from equaling diff.
func DiffNotEqual(subject, operand finito.Identifier, diff int) finito.Constraint {
	return &DiffNotEqualConstraint{subject: subject, operand: operand, diff: diff}
}

type AllDistinctConstraint struct {
	ids []finito.Identifier
}

func (constraint *AllDistinctConstraint) String() string {
	s := make([]string, len(constraint.ids))
	for i, each := range constraint.ids {
		s[i] = string(each)
	}
	return fmt.Sprintf("all distinct: %s", strings.Join(s, ", "))
}

func (constraint *AllDistinctConstraint) Apply(lm finito.LitMapping) z.Lit {
	c := lm.LogicCircuit()
	lo, hi := 0, -1
	bounds := make([][2]int, len(constraint.ids))
	for i, id := range constraint.ids {
		vLo, vHi := lm.DomainOf(id)
		bounds[i] = [2]int{vLo, vHi}
		if lo > hi {
			lo, hi = vLo, vHi
			continue
		}
		if vLo < lo {
			lo = vLo
		}
		if vHi > hi {
			hi = vHi
		}
	}
	var gates []z.Lit
	for v := lo; v <= hi; v++ {
		var ms []z.Lit
		for i, id := range constraint.ids {
			if v < bounds[i][0] || v > bounds[i][1] {
				continue
			}
			ms = append(ms, lm.LitOf(id, v))
		}
		if len(ms) < 2 {
			continue
		}
		gates = append(gates, c.CardSort(ms).Leq(1))
	}
	return c.Ands(gates...)
}

func (constraint *AllDistinctConstraint) Vars() []finito.Identifier {
	return constraint.ids
}

// AllDistinct returns a Constraint that forces every named Variable
// to take a pairwise-different value.
func AllDistinct(ids ...finito.Identifier) finito.Constraint {
	return &AllDistinctConstraint{ids: ids}
}

// Term is one weighted Variable reference in a linear equation.
type Term struct {
	Var  finito.Identifier
	Coef int
}

type LinearEqConstraint struct {
	terms  []Term
	target int
}

func (constraint *LinearEqConstraint) String() string {
	s := make([]string, len(constraint.terms))
	for i, t := range constraint.terms {
		s[i] = fmt.Sprintf("%d*%s", t.Coef, t.Var)
	}
	return fmt.Sprintf("%s == %d", strings.Join(s, " + "), constraint.target)
}

// Apply encodes the weighted sum by walking the terms and tracking
// every reachable partial sum as a gate. The gate for a partial sum
// after term i is the disjunction over all value choices that reach
// it; the constraint holds iff the target sum is reachable after the
// final term.
func (constraint *LinearEqConstraint) Apply(lm finito.LitMapping) z.Lit {
	c := lm.LogicCircuit()
	layer := map[int]z.Lit{0: c.T}
	for _, t := range constraint.terms {
		lo, hi := lm.DomainOf(t.Var)
		next := make(map[int]z.Lit, len(layer)*(hi-lo+1))
		for sum, gate := range layer {
			for v := lo; v <= hi; v++ {
				ns := sum + t.Coef*v
				m := c.And(gate, lm.LitOf(t.Var, v))
				if prev, ok := next[ns]; ok {
					next[ns] = c.Or(prev, m)
				} else {
					next[ns] = m
				}
			}
		}
		layer = next
	}
	if gate, ok := layer[constraint.target]; ok {
		return gate
	}
	// the target sum is not reachable from any assignment
	return c.F
}

func (constraint *LinearEqConstraint) Vars() []finito.Identifier {
	ids := make([]finito.Identifier, len(constraint.terms))
	for i, t := range constraint.terms {
		ids[i] = t.Var
	}
	return ids
}

// LinearEq returns a Constraint that forces the weighted sum of the
// given terms to equal target. Carry-chain arithmetic and positional
// digit sums are both expressed with it.
func LinearEq(target int, terms ...Term) finito.Constraint {
	return &LinearEqConstraint{terms: terms, target: target}
}

type noopConstraint struct {
	inner finito.Constraint
}

func (constraint *noopConstraint) String() string {
	return fmt.Sprintf("skipped: %s", constraint.inner.String())
}

func (constraint *noopConstraint) Apply(_ finito.LitMapping) z.Lit {
	return z.LitNull
}

func (constraint *noopConstraint) Vars() []finito.Identifier {
	return nil
}

// When returns inner if cond holds, and an inert Constraint
// otherwise. The guard is evaluated at build time; a false guard
// contributes nothing to the SAT inputs, so encoders that can simply
// omit the assertion should prefer doing that.
func When(cond bool, inner finito.Constraint) finito.Constraint {
	if cond {
		return inner
	}
	return &noopConstraint{inner: inner}
}
