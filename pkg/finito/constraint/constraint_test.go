package constraint_test

import (
	"testing"

	"github.com/go-air/gini/z"
	"github.com/stretchr/testify/assert"

	"github.com/finito-solver/finito/pkg/finito"
	"github.com/finito-solver/finito/pkg/finito/constraint"
)

func TestString(t *testing.T) {
	type tc struct {
		Name       string
		Constraint finito.Constraint
		Expected   string
	}

	for _, tt := range []tc{
		{
			Name:       "fix",
			Constraint: constraint.Fix("a", 3),
			Expected:   "a == 3",
		},
		{
			Name:       "exclude",
			Constraint: constraint.Exclude("a", 0),
			Expected:   "a != 0",
		},
		{
			Name:       "equal",
			Constraint: constraint.Equal("a", "b"),
			Expected:   "a == b",
		},
		{
			Name:       "not equal",
			Constraint: constraint.NotEqual("a", "b"),
			Expected:   "a != b",
		},
		{
			Name:       "diff not equal",
			Constraint: constraint.DiffNotEqual("a", "b", 2),
			Expected:   "a - b != 2",
		},
		{
			Name:       "all distinct",
			Constraint: constraint.AllDistinct("a", "b", "c"),
			Expected:   "all distinct: a, b, c",
		},
		{
			Name:       "linear equation",
			Constraint: constraint.LinearEq(12, constraint.Term{Var: "a", Coef: 1}, constraint.Term{Var: "b", Coef: -10}),
			Expected:   "1*a + -10*b == 12",
		},
		{
			Name:       "skipped conditional",
			Constraint: constraint.When(false, constraint.Fix("a", 3)),
			Expected:   "skipped: a == 3",
		},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			assert.Equal(t, tt.Expected, tt.Constraint.String())
		})
	}
}

func TestVars(t *testing.T) {
	type tc struct {
		Name       string
		Constraint finito.Constraint
		Expected   []finito.Identifier
	}

	for _, tt := range []tc{
		{
			Name:       "fix",
			Constraint: constraint.Fix("a", 3),
			Expected:   []finito.Identifier{"a"},
		},
		{
			Name:       "not equal",
			Constraint: constraint.NotEqual("a", "b"),
			Expected:   []finito.Identifier{"a", "b"},
		},
		{
			Name:       "all distinct",
			Constraint: constraint.AllDistinct("a", "b", "c"),
			Expected:   []finito.Identifier{"a", "b", "c"},
		},
		{
			Name:       "linear equation",
			Constraint: constraint.LinearEq(0, constraint.Term{Var: "a", Coef: 1}, constraint.Term{Var: "b", Coef: 2}),
			Expected:   []finito.Identifier{"a", "b"},
		},
		{
			Name:       "skipped conditional",
			Constraint: constraint.When(false, constraint.Fix("a", 3)),
		},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			assert.Equal(t, tt.Expected, tt.Constraint.Vars())
		})
	}
}

func TestWhen(t *testing.T) {
	inner := constraint.Fix("a", 3)

	assert.Same(t, inner, constraint.When(true, inner))

	skipped := constraint.When(false, inner)
	assert.NotSame(t, inner, skipped)
	assert.Equal(t, z.LitNull, skipped.Apply(nil))
}
