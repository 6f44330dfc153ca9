package finito_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/finito-solver/finito/pkg/finito"
	"github.com/finito-solver/finito/pkg/finito/constraint"
)

func TestDeclare(t *testing.T) {
	for _, tt := range []struct {
		Name     string
		Do       func(in *finito.Instance) error
		Expected error
	}{
		{
			Name: "valid declaration",
			Do: func(in *finito.Instance) error {
				return in.Declare("x", 1, 9)
			},
		},
		{
			Name: "singleton domain",
			Do: func(in *finito.Instance) error {
				return in.Declare("x", 4, 4)
			},
		},
		{
			Name: "inverted bounds",
			Do: func(in *finito.Instance) error {
				return in.Declare("x", 5, 2)
			},
			Expected: finito.InvalidDomainError{ID: "x", Lo: 5, Hi: 2},
		},
		{
			Name: "identical redeclaration is idempotent",
			Do: func(in *finito.Instance) error {
				if err := in.Declare("x", 0, 9); err != nil {
					return err
				}
				return in.Declare("x", 0, 9)
			},
		},
		{
			Name: "redeclaration with differing domain",
			Do: func(in *finito.Instance) error {
				if err := in.Declare("x", 0, 9); err != nil {
					return err
				}
				return in.Declare("x", 1, 9)
			},
			Expected: finito.DuplicateVariableError("x"),
		},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			in := finito.NewInstance()
			err := tt.Do(in)
			if tt.Expected == nil {
				assert.NoError(t, err)
			} else {
				assert.Equal(t, tt.Expected, err)
			}
		})
	}
}

func TestAssert(t *testing.T) {
	in := finito.NewInstance()
	assert.NoError(t, in.Declare("x", 0, 9))
	assert.NoError(t, in.Declare("y", 0, 9))

	assert.NoError(t, in.Assert(constraint.NotEqual("x", "y")))
	assert.Len(t, in.Constraints(), 1)

	err := in.Assert(constraint.NotEqual("x", "ghost"))
	assert.Equal(t, finito.UnknownVariableError("ghost"), err)
	assert.Len(t, in.Constraints(), 1)

	// a false guard references nothing, so the inner subject may be
	// undeclared
	assert.NoError(t, in.Assert(constraint.When(false, constraint.Fix("ghost", 1))))
}

func TestSeal(t *testing.T) {
	in := finito.NewInstance()
	assert.NoError(t, in.Declare("x", 0, 9))
	in.Seal()

	assert.ErrorIs(t, in.Declare("y", 0, 9), finito.ErrInstanceSealed)
	assert.ErrorIs(t, in.Assert(constraint.Fix("x", 1)), finito.ErrInstanceSealed)
	assert.Len(t, in.Variables(), 1)
}

func TestDomain(t *testing.T) {
	in := finito.NewInstance()
	assert.NoError(t, in.Declare("x", 2, 7))

	lo, hi, ok := in.Domain("x")
	assert.True(t, ok)
	assert.Equal(t, 2, lo)
	assert.Equal(t, 7, hi)

	_, _, ok = in.Domain("ghost")
	assert.False(t, ok)
}

func TestVariables(t *testing.T) {
	in := finito.NewInstance()
	assert.NoError(t, in.Declare("b", 0, 1))
	assert.NoError(t, in.Declare("a", 0, 1))

	vars := in.Variables()
	assert.Len(t, vars, 2)
	assert.Equal(t, finito.Identifier("b"), vars[0].Identifier())
	assert.Equal(t, finito.Identifier("a"), vars[1].Identifier())
	lo, hi := vars[0].Domain()
	assert.Equal(t, 0, lo)
	assert.Equal(t, 1, hi)
}
