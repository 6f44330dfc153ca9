package coloring_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finito-solver/finito/cmd/coloring"
	"github.com/finito-solver/finito/pkg/finito"
	"github.com/finito-solver/finito/pkg/finito/solver"
)

func solveMap(t *testing.T, m coloring.Map, colors int) *solver.Solution {
	t.Helper()
	instance, err := m.Encode(colors)
	require.NoError(t, err)
	s, err := solver.New()
	require.NoError(t, err)
	solution, err := s.Solve(context.Background(), instance)
	require.NoError(t, err)
	return solution
}

func validColoring(m coloring.Map, model finito.Model, colors int) bool {
	for _, region := range m.Regions {
		v := model[finito.Identifier(region)]
		if v < 0 || v >= colors {
			return false
		}
	}
	for _, pair := range m.Adjacent {
		if model[finito.Identifier(pair[0])] == model[finito.Identifier(pair[1])] {
			return false
		}
	}
	return true
}

func TestAustraliaThreeColors(t *testing.T) {
	m := coloring.Australia()
	solution := solveMap(t, m, 3)
	require.Equal(t, finito.VerdictSat, solution.Verdict())
	assert.True(t, validColoring(m, solution.Model(), 3))

	assigned := m.Decode(solution.Model())
	assert.Len(t, assigned, len(m.Regions))
	for _, pair := range m.Adjacent {
		assert.NotEqual(t, assigned[pair[0]], assigned[pair[1]], "%s and %s share a color", pair[0], pair[1])
	}
}

// The mainland contains a four-region clique-like wheel around SA;
// two colors cannot separate it.
func TestAustraliaTwoColors(t *testing.T) {
	solution := solveMap(t, coloring.Australia(), 2)
	assert.Equal(t, finito.VerdictUnsat, solution.Verdict())
	assert.Nil(t, solution.Model())
	assert.True(t, solution.IsUnsat())
}

func TestColorName(t *testing.T) {
	assert.Equal(t, "red", coloring.ColorName(0))
	assert.Equal(t, "blue", coloring.ColorName(2))
	assert.Equal(t, "color-11", coloring.ColorName(11))
}

// randomMap samples an undirected graph with n regions and
// independent edge probability 1/2.
func randomMap(n int, seed int64) coloring.Map {
	rng := rand.New(rand.NewSource(seed))
	m := coloring.Map{}
	for i := 0; i < n; i++ {
		m.Regions = append(m.Regions, fmt.Sprintf("r%d", i))
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Intn(2) == 0 {
				m.Adjacent = append(m.Adjacent, [2]string{m.Regions[i], m.Regions[j]})
			}
		}
	}
	return m
}

func TestColoringProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)
	properties.Property("any graph is colorable with one color per region", prop.ForAll(
		func(n int, seed int64) bool {
			m := randomMap(n, seed)
			solution := solveMap(t, m, n)
			return solution.Verdict() == finito.VerdictSat && validColoring(m, solution.Model(), n)
		},
		gen.IntRange(2, 8),
		gen.Int64(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
