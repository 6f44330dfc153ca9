package solver_test

import (
	"context"
	"math/rand"
	"strconv"
	"testing"

	"github.com/finito-solver/finito/pkg/finito"
	"github.com/finito-solver/finito/pkg/finito/constraint"
	"github.com/finito-solver/finito/pkg/finito/solver"
)

// benchmarkInstance builds a random graph-coloring style instance:
// variables with domain [0,colors-1] and an inequality per sampled
// edge. With colors >= max degree + 1 these are all satisfiable.
func benchmarkInstance(variables, colors int, pEdge float64, seed int64) *finito.Instance {
	rng := rand.New(rand.NewSource(seed))
	in := finito.NewInstance()

	id := func(i int) finito.Identifier {
		return finito.Identifier(strconv.Itoa(i))
	}

	for i := 0; i < variables; i++ {
		if err := in.Declare(id(i), 0, colors-1); err != nil {
			panic(err)
		}
	}
	for i := 0; i < variables; i++ {
		for j := i + 1; j < variables; j++ {
			if rng.Float64() < pEdge {
				if err := in.Assert(constraint.NotEqual(id(i), id(j))); err != nil {
					panic(err)
				}
			}
		}
	}
	return in
}

func BenchmarkSolve(b *testing.B) {
	for _, bm := range []struct {
		name      string
		variables int
		colors    int
	}{
		{name: "64vars8colors", variables: 64, colors: 8},
		{name: "128vars16colors", variables: 128, colors: 16},
		{name: "256vars16colors", variables: 256, colors: 16},
	} {
		b.Run(bm.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				instance := benchmarkInstance(bm.variables, bm.colors, .05, 9)
				s, err := solver.New()
				if err != nil {
					b.Fatal(err)
				}
				b.StartTimer()
				if _, err := s.Solve(context.Background(), instance); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
