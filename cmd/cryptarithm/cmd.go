package cryptarithm

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/finito-solver/finito/pkg/finito"
	"github.com/finito-solver/finito/pkg/finito/solver"
)

func NewCryptarithmCommand() *cobra.Command {
	var singleSum bool
	cmd := &cobra.Command{
		Use:   "cryptarithm [equation]",
		Short: "Solves a cryptarithmetic puzzle like SEND + MORE = MONEY",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			equation := "SEND + MORE = MONEY"
			if len(args) == 1 {
				equation = args[0]
			}
			return solve(equation, singleSum)
		},
	}
	cmd.Flags().BoolVar(&singleSum, "sum", false, "encode the identity as one weighted-sum equation instead of a carry chain")
	return cmd
}

func solve(equation string, singleSum bool) error {
	puzzle, err := Parse(equation)
	if err != nil {
		return err
	}
	instance, err := puzzle.Encode(singleSum)
	if err != nil {
		return err
	}

	so, err := solver.New()
	if err != nil {
		return err
	}
	solution, err := so.Solve(context.Background(), instance)
	if err != nil {
		return err
	}
	if solution.Verdict() != finito.VerdictSat {
		fmt.Println("no solution exists for these constraints")
		return nil
	}

	model := solution.Model()
	assignments := make([]string, 0, len(puzzle.Letters()))
	for _, letter := range puzzle.Letters() {
		assignments = append(assignments, fmt.Sprintf("%s=%d", letter, model[letter]))
	}
	fmt.Println(puzzle.String())
	fmt.Println(puzzle.Decode(model))
	fmt.Println(strings.Join(assignments, " "))
	return nil
}
