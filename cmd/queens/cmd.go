package queens

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finito-solver/finito/pkg/finito"
	"github.com/finito-solver/finito/pkg/finito/solver"
)

func NewQueensCommand() *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "queens",
		Short: "Places n queens on an n x n board so that none attack each other",
		RunE: func(cmd *cobra.Command, args []string) error {
			return solve(n)
		},
	}
	cmd.Flags().IntVarP(&n, "size", "n", 8, "board size")
	return cmd
}

func solve(n int) error {
	instance, err := Encode(n)
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

	fmt.Print(Render(Decode(solution.Model(), n)))
	return nil
}
