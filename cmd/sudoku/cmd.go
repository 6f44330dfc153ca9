package sudoku

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finito-solver/finito/pkg/finito"
	"github.com/finito-solver/finito/pkg/finito/solver"
)

// DefaultBoard is a classic easy puzzle used when no board is given.
const DefaultBoard = "003020600900305001001806400008102900700000008006708200002609500800203009005010300"

func NewSudokuCommand() *cobra.Command {
	var boardStr string
	var diagonal bool
	cmd := &cobra.Command{
		Use:   "sudoku",
		Short: "Returns a solved sudoku board",
		RunE: func(cmd *cobra.Command, args []string) error {
			return solve(boardStr, diagonal)
		},
	}
	cmd.Flags().StringVar(&boardStr, "board", DefaultBoard, "81-character board in row-major order, 0 or . for blanks")
	cmd.Flags().BoolVar(&diagonal, "diagonal", false, "require both main diagonals to hold each digit exactly once")
	return cmd
}

func solve(boardStr string, diagonal bool) error {
	board, err := ParseBoard(boardStr)
	if err != nil {
		return err
	}
	instance, err := Encode(board, diagonal)
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

	fmt.Print(Decode(solution.Model()).Render())
	return nil
}
