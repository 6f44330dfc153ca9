package root

import (
	"github.com/spf13/cobra"

	"github.com/finito-solver/finito/cmd/coloring"
	"github.com/finito-solver/finito/cmd/cryptarithm"
	"github.com/finito-solver/finito/cmd/queens"
	"github.com/finito-solver/finito/cmd/sudoku"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "finito",
		Short: "Finito is an open-source finite-domain constraint toolkit",
		Long: `An open-source finite-domain constraint toolkit written in Go.
Puzzles are encoded as integer variables with equality, inequality,
distinctness and linear constraints, handed to a SAT backend, and the
returned model is decoded into the puzzle's native answer.`,
	}

	// add sub-commands
	rootCmd.AddCommand(cryptarithm.NewCryptarithmCommand())
	rootCmd.AddCommand(coloring.NewColoringCommand())
	rootCmd.AddCommand(queens.NewQueensCommand())
	rootCmd.AddCommand(sudoku.NewSudokuCommand())

	return rootCmd
}
