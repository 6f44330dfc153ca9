package coloring

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finito-solver/finito/pkg/finito"
	"github.com/finito-solver/finito/pkg/finito/solver"
)

func NewColoringCommand() *cobra.Command {
	var colors int
	cmd := &cobra.Command{
		Use:   "coloring",
		Short: "Colors the map of Australia so no adjacent regions match",
		RunE: func(cmd *cobra.Command, args []string) error {
			return solve(Australia(), colors)
		},
	}
	cmd.Flags().IntVar(&colors, "colors", 3, "number of colors available")
	return cmd
}

func solve(m Map, colors int) error {
	instance, err := m.Encode(colors)
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

	assigned := m.Decode(solution.Model())
	for _, region := range m.Regions {
		fmt.Printf("%s = %s\n", region, assigned[region])
	}
	return nil
}
