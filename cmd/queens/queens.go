package queens

import (
	"fmt"
	"strings"

	"github.com/finito-solver/finito/pkg/finito"
	"github.com/finito-solver/finito/pkg/finito/constraint"
)

// QueenID names the variable holding the row of the queen placed in
// the given column.
func QueenID(col int) finito.Identifier {
	return finito.Identifier(fmt.Sprintf("q%d", col))
}

// Encode builds the N-Queens instance: one variable per column with
// domain [1,n] for the queen's row, one all-distinct constraint for
// row uniqueness, and a pairwise diagonal exclusion for every pair of
// columns. The pairwise form produces O(n^2) constraints, which is
// the dominant cost as n grows.
func Encode(n int) (*finito.Instance, error) {
	if n < 1 {
		return nil, fmt.Errorf("board size must be at least 1, got %d", n)
	}
	instance := finito.NewInstance()
	ids := make([]finito.Identifier, n)
	for col := 0; col < n; col++ {
		ids[col] = QueenID(col)
		if err := instance.Declare(ids[col], 1, n); err != nil {
			return nil, err
		}
	}
	if err := instance.Assert(constraint.AllDistinct(ids...)); err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			// |Q[i]-Q[j]| != j-i keeps the pair off both diagonals
			if err := instance.Assert(constraint.DiffNotEqual(ids[i], ids[j], j-i)); err != nil {
				return nil, err
			}
			if err := instance.Assert(constraint.DiffNotEqual(ids[i], ids[j], i-j)); err != nil {
				return nil, err
			}
		}
	}
	return instance, nil
}

// Decode returns the queen's row per column, 1-based.
func Decode(model finito.Model, n int) []int {
	rows := make([]int, n)
	for col := 0; col < n; col++ {
		rows[col] = model[QueenID(col)]
	}
	return rows
}

// Render draws the board with one Q per column.
func Render(rows []int) string {
	n := len(rows)
	var b strings.Builder
	for row := 1; row <= n; row++ {
		for col := 0; col < n; col++ {
			if rows[col] == row {
				b.WriteString("Q")
			} else {
				b.WriteString(".")
			}
			if col != n-1 {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
