package sudoku

import (
	"fmt"
	"strings"

	"github.com/finito-solver/finito/pkg/finito"
	"github.com/finito-solver/finito/pkg/finito/constraint"
)

// Board is a 9x9 grid of digits; 0 means blank.
type Board [9][9]int

// CellID names the variable for the cell at the given row and column.
func CellID(row, col int) finito.Identifier {
	return finito.Identifier(fmt.Sprintf("r%dc%d", row, col))
}

// ParseBoard reads a board from an 81-character string in row-major
// order, with '0' or '.' marking blanks. Whitespace is ignored.
func ParseBoard(s string) (Board, error) {
	var board Board
	stripped := strings.Map(func(r rune) rune {
		if r == ' ' || r == '\n' || r == '\t' {
			return -1
		}
		return r
	}, s)
	if len(stripped) != 81 {
		return board, fmt.Errorf("board must have 81 cells, got %d", len(stripped))
	}
	for i, r := range stripped {
		var v int
		switch {
		case r == '.' || r == '0':
			v = 0
		case r >= '1' && r <= '9':
			v = int(r - '0')
		default:
			return board, fmt.Errorf("invalid cell %q at position %d", r, i)
		}
		board[i/9][i%9] = v
	}
	return board, nil
}

// Encode builds the constraint instance for the board: one variable
// per cell with domain [1,9], all-distinct constraints per row,
// column and 3x3 block, and a fixing constraint per nonzero given.
// Blank cells receive no fixing constraint. With diagonal set, both
// main diagonals must also hold each digit exactly once.
func Encode(board Board, diagonal bool) (*finito.Instance, error) {
	instance := finito.NewInstance()
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			if err := instance.Declare(CellID(row, col), 1, 9); err != nil {
				return nil, err
			}
		}
	}

	// rows and columns
	for i := 0; i < 9; i++ {
		rowIDs := make([]finito.Identifier, 9)
		colIDs := make([]finito.Identifier, 9)
		for j := 0; j < 9; j++ {
			rowIDs[j] = CellID(i, j)
			colIDs[j] = CellID(j, i)
		}
		if err := instance.Assert(constraint.AllDistinct(rowIDs...)); err != nil {
			return nil, err
		}
		if err := instance.Assert(constraint.AllDistinct(colIDs...)); err != nil {
			return nil, err
		}
	}

	// 3x3 blocks
	for x := 0; x < 9; x += 3 {
		for y := 0; y < 9; y += 3 {
			ids := make([]finito.Identifier, 0, 9)
			for dx := 0; dx < 3; dx++ {
				for dy := 0; dy < 3; dy++ {
					ids = append(ids, CellID(x+dx, y+dy))
				}
			}
			if err := instance.Assert(constraint.AllDistinct(ids...)); err != nil {
				return nil, err
			}
		}
	}

	if diagonal {
		main := make([]finito.Identifier, 9)
		anti := make([]finito.Identifier, 9)
		for i := 0; i < 9; i++ {
			main[i] = CellID(i, i)
			anti[i] = CellID(i, 8-i)
		}
		if err := instance.Assert(constraint.AllDistinct(main...)); err != nil {
			return nil, err
		}
		if err := instance.Assert(constraint.AllDistinct(anti...)); err != nil {
			return nil, err
		}
	}

	// givens
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			if v := board[row][col]; v != 0 {
				if err := instance.Assert(constraint.Fix(CellID(row, col), v)); err != nil {
					return nil, err
				}
			}
		}
	}

	return instance, nil
}

// Decode reads the solved grid out of the model.
func Decode(model finito.Model) Board {
	var board Board
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			board[row][col] = model[CellID(row, col)]
		}
	}
	return board
}

// Render draws the board with block separators every three rows and
// columns.
func (b Board) Render() string {
	var out strings.Builder
	for row := 0; row < 9; row++ {
		if row == 3 || row == 6 {
			out.WriteString("------+-------+------\n")
		}
		for col := 0; col < 9; col++ {
			if col == 3 || col == 6 {
				out.WriteString("| ")
			}
			if b[row][col] == 0 {
				out.WriteString(".")
			} else {
				out.WriteString(fmt.Sprintf("%d", b[row][col]))
			}
			if col != 8 {
				out.WriteString(" ")
			}
		}
		out.WriteString("\n")
	}
	return out.String()
}
