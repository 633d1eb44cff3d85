package sudoku

import (
	"fmt"
	"strings"
)

// Solution is a fully assigned grid. It is a value type: built once from a
// model, then only read.
type Solution [Size][Size]int

// NewSolution reads the value of every grid variable out of a model. The
// model must cover the whole grid; a missing variable is a contract
// violation by the oracle.
func NewSolution(g *Grid, m Model) (Solution, error) {
	var s Solution
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			value, ok := m[g.vars[row][col]]
			if !ok {
				return Solution{}, fmt.Errorf("%w: model misses cell (%d,%d)", ErrNoModel, row, col)
			}
			s[row][col] = value
		}
	}
	return s, nil
}

// Equal reports whether two solutions assign every cell identically.
func (s Solution) Equal(o Solution) bool { return s == o }

// String renders the grid in 3x3 blocks, three values per block separated
// by wider gaps, with a blank line between band rows.
func (s Solution) String() string {
	var sb strings.Builder
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if col > 0 {
				if col%BoxSize == 0 {
					sb.WriteString("   ")
				} else {
					sb.WriteString(" ")
				}
			}
			fmt.Fprintf(&sb, "%d", s[row][col])
		}
		sb.WriteString("\n")
		if row == 2 || row == 5 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
