// Package sudoku models and solves math sudoku: a 9x9 grid under the
// classic row/column/box distinctness rules plus puzzle-specific arithmetic
// cage rules (sums, differences, products, ratios) over named cell subsets.
//
// The pipeline is: allocate a Grid of decision variables against an Oracle,
// generate structural and custom constraints as plain values, assert them
// through an Adapter, and let SolveAndVerify drive the solve plus the
// negated-solution uniqueness re-check.
package sudoku

import "fmt"

// Grid geometry. Cells hold values MinValue..MaxValue.
const (
	Size     = 9
	BoxSize  = 3
	MinValue = 1
	MaxValue = 9
)

// Grid maps every cell of the 9x9 board to its decision variable. The
// structure is created once against an oracle and immutable afterwards;
// only the oracle ever assigns values.
type Grid struct {
	vars [Size][Size]Var
}

// NewGrid allocates one fresh decision variable per cell, row-major. The
// variables carry no bounds at creation; bounds are asserted separately as
// range constraints.
func NewGrid(o Oracle) *Grid {
	g := &Grid{}
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			g.vars[row][col] = o.NewVar()
		}
	}
	return g
}

// Var returns the decision variable of the cell at (row, col), both
// 0-indexed. Fails with ErrOutOfBounds outside the grid.
func (g *Grid) Var(row, col int) (Var, error) {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return 0, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, row, col)
	}
	return g.vars[row][col], nil
}

// Vars returns all 81 variables in row-major order.
func (g *Grid) Vars() []Var {
	vs := make([]Var, 0, Size*Size)
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			vs = append(vs, g.vars[row][col])
		}
	}
	return vs
}

// BoxIndex returns which of the nine 3x3 boxes contains (row, col).
func BoxIndex(row, col int) int {
	return (row/BoxSize)*BoxSize + col/BoxSize
}
