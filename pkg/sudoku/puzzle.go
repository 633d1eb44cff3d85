package sudoku

// SamplePuzzle returns the built-in math sudoku instance: a single clue
// plus 30 arithmetic cages covering the board. The puzzle was published
// without box distinctness and has no solution under box groups, so it
// carries GroupsRowsCols. Coordinates below use the 1-indexed row/column
// notation of the publication; at converts to the 0-indexed CellRef form.
func SamplePuzzle() Ruleset {
	at := func(row, col int) CellRef {
		return CellRef{Row: row - 1, Col: col - 1}
	}
	cage := func(op Op, target int, cells ...CellRef) Rule {
		return Rule{Op: op, Target: target, Cells: cells}
	}

	return Ruleset{
		Groups: GroupsRowsCols,
		Fixed: []FixedCell{
			{Row: 8, Col: 8, Value: 7},
		},
		Rules: []Rule{
			cage(OpProduct, 1120, at(1, 1), at(2, 1), at(2, 2), at(3, 1)),
			cage(OpDifference, 8, at(1, 2), at(1, 3)),
			cage(OpProduct, 168, at(1, 4), at(1, 5), at(1, 6)),
			cage(OpProduct, 48, at(1, 7), at(1, 8), at(2, 8)),
			cage(OpProduct, 18, at(1, 9), at(2, 9), at(3, 9)),
			cage(OpSum, 13, at(2, 3), at(3, 2), at(3, 3), at(3, 4)),
			cage(OpSum, 21, at(2, 4), at(2, 5), at(2, 6)),
			cage(OpSum, 24, at(2, 7), at(3, 6), at(3, 7), at(3, 8)),
			cage(OpProduct, 108, at(4, 1), at(4, 2), at(5, 2)),
			cage(OpSum, 9, at(4, 3), at(4, 4)),
			cage(OpDifference, 4, at(3, 5), at(4, 5)),
			cage(OpDifference, 5, at(4, 6), at(4, 7)),
			cage(OpSum, 22, at(4, 8), at(4, 9), at(5, 8)),
			cage(OpSum, 9, at(5, 1), at(6, 1), at(7, 1)),
			cage(OpDifference, 5, at(6, 2), at(7, 2)),
			cage(OpRatio, 3, at(5, 3), at(5, 4)),
			cage(OpSum, 15, at(5, 5), at(5, 6), at(5, 7)),
			cage(OpProduct, 42, at(6, 3), at(6, 4)),
			cage(OpProduct, 32, at(7, 3), at(7, 4)),
			cage(OpRatio, 3, at(6, 5), at(7, 5)),
			cage(OpSum, 17, at(6, 6), at(6, 7)),
			cage(OpSum, 3, at(7, 6), at(7, 7)),
			cage(OpProduct, 20, at(6, 8), at(7, 8)),
			cage(OpProduct, 120, at(5, 9), at(6, 9), at(7, 9)),
			cage(OpProduct, 2160, at(8, 1), at(8, 2), at(9, 1), at(9, 2)),
			cage(OpSum, 17, at(8, 3), at(8, 4), at(9, 3)),
			cage(OpSum, 3, at(8, 5), at(8, 6)),
			cage(OpProduct, 96, at(9, 4), at(9, 5), at(9, 6)),
			cage(OpProduct, 35, at(8, 7), at(9, 7)),
			cage(OpSum, 8, at(8, 8), at(8, 9), at(9, 8)),
		},
	}
}
