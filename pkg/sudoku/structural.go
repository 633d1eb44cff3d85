package sudoku

import "fmt"

// GroupSet selects which distinctness groups the structural generator
// emits. The zero value is the full rule set with 3x3 boxes; GroupsRowsCols
// covers puzzles published without box distinctness.
type GroupSet int

const (
	// GroupsAll emits row, column, and box groups.
	GroupsAll GroupSet = iota
	// GroupsRowsCols emits row and column groups only.
	GroupsRowsCols
)

func (gs GroupSet) String() string {
	switch gs {
	case GroupsAll:
		return "rows-cols-boxes"
	case GroupsRowsCols:
		return "rows-cols"
	default:
		return fmt.Sprintf("groups(%d)", int(gs))
	}
}

// ParseGroupSet maps a group-set name back to its GroupSet.
func ParseGroupSet(s string) (GroupSet, error) {
	switch s {
	case "rows-cols-boxes":
		return GroupsAll, nil
	case "rows-cols":
		return GroupsRowsCols, nil
	default:
		return 0, fmt.Errorf("%w: unknown group set %q", ErrInvalidRule, s)
	}
}

// StructuralConstraints derives the puzzle-independent constraints from a
// grid: one range constraint per cell, then distinctness for each of the 9
// rows, the 9 columns, and (under GroupsAll) the 9 boxes. The order is
// deterministic, and every cell lands in exactly one group per enabled
// dimension.
func StructuralConstraints(g *Grid, groups GroupSet) []Constraint {
	cs := make([]Constraint, 0, Size*Size+3*Size)

	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			cs = append(cs, RangeConstraint(g.vars[row][col]))
		}
	}

	for row := 0; row < Size; row++ {
		group := make([]Var, Size)
		for col := 0; col < Size; col++ {
			group[col] = g.vars[row][col]
		}
		cs = append(cs, DistinctConstraint(group))
	}

	for col := 0; col < Size; col++ {
		group := make([]Var, Size)
		for row := 0; row < Size; row++ {
			group[row] = g.vars[row][col]
		}
		cs = append(cs, DistinctConstraint(group))
	}

	if groups == GroupsRowsCols {
		return cs
	}

	for box := 0; box < Size; box++ {
		baseRow := (box / BoxSize) * BoxSize
		baseCol := (box % BoxSize) * BoxSize
		group := make([]Var, 0, Size)
		for r := 0; r < BoxSize; r++ {
			for c := 0; c < BoxSize; c++ {
				group = append(group, g.vars[baseRow+r][baseCol+c])
			}
		}
		cs = append(cs, DistinctConstraint(group))
	}

	return cs
}
