package sudoku

import "fmt"

// Op enumerates the arithmetic relations a cage rule may use.
type Op int

const (
	// OpSum requires the cage cells to add up to the target.
	OpSum Op = iota
	// OpDifference requires |a - b| = target over exactly two cells.
	OpDifference
	// OpProduct requires the cage cells to multiply to the target.
	OpProduct
	// OpRatio requires a = target*b or b = target*a over exactly two
	// cells. Both directions count; the relation is symmetric.
	OpRatio
)

func (o Op) String() string {
	switch o {
	case OpSum:
		return "sum"
	case OpDifference:
		return "difference"
	case OpProduct:
		return "product"
	case OpRatio:
		return "ratio"
	default:
		return fmt.Sprintf("op(%d)", int(o))
	}
}

// ParseOp maps an operator name back to its Op.
func ParseOp(s string) (Op, error) {
	switch s {
	case "sum":
		return OpSum, nil
	case "difference":
		return OpDifference, nil
	case "product":
		return OpProduct, nil
	case "ratio":
		return OpRatio, nil
	default:
		return 0, fmt.Errorf("%w: unknown operator %q", ErrInvalidRule, s)
	}
}

// CellRef names one cell by its 0-indexed coordinates.
type CellRef struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (c CellRef) inBounds() bool {
	return c.Row >= 0 && c.Row < Size && c.Col >= 0 && c.Col < Size
}

// FixedCell is a literal clue: the cell at (Row, Col) holds Value.
type FixedCell struct {
	Row   int `json:"row"`
	Col   int `json:"col"`
	Value int `json:"value"`
}

// Rule is one arithmetic cage: the relation Op over Cells with the given
// Target value.
type Rule struct {
	Op     Op        `json:"op"`
	Target int       `json:"target"`
	Cells  []CellRef `json:"cells"`
}

// Ruleset is the static, puzzle-specific configuration: clue placements,
// arithmetic cage rules, and the structural group set the puzzle was
// published under. It is passed around by value and never held as ambient
// state.
type Ruleset struct {
	Fixed  []FixedCell `json:"fixed,omitempty"`
	Rules  []Rule      `json:"rules,omitempty"`
	Groups GroupSet    `json:"groups,omitempty"`
}

// Validate checks every entry of the ruleset and reports the first
// malformed one, wrapped in ErrInvalidRule. Validation runs to completion
// before any constraint is asserted, so a bad ruleset never reaches the
// oracle even partially.
func (rs Ruleset) Validate() error {
	switch rs.Groups {
	case GroupsAll, GroupsRowsCols:
	default:
		return fmt.Errorf("%w: unsupported group set %v", ErrInvalidRule, rs.Groups)
	}
	for i, f := range rs.Fixed {
		cell := CellRef{Row: f.Row, Col: f.Col}
		if !cell.inBounds() {
			return fmt.Errorf("%w: fixed[%d]: cell (%d,%d) out of bounds", ErrInvalidRule, i, f.Row, f.Col)
		}
		if f.Value < MinValue || f.Value > MaxValue {
			return fmt.Errorf("%w: fixed[%d]: value %d outside [%d,%d]", ErrInvalidRule, i, f.Value, MinValue, MaxValue)
		}
	}
	for i, r := range rs.Rules {
		for _, cell := range r.Cells {
			if !cell.inBounds() {
				return fmt.Errorf("%w: rules[%d]: cell (%d,%d) out of bounds", ErrInvalidRule, i, cell.Row, cell.Col)
			}
		}
		switch r.Op {
		case OpSum, OpProduct:
			if len(r.Cells) < 2 {
				return fmt.Errorf("%w: rules[%d]: %s needs at least two cells", ErrInvalidRule, i, r.Op)
			}
			if r.Op == OpProduct && r.Target < 1 {
				return fmt.Errorf("%w: rules[%d]: product target %d must be positive", ErrInvalidRule, i, r.Target)
			}
			if r.Op == OpSum && (r.Target < len(r.Cells)*MinValue || r.Target > len(r.Cells)*MaxValue) {
				return fmt.Errorf("%w: rules[%d]: sum target %d unreachable", ErrInvalidRule, i, r.Target)
			}
		case OpDifference:
			if len(r.Cells) != 2 {
				return fmt.Errorf("%w: rules[%d]: difference needs exactly two cells", ErrInvalidRule, i)
			}
			if r.Target < 0 || r.Target > MaxValue-MinValue {
				return fmt.Errorf("%w: rules[%d]: difference target %d outside [0,%d]", ErrInvalidRule, i, r.Target, MaxValue-MinValue)
			}
		case OpRatio:
			if len(r.Cells) != 2 {
				return fmt.Errorf("%w: rules[%d]: ratio needs exactly two cells", ErrInvalidRule, i)
			}
			if r.Target < 1 {
				return fmt.Errorf("%w: rules[%d]: ratio target %d must be positive", ErrInvalidRule, i, r.Target)
			}
		default:
			return fmt.Errorf("%w: rules[%d]: unsupported operator %v", ErrInvalidRule, i, r.Op)
		}
	}
	return nil
}

// CustomConstraints translates a ruleset into constraints over the grid's
// variables: every clue and every rule maps to exactly one constraint, in
// ruleset order, never merged or reordered. The ruleset is validated in
// full first; on failure nothing is translated.
func CustomConstraints(g *Grid, rs Ruleset) ([]Constraint, error) {
	if err := rs.Validate(); err != nil {
		return nil, err
	}
	cs := make([]Constraint, 0, len(rs.Fixed)+len(rs.Rules))

	for _, f := range rs.Fixed {
		v, err := g.Var(f.Row, f.Col)
		if err != nil {
			return nil, err
		}
		cs = append(cs, FixedConstraint(v, f.Value))
	}

	for _, r := range rs.Rules {
		vs := make([]Var, len(r.Cells))
		for j, cell := range r.Cells {
			v, err := g.Var(cell.Row, cell.Col)
			if err != nil {
				return nil, err
			}
			vs[j] = v
		}
		switch r.Op {
		case OpSum:
			cs = append(cs, SumConstraint(vs, r.Target))
		case OpDifference:
			cs = append(cs, DifferenceConstraint(vs[0], vs[1], r.Target))
		case OpProduct:
			cs = append(cs, ProductConstraint(vs, r.Target))
		case OpRatio:
			cs = append(cs, RatioConstraint(vs[0], vs[1], r.Target))
		}
	}

	return cs, nil
}
