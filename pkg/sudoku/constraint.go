package sudoku

import (
	"fmt"
	"strings"
)

// Kind enumerates the closed set of constraint variants. Oracles translate
// each kind with an exhaustive switch, so adding a kind is a compile-time
// visible extension.
type Kind int

const (
	// KindRange restricts one variable to the cell domain [MinValue, MaxValue].
	KindRange Kind = iota
	// KindDistinct makes a group of variables pairwise distinct.
	KindDistinct
	// KindFixed pins one variable to a literal clue value (Target).
	KindFixed
	// KindSum requires the variables to add up to Target.
	KindSum
	// KindDifference requires |a - b| = Target over exactly two variables.
	KindDifference
	// KindProduct requires the variables to multiply to Target.
	KindProduct
	// KindRatio requires a = Target*b or b = Target*a over exactly two
	// variables.
	KindRatio
	// KindExclude forbids one exact assignment: at least one variable must
	// differ from its entry in Values. Used by the uniqueness probe.
	KindExclude
)

func (k Kind) String() string {
	switch k {
	case KindRange:
		return "range"
	case KindDistinct:
		return "distinct"
	case KindFixed:
		return "fixed"
	case KindSum:
		return "sum"
	case KindDifference:
		return "difference"
	case KindProduct:
		return "product"
	case KindRatio:
		return "ratio"
	case KindExclude:
		return "exclude"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Constraint is one logical predicate over oracle variables. Values is only
// populated for KindExclude, where it parallels Vars.
type Constraint struct {
	Kind   Kind
	Vars   []Var
	Target int
	Values []int
}

// RangeConstraint restricts v to the cell domain.
func RangeConstraint(v Var) Constraint {
	return Constraint{Kind: KindRange, Vars: []Var{v}}
}

// DistinctConstraint makes the given variables pairwise distinct.
func DistinctConstraint(vs []Var) Constraint {
	return Constraint{Kind: KindDistinct, Vars: append([]Var(nil), vs...)}
}

// FixedConstraint pins v to value.
func FixedConstraint(v Var, value int) Constraint {
	return Constraint{Kind: KindFixed, Vars: []Var{v}, Target: value}
}

// SumConstraint requires the variables to add up to target.
func SumConstraint(vs []Var, target int) Constraint {
	return Constraint{Kind: KindSum, Vars: append([]Var(nil), vs...), Target: target}
}

// DifferenceConstraint requires |a - b| = target.
func DifferenceConstraint(a, b Var, target int) Constraint {
	return Constraint{Kind: KindDifference, Vars: []Var{a, b}, Target: target}
}

// ProductConstraint requires the variables to multiply to target.
func ProductConstraint(vs []Var, target int) Constraint {
	return Constraint{Kind: KindProduct, Vars: append([]Var(nil), vs...), Target: target}
}

// RatioConstraint requires a = target*b or b = target*a.
func RatioConstraint(a, b Var, target int) Constraint {
	return Constraint{Kind: KindRatio, Vars: []Var{a, b}, Target: target}
}

// ExcludeConstraint forbids the exact assignment vs[i] = values[i] for all
// i simultaneously.
func ExcludeConstraint(vs []Var, values []int) Constraint {
	return Constraint{
		Kind:   KindExclude,
		Vars:   append([]Var(nil), vs...),
		Values: append([]int(nil), values...),
	}
}

func (c Constraint) String() string {
	var sb strings.Builder
	sb.WriteString(c.Kind.String())
	sb.WriteString("(")
	for i, v := range c.Vars {
		if i > 0 {
			sb.WriteString(",")
		}
		fmt.Fprintf(&sb, "v%d", int(v))
	}
	switch c.Kind {
	case KindRange, KindDistinct, KindExclude:
	default:
		fmt.Fprintf(&sb, ";%d", c.Target)
	}
	sb.WriteString(")")
	return sb.String()
}
