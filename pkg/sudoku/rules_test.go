package sudoku

import (
	"errors"
	"testing"
)

func TestRulesetValidateRejectsBadEntries(t *testing.T) {
	cases := []struct {
		name string
		rs   Ruleset
	}{
		{"fixed cell out of bounds", Ruleset{Fixed: []FixedCell{{Row: 9, Col: 0, Value: 1}}}},
		{"fixed value too large", Ruleset{Fixed: []FixedCell{{Row: 0, Col: 0, Value: 10}}}},
		{"fixed value too small", Ruleset{Fixed: []FixedCell{{Row: 0, Col: 0, Value: 0}}}},
		{"rule cell out of bounds", Ruleset{Rules: []Rule{{Op: OpSum, Target: 5, Cells: []CellRef{{0, 0}, {0, 9}}}}}},
		{"difference arity", Ruleset{Rules: []Rule{{Op: OpDifference, Target: 3, Cells: []CellRef{{0, 0}, {0, 1}, {0, 2}}}}}},
		{"difference target", Ruleset{Rules: []Rule{{Op: OpDifference, Target: 9, Cells: []CellRef{{0, 0}, {0, 1}}}}}},
		{"ratio arity", Ruleset{Rules: []Rule{{Op: OpRatio, Target: 2, Cells: []CellRef{{0, 0}}}}}},
		{"ratio target", Ruleset{Rules: []Rule{{Op: OpRatio, Target: 0, Cells: []CellRef{{0, 0}, {0, 1}}}}}},
		{"product target", Ruleset{Rules: []Rule{{Op: OpProduct, Target: 0, Cells: []CellRef{{0, 0}, {0, 1}}}}}},
		{"sum too small", Ruleset{Rules: []Rule{{Op: OpSum, Target: 1, Cells: []CellRef{{0, 0}, {0, 1}}}}}},
		{"sum too large", Ruleset{Rules: []Rule{{Op: OpSum, Target: 19, Cells: []CellRef{{0, 0}, {0, 1}}}}}},
		{"single cell sum", Ruleset{Rules: []Rule{{Op: OpSum, Target: 5, Cells: []CellRef{{0, 0}}}}}},
		{"unknown operator", Ruleset{Rules: []Rule{{Op: Op(99), Target: 5, Cells: []CellRef{{0, 0}, {0, 1}}}}}},
		{"unknown group set", Ruleset{Groups: GroupSet(99)}},
	}
	for _, tc := range cases {
		if err := tc.rs.Validate(); !errors.Is(err, ErrInvalidRule) {
			t.Errorf("%s: expected ErrInvalidRule, got %v", tc.name, err)
		}
	}
}

func TestRulesetValidateAcceptsSample(t *testing.T) {
	if err := SamplePuzzle().Validate(); err != nil {
		t.Fatalf("sample puzzle must validate: %v", err)
	}
}

// Translation is 1:1 and order-preserving: clues first, then rules, one
// constraint per entry.
func TestCustomConstraintsOneToOne(t *testing.T) {
	g := NewGrid(&fakeOracle{})
	rs := Ruleset{
		Fixed: []FixedCell{
			{Row: 0, Col: 0, Value: 5},
			{Row: 8, Col: 8, Value: 7},
		},
		Rules: []Rule{
			{Op: OpSum, Target: 10, Cells: []CellRef{{1, 1}, {1, 2}}},
			{Op: OpDifference, Target: 3, Cells: []CellRef{{2, 1}, {2, 2}}},
			{Op: OpProduct, Target: 12, Cells: []CellRef{{3, 1}, {3, 2}}},
			{Op: OpRatio, Target: 2, Cells: []CellRef{{4, 1}, {4, 2}}},
		},
	}
	cs, err := CustomConstraints(g, rs)
	if err != nil {
		t.Fatalf("CustomConstraints: %v", err)
	}
	if len(cs) != 6 {
		t.Fatalf("expected 6 constraints, got %d", len(cs))
	}
	wantKinds := []Kind{KindFixed, KindFixed, KindSum, KindDifference, KindProduct, KindRatio}
	for i, k := range wantKinds {
		if cs[i].Kind != k {
			t.Errorf("constraint %d: kind %v, want %v", i, cs[i].Kind, k)
		}
	}
	if cs[0].Target != 5 || cs[1].Target != 7 {
		t.Errorf("clue targets wrong: %v %v", cs[0], cs[1])
	}
	v, err := g.Var(1, 2)
	if err != nil {
		t.Fatalf("Var: %v", err)
	}
	if cs[2].Vars[1] != v {
		t.Errorf("sum constraint references wrong variable")
	}
}

func TestCustomConstraintsFailFast(t *testing.T) {
	g := NewGrid(&fakeOracle{})
	rs := Ruleset{
		Rules: []Rule{
			{Op: OpSum, Target: 10, Cells: []CellRef{{1, 1}, {1, 2}}},
			{Op: OpSum, Target: 10, Cells: []CellRef{{1, 1}, {1, 99}}},
		},
	}
	cs, err := CustomConstraints(g, rs)
	if !errors.Is(err, ErrInvalidRule) {
		t.Fatalf("expected ErrInvalidRule, got %v", err)
	}
	if cs != nil {
		t.Fatalf("no constraints may be produced from an invalid ruleset")
	}
}

func TestParseOp(t *testing.T) {
	for _, op := range []Op{OpSum, OpDifference, OpProduct, OpRatio} {
		got, err := ParseOp(op.String())
		if err != nil {
			t.Fatalf("ParseOp(%q): %v", op.String(), err)
		}
		if got != op {
			t.Fatalf("ParseOp(%q) = %v", op.String(), got)
		}
	}
	if _, err := ParseOp("modulo"); !errors.Is(err, ErrInvalidRule) {
		t.Fatalf("expected ErrInvalidRule for unknown operator, got %v", err)
	}
}
