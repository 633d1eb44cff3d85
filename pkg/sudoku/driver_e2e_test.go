package sudoku

import (
	"context"
	"errors"
	"testing"
	"time"
)

// End-to-end scenarios against the finite-domain oracle.

func TestEndToEndContradictoryClues(t *testing.T) {
	rs := Ruleset{Fixed: []FixedCell{
		{Row: 0, Col: 0, Value: 1},
		{Row: 0, Col: 0, Value: 2},
	}}
	res, err := SolveAndVerify(context.Background(), NewOracle(), rs)
	if err != nil {
		t.Fatalf("SolveAndVerify: %v", err)
	}
	if res.Status != StatusUnsatisfiable {
		t.Fatalf("conflicting clues must be unsatisfiable, got %v", res.Status)
	}
}

// Classic sudoku without any clues is never unique: the driver must find
// two structurally valid, distinct grids.
func TestEndToEndEmptyRuleset(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	res, err := SolveAndVerify(ctx, NewOracle(), Ruleset{})
	if err != nil {
		t.Fatalf("SolveAndVerify: %v", err)
	}
	if res.Status != StatusMultipleSolutions {
		t.Fatalf("empty ruleset must have multiple solutions, got %v", res.Status)
	}
	if !validSolution(*res.First) {
		t.Fatalf("first witness violates structural rules:\n%s", res.First)
	}
	if !validSolution(*res.Second) {
		t.Fatalf("second witness violates structural rules:\n%s", res.Second)
	}
	if res.First.Equal(*res.Second) {
		t.Fatalf("witnesses must differ in at least one cell")
	}
}

// A complete pre-solved grid given as 81 clues has exactly that one
// solution, and the uniqueness probe still runs.
func TestEndToEndSolvedGrid(t *testing.T) {
	want := solvedGrid()
	res, err := SolveAndVerify(context.Background(), NewOracle(), fixedRuleset(want))
	if err != nil {
		t.Fatalf("SolveAndVerify: %v", err)
	}
	if res.Status != StatusVerifiedUnique {
		t.Fatalf("expected verified-unique, got %v", res.Status)
	}
	if !res.First.Equal(want) {
		t.Fatalf("solution must equal the input grid:\n%s", res.First)
	}
}

// Clues for 80 cells plus a product cage pinning the last one: the cage
// pipeline must carry the solve to the same unique grid.
func TestEndToEndCageForcedCell(t *testing.T) {
	want := solvedGrid()
	rs := fixedRuleset(want)
	rs.Fixed = rs.Fixed[1:] // drop the clue for (0,0)
	rs.Rules = []Rule{{
		Op:     OpProduct,
		Target: want[0][0] * want[0][1],
		Cells:  []CellRef{{Row: 0, Col: 0}, {Row: 0, Col: 1}},
	}}
	res, err := SolveAndVerify(context.Background(), NewOracle(), rs)
	if err != nil {
		t.Fatalf("SolveAndVerify: %v", err)
	}
	if res.Status != StatusVerifiedUnique {
		t.Fatalf("expected verified-unique, got %v", res.Status)
	}
	if !res.First.Equal(want) {
		t.Fatalf("solution must equal the original grid:\n%s", res.First)
	}
}

func TestEndToEndRoundTripClue(t *testing.T) {
	// A fixed clue must survive into every returned solution.
	rs := Ruleset{Fixed: []FixedCell{{Row: 4, Col: 7, Value: 3}}}
	res, err := SolveAndVerify(context.Background(), NewOracle(), rs)
	if err != nil {
		t.Fatalf("SolveAndVerify: %v", err)
	}
	if res.Status != StatusMultipleSolutions {
		t.Fatalf("one clue cannot make sudoku unique, got %v", res.Status)
	}
	if res.First[4][7] != 3 || res.Second[4][7] != 3 {
		t.Fatalf("clue not honored: %d and %d", res.First[4][7], res.Second[4][7])
	}
}

func TestEndToEndExpiredContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := SolveAndVerify(ctx, NewOracle(), Ruleset{})
	if !errors.Is(err, ErrIndeterminate) {
		t.Fatalf("expected ErrIndeterminate on expired context, got %v", err)
	}
	if res.Status != StatusIndeterminate {
		t.Fatalf("expected indeterminate status, got %v", res.Status)
	}
}
