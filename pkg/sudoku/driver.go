package sudoku

import "context"

// Status is the terminal outcome of a solve-and-verify run.
type Status int

const (
	// StatusIndeterminate means the oracle answered unknown at one of the
	// two checks, typically on context expiry.
	StatusIndeterminate Status = iota
	// StatusUnsatisfiable means the ruleset admits no solution. This is a
	// normal domain outcome, not an error.
	StatusUnsatisfiable
	// StatusVerifiedUnique means exactly one solution exists; Result.First
	// holds it.
	StatusVerifiedUnique
	// StatusMultipleSolutions means at least two solutions exist;
	// Result.First and Result.Second are distinct witnesses.
	StatusMultipleSolutions
)

func (s Status) String() string {
	switch s {
	case StatusUnsatisfiable:
		return "unsatisfiable"
	case StatusVerifiedUnique:
		return "verified-unique"
	case StatusMultipleSolutions:
		return "multiple-solutions"
	default:
		return "indeterminate"
	}
}

// Result is the outcome of SolveAndVerify: a status plus zero, one, or two
// solution grids.
type Result struct {
	Status Status
	First  *Solution
	Second *Solution
}

// SolveAndVerify solves a math sudoku instance against a fresh oracle
// session and decides uniqueness.
//
// The ruleset is validated in full before the oracle sees anything. The
// driver then asserts the structural and custom constraints, checks
// satisfiability, and on success re-checks inside an assertion scope with
// the found solution excluded: unsat there proves uniqueness, sat yields a
// second witness. An unknown verdict at either check surfaces as
// StatusIndeterminate together with ErrIndeterminate; it is never coerced
// into a definite answer.
//
// The oracle session must be fresh: the driver owns its constraint stack
// for the duration of the call.
func SolveAndVerify(ctx context.Context, o Oracle, rs Ruleset) (Result, error) {
	if err := rs.Validate(); err != nil {
		return Result{}, err
	}

	grid := NewGrid(o)
	constraints := StructuralConstraints(grid, rs.Groups)
	custom, err := CustomConstraints(grid, rs)
	if err != nil {
		return Result{}, err
	}
	constraints = append(constraints, custom...)

	adapter := NewAdapter(o)
	if err := adapter.AssertAll(constraints); err != nil {
		return Result{}, err
	}

	switch adapter.Check(ctx) {
	case Unsat:
		return Result{Status: StatusUnsatisfiable}, nil
	case Unknown:
		return Result{Status: StatusIndeterminate}, ErrIndeterminate
	}

	model, err := adapter.Model()
	if err != nil {
		return Result{}, err
	}
	first, err := NewSolution(grid, model)
	if err != nil {
		return Result{}, err
	}

	result := Result{Status: StatusIndeterminate, First: &first}
	err = adapter.Scoped(func() error {
		if err := adapter.AssertAll([]Constraint{excludeSolution(grid, first)}); err != nil {
			return err
		}
		switch adapter.Check(ctx) {
		case Unsat:
			result.Status = StatusVerifiedUnique
			return nil
		case Unknown:
			return ErrIndeterminate
		}
		model2, err := adapter.Model()
		if err != nil {
			return err
		}
		second, err := NewSolution(grid, model2)
		if err != nil {
			return err
		}
		result.Second = &second
		result.Status = StatusMultipleSolutions
		return nil
	})
	if err != nil {
		return result, err
	}
	return result, nil
}

// excludeSolution builds the disjunction "at least one cell differs from
// s", the negation of "the grid equals s exactly".
func excludeSolution(g *Grid, s Solution) Constraint {
	vars := g.Vars()
	values := make([]int, 0, len(vars))
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			values = append(values, s[row][col])
		}
	}
	return ExcludeConstraint(vars, values)
}
