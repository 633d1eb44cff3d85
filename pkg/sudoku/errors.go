package sudoku

import "errors"

var (
	// ErrOutOfBounds reports a cell coordinate outside the 9x9 grid.
	ErrOutOfBounds = errors.New("cell coordinate out of bounds")

	// ErrInvalidRule reports a malformed ruleset entry: unknown operator,
	// wrong arity, out-of-range cell or target. Detected in full before
	// any constraint reaches the oracle.
	ErrInvalidRule = errors.New("invalid rule")

	// ErrNoModel reports a model request without a preceding satisfiable
	// check. This is a contract violation by the caller, not a solver
	// outcome.
	ErrNoModel = errors.New("no model available")

	// ErrIndeterminate reports that the oracle answered unknown, typically
	// on context expiry. The result is surfaced, never coerced to sat or
	// unsat.
	ErrIndeterminate = errors.New("solver returned an indeterminate result")
)
