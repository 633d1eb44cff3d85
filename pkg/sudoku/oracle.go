package sudoku

import "context"

// Verdict is the outcome of an oracle satisfiability check.
type Verdict int

const (
	// Unknown means the oracle could not decide, typically because the
	// caller's context expired.
	Unknown Verdict = iota
	// Sat means a satisfying assignment exists and Model returns one.
	Sat
	// Unsat means the asserted constraints admit no assignment.
	Unsat
)

func (v Verdict) String() string {
	switch v {
	case Sat:
		return "sat"
	case Unsat:
		return "unsat"
	default:
		return "unknown"
	}
}

// Var is a decision-variable handle issued by an oracle.
type Var int

// Model maps every decision variable to the concrete value the oracle
// assigned to it. A model is valid only immediately after a Sat check.
type Model map[Var]int

// Oracle is the decision-procedure boundary. Assertions accumulate as a
// conjunction until popped; Check decides satisfiability of the current
// conjunction; Push and Pop bracket assertions into rollback scopes.
//
// Implementations need not be safe for concurrent use. Independent puzzle
// instances get independent oracle sessions.
type Oracle interface {
	// NewVar allocates a fresh decision variable.
	NewVar() Var

	// Assert registers one constraint with the oracle.
	Assert(c Constraint) error

	// Check decides satisfiability of everything asserted so far. A
	// context deadline maps to Unknown.
	Check(ctx context.Context) Verdict

	// Model returns the witness of the most recent Sat check, or
	// ErrNoModel if there is none.
	Model() (Model, error)

	// Push opens an assertion scope.
	Push()

	// Pop discards every assertion made since the matching Push.
	Pop()
}
