package sudoku

import (
	"context"
	"fmt"
)

// Adapter wraps an oracle session with the batch assert / check / model
// protocol the driver uses. It tracks whether the last check was
// satisfiable so that model requests outside a sat window fail with
// ErrNoModel instead of leaking a stale model.
type Adapter struct {
	oracle  Oracle
	lastSat bool
}

// NewAdapter wraps an oracle session.
func NewAdapter(o Oracle) *Adapter {
	return &Adapter{oracle: o}
}

// AssertAll registers every constraint with the oracle in order. Constraints
// accumulate conjunctively across calls until a scope exit discards them.
// The first failing assertion aborts the batch.
func (a *Adapter) AssertAll(cs []Constraint) error {
	a.lastSat = false
	for i, c := range cs {
		if err := a.oracle.Assert(c); err != nil {
			return fmt.Errorf("constraint %d: %w", i, err)
		}
	}
	return nil
}

// Check runs a satisfiability check over everything asserted so far.
// Unknown is returned as-is, never treated as either definite outcome.
func (a *Adapter) Check(ctx context.Context) Verdict {
	v := a.oracle.Check(ctx)
	a.lastSat = v == Sat
	return v
}

// Model returns the witness of the most recent satisfiable check.
func (a *Adapter) Model() (Model, error) {
	if !a.lastSat {
		return nil, ErrNoModel
	}
	return a.oracle.Model()
}

// Scoped runs fn inside an oracle assertion scope and guarantees the scope
// is popped again, even when fn fails. Assertions and checks made inside fn
// cannot leak into later use of the session.
func (a *Adapter) Scoped(fn func() error) error {
	a.oracle.Push()
	defer func() {
		a.oracle.Pop()
		a.lastSat = false
	}()
	return fn()
}
