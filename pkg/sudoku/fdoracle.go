package sudoku

import (
	"context"
	"errors"
	"fmt"

	"github.com/an0ndev/z3-math-sudoku/internal/fd"
)

// fdOracle backs the Oracle contract with the in-tree finite-domain
// decision procedure. Variable handles map 1:1 between the two layers.
type fdOracle struct {
	store *fd.Store
}

// NewOracle returns a fresh oracle session backed by the finite-domain
// solver. Each puzzle instance gets its own session; sessions share no
// state.
func NewOracle() Oracle {
	return &fdOracle{store: fd.NewStore(MaxValue)}
}

func (o *fdOracle) NewVar() Var {
	return Var(o.store.NewVar())
}

// Assert translates one constraint into the solver's predicate language.
// The switch is exhaustive over Kind.
func (o *fdOracle) Assert(c Constraint) error {
	vs := make([]fd.Var, len(c.Vars))
	for i, v := range c.Vars {
		vs[i] = fd.Var(v)
	}
	var err error
	switch c.Kind {
	case KindRange:
		err = o.store.Range(vs[0], MinValue, MaxValue)
	case KindDistinct:
		err = o.store.AllDifferent(vs)
	case KindFixed:
		err = o.store.Eq(vs[0], c.Target)
	case KindSum:
		err = o.store.Sum(vs, c.Target)
	case KindDifference:
		err = o.store.AbsDiff(vs[0], vs[1], c.Target)
	case KindProduct:
		err = o.store.Product(vs, c.Target)
	case KindRatio:
		err = o.store.Ratio(vs[0], vs[1], c.Target)
	case KindExclude:
		err = o.store.Exclude(vs, c.Values)
	default:
		return fmt.Errorf("%w: unsupported constraint kind %v", ErrInvalidRule, c.Kind)
	}
	if err != nil {
		return fmt.Errorf("assert %s: %w", c, err)
	}
	return nil
}

func (o *fdOracle) Check(ctx context.Context) Verdict {
	switch o.store.Check(ctx) {
	case fd.Sat:
		return Sat
	case fd.Unsat:
		return Unsat
	default:
		return Unknown
	}
}

func (o *fdOracle) Model() (Model, error) {
	values, err := o.store.Model()
	if err != nil {
		if errors.Is(err, fd.ErrNoModel) {
			return nil, ErrNoModel
		}
		return nil, err
	}
	m := make(Model, len(values))
	for i, v := range values {
		m[Var(i)] = v
	}
	return m, nil
}

func (o *fdOracle) Push() { o.store.Push() }

func (o *fdOracle) Pop() { o.store.Pop() }
