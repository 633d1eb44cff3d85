package fd

import (
	"context"
	"errors"
)

var (
	// ErrInconsistent signals a constraint that can no longer be satisfied
	// under the current domains.
	ErrInconsistent = errors.New("constraint store is inconsistent")

	// ErrDomainEmpty signals that propagation emptied a variable's domain.
	ErrDomainEmpty = errors.New("domain became empty")

	// ErrInvalidArgument signals a malformed assertion (unknown variable,
	// nonsensical target, mismatched slice lengths).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNoModel is returned by Model when the last Check did not report Sat.
	ErrNoModel = errors.New("no model available")
)

// Verdict is the outcome of a satisfiability check.
type Verdict int

const (
	// Unknown means the check did not finish, typically because the
	// caller's context expired. It is never coerced to Sat or Unsat.
	Unknown Verdict = iota
	// Sat means a satisfying assignment was found; Model returns it.
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

// Var is a handle to a decision variable issued by a Store.
type Var int

// Store accumulates variables and constraints and answers satisfiability
// queries over their conjunction. Assertions only record; all propagation
// and search happens inside Check, so constraint construction stays pure
// and cheap. Push/Pop bracket assertions into scopes that can be rolled
// back without disturbing earlier state.
//
// A Store is not safe for concurrent use; independent problems get
// independent stores.
type Store struct {
	maxValue int
	numVars  int
	cons     []constraint
	marks    []int

	hasModel bool
	model    []int
}

// NewStore creates a store whose variables range over 1..maxValue.
func NewStore(maxValue int) *Store {
	if maxValue < 1 {
		maxValue = 1
	}
	return &Store{maxValue: maxValue}
}

// MaxValue reports the upper end of the variable universe.
func (s *Store) MaxValue() int { return s.maxValue }

// NumVars reports how many variables have been created.
func (s *Store) NumVars() int { return s.numVars }

// NewVar allocates a fresh variable with the full domain 1..MaxValue.
func (s *Store) NewVar() Var {
	v := Var(s.numVars)
	s.numVars++
	s.invalidate()
	return v
}

func (s *Store) invalidate() {
	s.hasModel = false
}

func (s *Store) checkVar(v Var) error {
	if int(v) < 0 || int(v) >= s.numVars {
		return ErrInvalidArgument
	}
	return nil
}

func (s *Store) checkVars(vs []Var) error {
	if len(vs) == 0 {
		return ErrInvalidArgument
	}
	for _, v := range vs {
		if err := s.checkVar(v); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) add(c constraint) {
	s.cons = append(s.cons, c)
	s.invalidate()
}

// Range restricts v to [lo, hi].
func (s *Store) Range(v Var, lo, hi int) error {
	if err := s.checkVar(v); err != nil {
		return err
	}
	if lo > hi {
		return ErrInvalidArgument
	}
	s.add(&rangeCon{v: v, lo: lo, hi: hi})
	return nil
}

// Eq pins v to value.
func (s *Store) Eq(v Var, value int) error {
	if err := s.checkVar(v); err != nil {
		return err
	}
	s.add(&eqCon{v: v, value: value})
	return nil
}

// AllDifferent makes the variables pairwise distinct.
func (s *Store) AllDifferent(vs []Var) error {
	if err := s.checkVars(vs); err != nil {
		return err
	}
	s.add(&allDiffCon{vs: append([]Var(nil), vs...)})
	return nil
}

// Sum asserts Σ vs = target.
func (s *Store) Sum(vs []Var, target int) error {
	if err := s.checkVars(vs); err != nil {
		return err
	}
	s.add(&sumCon{vs: append([]Var(nil), vs...), target: target})
	return nil
}

// Product asserts Π vs = target. The target must be positive since all
// variable values are.
func (s *Store) Product(vs []Var, target int) error {
	if err := s.checkVars(vs); err != nil {
		return err
	}
	if target < 1 {
		return ErrInvalidArgument
	}
	s.add(&productCon{vs: append([]Var(nil), vs...), target: target})
	return nil
}

// AbsDiff asserts |a - b| = target.
func (s *Store) AbsDiff(a, b Var, target int) error {
	if err := s.checkVars([]Var{a, b}); err != nil {
		return err
	}
	if target < 0 {
		return ErrInvalidArgument
	}
	s.add(&absDiffCon{a: a, b: b, target: target})
	return nil
}

// Ratio asserts a = factor*b or b = factor*a.
func (s *Store) Ratio(a, b Var, factor int) error {
	if err := s.checkVars([]Var{a, b}); err != nil {
		return err
	}
	if factor < 1 {
		return ErrInvalidArgument
	}
	s.add(&ratioCon{a: a, b: b, factor: factor})
	return nil
}

// Exclude forbids the exact assignment vs[i] = values[i] for all i: any
// satisfying assignment must differ in at least one position.
func (s *Store) Exclude(vs []Var, values []int) error {
	if err := s.checkVars(vs); err != nil {
		return err
	}
	if len(vs) != len(values) {
		return ErrInvalidArgument
	}
	s.add(&excludeCon{
		vs:     append([]Var(nil), vs...),
		values: append([]int(nil), values...),
	})
	return nil
}

// Push opens an assertion scope. Constraints asserted after Push are
// discarded by the matching Pop.
func (s *Store) Push() {
	s.marks = append(s.marks, len(s.cons))
}

// Pop discards every constraint asserted since the matching Push. Popping
// with no open scope is a no-op.
func (s *Store) Pop() {
	if len(s.marks) == 0 {
		return
	}
	mark := s.marks[len(s.marks)-1]
	s.marks = s.marks[:len(s.marks)-1]
	s.cons = s.cons[:mark]
	s.invalidate()
}

// ConstraintCount reports how many constraints are currently asserted.
func (s *Store) ConstraintCount() int { return len(s.cons) }

// Check decides satisfiability of the asserted conjunction. It returns
// Unknown when ctx expires before the search finishes; expiry is reported,
// never guessed around. After Sat, Model returns the witness.
func (s *Store) Check(ctx context.Context) Verdict {
	se := newSearcher(s)
	verdict := se.run(ctx)
	if verdict == Sat {
		s.model = se.solution()
		s.hasModel = true
	} else {
		s.hasModel = false
	}
	return verdict
}

// Model returns the assignment found by the most recent Sat check, indexed
// by Var. It fails with ErrNoModel if the last check was not Sat or the
// store changed since.
func (s *Store) Model() ([]int, error) {
	if !s.hasModel {
		return nil, ErrNoModel
	}
	return append([]int(nil), s.model...), nil
}
