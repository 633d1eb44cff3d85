package fd

import (
	"context"
	"sort"
)

// searcher holds the mutable state of one Check call: working domains for
// every variable, an undo trail, and precomputed constraint degrees. The
// store itself is never mutated by search, so a failed or interrupted
// check leaves the asserted constraints untouched.
type searcher struct {
	store   *Store
	domains []BitSet
	trail   []change
	degree  []int
}

type change struct {
	v   Var
	dom BitSet
}

func newSearcher(s *Store) *searcher {
	domains := make([]BitSet, s.numVars)
	for i := range domains {
		domains[i] = NewBitSet(s.maxValue)
	}
	degree := make([]int, s.numVars)
	for _, c := range s.cons {
		for _, v := range c.vars() {
			if int(v) >= 0 && int(v) < len(degree) {
				degree[v]++
			}
		}
	}
	return &searcher{store: s, domains: domains, degree: degree}
}

func (se *searcher) dom(v Var) BitSet { return se.domains[v] }

// value returns the assigned value of a singleton variable.
func (se *searcher) value(v Var) int { return se.domains[v].SingletonValue() }

// setDomain installs a new domain for v, recording the old one on the
// trail so backtracking can restore it.
func (se *searcher) setDomain(v Var, nd BitSet) error {
	se.trail = append(se.trail, change{v: v, dom: se.domains[v]})
	se.domains[v] = nd
	if nd.Count() == 0 {
		return ErrDomainEmpty
	}
	return nil
}

func (se *searcher) snapshot() int { return len(se.trail) }

func (se *searcher) undo(to int) {
	for i := len(se.trail) - 1; i >= to; i-- {
		ch := se.trail[i]
		se.domains[ch.v] = ch.dom
	}
	se.trail = se.trail[:to]
}

// propagate runs every constraint to a fixpoint. Domains only shrink, so
// the loop terminates.
func (se *searcher) propagate() error {
	for {
		changed := false
		for _, c := range se.store.cons {
			ch, err := c.propagate(se)
			if err != nil {
				return err
			}
			if ch {
				changed = true
			}
		}
		if !changed {
			return nil
		}
	}
}

// assign narrows v to a single value and propagates the consequences.
func (se *searcher) assign(v Var, value int) error {
	d := se.domains[v]
	if !d.Has(value) {
		return ErrInconsistent
	}
	if err := se.setDomain(v, NewSingleton(d.n, value)); err != nil {
		return err
	}
	return se.propagate()
}

func (se *searcher) allAssigned() bool {
	for _, d := range se.domains {
		if !d.IsSingleton() {
			return false
		}
	}
	return true
}

// verify checks every asserted constraint against the full assignment.
// Propagators for the nonlinear constraints are incomplete, so this final
// check is what makes a reported solution trustworthy.
func (se *searcher) verify() bool {
	for _, c := range se.store.cons {
		if !c.satisfied(se) {
			return false
		}
	}
	return true
}

func (se *searcher) solution() []int {
	sol := make([]int, len(se.domains))
	for i, d := range se.domains {
		sol[i] = d.SingletonValue()
	}
	return sol
}

// selectVar picks the next variable to branch on using the dom/deg
// heuristic: smallest domain relative to constraint degree. Returns -1
// when every variable is assigned. Values are tried in ascending order.
func (se *searcher) selectVar() (Var, []int) {
	best := Var(-1)
	bestScore := 0.0
	for i, d := range se.domains {
		size := d.Count()
		if size <= 1 {
			continue
		}
		score := float64(size) / float64(1+se.degree[i])
		if best == -1 || score < bestScore {
			best = Var(i)
			bestScore = score
		}
	}
	if best == -1 {
		return -1, nil
	}
	var choices []int
	se.domains[best].IterateValues(func(v int) { choices = append(choices, v) })
	sort.Ints(choices)
	return best, choices
}

// run performs iterative backtracking search and returns the verdict.
func (se *searcher) run(ctx context.Context) Verdict {
	if err := se.propagate(); err != nil {
		return Unsat
	}
	if se.allAssigned() {
		if se.verify() {
			return Sat
		}
		return Unsat
	}

	type frame struct {
		snap    int
		v       Var
		idx     int
		choices []int
	}

	v, choices := se.selectVar()
	stack := []frame{{snap: se.snapshot(), v: v, choices: choices}}

	for len(stack) > 0 {
		select {
		case <-ctx.Done():
			return Unknown
		default:
		}

		f := &stack[len(stack)-1]
		// Roll back the previous attempt in this frame (and any deeper
		// frames that were already popped).
		se.undo(f.snap)

		if f.idx >= len(f.choices) {
			stack = stack[:len(stack)-1]
			continue
		}
		value := f.choices[f.idx]
		f.idx++

		if err := se.assign(f.v, value); err != nil {
			continue
		}
		if se.allAssigned() {
			if se.verify() {
				return Sat
			}
			continue
		}
		next, nextChoices := se.selectVar()
		if next == -1 {
			continue
		}
		stack = append(stack, frame{snap: se.snapshot(), v: next, choices: nextChoices})
	}
	return Unsat
}
