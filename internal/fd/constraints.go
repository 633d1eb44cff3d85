package fd

// Propagating constraints over finite-domain variables. Each constraint can
// narrow domains (propagate) and decide whether a full assignment satisfies
// it (satisfied). Propagation is deliberately incomplete for the nonlinear
// constraints; the search verifies every constraint on full assignments, so
// weak propagation costs time, never correctness.

// constraint is the contract every asserted predicate implements.
type constraint interface {
	// vars returns the variables the constraint ranges over.
	vars() []Var

	// propagate narrows the domains of the constraint's variables.
	// Returns true if any domain changed, or an error when the constraint
	// became unsatisfiable under the current domains.
	propagate(se *searcher) (bool, error)

	// satisfied reports whether the constraint holds once all of its
	// variables are assigned. Undefined before that point.
	satisfied(se *searcher) bool
}

// keep builds a new domain containing the values of b for which pred holds.
func keep(b BitSet, pred func(v int) bool) BitSet {
	nb := BitSet{n: b.n, words: make([]uint64, len(b.words))}
	b.IterateValues(func(v int) {
		if pred(v) {
			nb.words[(v-1)/64] |= 1 << uint((v-1)%64)
		}
	})
	return nb
}

const mulClamp = 1 << 40

// clampMul multiplies non-negative ints, saturating well below overflow.
func clampMul(a, b int) int {
	if a > mulClamp || b > mulClamp {
		return mulClamp
	}
	p := a * b
	if p > mulClamp {
		return mulClamp
	}
	return p
}

// rangeCon restricts a variable to [lo, hi].
type rangeCon struct {
	v      Var
	lo, hi int
}

func (c *rangeCon) vars() []Var { return []Var{c.v} }

func (c *rangeCon) propagate(se *searcher) (bool, error) {
	d := se.dom(c.v)
	nd := d.KeepRange(c.lo, c.hi)
	if nd.Equal(d) {
		return false, nil
	}
	return true, se.setDomain(c.v, nd)
}

func (c *rangeCon) satisfied(se *searcher) bool {
	v := se.value(c.v)
	return v >= c.lo && v <= c.hi
}

// eqCon pins a variable to a single value.
type eqCon struct {
	v     Var
	value int
}

func (c *eqCon) vars() []Var { return []Var{c.v} }

func (c *eqCon) propagate(se *searcher) (bool, error) {
	d := se.dom(c.v)
	if d.IsSingleton() && d.SingletonValue() == c.value {
		return false, nil
	}
	if !d.Has(c.value) {
		return false, ErrInconsistent
	}
	return true, se.setDomain(c.v, NewSingleton(d.n, c.value))
}

func (c *eqCon) satisfied(se *searcher) bool { return se.value(c.v) == c.value }

// allDiffCon keeps a group of variables pairwise distinct. Propagation is
// the singleton-peer pruning scheme: a bound variable's value is removed
// from every other domain in the group.
type allDiffCon struct {
	vs []Var
}

func (c *allDiffCon) vars() []Var { return c.vs }

func (c *allDiffCon) propagate(se *searcher) (bool, error) {
	seen := make(map[int]bool, len(c.vs))
	for _, v := range c.vs {
		d := se.dom(v)
		if d.IsSingleton() {
			val := d.SingletonValue()
			if seen[val] {
				return false, ErrInconsistent
			}
			seen[val] = true
		}
	}
	changed := false
	for _, v := range c.vs {
		d := se.dom(v)
		if !d.IsSingleton() {
			continue
		}
		val := d.SingletonValue()
		for _, other := range c.vs {
			if other == v {
				continue
			}
			od := se.dom(other)
			if od.Has(val) {
				if err := se.setDomain(other, od.Remove(val)); err != nil {
					return false, err
				}
				changed = true
			}
		}
	}
	return changed, nil
}

func (c *allDiffCon) satisfied(se *searcher) bool {
	seen := make(map[int]bool, len(c.vs))
	for _, v := range c.vs {
		val := se.value(v)
		if seen[val] {
			return false
		}
		seen[val] = true
	}
	return true
}

// sumCon enforces Σ vars = target with bounds-consistent pruning.
type sumCon struct {
	vs     []Var
	target int
}

func (c *sumCon) vars() []Var { return c.vs }

func (c *sumCon) propagate(se *searcher) (bool, error) {
	totalMin, totalMax := 0, 0
	mins := make([]int, len(c.vs))
	maxs := make([]int, len(c.vs))
	for i, v := range c.vs {
		d := se.dom(v)
		mins[i], maxs[i] = d.Min(), d.Max()
		if mins[i] == 0 {
			return false, ErrDomainEmpty
		}
		totalMin += mins[i]
		totalMax += maxs[i]
	}
	if totalMin > c.target || totalMax < c.target {
		return false, ErrInconsistent
	}
	changed := false
	for i, v := range c.vs {
		othersMin := totalMin - mins[i]
		othersMax := totalMax - maxs[i]
		d := se.dom(v)
		nd := d.KeepRange(c.target-othersMax, c.target-othersMin)
		if !nd.Equal(d) {
			if err := se.setDomain(v, nd); err != nil {
				return false, err
			}
			changed = true
		}
	}
	return changed, nil
}

func (c *sumCon) satisfied(se *searcher) bool {
	sum := 0
	for _, v := range c.vs {
		sum += se.value(v)
	}
	return sum == c.target
}

// productCon enforces Π vars = target. Values are positive, so every value
// of a participating variable must divide the target; bounds on the partial
// product prune further.
type productCon struct {
	vs     []Var
	target int
}

func (c *productCon) vars() []Var { return c.vs }

func (c *productCon) propagate(se *searcher) (bool, error) {
	mins := make([]int, len(c.vs))
	maxs := make([]int, len(c.vs))
	for i, v := range c.vs {
		d := se.dom(v)
		mins[i], maxs[i] = d.Min(), d.Max()
		if mins[i] == 0 {
			return false, ErrDomainEmpty
		}
	}
	changed := false
	for i, v := range c.vs {
		othersMin, othersMax := 1, 1
		for j := range c.vs {
			if j == i {
				continue
			}
			othersMin = clampMul(othersMin, mins[j])
			othersMax = clampMul(othersMax, maxs[j])
		}
		d := se.dom(v)
		nd := keep(d, func(val int) bool {
			if c.target%val != 0 {
				return false
			}
			return val*othersMin <= c.target && val*othersMax >= c.target
		})
		if nd.Count() == 0 {
			return false, ErrInconsistent
		}
		if !nd.Equal(d) {
			if err := se.setDomain(v, nd); err != nil {
				return false, err
			}
			changed = true
		}
	}
	return changed, nil
}

func (c *productCon) satisfied(se *searcher) bool {
	prod := 1
	for _, v := range c.vs {
		prod = clampMul(prod, se.value(v))
	}
	return prod == c.target
}

// absDiffCon enforces |a - b| = target with arc-consistent pruning.
type absDiffCon struct {
	a, b   Var
	target int
}

func (c *absDiffCon) vars() []Var { return []Var{c.a, c.b} }

func (c *absDiffCon) propagate(se *searcher) (bool, error) {
	changed, err := c.pruneSide(se, c.a, c.b)
	if err != nil {
		return false, err
	}
	ch2, err := c.pruneSide(se, c.b, c.a)
	if err != nil {
		return false, err
	}
	return changed || ch2, nil
}

func (c *absDiffCon) pruneSide(se *searcher, x, y Var) (bool, error) {
	dx, dy := se.dom(x), se.dom(y)
	nd := keep(dx, func(v int) bool {
		return dy.Has(v+c.target) || dy.Has(v-c.target)
	})
	if nd.Count() == 0 {
		return false, ErrInconsistent
	}
	if nd.Equal(dx) {
		return false, nil
	}
	return true, se.setDomain(x, nd)
}

func (c *absDiffCon) satisfied(se *searcher) bool {
	d := se.value(c.a) - se.value(c.b)
	if d < 0 {
		d = -d
	}
	return d == c.target
}

// ratioCon enforces a = factor*b or b = factor*a, whichever direction
// yields the integer quotient. Both directions are admitted; the relation
// is symmetric in its operands.
type ratioCon struct {
	a, b   Var
	factor int
}

func (c *ratioCon) vars() []Var { return []Var{c.a, c.b} }

func (c *ratioCon) propagate(se *searcher) (bool, error) {
	changed, err := c.pruneSide(se, c.a, c.b)
	if err != nil {
		return false, err
	}
	ch2, err := c.pruneSide(se, c.b, c.a)
	if err != nil {
		return false, err
	}
	return changed || ch2, nil
}

func (c *ratioCon) pruneSide(se *searcher, x, y Var) (bool, error) {
	dx, dy := se.dom(x), se.dom(y)
	nd := keep(dx, func(v int) bool {
		if v%c.factor == 0 && dy.Has(v/c.factor) {
			return true
		}
		return dy.Has(v * c.factor)
	})
	if nd.Count() == 0 {
		return false, ErrInconsistent
	}
	if nd.Equal(dx) {
		return false, nil
	}
	return true, se.setDomain(x, nd)
}

func (c *ratioCon) satisfied(se *searcher) bool {
	va, vb := se.value(c.a), se.value(c.b)
	return va == c.factor*vb || vb == c.factor*va
}

// excludeCon forbids one exact assignment: at least one variable must take
// a value other than the one recorded for it. This is the clause the
// uniqueness probe asserts against a found solution.
type excludeCon struct {
	vs     []Var
	values []int
}

func (c *excludeCon) vars() []Var { return c.vs }

func (c *excludeCon) propagate(se *searcher) (bool, error) {
	freeIdx := -1
	for i, v := range c.vs {
		d := se.dom(v)
		if !d.Has(c.values[i]) {
			// Some variable can no longer match; the clause holds.
			return false, nil
		}
		if d.IsSingleton() {
			continue // bound to the forbidden value
		}
		if freeIdx != -1 {
			return false, nil // two undecided literals, nothing to prune
		}
		freeIdx = i
	}
	if freeIdx == -1 {
		// Every variable is bound to exactly the forbidden assignment.
		return false, ErrInconsistent
	}
	// Unit clause: the one undecided variable must differ.
	v := c.vs[freeIdx]
	d := se.dom(v)
	if err := se.setDomain(v, d.Remove(c.values[freeIdx])); err != nil {
		return false, err
	}
	return true, nil
}

func (c *excludeCon) satisfied(se *searcher) bool {
	for i, v := range c.vs {
		if se.value(v) != c.values[i] {
			return true
		}
	}
	return false
}
