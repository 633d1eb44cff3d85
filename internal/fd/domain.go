// Package fd implements a small finite-domain decision procedure: bitset
// domains, propagating constraints, and trail-based backtracking search.
// It is consumed through an assert/check/model/push/pop protocol and has
// no knowledge of Sudoku; callers translate their constraint language into
// the primitives offered here.
package fd

import (
	"fmt"
	"math/bits"
	"strings"
)

// BitSet is a finite domain over the values 1..n, one bit per value.
// Operations return new sets rather than mutating in place, which keeps
// trail-based undo a matter of restoring the previous value.
type BitSet struct {
	n     int
	words []uint64
}

// NewBitSet returns the full domain {1..n}.
func NewBitSet(n int) BitSet {
	w := (n + 63) / 64
	bs := BitSet{n: n, words: make([]uint64, w)}
	for i := 0; i < n; i++ {
		bs.words[i/64] |= 1 << uint(i%64)
	}
	return bs
}

// NewSingleton returns the domain {v} over the universe 1..n.
func NewSingleton(n, v int) BitSet {
	bs := BitSet{n: n, words: make([]uint64, (n+63)/64)}
	if v >= 1 && v <= n {
		bs.words[(v-1)/64] |= 1 << uint((v-1)%64)
	}
	return bs
}

func (b BitSet) Clone() BitSet {
	words := make([]uint64, len(b.words))
	copy(words, b.words)
	return BitSet{n: b.n, words: words}
}

func (b BitSet) Has(v int) bool {
	if v < 1 || v > b.n {
		return false
	}
	return (b.words[(v-1)/64]>>uint((v-1)%64))&1 == 1
}

// Remove returns a copy of the domain without v.
func (b BitSet) Remove(v int) BitSet {
	if v < 1 || v > b.n {
		return b.Clone()
	}
	nb := b.Clone()
	nb.words[(v-1)/64] &^= 1 << uint((v-1)%64)
	return nb
}

func (b BitSet) Count() int {
	cnt := 0
	for _, w := range b.words {
		cnt += bits.OnesCount64(w)
	}
	return cnt
}

func (b BitSet) IsSingleton() bool { return b.Count() == 1 }

// SingletonValue returns the lowest value in the domain, which is the only
// value when IsSingleton holds. Returns -1 on an empty domain.
func (b BitSet) SingletonValue() int {
	for i, w := range b.words {
		if w == 0 {
			continue
		}
		return i*64 + bits.TrailingZeros64(w) + 1
	}
	return -1
}

// IterateValues calls f for each value in ascending order.
func (b BitSet) IterateValues(f func(v int)) {
	for i, w := range b.words {
		for w != 0 {
			t := w & -w
			f(i*64 + bits.TrailingZeros64(w) + 1)
			w &^= t
		}
	}
}

// Min returns the smallest value in the domain, or 0 if empty.
func (b BitSet) Min() int {
	for i, w := range b.words {
		if w != 0 {
			return i*64 + bits.TrailingZeros64(w) + 1
		}
	}
	return 0
}

// Max returns the largest value in the domain, or 0 if empty.
func (b BitSet) Max() int {
	for i := len(b.words) - 1; i >= 0; i-- {
		if w := b.words[i]; w != 0 {
			return i*64 + 63 - bits.LeadingZeros64(w) + 1
		}
	}
	return 0
}

// Intersect returns the values present in both domains. The universes must
// match; callers within this package guarantee that.
func (b BitSet) Intersect(o BitSet) BitSet {
	nb := BitSet{n: b.n, words: make([]uint64, len(b.words))}
	for i := range b.words {
		nb.words[i] = b.words[i] & o.words[i]
	}
	return nb
}

// KeepRange returns a copy of the domain restricted to [lo, hi].
func (b BitSet) KeepRange(lo, hi int) BitSet {
	nb := BitSet{n: b.n, words: make([]uint64, len(b.words))}
	b.IterateValues(func(v int) {
		if v >= lo && v <= hi {
			nb.words[(v-1)/64] |= 1 << uint((v-1)%64)
		}
	})
	return nb
}

func (b BitSet) Equal(o BitSet) bool {
	if b.n != o.n || len(b.words) != len(o.words) {
		return false
	}
	for i := range b.words {
		if b.words[i] != o.words[i] {
			return false
		}
	}
	return true
}

func (b BitSet) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	first := true
	b.IterateValues(func(v int) {
		if !first {
			sb.WriteString(",")
		}
		first = false
		fmt.Fprintf(&sb, "%d", v)
	})
	sb.WriteString("}")
	return sb.String()
}
