package types

import (
	"fmt"
	"hash/fnv"
	"sync/atomic"
)

// Pattern is a symbolic session pattern over message tags, describing the
// sends or receives a mailbox permits. Patterns are immutable values and
// compare structurally; no simplification happens here (Concat(One, p) is
// not reduced to p), inclusion between patterns is always delegated to the
// constraint solver.
type Pattern interface {
	Hash() uint64
	String() string

	pattern()
}

var (
	_ Pattern = PatternOne{}
	_ Pattern = PatternVar{}
	_ Pattern = PatternConcat{}
	_ Pattern = PatternPlus{}
)

// PatternOne is the trivial, already-satisfied pattern.
type PatternOne struct{}

func (PatternOne) pattern()       {}
func (PatternOne) String() string { return "1" }
func (PatternOne) Hash() uint64   { return 17011 }

// PatternVar is a pattern unification variable, compared by name.
type PatternVar struct {
	Name string
}

func (PatternVar) pattern()         {}
func (p PatternVar) String() string { return p.Name }
func (p PatternVar) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("var"))
	_, _ = h.Write([]byte(p.Name))
	return h.Sum64()
}

// PatternConcat is sequencing: Fst, then Snd.
type PatternConcat struct {
	Fst Pattern
	Snd Pattern
}

func (PatternConcat) pattern() {}
func (p PatternConcat) String() string {
	return fmt.Sprintf("(%v . %v)", p.Fst, p.Snd)
}
func (p PatternConcat) Hash() uint64 {
	return 31*(31*20011^p.Fst.Hash()) ^ p.Snd.Hash()
}

// PatternPlus is alternation: either Fst or Snd.
type PatternPlus struct {
	Fst Pattern
	Snd Pattern
}

func (PatternPlus) pattern() {}
func (p PatternPlus) String() string {
	return fmt.Sprintf("(%v + %v)", p.Fst, p.Snd)
}
func (p PatternPlus) Hash() uint64 {
	return 31*(31*23003^p.Fst.Hash()) ^ p.Snd.Hash()
}

func Concat(fst, snd Pattern) Pattern { return PatternConcat{Fst: fst, Snd: snd} }
func Plus(fst, snd Pattern) Pattern   { return PatternPlus{Fst: fst, Snd: snd} }

// Fresher hands out globally-unique pattern variables. A single Fresher must
// be shared by any goroutines checking declarations concurrently; the
// algebra only relies on uniqueness of the generated names, never on their
// order.
type Fresher struct {
	freshCount atomic.Uint64
}

func NewFresher() *Fresher {
	return &Fresher{}
}

// FreshPattern returns a pattern variable unused anywhere else.
func (f *Fresher) FreshPattern() PatternVar {
	n := f.freshCount.Add(1) - 1
	return PatternVar{Name: fmt.Sprint("$p", n)}
}
