package types

import (
	"iter"
	"strings"

	"github.com/benbjohnson/immutable"
)

// TypeEnv maps variable names to types. It is a functional value: every
// operation returns a new environment, nothing is updated in place, so a
// judgement can hand the same environment to both sides of a composition
// without aliasing concerns.
type TypeEnv struct {
	m *immutable.SortedMap[string, Type]
}

func NewTypeEnv() TypeEnv {
	return TypeEnv{m: immutable.NewSortedMap[string, Type](nil)}
}

// EnvOf builds an environment from a plain map, mostly for tests and the
// CLI driver.
func EnvOf(bindings map[string]Type) TypeEnv {
	env := NewTypeEnv()
	for name, t := range bindings {
		env = env.Bind(name, t)
	}
	return env
}

func (e TypeEnv) sorted() *immutable.SortedMap[string, Type] {
	if e.m == nil {
		return immutable.NewSortedMap[string, Type](nil)
	}
	return e.m
}

// Bind returns e extended (or overwritten) with name: t.
func (e TypeEnv) Bind(name string, t Type) TypeEnv {
	return TypeEnv{m: e.sorted().Set(name, t)}
}

func (e TypeEnv) Lookup(name string) (Type, bool) {
	return e.sorted().Get(name)
}

func (e TypeEnv) Contains(name string) bool {
	_, ok := e.Lookup(name)
	return ok
}

// Without returns e with name removed.
func (e TypeEnv) Without(name string) TypeEnv {
	return TypeEnv{m: e.sorted().Delete(name)}
}

func (e TypeEnv) Len() int {
	return e.sorted().Len()
}

// All yields the bindings in lexicographic variable order, which keeps
// every environment operation deterministic.
func (e TypeEnv) All() iter.Seq2[string, Type] {
	return func(yield func(string, Type) bool) {
		itr := e.sorted().Iterator()
		for {
			name, t, ok := itr.Next()
			if !ok {
				return
			}
			if !yield(name, t) {
				return
			}
		}
	}
}

func (e TypeEnv) String() string {
	var parts []string
	for name, t := range e.All() {
		parts = append(parts, name+": "+t.String())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Equal reports whether both environments bind the same variables to
// equal types.
func (e TypeEnv) Equal(other TypeEnv) bool {
	if e.Len() != other.Len() {
		return false
	}
	for name, t := range e.All() {
		otherT, ok := other.Lookup(name)
		if !ok || t.Hash() != otherT.Hash() {
			return false
		}
	}
	return true
}
