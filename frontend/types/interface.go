package types

import (
	"iter"
	"slices"
)

// Interface is a named protocol: a mapping from message tags to the ordered
// payload types a message with that tag carries. Interfaces are consulted,
// never mutated, by the checker.
type Interface interface {
	Name() string
	// Lookup returns the payload types of tag, if the interface supports it.
	Lookup(tag string) ([]Type, bool)
	// Bindings yields the supported tags with their payloads, in a
	// deterministic order.
	Bindings() iter.Seq2[string, []Type]
}

// InterfaceTable resolves interface references, applying type arguments to
// the interface's own parameters.
type InterfaceTable interface {
	Lookup(name string, args []Type) (Interface, bool)
}

// InterfaceDef declares one interface for a Table.
type InterfaceDef struct {
	Name     string
	Params   []TypeVar
	Messages map[string][]Type
}

// Table is the standard map-backed InterfaceTable.
type Table struct {
	defs map[string]InterfaceDef
}

var _ InterfaceTable = &Table{}

func NewTable(defs ...InterfaceDef) *Table {
	t := &Table{defs: make(map[string]InterfaceDef, len(defs))}
	for _, def := range defs {
		t.defs[def.Name] = def
	}
	return t
}

func (t *Table) Declare(def InterfaceDef) {
	t.defs[def.Name] = def
}

func (t *Table) Lookup(name string, args []Type) (Interface, bool) {
	def, ok := t.defs[name]
	if !ok || len(def.Params) != len(args) {
		return nil, false
	}
	resolved := resolvedInterface{
		name:     name,
		bindings: make(map[string][]Type, len(def.Messages)),
	}
	for tag, payload := range def.Messages {
		instantiated := make([]Type, len(payload))
		for i, p := range payload {
			instantiated[i] = SubstituteTypes(def.Params, args, p)
		}
		resolved.bindings[tag] = instantiated
	}
	return resolved, true
}

type resolvedInterface struct {
	name     string
	bindings map[string][]Type
}

func (i resolvedInterface) Name() string { return i.name }

func (i resolvedInterface) Lookup(tag string) ([]Type, bool) {
	payload, ok := i.bindings[tag]
	return payload, ok
}

func (i resolvedInterface) Bindings() iter.Seq2[string, []Type] {
	tags := make([]string, 0, len(i.bindings))
	for tag := range i.bindings {
		tags = append(tags, tag)
	}
	slices.Sort(tags)
	return func(yield func(string, []Type) bool) {
		for _, tag := range tags {
			if !yield(tag, i.bindings[tag]) {
				return
			}
		}
	}
}
