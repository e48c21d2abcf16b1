package types

import (
	"github.com/pat-lang/pat/frontend/ast"
)

var testPos = ast.Range{PosStart: 1, PosEnd: 1}

var (
	intType    = BaseType{Name: "Int"}
	stringType = BaseType{Name: "String"}
)

// outMailbox and inMailbox build usable mailboxes over an unparameterised
// interface, the common case in these tests.
func outMailbox(iface string, pattern Pattern) MailboxType {
	return MailboxType{
		Capability: CapOut,
		Iface:      InterfaceRef{Name: iface},
		Pattern:    pattern,
		QL:         QLUsable,
	}
}

func inMailbox(iface string, pattern Pattern) MailboxType {
	return MailboxType{
		Capability: CapIn,
		Iface:      InterfaceRef{Name: iface},
		Pattern:    pattern,
		QL:         QLUsable,
	}
}

// newTestCtx builds a context over a small table:
//   - Queue[X] with put(X) and get()
//   - Ping and Pong, mutually referential protocols
//   - PingExt, Ping with an extra supported tag
func newTestCtx() *TypeCtx {
	table := NewTable(
		InterfaceDef{
			Name:   "Queue",
			Params: []TypeVar{{Name: "X"}},
			Messages: map[string][]Type{
				"put": {TypeVar{Name: "X"}},
				"get": {},
			},
		},
		InterfaceDef{
			Name: "Ping",
			Messages: map[string][]Type{
				"ping": {outMailbox("Pong", PatternOne{})},
			},
		},
		InterfaceDef{
			Name: "Pong",
			Messages: map[string][]Type{
				"ping": {outMailbox("Ping", PatternOne{})},
			},
		},
		InterfaceDef{
			Name: "PingExt",
			Messages: map[string][]Type{
				"ping": {outMailbox("Pong", PatternOne{})},
				"stop": {},
			},
		},
	)
	return NewTypeCtx(table)
}

func intQueue(capability Capability, pattern Pattern) MailboxType {
	return MailboxType{
		Capability: capability,
		Iface:      InterfaceRef{Name: "Queue", Args: []Type{intType}},
		Pattern:    pattern,
		QL:         QLUsable,
	}
}
