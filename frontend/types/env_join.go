package types

import (
	"github.com/pat-lang/pat/frontend/ast"
	"github.com/pat-lang/pat/frontend/paterr"
)

// Join merges the environments of two computations that both happen,
// sequentially or concurrently. Variables bound on one side only are
// carried through; variables bound on both sides are merged shape by
// shape, with mailbox merging driven by the two capabilities.
func (ctx *TypeCtx) Join(env1, env2 TypeEnv, pos ast.Range) (TypeEnv, ConstraintSet, error) {
	result := NewTypeEnv()
	constraints := EmptyConstraintSet()

	for name, t1 := range env1.All() {
		t2, shared := env2.Lookup(name)
		if !shared {
			result = result.Bind(name, t1)
			continue
		}
		merged, cs, err := ctx.joinBinding(name, t1, t2, pos)
		if err != nil {
			return TypeEnv{}, EmptyConstraintSet(), err
		}
		result = result.Bind(name, merged)
		constraints = constraints.Union(cs)
	}
	for name, t2 := range env2.All() {
		if !env1.Contains(name) {
			result = result.Bind(name, t2)
		}
	}

	ctx.logger.Debug("join", "env1", env1.String(), "env2", env2.String(), "result", result.String())
	return result, constraints, nil
}

func (ctx *TypeCtx) joinBinding(name string, t1, t2 Type, pos ast.Range) (Type, ConstraintSet, error) {
	switch t1 := t1.(type) {
	case BaseType:
		if t2, ok := t2.(BaseType); ok && t1.Name == t2.Name {
			return t1, EmptyConstraintSet(), nil
		}

	case TypeVar:
		if t2, ok := t2.(TypeVar); ok && t1.Name == t2.Name {
			return t1, EmptyConstraintSet(), nil
		}

	case FunType:
		t2, ok := t2.(FunType)
		if !ok || t1.Linear || t2.Linear || t1.Hash() != t2.Hash() {
			break
		}
		// structurally the two are equal already, but mailbox patterns
		// buried inside them may still differ in what they oblige
		forward, err := ctx.Subtype(t1, t2, pos)
		if err != nil {
			return nil, EmptyConstraintSet(), err
		}
		backward, err := ctx.Subtype(t2, t1, pos)
		if err != nil {
			return nil, EmptyConstraintSet(), err
		}
		return t1, forward.Union(backward), nil

	case MailboxType:
		t2, ok := t2.(MailboxType)
		if !ok {
			break
		}
		return ctx.joinMailboxes(name, t1, t2, pos)
	}

	return nil, EmptyConstraintSet(), paterr.New(paterr.NewTypeMismatch{
		Positioner: pos,
		First:      t1.String(),
		Second:     t2.String(),
		Var:        name,
		During:     paterr.JudgementJoin,
	})
}

func (ctx *TypeCtx) joinMailboxes(name string, t1, t2 MailboxType, pos ast.Range) (Type, ConstraintSet, error) {
	if t1.Iface.Name != t2.Iface.Name {
		return nil, EmptyConstraintSet(), paterr.New(paterr.NewInterfaceMismatch{
			Positioner: pos,
			First:      t1.Iface.String(),
			Second:     t2.Iface.String(),
			Var:        name,
			During:     paterr.JudgementJoin,
		})
	}
	ql, defined := Sequence(t1.QL, t2.QL)
	if !defined {
		return nil, EmptyConstraintSet(), paterr.New(paterr.NewQuasilinearitySequence{
			Positioner: pos,
			First:      t1.QL.String(),
			Second:     t2.QL.String(),
			Var:        name,
		})
	}

	switch {
	case t1.Capability == CapOut && t2.Capability == CapOut:
		// sending then sending is just a longer send sequence
		merged := MailboxType{
			Capability: CapOut,
			Iface:      t1.Iface,
			Pattern:    Concat(t1.pattern(), t2.pattern()),
			QL:         ql,
		}
		return merged, EmptyConstraintSet(), nil

	case t1.Capability == CapIn && t2.Capability == CapIn:
		// a mailbox handle is exclusive access to one queue; it cannot be
		// received from on both sides of a composition
		return nil, EmptyConstraintSet(), paterr.New(paterr.NewJoinTwoReceives{
			Positioner: pos,
			First:      t1.String(),
			Second:     t2.String(),
			Var:        name,
		})

	default:
		out, in := t1, t2
		if t1.Capability == CapIn {
			out, in = t2, t1
		}
		// the sends, followed by whatever remains to be received, must be
		// within what the receiver expects
		remainder := ctx.fresher.FreshPattern()
		merged := MailboxType{
			Capability: CapIn,
			Iface:      in.Iface,
			Pattern:    remainder,
			QL:         ql,
		}
		constraint := SingleConstraint(Concat(out.pattern(), remainder), in.pattern())
		return merged, constraint, nil
	}
}
