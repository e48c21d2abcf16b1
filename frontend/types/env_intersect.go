package types

import (
	"github.com/pat-lang/pat/frontend/ast"
	"github.com/pat-lang/pat/frontend/paterr"
)

// Intersect merges the environments of two mutually exclusive branches.
// The merged type of a variable must be usable however either branch used
// it. A send mailbox appearing in only one branch is treated as if the
// other branch sent nothing; any other linear binding missing from one
// branch is a linearity violation.
func (ctx *TypeCtx) Intersect(env1, env2 TypeEnv, pos ast.Range) (TypeEnv, ConstraintSet, error) {
	result := NewTypeEnv()
	constraints := EmptyConstraintSet()

	for name, t1 := range env1.All() {
		t2, shared := env2.Lookup(name)
		if shared {
			merged, cs, err := ctx.intersectBinding(name, t1, t2, pos)
			if err != nil {
				return TypeEnv{}, EmptyConstraintSet(), err
			}
			result = result.Bind(name, merged)
			constraints = constraints.Union(cs)
			continue
		}
		kept, err := ctx.intersectSolo(name, t1, pos)
		if err != nil {
			return TypeEnv{}, EmptyConstraintSet(), err
		}
		result = result.Bind(name, kept)
	}
	for name, t2 := range env2.All() {
		if env1.Contains(name) {
			continue
		}
		kept, err := ctx.intersectSolo(name, t2, pos)
		if err != nil {
			return TypeEnv{}, EmptyConstraintSet(), err
		}
		result = result.Bind(name, kept)
	}

	ctx.logger.Debug("intersect", "env1", env1.String(), "env2", env2.String(), "result", result.String())
	return result, constraints, nil
}

func (ctx *TypeCtx) intersectBinding(name string, t1, t2 Type, pos ast.Range) (Type, ConstraintSet, error) {
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
		return ctx.intersectMailboxes(name, t1, t2, pos)
	}

	return nil, EmptyConstraintSet(), paterr.New(paterr.NewTypeMismatch{
		Positioner: pos,
		First:      t1.String(),
		Second:     t2.String(),
		Var:        name,
		During:     paterr.JudgementIntersect,
	})
}

func (ctx *TypeCtx) intersectMailboxes(name string, t1, t2 MailboxType, pos ast.Range) (Type, ConstraintSet, error) {
	if t1.Iface.Name != t2.Iface.Name {
		return nil, EmptyConstraintSet(), paterr.New(paterr.NewInterfaceMismatch{
			Positioner: pos,
			First:      t1.Iface.String(),
			Second:     t2.Iface.String(),
			Var:        name,
			During:     paterr.JudgementIntersect,
		})
	}
	if t1.Capability != t2.Capability {
		return nil, EmptyConstraintSet(), paterr.New(paterr.NewCapabilityMismatch{
			Positioner: pos,
			First:      t1.String(),
			Second:     t2.String(),
		})
	}
	ql := MaxQL(t1.QL, t2.QL)

	if t1.Capability == CapOut {
		// either this branch's sends or the other's
		merged := MailboxType{
			Capability: CapOut,
			Iface:      t1.Iface,
			Pattern:    Plus(t1.pattern(), t2.pattern()),
			QL:         ql,
		}
		return merged, EmptyConstraintSet(), nil
	}

	// the merged receive must be usable however either branch received
	remainder := ctx.fresher.FreshPattern()
	merged := MailboxType{
		Capability: CapIn,
		Iface:      t1.Iface,
		Pattern:    remainder,
		QL:         ql,
	}
	constraints := ConstraintsOf(
		Constraint{Lhs: remainder, Rhs: t1.pattern()},
		Constraint{Lhs: remainder, Rhs: t2.pattern()},
	)
	return merged, constraints, nil
}

// intersectSolo decides what to do with a binding present in one branch
// only.
func (ctx *TypeCtx) intersectSolo(name string, t Type, pos ast.Range) (Type, error) {
	if mb, ok := t.(MailboxType); ok && mb.Capability == CapOut {
		// the other branch is treated as having sent nothing
		mb.Pattern = Plus(mb.pattern(), PatternOne{})
		return mb, nil
	}
	if isUnrestrictedShape(t) {
		return t, nil
	}
	return nil, paterr.New(paterr.NewBranchLinearity{
		Positioner: pos,
		Type:       t.String(),
		Var:        name,
	})
}

// isUnrestrictedShape is the syntactic check for types that may be
// discarded without generating obligations. Unlike makeUnrestricted it
// never emits constraints, so a send mailbox with sends left does not
// qualify.
func isUnrestrictedShape(t Type) bool {
	switch t := t.(type) {
	case BaseType, TypeVar:
		return true
	case FunType:
		return !t.Linear
	case TupleType:
		for _, e := range t.Elems {
			if !isUnrestrictedShape(e) {
				return false
			}
		}
		return true
	case SumType:
		return isUnrestrictedShape(t.Fst) && isUnrestrictedShape(t.Snd)
	case MailboxType:
		return t.QL == QLUnrestricted
	default:
		return false
	}
}
