package types

import (
	"github.com/pat-lang/pat/frontend/ast"
	"github.com/pat-lang/pat/frontend/paterr"
)

// MakeTypeUnrestricted checks that t can be discarded or duplicated. Linear
// functions and receive mailboxes cannot; a send mailbox can only if it has
// nothing left to send, which becomes the obligation 1 <= pattern rather
// than a verdict made here.
func (ctx *TypeCtx) MakeTypeUnrestricted(t Type, pos ast.Range) (ConstraintSet, error) {
	return ctx.makeUnrestricted("", t, pos)
}

// MakeUnrestricted checks every binding of env with MakeTypeUnrestricted
// and merges the obligations.
func (ctx *TypeCtx) MakeUnrestricted(env TypeEnv, pos ast.Range) (ConstraintSet, error) {
	result := EmptyConstraintSet()
	for name, t := range env.All() {
		cs, err := ctx.makeUnrestricted(name, t, pos)
		if err != nil {
			return EmptyConstraintSet(), err
		}
		result = result.Union(cs)
	}
	return result, nil
}

func (ctx *TypeCtx) makeUnrestricted(name string, t Type, pos ast.Range) (ConstraintSet, error) {
	switch t := t.(type) {
	case BaseType, TypeVar:
		return EmptyConstraintSet(), nil

	case FunType:
		if !t.Linear {
			return EmptyConstraintSet(), nil
		}

	case TupleType:
		result := EmptyConstraintSet()
		for _, e := range t.Elems {
			cs, err := ctx.makeUnrestricted(name, e, pos)
			if err != nil {
				return EmptyConstraintSet(), err
			}
			result = result.Union(cs)
		}
		return result, nil

	case SumType:
		csFst, err := ctx.makeUnrestricted(name, t.Fst, pos)
		if err != nil {
			return EmptyConstraintSet(), err
		}
		csSnd, err := ctx.makeUnrestricted(name, t.Snd, pos)
		if err != nil {
			return EmptyConstraintSet(), err
		}
		return csFst.Union(csSnd), nil

	case MailboxType:
		if t.Capability == CapOut {
			return SingleConstraint(PatternOne{}, t.pattern()), nil
		}
	}

	return EmptyConstraintSet(), paterr.New(paterr.NewCannotMakeUnrestricted{
		Positioner: pos,
		Type:       t.String(),
		Var:        name,
	})
}
