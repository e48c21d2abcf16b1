package types

import (
	"github.com/pat-lang/pat/frontend/ast"
	"github.com/pat-lang/pat/frontend/paterr"
)

// Combine merges the environments of two independent parallel activities.
// Under CombineDisjoint the two sides may only overlap on bindings that
// are provably unrestricted; in particular no variable may be
// mailbox-typed on both sides, since that would hand exclusive access to
// the same queue to both. Under CombineAsJoin the operator is Join.
func (ctx *TypeCtx) Combine(env1, env2 TypeEnv, pos ast.Range) (TypeEnv, ConstraintSet, error) {
	if ctx.combinePolicy == CombineAsJoin {
		return ctx.Join(env1, env2, pos)
	}

	result := NewTypeEnv()
	constraints := EmptyConstraintSet()

	for name, t1 := range env1.All() {
		t2, shared := env2.Lookup(name)
		if !shared {
			result = result.Bind(name, t1)
			continue
		}
		cs, err := ctx.combineBinding(name, t1, t2, pos)
		if err != nil {
			return TypeEnv{}, EmptyConstraintSet(), err
		}
		result = result.Bind(name, t1)
		constraints = constraints.Union(cs)
	}
	for name, t2 := range env2.All() {
		if !env1.Contains(name) {
			result = result.Bind(name, t2)
		}
	}

	ctx.logger.Debug("combine", "env1", env1.String(), "env2", env2.String(), "result", result.String())
	return result, constraints, nil
}

// combineBinding admits an overlapping binding only when both sides are
// independently unrestricted and interchangeable.
func (ctx *TypeCtx) combineBinding(name string, t1, t2 Type, pos ast.Range) (ConstraintSet, error) {
	_, mb1 := t1.(MailboxType)
	_, mb2 := t2.(MailboxType)
	if mb1 && mb2 {
		return EmptyConstraintSet(), paterr.New(paterr.NewCombineMailbox{
			Positioner: pos,
			First:      t1.String(),
			Second:     t2.String(),
			Var:        name,
		})
	}

	unrestricted1, err := ctx.makeUnrestricted(name, t1, pos)
	if err != nil {
		return EmptyConstraintSet(), err
	}
	unrestricted2, err := ctx.makeUnrestricted(name, t2, pos)
	if err != nil {
		return EmptyConstraintSet(), err
	}
	forward, err := ctx.Subtype(t1, t2, pos)
	if err != nil {
		return EmptyConstraintSet(), err
	}
	backward, err := ctx.Subtype(t2, t1, pos)
	if err != nil {
		return EmptyConstraintSet(), err
	}
	return UnionMany(unrestricted1, unrestricted2, forward, backward), nil
}
