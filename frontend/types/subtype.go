package types

import (
	"github.com/pat-lang/pat/frontend/ast"
	"github.com/pat-lang/pat/frontend/paterr"
	"github.com/pat-lang/pat/util"
)

// visitedPairs records interface-name pairs already assumed related. The
// assumption is coinductive: meeting a pair again short-circuits to
// success, which is what makes the check terminate on mutually recursive
// protocols. Keyed by name pair, never by structural identity.
type visitedPairs = util.MSet[util.Pair[string, string]]

// Subtype checks t1 <: t2 and returns the pattern-inclusion obligations the
// relation depends on. A failed check returns a diagnostic and no usable
// constraint set.
func (ctx *TypeCtx) Subtype(t1, t2 Type, pos ast.Range) (ConstraintSet, error) {
	return ctx.subtype(util.NewEmptySet[util.Pair[string, string]](), t1, t2, pos)
}

func (ctx *TypeCtx) subtype(visited visitedPairs, t1, t2 Type, pos ast.Range) (ConstraintSet, error) {
	switch t1 := t1.(type) {
	case BaseType:
		if t2, ok := t2.(BaseType); ok && t1.Name == t2.Name {
			return EmptyConstraintSet(), nil
		}

	case TypeVar:
		if t2, ok := t2.(TypeVar); ok && t1.Name == t2.Name {
			return EmptyConstraintSet(), nil
		}

	case TupleType:
		t2, ok := t2.(TupleType)
		if !ok || len(t1.Elems) != len(t2.Elems) {
			break
		}
		result := EmptyConstraintSet()
		for i, e1 := range t1.Elems {
			cs, err := ctx.subtype(visited, e1, t2.Elems[i], pos)
			if err != nil {
				return EmptyConstraintSet(), err
			}
			result = result.Union(cs)
		}
		return result, nil

	case SumType:
		t2, ok := t2.(SumType)
		if !ok {
			break
		}
		csFst, err := ctx.subtype(visited, t1.Fst, t2.Fst, pos)
		if err != nil {
			return EmptyConstraintSet(), err
		}
		csSnd, err := ctx.subtype(visited, t1.Snd, t2.Snd, pos)
		if err != nil {
			return EmptyConstraintSet(), err
		}
		return csFst.Union(csSnd), nil

	case FunType:
		t2, ok := t2.(FunType)
		if !ok {
			break
		}
		if t1.Linear != t2.Linear {
			return EmptyConstraintSet(), paterr.New(paterr.NewFunLinearityMismatch{
				Positioner: pos,
				First:      t1.String(),
				Second:     t2.String(),
			})
		}
		if len(t1.Args) != len(t2.Args) || !equalTypeParams(t1.TypeParams, t2.TypeParams) {
			break
		}
		result := EmptyConstraintSet()
		// arguments are contravariant: what t2 demands must be acceptable
		// to t1
		for i, a1 := range t1.Args {
			cs, err := ctx.subtype(visited, t2.Args[i], a1, pos)
			if err != nil {
				return EmptyConstraintSet(), err
			}
			result = result.Union(cs)
		}
		cs, err := ctx.subtype(visited, t1.Result, t2.Result, pos)
		if err != nil {
			return EmptyConstraintSet(), err
		}
		return result.Union(cs), nil

	case MailboxType:
		t2, ok := t2.(MailboxType)
		if !ok {
			break
		}
		if t1.Capability != t2.Capability {
			return EmptyConstraintSet(), paterr.New(paterr.NewCapabilityMismatch{
				Positioner: pos,
				First:      t1.String(),
				Second:     t2.String(),
			})
		}
		if !t1.QL.IsSub(t2.QL) {
			return EmptyConstraintSet(), paterr.New(paterr.NewQuasilinearitySub{
				Positioner: pos,
				First:      t1.QL.String(),
				Second:     t2.QL.String(),
			})
		}
		result, err := ctx.subtypeInterface(visited, t1.Iface, t2.Iface, pos)
		if err != nil {
			return EmptyConstraintSet(), err
		}
		pat1, pat2 := t1.pattern(), t2.pattern()
		if t1.Capability == CapIn {
			// what t1 can still receive must be within what t2 expects
			result = result.Union(SingleConstraint(pat1, pat2))
		} else {
			// what t2 promises to send must cover what t1 requires
			result = result.Union(SingleConstraint(pat2, pat1))
		}
		return result, nil
	}

	return EmptyConstraintSet(), paterr.New(paterr.NewTypeMismatch{
		Positioner: pos,
		First:      t1.String(),
		Second:     t2.String(),
		During:     paterr.JudgementSubtype,
	})
}

// subtypeInterface relates two interfaces structurally: every tag ref1
// supports must be supported by ref2 with pointwise-subtype payloads.
// Interfaces may refer to each other cyclically, so the pair under check is
// assumed true while its payloads are compared.
func (ctx *TypeCtx) subtypeInterface(visited visitedPairs, ref1, ref2 InterfaceRef, pos ast.Range) (ConstraintSet, error) {
	key := util.NewPair(ref1.Name, ref2.Name)
	if visited.Contains(key) {
		return EmptyConstraintSet(), nil
	}
	visited.Add(key)

	i1 := ctx.resolve(ref1)
	i2 := ctx.resolve(ref2)

	result := EmptyConstraintSet()
	for tag, payload1 := range i1.Bindings() {
		payload2, ok := i2.Lookup(tag)
		if !ok || len(payload1) != len(payload2) {
			return EmptyConstraintSet(), paterr.New(paterr.NewInterfaceMismatch{
				Positioner: pos,
				First:      ref1.String(),
				Second:     ref2.String(),
				During:     paterr.JudgementSubtype,
			})
		}
		for i, p1 := range payload1 {
			cs, err := ctx.subtype(visited, p1, payload2[i], pos)
			if err != nil {
				return EmptyConstraintSet(), err
			}
			result = result.Union(cs)
		}
	}
	return result, nil
}

// resolve looks a reference up in the interface table. A reference the
// table cannot resolve got past elaboration without being declared, which
// is a driver bug.
func (ctx *TypeCtx) resolve(ref InterfaceRef) Interface {
	iface, ok := ctx.ifaces.Lookup(ref.Name, ref.Args)
	if !ok {
		paterr.Unreachable("interface %v is not declared in the interface table", ref)
	}
	return iface
}

func equalTypeParams(a, b []TypeVar) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Name != b[i].Name {
			return false
		}
	}
	return true
}
