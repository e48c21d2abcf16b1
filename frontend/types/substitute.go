package types

import (
	"slices"

	"github.com/pat-lang/pat/frontend/paterr"
)

// SubstituteTypes replaces every occurrence of a formal type variable in t
// with the corresponding actual, by name. Substitution is capture-free:
// formals shadowed by a function's own type parameters are left alone. A
// mailbox's capability, pattern and quasilinearity are never rewritten,
// only its interface's type arguments are.
func SubstituteTypes(formals []TypeVar, actuals []Type, t Type) Type {
	if len(formals) != len(actuals) {
		paterr.Unreachable("substitution with %d formals but %d actuals", len(formals), len(actuals))
	}
	if len(formals) == 0 {
		return t
	}
	switch t := t.(type) {
	case BaseType:
		return t
	case TypeVar:
		for i, formal := range formals {
			if formal.Name == t.Name {
				return actuals[i]
			}
		}
		return t
	case FunType:
		innerFormals, innerActuals := formals, actuals
		if len(t.TypeParams) > 0 {
			innerFormals = make([]TypeVar, 0, len(formals))
			innerActuals = make([]Type, 0, len(actuals))
			for i, formal := range formals {
				shadowed := slices.ContainsFunc(t.TypeParams, func(p TypeVar) bool {
					return p.Name == formal.Name
				})
				if !shadowed {
					innerFormals = append(innerFormals, formal)
					innerActuals = append(innerActuals, actuals[i])
				}
			}
		}
		args := make([]Type, len(t.Args))
		for i, arg := range t.Args {
			args[i] = SubstituteTypes(innerFormals, innerActuals, arg)
		}
		return FunType{
			Linear:     t.Linear,
			TypeParams: t.TypeParams,
			Args:       args,
			Result:     SubstituteTypes(innerFormals, innerActuals, t.Result),
		}
	case TupleType:
		elems := make([]Type, len(t.Elems))
		for i, e := range t.Elems {
			elems[i] = SubstituteTypes(formals, actuals, e)
		}
		return TupleType{Elems: elems}
	case SumType:
		return SumType{
			Fst: SubstituteTypes(formals, actuals, t.Fst),
			Snd: SubstituteTypes(formals, actuals, t.Snd),
		}
	case MailboxType:
		args := make([]Type, len(t.Iface.Args))
		for i, a := range t.Iface.Args {
			args[i] = SubstituteTypes(formals, actuals, a)
		}
		t.Iface = InterfaceRef{Name: t.Iface.Name, Args: args}
		return t
	default:
		paterr.Unreachable("substitution over unknown type %T", t)
		return nil
	}
}
