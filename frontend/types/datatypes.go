package types

import (
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/pat-lang/pat/frontend/paterr"
)

// Type is the structural type algebra of the checker. The variant set is
// closed: traversals dispatch by type switch, there is no open-ended
// extensibility.
type Type interface {
	Hash() uint64
	String() string

	typ()
}

var (
	_ Type = BaseType{}
	_ Type = TypeVar{}
	_ Type = FunType{}
	_ Type = TupleType{}
	_ Type = SumType{}
	_ Type = MailboxType{}
)

func hashName(seed uint64, name string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(name))
	return 31*seed ^ h.Sum64()
}

func hashAll(seed uint64, ts []Type) uint64 {
	for _, t := range ts {
		seed = 31*seed ^ t.Hash()
	}
	return seed
}

// BaseType is an opaque, unrestricted primitive such as Int or String.
type BaseType struct {
	Name string
}

func (BaseType) typ()             {}
func (t BaseType) String() string { return t.Name }
func (t BaseType) Hash() uint64   { return hashName(40009, t.Name) }

// TypeVar is a type variable, compared by name.
type TypeVar struct {
	Name string
}

func (TypeVar) typ()             {}
func (t TypeVar) String() string { return t.Name }
func (t TypeVar) Hash() uint64   { return hashName(41011, t.Name) }

// FunType is a first-class function type. Linear functions may close over
// linear resources and must be called exactly once.
type FunType struct {
	Linear     bool
	TypeParams []TypeVar
	Args       []Type
	Result     Type
}

func (FunType) typ() {}
func (t FunType) String() string {
	var sb strings.Builder
	if t.Linear {
		sb.WriteString("linfun")
	} else {
		sb.WriteString("fun")
	}
	if len(t.TypeParams) > 0 {
		params := make([]string, len(t.TypeParams))
		for i, p := range t.TypeParams {
			params[i] = p.Name
		}
		sb.WriteString("[" + strings.Join(params, ", ") + "]")
	}
	args := make([]string, len(t.Args))
	for i, a := range t.Args {
		args[i] = a.String()
	}
	sb.WriteString("(" + strings.Join(args, ", ") + "): ")
	sb.WriteString(t.Result.String())
	return sb.String()
}
func (t FunType) Hash() uint64 {
	seed := uint64(42013)
	if t.Linear {
		seed = 42017
	}
	for _, p := range t.TypeParams {
		seed = 31*seed ^ p.Hash()
	}
	seed = hashAll(seed, t.Args)
	return 31*seed ^ t.Result.Hash()
}

// TupleType is a structural product.
type TupleType struct {
	Elems []Type
}

func (TupleType) typ() {}
func (t TupleType) String() string {
	elems := make([]string, len(t.Elems))
	for i, e := range t.Elems {
		elems[i] = e.String()
	}
	return "(" + strings.Join(elems, " * ") + ")"
}
func (t TupleType) Hash() uint64 { return hashAll(43013, t.Elems) }

// SumType is a structural binary coproduct.
type SumType struct {
	Fst Type
	Snd Type
}

func (SumType) typ() {}
func (t SumType) String() string {
	return fmt.Sprintf("(%v + %v)", t.Fst, t.Snd)
}
func (t SumType) Hash() uint64 {
	return 31*(31*44017^t.Fst.Hash()) ^ t.Snd.Hash()
}

// InterfaceRef names a (possibly parameterised) interface without resolving
// it; resolution goes through an InterfaceTable.
type InterfaceRef struct {
	Name string
	Args []Type
}

func (r InterfaceRef) String() string {
	if len(r.Args) == 0 {
		return r.Name
	}
	args := make([]string, len(r.Args))
	for i, a := range r.Args {
		args[i] = a.String()
	}
	return r.Name + "[" + strings.Join(args, ", ") + "]"
}

func (r InterfaceRef) Hash() uint64 {
	return hashAll(hashName(45007, r.Name), r.Args)
}

// MailboxType is a handle granting Capability-directed access to a message
// queue conforming to Iface, with Pattern describing the sends or receives
// still permitted on it.
//
// A nil Pattern is a transient placeholder used before typing has filled it
// in. It must never reach subtyping or the environment operators; there it
// is an invariant violation, not a user error.
type MailboxType struct {
	Capability Capability
	Iface      InterfaceRef
	Pattern    Pattern
	QL         Quasilinearity
}

func (MailboxType) typ() {}
func (t MailboxType) String() string {
	op := "?"
	if t.Capability == CapOut {
		op = "!"
	}
	pat := "_"
	if t.Pattern != nil {
		pat = t.Pattern.String()
	}
	s := fmt.Sprintf("%v%s%s", t.Iface, op, pat)
	if t.QL != QLUsable {
		s += "@" + t.QL.String()
	}
	return s
}
func (t MailboxType) Hash() uint64 {
	seed := uint64(46021)
	seed = 31*seed ^ uint64(t.Capability)
	seed = 31*seed ^ t.Iface.Hash()
	if t.Pattern != nil {
		seed = 31*seed ^ t.Pattern.Hash()
	}
	return 31*seed ^ uint64(t.QL)
}

// pattern returns the mailbox's pattern, panicking on the pre-typing
// placeholder. Every consumer past elaboration goes through this.
func (t MailboxType) pattern() Pattern {
	if t.Pattern == nil {
		paterr.Unreachable("mailbox type %v reached checking with no pattern", t)
	}
	return t.Pattern
}
