package cmd

import (
	"fmt"

	"github.com/pat-lang/pat/frontend/types"
)

// A protocol file declares interfaces and a list of checks to run against
// them. It exists so protocol designs can be exercised against the checker
// without the full language frontend.

type document struct {
	Interfaces map[string]interfaceDecl `yaml:"interfaces"`
	Checks     []checkDecl              `yaml:"checks"`
}

type interfaceDecl struct {
	Params   []string              `yaml:"params"`
	Messages map[string][]typeNode `yaml:"messages"`
}

type checkDecl struct {
	Name         string              `yaml:"name"`
	Subtype      *subtypeDecl        `yaml:"subtype"`
	Join         *envOpDecl          `yaml:"join"`
	Combine      *envOpDecl          `yaml:"combine"`
	Intersect    *envOpDecl          `yaml:"intersect"`
	Unrestricted map[string]typeNode `yaml:"unrestricted"`
}

type subtypeDecl struct {
	Lhs typeNode `yaml:"lhs"`
	Rhs typeNode `yaml:"rhs"`
}

type envOpDecl struct {
	Left  map[string]typeNode `yaml:"left"`
	Right map[string]typeNode `yaml:"right"`
}

// typeNode is the YAML spelling of a type: exactly one field set.
type typeNode struct {
	Base    string       `yaml:"base,omitempty"`
	Var     string       `yaml:"var,omitempty"`
	Tuple   []typeNode   `yaml:"tuple,omitempty"`
	Sum     *sumNode     `yaml:"sum,omitempty"`
	Fun     *funNode     `yaml:"fun,omitempty"`
	Mailbox *mailboxNode `yaml:"mailbox,omitempty"`
}

type sumNode struct {
	Fst typeNode `yaml:"fst"`
	Snd typeNode `yaml:"snd"`
}

type funNode struct {
	Linear bool       `yaml:"linear"`
	Params []string   `yaml:"params"`
	Args   []typeNode `yaml:"args"`
	Result typeNode   `yaml:"result"`
}

type mailboxNode struct {
	Capability string       `yaml:"capability"`
	Interface  string       `yaml:"interface"`
	Args       []typeNode   `yaml:"args"`
	Pattern    *patternNode `yaml:"pattern"`
	QL         string       `yaml:"quasilinearity"`
}

// patternNode is the YAML spelling of a pattern: exactly one field set,
// except the trivial pattern which is `one: true`.
type patternNode struct {
	One    bool          `yaml:"one,omitempty"`
	Var    string        `yaml:"var,omitempty"`
	Concat []patternNode `yaml:"concat,omitempty"`
	Plus   []patternNode `yaml:"plus,omitempty"`
}

func (d document) buildTable() (*types.Table, error) {
	table := types.NewTable()
	for name, decl := range d.Interfaces {
		params := make([]types.TypeVar, len(decl.Params))
		for i, p := range decl.Params {
			params[i] = types.TypeVar{Name: p}
		}
		messages := make(map[string][]types.Type, len(decl.Messages))
		for tag, payload := range decl.Messages {
			converted, err := convertTypes(payload)
			if err != nil {
				return nil, fmt.Errorf("interface %s, message %s: %w", name, tag, err)
			}
			messages[tag] = converted
		}
		table.Declare(types.InterfaceDef{Name: name, Params: params, Messages: messages})
	}
	return table, nil
}

func convertTypes(nodes []typeNode) ([]types.Type, error) {
	converted := make([]types.Type, len(nodes))
	for i, n := range nodes {
		t, err := n.convert()
		if err != nil {
			return nil, err
		}
		converted[i] = t
	}
	return converted, nil
}

func convertEnv(bindings map[string]typeNode) (types.TypeEnv, error) {
	env := types.NewTypeEnv()
	for name, n := range bindings {
		t, err := n.convert()
		if err != nil {
			return types.TypeEnv{}, fmt.Errorf("binding %s: %w", name, err)
		}
		env = env.Bind(name, t)
	}
	return env, nil
}

func (n typeNode) convert() (types.Type, error) {
	switch {
	case n.Base != "":
		return types.BaseType{Name: n.Base}, nil
	case n.Var != "":
		return types.TypeVar{Name: n.Var}, nil
	case n.Tuple != nil:
		elems, err := convertTypes(n.Tuple)
		if err != nil {
			return nil, err
		}
		return types.TupleType{Elems: elems}, nil
	case n.Sum != nil:
		fst, err := n.Sum.Fst.convert()
		if err != nil {
			return nil, err
		}
		snd, err := n.Sum.Snd.convert()
		if err != nil {
			return nil, err
		}
		return types.SumType{Fst: fst, Snd: snd}, nil
	case n.Fun != nil:
		params := make([]types.TypeVar, len(n.Fun.Params))
		for i, p := range n.Fun.Params {
			params[i] = types.TypeVar{Name: p}
		}
		args, err := convertTypes(n.Fun.Args)
		if err != nil {
			return nil, err
		}
		result, err := n.Fun.Result.convert()
		if err != nil {
			return nil, err
		}
		return types.FunType{Linear: n.Fun.Linear, TypeParams: params, Args: args, Result: result}, nil
	case n.Mailbox != nil:
		return n.Mailbox.convert()
	default:
		return nil, fmt.Errorf("empty type node; set one of base, var, tuple, sum, fun, mailbox")
	}
}

func (n mailboxNode) convert() (types.Type, error) {
	var capability types.Capability
	switch n.Capability {
	case "in":
		capability = types.CapIn
	case "out":
		capability = types.CapOut
	default:
		return nil, fmt.Errorf("mailbox capability must be 'in' or 'out', got %q", n.Capability)
	}

	ql := types.QLUsable
	switch n.QL {
	case "", "usable":
	case "unrestricted":
		ql = types.QLUnrestricted
	case "returnable":
		ql = types.QLReturnable
	default:
		return nil, fmt.Errorf("unknown quasilinearity %q", n.QL)
	}

	args, err := convertTypes(n.Args)
	if err != nil {
		return nil, err
	}
	if n.Pattern == nil {
		return nil, fmt.Errorf("mailbox for interface %s is missing its pattern", n.Interface)
	}
	pattern, err := n.Pattern.convert()
	if err != nil {
		return nil, err
	}
	return types.MailboxType{
		Capability: capability,
		Iface:      types.InterfaceRef{Name: n.Interface, Args: args},
		Pattern:    pattern,
		QL:         ql,
	}, nil
}

func (n patternNode) convert() (types.Pattern, error) {
	switch {
	case n.One:
		return types.PatternOne{}, nil
	case n.Var != "":
		return types.PatternVar{Name: n.Var}, nil
	case n.Concat != nil:
		return n.convertBinary(n.Concat, types.Concat)
	case n.Plus != nil:
		return n.convertBinary(n.Plus, types.Plus)
	default:
		return nil, fmt.Errorf("empty pattern node; set one of one, var, concat, plus")
	}
}

func (n patternNode) convertBinary(operands []patternNode, build func(types.Pattern, types.Pattern) types.Pattern) (types.Pattern, error) {
	if len(operands) != 2 {
		return nil, fmt.Errorf("concat and plus take exactly two operands, got %d", len(operands))
	}
	fst, err := operands[0].convert()
	if err != nil {
		return nil, err
	}
	snd, err := operands[1].convert()
	if err != nil {
		return nil, err
	}
	return build(fst, snd), nil
}
