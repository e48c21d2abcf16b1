package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubstituteTypes(t *testing.T) {
	x := TypeVar{Name: "X"}
	y := TypeVar{Name: "Y"}

	testCases := []struct {
		name    string
		formals []TypeVar
		actuals []Type
		input   Type
		want    Type
	}{
		{
			name:    "variable matching a formal is replaced",
			formals: []TypeVar{x},
			actuals: []Type{intType},
			input:   x,
			want:    intType,
		},
		{
			name:    "variable not among the formals is untouched",
			formals: []TypeVar{x},
			actuals: []Type{intType},
			input:   y,
			want:    y,
		},
		{
			name:    "base types are untouched",
			formals: []TypeVar{x},
			actuals: []Type{intType},
			input:   stringType,
			want:    stringType,
		},
		{
			name:    "substitution recurses into tuples and sums",
			formals: []TypeVar{x, y},
			actuals: []Type{intType, stringType},
			input:   TupleType{Elems: []Type{x, SumType{Fst: y, Snd: x}}},
			want:    TupleType{Elems: []Type{intType, SumType{Fst: stringType, Snd: intType}}},
		},
		{
			name:    "substitution recurses into function arguments and result",
			formals: []TypeVar{x},
			actuals: []Type{intType},
			input:   FunType{Args: []Type{x}, Result: x},
			want:    FunType{Args: []Type{intType}, Result: intType},
		},
		{
			name:    "function type parameters shadow outer formals",
			formals: []TypeVar{x},
			actuals: []Type{intType},
			input:   FunType{TypeParams: []TypeVar{x}, Args: []Type{x}, Result: y},
			want:    FunType{TypeParams: []TypeVar{x}, Args: []Type{x}, Result: y},
		},
		{
			name:    "mailbox interface arguments are rewritten",
			formals: []TypeVar{x},
			actuals: []Type{intType},
			input: MailboxType{
				Capability: CapOut,
				Iface:      InterfaceRef{Name: "Queue", Args: []Type{x}},
				Pattern:    PatternVar{Name: "p"},
				QL:         QLUsable,
			},
			want: MailboxType{
				Capability: CapOut,
				Iface:      InterfaceRef{Name: "Queue", Args: []Type{intType}},
				Pattern:    PatternVar{Name: "p"},
				QL:         QLUsable,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := SubstituteTypes(tc.formals, tc.actuals, tc.input)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSubstituteTypesArityContract(t *testing.T) {
	assert.Panics(t, func() {
		SubstituteTypes([]TypeVar{{Name: "X"}}, nil, intType)
	})
}
