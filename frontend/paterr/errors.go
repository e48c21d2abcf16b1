package paterr

import (
	"fmt"

	"github.com/pat-lang/pat/frontend/ast"
)

type ErrCode int

const (
	None ErrCode = iota
	TypeMismatch
	InterfaceMismatch
	CapabilityMismatch
	QuasilinearitySequence
	QuasilinearitySub
	CannotMakeUnrestricted
	CombineMailbox
	JoinTwoReceives
	BranchLinearity
	FunLinearityMismatch
)

// Judgement records which checker judgement was active when a diagnostic
// was raised; mismatches read differently under subtyping than when merging
// the arms of a conditional.
type Judgement int

const (
	JudgementSubtype Judgement = iota
	JudgementJoin
	JudgementIntersect
)

func (j Judgement) String() string {
	switch j {
	case JudgementJoin:
		return "sequential composition"
	case JudgementIntersect:
		return "branch merging"
	default:
		return "subtyping"
	}
}

type NewTypeMismatch struct {
	ast.Positioner
	// First and Second are rendered types; paterr deliberately stores
	// strings so it does not depend on the types package.
	First  string
	Second string
	Var    string
	During Judgement
	stack  []byte
}

func (e NewTypeMismatch) Error() string {
	if e.Var != "" {
		return fmt.Sprintf("type mismatch for '%s' during %v: '%s' is not compatible with '%s'", e.Var, e.During, e.First, e.Second)
	}
	return fmt.Sprintf("type mismatch during %v: '%s' is not a subtype of '%s'", e.During, e.First, e.Second)
}
func (e NewTypeMismatch) Code() ErrCode    { return TypeMismatch }
func (e NewTypeMismatch) getStack() []byte { return e.stack }
func (e NewTypeMismatch) withStack(stack []byte) PatError {
	e.stack = stack
	return e
}

type NewInterfaceMismatch struct {
	ast.Positioner
	First  string
	Second string
	Var    string
	During Judgement
	stack  []byte
}

func (e NewInterfaceMismatch) Error() string {
	if e.Var != "" {
		return fmt.Sprintf("mailbox '%s' refers to interface '%s' in one place and '%s' in another during %v", e.Var, e.First, e.Second, e.During)
	}
	return fmt.Sprintf("mailbox interface mismatch during %v: expected '%s', found '%s'", e.During, e.First, e.Second)
}
func (e NewInterfaceMismatch) Code() ErrCode    { return InterfaceMismatch }
func (e NewInterfaceMismatch) getStack() []byte { return e.stack }
func (e NewInterfaceMismatch) withStack(stack []byte) PatError {
	e.stack = stack
	return e
}

type NewCapabilityMismatch struct {
	ast.Positioner
	First  string
	Second string
	stack  []byte
}

func (e NewCapabilityMismatch) Error() string {
	return fmt.Sprintf("mailbox capability mismatch: '%s' against '%s'", e.First, e.Second)
}
func (e NewCapabilityMismatch) Code() ErrCode    { return CapabilityMismatch }
func (e NewCapabilityMismatch) getStack() []byte { return e.stack }
func (e NewCapabilityMismatch) withStack(stack []byte) PatError {
	e.stack = stack
	return e
}

type NewQuasilinearitySequence struct {
	ast.Positioner
	First  string
	Second string
	Var    string
	stack  []byte
}

func (e NewQuasilinearitySequence) Error() string {
	return fmt.Sprintf("'%s' is already fully used: cannot sequence a '%s' use after a '%s' one", e.Var, e.Second, e.First)
}
func (e NewQuasilinearitySequence) Code() ErrCode    { return QuasilinearitySequence }
func (e NewQuasilinearitySequence) getStack() []byte { return e.stack }
func (e NewQuasilinearitySequence) withStack(stack []byte) PatError {
	e.stack = stack
	return e
}

type NewQuasilinearitySub struct {
	ast.Positioner
	First  string
	Second string
	stack  []byte
}

func (e NewQuasilinearitySub) Error() string {
	return fmt.Sprintf("a '%s' mailbox cannot be used where a '%s' one is required", e.First, e.Second)
}
func (e NewQuasilinearitySub) Code() ErrCode    { return QuasilinearitySub }
func (e NewQuasilinearitySub) getStack() []byte { return e.stack }
func (e NewQuasilinearitySub) withStack(stack []byte) PatError {
	e.stack = stack
	return e
}

type NewCannotMakeUnrestricted struct {
	ast.Positioner
	Type  string
	Var   string
	stack []byte
}

func (e NewCannotMakeUnrestricted) Error() string {
	if e.Var != "" {
		return fmt.Sprintf("'%s' of type '%s' is linear and cannot be discarded or duplicated here", e.Var, e.Type)
	}
	return fmt.Sprintf("type '%s' is linear and cannot be discarded or duplicated here", e.Type)
}
func (e NewCannotMakeUnrestricted) Code() ErrCode    { return CannotMakeUnrestricted }
func (e NewCannotMakeUnrestricted) getStack() []byte { return e.stack }
func (e NewCannotMakeUnrestricted) withStack(stack []byte) PatError {
	e.stack = stack
	return e
}

type NewCombineMailbox struct {
	ast.Positioner
	First  string
	Second string
	Var    string
	stack  []byte
}

func (e NewCombineMailbox) Error() string {
	return fmt.Sprintf("'%s' is mailbox-typed ('%s' and '%s') on both sides of a parallel composition; a mailbox cannot be shared between concurrent branches", e.Var, e.First, e.Second)
}
func (e NewCombineMailbox) Code() ErrCode    { return CombineMailbox }
func (e NewCombineMailbox) getStack() []byte { return e.stack }
func (e NewCombineMailbox) withStack(stack []byte) PatError {
	e.stack = stack
	return e
}

type NewJoinTwoReceives struct {
	ast.Positioner
	First  string
	Second string
	Var    string
	stack  []byte
}

func (e NewJoinTwoReceives) Error() string {
	return fmt.Sprintf("'%s' is used to receive on both sides of a composition ('%s' and '%s'); receive capability cannot be split", e.Var, e.First, e.Second)
}
func (e NewJoinTwoReceives) Code() ErrCode    { return JoinTwoReceives }
func (e NewJoinTwoReceives) getStack() []byte { return e.stack }
func (e NewJoinTwoReceives) withStack(stack []byte) PatError {
	e.stack = stack
	return e
}

type NewFunLinearityMismatch struct {
	ast.Positioner
	First  string
	Second string
	stack  []byte
}

func (e NewFunLinearityMismatch) Error() string {
	return fmt.Sprintf("function linearity mismatch: '%s' against '%s'", e.First, e.Second)
}
func (e NewFunLinearityMismatch) Code() ErrCode    { return FunLinearityMismatch }
func (e NewFunLinearityMismatch) getStack() []byte { return e.stack }
func (e NewFunLinearityMismatch) withStack(stack []byte) PatError {
	e.stack = stack
	return e
}

type NewBranchLinearity struct {
	ast.Positioner
	Type  string
	Var   string
	stack []byte
}

func (e NewBranchLinearity) Error() string {
	return fmt.Sprintf("linear variable '%s' of type '%s' is used in one branch but not the other", e.Var, e.Type)
}
func (e NewBranchLinearity) Code() ErrCode    { return BranchLinearity }
func (e NewBranchLinearity) getStack() []byte { return e.stack }
func (e NewBranchLinearity) withStack(stack []byte) PatError {
	e.stack = stack
	return e
}
