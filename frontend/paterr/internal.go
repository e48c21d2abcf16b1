package paterr

import (
	"fmt"
	"runtime/debug"
)

// InternalError is a defect in the checker itself, as opposed to a PatError,
// which describes a problem in the program being checked. Internal errors
// are raised with panic and must never be caught and continued from.
type InternalError struct {
	Message string
	Stack   []byte
}

func (e InternalError) Error() string {
	return fmt.Sprintf("internal checker invariant broken: %s\n%s", e.Message, e.Stack)
}

// Unreachable panics with an InternalError. Call sites mark states that a
// correct driver can never produce, such as a mailbox type whose pattern
// was never filled in reaching subtyping.
func Unreachable(format string, args ...any) {
	panic(InternalError{
		Message: fmt.Sprintf(format, args...),
		Stack:   debug.Stack(),
	})
}
