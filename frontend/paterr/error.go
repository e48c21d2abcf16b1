package paterr

import (
	"fmt"
	"log/slog"
	"runtime/debug"
	"strings"

	"github.com/pat-lang/pat/frontend/ast"
)

// enableDebugErrorPrinting makes errors include their stacktrace when printed
const enableDebugErrorPrinting bool = false
const enableDebugFullStacktrace bool = false

// PatError is a user-facing diagnostic produced by the checker. Each kind
// carries the offending types (pre-rendered), the variable where relevant,
// and the source positions involved.
type PatError interface {
	Error() string
	Code() ErrCode
	ast.Positioner

	withStack([]byte) PatError
	getStack() []byte
}

func FormatWithCode(e PatError) string {
	if enableDebugErrorPrinting && e.getStack() != nil {
		stack := string(e.getStack())
		if !enableDebugFullStacktrace {
			stack = strings.Split(stack, "\n")[6]
		}
		return fmt.Sprintf("%s:(E%03d) %s", stack, e.Code(), e.Error())
	}
	return fmt.Sprintf("(E%03d) %s", e.Code(), e.Error())
}

func New[E PatError](err E) PatError {
	return err.withStack(debug.Stack())
}

// Errors accumulates diagnostics across judgements for hosts that prefer
// batch reporting over fail-fast. A nil *Errors is a valid empty value.
type Errors struct {
	errs []PatError
}

func (r *Errors) With(err ...PatError) *Errors {
	if r == nil {
		return &Errors{errs: err}
	}
	r.errs = append(r.errs, err...)
	return r
}

func (r *Errors) Merge(err *Errors) *Errors {
	if r == nil {
		return err
	}
	if err == nil {
		return r
	}
	if len(err.errs) == 0 {
		return r
	}
	return r.With(err.errs...)
}

func (r *Errors) Errors() []PatError {
	if r == nil {
		return nil
	}
	return r.errs
}

func (r *Errors) HasError() bool {
	if r == nil {
		return false
	}
	return len(r.errs) > 0
}

func (r *Errors) LogValue() slog.Value {
	var vals []slog.Attr
	for i, v := range r.errs {
		vals = append(vals, slog.Attr{
			Key: fmt.Sprint("e", i),
			Value: slog.GroupValue(
				slog.Attr{
					Key:   "msg",
					Value: slog.StringValue(FormatWithCode(v)),
				},
			),
		})
	}
	return slog.GroupValue(vals...)
}
