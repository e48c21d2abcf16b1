package types

import (
	"log/slog"

	"github.com/pat-lang/pat/internal/log"
)

// CombinePolicy selects how Combine treats the two environments of a
// parallel composition. Both modes are deliberate, named policies; which
// one a host wants is its call, made once, not a per-call-site fork.
type CombinePolicy int

const (
	// CombineDisjoint only lets the environments overlap on unrestricted
	// bindings: the two sides are independent concurrent activities whose
	// resources must not alias.
	CombineDisjoint CombinePolicy = iota
	// CombineAsJoin makes Combine behave exactly like Join.
	CombineAsJoin
)

// TypeCtx carries everything a typing judgement needs besides the
// environments themselves: the interface table, the pattern-variable
// generator and the combine policy. A single TypeCtx may be shared by
// goroutines checking declarations concurrently; the only mutable state is
// the Fresher's atomic counter.
type TypeCtx struct {
	ifaces        InterfaceTable
	fresher       *Fresher
	combinePolicy CombinePolicy
	logger        *slog.Logger
}

func NewTypeCtx(ifaces InterfaceTable) *TypeCtx {
	return &TypeCtx{
		ifaces:  ifaces,
		fresher: NewFresher(),
		logger:  log.DefaultLogger.With(slog.String("section", "types")),
	}
}

// WithCombinePolicy returns a copy of the context using policy.
func (ctx *TypeCtx) WithCombinePolicy(policy CombinePolicy) *TypeCtx {
	newCtx := *ctx
	newCtx.combinePolicy = policy
	return &newCtx
}

// WithFresher returns a copy of the context drawing fresh pattern variables
// from f. Contexts checking declarations concurrently must share one
// Fresher so generated names stay globally unique.
func (ctx *TypeCtx) WithFresher(f *Fresher) *TypeCtx {
	newCtx := *ctx
	newCtx.fresher = f
	return &newCtx
}
