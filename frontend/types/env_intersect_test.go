package types

import (
	"testing"

	"github.com/pat-lang/pat/frontend/paterr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntersectTwoSendsAlternate(t *testing.T) {
	ctx := newTestCtx()
	p := PatternVar{Name: "p"}
	q := PatternVar{Name: "q"}

	env1 := EnvOf(map[string]Type{"x": intQueue(CapOut, p)})
	env2 := EnvOf(map[string]Type{"x": intQueue(CapOut, q)})

	merged, cs, err := ctx.Intersect(env1, env2, testPos)
	require.NoError(t, err)
	assert.Equal(t, 0, cs.Size())

	got, _ := merged.Lookup("x")
	assert.Equal(t, intQueue(CapOut, Plus(p, q)), got)
}

func TestIntersectTwoReceives(t *testing.T) {
	ctx := newTestCtx()
	p := PatternVar{Name: "p"}
	q := PatternVar{Name: "q"}

	env1 := EnvOf(map[string]Type{"x": intQueue(CapIn, p)})
	env2 := EnvOf(map[string]Type{"x": intQueue(CapIn, q)})

	merged, cs, err := ctx.Intersect(env1, env2, testPos)
	require.NoError(t, err)

	got, _ := merged.Lookup("x")
	mb := got.(MailboxType)
	remainder, ok := mb.Pattern.(PatternVar)
	require.True(t, ok)

	// the merged receive must be usable however either branch received
	require.Equal(t, 2, cs.Size())
	assert.True(t, cs.Contains(Constraint{Lhs: remainder, Rhs: p}))
	assert.True(t, cs.Contains(Constraint{Lhs: remainder, Rhs: q}))
}

func TestIntersectMixedCapabilitiesFail(t *testing.T) {
	ctx := newTestCtx()

	env1 := EnvOf(map[string]Type{"x": intQueue(CapOut, PatternOne{})})
	env2 := EnvOf(map[string]Type{"x": intQueue(CapIn, PatternVar{Name: "p"})})

	_, _, err := ctx.Intersect(env1, env2, testPos)
	requireCode(t, err, paterr.CapabilityMismatch)
}

func TestIntersectSoloSendDefaultsToUnused(t *testing.T) {
	ctx := newTestCtx()
	p := PatternVar{Name: "p"}

	env1 := EnvOf(map[string]Type{"x": intQueue(CapOut, p)})
	env2 := NewTypeEnv()

	// the branch without x is treated as if it sent nothing
	merged, cs, err := ctx.Intersect(env1, env2, testPos)
	require.NoError(t, err)
	assert.Equal(t, 0, cs.Size())

	got, _ := merged.Lookup("x")
	assert.Equal(t, intQueue(CapOut, Plus(p, PatternOne{})), got)
}

func TestIntersectSoloReceiveFails(t *testing.T) {
	ctx := newTestCtx()

	env1 := EnvOf(map[string]Type{"x": intQueue(CapIn, PatternVar{Name: "p"})})
	env2 := NewTypeEnv()

	_, _, err := ctx.Intersect(env1, env2, testPos)
	requireCode(t, err, paterr.BranchLinearity)

	// same diagnostic when the binding is only on the right
	_, _, err = ctx.Intersect(env2, env1, testPos)
	requireCode(t, err, paterr.BranchLinearity)
}

func TestIntersectSoloLinearFunctionFails(t *testing.T) {
	ctx := newTestCtx()

	env1 := EnvOf(map[string]Type{"f": FunType{Linear: true, Args: []Type{intType}, Result: intType}})

	_, _, err := ctx.Intersect(env1, NewTypeEnv(), testPos)
	requireCode(t, err, paterr.BranchLinearity)
}

func TestIntersectSoloUnrestrictedCarried(t *testing.T) {
	ctx := newTestCtx()

	env1 := EnvOf(map[string]Type{
		"x": intType,
		"f": FunType{Args: []Type{intType}, Result: intType},
	})

	merged, cs, err := ctx.Intersect(env1, NewTypeEnv(), testPos)
	require.NoError(t, err)
	assert.Equal(t, 0, cs.Size())
	assert.True(t, merged.Equal(env1))
}

func TestIntersectInterfaceMismatch(t *testing.T) {
	ctx := newTestCtx()

	env1 := EnvOf(map[string]Type{"x": intQueue(CapOut, PatternOne{})})
	env2 := EnvOf(map[string]Type{"x": outMailbox("Ping", PatternOne{})})

	_, _, err := ctx.Intersect(env1, env2, testPos)
	requireCode(t, err, paterr.InterfaceMismatch)
}

func TestIntersectMergedQuasilinearityIsStrongest(t *testing.T) {
	ctx := newTestCtx()

	returned := intQueue(CapOut, PatternOne{})
	returned.QL = QLReturnable

	env1 := EnvOf(map[string]Type{"x": returned})
	env2 := EnvOf(map[string]Type{"x": intQueue(CapOut, PatternOne{})})

	merged, _, err := ctx.Intersect(env1, env2, testPos)
	require.NoError(t, err)
	got, _ := merged.Lookup("x")
	assert.Equal(t, QLReturnable, got.(MailboxType).QL)
}

func TestIntersectIdenticalBases(t *testing.T) {
	ctx := newTestCtx()

	env1 := EnvOf(map[string]Type{"x": intType})
	env2 := EnvOf(map[string]Type{"x": intType})

	merged, cs, err := ctx.Intersect(env1, env2, testPos)
	require.NoError(t, err)
	assert.Equal(t, 0, cs.Size())
	assert.True(t, merged.Equal(env1))
}

func TestIntersectMismatchReportsIntersection(t *testing.T) {
	ctx := newTestCtx()

	env1 := EnvOf(map[string]Type{"x": intType})
	env2 := EnvOf(map[string]Type{"x": stringType})

	_, _, err := ctx.Intersect(env1, env2, testPos)
	requireCode(t, err, paterr.TypeMismatch)
	diag := err.(paterr.NewTypeMismatch)
	assert.Equal(t, paterr.JudgementIntersect, diag.During)
}
