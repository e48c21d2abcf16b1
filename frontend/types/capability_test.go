package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequence(t *testing.T) {
	testCases := []struct {
		name    string
		first   Quasilinearity
		second  Quasilinearity
		want    Quasilinearity
		defined bool
	}{
		{"unrestricted then unrestricted", QLUnrestricted, QLUnrestricted, QLUnrestricted, true},
		{"unrestricted then usable", QLUnrestricted, QLUsable, QLUsable, true},
		{"usable then usable", QLUsable, QLUsable, QLUsable, true},
		{"usable then returnable", QLUsable, QLReturnable, QLReturnable, true},
		{"unrestricted then returnable", QLUnrestricted, QLReturnable, QLReturnable, true},
		{"returnable then anything is undefined", QLReturnable, QLUsable, 0, false},
		{"returnable then returnable is undefined", QLReturnable, QLReturnable, 0, false},
		{"returnable then unrestricted is undefined", QLReturnable, QLUnrestricted, 0, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, defined := Sequence(tc.first, tc.second)
			assert.Equal(t, tc.defined, defined)
			if tc.defined {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestMaxQL(t *testing.T) {
	assert.Equal(t, QLReturnable, MaxQL(QLUsable, QLReturnable))
	assert.Equal(t, QLReturnable, MaxQL(QLReturnable, QLUnrestricted))
	assert.Equal(t, QLUsable, MaxQL(QLUnrestricted, QLUsable))
	assert.Equal(t, QLUnrestricted, MaxQL(QLUnrestricted, QLUnrestricted))
}

func TestIsSub(t *testing.T) {
	// more restrictive disciplines may stand in for less restrictive ones
	assert.True(t, QLReturnable.IsSub(QLUsable))
	assert.True(t, QLReturnable.IsSub(QLUnrestricted))
	assert.True(t, QLUsable.IsSub(QLUnrestricted))
	assert.True(t, QLUsable.IsSub(QLUsable))

	assert.False(t, QLUnrestricted.IsSub(QLUsable))
	assert.False(t, QLUsable.IsSub(QLReturnable))
}
