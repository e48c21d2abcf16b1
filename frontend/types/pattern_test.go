package types

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatternStructuralEquality(t *testing.T) {
	p := Concat(PatternOne{}, PatternVar{Name: "p"})
	q := Concat(PatternOne{}, PatternVar{Name: "p"})
	assert.Equal(t, p, q)
	assert.Equal(t, p.Hash(), q.Hash())

	// no eager simplification: Concat(1, p) stays as built
	assert.NotEqual(t, Pattern(PatternVar{Name: "p"}), p)
	assert.NotEqual(t, Concat(PatternOne{}, PatternVar{Name: "p"}).Hash(), Plus(PatternOne{}, PatternVar{Name: "p"}).Hash())
}

func TestFresherUniqueness(t *testing.T) {
	fresher := NewFresher()
	seen := make(map[string]bool)
	for range 100 {
		v := fresher.FreshPattern()
		assert.False(t, seen[v.Name], "fresh variable %s repeated", v.Name)
		seen[v.Name] = true
	}
}

func TestFresherConcurrentUniqueness(t *testing.T) {
	fresher := NewFresher()
	const goroutines = 8
	const perGoroutine = 200

	results := make([][]PatternVar, goroutines)
	var wg sync.WaitGroup
	for g := range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perGoroutine {
				results[g] = append(results[g], fresher.FreshPattern())
			}
		}()
	}
	wg.Wait()

	seen := make(map[string]bool)
	for _, vars := range results {
		for _, v := range vars {
			assert.False(t, seen[v.Name], "fresh variable %s repeated across goroutines", v.Name)
			seen[v.Name] = true
		}
	}
}
