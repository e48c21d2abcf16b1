package types

import (
	"fmt"
	"strings"

	set "github.com/hashicorp/go-set/v3"
)

// Constraint is the obligation that the language of Lhs is included in the
// language of Rhs. Constraints are only ever generated here; discharging
// them is the solver's job.
type Constraint struct {
	Lhs Pattern
	Rhs Pattern
}

func (c Constraint) Hash() uint64 {
	return 31*c.Lhs.Hash() ^ c.Rhs.Hash()
}

func (c Constraint) String() string {
	return fmt.Sprintf("%v <= %v", c.Lhs, c.Rhs)
}

// ConstraintSet is an accumulable collection of constraints. Two sets with
// the same members are equal regardless of what order constraints were
// added in. No entity owns a ConstraintSet beyond the call that produced
// it; callers keep merging results upwards.
type ConstraintSet struct {
	inner *set.HashSet[Constraint, uint64]
}

func EmptyConstraintSet() ConstraintSet {
	return ConstraintSet{inner: set.NewHashSet[Constraint, uint64](0)}
}

// SingleConstraint is the set containing only lhs <= rhs.
func SingleConstraint(lhs, rhs Pattern) ConstraintSet {
	cs := EmptyConstraintSet()
	cs.inner.Insert(Constraint{Lhs: lhs, Rhs: rhs})
	return cs
}

func ConstraintsOf(constraints ...Constraint) ConstraintSet {
	cs := EmptyConstraintSet()
	cs.inner.InsertSlice(constraints)
	return cs
}

// Union returns a new set with the members of both operands; neither
// operand is modified.
func (cs ConstraintSet) Union(other ConstraintSet) ConstraintSet {
	merged := EmptyConstraintSet()
	if cs.inner != nil {
		merged.inner.InsertSlice(cs.inner.Slice())
	}
	if other.inner != nil {
		merged.inner.InsertSlice(other.inner.Slice())
	}
	return merged
}

func UnionMany(sets ...ConstraintSet) ConstraintSet {
	merged := EmptyConstraintSet()
	for _, s := range sets {
		if s.inner != nil {
			merged.inner.InsertSlice(s.inner.Slice())
		}
	}
	return merged
}

func (cs ConstraintSet) Size() int {
	if cs.inner == nil {
		return 0
	}
	return cs.inner.Size()
}

func (cs ConstraintSet) Contains(c Constraint) bool {
	return cs.inner != nil && cs.inner.Contains(c)
}

func (cs ConstraintSet) Slice() []Constraint {
	if cs.inner == nil {
		return nil
	}
	return cs.inner.Slice()
}

func (cs ConstraintSet) Equal(other ConstraintSet) bool {
	if cs.Size() != other.Size() {
		return false
	}
	for _, c := range other.Slice() {
		if !cs.Contains(c) {
			return false
		}
	}
	return true
}

func (cs ConstraintSet) String() string {
	parts := make([]string, 0, cs.Size())
	for _, c := range cs.Slice() {
		parts = append(parts, c.String())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
