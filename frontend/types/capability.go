package types

// Capability is the direction of mailbox access.
type Capability int

const (
	// CapIn grants receiving from the mailbox.
	CapIn Capability = iota
	// CapOut grants sending to the mailbox.
	CapOut
)

func (c Capability) String() string {
	if c == CapIn {
		return "in"
	}
	return "out"
}

// Quasilinearity is the usage discipline of a resource. The degrees are
// ordered by restrictiveness: QLReturnable > QLUsable > QLUnrestricted.
type Quasilinearity int

const (
	// QLUnrestricted resources may be used, duplicated and discarded freely.
	QLUnrestricted Quasilinearity = iota
	// QLUsable resources are tracked linearly but may still be used again.
	QLUsable
	// QLReturnable resources must be consumed by exactly this use; any
	// subsequent use of the same resource is invalid.
	QLReturnable
)

func (q Quasilinearity) String() string {
	switch q {
	case QLReturnable:
		return "returnable"
	case QLUsable:
		return "usable"
	default:
		return "unrestricted"
	}
}

// Sequence gives the discipline of a resource used first under a, then
// under b. The second return is false when the sequencing is undefined:
// a strictly-linear (returnable) first use consumes the resource, so
// nothing may follow it.
func Sequence(a, b Quasilinearity) (Quasilinearity, bool) {
	if a == QLReturnable {
		return 0, false
	}
	return MaxQL(a, b), true
}

// MaxQL is the most restrictive of the two disciplines: the discipline a
// resource must satisfy for both of two alternative uses to be valid.
func MaxQL(a, b Quasilinearity) Quasilinearity {
	if a > b {
		return a
	}
	return b
}

// IsSub reports whether a resource of discipline q may be used where one of
// discipline other is expected, which holds exactly when q is at least as
// restrictive as other.
func (q Quasilinearity) IsSub(other Quasilinearity) bool {
	return q >= other
}
