// File: scope/detach.go
//
// Detachment: transferring one tracked allocation out of a scope into
// an independently-owned lease, so a result can outlive the scope that
// built it.

package scope

// Detachable is implemented by pooled-memory-backed values that can
// move their backing buffer out of a scope.
type Detachable interface {
	// DetachFrom attempts UntrackByIdentity on the value's own backing
	// view. It must return a usable lease whether or not a match was
	// found; on a miss the lease is a no-op.
	DetachFrom(s *Scope) *Lease
}

// Detach asks v to locate and remove its backing allocation from s,
// producing a lease the caller owns. After a successful detach, End on
// s will not touch the allocation; only the lease's Release will.
func (s *Scope) Detach(v Detachable) *Lease {
	return v.DetachFrom(s)
}

// DetachView transfers the allocation backing view out of s. This is
// the building block most Detachable implementations delegate to.
// When view was not rented from s the returned lease is a no-op.
func DetachView[T any](s *Scope, view []T) *Lease {
	a, _ := UntrackByIdentity(s, view)
	return NewLease(a)
}
