// File: scope/lease.go

package scope

// Lease owns a detached allocation outside any scope. The holder calls
// Release exactly once to return the buffer to the pool; extra Release
// calls are safe no-ops, as is releasing a lease produced by a detach
// miss.
type Lease struct {
	alloc *Allocation
}

// NewLease wraps a detached allocation. A nil allocation yields a no-op
// lease.
func NewLease(a *Allocation) *Lease {
	return &Lease{alloc: a}
}

// Release returns the leased buffer to the shared pool. Idempotent:
// only the first call touches the pool.
func (l *Lease) Release() {
	if l == nil || l.alloc == nil {
		return
	}
	l.alloc.release()
	l.alloc = nil
}

// Held reports whether the lease still owns an allocation.
func (l *Lease) Held() bool {
	return l != nil && l.alloc != nil
}
