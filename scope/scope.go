// File: scope/scope.go
//
// Allocation scope: a nestable arena owned by one goroutine. Rented
// buffers are tracked by storage identity and bulk-returned to the
// shared pool at End, unless detached into a lease first.

package scope

import (
	"fmt"
	"unsafe"

	"go.uber.org/zap"

	"github.com/tessellata/geomem/internal/gid"
	"github.com/tessellata/geomem/internal/logger"
	"github.com/tessellata/geomem/pool"
)

// Scope tracks buffers rented on behalf of its owning goroutine.
// Scopes on one goroutine nest strictly LIFO; End on any scope other
// than the innermost active one is a usage violation. The state
// machine is one-way, Active to Ended, with no re-entry.
type Scope struct {
	parent  *Scope
	owner   int64
	tracked map[unsafe.Pointer]*Allocation
	ended   bool
}

// Allocation is an owning handle over one pooled buffer plus the exact
// logical length requested at rent time. At every instant it belongs to
// exactly one owner: a scope, or a lease after detachment.
type Allocation struct {
	key     unsafe.Pointer
	length  int
	release func()
}

// Len returns the logical element count requested at rent time.
func (a *Allocation) Len() int { return a.length }

// Rent returns a view of exactly n elements of T backed by the shared
// pool and tracked by s. The view stays valid until the scope ends or
// the allocation is detached. The scope must be active and used from
// its owning goroutine; n must be positive.
func Rent[T any](s *Scope, n int) []T {
	s.guard("rent")
	if n <= 0 {
		fail("rent of non-positive length")
	}
	p := pool.Shared[T]()
	buf := p.Get(n)
	key := unsafe.Pointer(unsafe.SliceData(buf))
	s.tracked[key] = &Allocation{
		key:     key,
		length:  n,
		release: func() { p.Put(buf) },
	}
	return buf
}

// UntrackByIdentity finds the tracked allocation backing view by
// storage identity (the view's base array, never its contents), then
// removes and returns it. ok is false when view was not rented from s:
// it came from a parent scope, from the standalone facade path, or was
// already detached. That is a normal outcome, not an error.
//
// Identity is the base address handed out by Rent; a reslice that drops
// the front of the view no longer matches.
func UntrackByIdentity[T any](s *Scope, view []T) (*Allocation, bool) {
	s.guard("untrack")
	key := unsafe.Pointer(unsafe.SliceData(view))
	if key == nil {
		return nil, false
	}
	a, ok := s.tracked[key]
	if !ok {
		return nil, false
	}
	s.untrack(a)
	return a, true
}

// untrack removes a from the tracked set without releasing it. No-op if
// absent or nil.
func (s *Scope) untrack(a *Allocation) {
	if a == nil {
		return
	}
	delete(s.tracked, a.key)
}

// End restores the parent as the goroutine's current scope and returns
// every still-tracked buffer to the shared pool. s must be the
// innermost active scope on its owning goroutine. End is idempotent: a
// second call does nothing. Any other operation on an ended scope is a
// usage violation.
func (s *Scope) End() {
	if s.ended {
		return
	}
	s.guard("end")
	if current(s.owner) != s {
		fail("end out of LIFO order")
	}
	if s.parent != nil {
		active.Store(s.owner, s.parent)
	} else {
		active.Delete(s.owner)
	}
	released := len(s.tracked)
	for _, a := range s.tracked {
		a.release()
	}
	s.tracked = nil
	s.ended = true
	logger.L.Debug("scope: end",
		zap.Int64("goroutine", s.owner), zap.Int("released", released))
}

// guard validates that s is active and called from its owning
// goroutine. Both are hard preconditions.
func (s *Scope) guard(op string) {
	if s.ended {
		fail(op + " on ended scope")
	}
	if g := gid.Get(); g != s.owner {
		fail(fmt.Sprintf("%s from goroutine %d on scope owned by goroutine %d", op, g, s.owner))
	}
}

// fail reports a usage violation. Continuing after any of these would
// corrupt pool accounting silently, so the operation aborts.
func fail(msg string) {
	logger.L.Error("scope: usage violation", zap.String("detail", msg))
	panic("scope: " + msg)
}
