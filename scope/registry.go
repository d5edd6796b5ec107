// File: scope/registry.go
//
// Per-goroutine scope stacks. An explicit registry (goroutine id to
// innermost active scope) rather than mutable package globals, so
// independent goroutines run independent stacks with no cross-talk.

package scope

import (
	"sync"
	"unsafe"

	"go.uber.org/zap"

	"github.com/tessellata/geomem/internal/gid"
	"github.com/tessellata/geomem/internal/logger"
)

var active sync.Map // goroutine id -> *Scope, the innermost active scope

// Begin creates a scope owned by the calling goroutine, capturing the
// goroutine's current scope as parent and installing itself as current.
// The scope must later be ended on the same goroutine.
func Begin() *Scope {
	g := gid.Get()
	s := &Scope{
		parent:  current(g),
		owner:   g,
		tracked: make(map[unsafe.Pointer]*Allocation),
	}
	active.Store(g, s)
	logger.L.Debug("scope: begin", zap.Int64("goroutine", g))
	return s
}

// Current returns the calling goroutine's innermost active scope, or
// nil when no scope is open.
func Current() *Scope {
	return current(gid.Get())
}

func current(g int64) *Scope {
	if v, ok := active.Load(g); ok {
		return v.(*Scope)
	}
	return nil
}
