// File: pool/shared.go
//
// Process-wide per-element-type pools. The registry is keyed by
// reflect.Type so Shared[float32]() and Shared[int32]() resolve to
// independent pools; reflection is confined to the registry key and the
// public surface stays compile-time generic.

package pool

import (
	"reflect"
	"sync"

	"github.com/tessellata/geomem/api"
)

// Options tune shared pool behavior.
type Options struct {
	// MaxIdlePerClass bounds how many free buffers each size class
	// retains before returns are dropped for the GC.
	MaxIdlePerClass int
}

// DefaultMaxIdlePerClass is the retention bound used when no
// configuration is applied.
const DefaultMaxIdlePerClass = 1024

var (
	optMu sync.Mutex
	opts  = Options{MaxIdlePerClass: DefaultMaxIdlePerClass}
)

// Configure sets process-wide pool defaults. Pools created before
// Configure keep the bound they were created with.
func Configure(o Options) {
	if o.MaxIdlePerClass <= 0 {
		o.MaxIdlePerClass = DefaultMaxIdlePerClass
	}
	optMu.Lock()
	opts = o
	optMu.Unlock()
}

func currentOptions() Options {
	optMu.Lock()
	defer optMu.Unlock()
	return opts
}

type entry struct {
	pool  any
	stats func() api.PoolStats
}

var (
	regMu  sync.Mutex
	shared = make(map[reflect.Type]entry)
)

// Shared returns the process-wide pool for element type T, creating it
// on first use. Scopes and growable buffers route through these.
func Shared[T any]() *Pool[T] {
	key := reflect.TypeFor[T]()
	regMu.Lock()
	defer regMu.Unlock()
	if e, ok := shared[key]; ok {
		return e.pool.(*Pool[T])
	}
	p := New[T](0)
	shared[key] = entry{pool: p, stats: p.Stats}
	return p
}

// SnapshotAll returns a stats snapshot for every shared pool, keyed by
// the element type's string form (e.g. "float32", "geom.Vertex").
func SnapshotAll() map[string]api.PoolStats {
	regMu.Lock()
	sources := make(map[string]func() api.PoolStats, len(shared))
	for t, e := range shared {
		sources[t.String()] = e.stats
	}
	regMu.Unlock()

	// Stats are collected outside the registry lock: a pool's Stats
	// takes its own locks and must not nest under regMu.
	out := make(map[string]api.PoolStats, len(sources))
	for name, stats := range sources {
		out[name] = stats()
	}
	return out
}
