// File: buffer/growable.go

package buffer

import (
	"github.com/tessellata/geomem/facade"
	"github.com/tessellata/geomem/pool"
)

// Growable is an append-only builder backed by the shared pool and
// independent of any scope: its buffer lives until Freeze or Release no
// matter which scopes come and go around it. Algorithms use it to
// assemble a result of unknown final size. Not safe for concurrent use.
type Growable[T any] struct {
	buf []T // full class capacity, nil while empty
	n   int // populated prefix length
}

// NewGrowable returns a builder. capacity > 0 rents an initial buffer
// from the shared pool; otherwise the first Append allocates.
func NewGrowable[T any](capacity int) *Growable[T] {
	g := &Growable[T]{}
	if capacity > 0 {
		raw := pool.Shared[T]().Get(capacity)
		g.buf = raw[:cap(raw)]
	}
	return g
}

// Len returns the populated length.
func (g *Growable[T]) Len() int { return g.n }

// Cap returns the current capacity in elements.
func (g *Growable[T]) Cap() int { return len(g.buf) }

// Append adds v, growing the backing buffer when full. Amortized O(1).
func (g *Growable[T]) Append(v T) {
	if g.n == len(g.buf) {
		g.grow()
	}
	g.buf[g.n] = v
	g.n++
}

// grow doubles capacity (minimum 4), copies the populated prefix and
// returns the superseded buffer to the pool immediately, so peak extra
// usage is bounded to old+new only during the copy.
func (g *Growable[T]) grow() {
	newCap := 2 * len(g.buf)
	if newCap < 4 {
		newCap = 4
	}
	p := pool.Shared[T]()
	raw := p.Get(newCap)
	next := raw[:cap(raw)]
	copy(next, g.buf[:g.n])
	if g.buf != nil {
		p.Put(g.buf)
	}
	g.buf = next
}

// RemoveAt deletes the element at index i, shifting the tail left by
// one. Linear in the tail length.
func (g *Growable[T]) RemoveAt(i int) {
	if i < 0 || i >= g.n {
		panic("buffer: remove index out of range")
	}
	copy(g.buf[i:g.n-1], g.buf[i+1:g.n])
	g.n--
	var zero T
	g.buf[g.n] = zero
}

// View exposes the populated prefix without copying. The view is
// invalidated by the next Append, Freeze or Release.
func (g *Growable[T]) View() []T {
	return g.buf[:g.n]
}

// Freeze copies the populated prefix into a fresh allocation obtained
// through the facade (scope-tracked when a scope is active), then
// returns the builder's own buffer to the pool and leaves the builder
// empty. Handing off via a fresh allocation keeps the storage under a
// single owner instead of double-tracking it.
func (g *Growable[T]) Freeze() []T {
	if g.n == 0 {
		g.Release()
		return nil
	}
	out := facade.Memory[T](g.n)
	copy(out, g.buf[:g.n])
	g.Release()
	return out
}

// Release returns the buffer to the pool, if any, and resets the
// populated length. Idempotent: with no buffer held there is nothing
// left to return.
func (g *Growable[T]) Release() {
	if g.buf != nil {
		pool.Shared[T]().Put(g.buf)
		g.buf = nil
	}
	g.n = 0
}
