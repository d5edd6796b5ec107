// File: pool/pool.go
//
// Size-classed pool of []T buffers. One FIFO free list per power-of-two
// class, bounded so idle memory cannot grow without limit. Safe for
// concurrent Get/Put from many goroutines.

package pool

import (
	"sync"
	"sync/atomic"

	"github.com/eapache/queue"
	"go.uber.org/zap"

	"github.com/tessellata/geomem/api"
	"github.com/tessellata/geomem/internal/logger"
)

// MinClass is the smallest size class handed out, in elements.
const MinClass = 4

// Pool pools []T buffers by size class. Obtain process-wide instances
// through Shared; New builds an isolated pool for tests or dedicated
// subsystems.
type Pool[T any] struct {
	mu      sync.Mutex
	classes map[int]*queue.Queue // size class -> free []T buffers
	maxIdle int

	rented   atomic.Int64
	returned atomic.Int64

	classMu sync.Mutex
	byClass map[int]int64 // outstanding per class
}

// New creates a pool retaining at most maxIdle free buffers per size
// class. maxIdle <= 0 selects the configured process default.
func New[T any](maxIdle int) *Pool[T] {
	if maxIdle <= 0 {
		maxIdle = currentOptions().MaxIdlePerClass
	}
	return &Pool[T]{
		classes: make(map[int]*queue.Queue),
		byClass: make(map[int]int64),
		maxIdle: maxIdle,
	}
}

// classFor rounds n up to the smallest power-of-two class >= MinClass.
// There is no upper cap: geometry meshes can be arbitrarily large.
func classFor(n int) int {
	c := MinClass
	for c < n {
		c <<= 1
	}
	return c
}

// Get returns a buffer of exactly n elements; capacity is the class
// size. Reused buffers are handed back dirty. n must be positive.
func (p *Pool[T]) Get(n int) []T {
	if n <= 0 {
		panic("pool: non-positive buffer length")
	}
	class := classFor(n)

	var buf []T
	p.mu.Lock()
	if fl, ok := p.classes[class]; ok && fl.Length() > 0 {
		buf = fl.Remove().([]T)
	}
	p.mu.Unlock()

	if buf == nil {
		buf = make([]T, class)
		logger.L.Debug("pool: fresh buffer", zap.Int("class", class))
	}
	p.rented.Add(1)
	p.account(class, 1)
	return buf[:n]
}

// Put returns buf to its class free list. A buffer whose capacity is
// not a class size (a reslice, or a slice that never came from this
// pool) is counted and dropped for the GC so it can never poison a
// class list. Free lists beyond maxIdle also drop.
func (p *Pool[T]) Put(buf []T) {
	class := cap(buf)
	if class == 0 {
		return
	}
	p.returned.Add(1)
	p.account(classFor(class), -1)
	if class != classFor(class) {
		return
	}

	full := buf[:class]
	p.mu.Lock()
	fl, ok := p.classes[class]
	if !ok {
		fl = queue.New()
		p.classes[class] = fl
	}
	if fl.Length() < p.maxIdle {
		fl.Add(full)
	}
	p.mu.Unlock()
}

// Stats reports rent/return accounting for this pool.
func (p *Pool[T]) Stats() api.PoolStats {
	rented := p.rented.Load()
	returned := p.returned.Load()

	p.classMu.Lock()
	per := make(map[int]int64, len(p.byClass))
	for class, outstanding := range p.byClass {
		if outstanding != 0 {
			per[class] = outstanding
		}
	}
	p.classMu.Unlock()

	return api.PoolStats{
		TotalRented:   rented,
		TotalReturned: returned,
		Outstanding:   rented - returned,
		PerClass:      per,
	}
}

func (p *Pool[T]) account(class int, delta int64) {
	p.classMu.Lock()
	p.byClass[class] += delta
	p.classMu.Unlock()
}

var _ api.Pool[byte] = (*Pool[byte])(nil)
