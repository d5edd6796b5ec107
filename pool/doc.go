// Package pool implements the shared buffer pool underneath geomem.
//
// Buffers are keyed by element type and power-of-two size class. Each
// element type gets one process-wide pool (Shared[T]); each class keeps
// a bounded FIFO free list so idle memory stays capped. Rent/return is
// safe for concurrent use from many goroutines; ownership discipline
// on top of it (one owner per rented buffer) belongs to the scope and
// buffer packages.
//
// See pool.go for the size-class mechanics and shared.go for the
// per-type registry.
package pool
