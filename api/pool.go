// File: api/pool.go
//
// Typed rent/return contract for reusable element buffers, plus the
// accounting surface observability layers consume.

package api

// Pool hands out reusable []T buffers grouped by size class.
// Implementations must be safe for concurrent Get/Put from many
// goroutines; scopes and builders layer single-owner semantics on top.
type Pool[T any] interface {
	// Get returns a buffer of exactly n elements. The slice capacity is
	// the backing size class and may exceed n. Contents are undefined:
	// reused buffers are handed back dirty.
	Get(n int) []T

	// Put returns a buffer to the pool. The buffer must not be used
	// afterwards.
	Put(buf []T)

	// Stats exposes rent/return accounting.
	Stats() PoolStats
}

// PoolStats aggregates buffer rent/return accounting for one pool.
type PoolStats struct {
	TotalRented   int64
	TotalReturned int64
	Outstanding   int64
	// PerClass maps size class (elements) to buffers currently rented
	// from that class. Classes with zero outstanding are omitted.
	PerClass map[int]int64
}
