// Package scope implements nestable allocation scopes over the shared
// buffer pool.
//
// A scope is an arena: Begin installs it as the calling goroutine's
// current scope, Rent tracks every buffer it hands out, and End returns
// all still-tracked buffers to the pool in one sweep. Scopes nest
// strictly LIFO per goroutine and are never shared across goroutines.
//
// One allocation can outlive its scope through detachment: DetachView
// (or the Detachable contract) removes it from the tracked set by
// storage identity and hands it to a Lease, whose Release returns the
// buffer exactly once.
//
// Misuse panics at the violating call: ending out of order, renting or
// detaching against an ended scope, crossing goroutines, renting
// non-positive lengths. End itself is idempotent so teardown paths can
// run unconditionally. Detach misses are normal control flow and yield
// no-op leases.
package scope
