// File: facade/memory.go
//
// Single allocation entry point for all geometry code.

package facade

import "github.com/tessellata/geomem/scope"

// Memory returns a buffer of exactly n elements of T. When the calling
// goroutine has an active allocation scope the buffer is rented through
// it and released in bulk at scope end; otherwise the buffer is a
// standalone allocation owned by the garbage collector. Callers never
// need to know which path was taken. n must be positive.
func Memory[T any](n int) []T {
	if s := scope.Current(); s != nil {
		return scope.Rent[T](s, n)
	}
	if n <= 0 {
		panic("facade: non-positive buffer length")
	}
	return make([]T, n)
}
