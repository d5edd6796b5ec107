// File: api/errors.go
//
// Common error values shared across the library. Usage violations
// (ended-scope use, out-of-order teardown, cross-goroutine access) are
// not represented here: those panic at the violating call because
// continuing would corrupt pool accounting silently.

package api

import "errors"

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotSupported    = errors.New("operation not supported")
)
