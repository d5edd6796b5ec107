// Package api holds the contracts shared across geomem: the typed pool
// interface, its accounting types, and common error values.
//
// Nothing here allocates. Implementations live in the pool package;
// scope, buffer and facade consume them.
package api
