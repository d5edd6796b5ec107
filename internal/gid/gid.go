// File: internal/gid/gid.go
//
// Goroutine id extraction for the scope registry. The runtime offers no
// goroutine-local storage, so the id is parsed from the fixed
// "goroutine N [state]:" header that runtime.Stack prints for the
// calling goroutine.

package gid

import (
	"bytes"
	"runtime"
	"strconv"
)

// Get returns the calling goroutine's id.
func Get() int64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	header := buf[:n]
	header = bytes.TrimPrefix(header, []byte("goroutine "))
	if i := bytes.IndexByte(header, ' '); i >= 0 {
		header = header[:i]
	}
	id, err := strconv.ParseInt(string(header), 10, 64)
	if err != nil {
		panic("gid: malformed runtime.Stack header: " + string(buf[:n]))
	}
	return id
}
