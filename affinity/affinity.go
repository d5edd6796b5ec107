// File: affinity/affinity.go
//
// Platform-neutral API for CPU affinity. Platform-specific
// implementations live in separate files guarded by build tags.

package affinity

import "runtime"

// SetAffinity pins the current OS thread to the given logical CPU on
// supported platforms. On unsupported platforms it returns an error.
func SetAffinity(cpuID int) error {
	return setAffinityPlatform(cpuID)
}

// Pin locks the calling goroutine to its OS thread and pins that thread
// to cpuID. The returned func undoes the lock. Intended for hot
// geometry loops that want a stable core while an allocation scope is
// open.
func Pin(cpuID int) (func(), error) {
	runtime.LockOSThread()
	if err := setAffinityPlatform(cpuID); err != nil {
		runtime.UnlockOSThread()
		return nil, err
	}
	return runtime.UnlockOSThread, nil
}
