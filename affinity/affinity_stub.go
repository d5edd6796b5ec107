//go:build !linux

// File: affinity/affinity_stub.go
//
// Stub for platforms without thread affinity support.

package affinity

import (
	"fmt"

	"github.com/tessellata/geomem/api"
)

func setAffinityPlatform(cpuID int) error {
	return fmt.Errorf("affinity: %w", api.ErrNotSupported)
}
