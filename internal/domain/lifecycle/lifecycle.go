// Package lifecycle holds shared constants for component startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown hooks (database ping, server drain).
const DefaultTimeout = 10 * time.Second
