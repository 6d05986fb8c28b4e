// Package lifecycle holds shared values for start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds startup checks and graceful shutdown.
const DefaultTimeout = 10 * time.Second
