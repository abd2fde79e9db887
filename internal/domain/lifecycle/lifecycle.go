// Package lifecycle holds shared start/stop conventions for long-lived components.
package lifecycle

import "time"

// DefaultTimeout bounds startup probes and graceful shutdown of servers and
// store connections.
const DefaultTimeout = 10 * time.Second
