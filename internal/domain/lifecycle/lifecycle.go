// Package lifecycle holds shared start/stop settings for long-lived components.
package lifecycle

import "time"

// DefaultTimeout bounds start hooks and graceful shutdown of servers and clients.
const DefaultTimeout = 10 * time.Second
