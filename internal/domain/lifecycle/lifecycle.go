// Package lifecycle holds shared timing constants for process start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds fx OnStart/OnStop work such as pinging the database
// or draining an HTTP server.
const DefaultTimeout = 10 * time.Second
