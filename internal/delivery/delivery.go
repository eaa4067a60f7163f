// Package delivery holds the transports that expose the usecases.
package delivery

import "context"

// Delivery is a long-running server started by the process entry point.
type Delivery interface {
	Serve(ctx context.Context) error
}
