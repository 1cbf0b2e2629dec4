// Package delivery defines the transport-facing entry points of the application.
package delivery

import "context"

// Delivery is a long-running transport surface, such as an HTTP server.
// Serve blocks until the surface stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
