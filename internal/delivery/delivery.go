// Package delivery defines the contract every transport implementation
// (HTTP server, future workers) must satisfy.
package delivery

import "context"

// Delivery is a long-running transport that serves the application.
type Delivery interface {
	// Serve blocks until the transport stops or the context is cancelled.
	Serve(ctx context.Context) error
}
