// Package delivery defines the contract every transport entry point
// implements so the application can start them uniformly.
package delivery

import "context"

// Delivery is a long-running transport (HTTP server, worker, ...) whose
// lifetime is bound to the application's.
type Delivery interface {
	Serve(ctx context.Context) error
}
