// Package delivery defines the contract shared by the transports that expose
// the application to the outside world.
package delivery

import "context"

// Delivery is a long-running transport (e.g. the HTTP server). Each
// implementation registers its own shutdown hook with the fx lifecycle.
type Delivery interface {
	// Serve blocks, accepting and dispatching requests until shut down.
	Serve(ctx context.Context) error
}
