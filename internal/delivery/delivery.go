// Package delivery defines the entry points that expose usecases to the outside.
package delivery

import "context"

// Delivery is a long running server started by the application.
type Delivery interface {
	// Serve blocks until the server stops.
	Serve(ctx context.Context) error
}
