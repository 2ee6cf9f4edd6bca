// Package delivery defines the contract every delivery surface implements.
package delivery

import "context"

// Delivery is a long-running delivery surface, started by the application
// lifecycle and stopped through its fx hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
