// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Load when no value is stored under the key.
// An absent key is an expected condition, not a failure.
var ErrKeyNotFound = errors.New("key not found")

// Well-known persistence keys. Each key holds one serialized record set.
const (
	KeyProducts = "products"
	KeyCart     = "cart"
	KeyUser     = "user"
	KeyOrders   = "orders"
)

// Store is the key-value persistence boundary. It is the only external I/O the
// storefront performs. Writes are best-effort from the caller's point of view:
// the application layer logs a failed Save and carries on.
type Store interface {
	// Load returns the raw value stored under key, or ErrKeyNotFound.
	Load(ctx context.Context, key string) ([]byte, error)

	// Save stores the raw value under key, replacing any previous value.
	Save(ctx context.Context, key string, value []byte) error

	// Delete removes the value stored under key. Deleting an absent key is
	// not an error.
	Delete(ctx context.Context, key string) error
}
