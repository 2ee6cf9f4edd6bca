package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"storefront/internal/domain/entity"
)

// CartView is a read model of the cart with its derived values, recomputed on
// every call.
type CartView struct {
	Items []entity.CartItem `json:"items"`
	Count int               `json:"count"`
	Total decimal.Decimal   `json:"total"`
	Open  bool              `json:"open"`
}

// CartUsecase defines the cart aggregator operations.
//
// AddItem merges on the full (product, size, color) triple; RemoveItem and
// SetQuantity are keyed by product id alone and touch every matching line.
// The asymmetry is deliberate: removal and quantity edits act on a product as
// a whole, not on a single variant line.
type CartUsecase interface {
	// AddItem merges the item into an existing line with the same merge key,
	// or appends a new line. Adding always makes the cart visible.
	AddItem(ctx context.Context, item entity.CartItem) error

	// RemoveItem removes all lines with the given product id.
	RemoveItem(ctx context.Context, productID string) error

	// SetQuantity sets the quantity on all lines with the given product id.
	// Quantities below 1 are ignored; removal is a separate explicit action.
	SetQuantity(ctx context.Context, productID string, quantity int) error

	// Clear empties the cart.
	Clear(ctx context.Context) error

	// View returns the current cart with derived count and total.
	View(ctx context.Context) CartView

	// OpenCart marks the cart drawer visible.
	OpenCart(ctx context.Context)

	// CloseCart marks the cart drawer hidden.
	CloseCart(ctx context.Context)
}
