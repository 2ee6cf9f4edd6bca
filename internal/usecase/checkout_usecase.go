package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// PlaceOrderInput defines the data collected by the checkout form.
type PlaceOrderInput struct {
	Shipping entity.ShippingDetails `json:"shipping"`
	Email    string                 `json:"email"`
}

// CheckoutUsecase turns the current cart into a placed order.
type CheckoutUsecase interface {
	// PlaceOrder snapshots the cart into an order, persists it and clears
	// the cart. Checking out an empty cart fails.
	PlaceOrder(ctx context.Context, input PlaceOrderInput) (*entity.Order, error)

	// Orders returns all placed orders, oldest first.
	Orders(ctx context.Context) []entity.Order
}
