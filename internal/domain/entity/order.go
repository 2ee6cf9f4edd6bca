package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShippingDetails is the address block collected by the checkout form.
type ShippingDetails struct {
	FullName   string `json:"fullName"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// Order is a placed order: a frozen snapshot of the cart at checkout time.
type Order struct {
	ID        string          `json:"id"`
	Items     []CartItem      `json:"items"`
	Total     decimal.Decimal `json:"total"`
	Shipping  ShippingDetails `json:"shipping"`
	PlacedAt  time.Time       `json:"placedAt"`
	UserEmail string          `json:"userEmail,omitempty"`
}
