package usecase

import (
	"context"

	"github.com/shopspring/decimal"
)

// AdminStats summarizes the whole storefront for the admin dashboard.
type AdminStats struct {
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
	TotalOrders      int             `json:"totalOrders"`
	TotalProducts    int             `json:"totalProducts"`
	LowStockProducts int             `json:"lowStockProducts"`
}

// SellerStats summarizes the catalog for the seller dashboard.
type SellerStats struct {
	TotalProducts int `json:"totalProducts"`
	InStock       int `json:"inStock"`
	OutOfStock    int `json:"outOfStock"`
	NewArrivals   int `json:"newArrivals"`
	OnSale        int `json:"onSale"`
}

// DashboardUsecase computes the role-gated dashboard figures. The figures are
// derived on demand from the catalog and order list, never cached.
type DashboardUsecase interface {
	AdminStats(ctx context.Context) AdminStats
	SellerStats(ctx context.Context) SellerStats
}
