package impl

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"

	"storefront/internal/usecase"
)

type dashboardService struct {
	catalog  usecase.CatalogUsecase
	checkout usecase.CheckoutUsecase
}

// DashboardServiceParams holds dependencies for DashboardService, injected by Fx.
type DashboardServiceParams struct {
	fx.In

	Catalog  usecase.CatalogUsecase
	Checkout usecase.CheckoutUsecase
}

// NewDashboardService creates the dashboard figures provider.
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	return &dashboardService{
		catalog:  params.Catalog,
		checkout: params.Checkout,
	}
}

// AdminStats derives the storefront-wide figures from orders and catalog.
func (s *dashboardService) AdminStats(ctx context.Context) usecase.AdminStats {
	orders := s.checkout.Orders(ctx)
	products := s.catalog.AllProducts(ctx)

	revenue := decimal.Zero
	for _, o := range orders {
		revenue = revenue.Add(o.Total)
	}

	lowStock := 0
	for _, p := range products {
		if !p.InStock {
			lowStock++
		}
	}

	return usecase.AdminStats{
		TotalRevenue:     revenue,
		TotalOrders:      len(orders),
		TotalProducts:    len(products),
		LowStockProducts: lowStock,
	}
}

// SellerStats derives the catalog figures for the seller dashboard.
func (s *dashboardService) SellerStats(ctx context.Context) usecase.SellerStats {
	products := s.catalog.AllProducts(ctx)

	stats := usecase.SellerStats{TotalProducts: len(products)}
	for _, p := range products {
		if p.InStock {
			stats.InStock++
		} else {
			stats.OutOfStock++
		}
		if p.IsNew {
			stats.NewArrivals++
		}
		if p.OnSale {
			stats.OnSale++
		}
	}

	return stats
}
