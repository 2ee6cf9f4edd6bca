package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase"
)

// dashboardServiceFixtures holds all test dependencies for dashboard tests.
type dashboardServiceFixtures struct {
	service  usecase.DashboardUsecase
	cart     usecase.CartUsecase
	checkout usecase.CheckoutUsecase
}

func createTestDashboardService(t *testing.T, products []entity.Product) dashboardServiceFixtures {
	t.Helper()

	catalog := createTestCatalogService(t, products)
	cart := NewCartService(CartServiceParams{Store: catalog.store, Logger: testLogger()})
	checkout := NewCheckoutService(CheckoutServiceParams{
		Cart:   cart,
		Store:  catalog.store,
		Logger: testLogger(),
	})
	service := NewDashboardService(DashboardServiceParams{
		Catalog:  catalog.service,
		Checkout: checkout,
	})

	return dashboardServiceFixtures{service: service, cart: cart, checkout: checkout}
}

func dashboardFixtureProducts() []entity.Product {
	inStock := testProduct("p1", "Stocked Tee")
	outOfStock := testProduct("p2", "Gone Hoodie")
	outOfStock.InStock = false
	fresh := testProduct("p3", "Fresh Jacket")
	fresh.IsNew = true
	discounted := testProduct("p4", "Cheap Jeans")
	discounted.OnSale = true
	discounted.SalePrice = pricePtr("15.00")

	return []entity.Product{inStock, outOfStock, fresh, discounted}
}

func TestDashboardService_AdminStats_DerivesFromOrdersAndCatalog(t *testing.T) {
	fx := createTestDashboardService(t, dashboardFixtureProducts())
	ctx := context.Background()

	require.NoError(t, fx.cart.AddItem(ctx, testCartItem("p1", 2, "M", "black")))
	_, err := fx.checkout.PlaceOrder(ctx, usecase.PlaceOrderInput{Email: "ada@example.com"})
	require.NoError(t, err)

	require.NoError(t, fx.cart.AddItem(ctx, testCartItem("p3", 1, "L", "white")))
	_, err = fx.checkout.PlaceOrder(ctx, usecase.PlaceOrderInput{Email: "ada@example.com"})
	require.NoError(t, err)

	stats := fx.service.AdminStats(ctx)
	assert.Equal(t, 2, stats.TotalOrders)
	assert.Equal(t, 4, stats.TotalProducts)
	assert.Equal(t, 1, stats.LowStockProducts)
	// 2 x 20.00 + 1 x 20.00
	assert.True(t, stats.TotalRevenue.Equal(price("60.00")), "revenue was %s", stats.TotalRevenue)
}

func TestDashboardService_AdminStats_EmptyStore(t *testing.T) {
	fx := createTestDashboardService(t, nil)

	stats := fx.service.AdminStats(context.Background())
	assert.Equal(t, 0, stats.TotalOrders)
	assert.Equal(t, 0, stats.TotalProducts)
	assert.True(t, stats.TotalRevenue.IsZero())
}

func TestDashboardService_SellerStats_CountsCatalogFlags(t *testing.T) {
	fx := createTestDashboardService(t, dashboardFixtureProducts())

	stats := fx.service.SellerStats(context.Background())
	assert.Equal(t, 4, stats.TotalProducts)
	assert.Equal(t, 3, stats.InStock)
	assert.Equal(t, 1, stats.OutOfStock)
	assert.Equal(t, 1, stats.NewArrivals)
	assert.Equal(t, 1, stats.OnSale)
}
