package impl

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"
)

// catalogServiceFixtures holds all test dependencies for catalog store tests.
type catalogServiceFixtures struct {
	service usecase.CatalogUsecase
	store   *fakeStore
}

// createTestCatalogService builds a catalog store preloaded with the given
// products through a persisted snapshot, with seeding disabled.
func createTestCatalogService(t *testing.T, products []entity.Product) catalogServiceFixtures {
	t.Helper()

	store := newFakeStore()
	if len(products) > 0 {
		data, err := json.Marshal(products)
		require.NoError(t, err)
		require.NoError(t, store.Save(context.Background(), repository.KeyProducts, data))
	}

	service := NewCatalogService(CatalogServiceParams{
		Config: testConfig(),
		Store:  store,
		Logger: testLogger(),
	})

	return catalogServiceFixtures{service: service, store: store}
}

func TestCatalogService_AddProduct_AssignsIDAndPersists(t *testing.T) {
	fx := createTestCatalogService(t, nil)
	ctx := context.Background()

	created, err := fx.service.AddProduct(ctx, usecase.ProductInput{
		Name:     "Wool Sweater",
		Price:    price("65.00"),
		Category: entity.CategoryMen,
		Images:   []string{"https://example.com/sweater.jpg"},
		Sizes:    []string{"M"},
		Colors:   []string{"grey"},
		InStock:  true,
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEmpty(t, created.ID)

	data, ok := fx.store.raw(repository.KeyProducts)
	require.True(t, ok)

	var persisted []entity.Product
	require.NoError(t, json.Unmarshal(data, &persisted))
	require.Len(t, persisted, 1)
	assert.Equal(t, created.ID, persisted[0].ID)
}

func TestCatalogService_AddProduct_AppendsInInsertionOrder(t *testing.T) {
	fx := createTestCatalogService(t, nil)
	ctx := context.Background()

	for _, name := range []string{"First", "Second", "Third"} {
		_, err := fx.service.AddProduct(ctx, usecase.ProductInput{
			Name:     name,
			Category: entity.CategoryMen,
			Images:   []string{"https://example.com/p.jpg"},
			Sizes:    []string{"M"},
			Colors:   []string{"black"},
		})
		require.NoError(t, err)
	}

	all := fx.service.AllProducts(ctx)
	require.Len(t, all, 3)
	assert.Equal(t, "First", all[0].Name)
	assert.Equal(t, "Second", all[1].Name)
	assert.Equal(t, "Third", all[2].Name)
}

func TestCatalogService_UpdateProduct_MergesPatch(t *testing.T) {
	fx := createTestCatalogService(t, []entity.Product{testProduct("p1", "Old Name")})
	ctx := context.Background()

	name := "New Name"
	onSale := true
	err := fx.service.UpdateProduct(ctx, "p1", usecase.ProductPatch{
		Name:      &name,
		OnSale:    &onSale,
		SalePrice: pricePtr("19.99"),
	})
	require.NoError(t, err)

	updated, err := fx.service.GetProduct(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	assert.True(t, updated.OnSale)
	require.NotNil(t, updated.SalePrice)
	assert.True(t, updated.SalePrice.Equal(price("19.99")))
	// Untouched fields survive the patch.
	assert.True(t, updated.Price.Equal(price("49.99")))
}

func TestCatalogService_UpdateProduct_UnknownIDIsSilentNoop(t *testing.T) {
	fx := createTestCatalogService(t, []entity.Product{testProduct("p1", "Shirt")})
	ctx := context.Background()

	name := "Ghost"
	require.NoError(t, fx.service.UpdateProduct(ctx, "missing", usecase.ProductPatch{Name: &name}))

	all := fx.service.AllProducts(ctx)
	require.Len(t, all, 1)
	assert.Equal(t, "Shirt", all[0].Name)
}

func TestCatalogService_RemoveProduct_IsIdempotent(t *testing.T) {
	fx := createTestCatalogService(t, []entity.Product{testProduct("p1", "Shirt")})
	ctx := context.Background()

	require.NoError(t, fx.service.RemoveProduct(ctx, "p1"))
	require.NoError(t, fx.service.RemoveProduct(ctx, "p1"))

	assert.Empty(t, fx.service.AllProducts(ctx))
}

func TestCatalogService_GetProduct_UnknownIDFails(t *testing.T) {
	fx := createTestCatalogService(t, nil)

	_, err := fx.service.GetProduct(context.Background(), "missing")
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_FeaturedProducts_OrderedByRank(t *testing.T) {
	first := testProduct("p1", "Plain Tee")
	second := testProduct("p2", "Hero Jacket")
	second.FeaturedOrder = 1
	third := testProduct("p3", "Runner Shoe")
	third.FeaturedOrder = 2

	fx := createTestCatalogService(t, []entity.Product{first, second, third})

	featured := fx.service.FeaturedProducts(context.Background())
	require.Len(t, featured, 2)
	assert.Equal(t, "p2", featured[0].ID)
	assert.Equal(t, "p3", featured[1].ID)
}

func TestCatalogService_NewArrivalsAndOnSale(t *testing.T) {
	fresh := testProduct("p1", "Fresh Drop")
	fresh.IsNew = true
	discounted := testProduct("p2", "Last Season")
	discounted.OnSale = true
	discounted.SalePrice = pricePtr("25.00")
	plain := testProduct("p3", "Evergreen")

	fx := createTestCatalogService(t, []entity.Product{fresh, discounted, plain})
	ctx := context.Background()

	arrivals := fx.service.NewArrivals(ctx)
	require.Len(t, arrivals, 1)
	assert.Equal(t, "p1", arrivals[0].ID)

	sale := fx.service.OnSaleProducts(ctx)
	require.Len(t, sale, 1)
	assert.Equal(t, "p2", sale[0].ID)
}

func TestNewCatalogService_SeedsWhenSnapshotAbsent(t *testing.T) {
	store := newFakeStore()
	service := NewCatalogService(CatalogServiceParams{
		Config: testConfigWithSeed(),
		Store:  store,
		Logger: testLogger(),
	})

	all := service.AllProducts(context.Background())
	assert.NotEmpty(t, all)

	_, ok := store.raw(repository.KeyProducts)
	assert.True(t, ok, "seeded catalog should be persisted")
}

func TestNewCatalogService_MalformedSnapshotFallsBackToSeed(t *testing.T) {
	store := newFakeStore()
	require.NoError(t, store.Save(context.Background(), repository.KeyProducts, []byte("not json")))

	service := NewCatalogService(CatalogServiceParams{
		Config: testConfigWithSeed(),
		Store:  store,
		Logger: testLogger(),
	})

	assert.NotEmpty(t, service.AllProducts(context.Background()))
}
