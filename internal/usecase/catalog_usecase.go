// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"storefront/internal/domain/entity"
)

// ProductInput defines the data required to create a new product. The store
// itself performs no field validation; structural validation happens at the
// delivery boundary.
type ProductInput struct {
	Name          string           `json:"name" validate:"required"`
	Description   string           `json:"description"`
	Price         decimal.Decimal  `json:"price"`
	Category      entity.Category  `json:"category" validate:"required"`
	SubCategory   string           `json:"subCategory"`
	Images        []string         `json:"images" validate:"min=1"`
	Sizes         []string         `json:"sizes" validate:"min=1"`
	Colors        []string         `json:"colors" validate:"min=1"`
	Ratings       float64          `json:"ratings"`
	ReviewCount   int              `json:"reviewCount"`
	InStock       bool             `json:"inStock"`
	FeaturedOrder int              `json:"featuredOrder"`
	IsNew         bool             `json:"isNew"`
	OnSale        bool             `json:"onSale"`
	SalePrice     *decimal.Decimal `json:"salePrice"`
}

// ProductPatch carries a partial update; nil fields are left untouched.
type ProductPatch struct {
	Name          *string          `json:"name"`
	Description   *string          `json:"description"`
	Price         *decimal.Decimal `json:"price"`
	Category      *entity.Category `json:"category"`
	SubCategory   *string          `json:"subCategory"`
	Images        []string         `json:"images"`
	Sizes         []string         `json:"sizes"`
	Colors        []string         `json:"colors"`
	Ratings       *float64         `json:"ratings"`
	ReviewCount   *int             `json:"reviewCount"`
	InStock       *bool            `json:"inStock"`
	FeaturedOrder *int             `json:"featuredOrder"`
	IsNew         *bool            `json:"isNew"`
	OnSale        *bool            `json:"onSale"`
	SalePrice     *decimal.Decimal `json:"salePrice"`
}

// CatalogUsecase defines the catalog store operations. The collection keeps
// insertion order, and every mutation re-persists the full snapshot.
type CatalogUsecase interface {
	// AddProduct assigns a unique id, appends the product and persists.
	AddProduct(ctx context.Context, input ProductInput) (*entity.Product, error)

	// UpdateProduct merges the patch into the record with the given id.
	// Unknown ids are a silent no-op; callers needing confirmation should
	// check existence first.
	UpdateProduct(ctx context.Context, id string, patch ProductPatch) error

	// RemoveProduct deletes the record with the given id. Idempotent.
	RemoveProduct(ctx context.Context, id string) error

	// GetProduct returns the product with the given id.
	GetProduct(ctx context.Context, id string) (*entity.Product, error)

	// ProductsByCategory returns the category-scoped subset in insertion order.
	ProductsByCategory(ctx context.Context, category entity.Category) []entity.Product

	// AllProducts returns the full catalog in insertion order.
	AllProducts(ctx context.Context) []entity.Product

	// FeaturedProducts returns featured products ordered by featured rank.
	FeaturedProducts(ctx context.Context) []entity.Product

	// NewArrivals returns products flagged as new, in insertion order.
	NewArrivals(ctx context.Context) []entity.Product

	// OnSaleProducts returns products currently on sale, in insertion order.
	OnSaleProducts(ctx context.Context) []entity.Product
}
