package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// Facets lists the distinct filterable values of a category-scoped set, for
// building filter controls.
type Facets struct {
	SubCategories []string `json:"subCategories"`
	Colors        []string `json:"colors"`
	Sizes         []string `json:"sizes"`
}

// BrowseUsecase applies filters and sorting over a category-scoped product set.
// Results are recomputed from the base set on every call; nothing incremental.
type BrowseUsecase interface {
	// ListProducts returns the category's products narrowed by the filter
	// state and ordered by its sort key.
	ListProducts(ctx context.Context, category entity.Category, filter entity.FilterState) []entity.Product

	// Facets returns the distinct subcategories, colors and sizes present in
	// the category, in first-seen order.
	Facets(ctx context.Context, category entity.Category) Facets
}
