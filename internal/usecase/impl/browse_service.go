package impl

import (
	"context"
	"slices"
	"sort"

	"go.uber.org/fx"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase"
)

type browseService struct {
	catalog usecase.CatalogUsecase
}

// BrowseServiceParams holds dependencies for BrowseService, injected by Fx.
type BrowseServiceParams struct {
	fx.In

	Catalog usecase.CatalogUsecase
}

// NewBrowseService creates the filter/sort engine over the catalog store.
func NewBrowseService(params BrowseServiceParams) usecase.BrowseUsecase {
	return &browseService{catalog: params.Catalog}
}

// ListProducts recomputes the filtered, sorted view from the category-scoped
// base set. Small catalogs make full recomputation cheap; this is the known
// scalability boundary of the contract.
func (s *browseService) ListProducts(ctx context.Context, category entity.Category, filter entity.FilterState) []entity.Product {
	base := s.catalog.ProductsByCategory(ctx, category)
	result := filterProducts(base, filter)
	sortProducts(result, filter.Sort)

	return result
}

// Facets returns the distinct subcategories, colors and sizes present in the
// category, in first-seen order.
func (s *browseService) Facets(ctx context.Context, category entity.Category) usecase.Facets {
	base := s.catalog.ProductsByCategory(ctx, category)

	facets := usecase.Facets{
		SubCategories: []string{},
		Colors:        []string{},
		Sizes:         []string{},
	}
	for _, p := range base {
		facets.SubCategories = appendDistinct(facets.SubCategories, p.SubCategory)
		for _, c := range p.Colors {
			facets.Colors = appendDistinct(facets.Colors, c)
		}
		for _, sz := range p.Sizes {
			facets.Sizes = appendDistinct(facets.Sizes, sz)
		}
	}

	return facets
}

// filterProducts applies the filter fields with AND semantics across fields
// and OR semantics within each field's selections. An empty selection leaves
// its field unrestricted.
func filterProducts(products []entity.Product, filter entity.FilterState) []entity.Product {
	result := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if len(filter.SubCategories) > 0 && !slices.Contains(filter.SubCategories, p.SubCategory) {
			continue
		}
		if filter.HasPriceRange() {
			price := p.EffectivePrice()
			if !filter.PriceMin.IsZero() && price.LessThan(filter.PriceMin) {
				continue
			}
			if !filter.PriceMax.IsZero() && price.GreaterThan(filter.PriceMax) {
				continue
			}
		}
		if len(filter.Colors) > 0 && !intersects(p.Colors, filter.Colors) {
			continue
		}
		if len(filter.Sizes) > 0 && !intersects(p.Sizes, filter.Sizes) {
			continue
		}
		result = append(result, p)
	}

	return result
}

// sortProducts orders the slice in place. Every comparator is stable so equal
// elements keep their original relative order. The featured key is a
// pass-through: FeaturedOrder is deliberately not consulted here.
func sortProducts(products []entity.Product, key entity.SortKey) {
	switch key {
	case entity.SortNewest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].IsNew && !products[j].IsNew
		})
	case entity.SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Ratings > products[j].Ratings
		})
	case entity.SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].EffectivePrice().LessThan(products[j].EffectivePrice())
		})
	case entity.SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].EffectivePrice().GreaterThan(products[j].EffectivePrice())
		})
	case entity.SortFeatured:
		// input order preserved
	default:
		// unknown keys behave like featured
	}
}

func intersects(values, selected []string) bool {
	for _, v := range values {
		if slices.Contains(selected, v) {
			return true
		}
	}

	return false
}

func appendDistinct(list []string, v string) []string {
	if slices.Contains(list, v) {
		return list
	}

	return append(list, v)
}
