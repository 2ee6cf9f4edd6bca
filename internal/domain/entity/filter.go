package entity

import "github.com/shopspring/decimal"

// SortKey selects the ordering applied after filtering.
type SortKey string

const (
	// SortFeatured keeps the input order untouched. FeaturedOrder exists on
	// the product record but is deliberately not consulted by this sort.
	SortFeatured SortKey = "featured"
	// SortNewest places new arrivals before the rest, otherwise stable.
	SortNewest SortKey = "newest"
	// SortRating orders by rating, highest first.
	SortRating SortKey = "rating"
	// SortPriceAsc orders by effective price, lowest first.
	SortPriceAsc SortKey = "price-asc"
	// SortPriceDesc orders by effective price, highest first.
	SortPriceDesc SortKey = "price-desc"
)

// IsValid checks if the SortKey is a valid value.
func (k SortKey) IsValid() bool {
	switch k {
	case SortFeatured, SortNewest, SortRating, SortPriceAsc, SortPriceDesc:
		return true
	default:
		return false
	}
}

// FilterState captures one browsing configuration over a category-scoped set.
// Fields combine with AND; values within a field combine with OR. An empty
// selection places no restriction on that field. The price bounds are
// inclusive and independent: a zero bound leaves that side of the range open.
type FilterState struct {
	SubCategories []string        `json:"subCategories"`
	PriceMin      decimal.Decimal `json:"priceMin"`
	PriceMax      decimal.Decimal `json:"priceMax"`
	Colors        []string        `json:"colors"`
	Sizes         []string        `json:"sizes"`
	Sort          SortKey         `json:"sort"`
}

// HasPriceRange reports whether a price restriction is set.
func (f *FilterState) HasPriceRange() bool {
	return !f.PriceMin.IsZero() || !f.PriceMax.IsZero()
}
