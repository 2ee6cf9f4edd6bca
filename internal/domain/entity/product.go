package entity

import "github.com/shopspring/decimal"

// Product is a single catalog record. Optional fields keep explicit zero-value
// defaults: a missing SalePrice means no sale price, FeaturedOrder 0 means the
// product is not featured, and IsNew/OnSale default to false.
type Product struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	Price         decimal.Decimal  `json:"price"`
	Category      Category         `json:"category"`
	SubCategory   string           `json:"subCategory"`
	Images        []string         `json:"images"`
	Sizes         []string         `json:"sizes"`
	Colors        []string         `json:"colors"`
	Ratings       float64          `json:"ratings"`
	ReviewCount   int              `json:"reviewCount"`
	InStock       bool             `json:"inStock"`
	FeaturedOrder int              `json:"featuredOrder,omitempty"`
	IsNew         bool             `json:"isNew,omitempty"`
	OnSale        bool             `json:"onSale,omitempty"`
	SalePrice     *decimal.Decimal `json:"salePrice,omitempty"`
}

// EffectivePrice is the price a buyer actually pays: the sale price when the
// product is on sale and one is set, otherwise the base price.
func (p *Product) EffectivePrice() decimal.Decimal {
	if p.OnSale && p.SalePrice != nil {
		return *p.SalePrice
	}

	return p.Price
}
