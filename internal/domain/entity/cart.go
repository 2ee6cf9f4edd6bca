package entity

import "github.com/shopspring/decimal"

// CartItem is one cart line. Name, Price and Image are snapshots taken when the
// item was added; they are never refreshed from the catalog afterwards.
type CartItem struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Quantity  int             `json:"quantity"`
	Size      string          `json:"size,omitempty"`
	Color     string          `json:"color,omitempty"`
}

// MergeKey identifies a cart line for merging purposes. Two additions join the
// same line only when product, size and color all match.
type MergeKey struct {
	ProductID string
	Size      string
	Color     string
}

// Key returns the merge key of the item.
func (i *CartItem) Key() MergeKey {
	return MergeKey{ProductID: i.ProductID, Size: i.Size, Color: i.Color}
}

// Cart is an ordered list of cart lines. Count and Total are derived from the
// lines on every call rather than cached.
type Cart struct {
	Items []CartItem `json:"items"`
}

// Count is the total number of units across all lines.
func (c *Cart) Count() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}

	return count
}

// Total is the sum of unit price times quantity across all lines.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	return total
}
