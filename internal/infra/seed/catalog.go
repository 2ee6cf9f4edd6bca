// Package seed provides the built-in starter catalog used on first run, before
// any catalog snapshot has been persisted.
package seed

import (
	"github.com/shopspring/decimal"

	"storefront/internal/domain/entity"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)

	return &d
}

// Products returns a fresh copy of the starter catalog.
func Products() []entity.Product {
	return []entity.Product{
		{
			ID:          "1",
			Name:        "Men's Classic Oxford Shirt",
			Description: "A timeless Oxford shirt made from premium cotton with a comfortable regular fit. Perfect for both casual and semi-formal occasions.",
			Price:       dec("69.99"),
			Category:    entity.CategoryMen,
			SubCategory: "shirts",
			Images: []string{
				"https://images.pexels.com/photos/297933/pexels-photo-297933.jpeg",
				"https://images.pexels.com/photos/2235071/pexels-photo-2235071.jpeg",
			},
			Sizes:         []string{"S", "M", "L", "XL", "XXL"},
			Colors:        []string{"White", "Blue", "Black"},
			Ratings:       4.8,
			ReviewCount:   124,
			InStock:       true,
			FeaturedOrder: 1,
		},
		{
			ID:          "2",
			Name:        "Men's Slim Fit Chinos",
			Description: "Modern slim fit chinos crafted from stretch cotton twill for all-day comfort. Features a clean, tailored silhouette that works for any occasion.",
			Price:       dec("59.99"),
			Category:    entity.CategoryMen,
			SubCategory: "pants",
			Images: []string{
				"https://images.pexels.com/photos/1484806/pexels-photo-1484806.jpeg",
			},
			Sizes:       []string{"28", "30", "32", "34", "36", "38"},
			Colors:      []string{"Khaki", "Navy", "Black", "Olive"},
			Ratings:     4.5,
			ReviewCount: 98,
			InStock:     true,
			IsNew:       true,
		},
		{
			ID:          "3",
			Name:        "Women's Casual Blazer",
			Description: "A versatile blazer designed for the modern woman. Structured yet comfortable enough for all-day wear.",
			Price:       dec("89.99"),
			Category:    entity.CategoryWomen,
			SubCategory: "jackets",
			Images: []string{
				"https://images.pexels.com/photos/1043474/pexels-photo-1043474.jpeg",
			},
			Sizes:         []string{"XS", "S", "M", "L", "XL"},
			Colors:        []string{"Black", "Navy", "Grey"},
			Ratings:       4.7,
			ReviewCount:   86,
			InStock:       true,
			FeaturedOrder: 2,
			OnSale:        true,
			SalePrice:     decPtr("69.99"),
		},
		{
			ID:          "4",
			Name:        "Women's Slim Fit Jeans",
			Description: "High-quality denim jeans with a comfortable stretch. Features a slim fit design that flatters your silhouette.",
			Price:       dec("74.99"),
			Category:    entity.CategoryWomen,
			SubCategory: "pants",
			Images: []string{
				"https://images.pexels.com/photos/1346187/pexels-photo-1346187.jpeg",
			},
			Sizes:       []string{"24", "26", "28", "30", "32"},
			Colors:      []string{"Light Blue", "Medium Blue", "Dark Blue", "Black"},
			Ratings:     4.6,
			ReviewCount: 152,
			InStock:     true,
			IsNew:       true,
		},
		{
			ID:          "5",
			Name:        "Kids' Graphic T-Shirt",
			Description: "Fun and colorful graphic t-shirt made from 100% organic cotton. Comfortable fit with playful designs kids will love.",
			Price:       dec("24.99"),
			Category:    entity.CategoryKids,
			SubCategory: "shirts",
			Images: []string{
				"https://images.pexels.com/photos/4149019/pexels-photo-4149019.jpeg",
			},
			Sizes:         []string{"3Y", "4Y", "5Y", "6Y", "7Y", "8Y"},
			Colors:        []string{"Red", "Blue", "Green", "Yellow"},
			Ratings:       4.9,
			ReviewCount:   64,
			InStock:       true,
			FeaturedOrder: 3,
		},
		{
			ID:          "6",
			Name:        "Kids' Denim Overalls",
			Description: "Classic denim overalls made for durability and comfort. Adjustable straps and multiple pockets make these perfect for active kids.",
			Price:       dec("39.99"),
			Category:    entity.CategoryKids,
			SubCategory: "pants",
			Images: []string{
				"https://images.pexels.com/photos/1620760/pexels-photo-1620760.jpeg",
			},
			Sizes:       []string{"3Y", "4Y", "5Y", "6Y", "7Y", "8Y"},
			Colors:      []string{"Light Denim", "Dark Denim"},
			Ratings:     4.7,
			ReviewCount: 48,
			InStock:     true,
			OnSale:      true,
			SalePrice:   decPtr("29.99"),
		},
		{
			ID:          "7",
			Name:        "Men's Leather Jacket",
			Description: "Premium leather jacket with a timeless design. Features a comfortable fit and durable construction for years of wear.",
			Price:       dec("199.99"),
			Category:    entity.CategoryMen,
			SubCategory: "jackets",
			Images: []string{
				"https://images.pexels.com/photos/1124468/pexels-photo-1124468.jpeg",
			},
			Sizes:       []string{"S", "M", "L", "XL", "XXL"},
			Colors:      []string{"Black", "Brown"},
			Ratings:     4.9,
			ReviewCount: 76,
			InStock:     true,
			IsNew:       true,
		},
		{
			ID:          "8",
			Name:        "Women's Summer Dress",
			Description: "Lightweight and flowing summer dress perfect for warm days. Made from breathable fabric with a flattering silhouette.",
			Price:       dec("79.99"),
			Category:    entity.CategoryWomen,
			SubCategory: "dresses",
			Images: []string{
				"https://images.pexels.com/photos/972995/pexels-photo-972995.jpeg",
			},
			Sizes:         []string{"XS", "S", "M", "L", "XL"},
			Colors:        []string{"White", "Floral", "Blue", "Red"},
			Ratings:       4.8,
			ReviewCount:   105,
			InStock:       true,
			OnSale:        true,
			SalePrice:     decPtr("59.99"),
			FeaturedOrder: 4,
		},
	}
}
