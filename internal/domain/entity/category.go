// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Category represents a top-level catalog section.
type Category string

const (
	// CategoryMen is the men's collection.
	CategoryMen Category = "men"
	// CategoryWomen is the women's collection.
	CategoryWomen Category = "women"
	// CategoryKids is the kids' collection.
	CategoryKids Category = "kids"
)

// String returns the string representation of the Category.
func (c Category) String() string {
	return string(c)
}

// IsValid checks if the Category is a valid value.
func (c Category) IsValid() bool {
	switch c {
	case CategoryMen, CategoryWomen, CategoryKids:
		return true
	default:
		return false
	}
}

// Categories lists every valid catalog category.
func Categories() []Category {
	return []Category{CategoryMen, CategoryWomen, CategoryKids}
}

// ParseCategory converts a raw string into a Category, falling back to the
// men's collection for unknown values so that browsing never dead-ends.
func ParseCategory(s string) Category {
	c := Category(s)
	if !c.IsValid() {
		return CategoryMen
	}

	return c
}
