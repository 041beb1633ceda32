package enums

import "fmt"

// OrderCategory maps to the order_category_enum enum in Postgres.
type OrderCategory string

const (
	OrderCategoryNewStitch  OrderCategory = "new_stitch"
	OrderCategoryAlteration OrderCategory = "alteration"
)

var validOrderCategories = []OrderCategory{
	OrderCategoryNewStitch,
	OrderCategoryAlteration,
}

// IsValid reports whether the value matches the canonical order category enum.
func (c OrderCategory) IsValid() bool {
	for _, candidate := range validOrderCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseOrderCategory converts raw input into OrderCategory.
func ParseOrderCategory(value string) (OrderCategory, error) {
	for _, candidate := range validOrderCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid order category %q", value)
}
