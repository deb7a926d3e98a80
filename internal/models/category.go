package models

import "fmt"

// Category is a product classification label. The set is closed: values
// outside it are rejected during deserialization.
type Category string

const (
	CategoryUnknown    Category = "UNKNOWN"
	CategoryCloths     Category = "CLOTHS"
	CategoryFood       Category = "FOOD"
	CategoryHousewares Category = "HOUSEWARES"
	CategoryAutomotive Category = "AUTOMOTIVE"
	CategoryTools      Category = "TOOLS"
)

// Categories returns every valid category label.
func Categories() []Category {
	return []Category{
		CategoryUnknown,
		CategoryCloths,
		CategoryFood,
		CategoryHousewares,
		CategoryAutomotive,
		CategoryTools,
	}
}

// ParseCategory looks up a category by its label. An unknown label is a
// data-validation error, never silently accepted as free-form text.
func ParseCategory(label string) (Category, error) {
	for _, c := range Categories() {
		if string(c) == label {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: unknown category %q", ErrDataValidation, label)
}

// String returns the category label.
func (c Category) String() string {
	return string(c)
}
