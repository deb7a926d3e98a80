package models

import (
	"fmt"
	"math/rand/v2"

	"github.com/shopspring/decimal"
)

var factoryNames = []string{
	"Hat", "Pants", "Shirt", "Apple", "Banana",
	"Pots", "Towels", "Ford", "Chevy", "Hammer", "Wrench",
}

// NewRandomProduct builds a valid, unpersisted product with randomized
// fields for use as a test fixture. The price is a two-decimal value
// between 0.50 and 2000.00.
func NewRandomProduct() *Product {
	name := factoryNames[rand.IntN(len(factoryNames))]
	categories := Categories()
	return &Product{
		Name:        name,
		Description: fmt.Sprintf("A sample %s for testing", name),
		Price:       decimal.NewFromFloat(0.5 + rand.Float64()*1999.5).Round(2),
		Available:   rand.IntN(2) == 0,
		Category:    categories[rand.IntN(len(categories))],
	}
}
