package models_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"catalog/internal/models"
)

func TestNewRandomProduct(t *testing.T) {
	minPrice := decimal.NewFromFloat(0.5)
	maxPrice := decimal.NewFromInt(2000)

	for i := 0; i < 100; i++ {
		product := models.NewRandomProduct()

		assert.Equal(t, uint(0), product.ID)
		assert.NotEmpty(t, product.Name)
		assert.NotEmpty(t, product.Description)
		assert.Contains(t, models.Categories(), product.Category)
		assert.True(t, product.Price.GreaterThanOrEqual(minPrice),
			"price %s below factory range", product.Price)
		assert.True(t, product.Price.LessThanOrEqual(maxPrice),
			"price %s above factory range", product.Price)
		assert.GreaterOrEqual(t, product.Price.Exponent(), int32(-2),
			"price %s has more than two decimal places", product.Price)
	}
}
