package repositories

import (
	"github.com/shopspring/decimal"

	"catalog/internal/models"
)

// ProductRepository defines the interface for product data access.
// Find returns (nil, nil) when no product matches the id.
type ProductRepository interface {
	All() ([]models.Product, error)
	Find(id uint) (*models.Product, error)
	FindByName(name string) ([]models.Product, error)
	FindByCategory(category models.Category) ([]models.Product, error)
	FindByAvailability(available bool) ([]models.Product, error)
	FindByPrice(price decimal.Decimal) ([]models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id uint) error
}
