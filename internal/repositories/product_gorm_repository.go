package repositories

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"catalog/internal/models"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// All retrieves every persisted product.
func (r *GORMProductRepository) All() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// Find retrieves a single product by its id, or nil when no row matches.
func (r *GORMProductRepository) Find(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find product %d: %w", id, err)
	}
	return &product, nil
}

// FindByName retrieves all products with an exactly matching name.
func (r *GORMProductRepository) FindByName(name string) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Where("name = ?", name).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to find products by name %q: %w", name, err)
	}
	return products, nil
}

// FindByCategory retrieves all products in the given category.
func (r *GORMProductRepository) FindByCategory(category models.Category) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Where("category = ?", category).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to find products by category %s: %w", category, err)
	}
	return products, nil
}

// FindByAvailability retrieves all products with the given availability.
func (r *GORMProductRepository) FindByAvailability(available bool) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Where("available = ?", available).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to find products by availability %t: %w", available, err)
	}
	return products, nil
}

// FindByPrice retrieves all products whose price equals the given decimal.
// Callers with a textual price go through models.ParsePrice first so both
// sides of the comparison are canonical decimals.
func (r *GORMProductRepository) FindByPrice(price decimal.Decimal) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Where("price = ?", price).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to find products by price %s: %w", price, err)
	}
	return products, nil
}

// Create inserts the product as a new row and stores the generated id on it.
// Constraint violations propagate from the storage layer unwrapped in any
// validation error.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update persists the product's current field values to its existing row.
// A product that was never persisted (id 0) is a validation error and
// storage is left untouched. If the row has since been deleted the update
// matches nothing and is a no-op.
func (r *GORMProductRepository) Update(product *models.Product) error {
	if product.ID == 0 {
		return fmt.Errorf("%w: update called on product without an id", models.ErrDataValidation)
	}
	// Select("*") writes zero-valued fields too; Updates (unlike Save) never
	// re-inserts a row that no longer exists.
	if err := r.db.Model(product).Select("*").Updates(product).Error; err != nil {
		return fmt.Errorf("failed to update product %d: %w", product.ID, err)
	}
	return nil
}

// Delete removes the row with the given id. Deleting an absent row is a
// no-op.
func (r *GORMProductRepository) Delete(id uint) error {
	if err := r.db.Delete(&models.Product{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete product %d: %w", id, err)
	}
	return nil
}
