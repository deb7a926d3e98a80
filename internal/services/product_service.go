package services

import (
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"catalog/internal/models"
	"catalog/internal/repositories"
)

// Event types published on the catalog change feed.
const (
	EventProductCreated = "product.created"
	EventProductUpdated = "product.updated"
	EventProductDeleted = "product.deleted"
)

// EventPublisher publishes product change events to the message broker.
type EventPublisher interface {
	PublishProductEvent(event map[string]interface{}) error
}

// ProductService handles business logic related to products.
type ProductService struct {
	repo     repositories.ProductRepository
	events   EventPublisher
	validate *validator.Validate
}

// NewProductService creates a new ProductService. A nil publisher disables
// event publishing.
func NewProductService(repo repositories.ProductRepository, events EventPublisher) *ProductService {
	validate := validator.New()
	// Category fields must hold a label from the closed set.
	_ = validate.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		_, err := models.ParseCategory(fl.Field().String())
		return err == nil
	})
	return &ProductService{
		repo:     repo,
		events:   events,
		validate: validate,
	}
}

// ListProducts retrieves all products.
func (s *ProductService) ListProducts() ([]models.Product, error) {
	return s.repo.All()
}

// GetProduct retrieves a single product by its id, or nil when it does not
// exist.
func (s *ProductService) GetProduct(id uint) (*models.Product, error) {
	return s.repo.Find(id)
}

// FindByName retrieves all products with an exactly matching name.
func (s *ProductService) FindByName(name string) ([]models.Product, error) {
	return s.repo.FindByName(name)
}

// FindByCategory retrieves all products in the given category.
func (s *ProductService) FindByCategory(category models.Category) ([]models.Product, error) {
	return s.repo.FindByCategory(category)
}

// FindByAvailability retrieves all products with the given availability.
func (s *ProductService) FindByAvailability(available bool) ([]models.Product, error) {
	return s.repo.FindByAvailability(available)
}

// FindByPrice retrieves all products matching a textual price. The input
// may carry surrounding whitespace; it is normalized to a decimal before
// the comparison.
func (s *ProductService) FindByPrice(price string) ([]models.Product, error) {
	value, err := models.ParsePrice(price)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByPrice(value)
}

// CreateProduct validates and persists a new product, then publishes a
// product.created event.
func (s *ProductService) CreateProduct(product *models.Product) error {
	if err := s.validate.Struct(product); err != nil {
		return fmt.Errorf("%w: %v", models.ErrDataValidation, err)
	}
	if err := s.repo.Create(product); err != nil {
		return err
	}
	s.publish(EventProductCreated, product)
	return nil
}

// UpdateProduct validates and persists changes to an existing product, then
// publishes a product.updated event.
func (s *ProductService) UpdateProduct(product *models.Product) error {
	if err := s.validate.Struct(product); err != nil {
		return fmt.Errorf("%w: %v", models.ErrDataValidation, err)
	}
	if err := s.repo.Update(product); err != nil {
		return err
	}
	s.publish(EventProductUpdated, product)
	return nil
}

// DeleteProduct removes a product by its id and publishes a product.deleted
// event. Deleting an absent product is a no-op and publishes nothing.
func (s *ProductService) DeleteProduct(id uint) error {
	product, err := s.repo.Find(id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	if product != nil {
		s.publish(EventProductDeleted, product)
	}
	return nil
}

// publish emits a change event on a best-effort basis. Event delivery never
// fails the write that triggered it.
func (s *ProductService) publish(eventType string, product *models.Product) {
	if s.events == nil {
		return
	}
	event := map[string]interface{}{
		"event_id":    uuid.New().String(),
		"type":        eventType,
		"occurred_at": time.Now().UTC().Format(time.RFC3339),
		"product":     product.Serialize(),
	}
	if err := s.events.PublishProductEvent(event); err != nil {
		log.Printf("Failed to publish %s event for %s: %v", eventType, product, err)
	}
}
