package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrDataValidation is returned when product data fails validation, e.g.
// deserializing a malformed payload or updating an unpersisted product.
// Storage-layer errors are not wrapped in it; they propagate as-is.
var ErrDataValidation = errors.New("invalid product data")

// Product represents one catalog item. An ID of 0 means the product has not
// been persisted yet; storage assigns the ID on create and it is immutable
// afterwards.
type Product struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"size:100;not null" validate:"required,max=100"`
	Description string          `json:"description" gorm:"size:250" validate:"max=250"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2)" validate:"-"`
	Available   bool            `json:"available" gorm:"not null"`
	Category    Category        `json:"category" gorm:"size:63;not null;default:UNKNOWN" validate:"required,category"`
}

// TableName returns the table name for Product.
func (Product) TableName() string {
	return "products"
}

// String renders the product for diagnostics.
func (p *Product) String() string {
	return fmt.Sprintf("<Product %s id=[%d]>", p.Name, p.ID)
}

// Serialize returns the product as a JSON-object-shaped map. The price is
// rendered as its canonical decimal string so it survives a round trip, and
// the category as its label.
func (p *Product) Serialize() map[string]interface{} {
	return map[string]interface{}{
		"id":          p.ID,
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price.String(),
		"available":   p.Available,
		"category":    p.Category.String(),
	}
}

// Deserialize populates the product's fields (excluding ID) from a map.
// It fails with ErrDataValidation when data is nil, a required key is
// missing, available is not a boolean, the category label is unknown, or
// the price cannot be parsed. On failure the receiver is left untouched.
// Deserialize never persists anything.
func (p *Product) Deserialize(data map[string]interface{}) error {
	if data == nil {
		return fmt.Errorf("%w: no data provided", ErrDataValidation)
	}

	name, err := stringField(data, "name")
	if err != nil {
		return err
	}
	description, err := stringField(data, "description")
	if err != nil {
		return err
	}

	rawAvailable, ok := data["available"]
	if !ok {
		return fmt.Errorf("%w: missing key %q", ErrDataValidation, "available")
	}
	available, ok := rawAvailable.(bool)
	if !ok {
		return fmt.Errorf("%w: available must be a boolean, got %T", ErrDataValidation, rawAvailable)
	}

	label, err := stringField(data, "category")
	if err != nil {
		return err
	}
	category, err := ParseCategory(label)
	if err != nil {
		return err
	}

	rawPrice, ok := data["price"]
	if !ok {
		return fmt.Errorf("%w: missing key %q", ErrDataValidation, "price")
	}
	price, err := coercePrice(rawPrice)
	if err != nil {
		return err
	}

	p.Name = name
	p.Description = description
	p.Available = available
	p.Category = category
	p.Price = price
	return nil
}

// ParsePrice converts a textual price into a decimal, trimming incidental
// surrounding whitespace first so inputs like "200 " match a stored 200.
func ParsePrice(value string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: invalid price %q", ErrDataValidation, value)
	}
	return price, nil
}

func stringField(data map[string]interface{}, key string) (string, error) {
	raw, ok := data[key]
	if !ok {
		return "", fmt.Errorf("%w: missing key %q", ErrDataValidation, key)
	}
	value, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string, got %T", ErrDataValidation, key, raw)
	}
	return value, nil
}

// coercePrice accepts the price representations that show up in practice:
// the canonical decimal string, JSON numbers, and native numeric types.
func coercePrice(raw interface{}) (decimal.Decimal, error) {
	switch v := raw.(type) {
	case decimal.Decimal:
		return v, nil
	case string:
		return ParsePrice(v)
	case json.Number:
		return ParsePrice(v.String())
	case float64:
		return decimal.NewFromFloat(v), nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	default:
		return decimal.Decimal{}, fmt.Errorf("%w: price must be a number or decimal string, got %T", ErrDataValidation, raw)
	}
}
