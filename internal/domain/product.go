package domain

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidProductID    = errors.New("product id is required")
	ErrInvalidProductName  = errors.New("product name is required")
	ErrInvalidProductPrice = errors.New("product price must not be negative")
	ErrDuplicateProductID  = errors.New("duplicate product id")
)

// Product represents a catalog item. Products are immutable once the catalog is built.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	Image       string
	Category    string
}

// NewProduct creates a new product with validation
func NewProduct(id, name, description string, price decimal.Decimal, image, category string) (Product, error) {
	product := Product{
		ID:          id,
		Name:        name,
		Description: description,
		Price:       price,
		Image:       image,
		Category:    category,
	}

	if err := product.Validate(); err != nil {
		return Product{}, err
	}

	return product, nil
}

// Validate performs business validation on the product
func (p Product) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return ErrInvalidProductID
	}
	if strings.TrimSpace(p.Name) == "" {
		return ErrInvalidProductName
	}
	if p.Price.IsNegative() {
		return ErrInvalidProductPrice
	}
	return nil
}
