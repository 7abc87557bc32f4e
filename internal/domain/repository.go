package domain

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// ProductLookup resolves product ids against the catalog
type ProductLookup interface {
	FindByID(ctx context.Context, id string) (Product, error)
}

// Catalog defines the read-only contract of the product catalog
type Catalog interface {
	ProductLookup
	FindAll(ctx context.Context) []Product
	SortedBy(ctx context.Context, criterion SortCriterion) ([]Product, error)
	Featured(ctx context.Context, n int) []Product
}

// CartStore defines the contract of the single shopping cart. Every
// operation leaves the cart with unique product ids and quantities >= 1.
type CartStore interface {
	Add(ctx context.Context, productID string)
	Remove(ctx context.Context, productID string) bool
	SetQuantity(ctx context.Context, productID string, quantity int)
	Entries(ctx context.Context) []CartEntry
	TotalItemCount(ctx context.Context) int
	TotalPrice(ctx context.Context) decimal.Decimal
	Clear(ctx context.Context)
}

// Notifier emits transient notifications
type Notifier interface {
	Notify(ctx context.Context, message string, severity Severity) Notification
}
