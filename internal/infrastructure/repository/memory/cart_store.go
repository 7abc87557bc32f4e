package memory

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/mrops-br/storefront-api/internal/domain"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// CartStore is the in-memory implementation of domain.CartStore. Entries are
// kept in insertion order.
type CartStore struct {
	mu      sync.RWMutex
	entries []domain.CartEntry
	catalog domain.ProductLookup
	tracer  trace.Tracer
	logger  *slog.Logger
}

var _ domain.CartStore = (*CartStore)(nil)

// NewCartStore creates an empty cart priced against catalog
func NewCartStore(catalog domain.ProductLookup, tracer trace.Tracer, logger *slog.Logger) *CartStore {
	return &CartStore{
		catalog: catalog,
		tracer:  tracer,
		logger:  logger,
	}
}

// Add increments the quantity of productID, appending a new entry with
// quantity 1 when the product is not in the cart yet.
func (s *CartStore) Add(ctx context.Context, productID string) {
	ctx, span := s.tracer.Start(ctx, "CartStore.Add")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	quantity := 1
	if i := s.indexOf(productID); i >= 0 {
		s.entries[i].Quantity++
		quantity = s.entries[i].Quantity
	} else {
		s.entries = append(s.entries, domain.CartEntry{ProductID: productID, Quantity: 1})
	}

	span.SetAttributes(
		attribute.String("product.id", productID),
		attribute.Int("cart.entry.quantity", quantity),
	)
	s.logger.DebugContext(ctx, "Cart entry added",
		slog.String("product_id", productID),
		slog.Int("quantity", quantity),
	)
}

// Remove deletes the entry for productID and reports whether there was one.
// Removing an absent product is a no-op.
func (s *CartStore) Remove(ctx context.Context, productID string) bool {
	ctx, span := s.tracer.Start(ctx, "CartStore.Remove")
	defer span.End()

	span.SetAttributes(attribute.String("product.id", productID))

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.remove(ctx, productID)
}

// SetQuantity sets the quantity of an existing entry. A quantity <= 0 removes
// the entry; an absent product is left absent.
func (s *CartStore) SetQuantity(ctx context.Context, productID string, quantity int) {
	ctx, span := s.tracer.Start(ctx, "CartStore.SetQuantity")
	defer span.End()

	span.SetAttributes(
		attribute.String("product.id", productID),
		attribute.Int("cart.entry.quantity", quantity),
	)

	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.remove(ctx, productID)
		return
	}

	i := s.indexOf(productID)
	if i < 0 {
		s.logger.DebugContext(ctx, "Quantity update ignored, product not in cart",
			slog.String("product_id", productID),
		)
		return
	}
	s.entries[i].Quantity = quantity
}

// Entries returns a copy of the cart entries in cart order
func (s *CartStore) Entries(ctx context.Context) []domain.CartEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.entries)
}

// TotalItemCount returns the sum of all entry quantities
func (s *CartStore) TotalItemCount(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, e := range s.entries {
		total += e.Quantity
	}
	return total
}

// TotalPrice sums quantity * price over the cart. Entries whose product is
// no longer in the catalog contribute nothing.
func (s *CartStore) TotalPrice(ctx context.Context) decimal.Decimal {
	ctx, span := s.tracer.Start(ctx, "CartStore.TotalPrice")
	defer span.End()

	entries := s.Entries(ctx)

	total := decimal.Zero
	for _, e := range entries {
		p, err := s.catalog.FindByID(ctx, e.ProductID)
		if err != nil {
			continue
		}
		total = total.Add(p.Price.Mul(decimal.NewFromInt(int64(e.Quantity))))
	}

	span.SetAttributes(attribute.String("cart.total", total.StringFixed(2)))
	return total
}

// Clear removes every entry in one step
func (s *CartStore) Clear(ctx context.Context) {
	ctx, span := s.tracer.Start(ctx, "CartStore.Clear")
	defer span.End()

	s.mu.Lock()
	n := len(s.entries)
	s.entries = nil
	s.mu.Unlock()

	span.SetAttributes(attribute.Int("cart.entries.cleared", n))
	s.logger.InfoContext(ctx, "Cart cleared",
		slog.Int("entries", n),
	)
}

// remove must be called with s.mu held
func (s *CartStore) remove(ctx context.Context, productID string) bool {
	i := s.indexOf(productID)
	if i < 0 {
		return false
	}
	s.entries = slices.Delete(s.entries, i, i+1)
	s.logger.DebugContext(ctx, "Cart entry removed",
		slog.String("product_id", productID),
	)
	return true
}

func (s *CartStore) indexOf(productID string) int {
	return slices.IndexFunc(s.entries, func(e domain.CartEntry) bool {
		return e.ProductID == productID
	})
}
