package memory

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/mrops-br/storefront-api/internal/domain"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Catalog is an in-memory, read-only implementation of domain.Catalog.
// Products keep the order they were given in.
type Catalog struct {
	products []domain.Product
	index    map[string]int
	locale   language.Tag
	tracer   trace.Tracer
	logger   *slog.Logger
}

var _ domain.Catalog = (*Catalog)(nil)

// NewCatalog creates a catalog from the given products. Names are collated
// using locale when sorting.
func NewCatalog(products []domain.Product, locale language.Tag, tracer trace.Tracer, logger *slog.Logger) (*Catalog, error) {
	c := &Catalog{
		products: make([]domain.Product, 0, len(products)),
		index:    make(map[string]int, len(products)),
		locale:   locale,
		tracer:   tracer,
		logger:   logger,
	}

	for _, p := range products {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("product %q: %w", p.ID, err)
		}
		if _, exists := c.index[p.ID]; exists {
			return nil, fmt.Errorf("product %q: %w", p.ID, domain.ErrDuplicateProductID)
		}
		c.index[p.ID] = len(c.products)
		c.products = append(c.products, p)
	}

	return c, nil
}

// FindByID retrieves a product by ID
func (c *Catalog) FindByID(ctx context.Context, id string) (domain.Product, error) {
	ctx, span := c.tracer.Start(ctx, "Catalog.FindByID")
	defer span.End()

	span.SetAttributes(attribute.String("product.id", id))

	i, exists := c.index[id]
	if !exists {
		span.RecordError(domain.ErrProductNotFound)
		span.SetStatus(codes.Error, "Product not found")
		c.logger.WarnContext(ctx, "Product not found",
			slog.String("product_id", id),
		)
		return domain.Product{}, domain.ErrProductNotFound
	}

	span.SetStatus(codes.Ok, "Product found")
	return c.products[i], nil
}

// FindAll returns every product in catalog order
func (c *Catalog) FindAll(ctx context.Context) []domain.Product {
	_, span := c.tracer.Start(ctx, "Catalog.FindAll")
	defer span.End()

	span.SetAttributes(attribute.Int("product.count", len(c.products)))
	return slices.Clone(c.products)
}

// Featured returns the first n products in catalog order
func (c *Catalog) Featured(ctx context.Context, n int) []domain.Product {
	_, span := c.tracer.Start(ctx, "Catalog.Featured")
	defer span.End()

	n = max(0, min(n, len(c.products)))
	span.SetAttributes(attribute.Int("product.count", n))
	return slices.Clone(c.products[:n])
}

// SortedBy returns a sorted copy of the catalog. The sort is stable, so
// products comparing equal keep catalog order.
func (c *Catalog) SortedBy(ctx context.Context, criterion domain.SortCriterion) ([]domain.Product, error) {
	ctx, span := c.tracer.Start(ctx, "Catalog.SortedBy")
	defer span.End()

	span.SetAttributes(attribute.String("catalog.sort", string(criterion)))

	cmp, err := c.comparator(criterion)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Invalid sort criterion")
		c.logger.WarnContext(ctx, "Invalid sort criterion",
			slog.String("criterion", string(criterion)),
		)
		return nil, err
	}

	sorted := slices.Clone(c.products)
	if cmp != nil {
		slices.SortStableFunc(sorted, cmp)
	}

	span.SetStatus(codes.Ok, "Catalog sorted")
	return sorted, nil
}

// comparator returns nil for catalog order. A collator is not safe for
// concurrent use, so each call gets its own.
func (c *Catalog) comparator(criterion domain.SortCriterion) (func(a, b domain.Product) int, error) {
	switch criterion {
	case domain.SortDefault:
		return nil, nil
	case domain.SortPriceAsc:
		return func(a, b domain.Product) int { return a.Price.Cmp(b.Price) }, nil
	case domain.SortPriceDesc:
		return func(a, b domain.Product) int { return b.Price.Cmp(a.Price) }, nil
	case domain.SortNameAsc:
		col := collate.New(c.locale)
		return func(a, b domain.Product) int { return col.CompareString(a.Name, b.Name) }, nil
	case domain.SortNameDesc:
		col := collate.New(c.locale)
		return func(a, b domain.Product) int { return -col.CompareString(a.Name, b.Name) }, nil
	}
	return nil, domain.ErrInvalidSortCriterion
}
