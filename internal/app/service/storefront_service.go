package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mrops-br/storefront-api/internal/app/dto"
	"github.com/mrops-br/storefront-api/internal/app/view"
	"github.com/mrops-br/storefront-api/internal/domain"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const (
	msgItemAdded   = "Item added to cart!"
	msgItemRemoved = "Item removed from cart."
	msgOrderPlaced = "Order placed successfully! Thank you for your purchase."

	DefaultFeaturedCount = 4
)

// StorefrontService runs user actions against the cart and catalog. Actions
// are serialized: each mutation and the projection that follows it run to
// completion before the next action starts.
type StorefrontService struct {
	mu            sync.Mutex
	catalog       domain.Catalog
	cart          domain.CartStore
	notifier      domain.Notifier
	featuredCount int
	now           func() time.Time

	sort          domain.SortCriterion
	detailVisible bool
	detailID      string

	tracer         trace.Tracer
	logger         *slog.Logger
	cartOperations metric.Int64Counter
	ordersPlaced   metric.Int64Counter
}

// NewStorefrontService creates a new storefront service
func NewStorefrontService(
	catalog domain.Catalog,
	cart domain.CartStore,
	notifier domain.Notifier,
	featuredCount int,
	tracer trace.Tracer,
	meter metric.Meter,
	logger *slog.Logger,
) *StorefrontService {
	// Initialize metrics
	cartOperations, _ := meter.Int64Counter(
		"cart.operations",
		metric.WithDescription("Total number of cart operations"),
	)

	ordersPlaced, _ := meter.Int64Counter(
		"orders.placed.total",
		metric.WithDescription("Total number of simulated orders placed"),
	)

	if featuredCount <= 0 {
		featuredCount = DefaultFeaturedCount
	}

	return &StorefrontService{
		catalog:        catalog,
		cart:           cart,
		notifier:       notifier,
		featuredCount:  featuredCount,
		now:            time.Now,
		tracer:         tracer,
		logger:         logger,
		cartOperations: cartOperations,
		ordersPlaced:   ordersPlaced,
	}
}

// AddToCart adds one unit of productID to the cart
func (s *StorefrontService) AddToCart(ctx context.Context, productID string) dto.StateResponse {
	ctx, span := s.tracer.Start(ctx, "StorefrontService.AddToCart")
	defer span.End()

	span.SetAttributes(attribute.String("product.id", productID))

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.Add(ctx, productID)
	s.recordCartOperation(ctx, "add")

	s.logger.InfoContext(ctx, "Product added to cart",
		slog.String("product_id", productID),
	)

	state := s.snapshot(ctx)
	s.notifier.Notify(ctx, msgItemAdded, domain.SeveritySuccess)

	span.SetStatus(codes.Ok, "Product added to cart")
	return state
}

// RemoveFromCart removes productID from the cart
func (s *StorefrontService) RemoveFromCart(ctx context.Context, productID string) dto.StateResponse {
	ctx, span := s.tracer.Start(ctx, "StorefrontService.RemoveFromCart")
	defer span.End()

	span.SetAttributes(attribute.String("product.id", productID))

	s.mu.Lock()
	defer s.mu.Unlock()

	s.removeFromCart(ctx, productID)
	state := s.snapshot(ctx)
	s.notifier.Notify(ctx, msgItemRemoved, domain.SeverityInfo)

	span.SetStatus(codes.Ok, "Product removed from cart")
	return state
}

// SetCartQuantity sets the quantity of a product already in the cart. A
// quantity <= 0 removes the product; nothing happens, and nothing is
// notified, when the product is not in the cart.
func (s *StorefrontService) SetCartQuantity(ctx context.Context, productID string, quantity int) dto.StateResponse {
	ctx, span := s.tracer.Start(ctx, "StorefrontService.SetCartQuantity")
	defer span.End()

	span.SetAttributes(
		attribute.String("product.id", productID),
		attribute.Int("cart.entry.quantity", quantity),
	)

	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		removed := s.removeFromCart(ctx, productID)
		state := s.snapshot(ctx)
		if removed {
			s.notifier.Notify(ctx, msgItemRemoved, domain.SeverityInfo)
		}
		return state
	}

	s.cart.SetQuantity(ctx, productID, quantity)
	s.recordCartOperation(ctx, "set_quantity")

	s.logger.InfoContext(ctx, "Cart quantity updated",
		slog.String("product_id", productID),
		slog.Int("quantity", quantity),
	)

	span.SetStatus(codes.Ok, "Cart quantity updated")
	return s.snapshot(ctx)
}

// ShowProductDetail opens the detail panel for productID. Unknown products
// open the panel with a not found placeholder.
func (s *StorefrontService) ShowProductDetail(ctx context.Context, productID string) dto.StateResponse {
	ctx, span := s.tracer.Start(ctx, "StorefrontService.ShowProductDetail")
	defer span.End()

	span.SetAttributes(attribute.String("product.id", productID))

	s.mu.Lock()
	defer s.mu.Unlock()

	s.detailVisible = true
	s.detailID = productID

	return s.snapshot(ctx)
}

// HideProductDetail closes the detail panel
func (s *StorefrontService) HideProductDetail(ctx context.Context) dto.StateResponse {
	ctx, span := s.tracer.Start(ctx, "StorefrontService.HideProductDetail")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.detailVisible = false
	s.detailID = ""

	return s.snapshot(ctx)
}

// SortCatalog changes the order of the catalog listing
func (s *StorefrontService) SortCatalog(ctx context.Context, criterion domain.SortCriterion) (dto.StateResponse, error) {
	ctx, span := s.tracer.Start(ctx, "StorefrontService.SortCatalog")
	defer span.End()

	span.SetAttributes(attribute.String("catalog.sort", string(criterion)))

	criterion, err := domain.ParseSortCriterion(string(criterion))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Invalid sort criterion")
		return dto.StateResponse{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sort = criterion
	s.logger.InfoContext(ctx, "Catalog sort changed",
		slog.String("criterion", string(criterion)),
	)

	return s.snapshot(ctx), nil
}

// Checkout simulates placing an order: the cart is cleared in one step and
// only a confirmation is returned.
func (s *StorefrontService) Checkout(ctx context.Context) dto.ActionResponse {
	ctx, span := s.tracer.Start(ctx, "StorefrontService.Checkout")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	order := &dto.OrderResponse{
		Reference: uuid.NewString(),
		ItemCount: s.cart.TotalItemCount(ctx),
		Total:     s.cart.TotalPrice(ctx),
		PlacedAt:  s.now(),
	}

	span.SetAttributes(
		attribute.String("order.reference", order.Reference),
		attribute.Int("order.item_count", order.ItemCount),
		attribute.String("order.total", order.Total.StringFixed(2)),
	)

	s.notifier.Notify(ctx, msgOrderPlaced, domain.SeveritySuccess)
	s.cart.Clear(ctx)
	s.detailVisible = false
	s.detailID = ""

	s.ordersPlaced.Add(ctx, 1)
	s.recordCartOperation(ctx, "checkout")

	s.logger.InfoContext(ctx, "Order placed",
		slog.String("order_reference", order.Reference),
		slog.Int("item_count", order.ItemCount),
		slog.String("total", order.Total.StringFixed(2)),
	)

	span.SetStatus(codes.Ok, "Order placed")
	return dto.ActionResponse{State: s.snapshot(ctx), Order: order}
}

// Dispatch runs a typed action through the matching entry point
func (s *StorefrontService) Dispatch(ctx context.Context, action view.Action) (dto.ActionResponse, error) {
	if err := action.Validate(); err != nil {
		s.logger.WarnContext(ctx, "Rejected action",
			slog.String("kind", string(action.Kind)),
			slog.String("error", err.Error()),
		)
		return dto.ActionResponse{}, err
	}

	switch action.Kind {
	case view.ActionAddToCart:
		return dto.ActionResponse{State: s.AddToCart(ctx, action.ProductID)}, nil
	case view.ActionRemoveFromCart:
		return dto.ActionResponse{State: s.RemoveFromCart(ctx, action.ProductID)}, nil
	case view.ActionSetCartQuantity:
		return dto.ActionResponse{State: s.SetCartQuantity(ctx, action.ProductID, action.Quantity)}, nil
	case view.ActionShowProductDetail:
		return dto.ActionResponse{State: s.ShowProductDetail(ctx, action.ProductID)}, nil
	case view.ActionHideProductDetail:
		return dto.ActionResponse{State: s.HideProductDetail(ctx)}, nil
	case view.ActionCheckout:
		return s.Checkout(ctx), nil
	case view.ActionSortCatalog:
		state, err := s.SortCatalog(ctx, action.Criterion)
		if err != nil {
			return dto.ActionResponse{}, err
		}
		return dto.ActionResponse{State: state}, nil
	}
	return dto.ActionResponse{}, view.ErrUnknownAction
}

// State returns the current snapshot without changing anything
func (s *StorefrontService) State(ctx context.Context) dto.StateResponse {
	ctx, span := s.tracer.Start(ctx, "StorefrontService.State")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshot(ctx)
}

// Cart returns the cart panel with its counters
func (s *StorefrontService) Cart(ctx context.Context) dto.CartResponse {
	ctx, span := s.tracer.Start(ctx, "StorefrontService.Cart")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	return dto.CartResponse{
		Count: s.cart.TotalItemCount(ctx),
		Total: s.cart.TotalPrice(ctx),
		View:  view.RenderCart(ctx, s.cart.Entries(ctx), s.catalog),
	}
}

// Catalog renders the catalog in the given order without storing it
func (s *StorefrontService) Catalog(ctx context.Context, criterion domain.SortCriterion) (view.CatalogView, error) {
	ctx, span := s.tracer.Start(ctx, "StorefrontService.Catalog")
	defer span.End()

	products, err := s.catalog.SortedBy(ctx, criterion)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to sort catalog")
		return view.CatalogView{}, err
	}

	span.SetAttributes(attribute.Int("product.count", len(products)))
	return view.RenderCatalog(products), nil
}

// GetProductByID retrieves a product by ID
func (s *StorefrontService) GetProductByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	ctx, span := s.tracer.Start(ctx, "StorefrontService.GetProductByID")
	defer span.End()

	span.SetAttributes(attribute.String("product.id", id))

	product, err := s.catalog.FindByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Product not found")
		return nil, err
	}

	span.SetStatus(codes.Ok, "Product retrieved successfully")
	return dto.ToProductResponse(product), nil
}

// removeFromCart must be called with s.mu held. It reports whether the
// product was in the cart.
func (s *StorefrontService) removeFromCart(ctx context.Context, productID string) bool {
	if !s.cart.Remove(ctx, productID) {
		s.logger.DebugContext(ctx, "Product not in cart",
			slog.String("product_id", productID),
		)
		return false
	}
	s.recordCartOperation(ctx, "remove")

	s.logger.InfoContext(ctx, "Product removed from cart",
		slog.String("product_id", productID),
	)
	return true
}

// snapshot must be called with s.mu held
func (s *StorefrontService) snapshot(ctx context.Context) dto.StateResponse {
	products, err := s.catalog.SortedBy(ctx, s.sort)
	if err != nil {
		products = s.catalog.FindAll(ctx)
	}

	state := dto.StateResponse{
		CartCount: s.cart.TotalItemCount(ctx),
		CartTotal: s.cart.TotalPrice(ctx),
		Cart:      view.RenderCart(ctx, s.cart.Entries(ctx), s.catalog),
		Catalog:   view.RenderCatalog(products),
		Featured:  view.RenderCatalog(s.catalog.Featured(ctx, s.featuredCount)),
		Sort:      s.sort,
	}

	if s.detailVisible {
		var detail view.DetailView
		if p, err := s.catalog.FindByID(ctx, s.detailID); err == nil {
			detail = view.RenderDetail(&p)
		} else {
			detail = view.RenderDetail(nil)
		}
		state.Detail = dto.DetailState{Visible: true, View: &detail}
	}

	return state
}

func (s *StorefrontService) recordCartOperation(ctx context.Context, operation string) {
	s.cartOperations.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("operation", operation),
			attribute.String("result", "success"),
		),
	)
}
