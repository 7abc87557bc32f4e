package page

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/mrops-br/storefront-api/internal/app/dto"
	"github.com/mrops-br/storefront-api/internal/app/view"
	"github.com/mrops-br/storefront-api/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "£79.99", FormatPrice(decimal.RequireFromString("79.99")))
	assert.Equal(t, "£249.00", FormatPrice(decimal.NewFromInt(249)))
	assert.Equal(t, "£0.00", FormatPrice(decimal.Zero))
	assert.Equal(t, "£159.98", FormatPrice(decimal.RequireFromString("79.99").Mul(decimal.NewFromInt(2))))
}

func TestActionForm(t *testing.T) {
	html := render(t, ActionForm(view.SetCartQuantity("p1", 0), "-", "quantity-button"))

	assert.Contains(t, html, `action="/ui/actions"`)
	assert.Contains(t, html, `name="kind" value="set_cart_quantity"`)
	assert.Contains(t, html, `name="product_id" value="p1"`)
	assert.Contains(t, html, `name="quantity" value="0"`)

	html = render(t, ActionForm(view.Checkout(), "Place Order", "button"))
	assert.NotContains(t, html, "product_id")
	assert.NotContains(t, html, "quantity")
}

func TestProductGrid_EscapesText(t *testing.T) {
	catalog := view.RenderCatalog([]domain.Product{{
		ID:          "x1",
		Name:        `<script>alert("hi")</script>`,
		Description: "Fish & Chips",
		Price:       decimal.RequireFromString("5.5"),
		Image:       `https://example.test/x.png" onerror="boom`,
	}})

	html := render(t, ProductGrid("products-grid", catalog))

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.Contains(t, html, "Fish &amp; Chips...")
	assert.NotContains(t, html, `" onerror="`)
	assert.Contains(t, html, "£5.50")
	assert.Contains(t, html, `id="products-grid"`)
}

func TestSortForm_MarksCurrent(t *testing.T) {
	html := render(t, SortForm(domain.SortNameDesc))

	assert.Contains(t, html, `<option value="name-desc" selected>Name: Z to A</option>`)
	assert.Contains(t, html, `<option value="">Featured</option>`)
}

func TestCartPanel(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		html := render(t, CartPanel(view.CartView{Empty: true}))

		assert.Contains(t, html, `<p id="empty-cart-message">Your cart is empty.</p>`)
		assert.NotContains(t, html, "cart-summary")
		assert.NotContains(t, html, "Place Order")
	})

	t.Run("WithLines", func(t *testing.T) {
		cart := view.CartView{
			Lines: []view.CartLine{{
				ProductID: "p1",
				Name:      "Headphones",
				UnitPrice: decimal.RequireFromString("79.99"),
				Quantity:  2,
				LineTotal: decimal.RequireFromString("159.98"),
				Decrement: view.SetCartQuantity("p1", 1),
				Increment: view.SetCartQuantity("p1", 3),
				Remove:    view.RemoveFromCart("p1"),
			}},
			Summary: &view.CartSummary{
				ItemCount: 2,
				Total:     decimal.RequireFromString("159.98"),
				Checkout:  view.Checkout(),
			},
		}

		html := render(t, CartPanel(cart))

		assert.NotContains(t, html, "empty-cart-message")
		assert.Contains(t, html, `<span id="cart-total">£159.98</span>`)
		assert.Contains(t, html, "<span>2</span>")
		assert.Contains(t, html, `name="quantity" value="1"`)
		assert.Contains(t, html, `name="quantity" value="3"`)
		assert.Contains(t, html, `value="remove_from_cart"`)
		assert.Contains(t, html, "Place Order")
	})
}

func TestDetailPanel(t *testing.T) {
	assert.Empty(t, render(t, DetailPanel(dto.DetailState{})))

	missing := view.RenderDetail(nil)
	html := render(t, DetailPanel(dto.DetailState{Visible: true, View: &missing}))
	assert.Contains(t, html, "Product not found.")
	assert.NotContains(t, html, "Add to Cart")
	assert.Contains(t, html, "Back to Products")

	p := domain.Product{ID: "p3", Name: "Chair", Description: "Sit.", Price: decimal.NewFromInt(249), Category: "Home"}
	found := view.RenderDetail(&p)
	html = render(t, DetailPanel(dto.DetailState{Visible: true, View: &found}))
	assert.Contains(t, html, "<h2>Chair</h2>")
	assert.Contains(t, html, "£249.00")
	assert.Contains(t, html, `value="add_to_cart"`)
}

func TestNotifications(t *testing.T) {
	assert.Empty(t, render(t, Notifications(nil)))

	expires := time.Date(2024, 3, 1, 12, 0, 3, 0, time.UTC)
	html := render(t, Notifications([]domain.Notification{
		{ID: "n1", Message: "Item added to cart!", Severity: domain.SeveritySuccess, ExpiresAt: expires},
		{ID: "n2", Message: "Item removed from cart.", Severity: domain.SeverityInfo, ExpiresAt: expires},
	}))

	assert.Contains(t, html, `<div class="alert-message success" data-expires-at="2024-03-01T12:00:03.000Z">Item added to cart!</div>`)
	assert.Contains(t, html, `class="alert-message info"`)
}

func TestStorefront(t *testing.T) {
	state := dto.StateResponse{
		CartCount: 3,
		Cart:      view.CartView{Empty: true},
		Catalog:   view.RenderCatalog([]domain.Product{{ID: "p1", Name: "Headphones", Price: decimal.NewFromInt(10)}}),
		Sort:      domain.SortPriceAsc,
	}

	html := render(t, Storefront(state, nil))

	assert.Contains(t, html, `<span id="cart-count">3</span>`)
	assert.Contains(t, html, `id="featured-products-grid"`)
	assert.Contains(t, html, `id="products-grid"`)
	assert.Contains(t, html, "Headphones")
	assert.Contains(t, html, `<option value="price-asc" selected>`)
	assert.Contains(t, html, "empty-cart-message")
	assert.NotContains(t, html, "product-detail-section")
}
