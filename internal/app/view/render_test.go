package view

import (
	"context"
	"strings"
	"testing"

	"github.com/mrops-br/storefront-api/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lookup map[string]domain.Product

func (l lookup) FindByID(_ context.Context, id string) (domain.Product, error) {
	if p, ok := l[id]; ok {
		return p, nil
	}
	return domain.Product{}, domain.ErrProductNotFound
}

func testProduct(id, name, price string) domain.Product {
	return domain.Product{
		ID:          id,
		Name:        name,
		Description: "A product called " + name,
		Price:       decimal.RequireFromString(price),
		Image:       "https://example.test/" + id + ".png",
		Category:    "Electronics",
	}
}

func TestRenderCatalog(t *testing.T) {
	t.Run("OneCardPerProductInOrder", func(t *testing.T) {
		products := []domain.Product{
			testProduct("b", "Bravo", "2.00"),
			testProduct("a", "Alpha", "1.00"),
		}

		v := RenderCatalog(products)

		require.Len(t, v.Cards, 2)
		assert.Equal(t, "b", v.Cards[0].ID)
		assert.Equal(t, "a", v.Cards[1].ID)
		assert.Equal(t, "Bravo", v.Cards[0].Name)
		assert.True(t, v.Cards[0].Price.Equal(decimal.RequireFromString("2")))
		assert.Equal(t, AddToCart("b"), v.Cards[0].AddToCart)
		assert.Equal(t, ShowProductDetail("b"), v.Cards[0].ShowDetail)
	})

	t.Run("Empty", func(t *testing.T) {
		v := RenderCatalog(nil)
		assert.NotNil(t, v.Cards)
		assert.Empty(t, v.Cards)
	})

	t.Run("Deterministic", func(t *testing.T) {
		products := []domain.Product{testProduct("a", "Alpha", "1.00")}
		assert.Equal(t, RenderCatalog(products), RenderCatalog(products))
	})
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        string
	}{
		{name: "Short", description: "Small and light.", want: "Small and light...."},
		{name: "Empty", description: "", want: "..."},
		{name: "ExactlySeventy", description: strings.Repeat("a", 70), want: strings.Repeat("a", 70) + "..."},
		{name: "Truncated", description: strings.Repeat("b", 71), want: strings.Repeat("b", 70) + "..."},
		{name: "Runes", description: strings.Repeat("é", 80), want: strings.Repeat("é", 70) + "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, summarize(tt.description))
		})
	}
}

func TestRenderDetail(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		p := testProduct("p1", "Headphones", "79.99")

		v := RenderDetail(&p)

		assert.False(t, v.NotFound)
		assert.Equal(t, "p1", v.ID)
		assert.Equal(t, "Headphones", v.Name)
		assert.Equal(t, p.Description, v.Description)
		assert.Equal(t, "Electronics", v.Category)
		assert.Equal(t, "79.99", v.Price.StringFixed(2))
		require.NotNil(t, v.AddToCart)
		assert.Equal(t, AddToCart("p1"), *v.AddToCart)
		assert.Equal(t, HideProductDetail(), v.Back)
	})

	t.Run("NotFound", func(t *testing.T) {
		v := RenderDetail(nil)

		assert.True(t, v.NotFound)
		assert.Equal(t, "Product not found.", v.Message)
		assert.Nil(t, v.AddToCart)
		assert.Equal(t, HideProductDetail(), v.Back)
	})
}

func TestRenderCart(t *testing.T) {
	ctx := context.Background()
	catalog := lookup{
		"p1": testProduct("p1", "Headphones", "79.99"),
		"p4": testProduct("p4", "Espresso Maker", "59.50"),
	}

	t.Run("Empty", func(t *testing.T) {
		v := RenderCart(ctx, nil, catalog)

		assert.True(t, v.Empty)
		assert.Empty(t, v.Lines)
		assert.Nil(t, v.Summary)
	})

	t.Run("LinesAndSummary", func(t *testing.T) {
		entries := []domain.CartEntry{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "p4", Quantity: 1},
		}

		v := RenderCart(ctx, entries, catalog)

		assert.False(t, v.Empty)
		require.Len(t, v.Lines, 2)

		first := v.Lines[0]
		assert.Equal(t, "p1", first.ProductID)
		assert.Equal(t, "Headphones", first.Name)
		assert.Equal(t, 2, first.Quantity)
		assert.Equal(t, "79.99", first.UnitPrice.StringFixed(2))
		assert.Equal(t, "159.98", first.LineTotal.StringFixed(2))
		assert.Equal(t, SetCartQuantity("p1", 1), first.Decrement)
		assert.Equal(t, SetCartQuantity("p1", 3), first.Increment)
		assert.Equal(t, RemoveFromCart("p1"), first.Remove)

		require.NotNil(t, v.Summary)
		assert.Equal(t, 3, v.Summary.ItemCount)
		assert.Equal(t, "219.48", v.Summary.Total.StringFixed(2))
		assert.Equal(t, Checkout(), v.Summary.Checkout)
	})

	t.Run("DecrementFromOneSetsZero", func(t *testing.T) {
		v := RenderCart(ctx, []domain.CartEntry{{ProductID: "p4", Quantity: 1}}, catalog)

		require.Len(t, v.Lines, 1)
		assert.Equal(t, SetCartQuantity("p4", 0), v.Lines[0].Decrement)
	})

	t.Run("DanglingEntrySkipped", func(t *testing.T) {
		entries := []domain.CartEntry{
			{ProductID: "gone", Quantity: 4},
			{ProductID: "p4", Quantity: 1},
		}

		v := RenderCart(ctx, entries, catalog)

		require.Len(t, v.Lines, 1)
		assert.Equal(t, "p4", v.Lines[0].ProductID)
		assert.Equal(t, 1, v.Summary.ItemCount)
		assert.Equal(t, "59.50", v.Summary.Total.StringFixed(2))
	})

	t.Run("AllDangling", func(t *testing.T) {
		v := RenderCart(ctx, []domain.CartEntry{{ProductID: "gone", Quantity: 1}}, catalog)

		assert.False(t, v.Empty)
		assert.Empty(t, v.Lines)
		require.NotNil(t, v.Summary)
		assert.Equal(t, 0, v.Summary.ItemCount)
		assert.True(t, v.Summary.Total.IsZero())
	})
}
