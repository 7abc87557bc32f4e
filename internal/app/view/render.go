// Package view projects catalog and cart state into view-models. Every
// function here is pure: the same inputs always produce the same output and
// nothing is retained between calls.
package view

import (
	"context"

	"github.com/mrops-br/storefront-api/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	summaryLength   = 70
	notFoundMessage = "Product not found."
)

// ProductCard is one entry of a product grid.
type ProductCard struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Summary    string          `json:"summary"`
	Price      decimal.Decimal `json:"price"`
	Image      string          `json:"image"`
	AddToCart  Action          `json:"add_to_cart"`
	ShowDetail Action          `json:"show_detail"`
}

type CatalogView struct {
	Cards []ProductCard `json:"cards"`
}

// DetailView is the product detail panel. When NotFound is set only Message
// is meaningful.
type DetailView struct {
	NotFound    bool            `json:"not_found"`
	Message     string          `json:"message,omitempty"`
	ID          string          `json:"id,omitempty"`
	Name        string          `json:"name,omitempty"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category,omitempty"`
	Image       string          `json:"image,omitempty"`
	AddToCart   *Action         `json:"add_to_cart,omitempty"`
	Back        Action          `json:"back"`
}

type CartLine struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Image     string          `json:"image"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
	Decrement Action          `json:"decrement"`
	Increment Action          `json:"increment"`
	Remove    Action          `json:"remove"`
}

type CartSummary struct {
	ItemCount int             `json:"item_count"`
	Total     decimal.Decimal `json:"total"`
	Checkout  Action          `json:"checkout"`
}

// CartView is the cart panel. An empty cart has no lines and no summary.
type CartView struct {
	Empty   bool         `json:"empty"`
	Lines   []CartLine   `json:"lines"`
	Summary *CartSummary `json:"summary,omitempty"`
}

// RenderCatalog renders one card per product, in the given order.
func RenderCatalog(products []domain.Product) CatalogView {
	cards := make([]ProductCard, 0, len(products))
	for _, p := range products {
		cards = append(cards, ProductCard{
			ID:         p.ID,
			Name:       p.Name,
			Summary:    summarize(p.Description),
			Price:      p.Price,
			Image:      p.Image,
			AddToCart:  AddToCart(p.ID),
			ShowDetail: ShowProductDetail(p.ID),
		})
	}
	return CatalogView{Cards: cards}
}

// RenderDetail renders the detail panel. A nil product renders the not
// found placeholder.
func RenderDetail(p *domain.Product) DetailView {
	if p == nil {
		return DetailView{
			NotFound: true,
			Message:  notFoundMessage,
			Back:     HideProductDetail(),
		}
	}

	add := AddToCart(p.ID)
	return DetailView{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Image:       p.Image,
		AddToCart:   &add,
		Back:        HideProductDetail(),
	}
}

// RenderCart renders the cart entries priced against catalog. Entries whose
// product cannot be resolved are left out of the lines and the total.
func RenderCart(ctx context.Context, entries []domain.CartEntry, catalog domain.ProductLookup) CartView {
	if len(entries) == 0 {
		return CartView{Empty: true, Lines: []CartLine{}}
	}

	lines := make([]CartLine, 0, len(entries))
	total := decimal.Zero
	count := 0
	for _, e := range entries {
		p, err := catalog.FindByID(ctx, e.ProductID)
		if err != nil {
			continue
		}
		lineTotal := p.Price.Mul(decimal.NewFromInt(int64(e.Quantity)))
		total = total.Add(lineTotal)
		count += e.Quantity
		lines = append(lines, CartLine{
			ProductID: p.ID,
			Name:      p.Name,
			Image:     p.Image,
			UnitPrice: p.Price,
			Quantity:  e.Quantity,
			LineTotal: lineTotal,
			Decrement: SetCartQuantity(p.ID, e.Quantity-1),
			Increment: SetCartQuantity(p.ID, e.Quantity+1),
			Remove:    RemoveFromCart(p.ID),
		})
	}

	return CartView{
		Lines: lines,
		Summary: &CartSummary{
			ItemCount: count,
			Total:     total,
			Checkout:  Checkout(),
		},
	}
}

func summarize(description string) string {
	r := []rune(description)
	if len(r) > summaryLength {
		r = r[:summaryLength]
	}
	return string(r) + "..."
}
