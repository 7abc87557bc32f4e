package dto

import (
	"time"

	"github.com/mrops-br/storefront-api/internal/app/view"
	"github.com/mrops-br/storefront-api/internal/domain"
	"github.com/shopspring/decimal"
)

// DetailState is the product detail panel. View is nil while the panel is hidden.
type DetailState struct {
	Visible bool             `json:"visible"`
	View    *view.DetailView `json:"view,omitempty"`
}

// StateResponse is a snapshot of everything the storefront displays
type StateResponse struct {
	CartCount int                  `json:"cart_count"`
	CartTotal decimal.Decimal      `json:"cart_total"`
	Cart      view.CartView        `json:"cart"`
	Detail    DetailState          `json:"detail"`
	Catalog   view.CatalogView     `json:"catalog"`
	Featured  view.CatalogView     `json:"featured"`
	Sort      domain.SortCriterion `json:"sort"`
}

// CartResponse is the cart panel together with the header counters
type CartResponse struct {
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total"`
	View  view.CartView   `json:"view"`
}

// OrderResponse confirms a simulated checkout. It is not stored anywhere.
type OrderResponse struct {
	Reference string          `json:"reference"`
	ItemCount int             `json:"item_count"`
	Total     decimal.Decimal `json:"total"`
	PlacedAt  time.Time       `json:"placed_at"`
}

// ActionResponse is returned after an action ran. Order is only set by checkout.
type ActionResponse struct {
	State StateResponse  `json:"state"`
	Order *OrderResponse `json:"order,omitempty"`
}

// NotificationResponse represents an active notification
type NotificationResponse struct {
	ID        string          `json:"id"`
	Message   string          `json:"message"`
	Severity  domain.Severity `json:"severity"`
	ExpiresAt time.Time       `json:"expires_at"`
}

// ToNotificationResponseList converts notifications to their response form
func ToNotificationResponseList(ns []domain.Notification) []*NotificationResponse {
	responses := make([]*NotificationResponse, len(ns))
	for i, n := range ns {
		responses[i] = &NotificationResponse{
			ID:        n.ID,
			Message:   n.Message,
			Severity:  n.Severity,
			ExpiresAt: n.ExpiresAt,
		}
	}
	return responses
}
