package dto

import (
	"errors"

	"github.com/mrops-br/storefront-api/internal/app/view"
	"github.com/mrops-br/storefront-api/internal/domain"
)

var ErrQuantityRequired = errors.New("quantity is required")

// ActionRequest represents a dispatched user action
type ActionRequest struct {
	Kind      string `json:"kind"`
	ProductID string `json:"product_id"`
	Quantity  *int   `json:"quantity"`
	Criterion string `json:"criterion"`
}

// ToAction converts the request to a validated view.Action
func (r *ActionRequest) ToAction() (view.Action, error) {
	a := view.Action{
		Kind:      view.ActionKind(r.Kind),
		ProductID: r.ProductID,
	}

	if a.Kind == view.ActionSetCartQuantity {
		if r.Quantity == nil {
			return view.Action{}, ErrQuantityRequired
		}
		a.Quantity = *r.Quantity
	}

	if a.Kind == view.ActionSortCatalog {
		c, err := domain.ParseSortCriterion(r.Criterion)
		if err != nil {
			return view.Action{}, err
		}
		a.Criterion = c
	}

	if err := a.Validate(); err != nil {
		return view.Action{}, err
	}
	return a, nil
}

// SetQuantityRequest represents the request to change a cart entry quantity
type SetQuantityRequest struct {
	Quantity *int `json:"quantity"`
}

// SortRequest represents the request to change the catalog ordering
type SortRequest struct {
	Criterion string `json:"criterion"`
}
