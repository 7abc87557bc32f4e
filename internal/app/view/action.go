package view

import (
	"errors"

	"github.com/mrops-br/storefront-api/internal/domain"
)

var ErrUnknownAction = errors.New("unknown action")

// ActionKind names a user action the presentation layer can trigger.
type ActionKind string

const (
	ActionAddToCart         ActionKind = "add_to_cart"
	ActionRemoveFromCart    ActionKind = "remove_from_cart"
	ActionSetCartQuantity   ActionKind = "set_cart_quantity"
	ActionShowProductDetail ActionKind = "show_product_detail"
	ActionHideProductDetail ActionKind = "hide_product_detail"
	ActionCheckout          ActionKind = "checkout"
	ActionSortCatalog       ActionKind = "sort_catalog"
)

// Action is a command record attached to view elements. Only the fields
// relevant to Kind are set.
type Action struct {
	Kind      ActionKind           `json:"kind"`
	ProductID string               `json:"product_id,omitempty"`
	Quantity  int                  `json:"quantity,omitempty"`
	Criterion domain.SortCriterion `json:"criterion,omitempty"`
}

func AddToCart(productID string) Action {
	return Action{Kind: ActionAddToCart, ProductID: productID}
}

func RemoveFromCart(productID string) Action {
	return Action{Kind: ActionRemoveFromCart, ProductID: productID}
}

func SetCartQuantity(productID string, quantity int) Action {
	return Action{Kind: ActionSetCartQuantity, ProductID: productID, Quantity: quantity}
}

func ShowProductDetail(productID string) Action {
	return Action{Kind: ActionShowProductDetail, ProductID: productID}
}

func HideProductDetail() Action {
	return Action{Kind: ActionHideProductDetail}
}

func Checkout() Action {
	return Action{Kind: ActionCheckout}
}

func SortCatalog(criterion domain.SortCriterion) Action {
	return Action{Kind: ActionSortCatalog, Criterion: criterion}
}

// Validate reports whether the action carries what its kind needs.
func (a Action) Validate() error {
	switch a.Kind {
	case ActionAddToCart, ActionRemoveFromCart, ActionSetCartQuantity, ActionShowProductDetail:
		if a.ProductID == "" {
			return domain.ErrInvalidProductID
		}
	case ActionHideProductDetail, ActionCheckout:
	case ActionSortCatalog:
		if _, err := domain.ParseSortCriterion(string(a.Criterion)); err != nil {
			return err
		}
	default:
		return ErrUnknownAction
	}
	return nil
}
