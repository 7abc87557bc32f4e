// Package page renders the storefront as server-side HTML. Components only
// read view-models; every button posts a typed action back to the server.
package page

//go:generate templ generate

import (
	"github.com/mrops-br/storefront-api/internal/domain"
	"github.com/shopspring/decimal"
)

// ActionPath is where action forms are posted
const ActionPath = "/ui/actions"

const (
	currencySymbol = "£"
	expiryLayout   = "2006-01-02T15:04:05.000Z07:00"
)

var sortOptions = []struct {
	value domain.SortCriterion
	label string
}{
	{domain.SortDefault, "Featured"},
	{domain.SortPriceAsc, "Price: Low to High"},
	{domain.SortPriceDesc, "Price: High to Low"},
	{domain.SortNameAsc, "Name: A to Z"},
	{domain.SortNameDesc, "Name: Z to A"},
}

// FormatPrice renders an amount the way the storefront displays money
func FormatPrice(amount decimal.Decimal) string {
	return currencySymbol + amount.StringFixed(2)
}

func expiresAt(n domain.Notification) string {
	return n.ExpiresAt.UTC().Format(expiryLayout)
}
