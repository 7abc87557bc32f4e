package domain

import (
	"errors"
	"strings"
)

var ErrInvalidSortCriterion = errors.New("invalid sort criterion")

// SortCriterion selects the ordering of a catalog listing.
type SortCriterion string

const (
	SortDefault   SortCriterion = ""
	SortPriceAsc  SortCriterion = "price-asc"
	SortPriceDesc SortCriterion = "price-desc"
	SortNameAsc   SortCriterion = "name-asc"
	SortNameDesc  SortCriterion = "name-desc"
)

// ParseSortCriterion accepts the dropdown values of the storefront. An empty
// value or "default" keeps catalog order.
func ParseSortCriterion(s string) (SortCriterion, error) {
	switch c := SortCriterion(strings.ToLower(strings.TrimSpace(s))); c {
	case SortDefault, "default":
		return SortDefault, nil
	case SortPriceAsc, SortPriceDesc, SortNameAsc, SortNameDesc:
		return c, nil
	}
	return SortDefault, ErrInvalidSortCriterion
}
