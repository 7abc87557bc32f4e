package domain

// CartEntry is one (product, quantity) pair in the cart. A retained entry
// always has Quantity >= 1.
type CartEntry struct {
	ProductID string
	Quantity  int
}
