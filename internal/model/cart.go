package model

// CartItem pairs a product with a quantity. A cart holds at most one item
// per distinct product id; repeated adds merge into the existing entry.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// LineTotal returns the base-currency total for this cart line.
func (i CartItem) LineTotal() float64 {
	return i.Product.Price * float64(i.Quantity)
}
