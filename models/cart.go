package models

// CartItem is one line of a shopping cart. It holds a full Product value,
// not a reference, so the cart keeps the price and name the shopper saw even
// if the product is edited or deleted before checkout.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"` // always >= 1; a quantity below 1 removes the line
}

// LineTotal returns the snapshot price times the quantity
func (i CartItem) LineTotal() float64 {
	return i.Product.Price * float64(i.Quantity)
}
