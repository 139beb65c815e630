package models

// CartItem is a product snapshot paired with a quantity. The cart holds at
// most one CartItem per product id.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

func (i CartItem) SubtotalCents() int64 {
	return i.PriceCents * int64(i.Quantity)
}
