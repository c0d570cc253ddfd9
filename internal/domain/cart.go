package domain

// LineItem is one product-quantity pairing inside a Cart. JSON field names
// match the persisted snapshot format, so stored carts survive process
// restarts unchanged.
type LineItem struct {
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Cart is the current client's pending purchase set, ordered by first add.
// At most one LineItem exists per product id.
type Cart struct {
	Items []LineItem `json:"items"`
}

// Total returns the sum of unit price times quantity across all lines.
// Recomputed on every call; nothing cached.
func (c Cart) Total() float64 {
	var sum float64
	for _, it := range c.Items {
		sum += it.UnitPrice * float64(it.Quantity)
	}
	return sum
}

// ItemCount returns the sum of quantities across all lines.
func (c Cart) ItemCount() int {
	count := 0
	for _, it := range c.Items {
		count += it.Quantity
	}
	return count
}
