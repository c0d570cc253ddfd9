package domain

// Product is upstream-owned catalog data. The gateway never mutates it
// outside the admin passthrough, and carts reference products by id only,
// so a cached product may go stale without invalidating any cart.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
	Stock       int     `json:"stock"`
	Category    string  `json:"category"`
}
