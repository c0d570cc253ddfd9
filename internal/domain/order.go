package domain

// OrderItem is one priced line inside a created Order. Price is the unit
// price the upstream charged, not whatever the cart believed.
type OrderItem struct {
	ID          int     `json:"id"`
	ProductID   int     `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// Order is created and owned by the upstream shopping API.
type Order struct {
	ID          int         `json:"id"`
	UserID      int         `json:"user_id"`
	TotalAmount float64     `json:"total_amount"`
	Status      string      `json:"status"`
	CreatedAt   string      `json:"created_at"`
	Items       []OrderItem `json:"items"`
}

// AdminStats is the upstream dashboard summary, admin-only.
type AdminStats struct {
	TotalUsers   int     `json:"total_users"`
	TotalOrders  int     `json:"total_orders"`
	TotalRevenue float64 `json:"total_revenue"`
}
