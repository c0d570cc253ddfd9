package upstream

import (
	"context"
	"net/http"

	"storefront-gateway/internal/domain"
)

// OrderLine is the only thing the gateway sends when creating an order:
// product id and quantity. Prices are deliberately omitted so the upstream
// prices every order authoritatively.
type OrderLine struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

type createOrderRequest struct {
	Items []OrderLine `json:"items"`
}

type orderEnvelope struct {
	Message string       `json:"message"`
	Order   domain.Order `json:"order"`
}

// CreateOrder posts a new order for the token's account.
func (c *Client) CreateOrder(ctx context.Context, token string, items []OrderLine) (*domain.Order, error) {
	var env orderEnvelope
	if err := c.do(ctx, http.MethodPost, "/orders", token, createOrderRequest{Items: items}, &env); err != nil {
		return nil, err
	}
	return &env.Order, nil
}

// ListOrders fetches the token's order history.
func (c *Client) ListOrders(ctx context.Context, token string) ([]domain.Order, error) {
	var orders []domain.Order
	if err := c.do(ctx, http.MethodGet, "/orders", token, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
