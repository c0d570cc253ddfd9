// Package orders submits cart snapshots as orders and fetches history.
// Every call requires an authenticated session token.
package orders

import (
	"context"

	"storefront-gateway/internal/domain"
	"storefront-gateway/internal/upstream"
)

type orderAPI interface {
	CreateOrder(ctx context.Context, token string, items []upstream.OrderLine) (*domain.Order, error)
	ListOrders(ctx context.Context, token string) ([]domain.Order, error)
}

type tokenSource interface {
	Token() string
}

// Client wraps the upstream order endpoints behind the current session.
type Client struct {
	api     orderAPI
	session tokenSource
}

func New(api orderAPI, session tokenSource) *Client {
	return &Client{api: api, session: session}
}

// Submit maps line items to product id and quantity pairs and posts them
// as a new order. Unit prices never leave the gateway; the upstream prices
// the order itself. Refuses to run anonymously.
func (c *Client) Submit(ctx context.Context, items []domain.LineItem) (*domain.Order, error) {
	token := c.session.Token()
	if token == "" {
		return nil, domain.ErrNotAuthenticated
	}
	lines := make([]upstream.OrderLine, 0, len(items))
	for _, it := range items {
		lines = append(lines, upstream.OrderLine{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return c.api.CreateOrder(ctx, token, lines)
}

// History fetches all orders for the current session.
func (c *Client) History(ctx context.Context) ([]domain.Order, error) {
	token := c.session.Token()
	if token == "" {
		return nil, domain.ErrNotAuthenticated
	}
	return c.api.ListOrders(ctx, token)
}
