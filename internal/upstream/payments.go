package upstream

import (
	"context"
	"net/http"

	"storefront-gateway/internal/domain"
)

// PaymentInput references a created order. CardNumber must already be
// reduced to the last four digits; the full number never leaves the
// checkout orchestrator.
type PaymentInput struct {
	OrderID    int     `json:"order_id"`
	Amount     float64 `json:"amount"`
	CardNumber string  `json:"card_number"`
	CardName   string  `json:"card_name"`
}

// ProcessPayment settles an order and returns its updated state.
func (c *Client) ProcessPayment(ctx context.Context, token string, in PaymentInput) (*domain.Order, error) {
	var env orderEnvelope
	if err := c.do(ctx, http.MethodPost, "/payments/process", token, in, &env); err != nil {
		return nil, err
	}
	return &env.Order, nil
}
