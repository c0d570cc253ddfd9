package upstream

import (
	"context"
	"net/http"

	"storefront-gateway/internal/domain"
)

// AdminStats fetches the dashboard summary. Admin authorization happens
// upstream; a non-admin token gets a 403 with an upstream message.
func (c *Client) AdminStats(ctx context.Context, token string) (*domain.AdminStats, error) {
	var stats domain.AdminStats
	if err := c.do(ctx, http.MethodGet, "/admin/stats", token, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
