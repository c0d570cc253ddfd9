package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"storefront-gateway/internal/domain"
)

// ListProducts fetches the catalog, optionally filtered by category.
func (c *Client) ListProducts(ctx context.Context, category string) ([]domain.Product, error) {
	path := "/products"
	if category != "" {
		path += "?category=" + url.QueryEscape(category)
	}
	var products []domain.Product
	if err := c.do(ctx, http.MethodGet, path, "", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct fetches a single product by id.
func (c *Client) GetProduct(ctx context.Context, id int) (*domain.Product, error) {
	var p domain.Product
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), "", nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ProductInput carries the admin-editable product fields.
type ProductInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url,omitempty"`
	Stock       int     `json:"stock"`
	Category    string  `json:"category,omitempty"`
}

type productEnvelope struct {
	Message string         `json:"message"`
	Product domain.Product `json:"product"`
}

// CreateProduct adds a catalog entry. The upstream authorizes admin access;
// the token alone decides.
func (c *Client) CreateProduct(ctx context.Context, token string, in ProductInput) (*domain.Product, error) {
	var env productEnvelope
	if err := c.do(ctx, http.MethodPost, "/products", token, in, &env); err != nil {
		return nil, err
	}
	return &env.Product, nil
}

// UpdateProduct edits an existing catalog entry.
func (c *Client) UpdateProduct(ctx context.Context, token string, id int, in ProductInput) (*domain.Product, error) {
	var env productEnvelope
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/products/%d", id), token, in, &env); err != nil {
		return nil, err
	}
	return &env.Product, nil
}

// DeleteProduct removes a catalog entry.
func (c *Client) DeleteProduct(ctx context.Context, token string, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/products/%d", id), token, nil, nil)
}
