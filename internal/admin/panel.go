// Package admin is the storefront's admin panel passthrough. The local
// Admin check gates the UI only; the upstream re-authorizes every call
// from the token, so a forged flag buys nothing but a 403.
package admin

import (
	"context"

	"storefront-gateway/internal/domain"
	"storefront-gateway/internal/upstream"
)

type adminAPI interface {
	AdminStats(ctx context.Context, token string) (*domain.AdminStats, error)
	CreateProduct(ctx context.Context, token string, in upstream.ProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, token string, id int, in upstream.ProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, token string, id int) error
}

type sessionState interface {
	Admin() bool
	Token() string
}

// Panel wraps the admin endpoints behind the advisory gate.
type Panel struct {
	api     adminAPI
	session sessionState
}

func New(api adminAPI, session sessionState) *Panel {
	return &Panel{api: api, session: session}
}

func (p *Panel) gate() error {
	if !p.session.Admin() {
		return domain.ErrForbidden
	}
	return nil
}

// Stats fetches the dashboard numbers.
func (p *Panel) Stats(ctx context.Context) (*domain.AdminStats, error) {
	if err := p.gate(); err != nil {
		return nil, err
	}
	return p.api.AdminStats(ctx, p.session.Token())
}

// CreateProduct adds a catalog entry.
func (p *Panel) CreateProduct(ctx context.Context, in upstream.ProductInput) (*domain.Product, error) {
	if err := p.gate(); err != nil {
		return nil, err
	}
	return p.api.CreateProduct(ctx, p.session.Token(), in)
}

// UpdateProduct edits a catalog entry.
func (p *Panel) UpdateProduct(ctx context.Context, id int, in upstream.ProductInput) (*domain.Product, error) {
	if err := p.gate(); err != nil {
		return nil, err
	}
	return p.api.UpdateProduct(ctx, p.session.Token(), id, in)
}

// DeleteProduct removes a catalog entry.
func (p *Panel) DeleteProduct(ctx context.Context, id int) error {
	if err := p.gate(); err != nil {
		return err
	}
	return p.api.DeleteProduct(ctx, p.session.Token(), id)
}
