// Package store persists each storefront client's cart and session as
// serialized snapshots, the durable equivalent of the browser's local
// storage. Snapshots are written in full after every mutation and
// rehydrated on first touch.
package store

import (
	"context"

	"storefront-gateway/internal/domain"
)

// Store is the persistent snapshot adapter. A missing snapshot is reported
// as domain.ErrNotFound; callers treat it as empty state.
type Store interface {
	LoadCart(ctx context.Context, clientID string) ([]domain.LineItem, error)
	SaveCart(ctx context.Context, clientID string, items []domain.LineItem) error
	LoadSession(ctx context.Context, clientID string) (*domain.Session, error)
	SaveSession(ctx context.Context, clientID string, s domain.Session) error
	ClearSession(ctx context.Context, clientID string) error
}

// snapshot is the on-disk/on-wire document for one client. Field names
// mirror the browser storage keys the format descends from.
type snapshot struct {
	AccessToken string            `json:"access_token,omitempty"`
	User        *domain.User      `json:"user,omitempty"`
	Cart        []domain.LineItem `json:"cart"`
}
