package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"storefront-gateway/internal/domain"
)

// PostgresStore keeps one client_state row per client, with the cart and
// user serialized as jsonb. Schema lives in internal/migrate.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Ping reports backend reachability for the readiness probe.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *PostgresStore) LoadCart(ctx context.Context, clientID string) ([]domain.LineItem, error) {
	const q = `
SELECT cart
FROM client_state
WHERE client_id = $1
`
	var raw []byte
	if err := s.pool.QueryRow(ctx, q, clientID).Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	var items []domain.LineItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	return items, nil
}

func (s *PostgresStore) SaveCart(ctx context.Context, clientID string, items []domain.LineItem) error {
	if items == nil {
		items = []domain.LineItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	const q = `
INSERT INTO client_state (client_id, cart, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (client_id) DO UPDATE SET cart = EXCLUDED.cart, updated_at = now()
`
	_, err = s.pool.Exec(ctx, q, clientID, raw)
	return err
}

func (s *PostgresStore) LoadSession(ctx context.Context, clientID string) (*domain.Session, error) {
	const q = `
SELECT access_token, user_data
FROM client_state
WHERE client_id = $1
`
	var token string
	var userRaw []byte
	if err := s.pool.QueryRow(ctx, q, clientID).Scan(&token, &userRaw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if token == "" || len(userRaw) == 0 {
		return nil, domain.ErrNotFound
	}
	var user domain.User
	if err := json.Unmarshal(userRaw, &user); err != nil {
		return nil, fmt.Errorf("decode user: %w", err)
	}
	return &domain.Session{Token: token, User: &user}, nil
}

func (s *PostgresStore) SaveSession(ctx context.Context, clientID string, sess domain.Session) error {
	userRaw, err := json.Marshal(sess.User)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	const q = `
INSERT INTO client_state (client_id, access_token, user_data, updated_at)
VALUES ($1, $2, $3, now())
ON CONFLICT (client_id) DO UPDATE SET access_token = EXCLUDED.access_token, user_data = EXCLUDED.user_data, updated_at = now()
`
	_, err = s.pool.Exec(ctx, q, clientID, sess.Token, userRaw)
	return err
}

func (s *PostgresStore) ClearSession(ctx context.Context, clientID string) error {
	const q = `
UPDATE client_state
SET access_token = '', user_data = NULL, updated_at = now()
WHERE client_id = $1
`
	_, err := s.pool.Exec(ctx, q, clientID)
	return err
}
