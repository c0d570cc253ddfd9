package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"storefront-gateway/internal/domain"
)

// RedisStore keeps per-client snapshots as JSON values. Unlike a cache
// there is no TTL: this is the durable copy, not a read-through layer.
type RedisStore struct {
	client *redis.Client
}

func NewRedis(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Ping reports backend reachability for the readiness probe.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) LoadCart(ctx context.Context, clientID string) ([]domain.LineItem, error) {
	data, err := s.client.Get(ctx, cartKey(clientID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get cart: %w", err)
	}
	var items []domain.LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	return items, nil
}

func (s *RedisStore) SaveCart(ctx context.Context, clientID string, items []domain.LineItem) error {
	if items == nil {
		items = []domain.LineItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.client.Set(ctx, cartKey(clientID), data, 0).Err(); err != nil {
		return fmt.Errorf("redis set cart: %w", err)
	}
	return nil
}

func (s *RedisStore) LoadSession(ctx context.Context, clientID string) (*domain.Session, error) {
	data, err := s.client.Get(ctx, sessionKey(clientID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get session: %w", err)
	}
	var sess domain.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	if !sess.LoggedIn() {
		return nil, domain.ErrNotFound
	}
	return &sess, nil
}

func (s *RedisStore) SaveSession(ctx context.Context, clientID string, sess domain.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey(clientID), data, 0).Err(); err != nil {
		return fmt.Errorf("redis set session: %w", err)
	}
	return nil
}

func (s *RedisStore) ClearSession(ctx context.Context, clientID string) error {
	if err := s.client.Del(ctx, sessionKey(clientID)).Err(); err != nil {
		return fmt.Errorf("redis del session: %w", err)
	}
	return nil
}

func cartKey(clientID string) string {
	return fmt.Sprintf("client:%s:cart", clientID)
}

func sessionKey(clientID string) string {
	return fmt.Sprintf("client:%s:session", clientID)
}
