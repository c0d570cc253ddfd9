package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"storefront-gateway/internal/domain"
)

// FileStore keeps one JSON document per client under a state directory.
// It is the default backend and the closest analog to browser local
// storage: whole-document read, whole-document write.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFile creates the state directory if needed and returns a FileStore.
func NewFile(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) LoadCart(ctx context.Context, clientID string) ([]domain.LineItem, error) {
	snap, err := s.read(clientID)
	if err != nil {
		return nil, err
	}
	return snap.Cart, nil
}

func (s *FileStore) SaveCart(ctx context.Context, clientID string, items []domain.LineItem) error {
	return s.update(clientID, func(snap *snapshot) {
		snap.Cart = items
	})
}

func (s *FileStore) LoadSession(ctx context.Context, clientID string) (*domain.Session, error) {
	snap, err := s.read(clientID)
	if err != nil {
		return nil, err
	}
	if snap.AccessToken == "" || snap.User == nil {
		return nil, domain.ErrNotFound
	}
	return &domain.Session{Token: snap.AccessToken, User: snap.User}, nil
}

func (s *FileStore) SaveSession(ctx context.Context, clientID string, sess domain.Session) error {
	return s.update(clientID, func(snap *snapshot) {
		snap.AccessToken = sess.Token
		snap.User = sess.User
	})
}

func (s *FileStore) ClearSession(ctx context.Context, clientID string) error {
	return s.update(clientID, func(snap *snapshot) {
		snap.AccessToken = ""
		snap.User = nil
	})
}

func (s *FileStore) read(clientID string) (*snapshot, error) {
	path, err := s.path(clientID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &snap, nil
}

func (s *FileStore) update(clientID string, apply func(*snapshot)) error {
	path, err := s.path(clientID)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var snap snapshot
	if data, err := os.ReadFile(path); err == nil {
		if err := json.Unmarshal(data, &snap); err != nil {
			// A corrupt snapshot is replaced rather than kept around.
			snap = snapshot{}
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("read snapshot: %w", err)
	}

	apply(&snap)

	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}

func (s *FileStore) path(clientID string) (string, error) {
	if clientID == "" || clientID != filepath.Base(clientID) {
		return "", fmt.Errorf("invalid client id %q", clientID)
	}
	return filepath.Join(s.dir, clientID+".json"), nil
}
