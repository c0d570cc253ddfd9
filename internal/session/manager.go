// Package session owns login/logout and the token lifecycle for one
// storefront client. Token and user are stored together or not at all.
package session

import (
	"context"
	"errors"
	"log"

	"storefront-gateway/internal/domain"
	"storefront-gateway/internal/upstream"
)

// ErrMissingCredentials is the local precondition failure for blank
// login/register fields; nothing reaches the upstream.
var ErrMissingCredentials = errors.New("email and password are required")

type authAPI interface {
	Register(ctx context.Context, email, password, firstName, lastName string) error
	Login(ctx context.Context, email, password string) (*upstream.LoginResult, error)
}

type sessionStore interface {
	LoadSession(ctx context.Context, clientID string) (*domain.Session, error)
	SaveSession(ctx context.Context, clientID string, s domain.Session) error
	ClearSession(ctx context.Context, clientID string) error
}

// Manager moves one client between Anonymous and Authenticated. Expiry is
// discovered reactively: a 401 on any authenticated call sends the client
// back to Anonymous via Expire.
type Manager struct {
	api      authAPI
	store    sessionStore
	clientID string
	logger   *log.Logger
	current  domain.Session
}

// New rehydrates the client's session from the store; a missing or broken
// snapshot starts Anonymous.
func New(ctx context.Context, api authAPI, store sessionStore, clientID string, logger *log.Logger) *Manager {
	m := &Manager{api: api, store: store, clientID: clientID, logger: logger}
	sess, err := store.LoadSession(ctx, clientID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Printf("load session for %s: %v", clientID, err)
		}
		return m
	}
	m.current = *sess
	return m
}

// Login exchanges credentials upstream and stores token and user together.
// On rejection the upstream message is returned and any prior session is
// left untouched.
func (m *Manager) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}
	res, err := m.api.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	sess := domain.Session{Token: res.AccessToken, User: &res.User}
	if err := m.store.SaveSession(ctx, m.clientID, sess); err != nil {
		return nil, err
	}
	m.current = sess
	return &sess, nil
}

// Register creates the account and chains straight into Login.
func (m *Manager) Register(ctx context.Context, email, password, firstName, lastName string) (*domain.Session, error) {
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}
	if err := m.api.Register(ctx, email, password, firstName, lastName); err != nil {
		return nil, err
	}
	return m.Login(ctx, email, password)
}

// Logout clears token and user together. Idempotent.
func (m *Manager) Logout(ctx context.Context) {
	m.current = domain.Session{}
	if err := m.store.ClearSession(ctx, m.clientID); err != nil {
		m.logger.Printf("clear session for %s: %v", m.clientID, err)
	}
}

// Expire drops an authenticated session after the upstream rejected its
// token. Same transition as Logout, named for the cause.
func (m *Manager) Expire(ctx context.Context) {
	m.Logout(ctx)
}

// Current returns the session state.
func (m *Manager) Current() domain.Session { return m.current }

// LoggedIn reports whether the client is Authenticated.
func (m *Manager) LoggedIn() bool { return m.current.LoggedIn() }

// Admin reports the advisory admin flag; never used for access control.
func (m *Manager) Admin() bool { return m.current.Admin() }

// Token returns the bearer token, empty when Anonymous.
func (m *Manager) Token() string { return m.current.Token }
