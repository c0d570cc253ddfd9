package session

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"storefront-gateway/internal/domain"
	"storefront-gateway/internal/upstream"
)

type stubAuthAPI struct {
	loginResult   *upstream.LoginResult
	loginErr      error
	loginCalls    int
	lastEmail     string
	lastPassword  string
	registerErr   error
	registerCalls int
}

func (s *stubAuthAPI) Login(_ context.Context, email, password string) (*upstream.LoginResult, error) {
	s.loginCalls++
	s.lastEmail = email
	s.lastPassword = password
	return s.loginResult, s.loginErr
}

func (s *stubAuthAPI) Register(_ context.Context, _, _, _, _ string) error {
	s.registerCalls++
	return s.registerErr
}

type stubSessionStore struct {
	stored     *domain.Session
	loadErr    error
	saveErr    error
	saveCalls  int
	clearCalls int
}

func (s *stubSessionStore) LoadSession(_ context.Context, _ string) (*domain.Session, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	if s.stored == nil {
		return nil, domain.ErrNotFound
	}
	return s.stored, nil
}

func (s *stubSessionStore) SaveSession(_ context.Context, _ string, sess domain.Session) error {
	s.saveCalls++
	if s.saveErr != nil {
		return s.saveErr
	}
	s.stored = &sess
	return nil
}

func (s *stubSessionStore) ClearSession(_ context.Context, _ string) error {
	s.clearCalls++
	s.stored = nil
	return nil
}

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestLogin_StoresTokenAndUserTogether(t *testing.T) {
	ctx := context.Background()
	api := &stubAuthAPI{
		loginResult: &upstream.LoginResult{
			AccessToken: "tok-123",
			User:        domain.User{ID: 1, Email: "user@example.com", FirstName: "Ana"},
		},
	}
	store := &stubSessionStore{}
	m := New(ctx, api, store, "client-1", testLogger())

	if m.LoggedIn() {
		t.Fatalf("expected Anonymous before login")
	}

	sess, err := m.Login(ctx, "user@example.com", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if !m.LoggedIn() {
		t.Fatalf("expected Authenticated after login")
	}
	if sess.Token != "tok-123" || sess.User == nil || sess.User.Email != "user@example.com" {
		t.Fatalf("unexpected session %+v", sess)
	}
	if store.stored == nil || store.stored.Token != "tok-123" || store.stored.User == nil {
		t.Fatalf("persisted session incomplete: %+v", store.stored)
	}
}

func TestLogin_FailureLeavesPriorSessionUntouched(t *testing.T) {
	ctx := context.Background()
	prior := &domain.Session{Token: "old-token", User: &domain.User{ID: 2, Email: "old@example.com"}}
	api := &stubAuthAPI{loginErr: &upstream.APIError{Status: 401, Message: "Invalid email or password"}}
	store := &stubSessionStore{stored: prior}
	m := New(ctx, api, store, "client-1", testLogger())

	_, err := m.Login(ctx, "user@example.com", "bad")
	if err == nil {
		t.Fatalf("expected login error")
	}
	var apiErr *upstream.APIError
	if !errors.As(err, &apiErr) || apiErr.Message != "Invalid email or password" {
		t.Fatalf("expected upstream message surfaced, got %v", err)
	}
	if !m.LoggedIn() || m.Token() != "old-token" {
		t.Fatalf("prior session should survive a failed login, got %+v", m.Current())
	}
	if store.stored == nil || store.stored.Token != "old-token" {
		t.Fatalf("persisted session changed on failed login: %+v", store.stored)
	}
	if store.saveCalls != 0 {
		t.Fatalf("failed login must not persist, got %d saves", store.saveCalls)
	}
}

func TestLogin_MissingCredentialsNeverReachUpstream(t *testing.T) {
	ctx := context.Background()
	api := &stubAuthAPI{}
	m := New(ctx, api, &stubSessionStore{}, "client-1", testLogger())

	if _, err := m.Login(ctx, "", "pw"); !errors.Is(err, ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
	if _, err := m.Login(ctx, "user@example.com", ""); !errors.Is(err, ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
	if api.loginCalls != 0 {
		t.Fatalf("upstream called %d times for blank credentials", api.loginCalls)
	}
}

func TestLogout_ClearsBothAndIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := &stubSessionStore{stored: &domain.Session{Token: "tok", User: &domain.User{ID: 1}}}
	m := New(ctx, &stubAuthAPI{}, store, "client-1", testLogger())

	m.Logout(ctx)
	if m.LoggedIn() || m.Token() != "" || m.Current().User != nil {
		t.Fatalf("expected Anonymous after logout, got %+v", m.Current())
	}

	m.Logout(ctx)
	if m.LoggedIn() {
		t.Fatalf("second logout should be a no-op")
	}
	if store.clearCalls != 2 {
		t.Fatalf("expected 2 clear calls, got %d", store.clearCalls)
	}
}

func TestRegister_ChainsIntoLogin(t *testing.T) {
	ctx := context.Background()
	api := &stubAuthAPI{
		loginResult: &upstream.LoginResult{
			AccessToken: "tok-new",
			User:        domain.User{ID: 3, Email: "new@example.com"},
		},
	}
	m := New(ctx, api, &stubSessionStore{}, "client-1", testLogger())

	sess, err := m.Register(ctx, "new@example.com", "pw", "New", "User")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if api.registerCalls != 1 || api.loginCalls != 1 {
		t.Fatalf("expected register then login, got register=%d login=%d", api.registerCalls, api.loginCalls)
	}
	if !sess.LoggedIn() || sess.Token != "tok-new" {
		t.Fatalf("unexpected session after register: %+v", sess)
	}
}

func TestRegister_FailureStopsBeforeLogin(t *testing.T) {
	ctx := context.Background()
	api := &stubAuthAPI{registerErr: &upstream.APIError{Status: 409, Message: "Email already registered"}}
	m := New(ctx, api, &stubSessionStore{}, "client-1", testLogger())

	if _, err := m.Register(ctx, "dup@example.com", "pw", "", ""); err == nil {
		t.Fatalf("expected register error")
	}
	if api.loginCalls != 0 {
		t.Fatalf("login should not run after failed register")
	}
	if m.LoggedIn() {
		t.Fatalf("session should stay Anonymous")
	}
}

func TestExpire_DropsAuthenticatedSession(t *testing.T) {
	ctx := context.Background()
	store := &stubSessionStore{stored: &domain.Session{Token: "stale", User: &domain.User{ID: 1}}}
	m := New(ctx, &stubAuthAPI{}, store, "client-1", testLogger())

	if !m.LoggedIn() {
		t.Fatalf("expected rehydrated session")
	}
	m.Expire(ctx)
	if m.LoggedIn() || store.stored != nil {
		t.Fatalf("expected Anonymous after expiry")
	}
}

func TestNew_BrokenSnapshotStartsAnonymous(t *testing.T) {
	ctx := context.Background()
	store := &stubSessionStore{loadErr: errors.New("disk gone")}
	m := New(ctx, &stubAuthAPI{}, store, "client-1", testLogger())

	if m.LoggedIn() {
		t.Fatalf("expected Anonymous when snapshot cannot load")
	}
}
