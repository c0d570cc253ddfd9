package domain

import "time"

// User mirrors the account object returned by the shopping API on login.
type User struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

// Session is the authenticated identity for one storefront client.
// Token and User are present together or not at all; a zero Session is
// Anonymous.
type Session struct {
	Token string `json:"access_token"`
	User  *User  `json:"user"`
}

// LoggedIn reports whether the session holds an identity.
func (s Session) LoggedIn() bool {
	return s.Token != "" && s.User != nil
}

// Admin reports the client-side admin flag. Advisory only: it gates UI
// surfaces, never access control, and the upstream re-authorizes every
// privileged call.
func (s Session) Admin() bool {
	return s.LoggedIn() && s.User.IsAdmin
}

// DisplayName returns the name shown in the navbar slot, falling back to
// the email address.
func (s Session) DisplayName() string {
	if s.User == nil {
		return ""
	}
	if s.User.FirstName != "" {
		return s.User.FirstName
	}
	return s.User.Email
}
