package upstream

import (
	"context"
	"net/http"

	"storefront-gateway/internal/domain"
)

type registerRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is the upstream login payload: an opaque token plus the
// account it identifies.
type LoginResult struct {
	AccessToken string      `json:"access_token"`
	User        domain.User `json:"user"`
}

// Register creates an account. The caller is expected to chain into Login
// afterwards; registration alone issues no token.
func (c *Client) Register(ctx context.Context, email, password, firstName, lastName string) error {
	body := registerRequest{
		Email:     email,
		Password:  password,
		FirstName: firstName,
		LastName:  lastName,
	}
	return c.do(ctx, http.MethodPost, "/auth/register", "", body, nil)
}

// Login exchanges credentials for a token and user.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	var res LoginResult
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", loginRequest{Email: email, Password: password}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
