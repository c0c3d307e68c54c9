package lpsapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"lps-admin/internal/core/domain"
)

// LoginResult is the token and profile returned by /auth/login
type LoginResult struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

// Login exchanges credentials for a bearer token. It is the only call
// made without a session, so a 401 comes back as an *APIError carrying
// the backend's message rather than triggering the unauthorized policy.
func (c *Client) Login(ctx context.Context, in domain.LoginInput) (*LoginResult, error) {
	raw, err := c.do(ctx, nil, http.MethodPost, "/auth/login", in)
	if err != nil {
		return nil, err
	}

	res, err := DecodeOne[LoginResult](raw)
	if err != nil {
		return nil, err
	}
	if res.Token == "" {
		return nil, fmt.Errorf("%w: login response carried no token", ErrInvalidResponse)
	}
	return &res, nil
}

// Register creates a backend user. When the backend answers without echoing
// the record, the submitted fields are returned instead.
func (c *Client) Register(ctx context.Context, sess *domain.Session, in domain.RegisterUserInput) (*domain.User, error) {
	raw, err := c.do(ctx, sess, http.MethodPost, "/auth/register", in)
	if err != nil {
		return nil, err
	}

	user, err := DecodeOne[domain.User](raw)
	if err != nil && !errors.Is(err, domain.ErrNotFound) && !errors.Is(err, ErrInvalidResponse) {
		return nil, err
	}
	if err != nil || (user.ID.IsZero() && user.Email == "") {
		user = domain.User{Email: in.Email, FullName: in.FullName, Role: in.Role}
	}
	return &user, nil
}
