package lpsapi

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"lps-admin/internal/core/domain"
)

// ListUsers returns every backend user
func (c *Client) ListUsers(ctx context.Context, sess *domain.Session) (ListResult[domain.User], error) {
	raw, err := c.do(ctx, sess, http.MethodGet, "/users", nil)
	if err != nil {
		return ListResult[domain.User]{}, err
	}
	return DecodeList[domain.User](raw, "users"), nil
}

// ListAgents returns users with the agent role
func (c *Client) ListAgents(ctx context.Context, sess *domain.Session) (ListResult[domain.User], error) {
	raw, err := c.do(ctx, sess, http.MethodGet, "/users/agents", nil)
	if err != nil {
		return ListResult[domain.User]{}, err
	}
	return DecodeList[domain.User](raw, "agents", "users"), nil
}

// ListUsersOrAgents tries /users and falls back to /users/agents when the
// first call fails for any reason other than authentication.
func (c *Client) ListUsersOrAgents(ctx context.Context, sess *domain.Session) (ListResult[domain.User], error) {
	res, err := c.ListUsers(ctx, sess)
	if err == nil {
		return res, nil
	}
	if errors.Is(err, ErrUnauthorized) {
		return res, err
	}
	return c.ListAgents(ctx, sess)
}

// GetUser fetches one user
func (c *Client) GetUser(ctx context.Context, sess *domain.Session, id domain.ID) (*domain.User, error) {
	raw, err := c.do(ctx, sess, http.MethodGet, "/users/"+url.PathEscape(id.String()), nil)
	if err != nil {
		return nil, err
	}
	user, err := DecodeOne[domain.User](raw)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
