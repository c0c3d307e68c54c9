package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lps-admin/internal/config"
	"lps-admin/internal/core/domain"
)

type fakeResolver struct {
	resolveFn func(ctx context.Context, token string) (*domain.Session, error)
}

func (f *fakeResolver) Resolve(ctx context.Context, token string) (*domain.Session, error) {
	return f.resolveFn(ctx, token)
}

func failingResolver(err error) *fakeResolver {
	return &fakeResolver{resolveFn: func(ctx context.Context, token string) (*domain.Session, error) {
		return nil, err
	}}
}

func newGatedApp(resolver SessionResolver) *fiber.App {
	cfg := &config.Config{Cookie: config.CookieConfig{SameSite: "Lax"}}
	app := fiber.New()
	app.Get("/api/v1/me", AuthMiddleware(resolver, cfg), func(c *fiber.Ctx) error {
		return c.SendString(CurrentSession(c).User.Email)
	})
	app.Get("/home", PageGate(resolver, cfg), func(c *fiber.Ctx) error {
		return c.SendString("shell")
	})
	return app
}

func get(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "tok"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func clearsCookie(resp *http.Response) bool {
	for _, v := range resp.Header.Values("Set-Cookie") {
		if strings.HasPrefix(v, SessionCookie+"=;") {
			return true
		}
	}
	return false
}

func TestAuthMiddleware_LiveSession(t *testing.T) {
	app := newGatedApp(&fakeResolver{resolveFn: func(ctx context.Context, token string) (*domain.Session, error) {
		assert.Equal(t, "tok", token)
		return &domain.Session{ID: "s1", User: domain.SessionUser{Email: "a@b.com"}}, nil
	}})

	resp := get(t, app, "/api/v1/me")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, clearsCookie(resp))
}

func TestAuthMiddleware_RejectedSessionClearsCookie(t *testing.T) {
	for _, err := range []error{
		domain.ErrSessionNotFound,
		domain.ErrSessionExpired,
		domain.ErrSessionRevoked,
		domain.ErrUnauthorized,
	} {
		app := newGatedApp(failingResolver(err))

		resp := get(t, app, "/api/v1/me")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, err.Error())
		assert.True(t, clearsCookie(resp), err.Error())

		resp = get(t, app, "/home")
		assert.Equal(t, http.StatusFound, resp.StatusCode, err.Error())
		assert.Equal(t, "/", resp.Header.Get("Location"))
	}
}

func TestAuthMiddleware_StoreFailureKeepsCookie(t *testing.T) {
	app := newGatedApp(failingResolver(errors.New("dial tcp 127.0.0.1:6379: connection refused")))

	resp := get(t, app, "/api/v1/me")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.False(t, clearsCookie(resp))

	resp = get(t, app, "/home")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.False(t, clearsCookie(resp))
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	app := newGatedApp(failingResolver(errors.New("not called")))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/me", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/home", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
}
