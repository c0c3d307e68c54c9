package middleware

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"lps-admin/internal/config"
	"lps-admin/internal/core/domain"
	"lps-admin/internal/pkg/logger"
	"lps-admin/internal/pkg/response"
)

// SessionCookie is the cookie carrying the signed session token
const SessionCookie = "session"

const sessionLocal = "session"

// SessionResolver turns a browser token into a live session
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*domain.Session, error)
}

// tokenFrom reads the session cookie first, then the Authorization header
func tokenFrom(c *fiber.Ctx) string {
	if token := c.Cookies(SessionCookie); token != "" {
		return token
	}
	authHeader := c.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

const msgStoreUnavailable = "Session store unavailable, please try again"

// isSessionRejected reports whether err means the token names no live session.
// Anything else is a store failure and leaves the cookie alone.
func isSessionRejected(err error) bool {
	return errors.Is(err, domain.ErrSessionNotFound) ||
		errors.Is(err, domain.ErrSessionExpired) ||
		errors.Is(err, domain.ErrSessionRevoked) ||
		errors.Is(err, domain.ErrUnauthorized)
}

// AuthMiddleware requires a live session on API routes.
// A rejected session clears the cookie and answers 401 with a redirect to "/".
func AuthMiddleware(resolver SessionResolver, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := tokenFrom(c)
		if token == "" {
			return response.Unauthorized(c, "Session required")
		}

		sess, err := resolver.Resolve(c.UserContext(), token)
		if err != nil {
			if !isSessionRejected(err) {
				logger.Errorf("❌ Session lookup failed: %v", err)
				return response.Error(c, fiber.StatusServiceUnavailable, msgStoreUnavailable)
			}
			ClearSessionCookie(c, cfg)
			if errors.Is(err, domain.ErrSessionExpired) {
				return response.Unauthorized(c, "Session expired, please login again")
			}
			return response.Unauthorized(c, "Invalid session")
		}

		c.Locals(sessionLocal, sess)
		return c.Next()
	}
}

// PageGate protects page routes: without a live session the browser is
// sent back to the login entry.
func PageGate(resolver SessionResolver, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := tokenFrom(c)
		if token == "" {
			return c.Redirect("/", fiber.StatusFound)
		}

		sess, err := resolver.Resolve(c.UserContext(), token)
		if err != nil {
			if !isSessionRejected(err) {
				logger.Errorf("❌ Session lookup failed: %v", err)
				return c.Status(fiber.StatusServiceUnavailable).SendString(msgStoreUnavailable)
			}
			ClearSessionCookie(c, cfg)
			return c.Redirect("/", fiber.StatusFound)
		}

		c.Locals(sessionLocal, sess)
		return c.Next()
	}
}

// RoleMiddleware creates role-based authorization middleware
func RoleMiddleware(allowedRoles ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := CurrentSession(c)
		if sess == nil {
			return response.Unauthorized(c, "Unauthorized")
		}

		for _, allowedRole := range allowedRoles {
			if sess.User.Role == allowedRole {
				return c.Next()
			}
		}

		return response.Forbidden(c, "You don't have permission to access this resource")
	}
}

// AdminOnly middleware allows only the admin role
func AdminOnly() fiber.Handler {
	return RoleMiddleware(domain.RoleAdmin)
}

// CurrentSession returns the session set by AuthMiddleware or PageGate
func CurrentSession(c *fiber.Ctx) *domain.Session {
	sess, _ := c.Locals(sessionLocal).(*domain.Session)
	return sess
}

// OptionalSession returns the live session if the request carries one
func OptionalSession(c *fiber.Ctx, resolver SessionResolver) *domain.Session {
	token := tokenFrom(c)
	if token == "" {
		return nil
	}
	sess, err := resolver.Resolve(c.UserContext(), token)
	if err != nil {
		return nil
	}
	return sess
}

// SetSessionCookie stores the signed session token
func SetSessionCookie(c *fiber.Ctx, cfg *config.Config, token string, expiresAt time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		Secure:   cfg.Cookie.Secure,
		HTTPOnly: true,
		SameSite: cfg.Cookie.SameSite,
		Domain:   cfg.Cookie.Domain,
	})
}

// ClearSessionCookie clears the session cookie
func ClearSessionCookie(c *fiber.Ctx, cfg *config.Config) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Now().Add(-1 * time.Hour),
		Secure:   cfg.Cookie.Secure,
		HTTPOnly: true,
		SameSite: cfg.Cookie.SameSite,
		Domain:   cfg.Cookie.Domain,
	})
}
