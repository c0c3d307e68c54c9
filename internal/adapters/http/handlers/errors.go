package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"lps-admin/internal/adapters/http/middleware"
	"lps-admin/internal/adapters/lpsapi"
	"lps-admin/internal/config"
	"lps-admin/internal/core/domain"
	"lps-admin/internal/pkg/logger"
	"lps-admin/internal/pkg/response"
)

const (
	msgNetwork     = "Cannot reach the LPS server, please check your connection"
	msgSessionGone = "Session expired, please login again"
)

// respondError maps service and upstream errors onto the response envelope.
// fallback is shown when the backend gave no message of its own.
func respondError(c *fiber.Ctx, cfg *config.Config, err error, fallback string) error {
	var (
		verr   *domain.ValidationError
		apiErr *lpsapi.APIError
	)

	switch {
	case errors.As(err, &verr):
		return response.ValidationFailed(c, verr.Message, verr.Fields)

	case errors.Is(err, lpsapi.ErrUnauthorized),
		errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrSessionExpired),
		errors.Is(err, domain.ErrSessionRevoked):
		middleware.ClearSessionCookie(c, cfg)
		return response.Unauthorized(c, msgSessionGone)

	case errors.Is(err, lpsapi.ErrNetwork):
		return response.BadGateway(c, msgNetwork)

	case errors.Is(err, domain.ErrInvalidState):
		return response.Conflict(c, err.Error())

	case errors.Is(err, domain.ErrNotFound):
		return response.NotFound(c, "Resource not found")

	case errors.As(err, &apiErr):
		msg := apiErr.Message
		if msg == "" {
			msg = fallback
		}
		switch {
		case apiErr.NotFound():
			return response.NotFound(c, msg)
		case apiErr.StatusCode >= http.StatusInternalServerError:
			return response.BadGateway(c, msg)
		default:
			return response.Error(c, apiErr.StatusCode, msg)
		}

	case errors.Is(err, lpsapi.ErrInvalidResponse):
		logger.Warnf("⚠️ %s %s: %v", c.Method(), c.Path(), err)
		return response.BadGateway(c, fallback)

	default:
		logger.Errorf("❌ %s %s: %v", c.Method(), c.Path(), err)
		return response.InternalServerError(c, fallback)
	}
}

// pathID reads the :id route parameter
func pathID(c *fiber.Ctx) (domain.ID, bool) {
	id := domain.ID(c.Params("id"))
	return id, !id.IsZero()
}
