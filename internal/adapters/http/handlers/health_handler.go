package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// StoreCheck pings the session store
type StoreCheck func(ctx context.Context) error

// HealthHandler handles health check endpoints
type HealthHandler struct {
	check   StoreCheck
	mode    string
	version string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(check StoreCheck, mode, version string) *HealthHandler {
	return &HealthHandler{
		check:   check,
		mode:    mode,
		version: version,
	}
}

// HealthCheck handles health check
// @Summary Health check
// @Description Check the admin server and its session store
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	status, storeStatus := "ok", "healthy"
	code := fiber.StatusOK

	if h.check != nil {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := h.check(ctx); err != nil {
			status, storeStatus = "degraded", "unhealthy"
			code = fiber.StatusServiceUnavailable
		}
	}

	return c.Status(code).JSON(fiber.Map{
		"status": status,
		"checks": fiber.Map{
			"api":           "healthy",
			"session_store": storeStatus,
		},
	})
}

// APIInfo handles API v1 info
// @Summary API v1 Info
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *HealthHandler) APIInfo(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "LPS Admin API",
		"version": h.version,
		"mode":    h.mode,
		"docs":    "/swagger/index.html",
	})
}
