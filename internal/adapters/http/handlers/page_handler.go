package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"lps-admin/internal/adapters/http/middleware"
	"lps-admin/internal/config"
	"lps-admin/internal/core/services"
	"lps-admin/internal/pkg/response"
)

// PageHandler serves the single-page shell for every screen
type PageHandler struct {
	resolver middleware.SessionResolver
	cfg      *config.Config
}

// NewPageHandler creates a new page handler
func NewPageHandler(resolver middleware.SessionResolver, cfg *config.Config) *PageHandler {
	return &PageHandler{
		resolver: resolver,
		cfg:      cfg,
	}
}

// Login serves the login screen; a signed-in visitor goes straight home
func (h *PageHandler) Login(c *fiber.Ctx) error {
	if middleware.OptionalSession(c, h.resolver) != nil {
		return c.Redirect(services.HomePath, fiber.StatusFound)
	}
	return h.Shell(c)
}

// Shell serves the index file behind a PageGate
func (h *PageHandler) Shell(c *fiber.Ctx) error {
	return c.SendFile(h.cfg.Web.IndexFile)
}

// NotFound answers unknown paths: JSON for the API, home for pages
func (h *PageHandler) NotFound(c *fiber.Ctx) error {
	if isAPIPath(c.Path()) {
		return response.NotFound(c, "Route not found")
	}
	return c.Redirect(services.HomePath, fiber.StatusFound)
}

func isAPIPath(p string) bool {
	return p == "/api" || strings.HasPrefix(p, "/api/")
}
