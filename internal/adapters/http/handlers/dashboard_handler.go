package handlers

import (
	"github.com/gofiber/fiber/v2"

	"lps-admin/internal/adapters/http/middleware"
	"lps-admin/internal/config"
	"lps-admin/internal/core/services"
	"lps-admin/internal/pkg/response"
)

// DashboardHandler handles dashboard endpoints
type DashboardHandler struct {
	dashboardService *services.DashboardService
	cfg              *config.Config
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *services.DashboardService, cfg *config.Config) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		cfg:              cfg,
	}
}

// GetDashboard returns the home page summary
// @Summary Dashboard
// @Description Counts of users, customers, assignments and approver tasks. Sections that fail to load are reported as warnings.
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	data, err := h.dashboardService.Get(c.UserContext(), middleware.CurrentSession(c))
	if err != nil {
		return respondError(c, h.cfg, err, "Failed to get dashboard")
	}

	return response.SuccessWithWarnings(c, "Dashboard retrieved successfully", data, data.Warnings)
}
