package handlers

import (
	"github.com/gofiber/fiber/v2"

	"lps-admin/internal/adapters/http/middleware"
	"lps-admin/internal/config"
	"lps-admin/internal/core/domain"
	"lps-admin/internal/core/services"
	"lps-admin/internal/pkg/pagination"
	"lps-admin/internal/pkg/response"
)

// UserHandler handles user management endpoints
type UserHandler struct {
	userService *services.UserService
	cfg         *config.Config
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *services.UserService, cfg *config.Config) *UserHandler {
	return &UserHandler{
		userService: userService,
		cfg:         cfg,
	}
}

// ListUsers handles listing all users
// @Summary List users
// @Description Get all backend users, optionally paginated
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /users [get]
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	view, err := h.userService.List(c.UserContext(), middleware.CurrentSession(c))
	if err != nil {
		return respondError(c, h.cfg, err, "Failed to list users")
	}

	items, meta := pagination.Slice(view.Items, pagination.GetParams(c))
	return response.Paginated(c, "Users retrieved successfully", items, meta, view.Warnings)
}

// ListAgents handles listing agents
// @Summary List agents
// @Description Get users with the agent role
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /users/agents [get]
func (h *UserHandler) ListAgents(c *fiber.Ctx) error {
	view, err := h.userService.ListAgents(c.UserContext(), middleware.CurrentSession(c))
	if err != nil {
		return respondError(c, h.cfg, err, "Failed to list agents")
	}

	return response.SuccessWithWarnings(c, "Agents retrieved successfully", view.Items, view.Warnings)
}

// GetUser handles getting a user by ID
// @Summary Get user by ID
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return response.BadRequest(c, "Invalid user ID")
	}

	user, err := h.userService.Get(c.UserContext(), middleware.CurrentSession(c), id)
	if err != nil {
		return respondError(c, h.cfg, err, "Failed to get user")
	}

	return response.Success(c, "User retrieved successfully", user)
}

// CreateUser handles registering a backend user (Admin only)
// @Summary Create user
// @Description Register a user on the LPS backend; role defaults to agent
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body domain.RegisterUserInput true "User data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /users [post]
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req domain.RegisterUserInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	user, err := h.userService.Create(c.UserContext(), middleware.CurrentSession(c), req)
	if err != nil {
		return respondError(c, h.cfg, err, "Failed to create user")
	}

	return response.Created(c, "User created successfully", user)
}
