package handlers

import (
	"github.com/gofiber/fiber/v2"

	"lps-admin/internal/adapters/http/middleware"
	"lps-admin/internal/config"
	"lps-admin/internal/core/domain"
	"lps-admin/internal/core/services"
	"lps-admin/internal/pkg/response"
)

// ApproverHandler handles approver task endpoints
type ApproverHandler struct {
	approverService *services.ApproverService
	cfg             *config.Config
}

// NewApproverHandler creates a new approver handler
func NewApproverHandler(approverService *services.ApproverService, cfg *config.Config) *ApproverHandler {
	return &ApproverHandler{
		approverService: approverService,
		cfg:             cfg,
	}
}

// ListTasks handles listing approver tasks
// @Summary List approver tasks
// @Tags Approver
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /approver [get]
func (h *ApproverHandler) ListTasks(c *fiber.Ctx) error {
	view, err := h.approverService.List(c.UserContext(), middleware.CurrentSession(c))
	if err != nil {
		return respondError(c, h.cfg, err, "Failed to list approver tasks")
	}

	return response.SuccessWithWarnings(c, "Approver tasks retrieved successfully", view.Items, view.Warnings)
}

// ListAssignableUsers handles the user picker of the task form
// @Summary List assignable users
// @Tags Approver
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /approver/users [get]
func (h *ApproverHandler) ListAssignableUsers(c *fiber.Ctx) error {
	view, err := h.approverService.Users(c.UserContext(), middleware.CurrentSession(c))
	if err != nil {
		return respondError(c, h.cfg, err, "Failed to list users")
	}

	return response.SuccessWithWarnings(c, "Users retrieved successfully", view.Items, view.Warnings)
}

// GetTask handles getting an approver task with attachment previews
// @Summary Get approver task
// @Tags Approver
// @Produce json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /approver/{id} [get]
func (h *ApproverHandler) GetTask(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return response.BadRequest(c, "Invalid task ID")
	}

	detail, err := h.approverService.Get(c.UserContext(), middleware.CurrentSession(c), id)
	if err != nil {
		return respondError(c, h.cfg, err, "Failed to get approver task")
	}

	return response.Success(c, "Approver task retrieved successfully", detail)
}

// CreateTask handles creating an approver task
// @Summary Create approver task
// @Tags Approver
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body domain.ApproverTaskInput true "Task data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /approver [post]
func (h *ApproverHandler) CreateTask(c *fiber.Ctx) error {
	var req domain.ApproverTaskInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	task, err := h.approverService.Create(c.UserContext(), middleware.CurrentSession(c), req)
	if err != nil {
		return respondError(c, h.cfg, err, "Failed to create approver task")
	}

	return response.Created(c, "Approver task created successfully", task)
}

// UpdateTask handles updating an approver task
// @Summary Update approver task
// @Tags Approver
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Param body body domain.ApproverTaskInput true "Task data"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /approver/{id} [put]
func (h *ApproverHandler) UpdateTask(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return response.BadRequest(c, "Invalid task ID")
	}

	var req domain.ApproverTaskInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	task, err := h.approverService.Update(c.UserContext(), middleware.CurrentSession(c), id, req)
	if err != nil {
		return respondError(c, h.cfg, err, "Failed to update approver task")
	}

	return response.Success(c, "Approver task updated successfully", task)
}

// DeleteTask handles deleting an approver task
// @Summary Delete approver task
// @Tags Approver
// @Produce json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Success 200 {object} response.Response
// @Router /approver/{id} [delete]
func (h *ApproverHandler) DeleteTask(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return response.BadRequest(c, "Invalid task ID")
	}

	if err := h.approverService.Delete(c.UserContext(), middleware.CurrentSession(c), id); err != nil {
		return respondError(c, h.cfg, err, "Failed to delete approver task")
	}

	return response.Success(c, "Approver task deleted successfully", nil)
}
