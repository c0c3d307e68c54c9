package handlers

import (
	"github.com/gofiber/fiber/v2"

	"lps-admin/internal/adapters/http/middleware"
	"lps-admin/internal/config"
	"lps-admin/internal/core/domain"
	"lps-admin/internal/core/services"
	"lps-admin/internal/pkg/response"
)

// AssignmentHandler handles assignment endpoints
type AssignmentHandler struct {
	assignmentService *services.AssignmentService
	cfg               *config.Config
}

// NewAssignmentHandler creates a new assignment handler
func NewAssignmentHandler(assignmentService *services.AssignmentService, cfg *config.Config) *AssignmentHandler {
	return &AssignmentHandler{
		assignmentService: assignmentService,
		cfg:               cfg,
	}
}

// ListAssignments handles listing assignments
// @Summary List assignments
// @Description Assignments with resolved customer and agent names, status badge and allowed actions
// @Tags Assignments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /assignments [get]
func (h *AssignmentHandler) ListAssignments(c *fiber.Ctx) error {
	view, err := h.assignmentService.List(c.UserContext(), middleware.CurrentSession(c))
	if err != nil {
		return respondError(c, h.cfg, err, "Failed to list assignments")
	}

	return response.SuccessWithWarnings(c, "Assignments retrieved successfully", view.Items, view.Warnings)
}

// GetAssignment handles getting an assignment by ID
// @Summary Get assignment by ID
// @Tags Assignments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Assignment ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /assignments/{id} [get]
func (h *AssignmentHandler) GetAssignment(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return response.BadRequest(c, "Invalid assignment ID")
	}

	view, err := h.assignmentService.Get(c.UserContext(), middleware.CurrentSession(c), id)
	if err != nil {
		return respondError(c, h.cfg, err, "Failed to get assignment")
	}
	if len(view.Items) == 0 {
		return response.NotFound(c, "Assignment not found")
	}

	return response.SuccessWithWarnings(c, "Assignment retrieved successfully", view.Items[0], view.Warnings)
}

// CreateAssignment handles the intake form
// @Summary Create assignment
// @Tags Assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body domain.CreateAssignmentInput true "Assignment data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /assignments [post]
func (h *AssignmentHandler) CreateAssignment(c *fiber.Ctx) error {
	var req domain.CreateAssignmentInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	assignment, err := h.assignmentService.Create(c.UserContext(), middleware.CurrentSession(c), req)
	if err != nil {
		return respondError(c, h.cfg, err, "Failed to create assignment")
	}

	return response.Created(c, "Assignment created successfully", assignment)
}

// ReviewAssignment handles approve/reject
// @Summary Review assignment
// @Description Approve or reject a submitted assignment. Reject requires a note. Returns the refreshed list.
// @Tags Assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Assignment ID"
// @Param body body domain.ReviewInput true "Decision"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /assignments/{id}/review [post]
func (h *AssignmentHandler) ReviewAssignment(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return response.BadRequest(c, "Invalid assignment ID")
	}

	var req domain.ReviewInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	view, err := h.assignmentService.Review(c.UserContext(), middleware.CurrentSession(c), id, req)
	if err != nil {
		return respondError(c, h.cfg, err, "Failed to review assignment")
	}

	msg := "Assignment approved"
	if req.Action == domain.ActionReject {
		msg = "Assignment rejected"
	}
	return response.SuccessWithWarnings(c, msg, view.Items, view.Warnings)
}

// DeleteAssignment handles deleting a pending assignment
// @Summary Delete assignment
// @Tags Assignments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Assignment ID"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /assignments/{id} [delete]
func (h *AssignmentHandler) DeleteAssignment(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return response.BadRequest(c, "Invalid assignment ID")
	}

	if err := h.assignmentService.Delete(c.UserContext(), middleware.CurrentSession(c), id); err != nil {
		return respondError(c, h.cfg, err, "Failed to delete assignment")
	}

	return response.Success(c, "Assignment deleted successfully", nil)
}
