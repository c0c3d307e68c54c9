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

// CustomerHandler handles customer endpoints
type CustomerHandler struct {
	customerService *services.CustomerService
	cfg             *config.Config
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *services.CustomerService, cfg *config.Config) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
		cfg:             cfg,
	}
}

// ListCustomers handles listing customers
// @Summary List customers
// @Tags Customers
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Router /customers [get]
func (h *CustomerHandler) ListCustomers(c *fiber.Ctx) error {
	view, err := h.customerService.List(c.UserContext(), middleware.CurrentSession(c))
	if err != nil {
		return respondError(c, h.cfg, err, "Failed to list customers")
	}

	items, meta := pagination.Slice(view.Items, pagination.GetParams(c))
	return response.Paginated(c, "Customers retrieved successfully", items, meta, view.Warnings)
}

// GetCustomer handles getting a customer by ID
// @Summary Get customer by ID
// @Tags Customers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /customers/{id} [get]
func (h *CustomerHandler) GetCustomer(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return response.BadRequest(c, "Invalid customer ID")
	}

	customer, err := h.customerService.Get(c.UserContext(), middleware.CurrentSession(c), id)
	if err != nil {
		return respondError(c, h.cfg, err, "Failed to get customer")
	}

	return response.Success(c, "Customer retrieved successfully", customer)
}

// CreateCustomer handles registering a customer
// @Summary Create customer
// @Tags Customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body domain.CreateCustomerInput true "Customer data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /customers [post]
func (h *CustomerHandler) CreateCustomer(c *fiber.Ctx) error {
	var req domain.CreateCustomerInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	customer, err := h.customerService.Create(c.UserContext(), middleware.CurrentSession(c), req)
	if err != nil {
		return respondError(c, h.cfg, err, "Failed to create customer")
	}

	return response.Created(c, "Customer created successfully", customer)
}
