package response

import (
	"github.com/gofiber/fiber/v2"

	"lps-admin/internal/pkg/pagination"
)

// Response represents a standard API response
type Response struct {
	Success  bool             `json:"success"`
	Message  string           `json:"message,omitempty"`
	Data     interface{}      `json:"data,omitempty"`
	Meta     *pagination.Meta `json:"meta,omitempty"`
	Error    string           `json:"error,omitempty"`
	Fields   []string         `json:"fields,omitempty"`
	Redirect string           `json:"redirect,omitempty"`
	Warnings []string         `json:"warnings,omitempty"`
}

// Success sends a success response
func Success(c *fiber.Ctx, message string, data interface{}) error {
	return c.JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// SuccessWithWarnings sends a success response for a partially degraded view
func SuccessWithWarnings(c *fiber.Ctx, message string, data interface{}, warnings []string) error {
	return c.JSON(Response{
		Success:  true,
		Message:  message,
		Data:     data,
		Warnings: warnings,
	})
}

// Paginated sends a page of a list with its metadata
func Paginated(c *fiber.Ctx, message string, data interface{}, meta *pagination.Meta, warnings []string) error {
	return c.JSON(Response{
		Success:  true,
		Message:  message,
		Data:     data,
		Meta:     meta,
		Warnings: warnings,
	})
}

// Created sends a 201 created response
func Created(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Error sends an error response
func Error(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(Response{
		Success: false,
		Error:   message,
	})
}

// ValidationFailed sends a 400 naming the offending fields
func ValidationFailed(c *fiber.Ctx, message string, fields []string) error {
	return c.Status(fiber.StatusBadRequest).JSON(Response{
		Success: false,
		Error:   message,
		Fields:  fields,
	})
}

// BadRequest sends a 400 bad request response
func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

// Unauthorized sends a 401 telling the client to go back to the login entry
func Unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(Response{
		Success:  false,
		Error:    message,
		Redirect: "/",
	})
}

// Forbidden sends a 403 forbidden response
func Forbidden(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusForbidden, message)
}

// NotFound sends a 404 not found response
func NotFound(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusNotFound, message)
}

// Conflict sends a 409 conflict response
func Conflict(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusConflict, message)
}

// BadGateway sends a 502 when the LPS backend could not be reached
func BadGateway(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadGateway, message)
}

// InternalServerError sends a 500 internal server error response
func InternalServerError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, message)
}
