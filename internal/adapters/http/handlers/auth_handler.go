package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"lps-admin/internal/adapters/http/middleware"
	"lps-admin/internal/adapters/lpsapi"
	"lps-admin/internal/config"
	"lps-admin/internal/core/domain"
	"lps-admin/internal/core/services"
	"lps-admin/internal/pkg/response"
)

const msgLoginFailed = "Login failed, please check your email and password"

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cfg:         cfg,
	}
}

// Login handles staff login
// @Summary Login
// @Description Authenticate against the LPS backend and open a session
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body domain.LoginInput true "Login credentials"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 502 {object} response.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req domain.LoginInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	result, err := h.authService.Login(c.UserContext(), req)
	if err != nil {
		var apiErr *lpsapi.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode < fiber.StatusInternalServerError {
			msg := apiErr.Message
			if msg == "" {
				msg = msgLoginFailed
			}
			return response.Error(c, apiErr.StatusCode, msg)
		}
		return respondError(c, h.cfg, err, msgLoginFailed)
	}

	middleware.SetSessionCookie(c, h.cfg, result.Token, result.ExpiresAt)

	return response.Success(c, "Login successful", result)
}

// Logout handles logout
// @Summary Logout
// @Description Revoke the current session
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if sess := middleware.OptionalSession(c, h.authService); sess != nil {
		_ = h.authService.Logout(c.UserContext(), sess)
	}

	middleware.ClearSessionCookie(c, h.cfg)

	return c.JSON(response.Response{
		Success:  true,
		Message:  "Logged out successfully",
		Redirect: "/",
	})
}

// Me returns the current session user
// @Summary Get current user
// @Description Get the signed-in staff member
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	sess := middleware.CurrentSession(c)
	if sess == nil {
		return response.Unauthorized(c, "Unauthorized")
	}

	return response.Success(c, "User retrieved successfully", fiber.Map{
		"user":       sess.User,
		"expires_at": sess.ExpiresAt,
	})
}
