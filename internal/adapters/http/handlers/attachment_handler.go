package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"lps-admin/internal/pkg/attachment"
	"lps-admin/internal/pkg/response"
)

// AttachmentHandler describes how attachment URLs are previewed
type AttachmentHandler struct{}

// NewAttachmentHandler creates a new attachment handler
func NewAttachmentHandler() *AttachmentHandler {
	return &AttachmentHandler{}
}

// Classify returns the preview descriptor for one attachment URL
// @Summary Classify attachment
// @Description Category, icon, file name and preview surface derived from the URL extension
// @Tags Attachments
// @Produce json
// @Security BearerAuth
// @Param url query string true "Attachment URL"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /attachments/classify [get]
func (h *AttachmentHandler) Classify(c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.Query("url"))
	if raw == "" {
		return response.ValidationFailed(c, "url is required", []string{"url"})
	}

	return response.Success(c, "Attachment classified", attachment.Describe(raw))
}
