package handler

import (
	"errors"
	"net/http"

	"foodify/internal/features/layout/domain"

	"github.com/gofiber/fiber/v2"
)

// LayoutHandler serves the derived nav and footer configurations.
type LayoutHandler struct{}

// NewLayoutHandler creates a new LayoutHandler.
func NewLayoutHandler() *LayoutHandler {
	return &LayoutHandler{}
}

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id"`
}

func rayID(c *fiber.Ctx) string {
	id, ok := c.Locals("requestid").(string)
	if !ok {
		return "unknown"
	}
	return id
}

// GetNav returns the nav bar for a variant.
// @Summary Get the nav configuration
// @Tags Layout
// @Produce json
// @Param variant query string false "Variant: basic, search or full (default full)"
// @Param cart query int false "Cart badge count"
// @Param notifications query int false "Notification badge count"
// @Success 200 {object} domain.NavConfig
// @Failure 400 {object} ErrorResponse
// @Router /layout/nav [get]
func (h *LayoutHandler) GetNav(c *fiber.Ctx) error {
	variant := c.Query("variant", domain.VariantFull)

	opts, err := domain.VariantOptions(variant, c.QueryInt("cart"), c.QueryInt("notifications"))
	if err != nil {
		var unknown domain.ErrUnknownVariant
		if errors.As(err, &unknown) {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Message: "Variant must be basic, search or full",
				RayID:   rayID(c),
			})
		}
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Internal Server Error",
			RayID:   rayID(c),
		})
	}

	return c.Status(http.StatusOK).JSON(domain.BuildNav(opts))
}

// GetFooter returns the footer configuration.
// @Summary Get the footer configuration
// @Tags Layout
// @Produce json
// @Success 200 {object} domain.FooterConfig
// @Router /layout/footer [get]
func (h *LayoutHandler) GetFooter(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(domain.Footer())
}
