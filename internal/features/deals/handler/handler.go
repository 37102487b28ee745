package handler

import (
	"errors"
	"net/http"
	"time"

	"foodify/internal/features/deals/domain"
	"foodify/internal/features/deals/service"

	"github.com/gofiber/fiber/v2"
)

// DealsHandler handles HTTP requests for the today's specials section.
type DealsHandler struct {
	service *service.DealsService
}

// NewDealsHandler creates a new DealsHandler.
func NewDealsHandler(s *service.DealsService) *DealsHandler {
	return &DealsHandler{
		service: s,
	}
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

// BannerRequest is the body for setting the promotional banner.
type BannerRequest struct {
	Title      string `json:"title"`
	Message    string `json:"message"`
	Theme      string `json:"theme"` // info, deal or alert
	TTLSeconds int    `json:"ttlSeconds"`
}

// GetDeals returns the derived specials section.
// @Summary List today's specials
// @Tags Deals
// @Produce json
// @Success 200 {object} service.View
// @Router /deals [get]
func (h *DealsHandler) GetDeals(c *fiber.Ctx) error {
	view := h.service.View(c.Context())
	return c.Status(http.StatusOK).JSON(view)
}

// GetCountdown returns the current countdown snapshot.
// @Summary Get the deals countdown
// @Tags Deals
// @Produce json
// @Success 200 {object} service.CountdownView
// @Router /deals/countdown [get]
func (h *DealsHandler) GetCountdown(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(h.service.Countdown())
}

// GetBanner returns the active promotional banner.
// @Summary Get the promotional banner
// @Tags Deals
// @Produce json
// @Success 200 {object} domain.Banner
// @Failure 404 {object} ErrorResponse
// @Router /deals/banner [get]
func (h *DealsHandler) GetBanner(c *fiber.Ctx) error {
	banner, err := h.service.Banner(c.Context())
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Internal Server Error",
			RayID:   rayID(c),
		})
	}
	if banner == nil {
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Message: "No banner is set",
			RayID:   rayID(c),
		})
	}
	return c.Status(http.StatusOK).JSON(banner)
}

// SetBanner stores the promotional banner.
// @Summary Set the promotional banner
// @Tags Deals
// @Accept json
// @Produce json
// @Param request body BannerRequest true "Banner content"
// @Success 201 {object} domain.Banner
// @Failure 400 {object} ErrorResponse
// @Router /deals/banner [post]
func (h *DealsHandler) SetBanner(c *fiber.Ctx) error {
	var req BannerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid request body",
			RayID:   rayID(c),
		})
	}

	banner := domain.Banner{Title: req.Title, Message: req.Message, Theme: req.Theme}
	ttl := time.Duration(req.TTLSeconds) * time.Second
	if err := h.service.SetBanner(c.Context(), banner, ttl); err != nil {
		if errors.Is(err, domain.ErrInvalidTheme) {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Message: "Theme must be info, deal or alert",
				RayID:   rayID(c),
			})
		}
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID(c),
		})
	}
	return c.Status(http.StatusCreated).JSON(banner)
}

// ClearBanner removes the promotional banner.
// @Summary Clear the promotional banner
// @Tags Deals
// @Produce json
// @Success 200 {object} map[string]string
// @Router /deals/banner [delete]
func (h *DealsHandler) ClearBanner(c *fiber.Ctx) error {
	if err := h.service.ClearBanner(c.Context()); err != nil {
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Internal Server Error",
			RayID:   rayID(c),
		})
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Banner cleared",
	})
}
