package handler

import (
	"errors"
	"net/http"

	"foodify/internal/core/logger"
	"foodify/internal/features/cart/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CartHandler handles HTTP requests for the cart view.
type CartHandler struct {
	service *service.CartService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(s *service.CartService) *CartHandler {
	return &CartHandler{
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

// QuantityRequest is the body for quantity updates.
type QuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CouponRequest is the body for coupon application.
type CouponRequest struct {
	Code string `json:"code"`
}

// GetCart returns the derived cart view.
// @Summary Get the cart
// @Description Returns the current cart lines, recommendations and the fee summary.
// @Tags Cart
// @Produce json
// @Success 200 {object} service.View
// @Router /cart [get]
func (h *CartHandler) GetCart(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(h.service.View())
}

// SetQuantity updates a line quantity.
// @Summary Set line quantity
// @Description Replaces the quantity for a cart line. Quantities below 1 are ignored.
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param body body QuantityRequest true "New quantity"
// @Success 200 {object} service.View
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /cart/items/{id}/quantity [put]
func (h *CartHandler) SetQuantity(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Item ID must be an integer",
			RayID:   rayID(c),
		})
	}

	var req QuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid request body",
			RayID:   rayID(c),
		})
	}

	if err := h.service.SetQuantity(id, req.Quantity); err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			return c.Status(http.StatusNotFound).JSON(ErrorResponse{
				Message: "Item not found",
				RayID:   rayID(c),
			})
		}
		logger.Get().Error("Failed to set quantity", zap.Int("item_id", id), zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Internal Server Error",
			RayID:   rayID(c),
		})
	}

	return c.Status(http.StatusOK).JSON(h.service.View())
}

// RemoveItem deletes a cart line.
// @Summary Remove a cart line
// @Description Removes the line with the given id. Removing an absent id succeeds.
// @Tags Cart
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} service.View
// @Failure 400 {object} ErrorResponse
// @Router /cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Item ID must be an integer",
			RayID:   rayID(c),
		})
	}

	h.service.Remove(id)
	return c.Status(http.StatusOK).JSON(h.service.View())
}

// SaveToFavorites records the intent to favorite a cart line.
// @Summary Save a cart line to favorites
// @Tags Cart
// @Produce json
// @Param id path int true "Item ID"
// @Success 202 {object} map[string]string
// @Failure 404 {object} ErrorResponse
// @Router /cart/items/{id}/favorite [post]
func (h *CartHandler) SaveToFavorites(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Item ID must be an integer",
			RayID:   rayID(c),
		})
	}

	if err := h.service.SaveToFavorites(id); err != nil {
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Message: "Item not found",
			RayID:   rayID(c),
		})
	}

	return c.Status(http.StatusAccepted).JSON(fiber.Map{
		"message": "Item saved to favorites",
	})
}

// ApplyCoupon validates and records a coupon code.
// @Summary Apply a coupon
// @Tags Cart
// @Accept json
// @Produce json
// @Param body body CouponRequest true "Coupon code"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Router /cart/coupon [post]
func (h *CartHandler) ApplyCoupon(c *fiber.Ctx) error {
	var req CouponRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid request body",
			RayID:   rayID(c),
		})
	}

	if err := h.service.ApplyCoupon(req.Code); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Unknown coupon code",
			RayID:   rayID(c),
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Coupon applied",
	})
}

// Checkout validates the cart and returns the final summary.
// @Summary Proceed to checkout
// @Tags Cart
// @Produce json
// @Success 200 {object} domain.Summary
// @Failure 409 {object} ErrorResponse
// @Router /cart/checkout [post]
func (h *CartHandler) Checkout(c *fiber.Ctx) error {
	summary, err := h.service.Checkout()
	if err != nil {
		if errors.Is(err, service.ErrEmptyCart) {
			return c.Status(http.StatusConflict).JSON(ErrorResponse{
				Message: "Cart is empty",
				RayID:   rayID(c),
			})
		}
		logger.Get().Error("Checkout failed", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Internal Server Error",
			RayID:   rayID(c),
		})
	}

	return c.Status(http.StatusOK).JSON(summary)
}
