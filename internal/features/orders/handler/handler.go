package handler

import (
	"errors"
	"net/http"

	"foodify/internal/features/orders/service"

	"github.com/gofiber/fiber/v2"
)

// OrdersHandler handles HTTP requests for the order history view.
type OrdersHandler struct {
	service *service.OrdersService
}

// NewOrdersHandler creates a new OrdersHandler.
func NewOrdersHandler(s *service.OrdersService) *OrdersHandler {
	return &OrdersHandler{
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

// RatingRequest is the body for rating an order.
type RatingRequest struct {
	Rating int `json:"rating"`
}

// GetOrders returns the derived order history view.
// @Summary List orders
// @Description Returns current and past orders. The filter narrows the history section.
// @Tags Orders
// @Produce json
// @Param filter query string false "Status chip label (default All)"
// @Success 200 {object} service.View
// @Router /orders [get]
func (h *OrdersHandler) GetOrders(c *fiber.Ctx) error {
	view := h.service.View(c.Query("filter"))
	return c.Status(http.StatusOK).JSON(view)
}

// GetOrder returns one order with its derived presentation fields.
// @Summary Get an order
// @Tags Orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} service.OrderView
// @Failure 404 {object} ErrorResponse
// @Router /orders/{id} [get]
func (h *OrdersHandler) GetOrder(c *fiber.Ctx) error {
	order, err := h.service.Get(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Message: "Order not found",
			RayID:   rayID(c),
		})
	}
	return c.Status(http.StatusOK).JSON(order)
}

// Cancel cancels an order if its lifecycle permits it.
// @Summary Cancel an order
// @Tags Orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} service.OrderView
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /orders/{id}/cancel [post]
func (h *OrdersHandler) Cancel(c *fiber.Ctx) error {
	order, err := h.service.Cancel(c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			return c.Status(http.StatusNotFound).JSON(ErrorResponse{
				Message: "Order not found",
				RayID:   rayID(c),
			})
		case errors.Is(err, service.ErrInvalidTransition):
			return c.Status(http.StatusConflict).JSON(ErrorResponse{
				Message: "Order can no longer be cancelled",
				RayID:   rayID(c),
			})
		default:
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Message: "Internal Server Error",
				RayID:   rayID(c),
			})
		}
	}
	return c.Status(http.StatusOK).JSON(order)
}

// Rate records a rating on a delivered order.
// @Summary Rate an order
// @Tags Orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body RatingRequest true "Rating between 1 and 5"
// @Success 200 {object} service.OrderView
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /orders/{id}/rating [post]
func (h *OrdersHandler) Rate(c *fiber.Ctx) error {
	var req RatingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid request body",
			RayID:   rayID(c),
		})
	}

	order, err := h.service.Rate(c.Params("id"), req.Rating)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRating):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Message: "Rating must be between 1 and 5",
				RayID:   rayID(c),
			})
		case errors.Is(err, service.ErrOrderNotFound):
			return c.Status(http.StatusNotFound).JSON(ErrorResponse{
				Message: "Order not found",
				RayID:   rayID(c),
			})
		case errors.Is(err, service.ErrNotRateable):
			return c.Status(http.StatusConflict).JSON(ErrorResponse{
				Message: "Order cannot be rated",
				RayID:   rayID(c),
			})
		default:
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Message: "Internal Server Error",
				RayID:   rayID(c),
			})
		}
	}
	return c.Status(http.StatusOK).JSON(order)
}

// Reorder places a fresh order with the same items.
// @Summary Reorder a past order
// @Tags Orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 201 {object} service.OrderView
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /orders/{id}/reorder [post]
func (h *OrdersHandler) Reorder(c *fiber.Ctx) error {
	order, err := h.service.Reorder(c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			return c.Status(http.StatusNotFound).JSON(ErrorResponse{
				Message: "Order not found",
				RayID:   rayID(c),
			})
		case errors.Is(err, service.ErrReorderUnavailable):
			return c.Status(http.StatusConflict).JSON(ErrorResponse{
				Message: "Order cannot be reordered",
				RayID:   rayID(c),
			})
		default:
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Message: "Internal Server Error",
				RayID:   rayID(c),
			})
		}
	}
	return c.Status(http.StatusCreated).JSON(order)
}

// TrackingQR renders the order's tracking deep link as a QR code.
// @Summary Get an order tracking QR code
// @Tags Orders
// @Produce png
// @Param id path string true "Order ID"
// @Success 200 {file} binary
// @Failure 404 {object} ErrorResponse
// @Router /orders/{id}/qr [get]
func (h *OrdersHandler) TrackingQR(c *fiber.Ctx) error {
	png, err := h.service.TrackingQR(c.Params("id"))
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			return c.Status(http.StatusNotFound).JSON(ErrorResponse{
				Message: "Order not found",
				RayID:   rayID(c),
			})
		}
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Internal Server Error",
			RayID:   rayID(c),
		})
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Status(http.StatusOK).Send(png)
}
