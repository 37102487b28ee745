package handler

import (
	"net/http"

	"foodify/internal/features/restaurants/service"

	"github.com/gofiber/fiber/v2"
)

// RestaurantsHandler handles HTTP requests for the restaurants section.
type RestaurantsHandler struct {
	service *service.RestaurantsService
}

// NewRestaurantsHandler creates a new RestaurantsHandler.
func NewRestaurantsHandler(s *service.RestaurantsService) *RestaurantsHandler {
	return &RestaurantsHandler{
		service: s,
	}
}

// GetRestaurants returns the derived restaurants section.
// @Summary List restaurants
// @Description Returns restaurants filtered by category, ordered by the sort key. Closed restaurants are hidden unless open=false.
// @Tags Restaurants
// @Produce json
// @Param category query string false "Category label (default All)"
// @Param sort query string false "Sort key: rating, deliveryTime, minOrder"
// @Param open query bool false "Only open restaurants (default true)"
// @Success 200 {object} service.View
// @Router /restaurants [get]
func (h *RestaurantsHandler) GetRestaurants(c *fiber.Ctx) error {
	view := h.service.View(
		c.Query("category"),
		c.Query("sort"),
		c.QueryBool("open", true),
	)
	return c.Status(http.StatusOK).JSON(view)
}
