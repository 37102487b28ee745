package handler

import (
	"errors"
	"net/http"

	"foodify/internal/features/favorites/service"

	"github.com/gofiber/fiber/v2"
)

// FavoritesHandler handles HTTP requests for the favorites view.
type FavoritesHandler struct {
	service *service.FavoritesService
}

// NewFavoritesHandler creates a new FavoritesHandler.
func NewFavoritesHandler(s *service.FavoritesService) *FavoritesHandler {
	return &FavoritesHandler{
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

// GetFavorites returns the derived favorites view.
// @Summary List favorites
// @Description Returns favorites filtered by category and ordered by the sort key.
// @Tags Favorites
// @Produce json
// @Param category query string false "Category label (default All)"
// @Param sort query string false "Sort key: recent, rating, price-low, price-high"
// @Success 200 {object} service.View
// @Router /favorites [get]
func (h *FavoritesHandler) GetFavorites(c *fiber.Ctx) error {
	view := h.service.View(c.Query("category"), c.Query("sort"))
	return c.Status(http.StatusOK).JSON(view)
}

// ToggleSelect flips the selection state of a favorite.
// @Summary Toggle favorite selection
// @Tags Favorites
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} ErrorResponse
// @Router /favorites/{id}/select [post]
func (h *FavoritesHandler) ToggleSelect(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Item ID must be an integer",
			RayID:   rayID(c),
		})
	}

	selected, err := h.service.ToggleSelect(id)
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			return c.Status(http.StatusNotFound).JSON(ErrorResponse{
				Message: "Favorite not found",
				RayID:   rayID(c),
			})
		}
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Internal Server Error",
			RayID:   rayID(c),
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"selected": selected,
	})
}

// RemoveSelected bulk-removes every selected favorite.
// @Summary Remove selected favorites
// @Tags Favorites
// @Produce json
// @Success 200 {object} map[string]int
// @Router /favorites/selected [delete]
func (h *FavoritesHandler) RemoveSelected(c *fiber.Ctx) error {
	removed := h.service.RemoveSelected()
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"removed": removed,
	})
}

// Remove deletes a single favorite.
// @Summary Remove a favorite
// @Tags Favorites
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} service.View
// @Router /favorites/{id} [delete]
func (h *FavoritesHandler) Remove(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Item ID must be an integer",
			RayID:   rayID(c),
		})
	}

	h.service.Remove(id)
	return c.Status(http.StatusOK).JSON(h.service.View(c.Query("category"), c.Query("sort")))
}

// Clear empties the favorites collection.
// @Summary Clear all favorites
// @Tags Favorites
// @Produce json
// @Success 200 {object} map[string]string
// @Router /favorites [delete]
func (h *FavoritesHandler) Clear(c *fiber.Ctx) error {
	h.service.Clear()
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Favorites cleared",
	})
}

// AddToCart records an add-to-cart intent for one favorite.
// @Summary Add a favorite to the cart
// @Tags Favorites
// @Produce json
// @Param id path int true "Item ID"
// @Success 202 {object} map[string]string
// @Failure 404 {object} ErrorResponse
// @Router /favorites/{id}/cart [post]
func (h *FavoritesHandler) AddToCart(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Item ID must be an integer",
			RayID:   rayID(c),
		})
	}

	if err := h.service.AddToCart(id); err != nil {
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Message: "Favorite not found",
			RayID:   rayID(c),
		})
	}

	return c.Status(http.StatusAccepted).JSON(fiber.Map{
		"message": "Added to cart",
	})
}

// AddSelectedToCart records add-to-cart intents for the selection.
// @Summary Add selected favorites to the cart
// @Tags Favorites
// @Produce json
// @Success 202 {object} map[string]int
// @Router /favorites/cart [post]
func (h *FavoritesHandler) AddSelectedToCart(c *fiber.Ctx) error {
	added := h.service.AddSelectedToCart()
	return c.Status(http.StatusAccepted).JSON(fiber.Map{
		"added": added,
	})
}

// OrderAll records the intent to order every favorite.
// @Summary Order all favorites
// @Tags Favorites
// @Produce json
// @Success 202 {object} map[string]int
// @Router /favorites/orders [post]
func (h *FavoritesHandler) OrderAll(c *fiber.Ctx) error {
	count := h.service.OrderAll()
	return c.Status(http.StatusAccepted).JSON(fiber.Map{
		"ordered": count,
	})
}
