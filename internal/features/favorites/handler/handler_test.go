package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"foodify/internal/core/dataset"
	"foodify/internal/features/favorites/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp() (*fiber.App, *service.FavoritesService) {
	doc := dataset.FavoritesDocument{
		Title:   "My Favorites",
		Filters: []string{"All", "🍕 Italian", "🍛 Desi"},
		Favorites: []dataset.FavoriteItem{
			{ID: 1, Name: "Chicken Biryani", Cuisine: "Desi", Rating: 4.8, Price: 850, AddedDate: "2025-08-12"},
			{ID: 2, Name: "Margherita Pizza", Cuisine: "Italian", Rating: 4.6, Price: 1100, AddedDate: "2025-08-20"},
		},
	}
	svc := service.NewFavoritesService(doc)
	h := NewFavoritesHandler(svc)

	app := fiber.New()
	app.Get("/favorites", h.GetFavorites)
	app.Post("/favorites/:id/select", h.ToggleSelect)
	app.Delete("/favorites/selected", h.RemoveSelected)
	app.Delete("/favorites/:id", h.Remove)
	app.Delete("/favorites", h.Clear)
	app.Post("/favorites/cart", h.AddSelectedToCart)
	app.Post("/favorites/:id/cart", h.AddToCart)
	app.Post("/favorites/orders", h.OrderAll)
	return app, svc
}

func TestFavoritesHandler_GetFavorites(t *testing.T) {
	app, _ := setupApp()

	t.Run("Default", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/favorites", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var view service.View
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&view))
		assert.Equal(t, "All", view.ActiveCategory)
		assert.Equal(t, "recent", view.SortBy)
		assert.Len(t, view.Items, 2)
	})

	t.Run("Filtered", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/favorites?category=%F0%9F%8D%9B+Desi", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var view service.View
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&view))
		require.Len(t, view.Items, 1)
		assert.Equal(t, "Chicken Biryani", view.Items[0].Name)
	})
}

func TestFavoritesHandler_ToggleSelect(t *testing.T) {
	app, _ := setupApp()

	resp, err := app.Test(httptest.NewRequest("POST", "/favorites/1/select", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]bool
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body["selected"])

	resp, err = app.Test(httptest.NewRequest("POST", "/favorites/99/select", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("POST", "/favorites/abc/select", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestFavoritesHandler_RemoveSelected(t *testing.T) {
	app, svc := setupApp()
	svc.ToggleSelect(1)
	svc.ToggleSelect(2)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/favorites/selected", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]int
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 2, body["removed"])
	assert.Empty(t, svc.View("", "").Items)
}

func TestFavoritesHandler_Remove(t *testing.T) {
	app, svc := setupApp()

	resp, err := app.Test(httptest.NewRequest("DELETE", "/favorites/2", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, svc.View("", "").Items, 1)
}

func TestFavoritesHandler_Clear(t *testing.T) {
	app, svc := setupApp()

	resp, err := app.Test(httptest.NewRequest("DELETE", "/favorites", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Zero(t, svc.View("", "").TotalCount)
}

func TestFavoritesHandler_CartIntents(t *testing.T) {
	app, svc := setupApp()

	resp, err := app.Test(httptest.NewRequest("POST", "/favorites/1/cart", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("POST", "/favorites/42/cart", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	svc.ToggleSelect(1)
	resp, err = app.Test(httptest.NewRequest("POST", "/favorites/cart", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)

	var body map[string]int
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 1, body["added"])

	resp, err = app.Test(httptest.NewRequest("POST", "/favorites/orders", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)

	// Intents never mutate the collection.
	assert.Equal(t, 2, svc.View("", "").TotalCount)
}
