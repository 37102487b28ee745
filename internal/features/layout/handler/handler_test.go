package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"foodify/internal/features/layout/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp() *fiber.App {
	h := NewLayoutHandler()
	app := fiber.New()
	app.Get("/layout/nav", h.GetNav)
	app.Get("/layout/footer", h.GetFooter)
	return app
}

func TestLayoutHandler_GetNav(t *testing.T) {
	app := setupApp()

	t.Run("DefaultFullVariant", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/layout/nav?cart=12", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var nav domain.NavConfig
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&nav))
		assert.True(t, nav.ShowSearch)
		assert.Equal(t, "9+", nav.Actions[1].Badge)
	})

	t.Run("BasicVariant", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/layout/nav?variant=basic", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var nav domain.NavConfig
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&nav))
		assert.False(t, nav.ShowSearch)
	})

	t.Run("UnknownVariant", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/layout/nav?variant=compact", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestLayoutHandler_GetFooter(t *testing.T) {
	app := setupApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/layout/footer", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var footer domain.FooterConfig
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&footer))
	assert.Equal(t, "Foodify", footer.Brand)
	assert.Len(t, footer.Columns, 3)
}
