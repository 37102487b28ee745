package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"foodify/internal/core/dataset"
	"foodify/internal/features/orders/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp() (*fiber.App, *service.OrdersService) {
	doc := dataset.OrdersDocument{
		Title:   "My Orders",
		Filters: []string{"All", "Delivered", "Cancelled"},
		Orders: []dataset.OrderSeed{
			{
				ID: "ORD-1001", Restaurant: "Biryani Point", Status: "preparing",
				Items:       []dataset.OrderLineSeed{{Name: "Chicken Biryani", Quantity: 2, Price: 850}},
				TotalAmount: 1700,
			},
			{
				ID: "ORD-0990", Restaurant: "Burger Shack", Status: "delivered",
				Items:       []dataset.OrderLineSeed{{Name: "Beef Burger", Quantity: 1, Price: 650}},
				TotalAmount: 650, CanReorder: true,
			},
		},
	}
	svc := service.NewOrdersService(doc)
	h := NewOrdersHandler(svc)

	app := fiber.New()
	app.Get("/orders", h.GetOrders)
	app.Get("/orders/:id", h.GetOrder)
	app.Post("/orders/:id/cancel", h.Cancel)
	app.Post("/orders/:id/rating", h.Rate)
	app.Post("/orders/:id/reorder", h.Reorder)
	app.Get("/orders/:id/qr", h.TrackingQR)
	return app, svc
}

func TestOrdersHandler_GetOrders(t *testing.T) {
	app, _ := setupApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/orders", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var view service.View
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&view))
	assert.Len(t, view.Current, 1)
	assert.Len(t, view.History, 1)
}

func TestOrdersHandler_GetOrder(t *testing.T) {
	app, _ := setupApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/orders/ORD-0990", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/orders/ORD-9999", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestOrdersHandler_Cancel(t *testing.T) {
	app, _ := setupApp()

	resp, err := app.Test(httptest.NewRequest("POST", "/orders/ORD-1001/cancel", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Already terminal.
	resp, err = app.Test(httptest.NewRequest("POST", "/orders/ORD-1001/cancel", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestOrdersHandler_Rate(t *testing.T) {
	app, _ := setupApp()

	t.Run("Success", func(t *testing.T) {
		body, _ := json.Marshal(RatingRequest{Rating: 5})
		req := httptest.NewRequest("POST", "/orders/ORD-0990/rating", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("OutOfRange", func(t *testing.T) {
		body, _ := json.Marshal(RatingRequest{Rating: 9})
		req := httptest.NewRequest("POST", "/orders/ORD-0990/rating", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("NotRateable", func(t *testing.T) {
		body, _ := json.Marshal(RatingRequest{Rating: 4})
		req := httptest.NewRequest("POST", "/orders/ORD-1001/rating", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})
}

func TestOrdersHandler_Reorder(t *testing.T) {
	app, svc := setupApp()

	resp, err := app.Test(httptest.NewRequest("POST", "/orders/ORD-0990/reorder", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var order service.OrderView
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&order))
	assert.NotEqual(t, "ORD-0990", order.ID)
	assert.Len(t, svc.View("").Current, 2)

	resp, err = app.Test(httptest.NewRequest("POST", "/orders/ORD-1001/reorder", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestOrdersHandler_TrackingQR(t *testing.T) {
	app, _ := setupApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/orders/ORD-1001/qr", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))

	png, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}
