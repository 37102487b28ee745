package service

import (
	"testing"

	"foodify/internal/core/dataset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededDoc() dataset.RestaurantsDocument {
	return dataset.RestaurantsDocument{
		Title:   "Restaurants Near You",
		Filters: []string{"🍕 Italian", "🍛 Desi", "🍜 Chinese"},
		Restaurants: []dataset.RestaurantSeed{
			{ID: 1, Name: "Biryani Point", Cuisine: "Desi", Rating: 4.8, DeliveryTime: "25-35 min", MinOrder: 500, IsOpen: true},
			{ID: 2, Name: "La Piazza", Cuisine: "Italian", Rating: 4.6, DeliveryTime: "30-40 min", MinOrder: 800, IsOpen: true, Tags: []string{"Pizza"}},
			{ID: 3, Name: "Dragon Wok", Cuisine: "Chinese", Rating: 4.4, DeliveryTime: "20-30 min", MinOrder: 600, IsOpen: false},
			{ID: 4, Name: "Burger Shack", Cuisine: "Fast Food", Rating: 4.2, DeliveryTime: "15-25 min", MinOrder: 400, IsOpen: true},
		},
	}
}

func TestRestaurantsService_View(t *testing.T) {
	svc := NewRestaurantsService(seededDoc())

	t.Run("DefaultsHideClosed", func(t *testing.T) {
		view := svc.View("", "", true)
		assert.Equal(t, "All", view.ActiveCategory)
		assert.Equal(t, "rating", view.SortBy)
		require.Len(t, view.Restaurants, 3)
		assert.Equal(t, "Biryani Point", view.Restaurants[0].Name)
		assert.Equal(t, 4, view.TotalCount)
	})

	t.Run("OpenOnlyOffShowsClosed", func(t *testing.T) {
		view := svc.View("", "", false)
		assert.Len(t, view.Restaurants, 4)
	})

	t.Run("CategoryKeywordsDeriveFromLabel", func(t *testing.T) {
		view := svc.View("🍜 Chinese", "", false)
		require.Len(t, view.Restaurants, 1)
		assert.Equal(t, "Dragon Wok", view.Restaurants[0].Name)
	})

	t.Run("TagMatch", func(t *testing.T) {
		view := svc.View("Pizza", "", true)
		require.Len(t, view.Restaurants, 1)
		assert.Equal(t, "La Piazza", view.Restaurants[0].Name)
	})

	t.Run("SortByDeliveryTime", func(t *testing.T) {
		view := svc.View("", "deliveryTime", true)
		assert.Equal(t, "Burger Shack", view.Restaurants[0].Name)
		assert.Equal(t, "La Piazza", view.Restaurants[2].Name)
	})

	t.Run("SortByMinOrder", func(t *testing.T) {
		view := svc.View("", "minOrder", true)
		assert.Equal(t, 400, view.Restaurants[0].MinOrder)
		assert.Equal(t, 800, view.Restaurants[2].MinOrder)
	})

	t.Run("UnknownSortKeepsOriginalOrder", func(t *testing.T) {
		view := svc.View("", "reviews-desc", false)
		ids := make([]int, 0, len(view.Restaurants))
		for _, r := range view.Restaurants {
			ids = append(ids, r.ID)
		}
		assert.Equal(t, []int{1, 2, 3, 4}, ids)
	})
}

func TestRestaurantsService_View_MalformedDeliveryTimeSortsLast(t *testing.T) {
	doc := seededDoc()
	doc.Restaurants = append(doc.Restaurants, dataset.RestaurantSeed{
		ID: 5, Name: "Mystery Kitchen", Cuisine: "Fusion", Rating: 4.9, DeliveryTime: "varies", IsOpen: true,
	})
	svc := NewRestaurantsService(doc)

	view := svc.View("", "deliveryTime", true)
	assert.Equal(t, "Mystery Kitchen", view.Restaurants[len(view.Restaurants)-1].Name)
}
