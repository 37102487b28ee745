package domain

import (
	"time"

	"foodify/internal/core/pipeline"
)

// Item represents a favorited dish.
type Item struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Restaurant   string    `json:"restaurant"`
	Rating       float64   `json:"rating"`
	DeliveryTime string    `json:"deliveryTime"`
	Price        int       `json:"price"`
	Image        string    `json:"image"`
	Tags         []string  `json:"tags"`
	Cuisine      string    `json:"cuisine"`
	AddedAt      time.Time `json:"addedDate"`
}

// CategoryKeywords maps each category label to the raw keywords that define
// membership. An item belongs to a category when its cuisine or any tag
// contains one of the keywords, case-insensitively.
var CategoryKeywords = pipeline.KeywordTable{
	"🍕 Italian":   {"Italian", "Pizza"},
	"🍔 Fast Food": {"Fast Food", "Burger"},
	"🍛 Desi":      {"Desi", "Pakistani", "Biryani"},
	"🍜 Chinese":   {"Chinese", "Asian"},
	"🥗 Healthy":   {"Healthy", "Vegan", "Salad"},
	"🥩 Premium":   {"Premium", "Steak", "Grill"},
	"🥤 Drinks":    {"Beverages", "Cafe", "Shake"},
}

// SortRecent is the default sort key.
const SortRecent = "recent"

// Comparators is the sort table for the favorites view. Unknown keys fall
// through to original order.
var Comparators = pipeline.ComparatorTable[Item]{
	SortRecent: func(a, b Item) int {
		return b.AddedAt.Compare(a.AddedAt)
	},
	"rating": func(a, b Item) int {
		switch {
		case b.Rating > a.Rating:
			return 1
		case b.Rating < a.Rating:
			return -1
		default:
			return 0
		}
	},
	"price-low": func(a, b Item) int {
		return a.Price - b.Price
	},
	"price-high": func(a, b Item) int {
		return b.Price - a.Price
	},
}
