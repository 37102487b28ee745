package domain

import "foodify/internal/core/pipeline"

// Restaurant is one storefront card.
type Restaurant struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Cuisine      string   `json:"cuisine"`
	Rating       float64  `json:"rating"`
	Reviews      int      `json:"reviews"`
	DeliveryTime string   `json:"deliveryTime"`
	DeliveryFee  string   `json:"deliveryFee"`
	MinOrder     int      `json:"minOrder"`
	Image        string   `json:"image"`
	Tags         []string `json:"tags"`
	IsOpen       bool     `json:"isOpen"`
	Discount     string   `json:"discount"`
}

// SortRating is the default sort key.
const SortRating = "rating"

// Comparators is the sort table for the restaurants section. Delivery times
// compare by their leading minute figure; a card with a malformed time sorts
// last.
var Comparators = pipeline.ComparatorTable[Restaurant]{
	SortRating: func(a, b Restaurant) int {
		switch {
		case b.Rating > a.Rating:
			return 1
		case b.Rating < a.Rating:
			return -1
		default:
			return 0
		}
	},
	"deliveryTime": func(a, b Restaurant) int {
		return pipeline.LeadingInt(a.DeliveryTime) - pipeline.LeadingInt(b.DeliveryTime)
	},
	"minOrder": func(a, b Restaurant) int {
		return a.MinOrder - b.MinOrder
	},
}
