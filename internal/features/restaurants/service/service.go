package service

import (
	"sync"

	"foodify/internal/core/dataset"
	"foodify/internal/core/pipeline"
	"foodify/internal/features/restaurants/domain"
)

// View is the derived restaurants section for one filter/sort combination.
type View struct {
	Title          string              `json:"title"`
	Subtitle       string              `json:"subtitle"`
	Categories     []string            `json:"categories"`
	ActiveCategory string              `json:"activeCategory"`
	SortBy         string              `json:"sortBy"`
	OpenOnly       bool                `json:"openOnly"`
	Restaurants    []domain.Restaurant `json:"restaurants"`
	TotalCount     int                 `json:"totalCount"`
}

// RestaurantsService owns the restaurant listing. The listing is read-only;
// there are no mutations on this view.
type RestaurantsService struct {
	mu          sync.RWMutex
	title       string
	subtitle    string
	categories  []string
	restaurants []domain.Restaurant
}

// NewRestaurantsService seeds a restaurants service from the bundled
// document.
func NewRestaurantsService(doc dataset.RestaurantsDocument) *RestaurantsService {
	restaurants := make([]domain.Restaurant, 0, len(doc.Restaurants))
	for _, r := range doc.Restaurants {
		restaurants = append(restaurants, domain.Restaurant{
			ID:           r.ID,
			Name:         r.Name,
			Cuisine:      r.Cuisine,
			Rating:       r.Rating,
			Reviews:      r.Reviews,
			DeliveryTime: r.DeliveryTime,
			DeliveryFee:  r.DeliveryFee,
			MinOrder:     r.MinOrder,
			Image:        r.Image,
			Tags:         r.Tags,
			IsOpen:       r.IsOpen,
			Discount:     r.Discount,
		})
	}

	return &RestaurantsService{
		title:       doc.Title,
		subtitle:    doc.Subtitle,
		categories:  doc.Filters,
		restaurants: restaurants,
	}
}

// View runs the derived-view pipeline for the restaurants section. Category
// keywords are derived from the label itself, so new chips in the seed need
// no code change. Closed restaurants are hidden unless openOnly is false.
func (s *RestaurantsService) View(category, sortKey string, openOnly bool) View {
	if category == "" {
		category = pipeline.CategoryAll
	}
	if sortKey == "" {
		sortKey = domain.SortRating
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	filtered := pipeline.Filter(s.restaurants, category, pipeline.GenericKeywords(category),
		func(r domain.Restaurant) string { return r.Cuisine },
		func(r domain.Restaurant) []string { return r.Tags },
	)
	if openOnly {
		open := make([]domain.Restaurant, 0, len(filtered))
		for _, r := range filtered {
			if r.IsOpen {
				open = append(open, r)
			}
		}
		filtered = open
	}
	sorted := pipeline.SortBy(filtered, sortKey, domain.Comparators)

	return View{
		Title:          s.title,
		Subtitle:       s.subtitle,
		Categories:     s.categories,
		ActiveCategory: category,
		SortBy:         sortKey,
		OpenOnly:       openOnly,
		Restaurants:    sorted,
		TotalCount:     len(s.restaurants),
	}
}
