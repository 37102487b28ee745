package service

import (
	"errors"
	"slices"
	"sync"
	"time"

	"foodify/internal/core/dataset"
	"foodify/internal/core/logger"
	"foodify/internal/core/pipeline"
	"foodify/internal/features/favorites/domain"

	"go.uber.org/zap"
)

// ErrItemNotFound is returned when no favorite with the given id exists.
var ErrItemNotFound = errors.New("favorite not found")

// View is the derived favorites view for one filter/sort combination.
type View struct {
	Title          string        `json:"title"`
	Subtitle       string        `json:"subtitle"`
	Categories     []string      `json:"categories"`
	ActiveCategory string        `json:"activeCategory"`
	SortBy         string        `json:"sortBy"`
	Items          []domain.Item `json:"items"`
	TotalCount     int           `json:"totalCount"`
	Selected       []int         `json:"selected"`
}

// FavoritesService owns the favorites working copy and the per-view
// selection state.
type FavoritesService struct {
	mu         sync.RWMutex
	title      string
	subtitle   string
	categories []string
	items      []domain.Item
	selected   map[int]struct{}
}

// NewFavoritesService seeds a favorites service from the bundled document.
// Seed entries with unparseable added dates keep a zero timestamp and sort
// last under the recent key.
func NewFavoritesService(doc dataset.FavoritesDocument) *FavoritesService {
	items := make([]domain.Item, 0, len(doc.Favorites))
	for _, f := range doc.Favorites {
		added, err := time.Parse("2006-01-02", f.AddedDate)
		if err != nil {
			logger.Get().Warn("Unparseable addedDate in favorites seed",
				zap.Int("item_id", f.ID),
				zap.String("addedDate", f.AddedDate),
			)
		}
		items = append(items, domain.Item{
			ID:           f.ID,
			Name:         f.Name,
			Restaurant:   f.Restaurant,
			Rating:       f.Rating,
			DeliveryTime: f.DeliveryTime,
			Price:        f.Price,
			Image:        f.Image,
			Tags:         f.Tags,
			Cuisine:      f.Cuisine,
			AddedAt:      added,
		})
	}

	return &FavoritesService{
		title:      doc.Title,
		subtitle:   doc.Subtitle,
		categories: doc.Filters,
		items:      items,
		selected:   make(map[int]struct{}),
	}
}

// View runs the derived-view pipeline for the given category and sort key.
// A category with no table entry and an unknown sort key both degrade to
// identity behavior; the view never fails.
func (s *FavoritesService) View(category, sortKey string) View {
	if category == "" {
		category = pipeline.CategoryAll
	}
	if sortKey == "" {
		sortKey = domain.SortRecent
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	filtered := pipeline.Filter(s.items, category, domain.CategoryKeywords[category],
		func(i domain.Item) string { return i.Cuisine },
		func(i domain.Item) []string { return i.Tags },
	)
	sorted := pipeline.SortBy(filtered, sortKey, domain.Comparators)

	selected := make([]int, 0, len(s.selected))
	for id := range s.selected {
		selected = append(selected, id)
	}
	slices.Sort(selected)

	return View{
		Title:          s.title,
		Subtitle:       s.subtitle,
		Categories:     s.categories,
		ActiveCategory: category,
		SortBy:         sortKey,
		Items:          sorted,
		TotalCount:     len(s.items),
		Selected:       selected,
	}
}

// ToggleSelect flips the selection state of a favorite and reports the new
// state.
func (s *FavoritesService) ToggleSelect(id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.contains(id) {
		return false, ErrItemNotFound
	}

	if _, ok := s.selected[id]; ok {
		delete(s.selected, id)
		return false, nil
	}
	s.selected[id] = struct{}{}
	return true, nil
}

// Remove deletes a favorite and drops it from the selection set. Removing an
// absent id is a no-op.
func (s *FavoritesService) Remove(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.removeLocked(id)
}

// RemoveSelected deletes every selected favorite, clears the selection set
// and reports how many items were removed.
func (s *FavoritesService) RemoveSelected() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id := range s.selected {
		if s.removeLocked(id) {
			removed++
		}
	}
	s.selected = make(map[int]struct{})
	return removed
}

// Clear empties the favorites collection and the selection set.
func (s *FavoritesService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = s.items[:0]
	s.selected = make(map[int]struct{})
}

// AddToCart records the intent to add a favorite to the cart. The cart
// collection is owned by its own view and is not mutated from here.
func (s *FavoritesService) AddToCart(id int) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.contains(id) {
		return ErrItemNotFound
	}
	logger.Get().Info("Favorite added to cart", zap.Int("item_id", id))
	return nil
}

// AddSelectedToCart records the add-to-cart intent for every selected
// favorite and reports the count. The selection survives so the user can
// still bulk-remove afterwards.
func (s *FavoritesService) AddSelectedToCart() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for id := range s.selected {
		logger.Get().Info("Favorite added to cart", zap.Int("item_id", id))
	}
	return len(s.selected)
}

// OrderAll records the intent to order every favorite and reports the count.
func (s *FavoritesService) OrderAll() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	logger.Get().Info("Ordering all favorites", zap.Int("count", len(s.items)))
	return len(s.items)
}

func (s *FavoritesService) contains(id int) bool {
	for _, item := range s.items {
		if item.ID == id {
			return true
		}
	}
	return false
}

func (s *FavoritesService) removeLocked(id int) bool {
	for i, item := range s.items {
		if item.ID == id {
			s.items = slices.Delete(s.items, i, i+1)
			delete(s.selected, id)
			return true
		}
	}
	return false
}
