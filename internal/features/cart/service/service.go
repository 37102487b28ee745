package service

import (
	"errors"
	"strings"
	"sync"

	"foodify/internal/core/dataset"
	"foodify/internal/core/logger"
	"foodify/internal/features/cart/domain"

	"go.uber.org/zap"
)

// ErrItemNotFound is returned when the cart holds no line with the given id.
var ErrItemNotFound = errors.New("cart item not found")

// ErrEmptyCart is returned when checkout is attempted on an empty cart.
var ErrEmptyCart = errors.New("cart is empty")

// ErrUnknownCoupon is returned when a coupon code is not advertised.
var ErrUnknownCoupon = errors.New("unknown coupon code")

// View is the full derived cart view.
type View struct {
	Title       string               `json:"title"`
	Subtitle    string               `json:"subtitle"`
	Address     domain.Address       `json:"address"`
	Items       []domain.Item        `json:"items"`
	Recommended []domain.Recommended `json:"recommended"`
	Coupons     []domain.Coupon      `json:"coupons"`
	Summary     domain.Summary       `json:"summary"`
}

// CartService owns the cart's working copy and view state. The collection is
// seeded once from the bundled document and mutated only through the
// quantity/removal operations below.
type CartService struct {
	mu          sync.RWMutex
	title       string
	subtitle    string
	address     domain.Address
	coupons     []domain.Coupon
	recommended []domain.Recommended
	items       []domain.Item
	pricing     domain.Pricing
}

// NewCartService seeds a cart service from the bundled document.
func NewCartService(doc dataset.CartDocument, pricing domain.Pricing) *CartService {
	items := make([]domain.Item, 0, len(doc.Items))
	for _, it := range doc.Items {
		qty := it.Quantity
		if qty < 1 {
			qty = 1
		}
		items = append(items, domain.Item{
			ID:           it.ID,
			Name:         it.Name,
			Restaurant:   it.Restaurant,
			Price:        it.Price,
			Quantity:     qty,
			Image:        it.Image,
			Tags:         it.Tags,
			DeliveryTime: it.DeliveryTime,
		})
	}

	coupons := make([]domain.Coupon, 0, len(doc.Coupons))
	for _, c := range doc.Coupons {
		coupons = append(coupons, domain.Coupon{Code: c.Code, Label: c.Label})
	}

	recommended := make([]domain.Recommended, 0, len(doc.Recommended))
	for _, r := range doc.Recommended {
		recommended = append(recommended, domain.Recommended{Name: r.Name, Price: r.Price, Image: r.Image})
	}

	return &CartService{
		title:    doc.Title,
		subtitle: doc.Subtitle,
		address: domain.Address{
			Label:             doc.Address.Label,
			Street:            doc.Address.Street,
			ETA:               doc.Address.ETA,
			FreeDeliveryAbove: doc.Address.FreeDeliveryAbove,
		},
		coupons:     coupons,
		recommended: recommended,
		items:       items,
		pricing:     pricing,
	}
}

// View returns the derived cart view: current lines plus aggregates.
func (s *CartService) View() View {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]domain.Item, len(s.items))
	copy(items, s.items)

	return View{
		Title:       s.title,
		Subtitle:    s.subtitle,
		Address:     s.address,
		Items:       items,
		Recommended: s.recommended,
		Coupons:     s.coupons,
		Summary:     domain.Summarize(items, s.pricing),
	}
}

// SetQuantity replaces the quantity for the given line. Quantities below 1
// are silently rejected, leaving the line unchanged.
func (s *CartService) SetQuantity(id, quantity int) error {
	if quantity < 1 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = quantity
			return nil
		}
	}
	return ErrItemNotFound
}

// Remove deletes the line with the given id. Removing an absent id is a
// no-op, not an error.
func (s *CartService) Remove(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]
	for _, item := range s.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	s.items = kept
}

// SaveToFavorites records the intent to favorite a cart line. The favorites
// collection is owned by its own view and is not mutated from here.
func (s *CartService) SaveToFavorites(id int) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.items {
		if item.ID == id {
			logger.Get().Info("Cart item saved to favorites",
				zap.Int("item_id", id),
				zap.String("name", item.Name),
			)
			return nil
		}
	}
	return ErrItemNotFound
}

// ApplyCoupon validates a coupon code against the advertised codes. Applying
// a coupon is recorded but never recomputes the fee constants.
func (s *CartService) ApplyCoupon(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return ErrUnknownCoupon
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.coupons {
		if strings.EqualFold(c.Code, code) {
			logger.Get().Info("Coupon applied", zap.String("code", c.Code))
			return nil
		}
	}
	return ErrUnknownCoupon
}

// Checkout validates the cart and returns the final summary. An empty cart
// cannot be checked out.
func (s *CartService) Checkout() (domain.Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.items) == 0 {
		return domain.Summary{}, ErrEmptyCart
	}

	summary := domain.Summarize(s.items, s.pricing)
	logger.Get().Info("Proceeding to checkout",
		zap.Int("items", summary.ItemCount),
		zap.Int("total", summary.Total),
	)
	return summary, nil
}
