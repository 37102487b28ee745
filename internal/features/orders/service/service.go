package service

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"foodify/internal/core/dataset"
	"foodify/internal/core/logger"
	"foodify/internal/features/orders/domain"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

var (
	// ErrOrderNotFound is returned when no order with the given id exists.
	ErrOrderNotFound = errors.New("order not found")
	// ErrInvalidTransition is returned when the lifecycle forbids the
	// requested status change.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrNotRateable is returned when rating an order that is not delivered
	// or was already rated.
	ErrNotRateable = errors.New("order cannot be rated")
	// ErrInvalidRating is returned for ratings outside 1 to 5.
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	// ErrReorderUnavailable is returned when the order is not flagged for
	// reordering.
	ErrReorderUnavailable = errors.New("order cannot be reordered")
)

// FilterAll shows every order regardless of status.
const FilterAll = "All"

// filterStatuses maps each filter chip label to the statuses it admits.
// Pending is an alias kept for the chip row; kitchen-side it is the same
// state as Preparing.
var filterStatuses = map[string][]domain.Status{
	"Pending":    {domain.StatusPreparing},
	"Preparing":  {domain.StatusPreparing},
	"On The Way": {domain.StatusOnTheWay},
	"Delivered":  {domain.StatusDelivered},
	"Cancelled":  {domain.StatusCancelled},
}

// Stats is the figures strip above the order list. TotalOrders, TotalSpent
// and the per-status counts are derived from the order collection; the rest
// come from the seed because the bundled window is too small to derive them.
type Stats struct {
	TotalOrders         int                   `json:"totalOrders"`
	TotalSpent          int                   `json:"totalSpent"`
	StatusCounts        map[domain.Status]int `json:"statusCounts"`
	CurrentMonthOrders  int                   `json:"currentMonthOrders"`
	FavoriteRestaurant  string                `json:"favoriteRestaurant"`
	AverageDeliveryTime string                `json:"averageDeliveryTime"`
	AverageRating       float64               `json:"averageRating"`
}

// OrderView decorates an order with its derived presentation fields.
type OrderView struct {
	domain.Order
	Style      domain.Style          `json:"style"`
	ItemsTotal int                   `json:"itemsTotal"`
	Progress   []domain.ProgressStep `json:"progress,omitempty"`
}

// View is the derived order history view for one filter.
type View struct {
	Title        string      `json:"title"`
	Subtitle     string      `json:"subtitle"`
	Filters      []string    `json:"filters"`
	ActiveFilter string      `json:"activeFilter"`
	Stats        Stats       `json:"stats"`
	Current      []OrderView `json:"current"`
	History      []OrderView `json:"history"`
}

// OrdersService owns the order history working copy.
type OrdersService struct {
	mu        sync.RWMutex
	title     string
	subtitle  string
	filters   []string
	seedStats dataset.OrderStats
	orders    []domain.Order

	now func() time.Time
}

// NewOrdersService seeds an orders service from the bundled document. Seed
// records whose stored total disagrees with their line items are kept but
// logged; the line items are authoritative for the derived items total.
func NewOrdersService(doc dataset.OrdersDocument) *OrdersService {
	orders := make([]domain.Order, 0, len(doc.Orders))
	for _, seed := range doc.Orders {
		lines := make([]domain.Line, 0, len(seed.Items))
		for _, l := range seed.Items {
			lines = append(lines, domain.Line{Name: l.Name, Quantity: l.Quantity, Price: l.Price})
		}
		order := domain.Order{
			ID:                seed.ID,
			Restaurant:        seed.Restaurant,
			Status:            domain.Status(seed.Status),
			StatusText:        seed.StatusText,
			Date:              seed.Date,
			Time:              seed.Time,
			Items:             lines,
			TotalAmount:       seed.TotalAmount,
			DeliveryAddress:   seed.DeliveryAddress,
			RiderName:         seed.RiderName,
			RiderPhone:        seed.RiderPhone,
			PaymentMethod:     seed.PaymentMethod,
			EstimatedDelivery: seed.EstimatedDelivery,
			ActualDelivery:    seed.ActualDelivery,
			Rating:            seed.Rating,
			CanReorder:        seed.CanReorder,
		}
		if !order.Status.Valid() {
			logger.Get().Warn("Unknown status in orders seed",
				zap.String("order_id", order.ID),
				zap.String("status", seed.Status),
			)
		}
		if order.TotalAmount != order.ItemsTotal() {
			logger.Get().Warn("Seed order total disagrees with its line items",
				zap.String("order_id", order.ID),
				zap.Int("totalAmount", order.TotalAmount),
				zap.Int("itemsTotal", order.ItemsTotal()),
			)
		}
		orders = append(orders, order)
	}

	return &OrdersService{
		title:     doc.Title,
		subtitle:  doc.Subtitle,
		filters:   doc.Filters,
		seedStats: doc.Stats,
		orders:    orders,
		now:       time.Now,
	}
}

// View runs the order history pipeline for one filter chip. The filter
// narrows the whole collection before the current/history split, so a
// terminal-status chip leaves the current section empty. An unknown filter
// degrades to All.
func (s *OrdersService) View(filter string) View {
	if filter == "" {
		filter = FilterAll
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	admitted := func(st domain.Status) bool { return true }
	if filter != FilterAll {
		statuses, ok := filterStatuses[filter]
		if ok {
			admitted = func(st domain.Status) bool {
				for _, want := range statuses {
					if st == want {
						return true
					}
				}
				return false
			}
		}
	}

	current := make([]OrderView, 0)
	history := make([]OrderView, 0)
	for _, order := range s.orders {
		if !admitted(order.Status) {
			continue
		}
		view := decorate(order)
		if order.Status.Active() {
			current = append(current, view)
		} else {
			history = append(history, view)
		}
	}

	return View{
		Title:        s.title,
		Subtitle:     s.subtitle,
		Filters:      s.filters,
		ActiveFilter: filter,
		Stats:        s.statsLocked(),
		Current:      current,
		History:      history,
	}
}

// Get returns one decorated order.
func (s *OrdersService) Get(id string) (OrderView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, _, err := s.findLocked(id)
	if err != nil {
		return OrderView{}, err
	}
	return decorate(*order), nil
}

// Cancel moves an order to cancelled if the lifecycle permits it.
func (s *OrdersService) Cancel(id string) (OrderView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, _, err := s.findLocked(id)
	if err != nil {
		return OrderView{}, err
	}
	if !order.Status.CanTransitionTo(domain.StatusCancelled) {
		return OrderView{}, fmt.Errorf("%w: %s to cancelled", ErrInvalidTransition, order.Status)
	}

	order.Status = domain.StatusCancelled
	order.StatusText = "Cancelled"
	order.RiderName = ""
	order.RiderPhone = ""
	logger.Get().Info("Order cancelled", zap.String("order_id", id))
	return decorate(*order), nil
}

// Rate records a 1 to 5 rating on a delivered, unrated order.
func (s *OrdersService) Rate(id string, rating int) (OrderView, error) {
	if rating < 1 || rating > 5 {
		return OrderView{}, ErrInvalidRating
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	order, _, err := s.findLocked(id)
	if err != nil {
		return OrderView{}, err
	}
	if order.Status != domain.StatusDelivered || order.Rated() {
		return OrderView{}, ErrNotRateable
	}

	order.Rating = rating
	logger.Get().Info("Order rated",
		zap.String("order_id", id),
		zap.Int("rating", rating),
	)
	return decorate(*order), nil
}

// Reorder creates a fresh preparing order with the same line items at their
// original prices. The source order must carry the reorder flag.
func (s *OrdersService) Reorder(id string) (OrderView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	source, _, err := s.findLocked(id)
	if err != nil {
		return OrderView{}, err
	}
	if !source.CanReorder {
		return OrderView{}, fmt.Errorf("%w: %s", ErrReorderUnavailable, id)
	}

	now := s.now()
	lines := make([]domain.Line, len(source.Items))
	copy(lines, source.Items)

	order := domain.Order{
		ID:                "ORD-" + strings.ToUpper(uuid.NewString()[:8]),
		Restaurant:        source.Restaurant,
		Status:            domain.StatusPreparing,
		StatusText:        "Being Prepared",
		Date:              now.Format("Jan 2, 2006"),
		Time:              now.Format("3:04 PM"),
		Items:             lines,
		DeliveryAddress:   source.DeliveryAddress,
		PaymentMethod:     source.PaymentMethod,
		EstimatedDelivery: now.Add(40 * time.Minute).Format("3:04 PM"),
	}
	order.TotalAmount = order.ItemsTotal()

	s.orders = append([]domain.Order{order}, s.orders...)
	logger.Get().Info("Order placed from reorder",
		zap.String("order_id", order.ID),
		zap.String("source_order_id", id),
	)
	return decorate(order), nil
}

// TrackingQR renders the order's deep link as a PNG QR code.
func (s *OrdersService) TrackingQR(id string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, _, err := s.findLocked(id); err != nil {
		return nil, err
	}

	png, err := qrcode.Encode("foodify://orders/"+id, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("failed to encode tracking QR for %s: %w", id, err)
	}
	return png, nil
}

func (s *OrdersService) statsLocked() Stats {
	spent := 0
	counts := make(map[domain.Status]int)
	for _, order := range s.orders {
		spent += order.TotalAmount
		counts[order.Status]++
	}
	return Stats{
		TotalOrders:         len(s.orders),
		TotalSpent:          spent,
		StatusCounts:        counts,
		CurrentMonthOrders:  s.seedStats.CurrentMonthOrders,
		FavoriteRestaurant:  s.seedStats.FavoriteRestaurant,
		AverageDeliveryTime: s.seedStats.AverageDeliveryTime,
		AverageRating:       s.seedStats.AverageRating,
	}
}

func (s *OrdersService) findLocked(id string) (*domain.Order, int, error) {
	for i := range s.orders {
		if s.orders[i].ID == id {
			return &s.orders[i], i, nil
		}
	}
	return nil, -1, fmt.Errorf("%w: %s", ErrOrderNotFound, id)
}

func decorate(order domain.Order) OrderView {
	return OrderView{
		Order:      order,
		Style:      domain.StatusStyle(order.Status),
		ItemsTotal: order.ItemsTotal(),
		Progress:   domain.Progress(order.Status),
	}
}
