package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"foodify/internal/core/dataset"
	"foodify/internal/core/logger"
	"foodify/internal/features/deals/domain"
	"foodify/internal/features/deals/ports"

	"go.uber.org/zap"
)

// SpecialView decorates a special with its derived presentation fields.
type SpecialView struct {
	domain.Special
	Savings        int    `json:"savings"`
	UrgencyColor   string `json:"urgencyColor"`
	SelloutPercent int    `json:"selloutPercent"`
}

// CountdownView is the countdown banner with the current remaining time.
type CountdownView struct {
	Title    string          `json:"title"`
	Message  string          `json:"message"`
	End      time.Time       `json:"end"`
	TimeLeft domain.TimeLeft `json:"timeLeft"`
	Expired  bool            `json:"expired"`
}

// View is the derived today's specials section.
type View struct {
	Title     string         `json:"title"`
	Subtitle  string         `json:"subtitle"`
	Countdown CountdownView  `json:"countdown"`
	Specials  []SpecialView  `json:"specials"`
	Banner    *domain.Banner `json:"banner,omitempty"`
}

// DealsService owns today's specials, the countdown clock and the
// promotional banner.
type DealsService struct {
	mu        sync.RWMutex
	title     string
	subtitle  string
	countdown domain.Countdown
	specials  []domain.Special
	left      domain.TimeLeft
	banners   ports.BannerRepository

	now      func() time.Time
	interval time.Duration
	stop     chan struct{}
	done     chan struct{}
}

// NewDealsService seeds a deals service from the bundled document. The seed
// countdown deadline must parse.
func NewDealsService(doc dataset.TodayDocument, banners ports.BannerRepository) (*DealsService, error) {
	now := time.Now

	countdown, err := domain.ParseCountdown(doc.Countdown.Title, doc.Countdown.Message, doc.Countdown.EndTime, now())
	if err != nil {
		return nil, fmt.Errorf("failed to seed deals countdown: %w", err)
	}

	specials := make([]domain.Special, 0, len(doc.Specials))
	for _, seed := range doc.Specials {
		specials = append(specials, domain.Special{
			ID:              seed.ID,
			Name:            seed.Name,
			Description:     seed.Description,
			OriginalPrice:   seed.OriginalPrice,
			DiscountedPrice: seed.DiscountedPrice,
			Discount:        seed.Discount,
			AvailableUntil:  seed.AvailableUntil,
			Image:           seed.Image,
			Tags:            seed.Tags,
			Restaurant:      seed.Restaurant,
			Rating:          seed.Rating,
			OrdersLeft:      seed.OrdersLeft,
		})
	}

	s := &DealsService{
		title:     doc.Title,
		subtitle:  doc.Subtitle,
		countdown: countdown,
		specials:  specials,
		banners:   banners,
		now:       now,
		interval:  time.Second,
	}
	s.left = countdown.Remaining(now())
	return s, nil
}

// Start launches the countdown ticker. Call Stop to tear it down; starting
// twice without an intervening Stop is a bug.
func (s *DealsService) Start() {
	s.stop = make(chan struct{})
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-s.stop:
				return
			case <-ticker.C:
				s.tick()
			}
		}
	}()
	logger.Get().Info("Deals countdown ticker started")
}

// Stop tears down the ticker and waits for the last tick to finish. After
// Stop returns no further recomputation happens.
func (s *DealsService) Stop() {
	if s.stop == nil {
		return
	}
	close(s.stop)
	<-s.done
	s.stop = nil
	logger.Get().Info("Deals countdown ticker stopped")
}

func (s *DealsService) tick() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.left = s.countdown.Remaining(s.now())
}

// View returns the derived specials section including the current banner.
// A banner read failure degrades to no banner; the deals themselves never
// fail.
func (s *DealsService) View(ctx context.Context) View {
	banner, err := s.banners.Get(ctx)
	if err != nil {
		logger.Get().Warn("Failed to read promotional banner", zap.Error(err))
		banner = nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	specials := make([]SpecialView, 0, len(s.specials))
	for _, sp := range s.specials {
		specials = append(specials, SpecialView{
			Special:        sp,
			Savings:        sp.Savings(),
			UrgencyColor:   sp.UrgencyColor(),
			SelloutPercent: sp.SelloutPercent(),
		})
	}

	return View{
		Title:     s.title,
		Subtitle:  s.subtitle,
		Countdown: s.countdownLocked(),
		Specials:  specials,
		Banner:    banner,
	}
}

// Countdown returns the current countdown snapshot.
func (s *DealsService) Countdown() CountdownView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.countdownLocked()
}

func (s *DealsService) countdownLocked() CountdownView {
	return CountdownView{
		Title:    s.countdown.Title,
		Message:  s.countdown.Message,
		End:      s.countdown.End,
		TimeLeft: s.left,
		Expired:  s.left.Expired(),
	}
}

// Banner returns the active promotional banner, or nil when none is set.
func (s *DealsService) Banner(ctx context.Context) (*domain.Banner, error) {
	return s.banners.Get(ctx)
}

// SetBanner validates and stores the promotional banner.
func (s *DealsService) SetBanner(ctx context.Context, banner domain.Banner, ttl time.Duration) error {
	if err := banner.Validate(); err != nil {
		return err
	}
	if err := s.banners.Set(ctx, banner, ttl); err != nil {
		return err
	}
	logger.Get().Info("Promotional banner set",
		zap.String("title", banner.Title),
		zap.String("theme", banner.Theme),
		zap.Duration("ttl", ttl),
	)
	return nil
}

// ClearBanner removes the promotional banner.
func (s *DealsService) ClearBanner(ctx context.Context) error {
	return s.banners.Clear(ctx)
}
