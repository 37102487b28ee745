package service

import (
	"context"
	"testing"
	"time"

	"foodify/internal/core/cache"
	"foodify/internal/core/dataset"
	"foodify/internal/features/deals/adapters"
	"foodify/internal/features/deals/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededDoc() dataset.TodayDocument {
	return dataset.TodayDocument{
		Title:    "Today's Specials",
		Subtitle: "Grab them before they're gone",
		Countdown: dataset.CountdownSeed{
			Title:   "Deals end in",
			EndTime: "23:00",
			Message: "Order before midnight",
		},
		Specials: []dataset.SpecialSeed{
			{ID: 1, Name: "Biryani Feast", OriginalPrice: 1200, DiscountedPrice: 799, OrdersLeft: 12},
			{ID: 2, Name: "Pizza Night", OriginalPrice: 1500, DiscountedPrice: 999, OrdersLeft: 3},
		},
	}
}

func setupService(t *testing.T) *DealsService {
	mr := miniredis.RunT(t)
	adapter, err := cache.NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { adapter.Close() })

	svc, err := NewDealsService(seededDoc(), adapters.NewBannerRepository(adapter))
	require.NoError(t, err)
	return svc
}

func TestNewDealsService_BadCountdown(t *testing.T) {
	doc := seededDoc()
	doc.Countdown.EndTime = "25:99"

	_, err := NewDealsService(doc, nil)
	assert.Error(t, err)
}

func TestDealsService_View(t *testing.T) {
	svc := setupService(t)

	view := svc.View(context.Background())
	assert.Equal(t, "Today's Specials", view.Title)
	require.Len(t, view.Specials, 2)

	assert.Equal(t, 401, view.Specials[0].Savings)
	assert.Equal(t, "#22c55e", view.Specials[0].UrgencyColor)
	assert.Equal(t, 40, view.Specials[0].SelloutPercent)

	assert.Equal(t, "#ef4444", view.Specials[1].UrgencyColor)
	assert.Nil(t, view.Banner)
}

func TestDealsService_Countdown(t *testing.T) {
	svc := setupService(t)

	now := time.Date(2025, time.August, 29, 20, 0, 0, 0, time.UTC)
	svc.countdown = domain.Countdown{Title: "Deals end in", End: now.Add(3 * time.Hour)}
	svc.now = func() time.Time { return now }
	svc.tick()

	countdown := svc.Countdown()
	assert.Equal(t, "Deals end in", countdown.Title)
	assert.Equal(t, domain.TimeLeft{Hours: 3}, countdown.TimeLeft)
	assert.False(t, countdown.Expired)
}

func TestDealsService_TickerTeardown(t *testing.T) {
	svc := setupService(t)
	svc.interval = time.Millisecond

	svc.Start()
	time.Sleep(20 * time.Millisecond)
	svc.Stop()

	// No recomputation after Stop returns.
	before := svc.Countdown()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, before, svc.Countdown())

	// Stop is idempotent.
	svc.Stop()
}

func TestDealsService_Banner(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	t.Run("SetAndRead", func(t *testing.T) {
		banner := domain.Banner{Title: "Weekend Feast", Message: "Flat 30% off", Theme: domain.ThemeDeal}
		require.NoError(t, svc.SetBanner(ctx, banner, time.Hour))

		got, err := svc.Banner(ctx)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, banner, *got)

		view := svc.View(ctx)
		require.NotNil(t, view.Banner)
		assert.Equal(t, "Weekend Feast", view.Banner.Title)
	})

	t.Run("InvalidRejected", func(t *testing.T) {
		err := svc.SetBanner(ctx, domain.Banner{Title: "x", Theme: "party"}, 0)
		assert.ErrorIs(t, err, domain.ErrInvalidTheme)
	})

	t.Run("Clear", func(t *testing.T) {
		require.NoError(t, svc.ClearBanner(ctx))
		got, err := svc.Banner(ctx)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}
