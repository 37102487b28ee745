package ports

import (
	"context"
	"time"

	"foodify/internal/features/deals/domain"
)

// BannerRepository stores the promotional site banner. Implementations live
// under adapters.
type BannerRepository interface {
	// Get returns the active banner, or nil when none is set.
	Get(ctx context.Context) (*domain.Banner, error)

	// Set stores the banner with the given TTL. A TTL of 0 keeps it until
	// cleared.
	Set(ctx context.Context, banner domain.Banner, ttl time.Duration) error

	// Clear removes the banner.
	Clear(ctx context.Context) error
}
