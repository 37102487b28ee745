package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"foodify/internal/core/cache"
	"foodify/internal/features/deals/domain"
)

// bannerKey is where the promotional banner lives in the cache.
const bannerKey = "promo_banner"

// BannerRepository persists the promotional banner through the cache port.
type BannerRepository struct {
	cache cache.Cache
}

// NewBannerRepository creates a new BannerRepository.
func NewBannerRepository(c cache.Cache) *BannerRepository {
	return &BannerRepository{
		cache: c,
	}
}

// Get returns the active banner, or nil when none is set.
func (r *BannerRepository) Get(ctx context.Context) (*domain.Banner, error) {
	data, err := r.cache.Get(ctx, bannerKey)
	if err != nil {
		if errors.Is(err, cache.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get banner: %w", err)
	}

	var banner domain.Banner
	if err := json.Unmarshal(data, &banner); err != nil {
		return nil, fmt.Errorf("failed to unmarshal banner: %w", err)
	}
	return &banner, nil
}

// Set stores the banner with the given TTL.
func (r *BannerRepository) Set(ctx context.Context, banner domain.Banner, ttl time.Duration) error {
	data, err := json.Marshal(banner)
	if err != nil {
		return fmt.Errorf("failed to marshal banner: %w", err)
	}
	if err := r.cache.Set(ctx, bannerKey, data, ttl); err != nil {
		return fmt.Errorf("failed to set banner: %w", err)
	}
	return nil
}

// Clear removes the banner.
func (r *BannerRepository) Clear(ctx context.Context) error {
	if err := r.cache.Delete(ctx, bannerKey); err != nil {
		return fmt.Errorf("failed to clear banner: %w", err)
	}
	return nil
}
