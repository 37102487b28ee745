// Package dataset loads the bundled seed documents that stand in for a
// backend. Every view reads one immutable JSON document at startup with the
// fixed shape {title, subtitle, filters, <collection>, stats?}; all runtime
// mutation happens on working copies owned by the feature services.
package dataset

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"

	"golang.org/x/sync/errgroup"
)

//go:embed seed/*.json
var seedFS embed.FS

// Bundle holds every parsed seed document.
type Bundle struct {
	Cart        CartDocument
	Favorites   FavoritesDocument
	Orders      OrdersDocument
	Restaurants RestaurantsDocument
	Today       TodayDocument
}

// CartDocument seeds the cart view.
type CartDocument struct {
	Title       string            `json:"title"`
	Subtitle    string            `json:"subtitle"`
	Filters     []string          `json:"filters"`
	Address     AddressInfo       `json:"address"`
	Coupons     []CouponInfo      `json:"coupons"`
	Items       []CartItem        `json:"items"`
	Recommended []RecommendedItem `json:"recommended"`
}

// AddressInfo is the delivery address block shown above the cart.
type AddressInfo struct {
	Label             string `json:"label"`
	Street            string `json:"street"`
	ETA               string `json:"eta"`
	FreeDeliveryAbove int    `json:"freeDeliveryAbove"`
}

// CouponInfo is an advertised coupon code.
type CouponInfo struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// CartItem is a seeded cart line.
type CartItem struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Restaurant   string   `json:"restaurant"`
	Price        int      `json:"price"`
	Quantity     int      `json:"quantity"`
	Image        string   `json:"image"`
	Tags         []string `json:"tags"`
	DeliveryTime string   `json:"deliveryTime"`
}

// RecommendedItem is a cross-sell suggestion shown under the cart.
type RecommendedItem struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
	Image string `json:"image"`
}

// FavoritesDocument seeds the favorites view.
type FavoritesDocument struct {
	Title     string         `json:"title"`
	Subtitle  string         `json:"subtitle"`
	Filters   []string       `json:"filters"`
	Favorites []FavoriteItem `json:"favorites"`
}

// FavoriteItem is a seeded favorite.
type FavoriteItem struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Restaurant   string   `json:"restaurant"`
	Rating       float64  `json:"rating"`
	DeliveryTime string   `json:"deliveryTime"`
	Price        int      `json:"price"`
	Image        string   `json:"image"`
	Tags         []string `json:"tags"`
	Cuisine      string   `json:"cuisine"`
	AddedDate    string   `json:"addedDate"`
}

// OrdersDocument seeds the order history view.
type OrdersDocument struct {
	Title    string      `json:"title"`
	Subtitle string      `json:"subtitle"`
	Filters  []string    `json:"filters"`
	Stats    OrderStats  `json:"stats"`
	Orders   []OrderSeed `json:"orders"`
}

// OrderStats carries the lifetime figures that cannot be derived from the
// bundled order window.
type OrderStats struct {
	CurrentMonthOrders  int     `json:"currentMonthOrders"`
	FavoriteRestaurant  string  `json:"favoriteRestaurant"`
	AverageDeliveryTime string  `json:"averageDeliveryTime"`
	AverageRating       float64 `json:"averageRating"`
}

// OrderSeed is a seeded order record.
type OrderSeed struct {
	ID                string          `json:"id"`
	Restaurant        string          `json:"restaurant"`
	Status            string          `json:"status"`
	StatusText        string          `json:"statusText"`
	Date              string          `json:"date"`
	Time              string          `json:"time"`
	Items             []OrderLineSeed `json:"items"`
	TotalAmount       int             `json:"totalAmount"`
	DeliveryAddress   string          `json:"deliveryAddress"`
	RiderName         string          `json:"riderName,omitempty"`
	RiderPhone        string          `json:"riderPhone,omitempty"`
	PaymentMethod     string          `json:"paymentMethod"`
	EstimatedDelivery string          `json:"estimatedDelivery"`
	ActualDelivery    string          `json:"actualDelivery,omitempty"`
	Rating            int             `json:"rating,omitempty"`
	CanReorder        bool            `json:"canReorder"`
}

// OrderLineSeed is one ordered item within a seeded order.
type OrderLineSeed struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    int    `json:"price"`
}

// RestaurantsDocument seeds the restaurants section.
type RestaurantsDocument struct {
	Title       string           `json:"title"`
	Subtitle    string           `json:"subtitle"`
	Filters     []string         `json:"filters"`
	Restaurants []RestaurantSeed `json:"restaurants"`
}

// RestaurantSeed is a seeded restaurant card.
type RestaurantSeed struct {
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

// TodayDocument seeds the today's specials section.
type TodayDocument struct {
	Title     string        `json:"title"`
	Subtitle  string        `json:"subtitle"`
	Countdown CountdownSeed `json:"countdown"`
	Specials  []SpecialSeed `json:"specials"`
}

// CountdownSeed configures the promotional countdown banner.
type CountdownSeed struct {
	Title   string `json:"title"`
	EndTime string `json:"endTime"` // "HH:MM", 24-hour wall clock
	Message string `json:"message"`
}

// SpecialSeed is a seeded limited-time deal.
type SpecialSeed struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	OriginalPrice   int      `json:"originalPrice"`
	DiscountedPrice int      `json:"discountedPrice"`
	Discount        string   `json:"discount"`
	AvailableUntil  string   `json:"availableUntil"`
	Image           string   `json:"image"`
	Tags            []string `json:"tags"`
	Restaurant      string   `json:"restaurant"`
	Rating          float64  `json:"rating"`
	OrdersLeft      int      `json:"ordersLeft"`
}

// Load parses every seed document concurrently and returns the bundle.
func Load(ctx context.Context) (*Bundle, error) {
	var b Bundle

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error { return parse("seed/cart.json", &b.Cart) })
	g.Go(func() error { return parse("seed/favorites.json", &b.Favorites) })
	g.Go(func() error { return parse("seed/orders.json", &b.Orders) })
	g.Go(func() error { return parse("seed/restaurants.json", &b.Restaurants) })
	g.Go(func() error { return parse("seed/today.json", &b.Today) })

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &b, nil
}

func parse(name string, out any) error {
	data, err := seedFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("failed to read seed document %s: %w", name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse seed document %s: %w", name, err)
	}
	return nil
}
