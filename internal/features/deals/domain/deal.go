package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Special is a limited-time deal card.
type Special struct {
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

// Savings is the absolute amount saved against the original price.
func (s Special) Savings() int {
	return s.OriginalPrice - s.DiscountedPrice
}

// UrgencyColor maps the remaining stock to the card accent. Three or fewer
// left is red, up to eight is orange, everything above is green.
func (s Special) UrgencyColor() string {
	switch {
	case s.OrdersLeft <= 3:
		return "#ef4444"
	case s.OrdersLeft <= 8:
		return "#f97316"
	default:
		return "#22c55e"
	}
}

// SelloutPercent is the sellout progress against a 20-portion batch, clamped
// to [0, 100].
func (s Special) SelloutPercent() int {
	percent := 100 - s.OrdersLeft*100/20
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

// Countdown is the promotional deadline banner. End is the next wall-clock
// occurrence of the configured time.
type Countdown struct {
	Title   string    `json:"title"`
	Message string    `json:"message"`
	End     time.Time `json:"end"`
}

// ParseCountdown resolves an "HH:MM" deadline against now. A deadline that
// already passed today rolls over to tomorrow.
func ParseCountdown(title, message, endTime string, now time.Time) (Countdown, error) {
	parts := strings.SplitN(endTime, ":", 2)
	if len(parts) != 2 {
		return Countdown{}, fmt.Errorf("invalid countdown end time %q", endTime)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return Countdown{}, fmt.Errorf("invalid countdown end time %q", endTime)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return Countdown{}, fmt.Errorf("invalid countdown end time %q", endTime)
	}

	end := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !end.After(now) {
		end = end.AddDate(0, 0, 1)
	}
	return Countdown{Title: title, Message: message, End: end}, nil
}

// TimeLeft is the remaining time split into display units.
type TimeLeft struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// Expired reports whether nothing remains.
func (t TimeLeft) Expired() bool {
	return t.Hours == 0 && t.Minutes == 0 && t.Seconds == 0
}

// Remaining computes the time left at the given instant. It is pure; calling
// it twice with the same now yields the same result.
func (c Countdown) Remaining(now time.Time) TimeLeft {
	left := c.End.Sub(now)
	if left < 0 {
		left = 0
	}
	return TimeLeft{
		Hours:   int(left / time.Hour),
		Minutes: int(left % time.Hour / time.Minute),
		Seconds: int(left % time.Minute / time.Second),
	}
}

// Banner themes.
const (
	ThemeInfo  = "info"
	ThemeDeal  = "deal"
	ThemeAlert = "alert"
)

// ErrInvalidTheme is returned for banner themes outside the known set.
var ErrInvalidTheme = errors.New("invalid banner theme")

// Banner is the admin-set promotional site banner.
type Banner struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Theme   string `json:"theme"`
}

// Validate checks the banner fields.
func (b Banner) Validate() error {
	if b.Title == "" {
		return errors.New("banner title is required")
	}
	switch b.Theme {
	case ThemeInfo, ThemeDeal, ThemeAlert:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidTheme, b.Theme)
	}
}
