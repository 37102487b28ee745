package domain

import (
	"fmt"
	"strconv"
)

// Nav variants.
const (
	VariantBasic  = "basic"
	VariantSearch = "search"
	VariantFull   = "full"
)

// ErrUnknownVariant is returned for variants outside the known set.
type ErrUnknownVariant struct {
	Variant string
}

func (e ErrUnknownVariant) Error() string {
	return fmt.Sprintf("unknown nav variant %q", e.Variant)
}

// Options configures a single nav build. One component covers every page;
// the variant presets just preconfigure it.
type Options struct {
	ShowSearch    bool   `json:"showSearch"`
	ShowAuth      bool   `json:"showAuth"`
	CartBadge     int    `json:"cartBadge"`
	Notifications int    `json:"notifications"`
	Authenticated bool   `json:"authenticated"`
	UserName      string `json:"userName"`
}

// VariantOptions returns the preset for a named variant, overlaying the
// live counters.
func VariantOptions(variant string, cartBadge, notifications int) (Options, error) {
	opts := Options{CartBadge: cartBadge, Notifications: notifications}
	switch variant {
	case VariantBasic:
	case VariantSearch:
		opts.ShowSearch = true
	case VariantFull:
		opts.ShowSearch = true
		opts.ShowAuth = true
	default:
		return Options{}, ErrUnknownVariant{Variant: variant}
	}
	return opts, nil
}

// BadgeText renders a counter badge. Counts above nine clamp to "9+"; zero
// means no badge.
func BadgeText(count int) string {
	if count <= 0 {
		return ""
	}
	if count > 9 {
		return "9+"
	}
	return strconv.Itoa(count)
}

// NavItem is one entry in the nav bar.
type NavItem struct {
	Label string `json:"label"`
	Href  string `json:"href"`
	Icon  string `json:"icon,omitempty"`
	Badge string `json:"badge,omitempty"`
}

// NavConfig is the fully derived nav bar.
type NavConfig struct {
	Brand      string    `json:"brand"`
	Links      []NavItem `json:"links"`
	ShowSearch bool      `json:"showSearch"`
	Actions    []NavItem `json:"actions"`
}

// BuildNav derives the nav bar from the options.
func BuildNav(opts Options) NavConfig {
	nav := NavConfig{
		Brand:      "Foodify",
		ShowSearch: opts.ShowSearch,
		Links: []NavItem{
			{Label: "Home", Href: "/"},
			{Label: "Restaurants", Href: "/restaurants"},
			{Label: "Deals", Href: "/deals"},
			{Label: "Orders", Href: "/orders"},
		},
	}

	nav.Actions = append(nav.Actions, NavItem{
		Label: "Favorites", Href: "/favorites", Icon: "heart",
	})
	nav.Actions = append(nav.Actions, NavItem{
		Label: "Cart", Href: "/cart", Icon: "shopping-cart", Badge: BadgeText(opts.CartBadge),
	})
	if opts.Notifications > 0 {
		nav.Actions = append(nav.Actions, NavItem{
			Label: "Notifications", Href: "/notifications", Icon: "bell", Badge: BadgeText(opts.Notifications),
		})
	}
	if opts.ShowAuth {
		if opts.Authenticated {
			label := opts.UserName
			if label == "" {
				label = "Account"
			}
			nav.Actions = append(nav.Actions, NavItem{Label: label, Href: "/account", Icon: "user"})
		} else {
			nav.Actions = append(nav.Actions,
				NavItem{Label: "Login", Href: "/login"},
				NavItem{Label: "Sign Up", Href: "/signup"},
			)
		}
	}
	return nav
}

// FooterColumn is one link column in the footer.
type FooterColumn struct {
	Title string    `json:"title"`
	Links []NavItem `json:"links"`
}

// FooterConfig is the static footer.
type FooterConfig struct {
	Brand   string         `json:"brand"`
	Tagline string         `json:"tagline"`
	Columns []FooterColumn `json:"columns"`
	Legal   string         `json:"legal"`
}

// Footer returns the footer configuration.
func Footer() FooterConfig {
	return FooterConfig{
		Brand:   "Foodify",
		Tagline: "Your favorite food, delivered fast",
		Columns: []FooterColumn{
			{
				Title: "Company",
				Links: []NavItem{
					{Label: "About Us", Href: "/about"},
					{Label: "Careers", Href: "/careers"},
					{Label: "Blog", Href: "/blog"},
				},
			},
			{
				Title: "Support",
				Links: []NavItem{
					{Label: "Help Center", Href: "/help"},
					{Label: "Contact Us", Href: "/contact"},
					{Label: "Partner With Us", Href: "/partners"},
				},
			},
			{
				Title: "Legal",
				Links: []NavItem{
					{Label: "Terms of Service", Href: "/terms"},
					{Label: "Privacy Policy", Href: "/privacy"},
					{Label: "Refund Policy", Href: "/refunds"},
				},
			},
		},
		Legal: "© 2025 Foodify. All rights reserved.",
	}
}
