package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBadgeText(t *testing.T) {
	assert.Equal(t, "", BadgeText(0))
	assert.Equal(t, "", BadgeText(-2))
	assert.Equal(t, "3", BadgeText(3))
	assert.Equal(t, "9", BadgeText(9))
	assert.Equal(t, "9+", BadgeText(10))
	assert.Equal(t, "9+", BadgeText(120))
}

func TestVariantOptions(t *testing.T) {
	basic, err := VariantOptions(VariantBasic, 2, 0)
	require.NoError(t, err)
	assert.False(t, basic.ShowSearch)
	assert.False(t, basic.ShowAuth)
	assert.Equal(t, 2, basic.CartBadge)

	search, err := VariantOptions(VariantSearch, 0, 0)
	require.NoError(t, err)
	assert.True(t, search.ShowSearch)
	assert.False(t, search.ShowAuth)

	full, err := VariantOptions(VariantFull, 0, 0)
	require.NoError(t, err)
	assert.True(t, full.ShowSearch)
	assert.True(t, full.ShowAuth)

	_, err = VariantOptions("compact", 0, 0)
	var unknown ErrUnknownVariant
	assert.ErrorAs(t, err, &unknown)
}

func TestBuildNav(t *testing.T) {
	t.Run("CartBadgeClamps", func(t *testing.T) {
		nav := BuildNav(Options{CartBadge: 14})
		require.Len(t, nav.Actions, 2)
		assert.Equal(t, "9+", nav.Actions[1].Badge)
	})

	t.Run("NotificationsOnlyWhenPresent", func(t *testing.T) {
		nav := BuildNav(Options{})
		for _, action := range nav.Actions {
			assert.NotEqual(t, "Notifications", action.Label)
		}

		nav = BuildNav(Options{Notifications: 3})
		assert.Equal(t, "Notifications", nav.Actions[2].Label)
		assert.Equal(t, "3", nav.Actions[2].Badge)
	})

	t.Run("AuthGuest", func(t *testing.T) {
		nav := BuildNav(Options{ShowAuth: true})
		labels := make([]string, 0, len(nav.Actions))
		for _, action := range nav.Actions {
			labels = append(labels, action.Label)
		}
		assert.Contains(t, labels, "Login")
		assert.Contains(t, labels, "Sign Up")
	})

	t.Run("AuthSignedIn", func(t *testing.T) {
		nav := BuildNav(Options{ShowAuth: true, Authenticated: true, UserName: "Sara"})
		assert.Equal(t, "Sara", nav.Actions[len(nav.Actions)-1].Label)

		nav = BuildNav(Options{ShowAuth: true, Authenticated: true})
		assert.Equal(t, "Account", nav.Actions[len(nav.Actions)-1].Label)
	})
}

func TestFooter(t *testing.T) {
	footer := Footer()
	assert.Equal(t, "Foodify", footer.Brand)
	require.Len(t, footer.Columns, 3)
	assert.Equal(t, "Company", footer.Columns[0].Title)
}
