//go:build unit

package guest_test

import (
	"testing"

	"hotel-inventory/internal/domain/guest"
	"hotel-inventory/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuickGuest(t *testing.T) {
	propertyID := uuid.New()

	g, err := guest.NewQuickGuest(propertyID, "  Ada ", "Lovelace")
	require.NoError(t, err)
	assert.Equal(t, "Ada", g.FirstName())
	assert.Equal(t, "Ada Lovelace", g.FullName())
	assert.Equal(t, propertyID, g.PropertyID())
	assert.Equal(t, guest.Profile{}, g.Profile())

	_, err = guest.NewQuickGuest(propertyID, "Ada", " ")
	assert.ErrorIs(t, err, guest.ErrNameRequired)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestNewGuestProfile(t *testing.T) {
	g, err := guest.NewGuest(uuid.New(), "Grace", "Hopper", guest.Profile{Email: "grace@example.com", Nationality: "us"})
	require.NoError(t, err)
	assert.Equal(t, "US", g.Profile().Nationality)

	_, err = guest.NewGuest(uuid.New(), "Grace", "Hopper", guest.Profile{Email: "not-an-email"})
	assert.ErrorIs(t, err, guest.ErrInvalidEmail)
}
