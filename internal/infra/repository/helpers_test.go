//go:build unit

package repository

import (
	"testing"
	"time"

	"hotel-inventory/internal/domain/booking"
	"hotel-inventory/internal/domain/calendar"
	"hotel-inventory/internal/domain/inventory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func mustProperty(t *testing.T) *inventory.Property {
	t.Helper()
	p, err := inventory.NewProperty(inventory.PropertySpec{Code: "sea", Name: "Seaside"})
	require.NoError(t, err)
	return p
}

func mustBooking(t *testing.T) *booking.Booking {
	t.Helper()
	stay, err := calendar.NewDateRange(calendar.MustParseDate("2024-03-01"), calendar.MustParseDate("2024-03-04"))
	require.NoError(t, err)
	occ, err := booking.NewOccupancy(2, 0, 0)
	require.NoError(t, err)
	return booking.NewBooking(booking.NewParams{
		PropertyID: uuid.New(),
		Stay:       stay,
		Occupancy:  occ,
		CreatedBy:  uuid.New(),
	}, "B-2024-0001", time.Date(2024, 2, 20, 9, 0, 0, 0, time.UTC))
}
