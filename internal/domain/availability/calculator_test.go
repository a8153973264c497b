//go:build unit

package availability_test

import (
	"testing"

	"hotel-inventory/internal/domain/availability"
	"hotel-inventory/internal/domain/calendar"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var origin = calendar.MustParseDate("2024-01-01")

func day(n int) calendar.Date { return origin.AddDays(n) }

func stay(t *testing.T, from, to int) calendar.DateRange {
	t.Helper()
	r, err := calendar.NewDateRange(day(from), day(to))
	require.NoError(t, err)
	return r
}

func window(t *testing.T, days int) calendar.DateRange {
	t.Helper()
	w, err := calendar.NewWindow(origin, days)
	require.NoError(t, err)
	return w
}

func TestComputeOverlap(t *testing.T) {
	std := availability.RoomTypeCapacity{RoomTypeID: uuid.New(), Code: "STD", Name: "Standard", ActiveRooms: 4}

	cal := availability.Compute(window(t, 7), []availability.RoomTypeCapacity{std}, []availability.Occupancy{
		{RoomTypeID: std.RoomTypeID, Stay: stay(t, 2, 5)},
	})

	require.Len(t, cal.Dates, 7)
	require.Len(t, cal.RoomTypes, 1)
	row := cal.RoomTypes[0]
	assert.Equal(t, "STD", row.Code)
	assert.Equal(t, []int{4, 4, 4, 4, 4, 4, 4}, row.Total)
	assert.Equal(t, []int{4, 4, 3, 3, 3, 4, 4}, row.Available)
	assert.Equal(t, []int{0, 0, 0, 0, 0, 0, 0}, row.Overbooked)
}

func TestComputeClipsToWindow(t *testing.T) {
	std := availability.RoomTypeCapacity{RoomTypeID: uuid.New(), ActiveRooms: 2}

	cal := availability.Compute(window(t, 3), []availability.RoomTypeCapacity{std}, []availability.Occupancy{
		{RoomTypeID: std.RoomTypeID, Stay: stay(t, -3, 1)},
		{RoomTypeID: std.RoomTypeID, Stay: stay(t, 2, 10)},
		{RoomTypeID: std.RoomTypeID, Stay: stay(t, 5, 8)},
		{RoomTypeID: std.RoomTypeID, Stay: stay(t, -5, -1)},
	})

	assert.Equal(t, []int{1, 2, 1}, cal.RoomTypes[0].Available)
}

func TestComputeClampsOversold(t *testing.T) {
	std := availability.RoomTypeCapacity{RoomTypeID: uuid.New(), ActiveRooms: 1}
	occ := []availability.Occupancy{
		{RoomTypeID: std.RoomTypeID, Stay: stay(t, 0, 2)},
		{RoomTypeID: std.RoomTypeID, Stay: stay(t, 0, 1)},
		{RoomTypeID: std.RoomTypeID, Stay: stay(t, 0, 1)},
	}

	cal := availability.Compute(window(t, 3), []availability.RoomTypeCapacity{std}, occ)

	row := cal.RoomTypes[0]
	assert.Equal(t, []int{0, 0, 1}, row.Available)
	assert.Equal(t, []int{2, 0, 0}, row.Overbooked)
	assert.Equal(t, 1, cal.OversoldCells())
	for _, a := range row.Available {
		assert.GreaterOrEqual(t, a, 0)
	}
}

func TestComputeRoomTypesAndTotals(t *testing.T) {
	std := availability.RoomTypeCapacity{RoomTypeID: uuid.New(), Code: "STD", ActiveRooms: 3}
	dlx := availability.RoomTypeCapacity{RoomTypeID: uuid.New(), Code: "DLX", ActiveRooms: 1}
	empty := availability.RoomTypeCapacity{RoomTypeID: uuid.New(), Code: "STE", ActiveRooms: 0}

	cal := availability.Compute(window(t, 2), []availability.RoomTypeCapacity{std, dlx, empty}, []availability.Occupancy{
		{RoomTypeID: std.RoomTypeID, Stay: stay(t, 0, 2)},
		{RoomTypeID: dlx.RoomTypeID, Stay: stay(t, 1, 2)},
		// inactive room type
		{RoomTypeID: uuid.New(), Stay: stay(t, 0, 2)},
	})

	codes := make([]string, 0, len(cal.RoomTypes))
	for _, r := range cal.RoomTypes {
		codes = append(codes, r.Code)
	}
	assert.Equal(t, []string{"STD", "DLX", "STE"}, codes)
	assert.Equal(t, []int{0, 0}, cal.RoomTypes[2].Available)

	totals := cal.Totals()
	assert.Equal(t, []int{4, 4}, totals.Total)
	assert.Equal(t, []int{3, 2}, totals.Available)
	assert.Equal(t, []int{0, 0}, totals.Overbooked)
}

func TestComputeIsDeterministic(t *testing.T) {
	std := availability.RoomTypeCapacity{RoomTypeID: uuid.New(), ActiveRooms: 5}
	occ := []availability.Occupancy{
		{RoomTypeID: std.RoomTypeID, Stay: stay(t, 1, 4)},
		{RoomTypeID: std.RoomTypeID, Stay: stay(t, 3, 6)},
	}
	w := window(t, 7)

	first := availability.Compute(w, []availability.RoomTypeCapacity{std}, occ)
	second := availability.Compute(w, []availability.RoomTypeCapacity{std}, occ)
	assert.Equal(t, first, second)
}
