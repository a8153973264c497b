package availability

import (
	"hotel-inventory/internal/domain/calendar"

	"github.com/google/uuid"
)

// RoomTypeCapacity is an active room type with its count of active rooms.
type RoomTypeCapacity struct {
	RoomTypeID   uuid.UUID
	Code         string
	Name         string
	DisplayOrder int
	ActiveRooms  int
}

// Occupancy is the date range one booking line holds on a room type.
type Occupancy struct {
	RoomTypeID uuid.UUID
	Stay       calendar.DateRange
}

// Row holds per-day figures for one room type, aligned to Calendar.Dates.
type Row struct {
	RoomTypeID uuid.UUID
	Code       string
	Name       string
	Total      []int
	Available  []int
	Overbooked []int
}

type Calendar struct {
	Window    calendar.DateRange
	Dates     []calendar.Date
	RoomTypes []Row
}

// Totals is the whole-property sum of every room type per day.
type Totals struct {
	Total      []int
	Available  []int
	Overbooked []int
}

func (c *Calendar) Totals() Totals {
	n := len(c.Dates)
	t := Totals{Total: make([]int, n), Available: make([]int, n), Overbooked: make([]int, n)}
	for _, row := range c.RoomTypes {
		for i := range n {
			t.Total[i] += row.Total[i]
			t.Available[i] += row.Available[i]
			t.Overbooked[i] += row.Overbooked[i]
		}
	}
	return t
}

// OversoldCells counts (room type, day) pairs where commitments exceed rooms.
func (c *Calendar) OversoldCells() int {
	n := 0
	for _, row := range c.RoomTypes {
		for _, o := range row.Overbooked {
			if o > 0 {
				n++
			}
		}
	}
	return n
}
