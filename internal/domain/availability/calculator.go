package availability

import (
	"hotel-inventory/internal/domain/calendar"

	"github.com/google/uuid"
)

// Compute builds the availability calendar for window. Room types keep the
// given order. Each occupancy is clipped to the window and consumes one unit
// of its room type on every night it covers; occupancies of room types not
// listed are ignored. Available never goes below zero, the excess is
// reported in Overbooked.
func Compute(window calendar.DateRange, roomTypes []RoomTypeCapacity, occupancies []Occupancy) *Calendar {
	dates := window.Dates()
	days := len(dates)
	origin := window.Start()

	index := make(map[uuid.UUID]int, len(roomTypes))
	used := make([][]int, len(roomTypes))
	for i, rt := range roomTypes {
		index[rt.RoomTypeID] = i
		used[i] = make([]int, days)
	}

	for _, occ := range occupancies {
		i, ok := index[occ.RoomTypeID]
		if !ok {
			continue
		}
		clipped, ok := occ.Stay.Intersect(window)
		if !ok {
			continue
		}
		from := calendar.DaysBetween(origin, clipped.Start())
		to := calendar.DaysBetween(origin, clipped.End())
		for d := from; d < to; d++ {
			used[i][d]++
		}
	}

	rows := make([]Row, len(roomTypes))
	for i, rt := range roomTypes {
		row := Row{
			RoomTypeID: rt.RoomTypeID,
			Code:       rt.Code,
			Name:       rt.Name,
			Total:      make([]int, days),
			Available:  make([]int, days),
			Overbooked: make([]int, days),
		}
		for d := range days {
			row.Total[d] = rt.ActiveRooms
			remaining := rt.ActiveRooms - used[i][d]
			row.Available[d] = max(0, remaining)
			row.Overbooked[d] = max(0, -remaining)
		}
		rows[i] = row
	}

	return &Calendar{Window: window, Dates: dates, RoomTypes: rows}
}
