package response

import (
	"hotel-inventory/internal/domain/availability"
	"hotel-inventory/internal/domain/calendar"
	"hotel-inventory/internal/usecase/queries"

	"github.com/google/uuid"
)

type AvailabilityResponse struct {
	Start     calendar.Date               `json:"start"`
	End       calendar.Date               `json:"end"`
	Dates     []calendar.Date             `json:"dates"`
	RoomTypes []*AvailabilityRowResponse  `json:"roomTypes"`
	Totals    *AvailabilityTotalsResponse `json:"totals"`
	// OversoldCells counts (room type, day) cells with negative availability.
	OversoldCells int `json:"oversoldCells"`
}

type AvailabilityRowResponse struct {
	RoomTypeID uuid.UUID `json:"roomTypeId"`
	Code       string    `json:"code"`
	Name       string    `json:"name"`
	Total      []int     `json:"total"`
	Available  []int     `json:"available"`
	Overbooked []int     `json:"overbooked"`
}

type AvailabilityTotalsResponse struct {
	Total      []int `json:"total"`
	Available  []int `json:"available"`
	Overbooked []int `json:"overbooked"`
}

type DashboardResponse struct {
	PropertyID             uuid.UUID                  `json:"propertyId"`
	Date                   calendar.Date              `json:"date"`
	RoomsTotal             int                        `json:"roomsTotal"`
	RoomsActive            int                        `json:"roomsActive"`
	ArrivalsToday          int                        `json:"arrivalsToday"`
	DeparturesToday        int                        `json:"departuresToday"`
	InHouse                int                        `json:"inHouse"`
	PaymentsThisMonthCents int64                      `json:"paymentsThisMonthCents"`
	Arrivals               []*BookingListItemResponse `json:"arrivals"`
	Departures             []*BookingListItemResponse `json:"departures"`
}

func FromCalendar(cal *availability.Calendar) *AvailabilityResponse {
	resp := &AvailabilityResponse{
		Start:     cal.Window.Start(),
		End:       cal.Window.End(),
		Dates:     cal.Dates,
		RoomTypes: copyAll[AvailabilityRowResponse](cal.RoomTypes),
		Totals:    copyInto[AvailabilityTotalsResponse](cal.Totals()),
	}
	resp.OversoldCells = cal.OversoldCells()
	return resp
}

func FromDashboardView(v *queries.DashboardView) *DashboardResponse {
	out := copyInto[DashboardResponse](v)
	out.Arrivals = FromBookingListItems(v.Arrivals)
	out.Departures = FromBookingListItems(v.Departures)
	return out
}
