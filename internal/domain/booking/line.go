package booking

import (
	"time"

	"hotel-inventory/internal/domain/calendar"
	"hotel-inventory/internal/domain/money"

	"github.com/google/uuid"
)

// Line is one room-type reservation inside a booking, optionally bound to a
// physical room.
type Line struct {
	id         uuid.UUID
	bookingID  uuid.UUID
	roomTypeID uuid.UUID
	roomID     *uuid.UUID
	stay       calendar.DateRange
	occupancy  Occupancy
	lineTotal  money.Money
	createdAt  time.Time
	updatedAt  time.Time
}

func ReconstructLine(
	id, bookingID, roomTypeID uuid.UUID,
	roomID *uuid.UUID,
	stay calendar.DateRange,
	occupancy Occupancy,
	lineTotal money.Money,
	createdAt, updatedAt time.Time,
) *Line {
	return &Line{
		id:         id,
		bookingID:  bookingID,
		roomTypeID: roomTypeID,
		roomID:     roomID,
		stay:       stay,
		occupancy:  occupancy,
		lineTotal:  lineTotal,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (l *Line) ID() uuid.UUID            { return l.id }
func (l *Line) BookingID() uuid.UUID     { return l.bookingID }
func (l *Line) RoomTypeID() uuid.UUID    { return l.roomTypeID }
func (l *Line) RoomID() *uuid.UUID       { return l.roomID }
func (l *Line) Stay() calendar.DateRange { return l.stay }
func (l *Line) Occupancy() Occupancy     { return l.occupancy }
func (l *Line) LineTotal() money.Money   { return l.lineTotal }
func (l *Line) Nights() int              { return l.stay.Nights() }
func (l *Line) CreatedAt() time.Time     { return l.createdAt }
func (l *Line) UpdatedAt() time.Time     { return l.updatedAt }
func (l *Line) IsAssigned() bool         { return l.roomID != nil }
