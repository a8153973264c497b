//go:build unit || e2e

package builder

import (
	"time"

	"hotel-inventory/internal/domain/booking"
	"hotel-inventory/internal/domain/calendar"
	reqdto "hotel-inventory/internal/handler/dto/request"
	"hotel-inventory/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	PropertyID  uuid.UUID
	Code        string
	CheckIn     string
	CheckOut    string
	Adults      int
	Children    int
	Infants     int
	CreatedBy   uuid.UUID
	LeadGuestID *uuid.UUID
	Notes       string
	Now         time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		PropertyID: uuid.New(),
		Code:       "B-2024-0001",
		CheckIn:    "2024-03-01",
		CheckOut:   "2024-03-04",
		Adults:     2,
		CreatedBy:  uuid.New(),
		Now:        time.Date(2024, time.February, 20, 9, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) Stay() (calendar.DateRange, error) {
	in, err := calendar.ParseDate(b.CheckIn)
	if err != nil {
		return calendar.DateRange{}, err
	}
	out, err := calendar.ParseDate(b.CheckOut)
	if err != nil {
		return calendar.DateRange{}, err
	}
	return calendar.NewDateRange(in, out)
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	stay, err := b.Stay()
	if err != nil {
		return nil, err
	}
	occ, err := booking.NewOccupancy(b.Adults, b.Children, b.Infants)
	if err != nil {
		return nil, err
	}
	return booking.NewBooking(booking.NewParams{
		PropertyID:  b.PropertyID,
		Stay:        stay,
		Occupancy:   occ,
		CreatedBy:   b.CreatedBy,
		LeadGuestID: b.LeadGuestID,
		Notes:       b.Notes,
	}, b.Code, b.Now), nil
}

func (b *BookingBuilder) MustBuildDomain() *booking.Booking {
	bk, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return bk
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		PropertyID:  b.PropertyID,
		CheckIn:     calendar.MustParseDate(b.CheckIn),
		CheckOut:    calendar.MustParseDate(b.CheckOut),
		Adults:      b.Adults,
		Children:    b.Children,
		Infants:     b.Infants,
		LeadGuestID: b.LeadGuestID,
		Notes:       b.Notes,
	}
}

func (b *BookingBuilder) BuildUpdateRequestDTO(status booking.Status) reqdto.UpdateBookingRequest {
	return reqdto.UpdateBookingRequest{
		CheckIn:  calendar.MustParseDate(b.CheckIn),
		CheckOut: calendar.MustParseDate(b.CheckOut),
		Adults:   b.Adults,
		Children: b.Children,
		Infants:  b.Infants,
		Notes:    b.Notes,
		Status:   status.String(),
	}
}

// BuildView returns the read model of a booking with no lines, guests or payments.
func (b *BookingBuilder) BuildView() *queries.BookingView {
	checkIn := calendar.MustParseDate(b.CheckIn)
	checkOut := calendar.MustParseDate(b.CheckOut)
	return &queries.BookingView{
		ID:          uuid.New(),
		PropertyID:  b.PropertyID,
		Code:        b.Code,
		Status:      booking.StatusTentative.String(),
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		Nights:      calendar.DaysBetween(checkIn, checkOut),
		Adults:      b.Adults,
		Children:    b.Children,
		Infants:     b.Infants,
		LeadGuestID: b.LeadGuestID,
		Notes:       b.Notes,
		CreatedBy:   b.CreatedBy,
		BookedAt:    b.Now,
		CreatedAt:   b.Now,
		UpdatedAt:   b.Now,
		Rooms:       []*queries.BookingRoomView{},
		Guests:      []*queries.BookingGuestView{},
		Payments:    []*queries.PaymentView{},
	}
}
