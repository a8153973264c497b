package queries

import (
	"time"

	"hotel-inventory/internal/domain/calendar"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type PropertyView struct {
	ID                  uuid.UUID
	Code                string
	Name                string
	Email               string
	Phone               string
	CountryCode         string
	Timezone            string
	DefaultCheckInTime  string
	DefaultCheckOutTime string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type RoomTypeView struct {
	ID               uuid.UUID
	PropertyID       uuid.UUID
	Code             string
	Name             string
	Description      string
	BaseOccupancy    int
	MaxOccupancy     int
	BedConfiguration string
	DisplayOrder     int
	Active           bool
	ActiveRooms      int
}

type RoomView struct {
	ID                     uuid.UUID
	PropertyID             uuid.UUID
	RoomTypeID             uuid.UUID
	RoomTypeCode           string
	Code                   string
	BasePricePerNightCents int64
	Active                 bool
	Notes                  string
}

type GuestView struct {
	ID             uuid.UUID
	PropertyID     uuid.UUID
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	Nationality    string
	DocumentType   string
	DocumentNumber string
	DateOfBirth    *calendar.Date
	CreatedAt      time.Time
}

type BookingView struct {
	ID            uuid.UUID
	PropertyID    uuid.UUID
	Code          string
	Status        string
	CheckIn       calendar.Date
	CheckOut      calendar.Date
	Nights        int
	Adults        int
	Children      int
	Infants       int
	LeadGuestID   *uuid.UUID
	LeadGuestName *string
	ContactEmail  string
	ContactPhone  string
	Notes         string
	TotalCents    int64
	PaidCents     int64
	CreatedBy     uuid.UUID
	BookedAt      time.Time
	CheckedInAt   *time.Time
	CheckedOutAt  *time.Time
	CancelledAt   *time.Time
	CancelledBy   *uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Rooms         []*BookingRoomView
	Guests        []*BookingGuestView
	Payments      []*PaymentView
}

type BookingRoomView struct {
	ID             uuid.UUID
	RoomTypeID     uuid.UUID
	RoomTypeCode   string
	RoomTypeName   string
	RoomID         *uuid.UUID
	RoomCode       *string
	CheckIn        calendar.Date
	CheckOut       calendar.Date
	Nights         int
	Adults         int
	Children       int
	Infants        int
	LineTotalCents int64
}

type BookingGuestView struct {
	ID            uuid.UUID
	GuestID       uuid.UUID
	FirstName     string
	LastName      string
	BookingRoomID *uuid.UUID
	IsLead        bool
}

type PaymentView struct {
	ID          uuid.UUID
	Method      string
	AmountCents int64
	ReceivedAt  time.Time
	Reference   string
	CreatedBy   uuid.UUID
	CreatedAt   time.Time
}

type BookingListItem struct {
	ID            uuid.UUID
	Code          string
	Status        string
	CheckIn       calendar.Date
	CheckOut      calendar.Date
	Nights        int
	Adults        int
	Children      int
	LeadGuestName *string
	RoomCount     int
	TotalCents    int64
}

type BookingFilters struct {
	PropertyID uuid.UUID
	Status     *string
	// From/To select bookings whose stay overlaps [From, To)
	From *calendar.Date
	To   *calendar.Date
}

type DashboardView struct {
	PropertyID             uuid.UUID
	Date                   calendar.Date
	RoomsTotal             int
	RoomsActive            int
	ArrivalsToday          int
	DeparturesToday        int
	InHouse                int
	PaymentsThisMonthCents int64
	Arrivals               []*BookingListItem
	Departures             []*BookingListItem
}
