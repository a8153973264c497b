package request

import (
	"time"

	"hotel-inventory/internal/domain/calendar"
	"hotel-inventory/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	PropertyID   uuid.UUID     `json:"propertyId" binding:"required"`
	CheckIn      calendar.Date `json:"checkIn"`
	CheckOut     calendar.Date `json:"checkOut"`
	Adults       int           `json:"adults" binding:"min=0"`
	Children     int           `json:"children" binding:"min=0"`
	Infants      int           `json:"infants" binding:"min=0"`
	LeadGuestID  *uuid.UUID    `json:"leadGuestId,omitempty"`
	ContactEmail string        `json:"contactEmail"`
	ContactPhone string        `json:"contactPhone"`
	Notes        string        `json:"notes"`
}

func (r CreateBookingRequest) ToInput() commands.CreateBookingInput {
	return commands.CreateBookingInput(r)
}

type UpdateBookingRequest struct {
	CheckIn      calendar.Date `json:"checkIn"`
	CheckOut     calendar.Date `json:"checkOut"`
	Adults       int           `json:"adults" binding:"min=0"`
	Children     int           `json:"children" binding:"min=0"`
	Infants      int           `json:"infants" binding:"min=0"`
	ContactEmail string        `json:"contactEmail"`
	ContactPhone string        `json:"contactPhone"`
	Notes        string        `json:"notes"`
	Status       string        `json:"status" binding:"required"`
}

func (r UpdateBookingRequest) ToInput() commands.UpdateBookingInput {
	return commands.UpdateBookingInput(r)
}

type AddRoomRequest struct {
	RoomTypeID uuid.UUID  `json:"roomTypeId" binding:"required"`
	RoomID     *uuid.UUID `json:"roomId,omitempty"`
}

// AssignRoomRequest unassigns the line when RoomID is null.
type AssignRoomRequest struct {
	RoomID *uuid.UUID `json:"roomId"`
}

type AttachGuestRequest struct {
	GuestID       uuid.UUID  `json:"guestId" binding:"required"`
	BookingRoomID *uuid.UUID `json:"bookingRoomId,omitempty"`
	IsLead        bool       `json:"isLead"`
}

func (r AttachGuestRequest) ToInput() commands.AttachGuestInput {
	return commands.AttachGuestInput{GuestID: r.GuestID, LineID: r.BookingRoomID, IsLead: r.IsLead}
}

type AddPaymentRequest struct {
	PropertyID  uuid.UUID  `json:"propertyId" binding:"required"`
	Method      string     `json:"method" binding:"required"`
	AmountCents int64      `json:"amountCents" binding:"required"`
	ReceivedAt  *time.Time `json:"receivedAt,omitempty"`
	Reference   string     `json:"reference"`
}

func (r AddPaymentRequest) ToInput() commands.AddPaymentInput {
	return commands.AddPaymentInput(r)
}
