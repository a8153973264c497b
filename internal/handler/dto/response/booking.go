package response

import (
	"time"

	"hotel-inventory/internal/domain/calendar"
	"hotel-inventory/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID            uuid.UUID               `json:"id"`
	PropertyID    uuid.UUID               `json:"propertyId"`
	Code          string                  `json:"code"`
	Status        string                  `json:"status"`
	CheckIn       calendar.Date           `json:"checkIn"`
	CheckOut      calendar.Date           `json:"checkOut"`
	Nights        int                     `json:"nights"`
	Adults        int                     `json:"adults"`
	Children      int                     `json:"children"`
	Infants       int                     `json:"infants"`
	LeadGuestID   *uuid.UUID              `json:"leadGuestId,omitempty"`
	LeadGuestName *string                 `json:"leadGuestName,omitempty"`
	ContactEmail  string                  `json:"contactEmail"`
	ContactPhone  string                  `json:"contactPhone"`
	Notes         string                  `json:"notes"`
	TotalCents    int64                   `json:"totalCents"`
	PaidCents     int64                   `json:"paidCents"`
	CreatedBy     uuid.UUID               `json:"createdBy"`
	BookedAt      time.Time               `json:"bookedAt"`
	CheckedInAt   *time.Time              `json:"checkedInAt,omitempty"`
	CheckedOutAt  *time.Time              `json:"checkedOutAt,omitempty"`
	CancelledAt   *time.Time              `json:"cancelledAt,omitempty"`
	CancelledBy   *uuid.UUID              `json:"cancelledBy,omitempty"`
	CreatedAt     time.Time               `json:"createdAt"`
	UpdatedAt     time.Time               `json:"updatedAt"`
	Rooms         []*BookingRoomResponse  `json:"rooms"`
	Guests        []*BookingGuestResponse `json:"guests"`
	Payments      []*PaymentResponse      `json:"payments"`
}

type BookingRoomResponse struct {
	ID             uuid.UUID     `json:"id"`
	RoomTypeID     uuid.UUID     `json:"roomTypeId"`
	RoomTypeCode   string        `json:"roomTypeCode"`
	RoomTypeName   string        `json:"roomTypeName"`
	RoomID         *uuid.UUID    `json:"roomId,omitempty"`
	RoomCode       *string       `json:"roomCode,omitempty"`
	CheckIn        calendar.Date `json:"checkIn"`
	CheckOut       calendar.Date `json:"checkOut"`
	Nights         int           `json:"nights"`
	Adults         int           `json:"adults"`
	Children       int           `json:"children"`
	Infants        int           `json:"infants"`
	LineTotalCents int64         `json:"lineTotalCents"`
}

type BookingGuestResponse struct {
	ID            uuid.UUID  `json:"id"`
	GuestID       uuid.UUID  `json:"guestId"`
	FirstName     string     `json:"firstName"`
	LastName      string     `json:"lastName"`
	BookingRoomID *uuid.UUID `json:"bookingRoomId,omitempty"`
	IsLead        bool       `json:"isLead"`
}

type PaymentResponse struct {
	ID          uuid.UUID `json:"id"`
	Method      string    `json:"method"`
	AmountCents int64     `json:"amountCents"`
	ReceivedAt  time.Time `json:"receivedAt"`
	Reference   string    `json:"reference"`
	CreatedBy   uuid.UUID `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

type BookingListItemResponse struct {
	ID            uuid.UUID     `json:"id"`
	Code          string        `json:"code"`
	Status        string        `json:"status"`
	CheckIn       calendar.Date `json:"checkIn"`
	CheckOut      calendar.Date `json:"checkOut"`
	Nights        int           `json:"nights"`
	Adults        int           `json:"adults"`
	Children      int           `json:"children"`
	LeadGuestName *string       `json:"leadGuestName,omitempty"`
	RoomCount     int           `json:"roomCount"`
	TotalCents    int64         `json:"totalCents"`
}

type BookingListResponse struct {
	Items      []*BookingListItemResponse `json:"items"`
	NextCursor *string                    `json:"nextCursor,omitempty"`
}

type CreateBookingResponse struct {
	ID   uuid.UUID `json:"id"`
	Code string    `json:"code"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	out := copyInto[BookingResponse](v)
	// copier leaves nil slices nil; the API always returns arrays
	out.Rooms = copyAll[BookingRoomResponse](v.Rooms)
	out.Guests = copyAll[BookingGuestResponse](v.Guests)
	out.Payments = copyAll[PaymentResponse](v.Payments)
	return out
}

func FromBookingList(items []*queries.BookingListItem, next *queries.Cursor) *BookingListResponse {
	resp := &BookingListResponse{Items: FromBookingListItems(items)}
	if next != nil {
		resp.NextCursor = &next.After
	}
	return resp
}

func FromBookingListItems(items []*queries.BookingListItem) []*BookingListItemResponse {
	return copyAll[BookingListItemResponse](items)
}
