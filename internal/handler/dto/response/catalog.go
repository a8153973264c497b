package response

import (
	"time"

	"hotel-inventory/internal/domain/calendar"
	"hotel-inventory/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

type PropertyResponse struct {
	ID                  uuid.UUID `json:"id"`
	Code                string    `json:"code"`
	Name                string    `json:"name"`
	Email               string    `json:"email"`
	Phone               string    `json:"phone"`
	CountryCode         string    `json:"countryCode"`
	Timezone            string    `json:"timezone"`
	DefaultCheckInTime  string    `json:"defaultCheckInTime"`
	DefaultCheckOutTime string    `json:"defaultCheckOutTime"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

type RoomTypeResponse struct {
	ID               uuid.UUID `json:"id"`
	PropertyID       uuid.UUID `json:"propertyId"`
	Code             string    `json:"code"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	BaseOccupancy    int       `json:"baseOccupancy"`
	MaxOccupancy     int       `json:"maxOccupancy"`
	BedConfiguration string    `json:"bedConfiguration"`
	DisplayOrder     int       `json:"displayOrder"`
	Active           bool      `json:"active"`
	ActiveRooms      int       `json:"activeRooms"`
}

type RoomResponse struct {
	ID                     uuid.UUID `json:"id"`
	PropertyID             uuid.UUID `json:"propertyId"`
	RoomTypeID             uuid.UUID `json:"roomTypeId"`
	RoomTypeCode           string    `json:"roomTypeCode"`
	Code                   string    `json:"code"`
	BasePricePerNightCents int64     `json:"basePricePerNightCents"`
	Active                 bool      `json:"active"`
	Notes                  string    `json:"notes"`
}

type GuestResponse struct {
	ID             uuid.UUID      `json:"id"`
	PropertyID     uuid.UUID      `json:"propertyId"`
	FirstName      string         `json:"firstName"`
	LastName       string         `json:"lastName"`
	Email          string         `json:"email"`
	Phone          string         `json:"phone"`
	Nationality    string         `json:"nationality"`
	DocumentType   string         `json:"documentType"`
	DocumentNumber string         `json:"documentNumber"`
	DateOfBirth    *calendar.Date `json:"dateOfBirth,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
}

func FromPropertyViews(vs []*queries.PropertyView) []*PropertyResponse {
	return copyAll[PropertyResponse](vs)
}

func FromRoomTypeViews(vs []*queries.RoomTypeView) []*RoomTypeResponse {
	return copyAll[RoomTypeResponse](vs)
}

func FromRoomViews(vs []*queries.RoomView) []*RoomResponse {
	return copyAll[RoomResponse](vs)
}

func FromGuestViews(vs []*queries.GuestView) []*GuestResponse {
	return copyAll[GuestResponse](vs)
}
