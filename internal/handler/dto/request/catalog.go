package request

import (
	"hotel-inventory/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreatePropertyRequest struct {
	Code                string `json:"code" binding:"required,max=32"`
	Name                string `json:"name" binding:"required"`
	Email               string `json:"email"`
	Phone               string `json:"phone"`
	CountryCode         string `json:"countryCode"`
	Timezone            string `json:"timezone"`
	DefaultCheckInTime  string `json:"defaultCheckInTime"`
	DefaultCheckOutTime string `json:"defaultCheckOutTime"`
}

func (r CreatePropertyRequest) ToInput() commands.CreatePropertyInput {
	return commands.CreatePropertyInput(r)
}

type CreateRoomTypeRequest struct {
	Code             string `json:"code" binding:"required,max=32"`
	Name             string `json:"name" binding:"required"`
	Description      string `json:"description"`
	BaseOccupancy    int    `json:"baseOccupancy" binding:"required,min=1"`
	MaxOccupancy     int    `json:"maxOccupancy" binding:"required,min=1"`
	BedConfiguration string `json:"bedConfiguration"`
	DisplayOrder     int    `json:"displayOrder"`
	Active           *bool  `json:"active,omitempty"`
}

func (r CreateRoomTypeRequest) ToInput(propertyID uuid.UUID) commands.CreateRoomTypeInput {
	return commands.CreateRoomTypeInput{
		PropertyID:       propertyID,
		Code:             r.Code,
		Name:             r.Name,
		Description:      r.Description,
		BaseOccupancy:    r.BaseOccupancy,
		MaxOccupancy:     r.MaxOccupancy,
		BedConfiguration: r.BedConfiguration,
		DisplayOrder:     r.DisplayOrder,
		Active:           activeOrDefault(r.Active),
	}
}

type CreateRoomRequest struct {
	RoomTypeID             uuid.UUID `json:"roomTypeId" binding:"required"`
	Code                   string    `json:"code" binding:"required,max=32"`
	BasePricePerNightCents int64     `json:"basePricePerNightCents" binding:"min=0"`
	Active                 *bool     `json:"active,omitempty"`
	Notes                  string    `json:"notes"`
}

func (r CreateRoomRequest) ToInput(propertyID uuid.UUID) commands.CreateRoomInput {
	return commands.CreateRoomInput{
		PropertyID:             propertyID,
		RoomTypeID:             r.RoomTypeID,
		Code:                   r.Code,
		BasePricePerNightCents: r.BasePricePerNightCents,
		Active:                 activeOrDefault(r.Active),
		Notes:                  r.Notes,
	}
}

type UpdateRoomRequest struct {
	BasePricePerNightCents *int64 `json:"basePricePerNightCents,omitempty" binding:"omitempty,min=0"`
	Active                 *bool  `json:"active,omitempty"`
}

func (r UpdateRoomRequest) ToInput() commands.UpdateRoomInput {
	return commands.UpdateRoomInput(r)
}

func activeOrDefault(active *bool) bool {
	return active == nil || *active
}
