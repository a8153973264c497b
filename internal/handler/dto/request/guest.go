package request

import (
	"hotel-inventory/internal/domain/calendar"
	"hotel-inventory/internal/usecase/commands"

	"github.com/google/uuid"
)

type QuickGuestRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
}

type CreateGuestRequest struct {
	FirstName      string         `json:"firstName" binding:"required"`
	LastName       string         `json:"lastName" binding:"required"`
	Email          string         `json:"email"`
	Phone          string         `json:"phone"`
	Nationality    string         `json:"nationality"`
	DocumentType   string         `json:"documentType"`
	DocumentNumber string         `json:"documentNumber"`
	DateOfBirth    *calendar.Date `json:"dateOfBirth,omitempty"`
	Address        string         `json:"address"`
	Notes          string         `json:"notes"`
}

func (r CreateGuestRequest) ToInput(propertyID uuid.UUID) commands.CreateGuestInput {
	return commands.CreateGuestInput{
		PropertyID:     propertyID,
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Email:          r.Email,
		Phone:          r.Phone,
		Nationality:    r.Nationality,
		DocumentType:   r.DocumentType,
		DocumentNumber: r.DocumentNumber,
		DateOfBirth:    r.DateOfBirth,
		Address:        r.Address,
		Notes:          r.Notes,
	}
}
