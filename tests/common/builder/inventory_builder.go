//go:build unit || e2e

package builder

import (
	"time"

	"hotel-inventory/internal/domain/guest"
	"hotel-inventory/internal/domain/inventory"
	"hotel-inventory/internal/domain/money"

	"github.com/google/uuid"
)

var fixedCreatedAt = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

type PropertyBuilder struct {
	ID   uuid.UUID
	Code string
	Name string
}

func NewPropertyBuilder() *PropertyBuilder {
	return &PropertyBuilder{
		ID:   uuid.New(),
		Code: "HTL",
		Name: "Harbour Hotel",
	}
}

func (b *PropertyBuilder) WithID(id uuid.UUID) *PropertyBuilder {
	b.ID = id
	return b
}

func (b *PropertyBuilder) BuildDomain() *inventory.Property {
	return inventory.ReconstructProperty(b.ID, inventory.PropertySpec{
		Code:                b.Code,
		Name:                b.Name,
		Timezone:            "UTC",
		DefaultCheckInTime:  "14:00",
		DefaultCheckOutTime: "11:00",
	}, fixedCreatedAt, fixedCreatedAt)
}

type RoomTypeBuilder struct {
	ID            uuid.UUID
	PropertyID    uuid.UUID
	Code          string
	BaseOccupancy int
	MaxOccupancy  int
	Active        bool
}

func NewRoomTypeBuilder() *RoomTypeBuilder {
	return &RoomTypeBuilder{
		ID:            uuid.New(),
		PropertyID:    uuid.New(),
		Code:          "STD",
		BaseOccupancy: 2,
		MaxOccupancy:  3,
		Active:        true,
	}
}

func (b *RoomTypeBuilder) With(mutate func(*RoomTypeBuilder)) *RoomTypeBuilder {
	mutate(b)
	return b
}

func (b *RoomTypeBuilder) BuildDomain() *inventory.RoomType {
	return inventory.ReconstructRoomType(b.ID, inventory.RoomTypeSpec{
		PropertyID:    b.PropertyID,
		Code:          b.Code,
		Name:          "Room type " + b.Code,
		BaseOccupancy: b.BaseOccupancy,
		MaxOccupancy:  b.MaxOccupancy,
		Active:        b.Active,
	}, fixedCreatedAt, fixedCreatedAt)
}

type RoomBuilder struct {
	ID         uuid.UUID
	PropertyID uuid.UUID
	RoomTypeID uuid.UUID
	Code       string
	PriceCents int64
	Active     bool
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		ID:         uuid.New(),
		PropertyID: uuid.New(),
		RoomTypeID: uuid.New(),
		Code:       "101",
		PriceCents: 10000,
		Active:     true,
	}
}

func (b *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(b)
	return b
}

func (b *RoomBuilder) BuildDomain() *inventory.Room {
	return inventory.ReconstructRoom(b.ID, inventory.RoomSpec{
		PropertyID:        b.PropertyID,
		RoomTypeID:        b.RoomTypeID,
		Code:              b.Code,
		BasePricePerNight: money.FromCents(b.PriceCents),
		Active:            b.Active,
	}, fixedCreatedAt, fixedCreatedAt)
}

func BuildGuest(propertyID uuid.UUID, firstName, lastName string) *guest.Guest {
	return guest.ReconstructGuest(uuid.New(), propertyID, firstName, lastName, guest.Profile{}, fixedCreatedAt, fixedCreatedAt)
}
