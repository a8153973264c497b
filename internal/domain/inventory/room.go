package inventory

import (
	"strings"
	"time"

	"hotel-inventory/internal/domain/money"
	"hotel-inventory/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrRoomTypeMismatch = errs.Mark(errs.New("room type does not belong to the property"), errs.ErrInvalidArgument)
	ErrNegativePrice    = errs.Mark(errs.New("price per night cannot be negative"), errs.ErrInvalidArgument)
)

type RoomSpec struct {
	PropertyID        uuid.UUID
	RoomTypeID        uuid.UUID
	Code              string
	BasePricePerNight money.Money
	Active            bool
	Notes             string
}

type Room struct {
	id                uuid.UUID
	propertyID        uuid.UUID
	roomTypeID        uuid.UUID
	code              string
	basePricePerNight money.Money
	active            bool
	notes             string
	createdAt         time.Time
	updatedAt         time.Time
}

// NewRoom places a room of roomType; the type must be part of the same property.
func NewRoom(spec RoomSpec, roomType *RoomType) (*Room, error) {
	code, err := normalizeCode(spec.Code)
	if err != nil {
		return nil, err
	}
	if roomType == nil || roomType.PropertyID() != spec.PropertyID || roomType.ID() != spec.RoomTypeID {
		return nil, ErrRoomTypeMismatch
	}
	if spec.BasePricePerNight.Cents() < 0 {
		return nil, ErrNegativePrice
	}

	return &Room{
		id:                uuid.New(),
		propertyID:        spec.PropertyID,
		roomTypeID:        spec.RoomTypeID,
		code:              code,
		basePricePerNight: spec.BasePricePerNight,
		active:            spec.Active,
		notes:             strings.TrimSpace(spec.Notes),
	}, nil
}

func ReconstructRoom(id uuid.UUID, spec RoomSpec, createdAt, updatedAt time.Time) *Room {
	return &Room{
		id:                id,
		propertyID:        spec.PropertyID,
		roomTypeID:        spec.RoomTypeID,
		code:              spec.Code,
		basePricePerNight: spec.BasePricePerNight,
		active:            spec.Active,
		notes:             spec.Notes,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

func (r *Room) ChangePrice(price money.Money) error {
	if price.Cents() < 0 {
		return ErrNegativePrice
	}
	r.basePricePerNight = price
	return nil
}

func (r *Room) SetActive(active bool) {
	r.active = active
}

func (r *Room) ID() uuid.UUID                  { return r.id }
func (r *Room) PropertyID() uuid.UUID          { return r.propertyID }
func (r *Room) RoomTypeID() uuid.UUID          { return r.roomTypeID }
func (r *Room) Code() string                   { return r.code }
func (r *Room) BasePricePerNight() money.Money { return r.basePricePerNight }
func (r *Room) IsActive() bool                 { return r.active }
func (r *Room) Notes() string                  { return r.notes }
func (r *Room) CreatedAt() time.Time           { return r.createdAt }
func (r *Room) UpdatedAt() time.Time           { return r.updatedAt }
