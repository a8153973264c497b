package inventory

import (
	"strings"
	"time"

	"hotel-inventory/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidOccupancy = errs.Mark(
	errs.New("occupancy must satisfy max >= base >= 1"),
	errs.ErrInvalidArgument,
)

type RoomTypeSpec struct {
	PropertyID       uuid.UUID
	Code             string
	Name             string
	Description      string
	BaseOccupancy    int
	MaxOccupancy     int
	BedConfiguration string
	DisplayOrder     int
	Active           bool
}

type RoomType struct {
	id               uuid.UUID
	propertyID       uuid.UUID
	code             string
	name             string
	description      string
	baseOccupancy    int
	maxOccupancy     int
	bedConfiguration string
	displayOrder     int
	active           bool
	createdAt        time.Time
	updatedAt        time.Time
}

func NewRoomType(spec RoomTypeSpec) (*RoomType, error) {
	code, err := normalizeCode(spec.Code)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(spec.Name)
	if name == "" {
		return nil, ErrInvalidName
	}
	if spec.BaseOccupancy < 1 || spec.MaxOccupancy < spec.BaseOccupancy {
		return nil, errs.Wrapf(ErrInvalidOccupancy, "base=%d max=%d", spec.BaseOccupancy, spec.MaxOccupancy)
	}

	return &RoomType{
		id:               uuid.New(),
		propertyID:       spec.PropertyID,
		code:             code,
		name:             name,
		description:      strings.TrimSpace(spec.Description),
		baseOccupancy:    spec.BaseOccupancy,
		maxOccupancy:     spec.MaxOccupancy,
		bedConfiguration: strings.TrimSpace(spec.BedConfiguration),
		displayOrder:     spec.DisplayOrder,
		active:           spec.Active,
	}, nil
}

func ReconstructRoomType(id uuid.UUID, spec RoomTypeSpec, createdAt, updatedAt time.Time) *RoomType {
	return &RoomType{
		id:               id,
		propertyID:       spec.PropertyID,
		code:             spec.Code,
		name:             spec.Name,
		description:      spec.Description,
		baseOccupancy:    spec.BaseOccupancy,
		maxOccupancy:     spec.MaxOccupancy,
		bedConfiguration: spec.BedConfiguration,
		displayOrder:     spec.DisplayOrder,
		active:           spec.Active,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

func (rt *RoomType) ID() uuid.UUID            { return rt.id }
func (rt *RoomType) PropertyID() uuid.UUID    { return rt.propertyID }
func (rt *RoomType) Code() string             { return rt.code }
func (rt *RoomType) Name() string             { return rt.name }
func (rt *RoomType) Description() string      { return rt.description }
func (rt *RoomType) BaseOccupancy() int       { return rt.baseOccupancy }
func (rt *RoomType) MaxOccupancy() int        { return rt.maxOccupancy }
func (rt *RoomType) BedConfiguration() string { return rt.bedConfiguration }
func (rt *RoomType) DisplayOrder() int        { return rt.displayOrder }
func (rt *RoomType) IsActive() bool           { return rt.active }
func (rt *RoomType) CreatedAt() time.Time     { return rt.createdAt }
func (rt *RoomType) UpdatedAt() time.Time     { return rt.updatedAt }
