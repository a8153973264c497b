package commands

import (
	"context"
	"log/slog"

	"hotel-inventory/internal/domain/inventory"
	"hotel-inventory/internal/domain/money"
	"hotel-inventory/internal/infra"
	"hotel-inventory/internal/pkg/patch"
	"hotel-inventory/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreatePropertyInput struct {
	Code                string
	Name                string
	Email               string
	Phone               string
	CountryCode         string
	Timezone            string
	DefaultCheckInTime  string
	DefaultCheckOutTime string
}

type CreateRoomTypeInput struct {
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

type CreateRoomInput struct {
	PropertyID             uuid.UUID
	RoomTypeID             uuid.UUID
	Code                   string
	BasePricePerNightCents int64
	Active                 bool
	Notes                  string
}

// UpdateRoomInput changes only the fields that are set.
type UpdateRoomInput struct {
	BasePricePerNightCents *int64
	Active                 *bool
}

type CatalogCommands interface {
	CreateProperty(ctx context.Context, in CreatePropertyInput) (uuid.UUID, error)
	DeleteProperty(ctx context.Context, id uuid.UUID) error
	CreateRoomType(ctx context.Context, in CreateRoomTypeInput) (uuid.UUID, error)
	DeleteRoomType(ctx context.Context, id uuid.UUID) error
	CreateRoom(ctx context.Context, in CreateRoomInput) (uuid.UUID, error)
	UpdateRoom(ctx context.Context, id uuid.UUID, in UpdateRoomInput) error
	DeleteRoom(ctx context.Context, id uuid.UUID) error
}

type catalogUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewCatalogUseCase(uow shared.UnitOfWork) CatalogCommands {
	return &catalogUseCaseImpl{uow: uow}
}

func (uc *catalogUseCaseImpl) CreateProperty(ctx context.Context, in CreatePropertyInput) (uuid.UUID, error) {
	p, err := inventory.NewProperty(inventory.PropertySpec(in))
	if err != nil {
		return uuid.Nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return translate(tx.Properties().Create(ctx, p), infra.KindDuplicateKey, ErrPropertyCodeTaken)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return p.ID(), nil
}

func (uc *catalogUseCaseImpl) DeleteProperty(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return deleteRestricted(tx.Properties().Delete(ctx, id), ErrPropertyNotFound)
	})
}

func (uc *catalogUseCaseImpl) CreateRoomType(ctx context.Context, in CreateRoomTypeInput) (uuid.UUID, error) {
	rt, err := inventory.NewRoomType(inventory.RoomTypeSpec(in))
	if err != nil {
		return uuid.Nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Properties().FindByID(ctx, in.PropertyID); err != nil {
			return notFound(err, ErrPropertyNotFound)
		}
		return translate(tx.RoomTypes().Create(ctx, rt), infra.KindDuplicateKey, ErrRoomTypeCodeTaken)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return rt.ID(), nil
}

func (uc *catalogUseCaseImpl) DeleteRoomType(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return deleteRestricted(tx.RoomTypes().Delete(ctx, id), ErrRoomTypeNotFound)
	})
}

func (uc *catalogUseCaseImpl) CreateRoom(ctx context.Context, in CreateRoomInput) (uuid.UUID, error) {
	var id uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rt, err := tx.RoomTypes().FindByID(ctx, in.RoomTypeID)
		if err != nil {
			return notFound(err, ErrRoomTypeNotFound)
		}
		room, err := inventory.NewRoom(inventory.RoomSpec{
			PropertyID:        in.PropertyID,
			RoomTypeID:        in.RoomTypeID,
			Code:              in.Code,
			BasePricePerNight: money.FromCents(in.BasePricePerNightCents),
			Active:            in.Active,
			Notes:             in.Notes,
		}, rt)
		if err != nil {
			return err
		}
		if err := tx.Rooms().Create(ctx, room); err != nil {
			return translate(err, infra.KindDuplicateKey, ErrRoomCodeTaken)
		}
		id = room.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// UpdateRoom changes price or active flag. Bookings pick up a new price the
// next time their totals are recalculated.
func (uc *catalogUseCaseImpl) UpdateRoom(ctx context.Context, id uuid.UUID, in UpdateRoomInput) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		room, err := tx.Rooms().FindByIDForUpdate(ctx, id)
		if err != nil {
			return notFound(err, ErrRoomNotFound)
		}
		price := patch.Coalesce(in.BasePricePerNightCents, room.BasePricePerNight().Cents())
		if err := room.ChangePrice(money.FromCents(price)); err != nil {
			return err
		}
		room.SetActive(patch.Coalesce(in.Active, room.IsActive()))
		return tx.Rooms().Update(ctx, room)
	})
}

func (uc *catalogUseCaseImpl) DeleteRoom(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return deleteRestricted(tx.Rooms().Delete(ctx, id), ErrRoomNotFound)
	})
}

func deleteRestricted(err error, missing error) error {
	if infra.IsKind(err, infra.KindForeignKeyViolated) {
		slog.Info("delete blocked by references", "error", err.Error())
	}
	return translate(notFound(err, missing), infra.KindForeignKeyViolated, ErrStillReferenced)
}
