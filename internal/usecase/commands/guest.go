package commands

import (
	"context"

	"hotel-inventory/internal/domain/calendar"
	"hotel-inventory/internal/domain/guest"
	"hotel-inventory/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateGuestInput struct {
	PropertyID     uuid.UUID
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	Nationality    string
	DocumentType   string
	DocumentNumber string
	DateOfBirth    *calendar.Date
	Address        string
	Notes          string
}

type GuestCommands interface {
	// AddGuestQuick creates a guest with only a name.
	AddGuestQuick(ctx context.Context, propertyID uuid.UUID, firstName, lastName string) (uuid.UUID, error)
	CreateGuest(ctx context.Context, in CreateGuestInput) (uuid.UUID, error)
}

type guestUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewGuestUseCase(uow shared.UnitOfWork) GuestCommands {
	return &guestUseCaseImpl{uow: uow}
}

func (uc *guestUseCaseImpl) AddGuestQuick(ctx context.Context, propertyID uuid.UUID, firstName, lastName string) (uuid.UUID, error) {
	g, err := guest.NewQuickGuest(propertyID, firstName, lastName)
	if err != nil {
		return uuid.Nil, err
	}
	return uc.save(ctx, g)
}

func (uc *guestUseCaseImpl) CreateGuest(ctx context.Context, in CreateGuestInput) (uuid.UUID, error) {
	g, err := guest.NewGuest(in.PropertyID, in.FirstName, in.LastName, guest.Profile{
		Email:          in.Email,
		Phone:          in.Phone,
		Nationality:    in.Nationality,
		DocumentType:   in.DocumentType,
		DocumentNumber: in.DocumentNumber,
		DateOfBirth:    in.DateOfBirth,
		Address:        in.Address,
		Notes:          in.Notes,
	})
	if err != nil {
		return uuid.Nil, err
	}
	return uc.save(ctx, g)
}

func (uc *guestUseCaseImpl) save(ctx context.Context, g *guest.Guest) (uuid.UUID, error) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Properties().FindByID(ctx, g.PropertyID()); err != nil {
			return notFound(err, ErrPropertyNotFound)
		}
		return tx.Guests().Create(ctx, g)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return g.ID(), nil
}
