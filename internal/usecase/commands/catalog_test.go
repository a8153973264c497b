//go:build unit

package commands_test

import (
	"context"
	"testing"

	"hotel-inventory/internal/domain/guest"
	"hotel-inventory/internal/domain/inventory"
	"hotel-inventory/internal/infra"
	"hotel-inventory/internal/pkg/errs"
	"hotel-inventory/internal/usecase/commands"
	"hotel-inventory/internal/usecase/shared"
	"hotel-inventory/tests/common/builder"
	sharedmock "hotel-inventory/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogCommandsTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	uow        *sharedmock.MockUnitOfWork
	tx         *sharedmock.MockTx
	properties *sharedmock.MockPropertyRepository
	roomTypes  *sharedmock.MockRoomTypeRepository
	rooms      *sharedmock.MockRoomRepository
	guests     *sharedmock.MockGuestRepository
	catalog    commands.CatalogCommands
	guestUC    commands.GuestCommands

	propertyID uuid.UUID
}

func (s *CatalogCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.mockCtrl)
	s.tx = sharedmock.NewMockTx(s.mockCtrl)
	s.properties = sharedmock.NewMockPropertyRepository(s.mockCtrl)
	s.roomTypes = sharedmock.NewMockRoomTypeRepository(s.mockCtrl)
	s.rooms = sharedmock.NewMockRoomRepository(s.mockCtrl)
	s.guests = sharedmock.NewMockGuestRepository(s.mockCtrl)
	s.catalog = commands.NewCatalogUseCase(s.uow)
	s.guestUC = commands.NewGuestUseCase(s.uow)
	s.propertyID = uuid.New()

	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		}).AnyTimes()
	s.tx.EXPECT().Properties().Return(s.properties).AnyTimes()
	s.tx.EXPECT().RoomTypes().Return(s.roomTypes).AnyTimes()
	s.tx.EXPECT().Rooms().Return(s.rooms).AnyTimes()
	s.tx.EXPECT().Guests().Return(s.guests).AnyTimes()
}

func (s *CatalogCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogCommandsSuite(t *testing.T) {
	suite.Run(t, new(CatalogCommandsTestSuite))
}

func (s *CatalogCommandsTestSuite) TestCreateProperty() {
	s.Run("success: code is normalized and defaults applied", func() {
		var stored *inventory.Property
		s.properties.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *inventory.Property) error {
				stored = p
				return nil
			})

		id, err := s.catalog.CreateProperty(context.Background(), commands.CreatePropertyInput{Code: " htl ", Name: "Harbour"})

		s.Require().NoError(err)
		s.Equal(stored.ID(), id)
		s.Equal("HTL", stored.Code())
		s.NotEmpty(stored.DefaultCheckInTime())
	})

	s.Run("error: duplicate code", func() {
		s.properties.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(infra.RepositoryError{Kind: infra.KindDuplicateKey})

		_, err := s.catalog.CreateProperty(context.Background(), commands.CreatePropertyInput{Code: "HTL", Name: "Harbour"})

		s.ErrorIs(err, commands.ErrPropertyCodeTaken)
		s.ErrorIs(err, errs.ErrConflict)
	})

	s.Run("error: missing name never reaches the store", func() {
		_, err := s.catalog.CreateProperty(context.Background(), commands.CreatePropertyInput{Code: "HTL"})

		s.ErrorIs(err, inventory.ErrInvalidName)
	})
}

func (s *CatalogCommandsTestSuite) TestCreateRoomType() {
	input := func() commands.CreateRoomTypeInput {
		return commands.CreateRoomTypeInput{
			PropertyID:    s.propertyID,
			Code:          "std",
			Name:          "Standard",
			BaseOccupancy: 2,
			MaxOccupancy:  3,
			Active:        true,
		}
	}

	s.Run("success", func() {
		property := builder.NewPropertyBuilder().WithID(s.propertyID).BuildDomain()
		var stored *inventory.RoomType
		s.properties.EXPECT().FindByID(gomock.Any(), s.propertyID).Return(property, nil)
		s.roomTypes.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, rt *inventory.RoomType) error {
				stored = rt
				return nil
			})

		id, err := s.catalog.CreateRoomType(context.Background(), input())

		s.Require().NoError(err)
		s.Equal(stored.ID(), id)
		s.Equal("STD", stored.Code())
		s.Equal(s.propertyID, stored.PropertyID())
	})

	s.Run("error: max occupancy below base", func() {
		in := input()
		in.MaxOccupancy = 1

		_, err := s.catalog.CreateRoomType(context.Background(), in)

		s.ErrorIs(err, inventory.ErrInvalidOccupancy)
	})

	s.Run("error: unknown property", func() {
		s.properties.EXPECT().FindByID(gomock.Any(), s.propertyID).Return(nil, notFoundErr())

		_, err := s.catalog.CreateRoomType(context.Background(), input())

		s.ErrorIs(err, commands.ErrPropertyNotFound)
	})
}

func (s *CatalogCommandsTestSuite) TestCreateRoom() {
	rt := builder.NewRoomTypeBuilder().With(func(b *builder.RoomTypeBuilder) {
		b.PropertyID = s.propertyID
	}).BuildDomain()
	input := func() commands.CreateRoomInput {
		return commands.CreateRoomInput{
			PropertyID:             s.propertyID,
			RoomTypeID:             rt.ID(),
			Code:                   "101",
			BasePricePerNightCents: 7000,
			Active:                 true,
		}
	}

	s.Run("success", func() {
		var stored *inventory.Room
		s.roomTypes.EXPECT().FindByID(gomock.Any(), rt.ID()).Return(rt, nil)
		s.rooms.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *inventory.Room) error {
				stored = r
				return nil
			})

		id, err := s.catalog.CreateRoom(context.Background(), input())

		s.Require().NoError(err)
		s.Equal(stored.ID(), id)
		s.Equal(int64(7000), stored.BasePricePerNight().Cents())
	})

	s.Run("error: room type of another property", func() {
		in := input()
		in.PropertyID = uuid.New()
		s.roomTypes.EXPECT().FindByID(gomock.Any(), rt.ID()).Return(rt, nil)

		_, err := s.catalog.CreateRoom(context.Background(), in)

		s.ErrorIs(err, inventory.ErrRoomTypeMismatch)
	})

	s.Run("error: negative price", func() {
		in := input()
		in.BasePricePerNightCents = -1
		s.roomTypes.EXPECT().FindByID(gomock.Any(), rt.ID()).Return(rt, nil)

		_, err := s.catalog.CreateRoom(context.Background(), in)

		s.ErrorIs(err, inventory.ErrNegativePrice)
	})

	s.Run("error: duplicate code", func() {
		s.roomTypes.EXPECT().FindByID(gomock.Any(), rt.ID()).Return(rt, nil)
		s.rooms.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(infra.RepositoryError{Kind: infra.KindDuplicateKey})

		_, err := s.catalog.CreateRoom(context.Background(), input())

		s.ErrorIs(err, commands.ErrRoomCodeTaken)
	})
}

func (s *CatalogCommandsTestSuite) TestUpdateRoom() {
	s.Run("success: only set fields change", func() {
		room := builder.NewRoomBuilder().BuildDomain()
		price := int64(8800)
		s.rooms.EXPECT().FindByIDForUpdate(gomock.Any(), room.ID()).Return(room, nil)
		s.rooms.EXPECT().Update(gomock.Any(), room).Return(nil)

		err := s.catalog.UpdateRoom(context.Background(), room.ID(), commands.UpdateRoomInput{BasePricePerNightCents: &price})

		s.Require().NoError(err)
		s.Equal(int64(8800), room.BasePricePerNight().Cents())
		s.True(room.IsActive())
	})

	s.Run("success: deactivate", func() {
		room := builder.NewRoomBuilder().BuildDomain()
		inactive := false
		s.rooms.EXPECT().FindByIDForUpdate(gomock.Any(), room.ID()).Return(room, nil)
		s.rooms.EXPECT().Update(gomock.Any(), room).Return(nil)

		err := s.catalog.UpdateRoom(context.Background(), room.ID(), commands.UpdateRoomInput{Active: &inactive})

		s.Require().NoError(err)
		s.False(room.IsActive())
		s.Equal(int64(10000), room.BasePricePerNight().Cents())
	})

	s.Run("error: unknown room", func() {
		id := uuid.New()
		s.rooms.EXPECT().FindByIDForUpdate(gomock.Any(), id).Return(nil, notFoundErr())

		err := s.catalog.UpdateRoom(context.Background(), id, commands.UpdateRoomInput{})

		s.ErrorIs(err, commands.ErrRoomNotFound)
	})
}

func (s *CatalogCommandsTestSuite) TestDelete() {
	s.Run("success: property", func() {
		id := uuid.New()
		s.properties.EXPECT().Delete(gomock.Any(), id).Return(nil)

		s.NoError(s.catalog.DeleteProperty(context.Background(), id))
	})

	s.Run("error: referenced room type is an integrity violation", func() {
		id := uuid.New()
		s.roomTypes.EXPECT().Delete(gomock.Any(), id).
			Return(infra.RepositoryError{Kind: infra.KindForeignKeyViolated})

		err := s.catalog.DeleteRoomType(context.Background(), id)

		s.ErrorIs(err, commands.ErrStillReferenced)
		s.ErrorIs(err, errs.ErrIntegrityViolation)
	})

	s.Run("error: missing room", func() {
		id := uuid.New()
		s.rooms.EXPECT().Delete(gomock.Any(), id).Return(notFoundErr())

		err := s.catalog.DeleteRoom(context.Background(), id)

		s.ErrorIs(err, commands.ErrRoomNotFound)
	})
}

func (s *CatalogCommandsTestSuite) TestGuests() {
	property := builder.NewPropertyBuilder().WithID(s.propertyID).BuildDomain()

	s.Run("success: quick add needs only a name", func() {
		var stored *guest.Guest
		s.properties.EXPECT().FindByID(gomock.Any(), s.propertyID).Return(property, nil)
		s.guests.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, g *guest.Guest) error {
				stored = g
				return nil
			})

		id, err := s.guestUC.AddGuestQuick(context.Background(), s.propertyID, " Ada ", "Lovelace")

		s.Require().NoError(err)
		s.Equal(stored.ID(), id)
		s.Equal("Ada Lovelace", stored.FullName())
	})

	s.Run("error: quick add without last name", func() {
		_, err := s.guestUC.AddGuestQuick(context.Background(), s.propertyID, "Ada", " ")

		s.ErrorIs(err, guest.ErrNameRequired)
	})

	s.Run("error: invalid email", func() {
		_, err := s.guestUC.CreateGuest(context.Background(), commands.CreateGuestInput{
			PropertyID: s.propertyID,
			FirstName:  "Ada",
			LastName:   "Lovelace",
			Email:      "not-an-email",
		})

		s.ErrorIs(err, guest.ErrInvalidEmail)
	})

	s.Run("error: unknown property", func() {
		s.properties.EXPECT().FindByID(gomock.Any(), s.propertyID).Return(nil, notFoundErr())

		_, err := s.guestUC.CreateGuest(context.Background(), commands.CreateGuestInput{
			PropertyID: s.propertyID,
			FirstName:  "Ada",
			LastName:   "Lovelace",
		})

		s.ErrorIs(err, commands.ErrPropertyNotFound)
	})
}
