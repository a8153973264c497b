package shared

import (
	"context"

	"hotel-inventory/internal/domain/booking"
	"hotel-inventory/internal/domain/calendar"
	"hotel-inventory/internal/domain/guest"
	"hotel-inventory/internal/domain/inventory"
	"hotel-inventory/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Read-committed transaction for write operations, retried on serialization failure or deadlock
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
}

// Tx exposes repositories bound to one transaction.
type Tx interface {
	Properties() PropertyRepository
	RoomTypes() RoomTypeRepository
	Rooms() RoomRepository
	Guests() GuestRepository
	Bookings() BookingRepository
	Payments() PaymentRepository
	CodeSequences() CodeSequenceRepository
	DB() db.DBTX
}

type PropertyRepository interface {
	Create(ctx context.Context, p *inventory.Property) error
	FindByID(ctx context.Context, id uuid.UUID) (*inventory.Property, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type RoomTypeRepository interface {
	Create(ctx context.Context, rt *inventory.RoomType) error
	FindByID(ctx context.Context, id uuid.UUID) (*inventory.RoomType, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type RoomRepository interface {
	Create(ctx context.Context, r *inventory.Room) error
	FindByID(ctx context.Context, id uuid.UUID) (*inventory.Room, error)
	// FindByIDForUpdate locks the room row until the transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*inventory.Room, error)
	Update(ctx context.Context, r *inventory.Room) error
	Delete(ctx context.Context, id uuid.UUID) error
	// Prices returns the current price per night of each listed room.
	Prices(ctx context.Context, ids []uuid.UUID) (booking.RateCard, error)
}

type GuestRepository interface {
	Create(ctx context.Context, g *guest.Guest) error
	FindByID(ctx context.Context, id uuid.UUID) (*guest.Guest, error)
}

type BookingRepository interface {
	// Create inserts the header and any guest links of a new booking.
	Create(ctx context.Context, b *booking.Booking) error
	// FindByIDForUpdate loads the aggregate with its lines and guest links
	// and locks the booking row until the transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	BookingIDByLine(ctx context.Context, lineID uuid.UUID) (uuid.UUID, error)
	BookingIDByGuestLink(ctx context.Context, linkID uuid.UUID) (uuid.UUID, error)
	// Update writes the header and every line total.
	Update(ctx context.Context, b *booking.Booking) error

	InsertLine(ctx context.Context, line *booking.Line) error
	UpdateLineRoom(ctx context.Context, line *booking.Line) error
	DeleteLine(ctx context.Context, lineID uuid.UUID) error

	ClearLeadFlags(ctx context.Context, bookingID uuid.UUID) error
	InsertGuestLink(ctx context.Context, link *booking.GuestLink) error
	DeleteGuestLink(ctx context.Context, linkID uuid.UUID) error

	// RoomHeld reports whether another line of a booking that still holds
	// inventory has roomID on a range overlapping stay.
	RoomHeld(ctx context.Context, roomID uuid.UUID, stay calendar.DateRange, excludeLineID uuid.UUID) (bool, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, p *booking.Payment) error
}

type CodeSequenceRepository interface {
	// Next atomically increments and returns the property's counter for year.
	Next(ctx context.Context, propertyID uuid.UUID, year int) (int64, error)
}
