package queries

import (
	"context"
	"time"

	"hotel-inventory/internal/domain/booking"
	"hotel-inventory/internal/infra/db"
	"hotel-inventory/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingReadStore interface {
	FindByID(ctx context.Context, db db.DBTX, id uuid.UUID) (*BookingView, error)
	FindRooms(ctx context.Context, db db.DBTX, bookingID uuid.UUID) ([]*BookingRoomView, error)
	FindGuests(ctx context.Context, db db.DBTX, bookingID uuid.UUID) ([]*BookingGuestView, error)
	FindPayments(ctx context.Context, db db.DBTX, bookingID uuid.UUID) ([]*PaymentView, error)
	// ListFirstPage and ListKeyset order by check-in date, then id.
	ListFirstPage(ctx context.Context, db db.DBTX, filters BookingFilters, limit int) ([]*BookingListItem, error)
	ListKeyset(ctx context.Context, db db.DBTX, filters BookingFilters, afterCheckIn time.Time, afterID uuid.UUID, limit int) ([]*BookingListItem, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, filters BookingFilters, cursor *Cursor, limit int) ([]*BookingListItem, *Cursor, error)
}

type bookingQueriesImpl struct {
	uow   shared.UnitOfWork
	store BookingReadStore
}

func NewBookingQueries(uow shared.UnitOfWork, store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{uow: uow, store: store}
}

// GetByID returns the booking with its lines, guests and payments from one snapshot.
func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	var view *BookingView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db db.DBTX) error {
		v, err := q.store.FindByID(ctx, db, id)
		if err != nil {
			return notFound(err, ErrBookingNotFound)
		}
		if v.Rooms, err = q.store.FindRooms(ctx, db, id); err != nil {
			return err
		}
		if v.Guests, err = q.store.FindGuests(ctx, db, id); err != nil {
			return err
		}
		if v.Payments, err = q.store.FindPayments(ctx, db, id); err != nil {
			return err
		}

		v.PaidCents = 0
		for _, p := range v.Payments {
			v.PaidCents += p.AmountCents
		}
		view = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) List(ctx context.Context, filters BookingFilters, cursor *Cursor, limit int) ([]*BookingListItem, *Cursor, error) {
	if filters.Status != nil {
		if _, err := booking.ParseStatus(*filters.Status); err != nil {
			return nil, nil, ErrInvalidStatus
		}
	}
	limit = ValidateLimit(limit)

	var rows []*BookingListItem
	err := q.uow.WithDB(ctx, func(ctx context.Context, db db.DBTX) error {
		var err error
		if cursor == nil || cursor.After == "" {
			rows, err = q.store.ListFirstPage(ctx, db, filters, limit+1)
			return err
		}
		afterCheckIn, afterID, err := DecodeAfterCursor(cursor.After)
		if err != nil {
			return err
		}
		rows, err = q.store.ListKeyset(ctx, db, filters, afterCheckIn, afterID, limit+1)
		return err
	})
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CheckIn.Time(), last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
