package queries

import (
	"context"

	"hotel-inventory/internal/infra/db"
	"hotel-inventory/internal/usecase/shared"

	"github.com/google/uuid"
)

type CatalogReadStore interface {
	FindProperty(ctx context.Context, db db.DBTX, id uuid.UUID) (*PropertyView, error)
	ListProperties(ctx context.Context, db db.DBTX) ([]*PropertyView, error)
	// ListRoomTypes orders by display order, then name.
	ListRoomTypes(ctx context.Context, db db.DBTX, propertyID uuid.UUID) ([]*RoomTypeView, error)
	// ListRooms orders by room code.
	ListRooms(ctx context.Context, db db.DBTX, propertyID uuid.UUID) ([]*RoomView, error)
	// SearchGuests matches search against first name, last name or email; empty matches all.
	SearchGuests(ctx context.Context, db db.DBTX, propertyID uuid.UUID, search string, limit int) ([]*GuestView, error)
}

type CatalogQueries interface {
	ListProperties(ctx context.Context) ([]*PropertyView, error)
	ListRoomTypes(ctx context.Context, propertyID uuid.UUID) ([]*RoomTypeView, error)
	ListRooms(ctx context.Context, propertyID uuid.UUID) ([]*RoomView, error)
	ListGuests(ctx context.Context, propertyID uuid.UUID, search string, limit int) ([]*GuestView, error)
}

type catalogQueriesImpl struct {
	uow   shared.UnitOfWork
	store CatalogReadStore
}

func NewCatalogQueries(uow shared.UnitOfWork, store CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{uow: uow, store: store}
}

func (q *catalogQueriesImpl) ListProperties(ctx context.Context) ([]*PropertyView, error) {
	var out []*PropertyView
	err := q.uow.WithDB(ctx, func(ctx context.Context, db db.DBTX) error {
		var err error
		out, err = q.store.ListProperties(ctx, db)
		return err
	})
	return out, err
}

func (q *catalogQueriesImpl) ListRoomTypes(ctx context.Context, propertyID uuid.UUID) ([]*RoomTypeView, error) {
	var out []*RoomTypeView
	err := q.withProperty(ctx, propertyID, func(ctx context.Context, db db.DBTX) error {
		var err error
		out, err = q.store.ListRoomTypes(ctx, db, propertyID)
		return err
	})
	return out, err
}

func (q *catalogQueriesImpl) ListRooms(ctx context.Context, propertyID uuid.UUID) ([]*RoomView, error) {
	var out []*RoomView
	err := q.withProperty(ctx, propertyID, func(ctx context.Context, db db.DBTX) error {
		var err error
		out, err = q.store.ListRooms(ctx, db, propertyID)
		return err
	})
	return out, err
}

func (q *catalogQueriesImpl) ListGuests(ctx context.Context, propertyID uuid.UUID, search string, limit int) ([]*GuestView, error) {
	limit = ValidateLimit(limit)
	var out []*GuestView
	err := q.withProperty(ctx, propertyID, func(ctx context.Context, db db.DBTX) error {
		var err error
		out, err = q.store.SearchGuests(ctx, db, propertyID, search, limit)
		return err
	})
	return out, err
}

// withProperty answers NotFound for an unknown property instead of an empty list.
func (q *catalogQueriesImpl) withProperty(ctx context.Context, propertyID uuid.UUID, fn func(ctx context.Context, db db.DBTX) error) error {
	return q.uow.WithDB(ctx, func(ctx context.Context, db db.DBTX) error {
		if _, err := q.store.FindProperty(ctx, db, propertyID); err != nil {
			return notFound(err, ErrPropertyNotFound)
		}
		return fn(ctx, db)
	})
}
