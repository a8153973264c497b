package queries

import (
	"context"
	"log/slog"

	"hotel-inventory/internal/domain/availability"
	"hotel-inventory/internal/domain/calendar"
	"hotel-inventory/internal/infra/db"
	"hotel-inventory/internal/usecase/shared"

	"github.com/google/uuid"
)

type RoomTypeSummary struct {
	ID           uuid.UUID
	Code         string
	Name         string
	DisplayOrder int
}

// AvailabilityReadStore supplies the inventory snapshot behind the calendar.
type AvailabilityReadStore interface {
	// ListActiveRoomTypes orders by display order, then name.
	ListActiveRoomTypes(ctx context.Context, db db.DBTX, propertyID uuid.UUID) ([]RoomTypeSummary, error)
	// CountActiveRooms counts active rooms per room type.
	CountActiveRooms(ctx context.Context, db db.DBTX, propertyID uuid.UUID) (map[uuid.UUID]int, error)
	// FindOverlappingLines skips lines of cancelled and no-show bookings.
	FindOverlappingLines(ctx context.Context, db db.DBTX, propertyID uuid.UUID, window calendar.DateRange) ([]availability.Occupancy, error)
}

type AvailabilityQueries interface {
	Compute(ctx context.Context, propertyID uuid.UUID, start calendar.Date, days int) (*availability.Calendar, error)
}

type availabilityQueriesImpl struct {
	uow     shared.UnitOfWork
	store   AvailabilityReadStore
	catalog CatalogReadStore
}

func NewAvailabilityQueries(uow shared.UnitOfWork, store AvailabilityReadStore, catalog CatalogReadStore) AvailabilityQueries {
	return &availabilityQueriesImpl{uow: uow, store: store, catalog: catalog}
}

func (q *availabilityQueriesImpl) Compute(ctx context.Context, propertyID uuid.UUID, start calendar.Date, days int) (*availability.Calendar, error) {
	window, err := calendar.NewWindow(start, days)
	if err != nil {
		return nil, err
	}

	var cal *availability.Calendar
	err = q.uow.WithinReadOnly(ctx, func(ctx context.Context, db db.DBTX) error {
		if _, err := q.catalog.FindProperty(ctx, db, propertyID); err != nil {
			return notFound(err, ErrPropertyNotFound)
		}
		roomTypes, err := q.store.ListActiveRoomTypes(ctx, db, propertyID)
		if err != nil {
			return err
		}
		counts, err := q.store.CountActiveRooms(ctx, db, propertyID)
		if err != nil {
			return err
		}
		lines, err := q.store.FindOverlappingLines(ctx, db, propertyID, window)
		if err != nil {
			return err
		}

		capacities := make([]availability.RoomTypeCapacity, len(roomTypes))
		for i, rt := range roomTypes {
			capacities[i] = availability.RoomTypeCapacity{
				RoomTypeID:   rt.ID,
				Code:         rt.Code,
				Name:         rt.Name,
				DisplayOrder: rt.DisplayOrder,
				ActiveRooms:  counts[rt.ID],
			}
		}
		cal = availability.Compute(window, capacities, lines)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if n := cal.OversoldCells(); n > 0 {
		slog.WarnContext(ctx, "property oversold",
			"property_id", propertyID,
			"window", window.String(),
			"oversold_cells", n)
	}
	return cal, nil
}
