package queries

import (
	"context"

	"hotel-inventory/internal/domain/calendar"
	"hotel-inventory/internal/infra/db"
	"hotel-inventory/internal/usecase/shared"

	"github.com/google/uuid"
)

type RoomCounts struct {
	Total  int
	Active int
}

type DashboardReadStore interface {
	CountRooms(ctx context.Context, db db.DBTX, propertyID uuid.UUID) (RoomCounts, error)
	// ListArrivals and ListDepartures ignore cancelled and no-show bookings.
	ListArrivals(ctx context.Context, db db.DBTX, propertyID uuid.UUID, day calendar.Date) ([]*BookingListItem, error)
	ListDepartures(ctx context.Context, db db.DBTX, propertyID uuid.UUID, day calendar.Date) ([]*BookingListItem, error)
	// CountInHouse counts checked-in bookings.
	CountInHouse(ctx context.Context, db db.DBTX, propertyID uuid.UUID) (int, error)
	// SumPayments adds payments received in [from, to).
	SumPayments(ctx context.Context, db db.DBTX, propertyID uuid.UUID, from, to calendar.Date) (int64, error)
}

type DashboardQueries interface {
	Get(ctx context.Context, propertyID uuid.UUID, day calendar.Date) (*DashboardView, error)
}

type dashboardQueriesImpl struct {
	uow     shared.UnitOfWork
	store   DashboardReadStore
	catalog CatalogReadStore
}

func NewDashboardQueries(uow shared.UnitOfWork, store DashboardReadStore, catalog CatalogReadStore) DashboardQueries {
	return &dashboardQueriesImpl{uow: uow, store: store, catalog: catalog}
}

func (q *dashboardQueriesImpl) Get(ctx context.Context, propertyID uuid.UUID, day calendar.Date) (*DashboardView, error) {
	monthStart := calendar.NewDate(day.Year(), day.Time().Month(), 1)
	nextMonth := calendar.DateOf(monthStart.Time().AddDate(0, 1, 0))

	view := &DashboardView{PropertyID: propertyID, Date: day}
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db db.DBTX) error {
		if _, err := q.catalog.FindProperty(ctx, db, propertyID); err != nil {
			return notFound(err, ErrPropertyNotFound)
		}
		rooms, err := q.store.CountRooms(ctx, db, propertyID)
		if err != nil {
			return err
		}
		arrivals, err := q.store.ListArrivals(ctx, db, propertyID, day)
		if err != nil {
			return err
		}
		departures, err := q.store.ListDepartures(ctx, db, propertyID, day)
		if err != nil {
			return err
		}
		inHouse, err := q.store.CountInHouse(ctx, db, propertyID)
		if err != nil {
			return err
		}
		paid, err := q.store.SumPayments(ctx, db, propertyID, monthStart, nextMonth)
		if err != nil {
			return err
		}

		view.RoomsTotal = rooms.Total
		view.RoomsActive = rooms.Active
		view.ArrivalsToday = len(arrivals)
		view.DeparturesToday = len(departures)
		view.InHouse = inHouse
		view.Arrivals = arrivals
		view.Departures = departures
		view.PaymentsThisMonthCents = paid
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}
