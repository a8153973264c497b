package readstore

import (
	"context"
	"log/slog"

	"hotel-inventory/internal/domain/calendar"
	"hotel-inventory/internal/infra"
	"hotel-inventory/internal/infra/db"
	"hotel-inventory/internal/pkg/pgconv"
	"hotel-inventory/internal/usecase/queries"

	"github.com/google/uuid"
)

const (
	countRoomsSQL = `
SELECT count(*), count(*) FILTER (WHERE is_active)
FROM rooms WHERE property_id = $1`

	listArrivalsSQL = bookingListSelect + `
WHERE b.property_id = $1
  AND b.check_in_date = $2
  AND b.status NOT IN ('cancelled', 'no_show')
ORDER BY b.code`

	listDeparturesSQL = bookingListSelect + `
WHERE b.property_id = $1
  AND b.check_out_date = $2
  AND b.status NOT IN ('cancelled', 'no_show')
ORDER BY b.code`

	countInHouseSQL = `SELECT count(*) FROM bookings WHERE property_id = $1 AND status = 'checked_in'`

	sumPaymentsSQL = `
SELECT COALESCE(sum(amount_cents), 0)::bigint
FROM payments
WHERE property_id = $1 AND received_at >= $2 AND received_at < $3`
)

type DashboardReadStore struct {
	logger *slog.Logger
}

func NewDashboardReadStore() *DashboardReadStore {
	return &DashboardReadStore{logger: slog.Default()}
}

func (s *DashboardReadStore) CountRooms(ctx context.Context, dbtx db.DBTX, propertyID uuid.UUID) (queries.RoomCounts, error) {
	var c queries.RoomCounts
	if err := dbtx.QueryRow(ctx, countRoomsSQL, propertyID).Scan(&c.Total, &c.Active); err != nil {
		return queries.RoomCounts{}, infra.WrapClassified(s.logger, "failed to count rooms", err)
	}
	return c, nil
}

func (s *DashboardReadStore) ListArrivals(ctx context.Context, dbtx db.DBTX, propertyID uuid.UUID, day calendar.Date) ([]*queries.BookingListItem, error) {
	rows, err := dbtx.Query(ctx, listArrivalsSQL, propertyID, pgconv.DateToPgtype(day))
	if err != nil {
		return nil, infra.WrapClassified(s.logger, "failed to list arrivals", err)
	}
	return collectListItems(s.logger, rows)
}

func (s *DashboardReadStore) ListDepartures(ctx context.Context, dbtx db.DBTX, propertyID uuid.UUID, day calendar.Date) ([]*queries.BookingListItem, error) {
	rows, err := dbtx.Query(ctx, listDeparturesSQL, propertyID, pgconv.DateToPgtype(day))
	if err != nil {
		return nil, infra.WrapClassified(s.logger, "failed to list departures", err)
	}
	return collectListItems(s.logger, rows)
}

func (s *DashboardReadStore) CountInHouse(ctx context.Context, dbtx db.DBTX, propertyID uuid.UUID) (int, error) {
	var n int
	if err := dbtx.QueryRow(ctx, countInHouseSQL, propertyID).Scan(&n); err != nil {
		return 0, infra.WrapClassified(s.logger, "failed to count in-house bookings", err)
	}
	return n, nil
}

// SumPayments bounds are UTC midnights.
func (s *DashboardReadStore) SumPayments(ctx context.Context, dbtx db.DBTX, propertyID uuid.UUID, from, to calendar.Date) (int64, error) {
	var total int64
	err := dbtx.QueryRow(ctx, sumPaymentsSQL, propertyID,
		pgconv.TimeToPgtype(from.Time()), pgconv.TimeToPgtype(to.Time())).Scan(&total)
	if err != nil {
		return 0, infra.WrapClassified(s.logger, "failed to sum payments", err)
	}
	return total, nil
}
