package readstore

import (
	"context"
	"log/slog"

	"hotel-inventory/internal/domain/availability"
	"hotel-inventory/internal/domain/calendar"
	"hotel-inventory/internal/infra"
	"hotel-inventory/internal/infra/db"
	"hotel-inventory/internal/pkg/pgconv"
	"hotel-inventory/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	listActiveRoomTypesSQL = `
SELECT id, code, name, display_order
FROM room_types
WHERE property_id = $1 AND is_active
ORDER BY display_order, name`

	countActiveRoomsSQL = `
SELECT room_type_id, count(*)
FROM rooms
WHERE property_id = $1 AND is_active
GROUP BY room_type_id`

	// Lines of cancelled or no-show bookings release their inventory.
	findOverlappingLinesSQL = `
SELECT br.room_type_id, br.check_in_date, br.check_out_date
FROM booking_rooms br
JOIN bookings b ON b.id = br.booking_id
WHERE b.property_id = $1
  AND b.status NOT IN ('cancelled', 'no_show')
  AND br.check_in_date < $3
  AND $2 < br.check_out_date`
)

type AvailabilityReadStore struct {
	logger *slog.Logger
}

func NewAvailabilityReadStore() *AvailabilityReadStore {
	return &AvailabilityReadStore{logger: slog.Default()}
}

func (s *AvailabilityReadStore) ListActiveRoomTypes(ctx context.Context, dbtx db.DBTX, propertyID uuid.UUID) ([]queries.RoomTypeSummary, error) {
	rows, err := dbtx.Query(ctx, listActiveRoomTypesSQL, propertyID)
	if err != nil {
		return nil, infra.WrapClassified(s.logger, "failed to list room types", err)
	}
	defer rows.Close()

	var out []queries.RoomTypeSummary
	for rows.Next() {
		var rt queries.RoomTypeSummary
		if err := rows.Scan(&rt.ID, &rt.Code, &rt.Name, &rt.DisplayOrder); err != nil {
			return nil, infra.WrapClassified(s.logger, "failed to scan room type", err)
		}
		out = append(out, rt)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapClassified(s.logger, "failed to iterate room types", err)
	}
	return out, nil
}

func (s *AvailabilityReadStore) CountActiveRooms(ctx context.Context, dbtx db.DBTX, propertyID uuid.UUID) (map[uuid.UUID]int, error) {
	rows, err := dbtx.Query(ctx, countActiveRoomsSQL, propertyID)
	if err != nil {
		return nil, infra.WrapClassified(s.logger, "failed to count rooms", err)
	}
	defer rows.Close()

	counts := make(map[uuid.UUID]int)
	for rows.Next() {
		var (
			roomTypeID uuid.UUID
			n          int
		)
		if err := rows.Scan(&roomTypeID, &n); err != nil {
			return nil, infra.WrapClassified(s.logger, "failed to scan room count", err)
		}
		counts[roomTypeID] = n
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapClassified(s.logger, "failed to iterate room counts", err)
	}
	return counts, nil
}

func (s *AvailabilityReadStore) FindOverlappingLines(ctx context.Context, dbtx db.DBTX, propertyID uuid.UUID, window calendar.DateRange) ([]availability.Occupancy, error) {
	rows, err := dbtx.Query(ctx, findOverlappingLinesSQL, propertyID,
		pgconv.DateToPgtype(window.Start()), pgconv.DateToPgtype(window.End()))
	if err != nil {
		return nil, infra.WrapClassified(s.logger, "failed to load booked lines", err)
	}
	defer rows.Close()

	var out []availability.Occupancy
	for rows.Next() {
		var (
			roomTypeID        uuid.UUID
			checkIn, checkOut pgtype.Date
		)
		if err := rows.Scan(&roomTypeID, &checkIn, &checkOut); err != nil {
			return nil, infra.WrapClassified(s.logger, "failed to scan booked line", err)
		}
		stay, err := calendar.NewDateRange(pgconv.DateFromPgtype(checkIn), pgconv.DateFromPgtype(checkOut))
		if err != nil {
			s.logger.WarnContext(ctx, "skipping booked line with invalid stay", "room_type_id", roomTypeID)
			continue
		}
		out = append(out, availability.Occupancy{RoomTypeID: roomTypeID, Stay: stay})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapClassified(s.logger, "failed to iterate booked lines", err)
	}
	return out, nil
}
