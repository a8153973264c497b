package readstore

import (
	"context"
	"log/slog"

	"hotel-inventory/internal/infra"
	"hotel-inventory/internal/infra/db"
	"hotel-inventory/internal/pkg/pgconv"
	"hotel-inventory/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	propertyColumns = `id, code, name, email, phone, country_code, timezone, default_check_in_time, default_check_out_time, created_at, updated_at`

	findPropertySQL   = `SELECT ` + propertyColumns + ` FROM properties WHERE id = $1`
	listPropertiesSQL = `SELECT ` + propertyColumns + ` FROM properties ORDER BY name, code`

	listRoomTypesSQL = `
SELECT rt.id, rt.property_id, rt.code, rt.name, rt.description, rt.base_occupancy, rt.max_occupancy,
       rt.bed_configuration, rt.display_order, rt.is_active,
       (SELECT count(*) FROM rooms r WHERE r.room_type_id = rt.id AND r.is_active) AS active_rooms
FROM room_types rt
WHERE rt.property_id = $1
ORDER BY rt.display_order, rt.name`

	listRoomsSQL = `
SELECT r.id, r.property_id, r.room_type_id, rt.code, r.code, r.base_price_per_night_cents, r.is_active, r.notes
FROM rooms r
JOIN room_types rt ON rt.id = r.room_type_id
WHERE r.property_id = $1
ORDER BY r.code`

	searchGuestsSQL = `
SELECT id, property_id, first_name, last_name, email, phone, nationality, document_type, document_number, date_of_birth, created_at
FROM guests
WHERE property_id = $1
  AND ($2::text = '' OR first_name ILIKE '%' || $2::text || '%' OR last_name ILIKE '%' || $2::text || '%' OR email ILIKE '%' || $2::text || '%')
ORDER BY last_name, first_name, id
LIMIT $3`
)

type CatalogReadStore struct {
	logger *slog.Logger
}

func NewCatalogReadStore() *CatalogReadStore {
	return &CatalogReadStore{logger: slog.Default()}
}

func (s *CatalogReadStore) FindProperty(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*queries.PropertyView, error) {
	v, err := scanProperty(dbtx.QueryRow(ctx, findPropertySQL, id))
	if err != nil {
		return nil, infra.WrapClassified(s.logger, "failed to find property", err)
	}
	return v, nil
}

func (s *CatalogReadStore) ListProperties(ctx context.Context, dbtx db.DBTX) ([]*queries.PropertyView, error) {
	rows, err := dbtx.Query(ctx, listPropertiesSQL)
	if err != nil {
		return nil, infra.WrapClassified(s.logger, "failed to list properties", err)
	}
	defer rows.Close()

	out := make([]*queries.PropertyView, 0)
	for rows.Next() {
		v, err := scanProperty(rows)
		if err != nil {
			return nil, infra.WrapClassified(s.logger, "failed to scan property", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapClassified(s.logger, "failed to iterate properties", err)
	}
	return out, nil
}

func scanProperty(row pgx.Row) (*queries.PropertyView, error) {
	var (
		v                    queries.PropertyView
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := row.Scan(&v.ID, &v.Code, &v.Name, &v.Email, &v.Phone, &v.CountryCode, &v.Timezone,
		&v.DefaultCheckInTime, &v.DefaultCheckOutTime, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	v.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	v.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &v, nil
}

func (s *CatalogReadStore) ListRoomTypes(ctx context.Context, dbtx db.DBTX, propertyID uuid.UUID) ([]*queries.RoomTypeView, error) {
	rows, err := dbtx.Query(ctx, listRoomTypesSQL, propertyID)
	if err != nil {
		return nil, infra.WrapClassified(s.logger, "failed to list room types", err)
	}
	defer rows.Close()

	out := make([]*queries.RoomTypeView, 0)
	for rows.Next() {
		var v queries.RoomTypeView
		if err := rows.Scan(&v.ID, &v.PropertyID, &v.Code, &v.Name, &v.Description,
			&v.BaseOccupancy, &v.MaxOccupancy, &v.BedConfiguration, &v.DisplayOrder, &v.Active,
			&v.ActiveRooms); err != nil {
			return nil, infra.WrapClassified(s.logger, "failed to scan room type", err)
		}
		out = append(out, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapClassified(s.logger, "failed to iterate room types", err)
	}
	return out, nil
}

func (s *CatalogReadStore) ListRooms(ctx context.Context, dbtx db.DBTX, propertyID uuid.UUID) ([]*queries.RoomView, error) {
	rows, err := dbtx.Query(ctx, listRoomsSQL, propertyID)
	if err != nil {
		return nil, infra.WrapClassified(s.logger, "failed to list rooms", err)
	}
	defer rows.Close()

	out := make([]*queries.RoomView, 0)
	for rows.Next() {
		var v queries.RoomView
		if err := rows.Scan(&v.ID, &v.PropertyID, &v.RoomTypeID, &v.RoomTypeCode, &v.Code,
			&v.BasePricePerNightCents, &v.Active, &v.Notes); err != nil {
			return nil, infra.WrapClassified(s.logger, "failed to scan room", err)
		}
		out = append(out, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapClassified(s.logger, "failed to iterate rooms", err)
	}
	return out, nil
}

func (s *CatalogReadStore) SearchGuests(ctx context.Context, dbtx db.DBTX, propertyID uuid.UUID, search string, limit int) ([]*queries.GuestView, error) {
	rows, err := dbtx.Query(ctx, searchGuestsSQL, propertyID, search, limit)
	if err != nil {
		return nil, infra.WrapClassified(s.logger, "failed to search guests", err)
	}
	defer rows.Close()

	out := make([]*queries.GuestView, 0)
	for rows.Next() {
		var (
			v         queries.GuestView
			dob       pgtype.Date
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&v.ID, &v.PropertyID, &v.FirstName, &v.LastName, &v.Email, &v.Phone,
			&v.Nationality, &v.DocumentType, &v.DocumentNumber, &dob, &createdAt); err != nil {
			return nil, infra.WrapClassified(s.logger, "failed to scan guest", err)
		}
		v.DateOfBirth = pgconv.DatePtrFromPgtype(dob)
		v.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		out = append(out, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapClassified(s.logger, "failed to iterate guests", err)
	}
	return out, nil
}
