package repository

import (
	"context"
	"log/slog"

	"hotel-inventory/internal/domain/booking"
	"hotel-inventory/internal/domain/inventory"
	"hotel-inventory/internal/domain/money"
	"hotel-inventory/internal/infra/db"
	"hotel-inventory/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	insertRoomSQL = `
INSERT INTO rooms (id, property_id, room_type_id, code, base_price_per_night_cents, is_active, notes)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	selectRoomSQL = `
SELECT id, property_id, room_type_id, code, base_price_per_night_cents, is_active, notes, created_at, updated_at
FROM rooms WHERE id = $1`

	updateRoomSQL = `
UPDATE rooms SET base_price_per_night_cents = $2, is_active = $3, notes = $4, updated_at = now()
WHERE id = $1`

	deleteRoomSQL = `DELETE FROM rooms WHERE id = $1`

	selectRoomPricesSQL = `SELECT id, base_price_per_night_cents FROM rooms WHERE id = ANY($1)`
)

type RoomRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewRoomRepository(db db.DBTX) *RoomRepository {
	return &RoomRepository{db: db, logger: slog.Default()}
}

func (r *RoomRepository) Create(ctx context.Context, room *inventory.Room) error {
	_, err := r.db.Exec(ctx, insertRoomSQL,
		room.ID(), room.PropertyID(), room.RoomTypeID(), room.Code(),
		room.BasePricePerNight().Cents(), room.IsActive(), room.Notes())
	if err != nil {
		return rowErr(r.logger, "failed to create room", err)
	}
	return nil
}

func (r *RoomRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Room, error) {
	return r.find(ctx, selectRoomSQL, id)
}

func (r *RoomRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*inventory.Room, error) {
	return r.find(ctx, selectRoomSQL+" FOR UPDATE", id)
}

func (r *RoomRepository) find(ctx context.Context, sql string, id uuid.UUID) (*inventory.Room, error) {
	var (
		rid                  uuid.UUID
		spec                 inventory.RoomSpec
		priceCents           int64
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, sql, id).Scan(
		&rid, &spec.PropertyID, &spec.RoomTypeID, &spec.Code, &priceCents, &spec.Active, &spec.Notes,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, rowErr(r.logger, "failed to find room", err)
	}
	spec.BasePricePerNight = money.FromCents(priceCents)
	return inventory.ReconstructRoom(rid, spec, pgconv.TimeFromPgtype(createdAt), pgconv.TimeFromPgtype(updatedAt)), nil
}

func (r *RoomRepository) Update(ctx context.Context, room *inventory.Room) error {
	return execAffecting(ctx, r.db, r.logger, "failed to update room", updateRoomSQL,
		room.ID(), room.BasePricePerNight().Cents(), room.IsActive(), room.Notes())
}

func (r *RoomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return execAffecting(ctx, r.db, r.logger, "failed to delete room", deleteRoomSQL, id)
}

func (r *RoomRepository) Prices(ctx context.Context, ids []uuid.UUID) (booking.RateCard, error) {
	rates := make(booking.RateCard, len(ids))
	if len(ids) == 0 {
		return rates, nil
	}

	rows, err := r.db.Query(ctx, selectRoomPricesSQL, pgconv.UUIDsToPgtype(ids))
	if err != nil {
		return nil, rowErr(r.logger, "failed to load room prices", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id    uuid.UUID
			cents int64
		)
		if err := rows.Scan(&id, &cents); err != nil {
			return nil, rowErr(r.logger, "failed to scan room price", err)
		}
		rates[id] = money.FromCents(cents)
	}
	if err := rows.Err(); err != nil {
		return nil, rowErr(r.logger, "failed to iterate room prices", err)
	}
	return rates, nil
}
