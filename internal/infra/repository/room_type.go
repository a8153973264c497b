package repository

import (
	"context"
	"log/slog"

	"hotel-inventory/internal/domain/inventory"
	"hotel-inventory/internal/infra/db"
	"hotel-inventory/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	insertRoomTypeSQL = `
INSERT INTO room_types (id, property_id, code, name, description, base_occupancy, max_occupancy, bed_configuration, display_order, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	selectRoomTypeSQL = `
SELECT id, property_id, code, name, description, base_occupancy, max_occupancy, bed_configuration, display_order, is_active, created_at, updated_at
FROM room_types WHERE id = $1`

	deleteRoomTypeSQL = `DELETE FROM room_types WHERE id = $1`
)

type RoomTypeRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewRoomTypeRepository(db db.DBTX) *RoomTypeRepository {
	return &RoomTypeRepository{db: db, logger: slog.Default()}
}

func (r *RoomTypeRepository) Create(ctx context.Context, rt *inventory.RoomType) error {
	_, err := r.db.Exec(ctx, insertRoomTypeSQL,
		rt.ID(), rt.PropertyID(), rt.Code(), rt.Name(), rt.Description(),
		rt.BaseOccupancy(), rt.MaxOccupancy(), rt.BedConfiguration(), rt.DisplayOrder(), rt.IsActive())
	if err != nil {
		return rowErr(r.logger, "failed to create room type", err)
	}
	return nil
}

func (r *RoomTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.RoomType, error) {
	var (
		rid                  uuid.UUID
		spec                 inventory.RoomTypeSpec
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, selectRoomTypeSQL, id).Scan(
		&rid, &spec.PropertyID, &spec.Code, &spec.Name, &spec.Description,
		&spec.BaseOccupancy, &spec.MaxOccupancy, &spec.BedConfiguration, &spec.DisplayOrder, &spec.Active,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, rowErr(r.logger, "failed to find room type", err)
	}
	return inventory.ReconstructRoomType(rid, spec, pgconv.TimeFromPgtype(createdAt), pgconv.TimeFromPgtype(updatedAt)), nil
}

func (r *RoomTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return execAffecting(ctx, r.db, r.logger, "failed to delete room type", deleteRoomTypeSQL, id)
}
