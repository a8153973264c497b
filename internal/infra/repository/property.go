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
	insertPropertySQL = `
INSERT INTO properties (id, code, name, email, phone, country_code, timezone, default_check_in_time, default_check_out_time)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	selectPropertySQL = `
SELECT id, code, name, email, phone, country_code, timezone, default_check_in_time, default_check_out_time, created_at, updated_at
FROM properties WHERE id = $1`

	deletePropertySQL = `DELETE FROM properties WHERE id = $1`
)

type PropertyRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewPropertyRepository(db db.DBTX) *PropertyRepository {
	return &PropertyRepository{db: db, logger: slog.Default()}
}

func (r *PropertyRepository) Create(ctx context.Context, p *inventory.Property) error {
	_, err := r.db.Exec(ctx, insertPropertySQL,
		p.ID(), p.Code(), p.Name(), p.Email(), p.Phone(), p.CountryCode(),
		p.Timezone(), p.DefaultCheckInTime(), p.DefaultCheckOutTime())
	if err != nil {
		return rowErr(r.logger, "failed to create property", err)
	}
	return nil
}

func (r *PropertyRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Property, error) {
	var (
		pid                  uuid.UUID
		spec                 inventory.PropertySpec
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, selectPropertySQL, id).Scan(
		&pid, &spec.Code, &spec.Name, &spec.Email, &spec.Phone, &spec.CountryCode,
		&spec.Timezone, &spec.DefaultCheckInTime, &spec.DefaultCheckOutTime,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, rowErr(r.logger, "failed to find property", err)
	}
	return inventory.ReconstructProperty(pid, spec, pgconv.TimeFromPgtype(createdAt), pgconv.TimeFromPgtype(updatedAt)), nil
}

func (r *PropertyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return execAffecting(ctx, r.db, r.logger, "failed to delete property", deletePropertySQL, id)
}
