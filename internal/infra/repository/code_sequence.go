package repository

import (
	"context"
	"log/slog"

	"hotel-inventory/internal/infra/db"

	"github.com/google/uuid"
)

// Concurrent callers for one property and year serialize on the upserted row.
const nextCodeSequenceSQL = `
INSERT INTO booking_code_sequences (property_id, year, last_value)
VALUES ($1, $2, 1)
ON CONFLICT (property_id, year)
DO UPDATE SET last_value = booking_code_sequences.last_value + 1
RETURNING last_value`

type CodeSequenceRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewCodeSequenceRepository(db db.DBTX) *CodeSequenceRepository {
	return &CodeSequenceRepository{db: db, logger: slog.Default()}
}

func (r *CodeSequenceRepository) Next(ctx context.Context, propertyID uuid.UUID, year int) (int64, error) {
	var next int64
	if err := r.db.QueryRow(ctx, nextCodeSequenceSQL, propertyID, year).Scan(&next); err != nil {
		return 0, rowErr(r.logger, "failed to allocate booking code", err)
	}
	return next, nil
}
