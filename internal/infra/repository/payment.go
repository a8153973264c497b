package repository

import (
	"context"
	"log/slog"

	"hotel-inventory/internal/domain/booking"
	"hotel-inventory/internal/infra/db"
	"hotel-inventory/internal/pkg/pgconv"
)

const insertPaymentSQL = `
INSERT INTO payments (id, booking_id, property_id, method, amount_cents, received_at, reference, created_by)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

type PaymentRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewPaymentRepository(db db.DBTX) *PaymentRepository {
	return &PaymentRepository{db: db, logger: slog.Default()}
}

func (r *PaymentRepository) Create(ctx context.Context, p *booking.Payment) error {
	_, err := r.db.Exec(ctx, insertPaymentSQL,
		p.ID(), p.BookingID(), p.PropertyID(), p.Method().String(), p.Amount().Cents(),
		pgconv.TimeToPgtype(p.ReceivedAt()), p.Reference(), p.CreatedBy())
	if err != nil {
		return rowErr(r.logger, "failed to record payment", err)
	}
	return nil
}
