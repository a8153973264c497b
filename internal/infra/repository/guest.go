package repository

import (
	"context"
	"log/slog"

	"hotel-inventory/internal/domain/guest"
	"hotel-inventory/internal/infra/db"
	"hotel-inventory/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	insertGuestSQL = `
INSERT INTO guests (id, property_id, first_name, last_name, email, phone, nationality, document_type, document_number, date_of_birth, address, notes)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	selectGuestSQL = `
SELECT id, property_id, first_name, last_name, email, phone, nationality, document_type, document_number, date_of_birth, address, notes, created_at, updated_at
FROM guests WHERE id = $1`
)

type GuestRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewGuestRepository(db db.DBTX) *GuestRepository {
	return &GuestRepository{db: db, logger: slog.Default()}
}

func (r *GuestRepository) Create(ctx context.Context, g *guest.Guest) error {
	p := g.Profile()
	_, err := r.db.Exec(ctx, insertGuestSQL,
		g.ID(), g.PropertyID(), g.FirstName(), g.LastName(),
		p.Email, p.Phone, p.Nationality, p.DocumentType, p.DocumentNumber,
		pgconv.DatePtrToPgtype(p.DateOfBirth), p.Address, p.Notes)
	if err != nil {
		return rowErr(r.logger, "failed to create guest", err)
	}
	return nil
}

func (r *GuestRepository) FindByID(ctx context.Context, id uuid.UUID) (*guest.Guest, error) {
	var (
		gid, propertyID      uuid.UUID
		first, last          string
		p                    guest.Profile
		dob                  pgtype.Date
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, selectGuestSQL, id).Scan(
		&gid, &propertyID, &first, &last,
		&p.Email, &p.Phone, &p.Nationality, &p.DocumentType, &p.DocumentNumber,
		&dob, &p.Address, &p.Notes, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, rowErr(r.logger, "failed to find guest", err)
	}
	p.DateOfBirth = pgconv.DatePtrFromPgtype(dob)
	return guest.ReconstructGuest(gid, propertyID, first, last, p,
		pgconv.TimeFromPgtype(createdAt), pgconv.TimeFromPgtype(updatedAt)), nil
}
