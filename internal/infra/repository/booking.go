package repository

import (
	"context"
	"log/slog"

	"hotel-inventory/internal/domain/booking"
	"hotel-inventory/internal/domain/calendar"
	"hotel-inventory/internal/domain/money"
	"hotel-inventory/internal/infra"
	"hotel-inventory/internal/infra/db"
	"hotel-inventory/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	insertBookingSQL = `
INSERT INTO bookings (
    id, property_id, code, status, check_in_date, check_out_date, adults, children, infants,
    lead_guest_id, contact_email, contact_phone, notes, total_cents, created_by, booked_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	selectBookingForUpdateSQL = `
SELECT id, property_id, code, status, check_in_date, check_out_date, adults, children, infants,
       lead_guest_id, contact_email, contact_phone, notes, total_cents, created_by, booked_at,
       checked_in_at, checked_out_at, cancelled_at, cancelled_by, created_at, updated_at
FROM bookings WHERE id = $1
FOR UPDATE`

	updateBookingSQL = `
UPDATE bookings SET
    status = $2, check_in_date = $3, check_out_date = $4, adults = $5, children = $6, infants = $7,
    lead_guest_id = $8, contact_email = $9, contact_phone = $10, notes = $11, total_cents = $12,
    checked_in_at = $13, checked_out_at = $14, cancelled_at = $15, cancelled_by = $16, updated_at = now()
WHERE id = $1`

	updateLineTotalsSQL = `
UPDATE booking_rooms AS br SET line_total_cents = v.total, updated_at = now()
FROM unnest($1::uuid[], $2::bigint[]) AS v(id, total)
WHERE br.id = v.id AND br.line_total_cents <> v.total`

	selectLinesSQL = `
SELECT id, booking_id, room_type_id, room_id, check_in_date, check_out_date, adults, children, infants,
       line_total_cents, created_at, updated_at
FROM booking_rooms WHERE booking_id = $1
ORDER BY created_at, id`

	insertLineSQL = `
INSERT INTO booking_rooms (id, booking_id, room_type_id, room_id, check_in_date, check_out_date, adults, children, infants, line_total_cents)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	updateLineRoomSQL = `UPDATE booking_rooms SET room_id = $2, updated_at = now() WHERE id = $1`

	deleteLineSQL = `DELETE FROM booking_rooms WHERE id = $1`

	selectBookingIDByLineSQL = `SELECT booking_id FROM booking_rooms WHERE id = $1`

	selectGuestLinksSQL = `
SELECT id, booking_id, booking_room_id, guest_id, is_lead, created_at
FROM booking_guests WHERE booking_id = $1
ORDER BY created_at, id`

	insertGuestLinkSQL = `
INSERT INTO booking_guests (id, booking_id, booking_room_id, guest_id, is_lead)
VALUES ($1, $2, $3, $4, $5)`

	clearLeadFlagsSQL = `UPDATE booking_guests SET is_lead = false WHERE booking_id = $1 AND is_lead`

	deleteGuestLinkSQL = `DELETE FROM booking_guests WHERE id = $1`

	selectBookingIDByGuestLinkSQL = `SELECT booking_id FROM booking_guests WHERE id = $1`

	// Half-open ranges [a,b) and [c,d) overlap iff a < d and c < b.
	roomHeldSQL = `
SELECT EXISTS (
    SELECT 1
    FROM booking_rooms br
    JOIN bookings b ON b.id = br.booking_id
    WHERE br.room_id = $1
      AND br.id <> $4
      AND b.status NOT IN ('cancelled', 'no_show')
      AND br.check_in_date < $3
      AND $2 < br.check_out_date
)`
)

type BookingRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewBookingRepository(db db.DBTX) *BookingRepository {
	return &BookingRepository{db: db, logger: slog.Default()}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	occ := b.Occupancy()
	_, err := r.db.Exec(ctx, insertBookingSQL,
		b.ID(), b.PropertyID(), b.Code(), b.Status().String(),
		pgconv.DateToPgtype(b.Stay().Start()), pgconv.DateToPgtype(b.Stay().End()),
		occ.Adults(), occ.Children(), occ.Infants(),
		pgconv.UUIDPtrToPgtype(b.LeadGuestID()), b.ContactEmail(), b.ContactPhone(), b.Notes(),
		b.Total().Cents(), b.CreatedBy(), pgconv.TimeToPgtype(b.BookedAt()),
	)
	if err != nil {
		return rowErr(r.logger, "failed to create booking", err)
	}

	for _, link := range b.GuestLinks() {
		if err := r.InsertGuestLink(ctx, link); err != nil {
			return err
		}
	}
	for _, line := range b.Lines() {
		if err := r.InsertLine(ctx, line); err != nil {
			return err
		}
	}
	return nil
}

func (r *BookingRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	var (
		s                     booking.Snapshot
		status                string
		checkIn, checkOut     pgtype.Date
		adults, chil, inf     int
		lead, cancelledBy     pgtype.UUID
		totalCents            int64
		bookedAt              pgtype.Timestamptz
		checkedIn, checkedOut pgtype.Timestamptz
		cancelledAt           pgtype.Timestamptz
		createdAt, updatedAt  pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, selectBookingForUpdateSQL, id).Scan(
		&s.ID, &s.PropertyID, &s.Code, &status, &checkIn, &checkOut, &adults, &chil, &inf,
		&lead, &s.ContactEmail, &s.ContactPhone, &s.Notes, &totalCents, &s.CreatedBy, &bookedAt,
		&checkedIn, &checkedOut, &cancelledAt, &cancelledBy, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, rowErr(r.logger, "failed to load booking", err)
	}

	stay, err := calendar.NewDateRange(pgconv.DateFromPgtype(checkIn), pgconv.DateFromPgtype(checkOut))
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "stored booking has an invalid stay", err)
	}
	occ, err := booking.NewOccupancy(adults, chil, inf)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "stored booking has an invalid occupancy", err)
	}

	s.Status = booking.Status(status)
	s.Stay = stay
	s.Occupancy = occ
	s.LeadGuestID = pgconv.UUIDPtrFromPgtype(lead)
	s.Total = money.FromCents(totalCents)
	s.BookedAt = pgconv.TimeFromPgtype(bookedAt)
	s.CheckedInAt = pgconv.TimePtrFromPgtype(checkedIn)
	s.CheckedOutAt = pgconv.TimePtrFromPgtype(checkedOut)
	s.CancelledAt = pgconv.TimePtrFromPgtype(cancelledAt)
	s.CancelledBy = pgconv.UUIDPtrFromPgtype(cancelledBy)
	s.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	s.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

	lines, err := r.lines(ctx, id)
	if err != nil {
		return nil, err
	}
	guests, err := r.guestLinks(ctx, id)
	if err != nil {
		return nil, err
	}
	return booking.ReconstructBooking(s, lines, guests), nil
}

func (r *BookingRepository) lines(ctx context.Context, bookingID uuid.UUID) ([]*booking.Line, error) {
	rows, err := r.db.Query(ctx, selectLinesSQL, bookingID)
	if err != nil {
		return nil, rowErr(r.logger, "failed to load booking rooms", err)
	}
	defer rows.Close()

	var out []*booking.Line
	for rows.Next() {
		var (
			id, bid, roomTypeID  uuid.UUID
			roomID               pgtype.UUID
			checkIn, checkOut    pgtype.Date
			adults, chil, inf    int
			totalCents           int64
			createdAt, updatedAt pgtype.Timestamptz
		)
		if err := rows.Scan(&id, &bid, &roomTypeID, &roomID, &checkIn, &checkOut,
			&adults, &chil, &inf, &totalCents, &createdAt, &updatedAt); err != nil {
			return nil, rowErr(r.logger, "failed to scan booking room", err)
		}
		stay, err := calendar.NewDateRange(pgconv.DateFromPgtype(checkIn), pgconv.DateFromPgtype(checkOut))
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "stored booking room has an invalid stay", err)
		}
		occ, err := booking.NewOccupancy(adults, chil, inf)
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "stored booking room has an invalid occupancy", err)
		}
		out = append(out, booking.ReconstructLine(id, bid, roomTypeID, pgconv.UUIDPtrFromPgtype(roomID),
			stay, occ, money.FromCents(totalCents),
			pgconv.TimeFromPgtype(createdAt), pgconv.TimeFromPgtype(updatedAt)))
	}
	if err := rows.Err(); err != nil {
		return nil, rowErr(r.logger, "failed to iterate booking rooms", err)
	}
	return out, nil
}

func (r *BookingRepository) guestLinks(ctx context.Context, bookingID uuid.UUID) ([]*booking.GuestLink, error) {
	rows, err := r.db.Query(ctx, selectGuestLinksSQL, bookingID)
	if err != nil {
		return nil, rowErr(r.logger, "failed to load booking guests", err)
	}
	defer rows.Close()

	var out []*booking.GuestLink
	for rows.Next() {
		var (
			id, bid, guestID uuid.UUID
			lineID           pgtype.UUID
			isLead           bool
			createdAt        pgtype.Timestamptz
		)
		if err := rows.Scan(&id, &bid, &lineID, &guestID, &isLead, &createdAt); err != nil {
			return nil, rowErr(r.logger, "failed to scan booking guest", err)
		}
		out = append(out, booking.ReconstructGuestLink(id, bid, pgconv.UUIDPtrFromPgtype(lineID), guestID, isLead,
			pgconv.TimeFromPgtype(createdAt)))
	}
	if err := rows.Err(); err != nil {
		return nil, rowErr(r.logger, "failed to iterate booking guests", err)
	}
	return out, nil
}

func (r *BookingRepository) BookingIDByLine(ctx context.Context, lineID uuid.UUID) (uuid.UUID, error) {
	var id uuid.UUID
	if err := r.db.QueryRow(ctx, selectBookingIDByLineSQL, lineID).Scan(&id); err != nil {
		return uuid.Nil, rowErr(r.logger, "failed to find booking room", err)
	}
	return id, nil
}

func (r *BookingRepository) BookingIDByGuestLink(ctx context.Context, linkID uuid.UUID) (uuid.UUID, error) {
	var id uuid.UUID
	if err := r.db.QueryRow(ctx, selectBookingIDByGuestLinkSQL, linkID).Scan(&id); err != nil {
		return uuid.Nil, rowErr(r.logger, "failed to find booking guest", err)
	}
	return id, nil
}

func (r *BookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	occ := b.Occupancy()
	err := execAffecting(ctx, r.db, r.logger, "failed to update booking", updateBookingSQL,
		b.ID(), b.Status().String(),
		pgconv.DateToPgtype(b.Stay().Start()), pgconv.DateToPgtype(b.Stay().End()),
		occ.Adults(), occ.Children(), occ.Infants(),
		pgconv.UUIDPtrToPgtype(b.LeadGuestID()), b.ContactEmail(), b.ContactPhone(), b.Notes(),
		b.Total().Cents(),
		pgconv.TimePtrToPgtype(b.CheckedInAt()), pgconv.TimePtrToPgtype(b.CheckedOutAt()),
		pgconv.TimePtrToPgtype(b.CancelledAt()), pgconv.UUIDPtrToPgtype(b.CancelledBy()),
	)
	if err != nil {
		return err
	}

	lines := b.Lines()
	if len(lines) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, len(lines))
	totals := make([]int64, len(lines))
	for i, line := range lines {
		ids[i] = line.ID()
		totals[i] = line.LineTotal().Cents()
	}
	if _, err := r.db.Exec(ctx, updateLineTotalsSQL, pgconv.UUIDsToPgtype(ids), totals); err != nil {
		return rowErr(r.logger, "failed to update booking room totals", err)
	}
	return nil
}

func (r *BookingRepository) InsertLine(ctx context.Context, line *booking.Line) error {
	occ := line.Occupancy()
	_, err := r.db.Exec(ctx, insertLineSQL,
		line.ID(), line.BookingID(), line.RoomTypeID(), pgconv.UUIDPtrToPgtype(line.RoomID()),
		pgconv.DateToPgtype(line.Stay().Start()), pgconv.DateToPgtype(line.Stay().End()),
		occ.Adults(), occ.Children(), occ.Infants(), line.LineTotal().Cents(),
	)
	if err != nil {
		return rowErr(r.logger, "failed to add booking room", err)
	}
	return nil
}

func (r *BookingRepository) UpdateLineRoom(ctx context.Context, line *booking.Line) error {
	return execAffecting(ctx, r.db, r.logger, "failed to assign room", updateLineRoomSQL,
		line.ID(), pgconv.UUIDPtrToPgtype(line.RoomID()))
}

func (r *BookingRepository) DeleteLine(ctx context.Context, lineID uuid.UUID) error {
	return execAffecting(ctx, r.db, r.logger, "failed to remove booking room", deleteLineSQL, lineID)
}

func (r *BookingRepository) ClearLeadFlags(ctx context.Context, bookingID uuid.UUID) error {
	if _, err := r.db.Exec(ctx, clearLeadFlagsSQL, bookingID); err != nil {
		return rowErr(r.logger, "failed to clear lead guest", err)
	}
	return nil
}

func (r *BookingRepository) InsertGuestLink(ctx context.Context, link *booking.GuestLink) error {
	_, err := r.db.Exec(ctx, insertGuestLinkSQL,
		link.ID(), link.BookingID(), pgconv.UUIDPtrToPgtype(link.LineID()), link.GuestID(), link.IsLead())
	if err != nil {
		return rowErr(r.logger, "failed to attach guest", err)
	}
	return nil
}

func (r *BookingRepository) DeleteGuestLink(ctx context.Context, linkID uuid.UUID) error {
	return execAffecting(ctx, r.db, r.logger, "failed to detach guest", deleteGuestLinkSQL, linkID)
}

func (r *BookingRepository) RoomHeld(ctx context.Context, roomID uuid.UUID, stay calendar.DateRange, excludeLineID uuid.UUID) (bool, error) {
	var held bool
	err := r.db.QueryRow(ctx, roomHeldSQL, roomID,
		pgconv.DateToPgtype(stay.Start()), pgconv.DateToPgtype(stay.End()), excludeLineID,
	).Scan(&held)
	if err != nil {
		return false, rowErr(r.logger, "failed to check room holds", err)
	}
	return held, nil
}
