package readstore

import (
	"context"
	"log/slog"
	"time"

	"hotel-inventory/internal/domain/calendar"
	"hotel-inventory/internal/infra"
	"hotel-inventory/internal/infra/db"
	"hotel-inventory/internal/pkg/pgconv"
	"hotel-inventory/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	findBookingViewSQL = `
SELECT b.id, b.property_id, b.code, b.status, b.check_in_date, b.check_out_date, b.adults, b.children, b.infants,
       b.lead_guest_id, g.first_name || ' ' || g.last_name, b.contact_email, b.contact_phone, b.notes,
       b.total_cents, b.created_by, b.booked_at, b.checked_in_at, b.checked_out_at, b.cancelled_at, b.cancelled_by,
       b.created_at, b.updated_at
FROM bookings b
LEFT JOIN guests g ON g.id = b.lead_guest_id
WHERE b.id = $1`

	findBookingRoomsSQL = `
SELECT br.id, br.room_type_id, rt.code, rt.name, br.room_id, r.code, br.check_in_date, br.check_out_date,
       br.adults, br.children, br.infants, br.line_total_cents
FROM booking_rooms br
JOIN room_types rt ON rt.id = br.room_type_id
LEFT JOIN rooms r ON r.id = br.room_id
WHERE br.booking_id = $1
ORDER BY br.created_at, br.id`

	findBookingGuestsSQL = `
SELECT bg.id, bg.guest_id, g.first_name, g.last_name, bg.booking_room_id, bg.is_lead
FROM booking_guests bg
JOIN guests g ON g.id = bg.guest_id
WHERE bg.booking_id = $1
ORDER BY bg.is_lead DESC, bg.created_at, bg.id`

	findBookingPaymentsSQL = `
SELECT id, method, amount_cents, received_at, reference, created_by, created_at
FROM payments
WHERE booking_id = $1
ORDER BY received_at, id`

	bookingListSelect = `
SELECT b.id, b.code, b.status, b.check_in_date, b.check_out_date, b.adults, b.children,
       g.first_name || ' ' || g.last_name,
       (SELECT count(*) FROM booking_rooms br WHERE br.booking_id = b.id),
       b.total_cents
FROM bookings b
LEFT JOIN guests g ON g.id = b.lead_guest_id`

	// $3/$4 select stays overlapping [from, to).
	bookingListFilter = `
WHERE b.property_id = $1
  AND ($2::text IS NULL OR b.status = $2::text)
  AND ($3::date IS NULL OR b.check_out_date > $3::date)
  AND ($4::date IS NULL OR b.check_in_date < $4::date)`

	listBookingsFirstPageSQL = bookingListSelect + bookingListFilter + `
ORDER BY b.check_in_date, b.id
LIMIT $5`

	listBookingsKeysetSQL = bookingListSelect + bookingListFilter + `
  AND (b.check_in_date, b.id) > ($5::date, $6::uuid)
ORDER BY b.check_in_date, b.id
LIMIT $7`
)

type BookingReadStore struct {
	logger *slog.Logger
}

func NewBookingReadStore() *BookingReadStore {
	return &BookingReadStore{logger: slog.Default()}
}

func (s *BookingReadStore) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*queries.BookingView, error) {
	var (
		v                     queries.BookingView
		checkIn, checkOut     pgtype.Date
		lead, cancelledBy     pgtype.UUID
		leadName              pgtype.Text
		bookedAt              pgtype.Timestamptz
		checkedIn, checkedOut pgtype.Timestamptz
		cancelledAt           pgtype.Timestamptz
		createdAt, updatedAt  pgtype.Timestamptz
	)
	err := dbtx.QueryRow(ctx, findBookingViewSQL, id).Scan(
		&v.ID, &v.PropertyID, &v.Code, &v.Status, &checkIn, &checkOut, &v.Adults, &v.Children, &v.Infants,
		&lead, &leadName, &v.ContactEmail, &v.ContactPhone, &v.Notes,
		&v.TotalCents, &v.CreatedBy, &bookedAt, &checkedIn, &checkedOut, &cancelledAt, &cancelledBy,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, infra.WrapClassified(s.logger, "failed to find booking", err)
	}

	v.CheckIn = pgconv.DateFromPgtype(checkIn)
	v.CheckOut = pgconv.DateFromPgtype(checkOut)
	v.Nights = calendar.DaysBetween(v.CheckIn, v.CheckOut)
	v.LeadGuestID = pgconv.UUIDPtrFromPgtype(lead)
	v.LeadGuestName = pgconv.StringPtrFromPgtype(leadName)
	v.BookedAt = pgconv.TimeFromPgtype(bookedAt)
	v.CheckedInAt = pgconv.TimePtrFromPgtype(checkedIn)
	v.CheckedOutAt = pgconv.TimePtrFromPgtype(checkedOut)
	v.CancelledAt = pgconv.TimePtrFromPgtype(cancelledAt)
	v.CancelledBy = pgconv.UUIDPtrFromPgtype(cancelledBy)
	v.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	v.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &v, nil
}

func (s *BookingReadStore) FindRooms(ctx context.Context, dbtx db.DBTX, bookingID uuid.UUID) ([]*queries.BookingRoomView, error) {
	rows, err := dbtx.Query(ctx, findBookingRoomsSQL, bookingID)
	if err != nil {
		return nil, infra.WrapClassified(s.logger, "failed to load booking rooms", err)
	}
	defer rows.Close()

	out := make([]*queries.BookingRoomView, 0)
	for rows.Next() {
		var (
			v                 queries.BookingRoomView
			roomID            pgtype.UUID
			roomCode          pgtype.Text
			checkIn, checkOut pgtype.Date
		)
		if err := rows.Scan(&v.ID, &v.RoomTypeID, &v.RoomTypeCode, &v.RoomTypeName, &roomID, &roomCode,
			&checkIn, &checkOut, &v.Adults, &v.Children, &v.Infants, &v.LineTotalCents); err != nil {
			return nil, infra.WrapClassified(s.logger, "failed to scan booking room", err)
		}
		v.RoomID = pgconv.UUIDPtrFromPgtype(roomID)
		v.RoomCode = pgconv.StringPtrFromPgtype(roomCode)
		v.CheckIn = pgconv.DateFromPgtype(checkIn)
		v.CheckOut = pgconv.DateFromPgtype(checkOut)
		v.Nights = calendar.DaysBetween(v.CheckIn, v.CheckOut)
		out = append(out, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapClassified(s.logger, "failed to iterate booking rooms", err)
	}
	return out, nil
}

func (s *BookingReadStore) FindGuests(ctx context.Context, dbtx db.DBTX, bookingID uuid.UUID) ([]*queries.BookingGuestView, error) {
	rows, err := dbtx.Query(ctx, findBookingGuestsSQL, bookingID)
	if err != nil {
		return nil, infra.WrapClassified(s.logger, "failed to load booking guests", err)
	}
	defer rows.Close()

	out := make([]*queries.BookingGuestView, 0)
	for rows.Next() {
		var (
			v      queries.BookingGuestView
			lineID pgtype.UUID
		)
		if err := rows.Scan(&v.ID, &v.GuestID, &v.FirstName, &v.LastName, &lineID, &v.IsLead); err != nil {
			return nil, infra.WrapClassified(s.logger, "failed to scan booking guest", err)
		}
		v.BookingRoomID = pgconv.UUIDPtrFromPgtype(lineID)
		out = append(out, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapClassified(s.logger, "failed to iterate booking guests", err)
	}
	return out, nil
}

func (s *BookingReadStore) FindPayments(ctx context.Context, dbtx db.DBTX, bookingID uuid.UUID) ([]*queries.PaymentView, error) {
	rows, err := dbtx.Query(ctx, findBookingPaymentsSQL, bookingID)
	if err != nil {
		return nil, infra.WrapClassified(s.logger, "failed to load payments", err)
	}
	defer rows.Close()

	out := make([]*queries.PaymentView, 0)
	for rows.Next() {
		var (
			v                     queries.PaymentView
			receivedAt, createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&v.ID, &v.Method, &v.AmountCents, &receivedAt, &v.Reference, &v.CreatedBy, &createdAt); err != nil {
			return nil, infra.WrapClassified(s.logger, "failed to scan payment", err)
		}
		v.ReceivedAt = pgconv.TimeFromPgtype(receivedAt)
		v.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		out = append(out, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapClassified(s.logger, "failed to iterate payments", err)
	}
	return out, nil
}

func (s *BookingReadStore) ListFirstPage(ctx context.Context, dbtx db.DBTX, filters queries.BookingFilters, limit int) ([]*queries.BookingListItem, error) {
	args := append(filterArgs(filters), limit)
	return s.list(ctx, dbtx, listBookingsFirstPageSQL, args...)
}

func (s *BookingReadStore) ListKeyset(ctx context.Context, dbtx db.DBTX, filters queries.BookingFilters, afterCheckIn time.Time, afterID uuid.UUID, limit int) ([]*queries.BookingListItem, error) {
	after := calendar.DateOf(afterCheckIn)
	args := append(filterArgs(filters), pgconv.DateToPgtype(after), afterID, limit)
	return s.list(ctx, dbtx, listBookingsKeysetSQL, args...)
}

func filterArgs(f queries.BookingFilters) []any {
	var status pgtype.Text
	if f.Status != nil {
		status = pgtype.Text{String: *f.Status, Valid: true}
	}
	return []any{f.PropertyID, status, pgconv.DatePtrToPgtype(f.From), pgconv.DatePtrToPgtype(f.To)}
}

func (s *BookingReadStore) list(ctx context.Context, dbtx db.DBTX, sql string, args ...any) ([]*queries.BookingListItem, error) {
	rows, err := dbtx.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapClassified(s.logger, "failed to list bookings", err)
	}
	return collectListItems(s.logger, rows)
}

func collectListItems(logger *slog.Logger, rows pgx.Rows) ([]*queries.BookingListItem, error) {
	defer rows.Close()

	out := make([]*queries.BookingListItem, 0)
	for rows.Next() {
		var (
			v                 queries.BookingListItem
			checkIn, checkOut pgtype.Date
			leadName          pgtype.Text
		)
		if err := rows.Scan(&v.ID, &v.Code, &v.Status, &checkIn, &checkOut, &v.Adults, &v.Children,
			&leadName, &v.RoomCount, &v.TotalCents); err != nil {
			return nil, infra.WrapClassified(logger, "failed to scan booking", err)
		}
		v.CheckIn = pgconv.DateFromPgtype(checkIn)
		v.CheckOut = pgconv.DateFromPgtype(checkOut)
		v.Nights = calendar.DaysBetween(v.CheckIn, v.CheckOut)
		v.LeadGuestName = pgconv.StringPtrFromPgtype(leadName)
		out = append(out, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapClassified(logger, "failed to iterate bookings", err)
	}
	return out, nil
}
