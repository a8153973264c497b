package booking

import (
	"time"

	"hotel-inventory/internal/domain/calendar"
	"hotel-inventory/internal/domain/money"
	"hotel-inventory/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrLineNotFound      = errs.Mark(errs.New("booking room not found"), errs.ErrNotFound)
	ErrGuestLinkNotFound = errs.Mark(errs.New("booking guest not found"), errs.ErrNotFound)
)

type Booking struct {
	id           uuid.UUID
	propertyID   uuid.UUID
	code         string
	status       Status
	stay         calendar.DateRange
	occupancy    Occupancy
	leadGuestID  *uuid.UUID
	contactEmail string
	contactPhone string
	notes        string
	total        money.Money
	createdBy    uuid.UUID
	bookedAt     time.Time
	checkedInAt  *time.Time
	checkedOutAt *time.Time
	cancelledAt  *time.Time
	cancelledBy  *uuid.UUID
	createdAt    time.Time
	updatedAt    time.Time

	lines  []*Line
	guests []*GuestLink
}

type NewParams struct {
	PropertyID   uuid.UUID
	Stay         calendar.DateRange
	Occupancy    Occupancy
	CreatedBy    uuid.UUID
	LeadGuestID  *uuid.UUID
	ContactEmail string
	ContactPhone string
	Notes        string
}

// NewBooking starts a tentative booking with no lines and a zero total.
// A lead guest given here is attached as the lead link right away.
func NewBooking(p NewParams, code string, now time.Time) *Booking {
	b := &Booking{
		id:           uuid.New(),
		propertyID:   p.PropertyID,
		code:         code,
		status:       StatusTentative,
		stay:         p.Stay,
		occupancy:    p.Occupancy,
		contactEmail: p.ContactEmail,
		contactPhone: p.ContactPhone,
		notes:        p.Notes,
		total:        money.Zero(),
		createdBy:    p.CreatedBy,
		bookedAt:     now,
	}
	if p.LeadGuestID != nil {
		b.attach(*p.LeadGuestID, nil, true)
	}
	return b
}

// Snapshot carries persisted header state for ReconstructBooking.
type Snapshot struct {
	ID           uuid.UUID
	PropertyID   uuid.UUID
	Code         string
	Status       Status
	Stay         calendar.DateRange
	Occupancy    Occupancy
	LeadGuestID  *uuid.UUID
	ContactEmail string
	ContactPhone string
	Notes        string
	Total        money.Money
	CreatedBy    uuid.UUID
	BookedAt     time.Time
	CheckedInAt  *time.Time
	CheckedOutAt *time.Time
	CancelledAt  *time.Time
	CancelledBy  *uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func ReconstructBooking(s Snapshot, lines []*Line, guests []*GuestLink) *Booking {
	return &Booking{
		id:           s.ID,
		propertyID:   s.PropertyID,
		code:         s.Code,
		status:       s.Status,
		stay:         s.Stay,
		occupancy:    s.Occupancy,
		leadGuestID:  s.LeadGuestID,
		contactEmail: s.ContactEmail,
		contactPhone: s.ContactPhone,
		notes:        s.Notes,
		total:        s.Total,
		createdBy:    s.CreatedBy,
		bookedAt:     s.BookedAt,
		checkedInAt:  s.CheckedInAt,
		checkedOutAt: s.CheckedOutAt,
		cancelledAt:  s.CancelledAt,
		cancelledBy:  s.CancelledBy,
		createdAt:    s.CreatedAt,
		updatedAt:    s.UpdatedAt,
		lines:        lines,
		guests:       guests,
	}
}

type Details struct {
	Stay         calendar.DateRange
	Occupancy    Occupancy
	ContactEmail string
	ContactPhone string
	Notes        string
	Status       Status
}

// UpdateDetails overwrites the header. Line date ranges are left as they are.
// The status must be the current one or reachable from it.
func (b *Booking) UpdateDetails(d Details, operatorID uuid.UUID, now time.Time) error {
	if !d.Status.IsValid() {
		return errs.Wrapf(ErrUnknownStatus, "status %q", d.Status)
	}
	if !b.status.CanTransitionTo(d.Status) {
		return errs.Wrapf(ErrInvalidTransition, "%s -> %s", b.status, d.Status)
	}

	b.stay = d.Stay
	b.occupancy = d.Occupancy
	b.contactEmail = d.ContactEmail
	b.contactPhone = d.ContactPhone
	b.notes = d.Notes

	if d.Status != b.status {
		b.enter(d.Status, operatorID, now)
	}
	return nil
}

func (b *Booking) enter(next Status, operatorID uuid.UUID, now time.Time) {
	switch next {
	case StatusCheckedIn:
		b.checkedInAt = &now
	case StatusCheckedOut:
		b.checkedOutAt = &now
	case StatusCancelled:
		by := operatorID
		b.cancelledAt = &now
		b.cancelledBy = &by
	}
	b.status = next
}

// AddLine reserves roomTypeID for the booking's current stay. The line is
// unpriced until Recalculate runs.
func (b *Booking) AddLine(roomTypeID uuid.UUID, roomID *uuid.UUID) *Line {
	line := &Line{
		id:         uuid.New(),
		bookingID:  b.id,
		roomTypeID: roomTypeID,
		roomID:     cloneID(roomID),
		stay:       b.stay,
		occupancy:  b.occupancy.lineDefault(),
		lineTotal:  money.Zero(),
	}
	b.lines = append(b.lines, line)
	return line
}

func (b *Booking) Line(lineID uuid.UUID) (*Line, error) {
	for _, line := range b.lines {
		if line.id == lineID {
			return line, nil
		}
	}
	return nil, errs.Wrapf(ErrLineNotFound, "line %s", lineID)
}

// AssignRoom binds the line to roomID, or unbinds it when roomID is nil.
func (b *Booking) AssignRoom(lineID uuid.UUID, roomID *uuid.UUID) (*Line, error) {
	line, err := b.Line(lineID)
	if err != nil {
		return nil, err
	}
	line.roomID = cloneID(roomID)
	return line, nil
}

// RemoveLine drops the line; guest links that pointed at it stay on the booking.
func (b *Booking) RemoveLine(lineID uuid.UUID) (*Line, error) {
	for i, line := range b.lines {
		if line.id != lineID {
			continue
		}
		b.lines = append(b.lines[:i], b.lines[i+1:]...)
		for _, g := range b.guests {
			if g.lineID != nil && *g.lineID == lineID {
				g.lineID = nil
			}
		}
		return line, nil
	}
	return nil, errs.Wrapf(ErrLineNotFound, "line %s", lineID)
}

// AttachGuest links guestID to the booking, and to one of its lines when
// lineID is set. A lead link clears the lead flag on every other link and
// becomes the booking's lead guest.
func (b *Booking) AttachGuest(guestID uuid.UUID, lineID *uuid.UUID, isLead bool) (*GuestLink, error) {
	if lineID != nil {
		if _, err := b.Line(*lineID); err != nil {
			return nil, err
		}
	}
	return b.attach(guestID, lineID, isLead), nil
}

func (b *Booking) attach(guestID uuid.UUID, lineID *uuid.UUID, isLead bool) *GuestLink {
	link := &GuestLink{
		id:        uuid.New(),
		bookingID: b.id,
		lineID:    cloneID(lineID),
		guestID:   guestID,
		isLead:    isLead,
	}
	if isLead {
		for _, g := range b.guests {
			g.isLead = false
		}
		lead := guestID
		b.leadGuestID = &lead
	}
	b.guests = append(b.guests, link)
	return link
}

// RemoveGuest detaches a link. Removing the lead link leaves the booking
// without a lead; no other guest is promoted.
func (b *Booking) RemoveGuest(linkID uuid.UUID) (*GuestLink, error) {
	for i, g := range b.guests {
		if g.id != linkID {
			continue
		}
		b.guests = append(b.guests[:i], b.guests[i+1:]...)
		if g.isLead {
			b.leadGuestID = nil
		}
		return g, nil
	}
	return nil, errs.Wrapf(ErrGuestLinkNotFound, "link %s", linkID)
}

// LeadLink returns the link flagged lead, if any.
func (b *Booking) LeadLink() *GuestLink {
	for _, g := range b.guests {
		if g.isLead {
			return g
		}
	}
	return nil
}

func (b *Booking) ID() uuid.UUID            { return b.id }
func (b *Booking) PropertyID() uuid.UUID    { return b.propertyID }
func (b *Booking) Code() string             { return b.code }
func (b *Booking) Status() Status           { return b.status }
func (b *Booking) Stay() calendar.DateRange { return b.stay }
func (b *Booking) Nights() int              { return b.stay.Nights() }
func (b *Booking) Occupancy() Occupancy     { return b.occupancy }
func (b *Booking) LeadGuestID() *uuid.UUID  { return b.leadGuestID }
func (b *Booking) ContactEmail() string     { return b.contactEmail }
func (b *Booking) ContactPhone() string     { return b.contactPhone }
func (b *Booking) Notes() string            { return b.notes }
func (b *Booking) Total() money.Money       { return b.total }
func (b *Booking) CreatedBy() uuid.UUID     { return b.createdBy }
func (b *Booking) BookedAt() time.Time      { return b.bookedAt }
func (b *Booking) CheckedInAt() *time.Time  { return b.checkedInAt }
func (b *Booking) CheckedOutAt() *time.Time { return b.checkedOutAt }
func (b *Booking) CancelledAt() *time.Time  { return b.cancelledAt }
func (b *Booking) CancelledBy() *uuid.UUID  { return b.cancelledBy }
func (b *Booking) CreatedAt() time.Time     { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time     { return b.updatedAt }
func (b *Booking) Lines() []*Line           { return b.lines }
func (b *Booking) GuestLinks() []*GuestLink { return b.guests }

func cloneID(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	c := *id
	return &c
}
