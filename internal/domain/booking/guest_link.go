package booking

import (
	"time"

	"github.com/google/uuid"
)

// GuestLink attaches a guest to a booking and optionally to one of its lines.
type GuestLink struct {
	id        uuid.UUID
	bookingID uuid.UUID
	lineID    *uuid.UUID
	guestID   uuid.UUID
	isLead    bool
	createdAt time.Time
}

func ReconstructGuestLink(id, bookingID uuid.UUID, lineID *uuid.UUID, guestID uuid.UUID, isLead bool, createdAt time.Time) *GuestLink {
	return &GuestLink{
		id:        id,
		bookingID: bookingID,
		lineID:    lineID,
		guestID:   guestID,
		isLead:    isLead,
		createdAt: createdAt,
	}
}

func (g *GuestLink) ID() uuid.UUID        { return g.id }
func (g *GuestLink) BookingID() uuid.UUID { return g.bookingID }
func (g *GuestLink) LineID() *uuid.UUID   { return g.lineID }
func (g *GuestLink) GuestID() uuid.UUID   { return g.guestID }
func (g *GuestLink) IsLead() bool         { return g.isLead }
func (g *GuestLink) CreatedAt() time.Time { return g.createdAt }
