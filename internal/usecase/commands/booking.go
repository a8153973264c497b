package commands

import (
	"context"
	"log/slog"
	"time"

	"hotel-inventory/internal/domain/booking"
	"hotel-inventory/internal/domain/calendar"
	"hotel-inventory/internal/domain/money"
	"hotel-inventory/internal/infra"
	"hotel-inventory/internal/pkg/clock"
	"hotel-inventory/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBookingInput struct {
	PropertyID   uuid.UUID
	CheckIn      calendar.Date
	CheckOut     calendar.Date
	Adults       int
	Children     int
	Infants      int
	LeadGuestID  *uuid.UUID
	ContactEmail string
	ContactPhone string
	Notes        string
}

type UpdateBookingInput struct {
	CheckIn      calendar.Date
	CheckOut     calendar.Date
	Adults       int
	Children     int
	Infants      int
	ContactEmail string
	ContactPhone string
	Notes        string
	Status       string
}

type AddRoomInput struct {
	RoomTypeID uuid.UUID
	RoomID     *uuid.UUID
}

type AttachGuestInput struct {
	GuestID uuid.UUID
	LineID  *uuid.UUID
	IsLead  bool
}

type AddPaymentInput struct {
	PropertyID  uuid.UUID
	Method      string
	AmountCents int64
	ReceivedAt  *time.Time
	Reference   string
}

type CreateBookingResult struct {
	BookingID uuid.UUID
	Code      string
}

type LineResult struct {
	LineID    uuid.UUID
	BookingID uuid.UUID
}

type GuestLinkResult struct {
	LinkID    uuid.UUID
	BookingID uuid.UUID
}

type PaymentResult struct {
	PaymentID uuid.UUID
	BookingID uuid.UUID
}

type BookingCommands interface {
	Create(ctx context.Context, in CreateBookingInput, operatorID uuid.UUID) (*CreateBookingResult, error)
	UpdateDetails(ctx context.Context, bookingID uuid.UUID, in UpdateBookingInput, operatorID uuid.UUID) error
	AddRoom(ctx context.Context, bookingID uuid.UUID, in AddRoomInput) (*LineResult, error)
	AssignRoom(ctx context.Context, lineID uuid.UUID, roomID *uuid.UUID) error
	RemoveRoom(ctx context.Context, lineID uuid.UUID) error
	AttachGuest(ctx context.Context, bookingID uuid.UUID, in AttachGuestInput) (*GuestLinkResult, error)
	RemoveGuest(ctx context.Context, linkID uuid.UUID) error
	AddPayment(ctx context.Context, bookingID uuid.UUID, in AddPaymentInput, operatorID uuid.UUID) (*PaymentResult, error)
	RecalculateTotals(ctx context.Context, bookingID uuid.UUID) error
}

type bookingUseCaseImpl struct {
	uow   shared.UnitOfWork
	calc  booking.PriceCalculator
	clock clock.Clock
}

func NewBookingUseCase(uow shared.UnitOfWork, calc booking.PriceCalculator, clk clock.Clock) BookingCommands {
	return &bookingUseCaseImpl{uow: uow, calc: calc, clock: clk}
}

func (uc *bookingUseCaseImpl) Create(ctx context.Context, in CreateBookingInput, operatorID uuid.UUID) (*CreateBookingResult, error) {
	stay, err := calendar.NewDateRange(in.CheckIn, in.CheckOut)
	if err != nil {
		return nil, err
	}
	occ, err := booking.NewOccupancy(in.Adults, in.Children, in.Infants)
	if err != nil {
		return nil, err
	}

	var result *CreateBookingResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Properties().FindByID(ctx, in.PropertyID); derr != nil {
			return notFound(derr, ErrPropertyNotFound)
		}
		if in.LeadGuestID != nil {
			if derr := uc.checkGuest(ctx, tx, in.PropertyID, *in.LeadGuestID); derr != nil {
				return derr
			}
		}

		now := uc.clock.Now()
		seq, derr := tx.CodeSequences().Next(ctx, in.PropertyID, now.Year())
		if derr != nil {
			return derr
		}
		code, derr := booking.FormatCode(now.Year(), seq)
		if derr != nil {
			return derr
		}

		b := booking.NewBooking(booking.NewParams{
			PropertyID:   in.PropertyID,
			Stay:         stay,
			Occupancy:    occ,
			CreatedBy:    operatorID,
			LeadGuestID:  in.LeadGuestID,
			ContactEmail: in.ContactEmail,
			ContactPhone: in.ContactPhone,
			Notes:        in.Notes,
		}, code, now)
		if derr := tx.Bookings().Create(ctx, b); derr != nil {
			return translate(derr, infra.KindDuplicateKey, ErrBookingCodeCollision)
		}

		result = &CreateBookingResult{BookingID: b.ID(), Code: b.Code()}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "booking created", "booking_id", result.BookingID, "code", result.Code)
	return result, nil
}

func (uc *bookingUseCaseImpl) UpdateDetails(ctx context.Context, bookingID uuid.UUID, in UpdateBookingInput, operatorID uuid.UUID) error {
	stay, err := calendar.NewDateRange(in.CheckIn, in.CheckOut)
	if err != nil {
		return err
	}
	occ, err := booking.NewOccupancy(in.Adults, in.Children, in.Infants)
	if err != nil {
		return err
	}
	status, err := booking.ParseStatus(in.Status)
	if err != nil {
		return err
	}

	return uc.mutate(ctx, bookingID, func(ctx context.Context, tx shared.Tx, b *booking.Booking) error {
		return b.UpdateDetails(booking.Details{
			Stay:         stay,
			Occupancy:    occ,
			ContactEmail: in.ContactEmail,
			ContactPhone: in.ContactPhone,
			Notes:        in.Notes,
			Status:       status,
		}, operatorID, uc.clock.Now())
	})
}

func (uc *bookingUseCaseImpl) AddRoom(ctx context.Context, bookingID uuid.UUID, in AddRoomInput) (*LineResult, error) {
	var result *LineResult
	err := uc.mutate(ctx, bookingID, func(ctx context.Context, tx shared.Tx, b *booking.Booking) error {
		rt, err := tx.RoomTypes().FindByID(ctx, in.RoomTypeID)
		if err != nil {
			return notFound(err, ErrRoomTypeNotFound)
		}
		if rt.PropertyID() != b.PropertyID() {
			return ErrRoomTypeNotInProperty
		}
		if in.RoomID != nil {
			if err := uc.checkRoomFree(ctx, tx, b, rt.ID(), *in.RoomID, b.Stay(), uuid.Nil); err != nil {
				return err
			}
		}

		line := b.AddLine(rt.ID(), in.RoomID)
		if err := tx.Bookings().InsertLine(ctx, line); err != nil {
			return err
		}
		result = &LineResult{LineID: line.ID(), BookingID: b.ID()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *bookingUseCaseImpl) AssignRoom(ctx context.Context, lineID uuid.UUID, roomID *uuid.UUID) error {
	return uc.mutateByLine(ctx, lineID, func(ctx context.Context, tx shared.Tx, b *booking.Booking) error {
		line, err := b.Line(lineID)
		if err != nil {
			return err
		}
		if roomID != nil {
			if err := uc.checkRoomFree(ctx, tx, b, line.RoomTypeID(), *roomID, line.Stay(), line.ID()); err != nil {
				return err
			}
		}
		if _, err := b.AssignRoom(lineID, roomID); err != nil {
			return err
		}
		return tx.Bookings().UpdateLineRoom(ctx, line)
	})
}

func (uc *bookingUseCaseImpl) RemoveRoom(ctx context.Context, lineID uuid.UUID) error {
	return uc.mutateByLine(ctx, lineID, func(ctx context.Context, tx shared.Tx, b *booking.Booking) error {
		if _, err := b.RemoveLine(lineID); err != nil {
			return err
		}
		return tx.Bookings().DeleteLine(ctx, lineID)
	})
}

func (uc *bookingUseCaseImpl) AttachGuest(ctx context.Context, bookingID uuid.UUID, in AttachGuestInput) (*GuestLinkResult, error) {
	var result *GuestLinkResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := uc.load(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if err := uc.checkGuest(ctx, tx, b.PropertyID(), in.GuestID); err != nil {
			return err
		}

		link, err := b.AttachGuest(in.GuestID, in.LineID, in.IsLead)
		if err != nil {
			return err
		}
		if in.IsLead {
			// one lead per booking: sweep before insert, in the same transaction
			if err := tx.Bookings().ClearLeadFlags(ctx, b.ID()); err != nil {
				return err
			}
		}
		if err := tx.Bookings().InsertGuestLink(ctx, link); err != nil {
			return err
		}
		if err := tx.Bookings().Update(ctx, b); err != nil {
			return err
		}
		result = &GuestLinkResult{LinkID: link.ID(), BookingID: b.ID()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *bookingUseCaseImpl) RemoveGuest(ctx context.Context, linkID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		bookingID, err := tx.Bookings().BookingIDByGuestLink(ctx, linkID)
		if err != nil {
			return notFound(err, booking.ErrGuestLinkNotFound)
		}
		b, err := uc.load(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if _, err := b.RemoveGuest(linkID); err != nil {
			return err
		}
		if err := tx.Bookings().DeleteGuestLink(ctx, linkID); err != nil {
			return err
		}
		return tx.Bookings().Update(ctx, b)
	})
}

func (uc *bookingUseCaseImpl) AddPayment(ctx context.Context, bookingID uuid.UUID, in AddPaymentInput, operatorID uuid.UUID) (*PaymentResult, error) {
	method, err := booking.ParsePaymentMethod(in.Method)
	if err != nil {
		return nil, err
	}

	var result *PaymentResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := uc.load(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		p, err := b.RecordPayment(booking.PaymentSpec{
			PropertyID: in.PropertyID,
			Method:     method,
			Amount:     money.FromCents(in.AmountCents),
			ReceivedAt: in.ReceivedAt,
			Reference:  in.Reference,
			CreatedBy:  operatorID,
		}, uc.clock.Now())
		if err != nil {
			return err
		}
		if err := tx.Payments().Create(ctx, p); err != nil {
			return err
		}
		result = &PaymentResult{PaymentID: p.ID(), BookingID: b.ID()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *bookingUseCaseImpl) RecalculateTotals(ctx context.Context, bookingID uuid.UUID) error {
	return uc.mutate(ctx, bookingID, func(context.Context, shared.Tx, *booking.Booking) error {
		return nil
	})
}

type mutation func(ctx context.Context, tx shared.Tx, b *booking.Booking) error

// mutate loads and locks the booking, applies fn, reprices every line and
// writes the booking back, all in one transaction.
func (uc *bookingUseCaseImpl) mutate(ctx context.Context, bookingID uuid.UUID, fn mutation) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := uc.load(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		return uc.apply(ctx, tx, b, fn)
	})
}

func (uc *bookingUseCaseImpl) mutateByLine(ctx context.Context, lineID uuid.UUID, fn mutation) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		bookingID, err := tx.Bookings().BookingIDByLine(ctx, lineID)
		if err != nil {
			return notFound(err, booking.ErrLineNotFound)
		}
		b, err := uc.load(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		return uc.apply(ctx, tx, b, fn)
	})
}

func (uc *bookingUseCaseImpl) apply(ctx context.Context, tx shared.Tx, b *booking.Booking, fn mutation) error {
	if err := fn(ctx, tx, b); err != nil {
		return err
	}
	rates, err := tx.Rooms().Prices(ctx, b.AssignedRoomIDs())
	if err != nil {
		return err
	}
	if err := b.Recalculate(uc.calc, rates); err != nil {
		return err
	}
	return tx.Bookings().Update(ctx, b)
}

func (uc *bookingUseCaseImpl) load(ctx context.Context, tx shared.Tx, bookingID uuid.UUID) (*booking.Booking, error) {
	b, err := tx.Bookings().FindByIDForUpdate(ctx, bookingID)
	if err != nil {
		return nil, notFound(err, ErrBookingNotFound)
	}
	return b, nil
}

func (uc *bookingUseCaseImpl) checkGuest(ctx context.Context, tx shared.Tx, propertyID, guestID uuid.UUID) error {
	g, err := tx.Guests().FindByID(ctx, guestID)
	if err != nil {
		return notFound(err, ErrGuestNotFound)
	}
	if g.PropertyID() != propertyID {
		return ErrGuestNotInProperty
	}
	return nil
}

// checkRoomFree locks the room and rejects it when it is of another property
// or room type, or already held by another line on overlapping nights.
func (uc *bookingUseCaseImpl) checkRoomFree(
	ctx context.Context,
	tx shared.Tx,
	b *booking.Booking,
	roomTypeID, roomID uuid.UUID,
	stay calendar.DateRange,
	excludeLineID uuid.UUID,
) error {
	room, err := tx.Rooms().FindByIDForUpdate(ctx, roomID)
	if err != nil {
		return notFound(err, ErrRoomNotFound)
	}
	if room.PropertyID() != b.PropertyID() {
		return ErrRoomNotInProperty
	}
	if room.RoomTypeID() != roomTypeID {
		return ErrRoomTypeMismatch
	}

	held, err := tx.Bookings().RoomHeld(ctx, roomID, stay, excludeLineID)
	if err != nil {
		return err
	}
	if held {
		slog.WarnContext(ctx, "room assignment rejected: overlapping stay",
			"room_id", roomID, "booking_id", b.ID(), "stay", stay.String())
		return ErrRoomUnavailable
	}
	return nil
}
