package commands

import (
	"hotel-inventory/internal/infra"
	"hotel-inventory/internal/pkg/errs"
)

var (
	ErrPropertyNotFound = errs.Mark(errs.New("property not found"), errs.ErrNotFound)
	ErrRoomTypeNotFound = errs.Mark(errs.New("room type not found"), errs.ErrNotFound)
	ErrRoomNotFound     = errs.Mark(errs.New("room not found"), errs.ErrNotFound)
	ErrGuestNotFound    = errs.Mark(errs.New("guest not found"), errs.ErrNotFound)
	ErrBookingNotFound  = errs.Mark(errs.New("booking not found"), errs.ErrNotFound)

	ErrRoomTypeNotInProperty = errs.Mark(errs.New("room type does not belong to the booking's property"), errs.ErrInvalidArgument)
	ErrRoomNotInProperty     = errs.Mark(errs.New("room does not belong to the booking's property"), errs.ErrInvalidArgument)
	ErrRoomTypeMismatch      = errs.Mark(errs.New("room is not of the line's room type"), errs.ErrInvalidArgument)
	ErrGuestNotInProperty    = errs.Mark(errs.New("guest does not belong to the booking's property"), errs.ErrInvalidArgument)

	ErrRoomUnavailable      = errs.Mark(errs.New("room is already booked for overlapping dates"), errs.ErrConflict)
	ErrPropertyCodeTaken    = errs.Mark(errs.New("property code already exists"), errs.ErrConflict)
	ErrRoomTypeCodeTaken    = errs.Mark(errs.New("room type code already exists in this property"), errs.ErrConflict)
	ErrRoomCodeTaken        = errs.Mark(errs.New("room code already exists in this property"), errs.ErrConflict)
	ErrBookingCodeCollision = errs.Mark(errs.New("booking code already exists"), errs.ErrConflict)

	ErrStillReferenced = errs.Mark(errs.New("cannot delete: referenced by other records"), errs.ErrIntegrityViolation)
)

// translate replaces a repository error of kind with target, keeping the
// original as a secondary cause. Other errors are returned unchanged.
func translate(err error, kind infra.RepositoryErrorKind, target error) error {
	if err == nil || !infra.IsKind(err, kind) {
		return err
	}
	return errs.WithCause(target, err)
}

func notFound(err error, target error) error {
	return translate(err, infra.KindNotFound, target)
}
