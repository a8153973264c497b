package queries

import (
	"hotel-inventory/internal/infra"
	"hotel-inventory/internal/pkg/errs"
)

var (
	ErrPropertyNotFound = errs.Mark(errs.New("property not found"), errs.ErrNotFound)
	ErrBookingNotFound  = errs.Mark(errs.New("booking not found"), errs.ErrNotFound)
	ErrInvalidCursor    = errs.Mark(errs.New("invalid cursor"), errs.ErrInvalidArgument)
	ErrInvalidStatus    = errs.Mark(errs.New("invalid status filter"), errs.ErrInvalidArgument)
)

func notFound(err error, target error) error {
	if err == nil || !infra.IsKind(err, infra.KindNotFound) {
		return err
	}
	return errs.WithCause(target, err)
}
