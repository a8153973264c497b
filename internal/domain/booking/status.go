package booking

import (
	"hotel-inventory/internal/pkg/errs"
)

var (
	ErrUnknownStatus     = errs.Mark(errs.New("unknown booking status"), errs.ErrInvalidArgument)
	ErrInvalidTransition = errs.Mark(errs.New("status transition not allowed"), errs.ErrInvalidArgument)
)

type Status string

const (
	StatusTentative  Status = "tentative"
	StatusConfirmed  Status = "confirmed"
	StatusCheckedIn  Status = "checked_in"
	StatusCheckedOut Status = "checked_out"
	StatusCancelled  Status = "cancelled"
	StatusNoShow     Status = "no_show"
)

var transitions = map[Status][]Status{
	StatusTentative: {StatusConfirmed, StatusCancelled, StatusNoShow},
	StatusConfirmed: {StatusCheckedIn, StatusCancelled, StatusNoShow},
	StatusCheckedIn: {StatusCheckedOut},
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", errs.Wrapf(ErrUnknownStatus, "status %q", s)
	}
	return st, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusTentative, StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCancelled, StatusNoShow:
		return true
	default:
		return false
	}
}

// HoldsInventory reports whether lines of a booking in this status consume capacity.
func (s Status) HoldsInventory() bool {
	return s != StatusCancelled && s != StatusNoShow
}

func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// CanTransitionTo allows staying in the same status.
func (s Status) CanTransitionTo(next Status) bool {
	if s == next {
		return true
	}
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// InactiveStatuses are the statuses whose lines are ignored by availability and room conflict checks.
func InactiveStatuses() []Status {
	return []Status{StatusCancelled, StatusNoShow}
}
