package calendar

import (
	"hotel-inventory/internal/pkg/errs"
)

// MaxWindowDays bounds availability queries to one leap year of nights.
const MaxWindowDays = 366

var (
	ErrInvalidRange  = errs.Mark(errs.New("check-in must be earlier than check-out"), errs.ErrInvalidArgument)
	ErrInvalidWindow = errs.Mark(errs.New("number of days must be between 1 and 366"), errs.ErrInvalidArgument)
)

// DateRange is the half-open interval [start, end) of nights.
type DateRange struct {
	start Date
	end   Date
}

func NewDateRange(start, end Date) (DateRange, error) {
	if start.IsZero() || end.IsZero() || !start.Before(end) {
		return DateRange{}, errs.Wrapf(ErrInvalidRange, "range %s..%s", start, end)
	}
	return DateRange{start: start, end: end}, nil
}

// NewWindow builds the query window [start, start+days).
func NewWindow(start Date, days int) (DateRange, error) {
	if days < 1 || days > MaxWindowDays {
		return DateRange{}, errs.Wrapf(ErrInvalidWindow, "days=%d", days)
	}
	return NewDateRange(start, start.AddDays(days))
}

func (r DateRange) Start() Date { return r.start }
func (r DateRange) End() Date   { return r.end }

func (r DateRange) Nights() int {
	return DaysBetween(r.start, r.end)
}

func (r DateRange) Overlaps(o DateRange) bool {
	return r.start.Before(o.end) && o.start.Before(r.end)
}

// Intersect clips r to window. ok is false when they do not overlap.
func (r DateRange) Intersect(window DateRange) (DateRange, bool) {
	if !r.Overlaps(window) {
		return DateRange{}, false
	}
	return DateRange{
		start: MaxDate(r.start, window.start),
		end:   MinDate(r.end, window.end),
	}, true
}

func (r DateRange) Contains(d Date) bool {
	return !d.Before(r.start) && d.Before(r.end)
}

// Dates lists every night of the range in order.
func (r DateRange) Dates() []Date {
	n := r.Nights()
	out := make([]Date, n)
	for i := range n {
		out[i] = r.start.AddDays(i)
	}
	return out
}

func (r DateRange) String() string {
	return "[" + r.start.String() + "," + r.end.String() + ")"
}
