package booking

import (
	"hotel-inventory/internal/domain/money"
	"hotel-inventory/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrRateMissing = errs.Mark(errs.New("room price not found"), errs.ErrNotFound)

// RateCard maps room ids to their current price per night.
type RateCard map[uuid.UUID]money.Money

type PriceCalculator interface {
	// LineTotal prices a line; rate is nil when no room is assigned.
	LineTotal(line *Line, rate *money.Money) money.Money
}

// NightlyRateCalculator charges nights × the room's current base price.
type NightlyRateCalculator struct{}

func NewNightlyRateCalculator() *NightlyRateCalculator {
	return &NightlyRateCalculator{}
}

func (NightlyRateCalculator) LineTotal(line *Line, rate *money.Money) money.Money {
	if rate == nil {
		return money.Zero()
	}
	return rate.Times(line.Nights())
}

// Recalculate reprices every line from rates and sets the booking total to
// their sum. It is the only place line totals and the booking total change.
func (b *Booking) Recalculate(calc PriceCalculator, rates RateCard) error {
	totals := make([]money.Money, len(b.lines))
	for i, line := range b.lines {
		var rate *money.Money
		if line.roomID != nil {
			r, ok := rates[*line.roomID]
			if !ok {
				return errs.Wrapf(ErrRateMissing, "room %s", *line.roomID)
			}
			rate = &r
		}
		totals[i] = calc.LineTotal(line, rate)
	}

	sum := money.Zero()
	for i, line := range b.lines {
		line.lineTotal = totals[i]
		sum = sum.Add(totals[i])
	}
	b.total = sum
	return nil
}

// AssignedRoomIDs lists distinct rooms referenced by the booking's lines.
func (b *Booking) AssignedRoomIDs() []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(b.lines))
	ids := make([]uuid.UUID, 0, len(b.lines))
	for _, line := range b.lines {
		if line.roomID == nil {
			continue
		}
		if _, ok := seen[*line.roomID]; ok {
			continue
		}
		seen[*line.roomID] = struct{}{}
		ids = append(ids, *line.roomID)
	}
	return ids
}
