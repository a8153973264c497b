package money

import (
	"fmt"

	"hotel-inventory/internal/pkg/errs"
)

var ErrNegativeAmount = errs.Mark(errs.New("amount cannot be negative"), errs.ErrInvalidArgument)

// Money is an amount in cents of the property's single currency.
type Money struct {
	cents int64
}

func Zero() Money { return Money{} }

func FromCents(cents int64) Money {
	return Money{cents: cents}
}

// NewNonNegative rejects negative amounts.
func NewNonNegative(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 { return m.cents }

func (m Money) Add(o Money) Money {
	return Money{cents: m.cents + o.cents}
}

func (m Money) Sub(o Money) Money {
	return Money{cents: m.cents - o.cents}
}

func (m Money) Times(n int) Money {
	return Money{cents: m.cents * int64(n)}
}

func (m Money) IsZero() bool     { return m.cents == 0 }
func (m Money) IsPositive() bool { return m.cents > 0 }

func (m Money) String() string {
	sign := ""
	c := m.cents
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s%d.%02d", sign, c/100, c%100)
}
