package booking

import (
	"time"

	"hotel-inventory/internal/domain/money"
	"hotel-inventory/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNonPositivePayment = errs.Mark(errs.New("payment amount must be positive"), errs.ErrInvalidArgument)
	ErrUnknownMethod      = errs.Mark(errs.New("unknown payment method"), errs.ErrInvalidArgument)
	ErrPropertyMismatch   = errs.Mark(errs.New("property does not match the booking"), errs.ErrInvalidArgument)
)

type PaymentMethod string

const (
	MethodCash         PaymentMethod = "Cash"
	MethodCardPOS      PaymentMethod = "CardPOS"
	MethodCardOnline   PaymentMethod = "CardOnline"
	MethodBankTransfer PaymentMethod = "BankTransfer"
)

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch m := PaymentMethod(s); m {
	case MethodCash, MethodCardPOS, MethodCardOnline, MethodBankTransfer:
		return m, nil
	default:
		return "", errs.Wrapf(ErrUnknownMethod, "method %q", s)
	}
}

func (m PaymentMethod) String() string { return string(m) }

// Payment is a receipt recorded against a booking. It is never reconciled
// against the booking total.
type Payment struct {
	id         uuid.UUID
	bookingID  uuid.UUID
	propertyID uuid.UUID
	method     PaymentMethod
	amount     money.Money
	receivedAt time.Time
	reference  string
	createdBy  uuid.UUID
	createdAt  time.Time
}

type PaymentSpec struct {
	PropertyID uuid.UUID
	Method     PaymentMethod
	Amount     money.Money
	ReceivedAt *time.Time
	Reference  string
	CreatedBy  uuid.UUID
}

// RecordPayment validates a receipt for b. A nil ReceivedAt defaults to now.
func (b *Booking) RecordPayment(spec PaymentSpec, now time.Time) (*Payment, error) {
	if !spec.Amount.IsPositive() {
		return nil, ErrNonPositivePayment
	}
	if spec.PropertyID != b.propertyID {
		return nil, ErrPropertyMismatch
	}
	if _, err := ParsePaymentMethod(string(spec.Method)); err != nil {
		return nil, err
	}

	received := now
	if spec.ReceivedAt != nil {
		received = spec.ReceivedAt.UTC()
	}

	return &Payment{
		id:         uuid.New(),
		bookingID:  b.id,
		propertyID: b.propertyID,
		method:     spec.Method,
		amount:     spec.Amount,
		receivedAt: received,
		reference:  spec.Reference,
		createdBy:  spec.CreatedBy,
	}, nil
}

func ReconstructPayment(
	id, bookingID, propertyID uuid.UUID,
	method PaymentMethod,
	amount money.Money,
	receivedAt time.Time,
	reference string,
	createdBy uuid.UUID,
	createdAt time.Time,
) *Payment {
	return &Payment{
		id:         id,
		bookingID:  bookingID,
		propertyID: propertyID,
		method:     method,
		amount:     amount,
		receivedAt: receivedAt,
		reference:  reference,
		createdBy:  createdBy,
		createdAt:  createdAt,
	}
}

func (p *Payment) ID() uuid.UUID         { return p.id }
func (p *Payment) BookingID() uuid.UUID  { return p.bookingID }
func (p *Payment) PropertyID() uuid.UUID { return p.propertyID }
func (p *Payment) Method() PaymentMethod { return p.method }
func (p *Payment) Amount() money.Money   { return p.amount }
func (p *Payment) ReceivedAt() time.Time { return p.receivedAt }
func (p *Payment) Reference() string     { return p.reference }
func (p *Payment) CreatedBy() uuid.UUID  { return p.createdBy }
func (p *Payment) CreatedAt() time.Time  { return p.createdAt }
