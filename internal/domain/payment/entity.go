package payment

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingEmail         = errors.New("payer email is required")
	ErrMissingMethod        = errors.New("payment method is required")
	ErrMissingTransactionID = errors.New("transaction id is required")
	ErrInvalidAmount        = errors.New("payment amount must be positive")
)

// Payment is a dependent record of a Booking: it is only ever created
// together with the booking's transition to paid.
type Payment struct {
	id            uuid.UUID
	bookingID     uuid.UUID
	email         string
	amountCents   int64
	method        string
	transactionID string
	discountCents int64
	couponCode    *string
	createdAt     time.Time
}

func NewPayment(
	bookingID uuid.UUID,
	email string,
	amountCents int64,
	method, transactionID string,
	discountCents int64,
	couponCode *string,
	now time.Time,
) (*Payment, error) {
	if strings.TrimSpace(email) == "" {
		return nil, ErrMissingEmail
	}
	if strings.TrimSpace(method) == "" {
		return nil, ErrMissingMethod
	}
	if strings.TrimSpace(transactionID) == "" {
		return nil, ErrMissingTransactionID
	}
	if amountCents <= 0 {
		return nil, ErrInvalidAmount
	}
	if discountCents < 0 {
		discountCents = 0
	}

	return &Payment{
		id:            uuid.New(),
		bookingID:     bookingID,
		email:         email,
		amountCents:   amountCents,
		method:        method,
		transactionID: transactionID,
		discountCents: discountCents,
		couponCode:    couponCode,
		createdAt:     now,
	}, nil
}

func (p *Payment) ID() uuid.UUID         { return p.id }
func (p *Payment) BookingID() uuid.UUID  { return p.bookingID }
func (p *Payment) Email() string         { return p.email }
func (p *Payment) AmountCents() int64    { return p.amountCents }
func (p *Payment) Method() string        { return p.method }
func (p *Payment) TransactionID() string { return p.transactionID }
func (p *Payment) DiscountCents() int64  { return p.discountCents }
func (p *Payment) CouponCode() *string   { return p.couponCode }
func (p *Payment) CreatedAt() time.Time  { return p.createdAt }
