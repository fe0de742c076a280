package coupon

import (
	"errors"
	"time"
)

var (
	ErrCouponExpired = errors.New("coupon has expired")
	ErrInvalidCode   = errors.New("invalid coupon code")
	ErrInvalidAmount = errors.New("discount amount cannot be negative")
)

// Coupon carries a flat discount in currency units; the amount is passed
// through to the caller unmodified, never interpreted as a percentage.
type Coupon struct {
	code          string
	discountCents int64
	expiresAt     time.Time
	createdAt     time.Time
}

func NewCoupon(code string, discountCents int64, expiresAt time.Time) (*Coupon, error) {
	if code == "" {
		return nil, ErrInvalidCode
	}
	if discountCents < 0 {
		return nil, ErrInvalidAmount
	}
	return &Coupon{
		code:          code,
		discountCents: discountCents,
		expiresAt:     expiresAt,
	}, nil
}

func ReconstructCoupon(code string, discountCents int64, expiresAt, createdAt time.Time) *Coupon {
	return &Coupon{
		code:          code,
		discountCents: discountCents,
		expiresAt:     expiresAt,
		createdAt:     createdAt,
	}
}

// IsValidAt treats the expiry instant itself as still valid.
func (c *Coupon) IsValidAt(t time.Time) bool {
	return !t.After(c.expiresAt)
}

func (c *Coupon) ValidateUsage(t time.Time) error {
	if !c.IsValidAt(t) {
		return ErrCouponExpired
	}
	return nil
}

func (c *Coupon) Code() string         { return c.code }
func (c *Coupon) DiscountCents() int64 { return c.discountCents }
func (c *Coupon) ExpiresAt() time.Time { return c.expiresAt }
func (c *Coupon) CreatedAt() time.Time { return c.createdAt }
