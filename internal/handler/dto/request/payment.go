package request

import (
	"strings"

	"github.com/google/uuid"
)

type RecordPaymentRequest struct {
	BookingID     uuid.UUID `json:"bookingId" binding:"required"`
	Email         string    `json:"email" binding:"required,email"`
	AmountCents   int64     `json:"amountCents" binding:"required,gt=0"`
	PaymentMethod string    `json:"paymentMethod" binding:"required"`
	TransactionID string    `json:"transactionId" binding:"required"`
	DiscountCents int64     `json:"discountCents,omitempty"`
	CouponCode    *string   `json:"coupon,omitempty"`
}

func (r RecordPaymentRequest) GetCouponCode() *string {
	if r.CouponCode == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.CouponCode)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

type CreatePaymentIntentRequest struct {
	AmountCents int64 `json:"amountCents" binding:"required,gt=0"`
}
