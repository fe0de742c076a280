package response

import (
	"time"

	"court-connect-server/internal/usecase/queries"
)

type CouponValidationResponse struct {
	IsValid       bool       `json:"isValid"`
	Code          string     `json:"code,omitempty"`
	DiscountCents int64      `json:"discountCents,omitempty"`
	Expiry        *time.Time `json:"expiry,omitempty"`
}

func FromCouponValidation(v *queries.CouponValidation) *CouponValidationResponse {
	return &CouponValidationResponse{
		IsValid:       v.IsValid,
		Code:          v.Code,
		DiscountCents: v.DiscountCents,
		Expiry:        v.ExpiresAt,
	}
}
