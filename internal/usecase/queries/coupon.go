package queries

import (
	"context"
	"strings"
	"time"

	"court-connect-server/internal/domain/coupon"
	"court-connect-server/internal/infra"
	"court-connect-server/internal/pkg/clock"
	"court-connect-server/internal/pkg/errs"
)

var ErrCouponNotFound = errs.New("coupon not found")

type CouponView struct {
	Code          string
	DiscountCents int64
	ExpiresAt     time.Time
}

// CouponValidation is what the validation endpoint reports. An absent or
// expired code is a negative result, not a failed request.
type CouponValidation struct {
	IsValid       bool
	Code          string
	DiscountCents int64
	ExpiresAt     *time.Time
}

type CouponReadStore interface {
	FindByCode(ctx context.Context, code string) (*CouponView, error)
}

type CouponQueries interface {
	Validate(ctx context.Context, code string) (*CouponValidation, error)
}

type couponQueriesImpl struct {
	readStore CouponReadStore
	clock     clock.Clock
}

func NewCouponQueries(readStore CouponReadStore, clock clock.Clock) CouponQueries {
	return &couponQueriesImpl{
		readStore: readStore,
		clock:     clock,
	}
}

// Validate looks the code up exactly as given after trimming; matching is
// case-sensitive.
func (q *couponQueriesImpl) Validate(ctx context.Context, code string) (*CouponValidation, error) {
	trimmed := strings.TrimSpace(code)

	view, err := q.readStore.FindByCode(ctx, trimmed)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return &CouponValidation{IsValid: false}, nil
		}
		return nil, err
	}

	c := coupon.ReconstructCoupon(view.Code, view.DiscountCents, view.ExpiresAt, time.Time{})
	if !c.IsValidAt(q.clock.Now()) {
		return &CouponValidation{IsValid: false}, nil
	}

	expiresAt := view.ExpiresAt
	return &CouponValidation{
		IsValid:       true,
		Code:          view.Code,
		DiscountCents: view.DiscountCents,
		ExpiresAt:     &expiresAt,
	}, nil
}
