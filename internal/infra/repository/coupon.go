package repository

import (
	"context"

	"court-connect-server/internal/infra"
	"court-connect-server/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CouponReadStore struct {
	pool *pgxpool.Pool
}

func NewCouponReadStore(pool *pgxpool.Pool) *CouponReadStore {
	return &CouponReadStore{pool: pool}
}

// FindByCode matches the code exactly; case folding happens nowhere.
func (r *CouponReadStore) FindByCode(ctx context.Context, code string) (*queries.CouponView, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT code, discount_cents, expires_at
		FROM coupons
		WHERE code = $1`,
		code,
	)

	var v queries.CouponView
	err := row.Scan(&v.Code, &v.DiscountCents, &v.ExpiresAt)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by code", err)
	}
	return &v, nil
}
