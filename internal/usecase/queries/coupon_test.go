//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"court-connect-server/internal/infra"
	"court-connect-server/internal/pkg/clock"
	"court-connect-server/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCouponStore struct {
	coupons   map[string]*queries.CouponView
	lastQuery string
}

func (f *fakeCouponStore) FindByCode(_ context.Context, code string) (*queries.CouponView, error) {
	f.lastQuery = code
	if view, ok := f.coupons[code]; ok {
		return view, nil
	}
	return nil, infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
}

func TestCouponQueries_Validate(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	store := &fakeCouponStore{coupons: map[string]*queries.CouponView{
		"SUMMER20": {Code: "SUMMER20", DiscountCents: 2000, ExpiresAt: now.Add(24 * time.Hour)},
		"EXPIRED":  {Code: "EXPIRED", DiscountCents: 500, ExpiresAt: now.Add(-time.Hour)},
		"ONEDGE":   {Code: "ONEDGE", DiscountCents: 100, ExpiresAt: now},
	}}
	svc := queries.NewCouponQueries(store, clock.NewMockClock(now))

	t.Run("valid coupon", func(t *testing.T) {
		result, err := svc.Validate(context.Background(), "SUMMER20")
		require.NoError(t, err)

		assert.True(t, result.IsValid)
		assert.Equal(t, "SUMMER20", result.Code)
		assert.Equal(t, int64(2000), result.DiscountCents)
		require.NotNil(t, result.ExpiresAt)
	})

	t.Run("absent code is a negative result, not an error", func(t *testing.T) {
		result, err := svc.Validate(context.Background(), "NOSUCH")
		require.NoError(t, err)
		assert.False(t, result.IsValid)
		assert.Empty(t, result.Code)
	})

	t.Run("expired coupon", func(t *testing.T) {
		result, err := svc.Validate(context.Background(), "EXPIRED")
		require.NoError(t, err)
		assert.False(t, result.IsValid)
	})

	t.Run("expiry instant is still valid", func(t *testing.T) {
		result, err := svc.Validate(context.Background(), "ONEDGE")
		require.NoError(t, err)
		assert.True(t, result.IsValid)
	})

	t.Run("surrounding whitespace is trimmed before lookup", func(t *testing.T) {
		result, err := svc.Validate(context.Background(), "  SUMMER20  ")
		require.NoError(t, err)
		assert.True(t, result.IsValid)
		assert.Equal(t, "SUMMER20", store.lastQuery)
	})

	t.Run("matching is case-sensitive", func(t *testing.T) {
		result, err := svc.Validate(context.Background(), "summer20")
		require.NoError(t, err)
		assert.False(t, result.IsValid)
	})
}
