//go:build unit

package coupon_test

import (
	"testing"
	"time"

	"court-connect-server/internal/domain/coupon"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCoupon(t *testing.T) {
	expiry := time.Date(2026, 12, 31, 23, 59, 59, 0, time.UTC)

	t.Run("valid coupon", func(t *testing.T) {
		c, err := coupon.NewCoupon("SUMMER20", 2000, expiry)
		require.NoError(t, err)
		assert.Equal(t, "SUMMER20", c.Code())
		assert.Equal(t, int64(2000), c.DiscountCents())
	})

	t.Run("zero discount is allowed", func(t *testing.T) {
		_, err := coupon.NewCoupon("FREEBIE", 0, expiry)
		assert.NoError(t, err)
	})

	t.Run("empty code", func(t *testing.T) {
		_, err := coupon.NewCoupon("", 2000, expiry)
		assert.ErrorIs(t, err, coupon.ErrInvalidCode)
	})

	t.Run("negative discount", func(t *testing.T) {
		_, err := coupon.NewCoupon("BAD", -1, expiry)
		assert.ErrorIs(t, err, coupon.ErrInvalidAmount)
	})
}

func TestIsValidAt(t *testing.T) {
	expiry := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	c, err := coupon.NewCoupon("SUMMER20", 2000, expiry)
	require.NoError(t, err)

	assert.True(t, c.IsValidAt(expiry.Add(-time.Hour)))
	assert.True(t, c.IsValidAt(expiry), "the expiry instant itself is still valid")
	assert.False(t, c.IsValidAt(expiry.Add(time.Nanosecond)))

	assert.NoError(t, c.ValidateUsage(expiry))
	assert.ErrorIs(t, c.ValidateUsage(expiry.Add(time.Hour)), coupon.ErrCouponExpired)
}
