//go:build unit

package payment_test

import (
	"testing"
	"time"

	"court-connect-server/internal/domain/payment"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type paymentFields struct {
	email         string
	amountCents   int64
	method        string
	transactionID string
	discountCents int64
	couponCode    *string
}

func validPayment() paymentFields {
	return paymentFields{
		email:         "payer@example.com",
		amountCents:   2000,
		method:        "card",
		transactionID: "txn_123",
	}
}

func build(f paymentFields) (*payment.Payment, error) {
	return payment.NewPayment(
		uuid.New(), f.email, f.amountCents, f.method, f.transactionID,
		f.discountCents, f.couponCode, time.Now(),
	)
}

func TestNewPayment(t *testing.T) {
	t.Run("valid payment", func(t *testing.T) {
		p, err := build(validPayment())
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, p.ID())
		assert.Nil(t, p.CouponCode())
	})

	t.Run("negative discount clamps to zero", func(t *testing.T) {
		f := validPayment()
		f.discountCents = -500

		p, err := build(f)
		require.NoError(t, err)
		assert.Equal(t, int64(0), p.DiscountCents())
	})

	t.Run("coupon code is carried through", func(t *testing.T) {
		code := "SUMMER20"
		f := validPayment()
		f.couponCode = &code

		p, err := build(f)
		require.NoError(t, err)
		require.NotNil(t, p.CouponCode())
		assert.Equal(t, code, *p.CouponCode())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*paymentFields)
			errIs  error
		}{
			{"missing email", func(f *paymentFields) { f.email = " " }, payment.ErrMissingEmail},
			{"missing method", func(f *paymentFields) { f.method = "" }, payment.ErrMissingMethod},
			{"missing transaction id", func(f *paymentFields) { f.transactionID = "" }, payment.ErrMissingTransactionID},
			{"zero amount", func(f *paymentFields) { f.amountCents = 0 }, payment.ErrInvalidAmount},
			{"negative amount", func(f *paymentFields) { f.amountCents = -100 }, payment.ErrInvalidAmount},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				f := validPayment()
				tc.mutate(&f)

				_, err := build(f)
				assert.ErrorIs(t, err, tc.errIs)
			})
		}
	})
}
