package repository

import (
	"context"

	"court-connect-server/internal/domain/payment"
	"court-connect-server/internal/infra"
	"court-connect-server/internal/infra/db"
)

type PaymentRepository struct{}

func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{}
}

// Create always runs on the reconciler's transaction, never on the bare pool,
// so a failed booking update takes the payment down with it.
func (r *PaymentRepository) Create(ctx context.Context, q db.Queryer, p *payment.Payment) error {
	_, err := q.Exec(ctx, `
		INSERT INTO payments (id, booking_id, email, amount_cents, payment_method, transaction_id, discount_cents, coupon_code, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		p.ID(), p.BookingID(), p.Email(), p.AmountCents(), p.Method(),
		p.TransactionID(), p.DiscountCents(), p.CouponCode(), p.CreatedAt(),
	)
	if err != nil {
		if isDuplicateKey(err) {
			return infra.WrapRepoErr("payment already recorded", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create payment", err)
	}
	return nil
}
