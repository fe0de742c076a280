package commands

import (
	"context"

	"court-connect-server/internal/domain/booking"
	"court-connect-server/internal/domain/payment"
	reqdto "court-connect-server/internal/handler/dto/request"
	"court-connect-server/internal/infra"
	"court-connect-server/internal/infra/db"
	"court-connect-server/internal/pkg/clock"
	"court-connect-server/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrPaymentIntentFailed = errs.New("payment intent creation failed")

type PaymentCommands interface {
	Record(ctx context.Context, req reqdto.RecordPaymentRequest) (uuid.UUID, error)
	CreateIntent(ctx context.Context, amountCents int64) (string, error)
}

type paymentCommandsImpl struct {
	paymentRepo  PaymentRepository
	bookingRepo  BookingRepository
	intentClient PaymentIntentClient
	txRunner     TxRunner
	clock        clock.Clock
}

func NewPaymentCommands(
	paymentRepo PaymentRepository,
	bookingRepo BookingRepository,
	intentClient PaymentIntentClient,
	txRunner TxRunner,
	clock clock.Clock,
) PaymentCommands {
	return &paymentCommandsImpl{
		paymentRepo:  paymentRepo,
		bookingRepo:  bookingRepo,
		intentClient: intentClient,
		txRunner:     txRunner,
		clock:        clock,
	}
}

// Record persists the payment and marks the referenced booking paid inside a
// single transaction. The two writes are dependent, so neither survives
// alone: a booking deleted between validation and reconciliation rolls the
// payment back and the caller sees not-found.
func (p *paymentCommandsImpl) Record(ctx context.Context, req reqdto.RecordPaymentRequest) (uuid.UUID, error) {
	entity, err := payment.NewPayment(
		req.BookingID,
		req.Email,
		req.AmountCents,
		req.PaymentMethod,
		req.TransactionID,
		req.DiscountCents,
		req.GetCouponCode(),
		p.clock.Now(),
	)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	err = p.txRunner.RunInTx(ctx, func(q db.Queryer) error {
		if err := p.paymentRepo.Create(ctx, q, entity); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := p.bookingRepo.UpdateStatus(ctx, q, req.BookingID, booking.StatusPaid); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	return entity.ID(), nil
}

// CreateIntent delegates to the external processor and passes its client
// secret straight through. One attempt, no retries.
func (p *paymentCommandsImpl) CreateIntent(ctx context.Context, amountCents int64) (string, error) {
	secret, err := p.intentClient.CreateIntent(ctx, amountCents)
	if err != nil {
		return "", errs.Mark(err, ErrPaymentIntentFailed)
	}
	return secret, nil
}
