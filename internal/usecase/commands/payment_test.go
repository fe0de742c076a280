//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"court-connect-server/internal/domain/booking"
	"court-connect-server/internal/domain/payment"
	reqdto "court-connect-server/internal/handler/dto/request"
	"court-connect-server/internal/infra/db"
	"court-connect-server/internal/pkg/clock"
	"court-connect-server/internal/pkg/errs"
	"court-connect-server/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTxRunner invokes fn directly and records the outcome; a non-nil error
// from fn stands for a rolled-back transaction.
type fakeTxRunner struct {
	began      bool
	committed  bool
	rolledBack bool
}

func (f *fakeTxRunner) RunInTx(_ context.Context, fn func(q db.Queryer) error) error {
	f.began = true
	if err := fn(nil); err != nil {
		f.rolledBack = true
		return err
	}
	f.committed = true
	return nil
}

type fakePaymentRepo struct {
	created   *payment.Payment
	createErr error
}

func (f *fakePaymentRepo) Create(_ context.Context, _ db.Queryer, p *payment.Payment) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = p
	return nil
}

type fakeIntentClient struct {
	secret string
	err    error
	amount int64
}

func (f *fakeIntentClient) CreateIntent(_ context.Context, amountCents int64) (string, error) {
	f.amount = amountCents
	return f.secret, f.err
}

type paymentFixture struct {
	paymentRepo *fakePaymentRepo
	bookingRepo *fakeBookingRepo
	intent      *fakeIntentClient
	tx          *fakeTxRunner
	svc         commands.PaymentCommands
}

func newPaymentFixture() *paymentFixture {
	f := &paymentFixture{
		paymentRepo: &fakePaymentRepo{},
		bookingRepo: &fakeBookingRepo{},
		intent:      &fakeIntentClient{},
		tx:          &fakeTxRunner{},
	}
	f.svc = commands.NewPaymentCommands(
		f.paymentRepo, f.bookingRepo, f.intent, f.tx,
		clock.NewMockClock(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)),
	)
	return f
}

func validRecordRequest() reqdto.RecordPaymentRequest {
	return reqdto.RecordPaymentRequest{
		BookingID:     uuid.New(),
		Email:         "payer@example.com",
		AmountCents:   2000,
		PaymentMethod: "card",
		TransactionID: "txn_123",
	}
}

func TestPaymentCommands_Record(t *testing.T) {
	t.Run("payment insert and booking update commit together", func(t *testing.T) {
		f := newPaymentFixture()

		id, err := f.svc.Record(context.Background(), validRecordRequest())
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)

		assert.True(t, f.tx.committed)
		require.NotNil(t, f.paymentRepo.created)
		assert.Equal(t, id, f.paymentRepo.created.ID())
		assert.Equal(t, []booking.Status{booking.StatusPaid}, f.bookingRepo.updated)
	})

	t.Run("absent booking rolls the payment back", func(t *testing.T) {
		f := newPaymentFixture()
		f.bookingRepo.updateErr = notFoundErr()

		_, err := f.svc.Record(context.Background(), validRecordRequest())
		require.ErrorIs(t, err, commands.ErrBookingNotFound)

		assert.True(t, f.tx.rolledBack)
		assert.False(t, f.tx.committed)
	})

	t.Run("payment insert failure rolls back before the booking update", func(t *testing.T) {
		f := newPaymentFixture()
		f.paymentRepo.createErr = errs.New("insert failed")

		_, err := f.svc.Record(context.Background(), validRecordRequest())
		require.ErrorIs(t, err, commands.ErrDatabaseOperationFailed)

		assert.True(t, f.tx.rolledBack)
		assert.Empty(t, f.bookingRepo.updated)
	})

	t.Run("domain validation fails before any transaction opens", func(t *testing.T) {
		f := newPaymentFixture()

		req := validRecordRequest()
		req.AmountCents = 0

		_, err := f.svc.Record(context.Background(), req)
		require.ErrorIs(t, err, commands.ErrDomainValidation)
		assert.False(t, f.tx.began)
	})
}

func TestPaymentCommands_CreateIntent(t *testing.T) {
	t.Run("passes the client secret through", func(t *testing.T) {
		f := newPaymentFixture()
		f.intent.secret = "pi_secret_abc"

		secret, err := f.svc.CreateIntent(context.Background(), 2500)
		require.NoError(t, err)
		assert.Equal(t, "pi_secret_abc", secret)
		assert.Equal(t, int64(2500), f.intent.amount)
	})

	t.Run("processor failure", func(t *testing.T) {
		f := newPaymentFixture()
		f.intent.err = errs.New("processor unavailable")

		_, err := f.svc.CreateIntent(context.Background(), 2500)
		assert.ErrorIs(t, err, commands.ErrPaymentIntentFailed)
	})
}
