package processor

import (
	"context"

	"court-connect-server/internal/pkg/config"
	"court-connect-server/internal/pkg/errs"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/paymentintent"
)

// StripeClient sets up payment capture with Stripe. Capture itself happens on
// the client side against the returned secret; this service never sees card
// data.
type StripeClient struct {
	currency string
}

func NewStripeClient(cfg config.StripeConfig) *StripeClient {
	stripe.Key = cfg.SecretKey
	return &StripeClient{currency: cfg.Currency}
}

func (c *StripeClient) CreateIntent(ctx context.Context, amountCents int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(c.currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", errs.Wrap(err, "stripe payment intent creation failed")
	}
	return intent.ClientSecret, nil
}
