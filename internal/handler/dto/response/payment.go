package response

import (
	"github.com/google/uuid"
)

type RecordPaymentResponse struct {
	Success   bool      `json:"success"`
	PaymentID uuid.UUID `json:"paymentId"`
	Message   string    `json:"message"`
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
