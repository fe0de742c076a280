package api

import (
	"errors"
	"net/http"

	reqdto "court-connect-server/internal/handler/dto/request"
	resdto "court-connect-server/internal/handler/dto/response"
	"court-connect-server/internal/handler/httperr"
	"court-connect-server/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentCommands commands.PaymentCommands
}

func NewPaymentHandler(paymentCommands commands.PaymentCommands) *PaymentHandler {
	return &PaymentHandler{
		paymentCommands: paymentCommands,
	}
}

// @Summary Record payment
// @Description Persist a completed payment and mark its booking paid
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RecordPaymentRequest true "Payment request"
// @Success 200 {object} resdto.RecordPaymentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /payments [post]
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	var req reqdto.RecordPaymentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	paymentID, err := h.paymentCommands.Record(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid payment fields",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.RecordPaymentResponse{
		Success:   true,
		PaymentID: paymentID,
		Message:   "Payment recorded and booking marked paid",
	})
}

// @Summary Create payment intent
// @Description Delegate capture setup to the payment processor
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePaymentIntentRequest true "Amount"
// @Success 200 {object} resdto.PaymentIntentResponse
// @Failure 400 {object} map[string]string
// @Router /create-payment-intent [post]
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	var req reqdto.CreatePaymentIntentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	secret, err := h.paymentCommands.CreateIntent(c.Request.Context(), req.AmountCents)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.PaymentIntentResponse{ClientSecret: secret})
}
