package request

import (
	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	CourtID         uuid.UUID `json:"courtId" binding:"required"`
	CourtName       string    `json:"courtName" binding:"required"`
	UserEmail       string    `json:"userEmail" binding:"required,email"`
	Date            string    `json:"date" binding:"required"`
	Slots           []string  `json:"slots" binding:"required,min=1"`
	TotalPriceCents int64     `json:"totalPriceCents" binding:"required"`
	// Clients may send a status; creation forces pending regardless.
	Status *string `json:"status,omitempty"`
}

type TransitionBookingRequest struct {
	Status string `json:"status" binding:"required"`
}
