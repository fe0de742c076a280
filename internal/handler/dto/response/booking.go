package response

import (
	"time"

	"court-connect-server/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CreateBookingResponse struct {
	Success    bool      `json:"success"`
	InsertedID uuid.UUID `json:"insertedId"`
}

type BookingResponse struct {
	ID              uuid.UUID `json:"id"`
	CourtID         uuid.UUID `json:"courtId"`
	CourtName       string    `json:"courtName"`
	UserEmail       string    `json:"userEmail"`
	Date            string    `json:"date"`
	Slots           []string  `json:"slots"`
	TotalPriceCents int64     `json:"totalPriceCents"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromBookingViews(views []*queries.BookingView) []*BookingResponse {
	result := make([]*BookingResponse, len(views))
	for i, v := range views {
		result[i] = FromBookingView(v)
	}
	return result
}
