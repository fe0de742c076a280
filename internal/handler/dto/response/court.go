package response

import (
	"time"

	"court-connect-server/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CourtResponse struct {
	ID         uuid.UUID `json:"id"`
	CourtType  string    `json:"courtType"`
	ImageURL   string    `json:"imageUrl,omitempty"`
	PriceCents int64     `json:"priceCents"`
	Slots      []string  `json:"slots"`
	CreatedAt  time.Time `json:"createdAt"`
}

type CourtListResponse struct {
	Courts []*CourtResponse `json:"courts"`
	Total  int64            `json:"total"`
}

func FromCourtView(view *queries.CourtView) *CourtResponse {
	var resp CourtResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromCourtViews(views []*queries.CourtView, total int64) *CourtListResponse {
	courts := make([]*CourtResponse, len(views))
	for i, v := range views {
		courts[i] = FromCourtView(v)
	}
	return &CourtListResponse{Courts: courts, Total: total}
}
