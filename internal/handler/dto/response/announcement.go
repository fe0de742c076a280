package response

import (
	"time"

	"court-connect-server/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type AnnouncementResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromAnnouncementViews(views []*queries.AnnouncementView) []*AnnouncementResponse {
	result := make([]*AnnouncementResponse, len(views))
	for i, v := range views {
		var resp AnnouncementResponse
		_ = copier.Copy(&resp, v)
		result[i] = &resp
	}
	return result
}
