package response

import (
	"time"

	"court-connect-server/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type UserResponse struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	Name        string     `json:"name,omitempty"`
	PhotoURL    string     `json:"photoUrl,omitempty"`
	Role        string     `json:"role"`
	MemberSince *time.Time `json:"memberSince,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type RoleResponse struct {
	Role string `json:"role"`
}

func FromUserView(view *queries.UserView) *UserResponse {
	var resp UserResponse
	_ = copier.Copy(&resp, view)
	return &resp
}
