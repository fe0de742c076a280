package request

type UpsertUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name,omitempty"`
	PhotoURL string `json:"photoUrl,omitempty"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}
