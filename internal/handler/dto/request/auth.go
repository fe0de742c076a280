package request

type TokenRequest struct {
	Email string `json:"email" binding:"required,email"`
}
