package api

import (
	"errors"
	"net/http"

	reqdto "court-connect-server/internal/handler/dto/request"
	"court-connect-server/internal/handler/httperr"
	"court-connect-server/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
}

func NewAuthHandler(authCommands commands.AuthCommands) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
	}
}

// @Summary Issue access token
// @Description Exchange an externally verified email for a signed JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.TokenRequest true "Identity"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /auth/token [post]
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req reqdto.TokenRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	token, err := h.authCommands.IssueToken(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, commands.ErrAuthenticationFailed) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid email address",
			})
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"accessToken": token})
}
