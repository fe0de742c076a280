package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"court-connect-server/internal/domain/user"
	"court-connect-server/internal/usecase"
	"court-connect-server/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const (
	ctxUserEmailKey = "user_email"
	ctxUserRoleKey  = "user_role"

	accessTokenCookieName = "access_token"
)

// AuthMiddleware is the authorization gate: token validation resolves the
// identity, and the admin check re-reads the role from storage on every
// request so role changes need no propagation.
type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
	userQueries    queries.UserQueries
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator, userQueries queries.UserQueries) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
		userQueries:    userQueries,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		email, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxUserEmailKey, email)
		c.Set(ctxUserRoleKey, role)
		c.Set("jwt_claims", map[string]any{
			"email": email,
			"role":  string(role),
		})
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth; an unauthenticated caller is
// rejected there before any role lookup happens here.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := GetUserEmail(c)
		if !ok {
			// Unexpected error: should be used after RequireAuth()
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		role, err := m.userQueries.GetRole(c.Request.Context(), email)
		if err != nil {
			if errors.Is(err, queries.ErrUserNotFound) {
				c.JSON(http.StatusUnauthorized, gin.H{
					"error": "Unknown account",
				})
				c.Abort()
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		if !role.IsAdmin() {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if cookieToken, err := c.Cookie(accessTokenCookieName); err == nil && cookieToken != "" {
		return cookieToken
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetUserEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(ctxUserEmailKey)
	if !exists {
		return "", false
	}

	e, ok := email.(string)
	return e, ok
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	userRole, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}

	role, ok := userRole.(user.Role)
	return role, ok
}
