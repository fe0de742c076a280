//go:build unit

package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"court-connect-server/internal/domain/user"
	"court-connect-server/internal/handler/middleware"
	"court-connect-server/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeTokenValidator struct {
	email string
	role  user.Role
	err   error
}

func (f *fakeTokenValidator) ValidateToken(_ string) (string, user.Role, error) {
	return f.email, f.role, f.err
}

type fakeUserQueries struct {
	role user.Role
	err  error
}

func (f *fakeUserQueries) GetByEmail(_ context.Context, _ string) (*queries.UserView, error) {
	return nil, f.err
}

func (f *fakeUserQueries) GetRole(_ context.Context, _ string) (user.Role, error) {
	return f.role, f.err
}

func newTestRouter(validator *fakeTokenValidator, userQueries *fakeUserQueries) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	m := middleware.NewAuthMiddleware(validator, userQueries)
	admin := engine.Group("/admin")
	admin.Use(m.RequireAuth())
	admin.Use(m.RequireAdmin())
	admin.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return engine
}

func doRequest(engine *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("missing token is 401", func(t *testing.T) {
		engine := newTestRouter(&fakeTokenValidator{}, &fakeUserQueries{})
		rec := doRequest(engine, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid token is 401 before any role check", func(t *testing.T) {
		validator := &fakeTokenValidator{err: errors.New("invalid token")}
		engine := newTestRouter(validator, &fakeUserQueries{role: user.RoleAdmin})
		rec := doRequest(engine, "bad-token")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("authenticated non-admin is 403", func(t *testing.T) {
		validator := &fakeTokenValidator{email: "member@example.com", role: user.RoleMember}
		engine := newTestRouter(validator, &fakeUserQueries{role: user.RoleMember})
		rec := doRequest(engine, "good-token")
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin passes", func(t *testing.T) {
		validator := &fakeTokenValidator{email: "admin@example.com", role: user.RoleAdmin}
		engine := newTestRouter(validator, &fakeUserQueries{role: user.RoleAdmin})
		rec := doRequest(engine, "good-token")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("role comes from storage, not the token", func(t *testing.T) {
		// A stale admin claim in the token must not grant access once the
		// stored role has been demoted.
		validator := &fakeTokenValidator{email: "demoted@example.com", role: user.RoleAdmin}
		engine := newTestRouter(validator, &fakeUserQueries{role: user.RoleUser})
		rec := doRequest(engine, "good-token")
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("unknown account is 401", func(t *testing.T) {
		validator := &fakeTokenValidator{email: "ghost@example.com", role: user.RoleAdmin}
		engine := newTestRouter(validator, &fakeUserQueries{err: queries.ErrUserNotFound})
		rec := doRequest(engine, "good-token")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
