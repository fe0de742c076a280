//go:build unit

package httperr_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"court-connect-server/internal/handler/httperr"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbortWithError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("writes the response and records the cause", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		cause := errors.New("pool exhausted")
		httperr.AbortWithError(c, http.StatusInternalServerError, cause, "Internal server error")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":{"message":"Internal server error"}}`, rec.Body.String())
		assert.True(t, c.IsAborted())

		require.Len(t, c.Errors, 1)
		assert.ErrorIs(t, c.Errors[0].Err, cause)
	})

	t.Run("nil cause panics", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)

		assert.Panics(t, func() {
			httperr.AbortWithError(c, http.StatusInternalServerError, nil, "boom")
		})
	})
}
