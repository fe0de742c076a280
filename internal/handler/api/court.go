package api

import (
	"errors"
	"net/http"
	"strconv"

	resdto "court-connect-server/internal/handler/dto/response"
	"court-connect-server/internal/handler/httperr"
	"court-connect-server/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CourtHandler struct {
	courtQueries queries.CourtQueries
}

func NewCourtHandler(courtQueries queries.CourtQueries) *CourtHandler {
	return &CourtHandler{
		courtQueries: courtQueries,
	}
}

// @Summary List courts
// @Tags courts
// @Produce json
// @Param limit query int false "Page size (default 20, max 100)"
// @Param offset query int false "Page offset"
// @Success 200 {object} resdto.CourtListResponse
// @Router /courts [get]
func (h *CourtHandler) ListCourts(c *gin.Context) {
	limit := parseInt32(c.DefaultQuery("limit", "20"), 20)
	offset := parseInt32(c.DefaultQuery("offset", "0"), 0)

	views, total, err := h.courtQueries.List(c.Request.Context(), limit, offset)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromCourtViews(views, total))
}

// @Summary Get court
// @Tags courts
// @Produce json
// @Param id path string true "Court ID"
// @Success 200 {object} resdto.CourtResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /courts/{id} [get]
func (h *CourtHandler) GetCourt(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid court ID format",
		})
		return
	}

	view, err := h.courtQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrCourtNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Court not found",
			})
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromCourtView(view))
}

func parseInt32(s string, fallback int32) int32 {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return fallback
	}
	return int32(v)
}
