package api

import (
	"errors"
	"net/http"

	reqdto "court-connect-server/internal/handler/dto/request"
	resdto "court-connect-server/internal/handler/dto/response"
	"court-connect-server/internal/handler/httperr"
	"court-connect-server/internal/usecase/commands"
	"court-connect-server/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AnnouncementHandler struct {
	announcementCommands commands.AnnouncementCommands
	announcementQueries  queries.AnnouncementQueries
}

func NewAnnouncementHandler(
	announcementCommands commands.AnnouncementCommands,
	announcementQueries queries.AnnouncementQueries,
) *AnnouncementHandler {
	return &AnnouncementHandler{
		announcementCommands: announcementCommands,
		announcementQueries:  announcementQueries,
	}
}

// @Summary List announcements
// @Tags announcements
// @Produce json
// @Success 200 {array} resdto.AnnouncementResponse
// @Router /announcements [get]
func (h *AnnouncementHandler) ListAnnouncements(c *gin.Context) {
	views, err := h.announcementQueries.ListAll(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromAnnouncementViews(views))
}

// @Summary Publish announcement
// @Tags announcements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateAnnouncementRequest true "Announcement"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Router /announcements [post]
func (h *AnnouncementHandler) CreateAnnouncement(c *gin.Context) {
	var req reqdto.CreateAnnouncementRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.announcementCommands.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, commands.ErrDomainValidation) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid announcement fields",
			})
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "id": id})
}
