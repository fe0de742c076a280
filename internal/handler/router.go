package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"court-connect-server/internal/handler/api"
	"court-connect-server/internal/handler/middleware"
	"court-connect-server/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth         *api.AuthHandler
	Booking      *api.BookingHandler
	Payment      *api.PaymentHandler
	Coupon       *api.CouponHandler
	User         *api.UserHandler
	Court        *api.CourtHandler
	Announcement *api.AnnouncementHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/auth/token", Handler: h.Auth.IssueToken},
			{Method: http.MethodPut, Path: "/users", Handler: h.User.UpsertUser},
			{Method: http.MethodGet, Path: "/courts", Handler: h.Court.ListCourts},
			{Method: http.MethodGet, Path: "/courts/:id", Handler: h.Court.GetCourt},
			{Method: http.MethodGet, Path: "/announcements", Handler: h.Announcement.ListAnnouncements},
			{Method: http.MethodPost, Path: "/bookings", Handler: h.Booking.CreateBooking},
		})

		authRequired := apiGroup.Group("")
		authRequired.Use(authMiddleware.RequireAuth())
		{
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/bookings/:id", Handler: h.Booking.GetBooking},
				{Method: http.MethodGet, Path: "/bookings/:id/:email", Handler: h.Booking.ListUserBookings},
				{Method: http.MethodDelete, Path: "/bookings/:id", Handler: h.Booking.DeleteBooking},
				{Method: http.MethodGet, Path: "/coupons/:code", Handler: h.Coupon.ValidateCoupon},
				{Method: http.MethodPost, Path: "/payments", Handler: h.Payment.RecordPayment},
				{Method: http.MethodPost, Path: "/create-payment-intent", Handler: h.Payment.CreatePaymentIntent},
				{Method: http.MethodGet, Path: "/users/:email/role", Handler: h.User.GetRole},
			})

			adminRequired := authRequired.Group("")
			adminRequired.Use(authMiddleware.RequireAdmin())
			{
				addRoutes(adminRequired, []route{
					{Method: http.MethodGet, Path: "/bookings", Handler: h.Booking.ListBookings},
					{Method: http.MethodPatch, Path: "/bookings/:id", Handler: h.Booking.TransitionBooking},
					{Method: http.MethodPatch, Path: "/users/:id/role", Handler: h.User.UpdateRole},
					{Method: http.MethodPost, Path: "/announcements", Handler: h.Announcement.CreateAnnouncement},
				})
			}
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
