package components

import (
	"court-connect-server/internal/handler"
	"court-connect-server/internal/handler/api"
	"court-connect-server/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewPaymentHandler,
		api.NewCouponHandler,
		api.NewUserHandler,
		api.NewCourtHandler,
		api.NewAnnouncementHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	auth *api.AuthHandler,
	booking *api.BookingHandler,
	payment *api.PaymentHandler,
	coupon *api.CouponHandler,
	user *api.UserHandler,
	court *api.CourtHandler,
	announcement *api.AnnouncementHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:         auth,
		Booking:      booking,
		Payment:      payment,
		Coupon:       coupon,
		User:         user,
		Court:        court,
		Announcement: announcement,
	}
}
