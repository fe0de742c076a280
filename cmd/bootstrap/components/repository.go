package components

import (
	"court-connect-server/internal/infra/db"
	"court-connect-server/internal/infra/processor"
	repo_impl "court-connect-server/internal/infra/repository"
	"court-connect-server/internal/usecase/commands"
	"court-connect-server/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Write-side repositories
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			repo_impl.NewCourtRepository,
			fx.As(new(commands.CourtRepository)),
		),
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		fx.Annotate(
			repo_impl.NewPaymentRepository,
			fx.As(new(commands.PaymentRepository)),
		),
		fx.Annotate(
			repo_impl.NewAnnouncementRepository,
			fx.As(new(commands.AnnouncementRepository)),
		),
		// Read stores for queries
		fx.Annotate(
			repo_impl.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			repo_impl.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			repo_impl.NewCouponReadStore,
			fx.As(new(queries.CouponReadStore)),
		),
		fx.Annotate(
			repo_impl.NewCourtReadStore,
			fx.As(new(queries.CourtReadStore)),
		),
		fx.Annotate(
			repo_impl.NewAnnouncementReadStore,
			fx.As(new(queries.AnnouncementReadStore)),
		),
		// Payment processor client
		fx.Annotate(
			processor.NewStripeClient,
			fx.As(new(commands.PaymentIntentClient)),
		),
		// Transaction boundary for dependent writes
		fx.Annotate(
			db.NewTxManager,
			fx.As(new(commands.TxRunner)),
		),
	),
)
