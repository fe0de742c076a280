package commands

import (
	"context"

	"court-connect-server/internal/domain/booking"
	reqdto "court-connect-server/internal/handler/dto/request"
	"court-connect-server/internal/infra"
	"court-connect-server/internal/pkg/clock"
	"court-connect-server/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrCourtNotFound           = errs.New("court not found")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrInvalidTransition       = errs.New("invalid status transition")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type BookingCommands interface {
	Create(ctx context.Context, req reqdto.CreateBookingRequest) (uuid.UUID, error)
	Transition(ctx context.Context, id uuid.UUID, target string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type bookingCommandsImpl struct {
	bookingRepo BookingRepository
	courtRepo   CourtRepository
	userRepo    UserRepository
	pool        *pgxpool.Pool
	clock       clock.Clock
}

func NewBookingCommands(
	bookingRepo BookingRepository,
	courtRepo CourtRepository,
	userRepo UserRepository,
	pool *pgxpool.Pool,
	clock clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		bookingRepo: bookingRepo,
		courtRepo:   courtRepo,
		userRepo:    userRepo,
		pool:        pool,
		clock:       clock,
	}
}

// Create validates the request, checks the referenced court exists, and
// persists the booking with status forced to pending. A client-supplied
// status field is accepted on the wire and discarded here.
//
// The existence check and the insert are two separate storage calls: a court
// deleted in between leaves a booking with a dangling court reference, which
// is tolerated (the court name snapshot keeps the booking readable).
func (c *bookingCommandsImpl) Create(ctx context.Context, req reqdto.CreateBookingRequest) (uuid.UUID, error) {
	exists, err := c.courtRepo.Exists(ctx, req.CourtID)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !exists {
		return uuid.Nil, ErrCourtNotFound
	}

	entity, err := booking.NewBooking(
		req.CourtID,
		req.CourtName,
		req.UserEmail,
		req.Date,
		req.Slots,
		req.TotalPriceCents,
		c.clock.Now(),
	)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := c.bookingRepo.Create(ctx, entity); err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return entity.ID(), nil
}

// Transition moves a booking to one of the admin-settable statuses,
// enforcing the lifecycle table. Approval escalates the booking's user to
// member as a synchronous side effect.
func (c *bookingCommandsImpl) Transition(ctx context.Context, id uuid.UUID, target string) error {
	targetStatus, err := booking.NewStatus(target)
	if err != nil {
		return errs.Mark(err, ErrInvalidTransition)
	}

	entity, err := c.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := entity.TransitionTo(targetStatus); err != nil {
		return errs.Mark(err, ErrInvalidTransition)
	}

	if err := c.bookingRepo.UpdateStatus(ctx, c.pool, id, targetStatus); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if targetStatus == booking.StatusApproved {
		return c.escalateRole(ctx, entity.UserEmail())
	}
	return nil
}

// escalateRole promotes the booking's user to member. An email with no
// matching account is a no-op: approvals must never fail because the booking
// was made for an unregistered address. The write is idempotent, so
// concurrent approvals of the same user are safe without a compare-and-swap.
func (c *bookingCommandsImpl) escalateRole(ctx context.Context, email string) error {
	if err := c.userRepo.PromoteToMember(ctx, email, c.clock.Now()); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *bookingCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.bookingRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
