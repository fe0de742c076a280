package commands

import (
	"context"
	"time"

	"court-connect-server/internal/domain/announcement"
	"court-connect-server/internal/domain/booking"
	"court-connect-server/internal/domain/payment"
	"court-connect-server/internal/domain/user"
	"court-connect-server/internal/infra/db"

	"github.com/google/uuid"
)

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	// UpdateStatus reports KindNotFound when no booking matched; q may be a
	// pool or an open transaction.
	UpdateStatus(ctx context.Context, q db.Queryer, id uuid.UUID, status booking.Status) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CourtRepository interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type UserRepository interface {
	// PromoteToMember is a silent no-op when no user matches the email or the
	// user is already an admin.
	PromoteToMember(ctx context.Context, email string, since time.Time) error
	Upsert(ctx context.Context, u *user.User) (uuid.UUID, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role user.Role) error
}

type PaymentRepository interface {
	Create(ctx context.Context, q db.Queryer, p *payment.Payment) error
}

type AnnouncementRepository interface {
	Create(ctx context.Context, a *announcement.Announcement) error
}

// PaymentIntentClient delegates the capture setup to the external payment
// processor; only the client secret comes back.
type PaymentIntentClient interface {
	CreateIntent(ctx context.Context, amountCents int64) (string, error)
}

// TxRunner runs fn inside one database transaction; an error from fn rolls
// back everything fn wrote through q.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(q db.Queryer) error) error
}
