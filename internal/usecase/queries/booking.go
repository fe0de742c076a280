package queries

import (
	"context"
	"time"

	"court-connect-server/internal/domain/booking"
	"court-connect-server/internal/infra"
	"court-connect-server/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrInvalidFilter   = errs.New("invalid status filter")
)

type BookingView struct {
	ID              uuid.UUID
	CourtID         uuid.UUID
	CourtName       string
	UserEmail       string
	Date            string
	Slots           []string
	TotalPriceCents int64
	Status          string
	CreatedAt       time.Time
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByUserAndStatus(ctx context.Context, email string, status booking.Status) ([]*BookingView, error)
	FindAll(ctx context.Context, status *booking.Status, search string) ([]*BookingView, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListForUser(ctx context.Context, email string, status booking.Status) ([]*BookingView, error)
	ListAll(ctx context.Context, statusFilter, search string) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
}

func NewBookingQueries(readStore BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{
		readStore: readStore,
	}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListForUser(ctx context.Context, email string, status booking.Status) ([]*BookingView, error) {
	return q.readStore.FindByUserAndStatus(ctx, email, status)
}

// ListAll is the admin listing: optional status filter plus a case-insensitive
// substring match on the court name snapshot.
func (q *bookingQueriesImpl) ListAll(ctx context.Context, statusFilter, search string) ([]*BookingView, error) {
	var status *booking.Status
	if statusFilter != "" {
		s, err := booking.NewStatus(statusFilter)
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidFilter)
		}
		status = &s
	}
	return q.readStore.FindAll(ctx, status, search)
}
