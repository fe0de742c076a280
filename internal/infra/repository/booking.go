package repository

import (
	"context"
	"time"

	"court-connect-server/internal/domain/booking"
	"court-connect-server/internal/infra"
	"court-connect-server/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookingColumns = `id, court_id, court_name, user_email, date, slots, total_price_cents, status, created_at`

// BookingRepository is the write side of the booking aggregate.
type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO bookings (id, court_id, court_name, user_email, date, slots, total_price_cents, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		b.ID(), b.CourtID(), b.CourtName(), b.UserEmail(), b.Date(), b.Slots(),
		b.TotalPriceCents(), b.Status().String(), b.CreatedAt(),
	)
	if err != nil {
		if isDuplicateKey(err) {
			return infra.WrapRepoErr("booking already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)

	var (
		bID, courtID               uuid.UUID
		courtName, userEmail, date string
		slots                      []string
		totalPriceCents            int64
		status                     string
		createdAt                  time.Time
	)
	err := row.Scan(&bID, &courtID, &courtName, &userEmail, &date, &slots, &totalPriceCents, &status, &createdAt)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	return booking.ReconstructBooking(
		bID, courtID, courtName, userEmail, date,
		slots, totalPriceCents, booking.Status(status), createdAt,
	), nil
}

// UpdateStatus is the single write both the admin transition and payment
// reconciliation go through; q lets the reconciler run it inside its
// transaction.
func (r *BookingRepository) UpdateStatus(ctx context.Context, q db.Queryer, id uuid.UUID, status booking.Status) error {
	tag, err := q.Exec(ctx, `UPDATE bookings SET status = $2 WHERE id = $1`, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
