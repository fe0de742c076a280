package repository

import (
	"context"

	"court-connect-server/internal/domain/booking"
	"court-connect-server/internal/infra"
	"court-connect-server/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BookingReadStore serves the query side of the booking aggregate.
type BookingReadStore struct {
	pool *pgxpool.Pool
}

func NewBookingReadStore(pool *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{pool: pool}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)

	view, err := scanBookingView(row)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return view, nil
}

func (r *BookingReadStore) FindByUserAndStatus(ctx context.Context, email string, status booking.Status) ([]*queries.BookingView, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+bookingColumns+`
		FROM bookings
		WHERE user_email = $1 AND status = $2
		ORDER BY created_at DESC`,
		email, status.String(),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find bookings by user and status", err)
	}
	defer rows.Close()

	return collectBookingViews(rows)
}

func (r *BookingReadStore) FindAll(ctx context.Context, status *booking.Status, search string) ([]*queries.BookingView, error) {
	var statusFilter *string
	if status != nil {
		s := status.String()
		statusFilter = &s
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+bookingColumns+`
		FROM bookings
		WHERE ($1::text IS NULL OR status = $1)
		  AND ($2 = '' OR court_name ILIKE '%' || $2 || '%')
		ORDER BY created_at DESC`,
		statusFilter, search,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	return collectBookingViews(rows)
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var v queries.BookingView
	err := row.Scan(
		&v.ID, &v.CourtID, &v.CourtName, &v.UserEmail, &v.Date,
		&v.Slots, &v.TotalPriceCents, &v.Status, &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func collectBookingViews(rows pgx.Rows) ([]*queries.BookingView, error) {
	result := []*queries.BookingView{}
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return result, nil
}
