package repository

import (
	"context"

	"court-connect-server/internal/infra"
	"court-connect-server/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CourtRepository struct {
	pool *pgxpool.Pool
}

func NewCourtRepository(pool *pgxpool.Pool) *CourtRepository {
	return &CourtRepository{pool: pool}
}

func (r *CourtRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM courts WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check court existence", err)
	}
	return exists, nil
}

type CourtReadStore struct {
	pool *pgxpool.Pool
}

func NewCourtReadStore(pool *pgxpool.Pool) *CourtReadStore {
	return &CourtReadStore{pool: pool}
}

func (r *CourtReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CourtView, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, court_type, image_url, price_cents, slots, created_at
		FROM courts
		WHERE id = $1`,
		id,
	)

	var v queries.CourtView
	err := row.Scan(&v.ID, &v.CourtType, &v.ImageURL, &v.PriceCents, &v.Slots, &v.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("court not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find court by ID", err)
	}
	return &v, nil
}

func (r *CourtReadStore) FindPage(ctx context.Context, limit, offset int32) ([]*queries.CourtView, int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM courts`).Scan(&total); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count courts", err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, court_type, image_url, price_cents, slots, created_at
		FROM courts
		ORDER BY court_type, created_at
		LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list courts", err)
	}
	defer rows.Close()

	result := []*queries.CourtView{}
	for rows.Next() {
		var v queries.CourtView
		if err := rows.Scan(&v.ID, &v.CourtType, &v.ImageURL, &v.PriceCents, &v.Slots, &v.CreatedAt); err != nil {
			return nil, 0, infra.WrapRepoErr("failed to scan court row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to iterate court rows", err)
	}
	return result, total, nil
}
