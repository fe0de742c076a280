package repository

import (
	"context"

	"court-connect-server/internal/domain/announcement"
	"court-connect-server/internal/infra"
	"court-connect-server/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

type AnnouncementRepository struct {
	pool *pgxpool.Pool
}

func NewAnnouncementRepository(pool *pgxpool.Pool) *AnnouncementRepository {
	return &AnnouncementRepository{pool: pool}
}

func (r *AnnouncementRepository) Create(ctx context.Context, a *announcement.Announcement) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO announcements (id, title, body, created_at)
		VALUES ($1, $2, $3, $4)`,
		a.ID(), a.Title(), a.Body(), a.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create announcement", err)
	}
	return nil
}

type AnnouncementReadStore struct {
	pool *pgxpool.Pool
}

func NewAnnouncementReadStore(pool *pgxpool.Pool) *AnnouncementReadStore {
	return &AnnouncementReadStore{pool: pool}
}

func (r *AnnouncementReadStore) FindAll(ctx context.Context) ([]*queries.AnnouncementView, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, body, created_at
		FROM announcements
		ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list announcements", err)
	}
	defer rows.Close()

	result := []*queries.AnnouncementView{}
	for rows.Next() {
		var v queries.AnnouncementView
		if err := rows.Scan(&v.ID, &v.Title, &v.Body, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan announcement row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate announcement rows", err)
	}
	return result, nil
}
