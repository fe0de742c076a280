package queries

import (
	"context"
	"time"

	"court-connect-server/internal/infra"
	"court-connect-server/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrCourtNotFound = errs.New("court not found")

type CourtView struct {
	ID         uuid.UUID
	CourtType  string
	ImageURL   string
	PriceCents int64
	Slots      []string
	CreatedAt  time.Time
}

type CourtReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CourtView, error)
	FindPage(ctx context.Context, limit, offset int32) ([]*CourtView, int64, error)
}

type CourtQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*CourtView, error)
	List(ctx context.Context, limit, offset int32) ([]*CourtView, int64, error)
}

type courtQueriesImpl struct {
	readStore CourtReadStore
}

func NewCourtQueries(readStore CourtReadStore) CourtQueries {
	return &courtQueriesImpl{
		readStore: readStore,
	}
}

func (q *courtQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CourtView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCourtNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *courtQueriesImpl) List(ctx context.Context, limit, offset int32) ([]*CourtView, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return q.readStore.FindPage(ctx, limit, offset)
}
