package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type AnnouncementView struct {
	ID        uuid.UUID
	Title     string
	Body      string
	CreatedAt time.Time
}

type AnnouncementReadStore interface {
	FindAll(ctx context.Context) ([]*AnnouncementView, error)
}

type AnnouncementQueries interface {
	ListAll(ctx context.Context) ([]*AnnouncementView, error)
}

type announcementQueriesImpl struct {
	readStore AnnouncementReadStore
}

func NewAnnouncementQueries(readStore AnnouncementReadStore) AnnouncementQueries {
	return &announcementQueriesImpl{
		readStore: readStore,
	}
}

func (q *announcementQueriesImpl) ListAll(ctx context.Context) ([]*AnnouncementView, error) {
	return q.readStore.FindAll(ctx)
}
