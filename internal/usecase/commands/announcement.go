package commands

import (
	"context"

	"court-connect-server/internal/domain/announcement"
	reqdto "court-connect-server/internal/handler/dto/request"
	"court-connect-server/internal/pkg/clock"
	"court-connect-server/internal/pkg/errs"

	"github.com/google/uuid"
)

type AnnouncementCommands interface {
	Create(ctx context.Context, req reqdto.CreateAnnouncementRequest) (uuid.UUID, error)
}

type announcementCommandsImpl struct {
	repo  AnnouncementRepository
	clock clock.Clock
}

func NewAnnouncementCommands(repo AnnouncementRepository, clock clock.Clock) AnnouncementCommands {
	return &announcementCommandsImpl{
		repo:  repo,
		clock: clock,
	}
}

func (c *announcementCommandsImpl) Create(ctx context.Context, req reqdto.CreateAnnouncementRequest) (uuid.UUID, error) {
	entity, err := announcement.NewAnnouncement(req.Title, req.Body, c.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := c.repo.Create(ctx, entity); err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return entity.ID(), nil
}
