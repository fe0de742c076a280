package commands

import (
	"context"

	"court-connect-server/internal/domain/user"
	reqdto "court-connect-server/internal/handler/dto/request"
	"court-connect-server/internal/infra"
	"court-connect-server/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound = errs.New("user not found")
	ErrInvalidRole  = errs.New("invalid role")
)

type UserCommands interface {
	UpsertProfile(ctx context.Context, req reqdto.UpsertUserRequest) (uuid.UUID, error)
	SetRole(ctx context.Context, id uuid.UUID, role string) error
}

type userCommandsImpl struct {
	userRepo UserRepository
}

func NewUserCommands(userRepo UserRepository) UserCommands {
	return &userCommandsImpl{
		userRepo: userRepo,
	}
}

// UpsertProfile registers a user on first sign-in and refreshes name/photo on
// later ones. The stored role is never touched here; role changes go through
// SetRole or booking approval.
func (c *userCommandsImpl) UpsertProfile(ctx context.Context, req reqdto.UpsertUserRequest) (uuid.UUID, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	entity := user.NewUser(email, req.Name, req.PhotoURL)
	id, err := c.userRepo.Upsert(ctx, entity)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return id, nil
}

// SetRole is the explicit admin override; unlike escalation it may move a
// role in any direction.
func (c *userCommandsImpl) SetRole(ctx context.Context, id uuid.UUID, roleStr string) error {
	role, err := user.NewRole(roleStr)
	if err != nil {
		return errs.Mark(err, ErrInvalidRole)
	}

	if err := c.userRepo.UpdateRole(ctx, id, role); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
