package queries

import (
	"context"
	"time"

	"court-connect-server/internal/domain/user"
	"court-connect-server/internal/infra"
	"court-connect-server/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrUserNotFound = errs.New("user not found")

type UserView struct {
	ID          uuid.UUID
	Email       string
	Name        string
	PhotoURL    string
	Role        string
	MemberSince *time.Time
	CreatedAt   time.Time
}

type UserReadStore interface {
	FindByEmail(ctx context.Context, email string) (*UserView, error)
}

type UserQueries interface {
	GetByEmail(ctx context.Context, email string) (*UserView, error)
	GetRole(ctx context.Context, email string) (user.Role, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) GetByEmail(ctx context.Context, email string) (*UserView, error) {
	view, err := q.readStore.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return view, nil
}

// GetRole reads the role fresh from storage on every call; role changes take
// effect on the next request with no propagation delay.
func (q *userQueriesImpl) GetRole(ctx context.Context, email string) (user.Role, error) {
	view, err := q.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	role, err := user.NewRole(view.Role)
	if err != nil {
		return "", errs.Wrap(err, "stored role is invalid")
	}
	return role, nil
}
