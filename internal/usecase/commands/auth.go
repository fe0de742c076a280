package commands

import (
	"context"

	"court-connect-server/internal/domain/user"
	"court-connect-server/internal/pkg/errs"
	"court-connect-server/internal/pkg/jwt"
	"court-connect-server/internal/usecase/queries"
)

var (
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type AuthCommands interface {
	IssueToken(ctx context.Context, email string) (string, error)
}

type authCommandsImpl struct {
	readStore  queries.UserReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(readStore queries.UserReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		readStore:  readStore,
		jwtService: jwtService,
	}
}

// IssueToken mints a token for an externally verified identity. Callers
// without a stored account get the base role; the role claim is informational
// only, since privileged endpoints re-read the role from storage anyway.
func (a *authCommandsImpl) IssueToken(ctx context.Context, emailStr string) (string, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return "", errs.Mark(err, ErrAuthenticationFailed)
	}

	role := user.RoleUser
	if view, findErr := a.readStore.FindByEmail(ctx, email.Value()); findErr == nil {
		if stored, roleErr := user.NewRole(view.Role); roleErr == nil {
			role = stored
		}
	}

	token, err := a.jwtService.GenerateToken(email.Value(), role)
	if err != nil {
		return "", errs.Mark(err, ErrTokenGeneration)
	}
	return token, nil
}
