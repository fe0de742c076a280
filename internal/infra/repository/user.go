package repository

import (
	"context"
	"time"

	"court-connect-server/internal/domain/user"
	"court-connect-server/internal/infra"
	"court-connect-server/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// PromoteToMember rewrites the role unconditionally for non-admins; zero rows
// affected (unknown email or admin) is the silent no-op the approval flow
// relies on.
func (r *UserRepository) PromoteToMember(ctx context.Context, email string, since time.Time) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE users
		SET role = $2, member_since = $3, updated_at = now()
		WHERE email = $1 AND role <> $4`,
		email, user.RoleMember.String(), since, user.RoleAdmin.String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to promote user to member", err)
	}
	return nil
}

// Upsert keys on email; an existing row keeps its role and member_since.
func (r *UserRepository) Upsert(ctx context.Context, u *user.User) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.pool.QueryRow(ctx, `
		INSERT INTO users (id, email, name, photo_url, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, now(), now())
		ON CONFLICT (email) DO UPDATE
		SET name = EXCLUDED.name, photo_url = EXCLUDED.photo_url, updated_at = now()
		RETURNING id`,
		u.ID(), u.Email().Value(), u.Name(), u.PhotoURL(), u.Role().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to upsert user", err)
	}
	return id, nil
}

func (r *UserRepository) UpdateRole(ctx context.Context, id uuid.UUID, role user.Role) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE users SET role = $2, updated_at = now() WHERE id = $1`,
		id, role.String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update user role", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

// UserReadStore serves the query side; the auth middleware reads roles
// through it on every privileged request.
type UserReadStore struct {
	pool *pgxpool.Pool
}

func NewUserReadStore(pool *pgxpool.Pool) *UserReadStore {
	return &UserReadStore{pool: pool}
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.UserView, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, email, name, photo_url, role, member_since, created_at
		FROM users
		WHERE email = $1`,
		email,
	)

	var v queries.UserView
	err := row.Scan(&v.ID, &v.Email, &v.Name, &v.PhotoURL, &v.Role, &v.MemberSince, &v.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	return &v, nil
}
