package user

import (
	"errors"
	"net/mail"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidEmail = errors.New("invalid email address")

type Email string

func NewEmail(s string) (Email, error) {
	if s == "" {
		return "", ErrInvalidEmail
	}
	if _, err := mail.ParseAddress(s); err != nil {
		return "", ErrInvalidEmail
	}
	return Email(s), nil
}

func (e Email) Value() string {
	return string(e)
}

// User entity. Email is the unique identity across the system; role is the
// only state shared between the authorization and booking concerns.
type User struct {
	id          uuid.UUID
	email       Email
	name        string
	photoURL    string
	role        Role
	memberSince *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

func NewUser(email Email, name, photoURL string) *User {
	return &User{
		id:       uuid.New(),
		email:    email,
		name:     name,
		photoURL: photoURL,
		role:     RoleUser,
	}
}

func ReconstructUser(
	id uuid.UUID,
	email Email,
	name, photoURL string,
	role Role,
	memberSince *time.Time,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:          id,
		email:       email,
		name:        name,
		photoURL:    photoURL,
		role:        role,
		memberSince: memberSince,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// PromoteToMember applies the booking-approval escalation. Admins are never
// downgraded; everyone else is unconditionally rewritten to member with a
// fresh memberSince, which keeps repeated approvals idempotent.
func (u *User) PromoteToMember(now time.Time) {
	if u.role.IsAdmin() {
		return
	}
	u.role = RoleMember
	u.memberSince = &now
}

func (u *User) ID() uuid.UUID           { return u.id }
func (u *User) Email() Email            { return u.email }
func (u *User) Name() string            { return u.name }
func (u *User) PhotoURL() string        { return u.photoURL }
func (u *User) Role() Role              { return u.role }
func (u *User) MemberSince() *time.Time { return u.memberSince }
func (u *User) CreatedAt() time.Time    { return u.createdAt }
func (u *User) UpdatedAt() time.Time    { return u.updatedAt }
