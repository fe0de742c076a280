//go:build unit

package user_test

import (
	"testing"
	"time"

	"court-connect-server/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	cases := []struct {
		name  string
		input string
		ok    bool
	}{
		{"plain address", "player@example.com", true},
		{"subdomain", "a@mail.example.co.uk", true},
		{"empty", "", false},
		{"no at sign", "playerexample.com", false},
		{"spaces only", "   ", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			email, err := user.NewEmail(tc.input)
			if tc.ok {
				require.NoError(t, err)
				assert.Equal(t, tc.input, email.Value())
			} else {
				assert.ErrorIs(t, err, user.ErrInvalidEmail)
			}
		})
	}
}

func TestNewRole(t *testing.T) {
	for _, valid := range []string{"user", "member", "admin"} {
		role, err := user.NewRole(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, role.String())
	}

	_, err := user.NewRole("superadmin")
	assert.ErrorIs(t, err, user.ErrInvalidRole)

	assert.True(t, user.RoleAdmin.IsAdmin())
	assert.False(t, user.RoleMember.IsAdmin())
	assert.False(t, user.RoleUser.IsAdmin())
}

func TestPromoteToMember(t *testing.T) {
	email, err := user.NewEmail("player@example.com")
	require.NoError(t, err)

	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	t.Run("base role becomes member", func(t *testing.T) {
		u := user.NewUser(email, "Player", "")
		require.Equal(t, user.RoleUser, u.Role())

		u.PromoteToMember(now)

		assert.Equal(t, user.RoleMember, u.Role())
		require.NotNil(t, u.MemberSince())
		assert.Equal(t, now, *u.MemberSince())
	})

	t.Run("repeated promotion refreshes member_since", func(t *testing.T) {
		u := user.NewUser(email, "Player", "")
		u.PromoteToMember(now)

		later := now.Add(48 * time.Hour)
		u.PromoteToMember(later)

		assert.Equal(t, user.RoleMember, u.Role())
		assert.Equal(t, later, *u.MemberSince())
	})

	t.Run("admin is never downgraded", func(t *testing.T) {
		u := user.ReconstructUser(
			uuid.New(), email, "Admin", "", user.RoleAdmin, nil, now, now,
		)

		u.PromoteToMember(now)

		assert.Equal(t, user.RoleAdmin, u.Role())
		assert.Nil(t, u.MemberSince())
	})
}
