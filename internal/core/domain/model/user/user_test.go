package user_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUser(t *testing.T, roles ...user.Role) *user.User {
	t.Helper()

	if len(roles) == 0 {
		roles = []user.Role{user.RoleCustomer}
	}

	u, err := user.NewUser(kernel.NewUUID(), "Alex Chen", "alex@example.com", "+1555123", "bcrypt-hash", roles)
	require.NoError(t, err)
	return u
}

func TestNewUser(t *testing.T) {
	t.Run("should create user in pending state", func(t *testing.T) {
		id := kernel.NewUUID()

		u, err := user.NewUser(id, "Alex Chen", "alex@example.com", "", "bcrypt-hash",
			[]user.Role{user.RoleCustomer, user.RoleCourier})

		require.NoError(t, err)
		require.NoError(t, u.Validate())
		assert.True(t, u.ID().IsEqual(id))
		assert.Equal(t, user.Pending, u.State())
		assert.True(t, u.HasRole(user.RoleCustomer))
		assert.True(t, u.HasRole(user.RoleCourier))
		assert.False(t, u.HasRole(user.RoleAdmin))
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := user.NewUser(kernel.NewUUID(), "", "alex@example.com", "", "hash", []user.Role{user.RoleCustomer})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with malformed email", func(t *testing.T) {
		_, err := user.NewUser(kernel.NewUUID(), "Alex", "not-an-email", "", "hash", []user.Role{user.RoleCustomer})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail without roles", func(t *testing.T) {
		_, err := user.NewUser(kernel.NewUUID(), "Alex", "alex@example.com", "", "hash", nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with unknown role", func(t *testing.T) {
		_, err := user.NewUser(kernel.NewUUID(), "Alex", "alex@example.com", "", "hash", []user.Role{"superuser"})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail without password hash", func(t *testing.T) {
		_, err := user.NewUser(kernel.NewUUID(), "Alex", "alex@example.com", "", "", []user.Role{user.RoleCustomer})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestUser_AccountReview(t *testing.T) {
	t.Run("pending can be approved", func(t *testing.T) {
		u := newTestUser(t)

		require.NoError(t, u.Approve())
		assert.Equal(t, user.Approved, u.State())
	})

	t.Run("pending can be declined", func(t *testing.T) {
		u := newTestUser(t)

		require.NoError(t, u.Decline())
		assert.Equal(t, user.Declined, u.State())
	})

	t.Run("approved is terminal", func(t *testing.T) {
		u := newTestUser(t)
		require.NoError(t, u.Approve())

		require.ErrorIs(t, u.Approve(), errs.ErrInvalidTransition)
		require.ErrorIs(t, u.Decline(), errs.ErrInvalidTransition)
		assert.Equal(t, user.Approved, u.State())
	})

	t.Run("declined is terminal", func(t *testing.T) {
		u := newTestUser(t)
		require.NoError(t, u.Decline())

		require.ErrorIs(t, u.Approve(), errs.ErrInvalidTransition)
		require.ErrorIs(t, u.Decline(), errs.ErrInvalidTransition)
		assert.Equal(t, user.Declined, u.State())
	})
}

func TestRestoreUser(t *testing.T) {
	t.Run("restores approved user", func(t *testing.T) {
		u, err := user.RestoreUser(kernel.NewUUID(), "Alex", "alex@example.com", "", "hash",
			[]user.Role{user.RoleAdmin}, user.Approved)

		require.NoError(t, err)
		assert.Equal(t, user.Approved, u.State())
		assert.True(t, u.HasRole(user.RoleAdmin))
	})

	t.Run("rejects invalid state", func(t *testing.T) {
		_, err := user.RestoreUser(kernel.NewUUID(), "Alex", "alex@example.com", "", "hash",
			[]user.Role{user.RoleAdmin}, user.UnknownState)

		require.Error(t, err)
	})
}

func TestAccountState(t *testing.T) {
	t.Run("string representations", func(t *testing.T) {
		assert.Equal(t, "Pending", user.Pending.String())
		assert.Equal(t, "Declined", user.Declined.String())
		assert.Equal(t, "Approved", user.Approved.String())
		assert.Equal(t, "Unknown", user.UnknownState.String())
		assert.Equal(t, "Unknown", user.AccountState(42).String())
	})

	t.Run("validate", func(t *testing.T) {
		assert.NoError(t, user.Pending.Validate())
		assert.Error(t, user.UnknownState.Validate())
		assert.Error(t, user.AccountState(42).Validate())
	})
}

func TestUser_Validate(t *testing.T) {
	var u user.User

	err := u.Validate()

	require.Error(t, err)
	assert.Equal(t, user.ErrUserIsNotConstructed, err)
}
