//go:build unit

package filestore_test

import (
	"path/filepath"
	"testing"

	"classreserve/internal/domain/user"
	"classreserve/internal/infra/filestore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUser(t *testing.T, id string, role user.Role) *user.User {
	t.Helper()
	userID, err := user.NewUserID(id)
	require.NoError(t, err)
	return user.NewUser(userID, "hashed-password", role)
}

func TestUserStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	store := filestore.NewUserStore(path)

	t.Run("register and fetch", func(t *testing.T) {
		require.NoError(t, store.Register(newTestUser(t, "alice", user.RoleStudent)))

		actual, ok := store.Get("alice")
		require.True(t, ok)
		assert.Equal(t, "alice", actual.ID().Value())
		assert.Equal(t, "hashed-password", actual.PasswordHash())
		assert.Equal(t, user.RoleStudent, actual.Role())
	})

	t.Run("duplicate id", func(t *testing.T) {
		err := store.Register(newTestUser(t, "alice", user.RoleAdmin))
		assert.ErrorIs(t, err, user.ErrAlreadyExists)

		// the original account is untouched
		actual, ok := store.Get("alice")
		require.True(t, ok)
		assert.Equal(t, user.RoleStudent, actual.Role())
	})

	t.Run("unknown id", func(t *testing.T) {
		_, ok := store.Get("nobody")
		assert.False(t, ok)
	})

	t.Run("accounts survive a reload", func(t *testing.T) {
		require.NoError(t, store.Register(newTestUser(t, "admin", user.RoleAdmin)))

		reloaded := filestore.NewUserStore(path)
		actual, ok := reloaded.Get("admin")
		require.True(t, ok)
		assert.True(t, actual.IsAdmin())
	})
}
