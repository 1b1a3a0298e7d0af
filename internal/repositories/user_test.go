package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/monetrix/monetrix-server/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_SaveAndGet(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()

	ctx := context.Background()
	readRepo := NewUserReadRepository(db)
	writeRepo := NewUserWriteRepository(db, nil)

	username := "maria"
	email := "maria@example.com"

	err := writeRepo.Save(ctx, username, "hash-1", email, models.BRL)
	require.NoError(t, err)

	t.Run("GetByUsernameOrEmail finds by username", func(t *testing.T) {
		user, err := readRepo.GetByUsernameOrEmail(ctx, &username, nil)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, username, user.Username)
		assert.Equal(t, email, user.Email)
		assert.Equal(t, models.BRL, user.BaseCurrency)
	})

	t.Run("GetByUsernameOrEmail finds by email", func(t *testing.T) {
		user, err := readRepo.GetByUsernameOrEmail(ctx, nil, &email)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, username, user.Username)
	})

	t.Run("GetByUsernameOrEmail matches on email when username differs", func(t *testing.T) {
		other := "someone-else"
		user, err := readRepo.GetByUsernameOrEmail(ctx, &other, &email)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, username, user.Username)
	})

	t.Run("GetByUsernameOrEmail returns nil for unknown user", func(t *testing.T) {
		unknown := "nobody"
		user, err := readRepo.GetByUsernameOrEmail(ctx, &unknown, nil)
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("GetByID round trip", func(t *testing.T) {
		stored, err := readRepo.GetByUsernameOrEmail(ctx, &username, nil)
		require.NoError(t, err)
		require.NotNil(t, stored)

		user, err := readRepo.GetByID(ctx, stored.UserID)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, stored.UserID, user.UserID)
	})

	t.Run("GetByID returns nil for unknown id", func(t *testing.T) {
		user, err := readRepo.GetByID(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("Save on existing username updates the hash", func(t *testing.T) {
		err := writeRepo.Save(ctx, username, "hash-2", email, models.BRL)
		require.NoError(t, err)

		user, err := readRepo.GetByUsernameOrEmail(ctx, &username, nil)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "hash-2", user.PasswordHash)
	})
}
