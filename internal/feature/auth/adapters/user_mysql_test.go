package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"portfolio_backend/internal/feature/auth/domain/entity"
	"portfolio_backend/internal/feature/auth/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	// Create User table
	err = db.AutoMigrate(&entity.User{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func TestNewUserMySQL(t *testing.T) {
	db := setupTestDB(t)

	repo := NewUserMySQL(db)

	assert.NotNil(t, repo, "repository is nil")
	assert.NotNil(t, repo.db, "database connection is nil")
}

func TestUserMySQL_Create(t *testing.T) {
	t.Run("successful user creation", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		user := &entity.User{
			Username: "testuser",
			Email:    "test@example.com",
			Password: "hashed_password",
		}

		err := repo.Create(context.Background(), user)

		assert.NoError(t, err, "failed to create user")
		assert.NotZero(t, user.ID, "ID is not set")
		assert.False(t, user.CreatedAt.IsZero(), "CreatedAt is not set")
		assert.False(t, user.UpdatedAt.IsZero(), "UpdatedAt is not set")
	})

	t.Run("duplicate email error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		user1 := &entity.User{
			Username: "first",
			Email:    "duplicate@example.com",
			Password: "password1",
		}
		err := repo.Create(context.Background(), user1)
		require.NoError(t, err, "failed to create first user")

		// Create second user with the same email
		user2 := &entity.User{
			Username: "second",
			Email:    "duplicate@example.com",
			Password: "password2",
		}
		err = repo.Create(context.Background(), user2)

		assert.Error(t, err, "should return duplicate error")
		assert.ErrorIs(t, err, usecase.ErrEmailAlreadyExists, "should return ErrEmailAlreadyExists")
	})
}

func TestUserMySQL_FindByEmail(t *testing.T) {
	t.Run("find user by email successfully", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		// Create test data
		expected := &entity.User{
			Username: "finder",
			Email:    "find@example.com",
			Password: "hashed_password",
		}
		err := repo.Create(context.Background(), expected)
		require.NoError(t, err, "failed to create test data")

		// Execute search
		found, err := repo.FindByEmail(context.Background(), "find@example.com")

		assert.NoError(t, err, "failed to find user")
		assert.NotNil(t, found, "user is nil")
		assert.Equal(t, expected.ID, found.ID, "ID does not match")
		assert.Equal(t, expected.Email, found.Email, "email does not match")
		assert.Equal(t, expected.Password, found.Password, "password does not match")
	})

	t.Run("email not found error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		found, err := repo.FindByEmail(context.Background(), "notfound@example.com")

		assert.Error(t, err, "should return error")
		assert.Nil(t, found, "user should be nil")
		assert.ErrorIs(t, err, usecase.ErrUserNotFound, "should return ErrUserNotFound")
	})

	t.Run("find correct user when multiple users exist", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		// Create multiple users
		users := []*entity.User{
			{Username: "user1", Email: "user1@example.com", Password: "pass1"},
			{Username: "user2", Email: "user2@example.com", Password: "pass2"},
			{Username: "user3", Email: "user3@example.com", Password: "pass3"},
		}
		for _, u := range users {
			err := repo.Create(context.Background(), u)
			require.NoError(t, err, "failed to create test data")
		}

		// Find user2
		found, err := repo.FindByEmail(context.Background(), "user2@example.com")

		assert.NoError(t, err, "failed to find user")
		assert.NotNil(t, found, "user is nil")
		assert.Equal(t, users[1].ID, found.ID, "ID does not match")
		assert.Equal(t, "user2@example.com", found.Email, "email does not match")
	})
}

func TestUserMySQL_FindByID(t *testing.T) {
	t.Run("find user by ID successfully", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		// Create test data
		expected := &entity.User{
			Username: "byid",
			Email:    "findbyid@example.com",
			Password: "hashed_password",
		}
		err := repo.Create(context.Background(), expected)
		require.NoError(t, err, "failed to create test data")

		// Execute search
		found, err := repo.FindByID(context.Background(), expected.ID)

		assert.NoError(t, err, "failed to find user")
		assert.NotNil(t, found, "user is nil")
		assert.Equal(t, expected.ID, found.ID, "ID does not match")
		assert.Equal(t, expected.Email, found.Email, "email does not match")
	})

	t.Run("ID not found error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		found, err := repo.FindByID(context.Background(), 999)

		assert.Error(t, err, "should return error")
		assert.Nil(t, found, "user should be nil")
		assert.ErrorIs(t, err, usecase.ErrUserNotFound, "should return ErrUserNotFound")
	})
}

func TestUserMySQL_UpdateProfile(t *testing.T) {
	t.Run("update username and email successfully", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		user := &entity.User{
			Username: "before",
			Email:    "before@example.com",
			Password: "hashed_password",
		}
		err := repo.Create(context.Background(), user)
		require.NoError(t, err, "failed to create test data")

		err = repo.UpdateProfile(context.Background(), user.ID, "after", "after@example.com")
		require.NoError(t, err, "failed to update profile")

		found, err := repo.FindByID(context.Background(), user.ID)
		require.NoError(t, err, "failed to find user")
		assert.Equal(t, "after", found.Username, "username was not updated")
		assert.Equal(t, "after@example.com", found.Email, "email was not updated")
	})

	t.Run("resubmitting the current profile succeeds", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		user := &entity.User{
			Username: "same",
			Email:    "same@example.com",
			Password: "hashed_password",
		}
		require.NoError(t, repo.Create(context.Background(), user), "failed to create test data")

		// An update that changes nothing still matches the row and must
		// not be mistaken for a missing user.
		err := repo.UpdateProfile(context.Background(), user.ID, "same", "same@example.com")

		require.NoError(t, err, "no-change update must not fail")
	})

	t.Run("missing user returns ErrUserNotFound", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		err := repo.UpdateProfile(context.Background(), 999, "ghost", "ghost@example.com")

		assert.ErrorIs(t, err, usecase.ErrUserNotFound, "should return ErrUserNotFound")
	})

	t.Run("email taken by another user returns ErrEmailAlreadyExists", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		userA := &entity.User{Username: "a", Email: "a@example.com", Password: "pass"}
		userB := &entity.User{Username: "b", Email: "b@example.com", Password: "pass"}
		require.NoError(t, repo.Create(context.Background(), userA))
		require.NoError(t, repo.Create(context.Background(), userB))

		err := repo.UpdateProfile(context.Background(), userB.ID, "b", "a@example.com")

		assert.ErrorIs(t, err, usecase.ErrEmailAlreadyExists, "should return ErrEmailAlreadyExists")
	})
}

func TestUserMySQL_UpdatePassword(t *testing.T) {
	t.Run("replace password hash successfully", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		user := &entity.User{
			Username: "rotating",
			Email:    "rotate@example.com",
			Password: "old_hash",
		}
		err := repo.Create(context.Background(), user)
		require.NoError(t, err, "failed to create test data")

		err = repo.UpdatePassword(context.Background(), user.ID, "new_hash")
		require.NoError(t, err, "failed to update password")

		found, err := repo.FindByID(context.Background(), user.ID)
		require.NoError(t, err, "failed to find user")
		assert.Equal(t, "new_hash", found.Password, "password hash was not replaced")
	})

	t.Run("missing user returns ErrUserNotFound", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		err := repo.UpdatePassword(context.Background(), 999, "new_hash")

		assert.ErrorIs(t, err, usecase.ErrUserNotFound, "should return ErrUserNotFound")
	})
}

func TestUserMySQL_Timestamps(t *testing.T) {
	t.Run("CreatedAt and UpdatedAt are automatically set", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		beforeCreate := time.Now()
		user := &entity.User{
			Username: "timestamps",
			Email:    "timestamp@example.com",
			Password: "password",
		}

		err := repo.Create(context.Background(), user)
		require.NoError(t, err, "failed to create user")

		afterCreate := time.Now()

		assert.False(t, user.CreatedAt.IsZero(), "CreatedAt is not set")
		assert.False(t, user.UpdatedAt.IsZero(), "UpdatedAt is not set")
		assert.True(t, user.CreatedAt.After(beforeCreate) || user.CreatedAt.Equal(beforeCreate),
			"CreatedAt is before creation time")
		assert.True(t, user.CreatedAt.Before(afterCreate) || user.CreatedAt.Equal(afterCreate),
			"CreatedAt is after creation time")
	})
}
