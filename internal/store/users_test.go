package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskflow-dev/taskflow/internal/models"
)

func TestCreateUser(t *testing.T) {
	t.Run("successful creation", func(t *testing.T) {
		s := newTestStore(t)

		user := &models.User{
			Username:     "alice",
			Email:        "a@x.com",
			PasswordHash: "hash",
		}

		err := s.CreateUser(user)
		assert.NoError(t, err)
		assert.NotZero(t, user.ID)

		fetched, err := s.GetUserByUsername("alice")
		require.NoError(t, err)
		assert.Equal(t, user.ID, fetched.ID)
		assert.Equal(t, "a@x.com", fetched.Email)
	})

	t.Run("duplicate username", func(t *testing.T) {
		s := newTestStore(t)
		seedUser(t, s, "alice")

		err := s.CreateUser(&models.User{
			Username:     "alice",
			Email:        "other@x.com",
			PasswordHash: "hash",
		})
		assert.ErrorIs(t, err, ErrUsernameTaken)
	})

	t.Run("duplicate email", func(t *testing.T) {
		s := newTestStore(t)
		seedUser(t, s, "alice")

		err := s.CreateUser(&models.User{
			Username:     "bob",
			Email:        "alice@example.com",
			PasswordHash: "hash",
		})
		assert.ErrorIs(t, err, ErrEmailTaken)
	})
}

func TestGetUser(t *testing.T) {
	t.Run("unknown username", func(t *testing.T) {
		s := newTestStore(t)

		user, err := s.GetUserByUsername("ghost")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, user)
	})

	t.Run("by id", func(t *testing.T) {
		s := newTestStore(t)
		seeded := seedUser(t, s, "alice")

		user, err := s.GetUserByID(seeded.ID)
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)

		_, err = s.GetUserByID(seeded.ID + 100)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
