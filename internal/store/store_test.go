package store

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/taskflow-dev/taskflow/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testDBCounter int64

func newTestStore(t *testing.T) *Store {
	t.Helper()

	// Unique database name per test to avoid cross-test interference
	counter := atomic.AddInt64(&testDBCounter, 1)
	dsn := fmt.Sprintf("file:taskflow_test_%d.db?mode=memory&cache=shared", counter)

	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, conn.AutoMigrate(
		&models.User{},
		&models.Board{},
		&models.BoardColumn{},
		&models.Task{},
		&models.Epic{},
	))

	return New(conn)
}

func seedUser(t *testing.T, s *Store, username string) *models.User {
	t.Helper()

	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "not-a-real-hash",
	}

	require.NoError(t, s.CreateUser(user))
	return user
}

func seedBoard(t *testing.T, s *Store, ownerID uint, title string) *models.Board {
	t.Helper()

	board, err := s.CreateBoard(ownerID, title, "")
	require.NoError(t, err)
	return board
}
