package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTask(t *testing.T) {
	t.Run("positions start at zero per column", func(t *testing.T) {
		s := newTestStore(t)
		owner := seedUser(t, s, "alice")
		board := seedBoard(t, s, owner.ID, "Sprint 1")

		first, err := s.CreateTask(owner.ID, board.Columns[0].ID, TaskDraft{Title: "Fix bug"})
		require.NoError(t, err)
		assert.Equal(t, 0, first.Position)

		second, err := s.CreateTask(owner.ID, board.Columns[0].ID, TaskDraft{Title: "Write docs"})
		require.NoError(t, err)
		assert.Equal(t, 1, second.Position)

		// A different column has its own sequence
		other, err := s.CreateTask(owner.ID, board.Columns[1].ID, TaskDraft{Title: "Review"})
		require.NoError(t, err)
		assert.Equal(t, 0, other.Position)
	})

	t.Run("defaults", func(t *testing.T) {
		s := newTestStore(t)
		owner := seedUser(t, s, "alice")
		board := seedBoard(t, s, owner.ID, "Sprint 1")

		task, err := s.CreateTask(owner.ID, board.Columns[0].ID, TaskDraft{Title: "Fix bug"})
		require.NoError(t, err)

		assert.Equal(t, "medium", task.Priority)
		assert.Equal(t, "task", task.Type)
		assert.Equal(t, board.ID, task.BoardID)

		require.NotNil(t, task.DueDate)
		now := time.Now()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		assert.True(t, task.DueDate.Equal(today))
	})

	t.Run("assignee is embedded on read", func(t *testing.T) {
		s := newTestStore(t)
		owner := seedUser(t, s, "alice")
		assignee := seedUser(t, s, "bob")
		board := seedBoard(t, s, owner.ID, "Sprint 1")

		task, err := s.CreateTask(owner.ID, board.Columns[0].ID, TaskDraft{
			Title:      "Fix bug",
			AssigneeID: &assignee.ID,
		})
		require.NoError(t, err)

		require.NotNil(t, task.Assignee)
		assert.Equal(t, "bob", task.Assignee.Username)
	})

	t.Run("foreign column", func(t *testing.T) {
		s := newTestStore(t)
		owner := seedUser(t, s, "alice")
		intruder := seedUser(t, s, "mallory")
		board := seedBoard(t, s, owner.ID, "Sprint 1")

		_, err := s.CreateTask(intruder.ID, board.Columns[0].ID, TaskDraft{Title: "Sneaky"})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestUpdateTask(t *testing.T) {
	t.Run("move within the same board", func(t *testing.T) {
		s := newTestStore(t)
		owner := seedUser(t, s, "alice")
		board := seedBoard(t, s, owner.ID, "Sprint 1")

		task, err := s.CreateTask(owner.ID, board.Columns[0].ID, TaskDraft{Title: "Fix bug"})
		require.NoError(t, err)

		target := board.Columns[1].ID
		moved, err := s.UpdateTask(owner.ID, task.ID, TaskPatch{ColumnID: &target})
		require.NoError(t, err)
		assert.Equal(t, target, moved.ColumnID)
	})

	t.Run("move to another board is rejected", func(t *testing.T) {
		s := newTestStore(t)
		owner := seedUser(t, s, "alice")
		board := seedBoard(t, s, owner.ID, "Sprint 1")
		otherBoard := seedBoard(t, s, owner.ID, "Sprint 2")

		task, err := s.CreateTask(owner.ID, board.Columns[0].ID, TaskDraft{Title: "Fix bug"})
		require.NoError(t, err)

		target := otherBoard.Columns[0].ID
		_, err = s.UpdateTask(owner.ID, task.ID, TaskPatch{ColumnID: &target})
		assert.ErrorIs(t, err, ErrInvalidColumn)

		// Task stays put
		fetched, err := s.GetTask(owner.ID, task.ID)
		require.NoError(t, err)
		assert.Equal(t, board.Columns[0].ID, fetched.ColumnID)
	})

	t.Run("move to a nonexistent column is rejected", func(t *testing.T) {
		s := newTestStore(t)
		owner := seedUser(t, s, "alice")
		board := seedBoard(t, s, owner.ID, "Sprint 1")

		task, err := s.CreateTask(owner.ID, board.Columns[0].ID, TaskDraft{Title: "Fix bug"})
		require.NoError(t, err)

		target := uint(999)
		_, err = s.UpdateTask(owner.ID, task.ID, TaskPatch{ColumnID: &target})
		assert.ErrorIs(t, err, ErrInvalidColumn)
	})

	t.Run("updated_at is bumped", func(t *testing.T) {
		s := newTestStore(t)
		owner := seedUser(t, s, "alice")
		board := seedBoard(t, s, owner.ID, "Sprint 1")

		task, err := s.CreateTask(owner.ID, board.Columns[0].ID, TaskDraft{Title: "Fix bug"})
		require.NoError(t, err)

		time.Sleep(10 * time.Millisecond)

		priority := "high"
		updated, err := s.UpdateTask(owner.ID, task.ID, TaskPatch{Priority: &priority})
		require.NoError(t, err)
		assert.Equal(t, "high", updated.Priority)
		assert.True(t, updated.UpdatedAt.After(task.UpdatedAt))
	})

	t.Run("clearing the due date", func(t *testing.T) {
		s := newTestStore(t)
		owner := seedUser(t, s, "alice")
		board := seedBoard(t, s, owner.ID, "Sprint 1")

		task, err := s.CreateTask(owner.ID, board.Columns[0].ID, TaskDraft{Title: "Fix bug"})
		require.NoError(t, err)
		require.NotNil(t, task.DueDate)

		updated, err := s.UpdateTask(owner.ID, task.ID, TaskPatch{DueDateSet: true})
		require.NoError(t, err)
		assert.Nil(t, updated.DueDate)
	})

	t.Run("foreign task", func(t *testing.T) {
		s := newTestStore(t)
		owner := seedUser(t, s, "alice")
		intruder := seedUser(t, s, "mallory")
		board := seedBoard(t, s, owner.ID, "Sprint 1")

		task, err := s.CreateTask(owner.ID, board.Columns[0].ID, TaskDraft{Title: "Fix bug"})
		require.NoError(t, err)

		title := "hijacked"
		_, err = s.UpdateTask(intruder.ID, task.ID, TaskPatch{Title: &title})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDeleteTask(t *testing.T) {
	t.Run("owner deletes", func(t *testing.T) {
		s := newTestStore(t)
		owner := seedUser(t, s, "alice")
		board := seedBoard(t, s, owner.ID, "Sprint 1")

		task, err := s.CreateTask(owner.ID, board.Columns[0].ID, TaskDraft{Title: "Fix bug"})
		require.NoError(t, err)

		require.NoError(t, s.DeleteTask(owner.ID, task.ID))

		_, err = s.GetTask(owner.ID, task.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("foreign task", func(t *testing.T) {
		s := newTestStore(t)
		owner := seedUser(t, s, "alice")
		intruder := seedUser(t, s, "mallory")
		board := seedBoard(t, s, owner.ID, "Sprint 1")

		task, err := s.CreateTask(owner.ID, board.Columns[0].ID, TaskDraft{Title: "Fix bug"})
		require.NoError(t, err)

		assert.ErrorIs(t, s.DeleteTask(intruder.ID, task.ID), ErrNotFound)
	})
}
