package store

import (
	"errors"
	"time"

	"github.com/taskflow-dev/taskflow/internal/models"
	"gorm.io/gorm"
)

// TaskDraft holds the caller-supplied fields for a new task. Zero values
// fall back to the defaults: priority "medium", type "task", due date today.
type TaskDraft struct {
	Title       string
	Description string
	AssigneeID  *uint
	Priority    string
	Type        string
	DueDate     *time.Time
}

// TaskPatch is a partial update. DueDateSet distinguishes "leave the due
// date alone" from "clear it" (DueDate nil with DueDateSet true).
type TaskPatch struct {
	Title       *string
	Description *string
	ColumnID    *uint
	Position    *int
	AssigneeID  *uint
	Priority    *string
	Type        *string
	DueDateSet  bool
	DueDate     *time.Time
}

// ownedTask resolves a task through its column and board.
func ownedTask(tx *gorm.DB, ownerID, taskID uint) (*models.Task, error) {
	var task models.Task

	err := tx.
		Joins("JOIN board_columns ON board_columns.id = tasks.column_id").
		Joins("JOIN boards ON boards.id = board_columns.board_id").
		Where("tasks.id = ? AND boards.owner_id = ?", taskID, ownerID).
		First(&task).Error

	if err != nil {
		return nil, translate(err)
	}

	return &task, nil
}

func (s *Store) CreateTask(ownerID, columnID uint, draft TaskDraft) (*models.Task, error) {
	var task models.Task

	err := s.db.Transaction(func(tx *gorm.DB) error {
		column, err := ownedColumn(tx, ownerID, columnID)

		if err != nil {
			return err
		}

		var next int

		err = tx.Model(&models.Task{}).
			Where("column_id = ?", columnID).
			Select("COALESCE(MAX(position), -1) + 1").
			Scan(&next).Error

		if err != nil {
			return err
		}

		if draft.Priority == "" {
			draft.Priority = "medium"
		}

		if draft.Type == "" {
			draft.Type = "task"
		}

		if draft.DueDate == nil {
			today := dateOnly(time.Now())
			draft.DueDate = &today
		}

		task = models.Task{
			BoardID:     column.BoardID,
			Title:       draft.Title,
			Description: draft.Description,
			ColumnID:    column.ID,
			Position:    next,
			AssigneeID:  draft.AssigneeID,
			Priority:    draft.Priority,
			Type:        draft.Type,
			DueDate:     draft.DueDate,
		}

		return tx.Create(&task).Error
	})

	if err != nil {
		return nil, err
	}

	return s.GetTask(ownerID, task.ID)
}

func (s *Store) GetTask(ownerID, taskID uint) (*models.Task, error) {
	var task models.Task

	err := s.db.
		Joins("JOIN board_columns ON board_columns.id = tasks.column_id").
		Joins("JOIN boards ON boards.id = board_columns.board_id").
		Where("tasks.id = ? AND boards.owner_id = ?", taskID, ownerID).
		Preload("Assignee").
		First(&task).Error

	if err != nil {
		return nil, translate(err)
	}

	return &task, nil
}

// UpdateTask applies the patch. A column move is only allowed onto a column
// of the task's current board owned by the caller; anything else is
// ErrInvalidColumn. Positions are taken verbatim, collisions included.
func (s *Store) UpdateTask(ownerID, taskID uint, patch TaskPatch) (*models.Task, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		task, err := ownedTask(tx, ownerID, taskID)

		if err != nil {
			return err
		}

		if patch.ColumnID != nil && *patch.ColumnID != 0 {
			var target models.BoardColumn

			err := tx.
				Joins("JOIN boards ON boards.id = board_columns.board_id").
				Where("board_columns.id = ? AND boards.owner_id = ? AND board_columns.board_id = ?",
					*patch.ColumnID, ownerID, task.BoardID).
				First(&target).Error

			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrInvalidColumn
				}
				return err
			}

			task.ColumnID = target.ID
		}

		if patch.Title != nil && *patch.Title != "" {
			task.Title = *patch.Title
		}

		if patch.Description != nil {
			task.Description = *patch.Description
		}

		if patch.Position != nil {
			task.Position = *patch.Position
		}

		if patch.AssigneeID != nil {
			if *patch.AssigneeID == 0 {
				task.AssigneeID = nil
			} else {
				task.AssigneeID = patch.AssigneeID
			}
		}

		if patch.Priority != nil && *patch.Priority != "" {
			task.Priority = *patch.Priority
		}

		if patch.Type != nil && *patch.Type != "" {
			task.Type = *patch.Type
		}

		if patch.DueDateSet {
			task.DueDate = patch.DueDate
		}

		task.UpdatedAt = time.Now()

		return tx.Save(task).Error
	})

	if err != nil {
		return nil, err
	}

	return s.GetTask(ownerID, taskID)
}

func (s *Store) DeleteTask(ownerID, taskID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		task, err := ownedTask(tx, ownerID, taskID)

		if err != nil {
			return err
		}

		return tx.Delete(task).Error
	})
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
