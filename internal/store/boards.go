package store

import (
	"github.com/taskflow-dev/taskflow/internal/models"
	"gorm.io/gorm"
)

// DefaultColumnTitles are created, in this order at positions 0-3, for every
// new board.
var DefaultColumnTitles = []string{"To Do", "In Progress", "Blocked", "Done"}

type BoardPatch struct {
	Title       *string
	Description *string
}

func (s *Store) ListBoards(ownerID uint) ([]models.Board, error) {
	var boards []models.Board

	if err := s.db.Where("owner_id = ?", ownerID).Find(&boards).Error; err != nil {
		return nil, err
	}

	return boards, nil
}

func (s *Store) CreateBoard(ownerID uint, title, description string) (*models.Board, error) {
	board := models.Board{
		Title:       title,
		Description: description,
		OwnerID:     ownerID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&board).Error; err != nil {
			return err
		}

		columns := make([]models.BoardColumn, 0, len(DefaultColumnTitles))

		for position, columnTitle := range DefaultColumnTitles {
			columns = append(columns, models.BoardColumn{
				Title:    columnTitle,
				BoardID:  board.ID,
				Position: position,
			})
		}

		return tx.Create(&columns).Error
	})

	if err != nil {
		return nil, err
	}

	return s.GetBoard(ownerID, board.ID)
}

func (s *Store) GetBoard(ownerID, boardID uint) (*models.Board, error) {
	var board models.Board

	err := s.db.
		Where("id = ? AND owner_id = ?", boardID, ownerID).
		Preload("Columns", func(db *gorm.DB) *gorm.DB {
			return db.Order("board_columns.position ASC")
		}).
		Preload("Columns.Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("tasks.position ASC")
		}).
		Preload("Columns.Tasks.Assignee").
		First(&board).Error

	if err != nil {
		return nil, translate(err)
	}

	return &board, nil
}

// HasBoard reports whether the board exists and is owned by ownerID, without
// loading its children.
func (s *Store) HasBoard(ownerID, boardID uint) error {
	var board models.Board

	if err := s.db.Select("id").Where("id = ? AND owner_id = ?", boardID, ownerID).First(&board).Error; err != nil {
		return translate(err)
	}

	return nil
}

func (s *Store) UpdateBoard(ownerID, boardID uint, patch BoardPatch) (*models.Board, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var board models.Board

		if err := tx.Where("id = ? AND owner_id = ?", boardID, ownerID).First(&board).Error; err != nil {
			return translate(err)
		}

		if patch.Title != nil && *patch.Title != "" {
			board.Title = *patch.Title
		}

		if patch.Description != nil {
			board.Description = *patch.Description
		}

		return tx.Save(&board).Error
	})

	if err != nil {
		return nil, err
	}

	return s.GetBoard(ownerID, boardID)
}

// DeleteBoard removes the board together with its columns, their tasks, and
// its epics in one transaction.
func (s *Store) DeleteBoard(ownerID, boardID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var board models.Board

		if err := tx.Where("id = ? AND owner_id = ?", boardID, ownerID).First(&board).Error; err != nil {
			return translate(err)
		}

		if err := tx.Where("board_id = ?", board.ID).Delete(&models.Task{}).Error; err != nil {
			return err
		}

		if err := tx.Where("board_id = ?", board.ID).Delete(&models.BoardColumn{}).Error; err != nil {
			return err
		}

		if err := tx.Where("board_id = ?", board.ID).Delete(&models.Epic{}).Error; err != nil {
			return err
		}

		return tx.Delete(&board).Error
	})
}
