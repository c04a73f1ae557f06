package store

import (
	"time"

	"github.com/taskflow-dev/taskflow/internal/models"
	"gorm.io/gorm"
)

type EpicPatch struct {
	Title       *string
	Description *string
	Status      *string
}

func ownedEpic(tx *gorm.DB, ownerID, epicID uint) (*models.Epic, error) {
	var epic models.Epic

	err := tx.
		Joins("JOIN boards ON boards.id = epics.board_id").
		Where("epics.id = ? AND boards.owner_id = ?", epicID, ownerID).
		First(&epic).Error

	if err != nil {
		return nil, translate(err)
	}

	return &epic, nil
}

func (s *Store) ListEpics(ownerID, boardID uint) ([]models.Epic, error) {
	if err := s.HasBoard(ownerID, boardID); err != nil {
		return nil, err
	}

	var epics []models.Epic

	if err := s.db.Where("board_id = ?", boardID).Find(&epics).Error; err != nil {
		return nil, err
	}

	return epics, nil
}

func (s *Store) CreateEpic(ownerID, boardID uint, title, description, status string) (*models.Epic, error) {
	if err := s.HasBoard(ownerID, boardID); err != nil {
		return nil, err
	}

	if status == "" {
		status = "open"
	}

	epic := models.Epic{
		Title:       title,
		Description: description,
		BoardID:     boardID,
		Status:      status,
	}

	if err := s.db.Create(&epic).Error; err != nil {
		return nil, err
	}

	return &epic, nil
}

func (s *Store) GetEpic(ownerID, epicID uint) (*models.Epic, error) {
	return ownedEpic(s.db, ownerID, epicID)
}

func (s *Store) UpdateEpic(ownerID, epicID uint, patch EpicPatch) (*models.Epic, error) {
	var epic *models.Epic

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error

		epic, err = ownedEpic(tx, ownerID, epicID)

		if err != nil {
			return err
		}

		if patch.Title != nil && *patch.Title != "" {
			epic.Title = *patch.Title
		}

		if patch.Description != nil {
			epic.Description = *patch.Description
		}

		if patch.Status != nil && *patch.Status != "" {
			epic.Status = *patch.Status
		}

		epic.UpdatedAt = time.Now()

		return tx.Save(epic).Error
	})

	if err != nil {
		return nil, err
	}

	return epic, nil
}

func (s *Store) DeleteEpic(ownerID, epicID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		epic, err := ownedEpic(tx, ownerID, epicID)

		if err != nil {
			return err
		}

		return tx.Delete(epic).Error
	})
}
