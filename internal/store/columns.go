package store

import (
	"github.com/taskflow-dev/taskflow/internal/models"
	"gorm.io/gorm"
)

type ColumnPatch struct {
	Title    *string
	Position *int
}

// ownedColumn resolves a column through its board so a column on someone
// else's board reads as missing.
func ownedColumn(tx *gorm.DB, ownerID, columnID uint) (*models.BoardColumn, error) {
	var column models.BoardColumn

	err := tx.
		Joins("JOIN boards ON boards.id = board_columns.board_id").
		Where("board_columns.id = ? AND boards.owner_id = ?", columnID, ownerID).
		First(&column).Error

	if err != nil {
		return nil, translate(err)
	}

	return &column, nil
}

// CreateColumn appends a column at max(position)+1 on the board, or 0 when
// the board has none. The position read and the insert share one transaction
// so concurrent creations cannot both claim the same slot.
func (s *Store) CreateColumn(ownerID, boardID uint, title string) (*models.BoardColumn, error) {
	var column models.BoardColumn

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var board models.Board

		if err := tx.Where("id = ? AND owner_id = ?", boardID, ownerID).First(&board).Error; err != nil {
			return translate(err)
		}

		var next int

		err := tx.Model(&models.BoardColumn{}).
			Where("board_id = ?", boardID).
			Select("COALESCE(MAX(position), -1) + 1").
			Scan(&next).Error

		if err != nil {
			return err
		}

		column = models.BoardColumn{
			Title:    title,
			BoardID:  boardID,
			Position: next,
		}

		return tx.Create(&column).Error
	})

	if err != nil {
		return nil, err
	}

	return &column, nil
}

func (s *Store) GetColumn(ownerID, columnID uint) (*models.BoardColumn, error) {
	column, err := ownedColumn(s.db, ownerID, columnID)

	if err != nil {
		return nil, err
	}

	err = s.db.
		Preload("Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("tasks.position ASC")
		}).
		Preload("Tasks.Assignee").
		First(column, column.ID).Error

	if err != nil {
		return nil, translate(err)
	}

	return column, nil
}

// UpdateColumn applies the patch as-is: a caller-supplied position may
// collide with a sibling's and no shifting is done.
func (s *Store) UpdateColumn(ownerID, columnID uint, patch ColumnPatch) (*models.BoardColumn, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		column, err := ownedColumn(tx, ownerID, columnID)

		if err != nil {
			return err
		}

		if patch.Title != nil && *patch.Title != "" {
			column.Title = *patch.Title
		}

		if patch.Position != nil {
			column.Position = *patch.Position
		}

		return tx.Save(column).Error
	})

	if err != nil {
		return nil, err
	}

	return s.GetColumn(ownerID, columnID)
}

func (s *Store) DeleteColumn(ownerID, columnID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		column, err := ownedColumn(tx, ownerID, columnID)

		if err != nil {
			return err
		}

		if err := tx.Where("column_id = ?", column.ID).Delete(&models.Task{}).Error; err != nil {
			return err
		}

		return tx.Delete(column).Error
	})
}
