package store

import (
	"errors"

	"github.com/taskflow-dev/taskflow/internal/models"
	"gorm.io/gorm"
)

func (s *Store) CreateUser(user *models.User) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.User

		err := tx.Where("username = ?", user.Username).First(&existing).Error

		if err == nil {
			return ErrUsernameTaken
		}

		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		err = tx.Where("email = ?", user.Email).First(&existing).Error

		if err == nil {
			return ErrEmailTaken
		}

		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		return tx.Create(user).Error
	})
}

func (s *Store) GetUserByUsername(username string) (*models.User, error) {
	var user models.User

	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, translate(err)
	}

	return &user, nil
}

func (s *Store) GetUserByID(id uint) (*models.User, error) {
	var user models.User

	if err := s.db.First(&user, id).Error; err != nil {
		return nil, translate(err)
	}

	return &user, nil
}
