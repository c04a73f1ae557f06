package store

import (
	"errors"

	"gorm.io/gorm"
)

// Store is the domain service over the relational schema. Every mutating
// operation runs as one transaction; ownership checks are part of each query
// so a record owned by someone else is indistinguishable from a missing one.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

var (
	// ErrNotFound covers both a missing record and one owned by another
	// user.
	ErrNotFound = errors.New("record not found")

	ErrUsernameTaken = errors.New("username already exists")
	ErrEmailTaken    = errors.New("email already exists")

	// ErrInvalidColumn is returned when a task move targets a column that
	// does not exist, is not owned by the caller, or sits on a different
	// board.
	ErrInvalidColumn = errors.New("invalid column")
)

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
