package models

import "time"

type Task struct {
	ID          uint   `gorm:"primaryKey"`
	BoardID     uint   `gorm:"not null;index"`
	Title       string `gorm:"not null"`
	Description string
	ColumnID    uint `gorm:"not null;index"`
	Position    int  `gorm:"not null;default:0"`
	AssigneeID  *uint
	Priority    string     `gorm:"not null"`
	Type        string     `gorm:"not null"`
	DueDate     *time.Time `gorm:"type:date"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Relationships
	Column   BoardColumn `gorm:"foreignKey:ColumnID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Assignee *User       `gorm:"foreignKey:AssigneeID;constraint:OnUpdate:Cascade,OnDelete:SET NULL"`
}
