package models

// BoardColumn is an ordered bucket of tasks within a board. Position sorts
// sibling columns; uniqueness is assigned at creation but not enforced on
// update.
type BoardColumn struct {
	ID       uint   `gorm:"primaryKey"`
	Title    string `gorm:"not null"`
	BoardID  uint   `gorm:"not null;index"`
	Position int    `gorm:"not null;default:0"`

	// Relationships
	Board Board  `gorm:"foreignKey:BoardID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Tasks []Task `gorm:"foreignKey:ColumnID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
