package models

import (
	"time"
)

// Follow is a directed edge: user receives author's posts in their
// follow feed. The (user, author) pair is unique.
type Follow struct {
	UserID    int64     `gorm:"primaryKey;column:user_id"`
	AuthorID  int64     `gorm:"primaryKey;column:author_id"`
	CreatedAt time.Time `gorm:"not null;column:created_at"`

	// Relationships
	User   *User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	Author *User `gorm:"foreignKey:AuthorID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for Follow
func (Follow) TableName() string {
	return "yatube_follows"
}
