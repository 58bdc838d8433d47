package models

import (
	"time"
)

// User represents a registered author
type User struct {
	ID           int64     `gorm:"primaryKey;autoIncrement;column:id"`
	Username     string    `gorm:"type:varchar(150);not null;uniqueIndex:yatube_users_ux1;column:username"`
	PasswordHash string    `gorm:"type:varchar(128);not null;column:password_hash"`
	CreatedAt    time.Time `gorm:"not null;column:created_at"`

	// Relationships
	Posts    []Post    `gorm:"foreignKey:AuthorID;references:ID"`
	Comments []Comment `gorm:"foreignKey:AuthorID;references:ID"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "yatube_users"
}
