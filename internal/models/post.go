package models

import (
	"database/sql"
	"time"
)

// Post represents a blog post.
// Author and creation time are fixed at creation; edits touch text,
// group and image only. Listing order is newest-first.
type Post struct {
	ID        int64         `gorm:"primaryKey;autoIncrement;column:id"`
	Text      string        `gorm:"type:text;not null;column:text"`
	AuthorID  int64         `gorm:"not null;index;column:author_id"`
	GroupID   sql.NullInt64 `gorm:"index;column:group_id"`
	Image     string        `gorm:"type:varchar(1024);not null;default:'';column:image"`
	CreatedAt time.Time     `gorm:"not null;index;column:created_at"`

	// Relationships
	Author   *User     `gorm:"foreignKey:AuthorID;references:ID;constraint:OnDelete:CASCADE"`
	Group    *Group    `gorm:"foreignKey:GroupID;references:ID;constraint:OnDelete:SET NULL"`
	Comments []Comment `gorm:"foreignKey:PostID;references:ID"`
}

// TableName specifies the table name for Post
func (Post) TableName() string {
	return "yatube_posts"
}
