package models

import (
	"time"
)

// MaxCommentLength is the upper bound on comment text
const MaxCommentLength = 200

// Comment represents a comment on a post. Removed together with its post.
type Comment struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id"`
	Text      string    `gorm:"type:varchar(200);not null;column:text"`
	PostID    int64     `gorm:"not null;index;column:post_id"`
	AuthorID  int64     `gorm:"not null;index;column:author_id"`
	CreatedAt time.Time `gorm:"not null;column:created_at"`

	// Relationships
	Post   *Post `gorm:"foreignKey:PostID;references:ID;constraint:OnDelete:CASCADE"`
	Author *User `gorm:"foreignKey:AuthorID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for Comment
func (Comment) TableName() string {
	return "yatube_comments"
}
