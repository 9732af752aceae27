package dbmysql

import (
	"time"
)

// Comment threading is a flat parent pointer: replies reference a top-level
// comment on the same post and do not themselves get replies.
type Comment struct {
	ID         uint64    `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	PostID     uint64    `gorm:"column:post_id;not null;index" json:"post_id"`
	UserID     uint64    `gorm:"column:user_id;not null" json:"user_id"`
	ParentID   *uint64   `gorm:"column:parent_id;index" json:"parent_id"`
	Content    string    `gorm:"column:content;size:500;not null" json:"content"`
	LikesCount int64     `gorm:"column:likes_count;default:0" json:"likes_count"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Comment) TableName() string { return "comments" }

type CommentLike struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;index:idx_user_comment,unique" json:"user_id"`
	CommentID uint64    `gorm:"column:comment_id;not null;index:idx_user_comment,unique" json:"comment_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (CommentLike) TableName() string { return "comment_likes" }
