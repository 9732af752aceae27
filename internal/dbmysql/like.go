package dbmysql

import (
	"time"
)

// Like existence is binary per (user, post); the unique index is the
// arbiter for concurrent double-likes.
type Like struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;index:idx_user_post,unique" json:"user_id"`
	PostID    uint64    `gorm:"column:post_id;not null;index:idx_user_post,unique" json:"post_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Like) TableName() string { return "likes" }
