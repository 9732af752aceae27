package dbmysql

import (
	"time"
)

// Post carries two denormalized counters. LikesCount and CommentsCount are
// only ever mutated inside the same transaction as the like/comment row they
// reflect; follow-graph counts are deliberately NOT denormalized like this.
type Post struct {
	ID              uint64    `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	UserID          uint64    `gorm:"column:user_id;not null;index" json:"user_id"`
	ImageURL        string    `gorm:"column:image_url;size:255;not null" json:"image_url"`
	ThumbnailURL    string    `gorm:"column:thumbnail_url;size:255" json:"thumbnail_url"`
	Caption         string    `gorm:"column:caption;type:text" json:"caption"`
	Location        string    `gorm:"column:location;size:100" json:"location"`
	IsArchived      bool      `gorm:"column:is_archived;default:false;index" json:"is_archived"`
	CommentsEnabled bool      `gorm:"column:comments_enabled;default:true" json:"comments_enabled"`
	LikesCount      int64     `gorm:"column:likes_count;default:0" json:"likes_count"`
	CommentsCount   int64     `gorm:"column:comments_count;default:0" json:"comments_count"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Post) TableName() string { return "posts" }
