package dbmysql

import (
	"time"
)

// Follower is one directed edge of the follow graph. The composite unique
// index is the authoritative guard against duplicate edges under
// concurrent follow calls.
type Follower struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	FollowerID  uint64    `gorm:"column:follower_id;not null;index:idx_follower_following,unique" json:"follower_id"`
	FollowingID uint64    `gorm:"column:following_id;not null;index:idx_follower_following,unique" json:"following_id"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Follower) TableName() string { return "followers" }
