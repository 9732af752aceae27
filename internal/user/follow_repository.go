package user

import (
	"context"

	"gorm.io/gorm"

	"pixgram/internal/dbmysql"
)

type FollowRepository interface {
	CreateFollow(ctx context.Context, followerID, followingID uint64) error
	DeleteFollow(ctx context.Context, followerID, followingID uint64) (int64, error)
	IsFollowing(ctx context.Context, followerID, followingID uint64) (bool, error)
	FollowersCount(ctx context.Context, userID uint64) (int64, error)
	FollowingCount(ctx context.Context, userID uint64) (int64, error)
}

type followRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

// CreateFollow inserts one directed edge. A duplicate edge fails with
// gorm.ErrDuplicatedKey via the composite unique index; callers translate
// that into "already following".
func (r *followRepository) CreateFollow(ctx context.Context, followerID, followingID uint64) error {
	edge := &dbmysql.Follower{FollowerID: followerID, FollowingID: followingID}
	return r.db.WithContext(ctx).Create(edge).Error
}

// DeleteFollow reports how many rows were removed so callers can
// distinguish "was not following" from a storage error.
func (r *followRepository) DeleteFollow(ctx context.Context, followerID, followingID uint64) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&dbmysql.Follower{})
	return res.RowsAffected, res.Error
}

func (r *followRepository) IsFollowing(ctx context.Context, followerID, followingID uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Follower{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error
	return count > 0, err
}

func (r *followRepository) FollowersCount(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Follower{}).
		Where("following_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *followRepository) FollowingCount(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Follower{}).
		Where("follower_id = ?", userID).
		Count(&count).Error
	return count, err
}
