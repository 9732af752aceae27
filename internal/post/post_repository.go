package post

import (
	"context"

	"gorm.io/gorm"

	"pixgram/internal/dbmysql"
)

// FeedPost is a post row joined with the author fields needed for
// rendering. Every query here fetches them in the same round trip; one
// query per post would fail the performance contract on any real feed.
type FeedPost struct {
	dbmysql.Post
	Username       string `gorm:"column:username" json:"username"`
	FullName       string `gorm:"column:full_name" json:"full_name"`
	ProfilePicture string `gorm:"column:profile_picture" json:"profile_picture"`
	IsVerified     bool   `gorm:"column:is_verified" json:"is_verified"`
	IsLiked        bool   `gorm:"-" json:"is_liked"`
}

const authorColumns = "posts.*, users.username, users.full_name, users.profile_picture, users.is_verified"

type PostRepository interface {
	CreatePost(ctx context.Context, post *dbmysql.Post) error
	GetPostByID(ctx context.Context, id uint64) (*FeedPost, error)
	ListUserPosts(ctx context.Context, userID uint64, limit, offset int) ([]FeedPost, error)
	GetFeed(ctx context.Context, userID uint64, limit, offset int) ([]FeedPost, error)
	GetExplorePosts(ctx context.Context, userID uint64, limit int) ([]FeedPost, error)
	SearchPosts(ctx context.Context, query string, limit int) ([]FeedPost, error)
	UpdateCaption(ctx context.Context, postID, userID uint64, caption string) (int64, error)
	Archive(ctx context.Context, postID, userID uint64) (int64, error)
	ToggleComments(ctx context.Context, postID, userID uint64) (int64, error)
	LikedPostIDs(ctx context.Context, userID uint64, postIDs []uint64) ([]uint64, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) CreatePost(ctx context.Context, post *dbmysql.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) GetPostByID(ctx context.Context, id uint64) (*FeedPost, error) {
	var p FeedPost
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Post{}).
		Select(authorColumns).
		Joins("JOIN users ON users.id = posts.user_id").
		Where("posts.id = ? AND posts.is_archived = ?", id, false).
		Take(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postRepository) ListUserPosts(ctx context.Context, userID uint64, limit, offset int) ([]FeedPost, error) {
	var posts []FeedPost
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Post{}).
		Select(authorColumns).
		Joins("JOIN users ON users.id = posts.user_id").
		Where("posts.user_id = ? AND posts.is_archived = ?", userID, false).
		Order("posts.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, err
}

// GetFeed computes self plus followees as one set union in a single query,
// so limit/offset paginate correctly across the combined set.
func (r *postRepository) GetFeed(ctx context.Context, userID uint64, limit, offset int) ([]FeedPost, error) {
	var posts []FeedPost
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Post{}).
		Select(authorColumns).
		Joins("JOIN users ON users.id = posts.user_id").
		Where("(posts.user_id = ? OR posts.user_id IN (?)) AND posts.is_archived = ?",
			userID,
			r.db.Model(&dbmysql.Follower{}).Select("following_id").Where("follower_id = ?", userID),
			false,
		).
		Order("posts.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, err
}

// GetExplorePosts is global popularity ranking restricted to authors the
// user is not connected to.
func (r *postRepository) GetExplorePosts(ctx context.Context, userID uint64, limit int) ([]FeedPost, error) {
	var posts []FeedPost
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Post{}).
		Select(authorColumns).
		Joins("JOIN users ON users.id = posts.user_id").
		Where("posts.user_id != ? AND posts.user_id NOT IN (?) AND posts.is_archived = ?",
			userID,
			r.db.Model(&dbmysql.Follower{}).Select("following_id").Where("follower_id = ?", userID),
			false,
		).
		Order("posts.likes_count DESC, posts.created_at DESC").
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) SearchPosts(ctx context.Context, query string, limit int) ([]FeedPost, error) {
	var posts []FeedPost
	pattern := "%" + query + "%"
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Post{}).
		Select(authorColumns).
		Joins("JOIN users ON users.id = posts.user_id").
		Where("(posts.caption LIKE ? OR posts.location LIKE ?) AND posts.is_archived = ?", pattern, pattern, false).
		Order("posts.likes_count DESC, posts.created_at DESC").
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

// Mutations below are owner-scoped at the query; a mismatched owner affects
// zero rows, which callers interpret as not-found.

func (r *postRepository) UpdateCaption(ctx context.Context, postID, userID uint64, caption string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&dbmysql.Post{}).
		Where("id = ? AND user_id = ?", postID, userID).
		Update("caption", caption)
	return res.RowsAffected, res.Error
}

func (r *postRepository) Archive(ctx context.Context, postID, userID uint64) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&dbmysql.Post{}).
		Where("id = ? AND user_id = ?", postID, userID).
		Update("is_archived", true)
	return res.RowsAffected, res.Error
}

func (r *postRepository) ToggleComments(ctx context.Context, postID, userID uint64) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&dbmysql.Post{}).
		Where("id = ? AND user_id = ?", postID, userID).
		Update("comments_enabled", gorm.Expr("NOT comments_enabled"))
	return res.RowsAffected, res.Error
}

// LikedPostIDs answers "which of these posts has this user liked" in one
// batch query for viewer personalization.
func (r *postRepository) LikedPostIDs(ctx context.Context, userID uint64, postIDs []uint64) ([]uint64, error) {
	if len(postIDs) == 0 {
		return nil, nil
	}
	var ids []uint64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Like{}).
		Where("user_id = ? AND post_id IN ?", userID, postIDs).
		Pluck("post_id", &ids).Error
	return ids, err
}
