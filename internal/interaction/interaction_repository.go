package interaction

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"pixgram/internal/dbmysql"
)

// CommentView is a comment joined with its author fields, plus
// viewer-specific state filled in by the service layer.
type CommentView struct {
	dbmysql.Comment
	Username       string        `gorm:"column:username" json:"username"`
	FullName       string        `gorm:"column:full_name" json:"full_name"`
	ProfilePicture string        `gorm:"column:profile_picture" json:"profile_picture"`
	IsVerified     bool          `gorm:"column:is_verified" json:"is_verified"`
	IsLiked        bool          `gorm:"-" json:"is_liked"`
	Replies        []CommentView `gorm:"-" json:"replies,omitempty"`
}

// LikeView is a like row joined with the liking user's fields.
type LikeView struct {
	dbmysql.Like
	Username       string `gorm:"column:username" json:"username"`
	FullName       string `gorm:"column:full_name" json:"full_name"`
	ProfilePicture string `gorm:"column:profile_picture" json:"profile_picture"`
	IsVerified     bool   `gorm:"column:is_verified" json:"is_verified"`
}

const authorColumns = "username, full_name, profile_picture, is_verified"

// decrClamped floors a counter at zero instead of going negative, tolerating
// any pre-existing drift.
func decrClamped(column string) interface{} {
	return gorm.Expr("CASE WHEN " + column + " > 0 THEN " + column + " - 1 ELSE 0 END")
}

type InteractionRepository interface {
	LikePost(ctx context.Context, userID, postID uint64) error
	UnlikePost(ctx context.Context, userID, postID uint64) error
	IsPostLiked(ctx context.Context, userID, postID uint64) (bool, error)
	ListPostLikes(ctx context.Context, postID uint64, limit, offset int) ([]LikeView, error)

	CreateComment(ctx context.Context, comment *dbmysql.Comment) error
	GetCommentByID(ctx context.Context, id uint64) (*CommentView, error)
	UpdateComment(ctx context.Context, commentID, userID uint64, content string) (int64, error)
	DeleteComment(ctx context.Context, commentID, userID uint64) error
	ListPostComments(ctx context.Context, postID uint64, limit, offset int) ([]CommentView, error)

	LikeComment(ctx context.Context, userID, commentID uint64) error
	UnlikeComment(ctx context.Context, userID, commentID uint64) error
	LikedCommentIDs(ctx context.Context, userID uint64, commentIDs []uint64) ([]uint64, error)
}

type interactionRepository struct {
	db *gorm.DB
}

func NewInteractionRepository(db *gorm.DB) InteractionRepository {
	return &interactionRepository{db: db}
}

// LikePost inserts the like row and increments the post's likes_count in one
// transaction; a concurrent reader never sees one without the other. The
// existence fast-path is an optimization only — the unique (user_id, post_id)
// index is the authoritative arbiter for concurrent double-likes.
func (r *interactionRepository) LikePost(ctx context.Context, userID, postID uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&dbmysql.Like{}).
			Where("user_id = ? AND post_id = ?", userID, postID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrAlreadyLiked
		}

		if err := tx.Create(&dbmysql.Like{UserID: userID, PostID: postID}).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyLiked
			}
			return err
		}

		res := tx.Model(&dbmysql.Post{}).
			Where("id = ?", postID).
			Update("likes_count", gorm.Expr("likes_count + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrPostNotFound
		}
		return nil
	})
}

func (r *interactionRepository) UnlikePost(ctx context.Context, userID, postID uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND post_id = ?", userID, postID).
			Delete(&dbmysql.Like{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotLiked
		}

		return tx.Model(&dbmysql.Post{}).
			Where("id = ?", postID).
			Update("likes_count", decrClamped("likes_count")).Error
	})
}

func (r *interactionRepository) IsPostLiked(ctx context.Context, userID, postID uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Like{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error
	return count > 0, err
}

func (r *interactionRepository) ListPostLikes(ctx context.Context, postID uint64, limit, offset int) ([]LikeView, error) {
	var likes []LikeView
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Like{}).
		Select("likes.*, "+authorColumns).
		Joins("JOIN users ON users.id = likes.user_id").
		Where("likes.post_id = ?", postID).
		Order("likes.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&likes).Error
	return likes, err
}

// CreateComment validates the parent inside the same transaction as the
// insert: a parent must exist and belong to the same post. The original
// system left this to foreign keys; here it is an explicit check.
func (r *interactionRepository) CreateComment(ctx context.Context, comment *dbmysql.Comment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if comment.ParentID != nil {
			var parent dbmysql.Comment
			err := tx.Take(&parent, "id = ?", *comment.ParentID).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrInvalidParent
				}
				return err
			}
			if parent.PostID != comment.PostID {
				return ErrInvalidParent
			}
		}

		if err := tx.Create(comment).Error; err != nil {
			return err
		}

		res := tx.Model(&dbmysql.Post{}).
			Where("id = ?", comment.PostID).
			Update("comments_count", gorm.Expr("comments_count + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrPostNotFound
		}
		return nil
	})
}

func (r *interactionRepository) GetCommentByID(ctx context.Context, id uint64) (*CommentView, error) {
	var c CommentView
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Comment{}).
		Select("comments.*, "+authorColumns).
		Joins("JOIN users ON users.id = comments.user_id").
		Where("comments.id = ?", id).
		Take(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *interactionRepository) UpdateComment(ctx context.Context, commentID, userID uint64, content string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&dbmysql.Comment{}).
		Where("id = ? AND user_id = ?", commentID, userID).
		Update("content", content)
	return res.RowsAffected, res.Error
}

// DeleteComment removes the comment and its direct replies (flat parent
// pointer, two-step delete in one transaction), then decrements the post's
// comments_count by exactly 1 regardless of how many reply rows went with
// it. The undercount when replies exist matches the behavior this system
// is compatible with.
func (r *interactionRepository) DeleteComment(ctx context.Context, commentID, userID uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var comment dbmysql.Comment
		if err := tx.Take(&comment, "id = ?", commentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if comment.UserID != userID {
			return ErrNotOwner
		}

		if err := tx.Where("id = ? OR parent_id = ?", commentID, commentID).
			Delete(&dbmysql.Comment{}).Error; err != nil {
			return err
		}

		return tx.Model(&dbmysql.Post{}).
			Where("id = ?", comment.PostID).
			Update("comments_count", decrClamped("comments_count")).Error
	})
}

// ListPostComments returns top-level comments with author fields, replies
// attached from one batch query over the page's comment ids.
func (r *interactionRepository) ListPostComments(ctx context.Context, postID uint64, limit, offset int) ([]CommentView, error) {
	var comments []CommentView
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Comment{}).
		Select("comments.*, "+authorColumns).
		Joins("JOIN users ON users.id = comments.user_id").
		Where("comments.post_id = ? AND comments.parent_id IS NULL", postID).
		Order("comments.created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	if len(comments) == 0 {
		return comments, nil
	}

	ids := make([]uint64, len(comments))
	index := make(map[uint64]int, len(comments))
	for i, c := range comments {
		ids[i] = c.ID
		index[c.ID] = i
	}

	var replies []CommentView
	err = r.db.WithContext(ctx).
		Model(&dbmysql.Comment{}).
		Select("comments.*, "+authorColumns).
		Joins("JOIN users ON users.id = comments.user_id").
		Where("comments.parent_id IN ?", ids).
		Order("comments.created_at ASC").
		Find(&replies).Error
	if err != nil {
		return nil, err
	}

	for _, reply := range replies {
		if i, ok := index[*reply.ParentID]; ok {
			comments[i].Replies = append(comments[i].Replies, reply)
		}
	}

	return comments, nil
}

// LikeComment follows the same atomic pattern as post likes, scoped to the
// comment_likes join and the comment's own counter.
func (r *interactionRepository) LikeComment(ctx context.Context, userID, commentID uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&dbmysql.CommentLike{}).
			Where("user_id = ? AND comment_id = ?", userID, commentID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrAlreadyLiked
		}

		if err := tx.Create(&dbmysql.CommentLike{UserID: userID, CommentID: commentID}).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyLiked
			}
			return err
		}

		res := tx.Model(&dbmysql.Comment{}).
			Where("id = ?", commentID).
			Update("likes_count", gorm.Expr("likes_count + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (r *interactionRepository) UnlikeComment(ctx context.Context, userID, commentID uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND comment_id = ?", userID, commentID).
			Delete(&dbmysql.CommentLike{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotLiked
		}

		return tx.Model(&dbmysql.Comment{}).
			Where("id = ?", commentID).
			Update("likes_count", decrClamped("likes_count")).Error
	})
}

func (r *interactionRepository) LikedCommentIDs(ctx context.Context, userID uint64, commentIDs []uint64) ([]uint64, error) {
	if len(commentIDs) == 0 {
		return nil, nil
	}
	var ids []uint64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.CommentLike{}).
		Where("user_id = ? AND comment_id IN ?", userID, commentIDs).
		Pluck("comment_id", &ids).Error
	return ids, err
}
