package interaction

import (
	"context"

	"pixgram/internal/common"
	"pixgram/internal/dbmysql"
)

type InteractionService interface {
	LikePost(ctx context.Context, userID, postID uint64) error
	UnlikePost(ctx context.Context, userID, postID uint64) error
	GetPostLikes(ctx context.Context, postID uint64, limit, offset int) ([]LikeView, error)

	CreateComment(ctx context.Context, userID, postID uint64, content string, parentID *uint64) (*CommentView, error)
	UpdateComment(ctx context.Context, commentID, userID uint64, content string) (*CommentView, error)
	DeleteComment(ctx context.Context, commentID, userID uint64) error
	GetPostComments(ctx context.Context, viewerID, postID uint64, limit, offset int) ([]CommentView, error)

	LikeComment(ctx context.Context, userID, commentID uint64) error
	UnlikeComment(ctx context.Context, userID, commentID uint64) error
}

type interactionService struct {
	repo InteractionRepository
}

func NewInteractionService(repo InteractionRepository) InteractionService {
	return &interactionService{repo: repo}
}

func (s *interactionService) LikePost(ctx context.Context, userID, postID uint64) error {
	return s.repo.LikePost(ctx, userID, postID)
}

func (s *interactionService) UnlikePost(ctx context.Context, userID, postID uint64) error {
	return s.repo.UnlikePost(ctx, userID, postID)
}

func (s *interactionService) GetPostLikes(ctx context.Context, postID uint64, limit, offset int) ([]LikeView, error) {
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.ListPostLikes(ctx, postID, limit, offset)
}

func (s *interactionService) CreateComment(ctx context.Context, userID, postID uint64, content string, parentID *uint64) (*CommentView, error) {
	if err := common.ValidateCommentContent(content); err != nil {
		return nil, err
	}

	comment := &dbmysql.Comment{
		PostID:   postID,
		UserID:   userID,
		ParentID: parentID,
		Content:  content,
	}
	if err := s.repo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	return s.repo.GetCommentByID(ctx, comment.ID)
}

func (s *interactionService) UpdateComment(ctx context.Context, commentID, userID uint64, content string) (*CommentView, error) {
	if err := common.ValidateCommentContent(content); err != nil {
		return nil, err
	}

	rows, err := s.repo.UpdateComment(ctx, commentID, userID, content)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		// the query is owner-scoped; zero rows means missing or not ours
		return nil, ErrNotOwner
	}

	return s.repo.GetCommentByID(ctx, commentID)
}

func (s *interactionService) DeleteComment(ctx context.Context, commentID, userID uint64) error {
	return s.repo.DeleteComment(ctx, commentID, userID)
}

func (s *interactionService) GetPostComments(ctx context.Context, viewerID, postID uint64, limit, offset int) ([]CommentView, error) {
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	comments, err := s.repo.ListPostComments(ctx, postID, limit, offset)
	if err != nil {
		return nil, err
	}
	if viewerID == 0 || len(comments) == 0 {
		return comments, nil
	}

	var ids []uint64
	for _, c := range comments {
		ids = append(ids, c.ID)
		for _, reply := range c.Replies {
			ids = append(ids, reply.ID)
		}
	}

	liked, err := s.repo.LikedCommentIDs(ctx, viewerID, ids)
	if err != nil {
		return nil, err
	}
	likedSet := make(map[uint64]bool, len(liked))
	for _, id := range liked {
		likedSet[id] = true
	}

	for i := range comments {
		comments[i].IsLiked = likedSet[comments[i].ID]
		for j := range comments[i].Replies {
			comments[i].Replies[j].IsLiked = likedSet[comments[i].Replies[j].ID]
		}
	}

	return comments, nil
}

func (s *interactionService) LikeComment(ctx context.Context, userID, commentID uint64) error {
	return s.repo.LikeComment(ctx, userID, commentID)
}

func (s *interactionService) UnlikeComment(ctx context.Context, userID, commentID uint64) error {
	return s.repo.UnlikeComment(ctx, userID, commentID)
}
