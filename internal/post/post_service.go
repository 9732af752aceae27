package post

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"pixgram/internal/common"
	"pixgram/internal/dbmysql"
)

type PostService interface {
	CreatePost(ctx context.Context, userID uint64, imageID, thumbnailID, caption, location string) (*FeedPost, error)
	GetPost(ctx context.Context, viewerID, postID uint64) (*FeedPost, error)
	GetUserPosts(ctx context.Context, viewerID, userID uint64, limit, offset int) ([]FeedPost, error)
	GetFeed(ctx context.Context, userID uint64, limit, offset int) ([]FeedPost, error)
	GetExplorePosts(ctx context.Context, userID uint64, limit int) ([]FeedPost, error)
	SearchPosts(ctx context.Context, query string, limit int) ([]FeedPost, error)
	UpdateCaption(ctx context.Context, postID, userID uint64, caption string) error
	ArchivePost(ctx context.Context, postID, userID uint64) error
	ToggleComments(ctx context.Context, postID, userID uint64) error
}

type postService struct {
	repo PostRepository
}

func NewPostService(repo PostRepository) PostService {
	return &postService{repo: repo}
}

func clampPage(limit, offset int, def, max int) (int, int) {
	if limit <= 0 || limit > max {
		limit = def
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func (s *postService) CreatePost(ctx context.Context, userID uint64, imageID, thumbnailID, caption, location string) (*FeedPost, error) {
	if err := common.ValidateCaption(caption); err != nil {
		return nil, err
	}

	p := &dbmysql.Post{
		UserID:          userID,
		ImageURL:        imageID,
		ThumbnailURL:    thumbnailID,
		Caption:         caption,
		Location:        location,
		CommentsEnabled: true,
	}
	if err := s.repo.CreatePost(ctx, p); err != nil {
		return nil, err
	}

	return s.repo.GetPostByID(ctx, p.ID)
}

func (s *postService) GetPost(ctx context.Context, viewerID, postID uint64) (*FeedPost, error) {
	p, err := s.repo.GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if viewerID != 0 {
		liked, err := s.repo.LikedPostIDs(ctx, viewerID, []uint64{p.ID})
		if err != nil {
			return nil, err
		}
		p.IsLiked = len(liked) > 0
	}
	return p, nil
}

func (s *postService) GetUserPosts(ctx context.Context, viewerID, userID uint64, limit, offset int) ([]FeedPost, error) {
	limit, offset = clampPage(limit, offset, 12, 50)
	posts, err := s.repo.ListUserPosts(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	return s.markLiked(ctx, viewerID, posts)
}

func (s *postService) GetFeed(ctx context.Context, userID uint64, limit, offset int) ([]FeedPost, error) {
	limit, offset = clampPage(limit, offset, 20, 50)
	posts, err := s.repo.GetFeed(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	return s.markLiked(ctx, userID, posts)
}

func (s *postService) GetExplorePosts(ctx context.Context, userID uint64, limit int) ([]FeedPost, error) {
	if limit <= 0 || limit > 50 {
		limit = 30
	}
	posts, err := s.repo.GetExplorePosts(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	return s.markLiked(ctx, userID, posts)
}

func (s *postService) SearchPosts(ctx context.Context, query string, limit int) ([]FeedPost, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []FeedPost{}, nil
	}
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	return s.repo.SearchPosts(ctx, query, limit)
}

func (s *postService) UpdateCaption(ctx context.Context, postID, userID uint64, caption string) error {
	if err := common.ValidateCaption(caption); err != nil {
		return err
	}
	return s.ownerScoped(s.repo.UpdateCaption(ctx, postID, userID, caption))
}

func (s *postService) ArchivePost(ctx context.Context, postID, userID uint64) error {
	return s.ownerScoped(s.repo.Archive(ctx, postID, userID))
}

func (s *postService) ToggleComments(ctx context.Context, postID, userID uint64) error {
	return s.ownerScoped(s.repo.ToggleComments(ctx, postID, userID))
}

func (s *postService) ownerScoped(rows int64, err error) error {
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// markLiked sets IsLiked for every returned post with one batch query.
func (s *postService) markLiked(ctx context.Context, viewerID uint64, posts []FeedPost) ([]FeedPost, error) {
	if viewerID == 0 || len(posts) == 0 {
		return posts, nil
	}

	ids := make([]uint64, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}

	liked, err := s.repo.LikedPostIDs(ctx, viewerID, ids)
	if err != nil {
		return nil, err
	}

	likedSet := make(map[uint64]bool, len(liked))
	for _, id := range liked {
		likedSet[id] = true
	}
	for i := range posts {
		posts[i].IsLiked = likedSet[posts[i].ID]
	}
	return posts, nil
}
