package post

import (
	"context"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"pixgram/internal/common"
	"pixgram/internal/dbmysql"
)

func newServiceWithMock(t *testing.T) (PostService, *MockPostRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	repo := NewMockPostRepository(ctrl)
	return NewPostService(repo), repo
}

func TestCreatePost(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, repo := newServiceWithMock(t)

		repo.EXPECT().CreatePost(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p *dbmysql.Post) error {
			require.Equal(t, uint64(1), p.UserID)
			require.Equal(t, "img-123.jpg", p.ImageURL)
			require.Equal(t, "img-123_thumb.jpg", p.ThumbnailURL)
			require.True(t, p.CommentsEnabled)
			p.ID = 42
			return nil
		})
		repo.EXPECT().GetPostByID(ctx, uint64(42)).Return(&FeedPost{
			Post:     dbmysql.Post{ID: 42, Caption: "sunset"},
			Username: "alice",
		}, nil)

		created, err := svc.CreatePost(ctx, 1, "img-123.jpg", "img-123_thumb.jpg", "sunset", "")
		require.NoError(t, err)
		require.Equal(t, uint64(42), created.ID)
		require.Equal(t, "alice", created.Username)
	})

	t.Run("caption too long", func(t *testing.T) {
		svc, _ := newServiceWithMock(t)

		_, err := svc.CreatePost(ctx, 1, "a.jpg", "b.jpg", strings.Repeat("x", 2201), "")
		require.True(t, common.IsValidationError(err))
	})
}

func TestGetPost(t *testing.T) {
	ctx := context.Background()

	t.Run("liked by viewer", func(t *testing.T) {
		svc, repo := newServiceWithMock(t)
		repo.EXPECT().GetPostByID(ctx, uint64(42)).Return(&FeedPost{Post: dbmysql.Post{ID: 42}}, nil)
		repo.EXPECT().LikedPostIDs(ctx, uint64(9), []uint64{42}).Return([]uint64{42}, nil)

		p, err := svc.GetPost(ctx, 9, 42)
		require.NoError(t, err)
		require.True(t, p.IsLiked)
	})

	t.Run("anonymous viewer skips liked lookup", func(t *testing.T) {
		svc, repo := newServiceWithMock(t)
		repo.EXPECT().GetPostByID(ctx, uint64(42)).Return(&FeedPost{Post: dbmysql.Post{ID: 42}}, nil)

		p, err := svc.GetPost(ctx, 0, 42)
		require.NoError(t, err)
		require.False(t, p.IsLiked)
	})

	t.Run("not found", func(t *testing.T) {
		svc, repo := newServiceWithMock(t)
		repo.EXPECT().GetPostByID(ctx, uint64(42)).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.GetPost(ctx, 0, 42)
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestGetFeed_MarksLikedInOneBatch(t *testing.T) {
	svc, repo := newServiceWithMock(t)
	ctx := context.Background()

	repo.EXPECT().GetFeed(ctx, uint64(9), 20, 0).Return([]FeedPost{
		{Post: dbmysql.Post{ID: 1}},
		{Post: dbmysql.Post{ID: 2}},
		{Post: dbmysql.Post{ID: 3}},
	}, nil)
	repo.EXPECT().LikedPostIDs(ctx, uint64(9), []uint64{1, 2, 3}).Return([]uint64{2}, nil)

	feed, err := svc.GetFeed(ctx, 9, 0, -1)
	require.NoError(t, err)
	require.False(t, feed[0].IsLiked)
	require.True(t, feed[1].IsLiked)
	require.False(t, feed[2].IsLiked)
}

func TestOwnerScopedServiceMutations(t *testing.T) {
	ctx := context.Background()

	t.Run("archive not owner", func(t *testing.T) {
		svc, repo := newServiceWithMock(t)
		repo.EXPECT().Archive(ctx, uint64(42), uint64(9)).Return(int64(0), nil)
		require.ErrorIs(t, svc.ArchivePost(ctx, 42, 9), ErrNotFound)
	})

	t.Run("update caption ok", func(t *testing.T) {
		svc, repo := newServiceWithMock(t)
		repo.EXPECT().UpdateCaption(ctx, uint64(42), uint64(1), "new").Return(int64(1), nil)
		require.NoError(t, svc.UpdateCaption(ctx, 42, 1, "new"))
	})

	t.Run("toggle comments not owner", func(t *testing.T) {
		svc, repo := newServiceWithMock(t)
		repo.EXPECT().ToggleComments(ctx, uint64(42), uint64(9)).Return(int64(0), nil)
		require.ErrorIs(t, svc.ToggleComments(ctx, 42, 9), ErrNotFound)
	})
}

func TestSearchPosts_EmptyQueryShortCircuits(t *testing.T) {
	svc, _ := newServiceWithMock(t)

	posts, err := svc.SearchPosts(context.Background(), "   ", 20)
	require.NoError(t, err)
	require.Empty(t, posts)
}
