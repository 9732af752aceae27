package interaction

import (
	"context"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"pixgram/internal/common"
	"pixgram/internal/dbmysql"
)

func newServiceWithMock(t *testing.T) (InteractionService, *MockInteractionRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	repo := NewMockInteractionRepository(ctrl)
	return NewInteractionService(repo), repo
}

func TestCreateComment_Validation(t *testing.T) {
	svc, _ := newServiceWithMock(t)
	ctx := context.Background()

	_, err := svc.CreateComment(ctx, 1, 2, "", nil)
	require.True(t, common.IsValidationError(err))

	_, err = svc.CreateComment(ctx, 1, 2, strings.Repeat("x", 501), nil)
	require.True(t, common.IsValidationError(err))
}

func TestCreateComment_ReturnsHydratedView(t *testing.T) {
	svc, repo := newServiceWithMock(t)
	ctx := context.Background()

	repo.EXPECT().CreateComment(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, c *dbmysql.Comment) error {
		require.Equal(t, uint64(2), c.PostID)
		require.Equal(t, uint64(1), c.UserID)
		require.Nil(t, c.ParentID)
		c.ID = 11
		return nil
	})
	repo.EXPECT().GetCommentByID(ctx, uint64(11)).Return(&CommentView{
		Comment:  dbmysql.Comment{ID: 11, Content: "hello"},
		Username: "alice",
	}, nil)

	view, err := svc.CreateComment(ctx, 1, 2, "hello", nil)
	require.NoError(t, err)
	require.Equal(t, uint64(11), view.ID)
	require.Equal(t, "alice", view.Username)
}

func TestUpdateComment_OwnerScoped(t *testing.T) {
	svc, repo := newServiceWithMock(t)
	ctx := context.Background()

	repo.EXPECT().UpdateComment(ctx, uint64(11), uint64(1), "edited").Return(int64(0), nil)

	_, err := svc.UpdateComment(ctx, 11, 1, "edited")
	require.ErrorIs(t, err, ErrNotOwner)
}

func TestGetPostComments_MarksLikedRepliesIncluded(t *testing.T) {
	svc, repo := newServiceWithMock(t)
	ctx := context.Background()

	parentID := uint64(1)
	repo.EXPECT().ListPostComments(ctx, uint64(7), 20, 0).Return([]CommentView{
		{
			Comment: dbmysql.Comment{ID: 1},
			Replies: []CommentView{
				{Comment: dbmysql.Comment{ID: 2, ParentID: &parentID}},
				{Comment: dbmysql.Comment{ID: 3, ParentID: &parentID}},
			},
		},
		{Comment: dbmysql.Comment{ID: 4}},
	}, nil)
	repo.EXPECT().LikedCommentIDs(ctx, uint64(9), []uint64{1, 2, 3, 4}).Return([]uint64{3, 4}, nil)

	comments, err := svc.GetPostComments(ctx, 9, 7, 0, -1)
	require.NoError(t, err)
	require.False(t, comments[0].IsLiked)
	require.False(t, comments[0].Replies[0].IsLiked)
	require.True(t, comments[0].Replies[1].IsLiked)
	require.True(t, comments[1].IsLiked)
}

func TestGetPostComments_AnonymousSkipsLikedLookup(t *testing.T) {
	svc, repo := newServiceWithMock(t)
	ctx := context.Background()

	repo.EXPECT().ListPostComments(ctx, uint64(7), 20, 0).Return([]CommentView{
		{Comment: dbmysql.Comment{ID: 1}},
	}, nil)

	comments, err := svc.GetPostComments(ctx, 0, 7, 20, 0)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	require.False(t, comments[0].IsLiked)
}

func TestGetPostLikes_ClampsPaging(t *testing.T) {
	svc, repo := newServiceWithMock(t)
	ctx := context.Background()

	repo.EXPECT().ListPostLikes(ctx, uint64(7), 20, 0).Return([]LikeView{}, nil)

	_, err := svc.GetPostLikes(ctx, 7, 999, -5)
	require.NoError(t, err)
}
