package post

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"pixgram/internal/dbmysql"
	"pixgram/internal/testutil"
)

func seedUser(t *testing.T, db *gorm.DB, username string) *dbmysql.User {
	t.Helper()
	u := &dbmysql.User{Username: username, Email: username + "@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedPostAt(t *testing.T, db *gorm.DB, userID uint64, caption string, createdAt time.Time) *dbmysql.Post {
	t.Helper()
	p := &dbmysql.Post{
		UserID:          userID,
		ImageURL:        "img.jpg",
		Caption:         caption,
		CommentsEnabled: true,
		CreatedAt:       createdAt,
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func follow(t *testing.T, db *gorm.DB, followerID, followingID uint64) {
	t.Helper()
	require.NoError(t, db.Create(&dbmysql.Follower{FollowerID: followerID, FollowingID: followingID}).Error)
}

func captions(posts []FeedPost) []string {
	out := make([]string, len(posts))
	for i, p := range posts {
		out[i] = p.Caption
	}
	return out
}

func TestGetFeed_SelfAndFolloweesOnly(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	carol := seedUser(t, db, "carol")
	follow(t, db, alice.ID, bob.ID)

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	seedPostAt(t, db, alice.ID, "mine", base)
	seedPostAt(t, db, bob.ID, "from bob", base.Add(time.Hour))
	seedPostAt(t, db, carol.ID, "from carol", base.Add(2*time.Hour))

	feed, err := repo.GetFeed(ctx, alice.ID, 20, 0)
	require.NoError(t, err)
	require.Equal(t, []string{"from bob", "mine"}, captions(feed))
	require.Equal(t, "bob", feed[0].Username)
	require.Equal(t, "alice", feed[1].Username)
}

func TestGetFeed_ExcludesArchivedAndPaginates(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	follow(t, db, alice.ID, bob.ID)

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		seedPostAt(t, db, bob.ID, string(rune('a'+i)), base.Add(time.Duration(i)*time.Minute))
	}
	archived := seedPostAt(t, db, bob.ID, "hidden", base.Add(time.Hour))
	require.NoError(t, db.Model(archived).Update("is_archived", true).Error)

	page1, err := repo.GetFeed(ctx, alice.ID, 2, 0)
	require.NoError(t, err)
	require.Equal(t, []string{"e", "d"}, captions(page1))

	page2, err := repo.GetFeed(ctx, alice.ID, 2, 2)
	require.NoError(t, err)
	require.Equal(t, []string{"c", "b"}, captions(page2))

	all, err := repo.GetFeed(ctx, alice.ID, 20, 0)
	require.NoError(t, err)
	require.Len(t, all, 5)
	require.NotContains(t, captions(all), "hidden")
}

func TestGetExplorePosts_ExcludesSelfAndFollowees(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	carol := seedUser(t, db, "carol")
	dave := seedUser(t, db, "dave")
	follow(t, db, alice.ID, bob.ID)

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	seedPostAt(t, db, alice.ID, "mine", base)
	seedPostAt(t, db, bob.ID, "followee", base)
	popular := seedPostAt(t, db, carol.ID, "popular", base)
	require.NoError(t, db.Model(popular).Update("likes_count", 10).Error)
	seedPostAt(t, db, dave.ID, "quiet", base.Add(time.Hour))

	explore, err := repo.GetExplorePosts(ctx, alice.ID, 20)
	require.NoError(t, err)
	// popularity first, never self or followed authors
	require.Equal(t, []string{"popular", "quiet"}, captions(explore))
}

func TestSearchPosts_MatchesCaptionAndLocation(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	seedPostAt(t, db, alice.ID, "sunset at the beach", base)
	p := seedPostAt(t, db, alice.ID, "city lights", base)
	require.NoError(t, db.Model(p).Update("location", "Beachside").Error)
	seedPostAt(t, db, alice.ID, "mountains", base)

	results, err := repo.SearchPosts(ctx, "beach", 20)
	require.NoError(t, err)
	require.Len(t, results, 2)
}

func TestOwnerScopedMutations(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	p := seedPostAt(t, db, alice.ID, "original", base)

	rows, err := repo.UpdateCaption(ctx, p.ID, bob.ID, "stolen")
	require.NoError(t, err)
	require.Zero(t, rows)

	rows, err = repo.UpdateCaption(ctx, p.ID, alice.ID, "edited")
	require.NoError(t, err)
	require.Equal(t, int64(1), rows)

	rows, err = repo.ToggleComments(ctx, p.ID, alice.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), rows)

	var got dbmysql.Post
	require.NoError(t, db.Take(&got, "id = ?", p.ID).Error)
	require.Equal(t, "edited", got.Caption)
	require.False(t, got.CommentsEnabled)

	rows, err = repo.Archive(ctx, p.ID, alice.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), rows)

	_, err = repo.GetPostByID(ctx, p.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestLikedPostIDs_Batch(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	p1 := seedPostAt(t, db, alice.ID, "one", base)
	p2 := seedPostAt(t, db, alice.ID, "two", base)
	p3 := seedPostAt(t, db, alice.ID, "three", base)

	require.NoError(t, db.Create(&dbmysql.Like{UserID: alice.ID, PostID: p1.ID}).Error)
	require.NoError(t, db.Create(&dbmysql.Like{UserID: alice.ID, PostID: p3.ID}).Error)

	ids, err := repo.LikedPostIDs(ctx, alice.ID, []uint64{p1.ID, p2.ID, p3.ID})
	require.NoError(t, err)
	require.ElementsMatch(t, []uint64{p1.ID, p3.ID}, ids)

	ids, err = repo.LikedPostIDs(ctx, alice.ID, nil)
	require.NoError(t, err)
	require.Empty(t, ids)
}

// End-to-end over real storage: follow, post, read the feed, like, double
// like, unlike — the counter visible in the feed tracks every step.
func TestFeedAndLikesEndToEnd(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	follow(t, db, alice.ID, bob.ID)

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	p := seedPostAt(t, db, bob.ID, "hello world", base)

	feed, err := repo.GetFeed(ctx, alice.ID, 20, 0)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	require.Equal(t, int64(0), feed[0].LikesCount)

	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&dbmysql.Like{UserID: alice.ID, PostID: p.ID}).Error; err != nil {
			return err
		}
		return tx.Model(&dbmysql.Post{}).Where("id = ?", p.ID).
			Update("likes_count", gorm.Expr("likes_count + 1")).Error
	}))

	feed, err = repo.GetFeed(ctx, alice.ID, 20, 0)
	require.NoError(t, err)
	require.Equal(t, int64(1), feed[0].LikesCount)

	// the unique index rejects a second like for the same pair
	err = db.Create(&dbmysql.Like{UserID: alice.ID, PostID: p.ID}).Error
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	feed, err = repo.GetFeed(ctx, alice.ID, 20, 0)
	require.NoError(t, err)
	require.Equal(t, int64(1), feed[0].LikesCount)
}
