package user

import (
	"context"
	"testing"

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

func TestFollowGraph(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	carol := seedUser(t, db, "carol")

	require.NoError(t, repo.CreateFollow(ctx, alice.ID, bob.ID))
	require.NoError(t, repo.CreateFollow(ctx, carol.ID, bob.ID))
	require.NoError(t, repo.CreateFollow(ctx, bob.ID, alice.ID))

	// the composite unique index rejects a duplicate edge
	require.ErrorIs(t, repo.CreateFollow(ctx, alice.ID, bob.ID), gorm.ErrDuplicatedKey)

	// the edge is directed: alice→bob does not imply bob→alice is doubled
	following, err := repo.IsFollowing(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	require.True(t, following)
	following, err = repo.IsFollowing(ctx, alice.ID, carol.ID)
	require.NoError(t, err)
	require.False(t, following)

	followers, err := repo.FollowersCount(ctx, bob.ID)
	require.NoError(t, err)
	require.Equal(t, int64(2), followers)

	followingCount, err := repo.FollowingCount(ctx, bob.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), followingCount)

	deleted, err := repo.DeleteFollow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), deleted)

	deleted, err = repo.DeleteFollow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	require.Zero(t, deleted)

	followers, err = repo.FollowersCount(ctx, bob.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), followers)
}

func TestUserRepository(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")

	t.Run("lookups", func(t *testing.T) {
		byID, err := repo.GetUserByID(ctx, alice.ID)
		require.NoError(t, err)
		require.Equal(t, "alice", byID.Username)

		byName, err := repo.GetUserByUsername(ctx, "alice")
		require.NoError(t, err)
		require.Equal(t, alice.ID, byName.ID)

		byEmail, err := repo.GetUserByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		require.Equal(t, alice.ID, byEmail.ID)

		_, err = repo.GetUserByUsername(ctx, "ghost")
		require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("unique username and email", func(t *testing.T) {
		err := repo.CreateUser(ctx, &dbmysql.User{Username: "alice", Email: "other@example.com", PasswordHash: "x"})
		require.ErrorIs(t, err, gorm.ErrDuplicatedKey)

		err = repo.CreateUser(ctx, &dbmysql.User{Username: "other", Email: "alice@example.com", PasswordHash: "x"})
		require.ErrorIs(t, err, gorm.ErrDuplicatedKey)
	})

	t.Run("search matches username and full name", func(t *testing.T) {
		bob := seedUser(t, db, "bob")
		require.NoError(t, db.Model(bob).Update("full_name", "Alice Cooper").Error)

		users, err := repo.SearchUsers(ctx, "alice", 10)
		require.NoError(t, err)
		require.Len(t, users, 2)
		// ordered by username
		require.Equal(t, "alice", users[0].Username)
		require.Equal(t, "bob", users[1].Username)
	})

	t.Run("posts count skips archived", func(t *testing.T) {
		require.NoError(t, db.Create(&dbmysql.Post{UserID: alice.ID, ImageURL: "a.jpg"}).Error)
		require.NoError(t, db.Create(&dbmysql.Post{UserID: alice.ID, ImageURL: "b.jpg", IsArchived: true}).Error)

		count, err := repo.PostsCount(ctx, alice.ID)
		require.NoError(t, err)
		require.Equal(t, int64(1), count)
	})

	t.Run("profile picture update", func(t *testing.T) {
		require.NoError(t, repo.UpdateProfilePicture(ctx, alice.ID, "avatar-123_thumb.jpg"))

		got, err := repo.GetUserByID(ctx, alice.ID)
		require.NoError(t, err)
		require.Equal(t, "avatar-123_thumb.jpg", got.ProfilePicture)
	})
}
