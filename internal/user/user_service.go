package user

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"pixgram/internal/common"
	"pixgram/internal/dbmysql"
)

type UserService interface {
	Register(ctx context.Context, username, email, password, fullName string) (*dbmysql.User, string, error)
	Login(ctx context.Context, login, password string) (*dbmysql.User, string, error)
	GetProfile(ctx context.Context, viewerID, userID uint64) (*Profile, error)
	UpdateProfile(ctx context.Context, userID uint64, update ProfileUpdate) (*dbmysql.User, error)
	UpdateAvatar(ctx context.Context, userID uint64, fileID string) error
	Follow(ctx context.Context, followerID, followingID uint64) error
	Unfollow(ctx context.Context, followerID, followingID uint64) error
	SearchUsers(ctx context.Context, query string, limit int) ([]dbmysql.User, error)
}

// Profile is a user plus the read-time computed graph counts.
type Profile struct {
	dbmysql.User
	FollowersCount int64 `json:"followers_count"`
	FollowingCount int64 `json:"following_count"`
	PostsCount     int64 `json:"posts_count"`
	IsFollowing    bool  `json:"is_following"`
	IsOwnProfile   bool  `json:"is_own_profile"`
}

// ProfileUpdate carries the mutable profile fields; nil means unchanged.
type ProfileUpdate struct {
	FullName  *string `json:"full_name"`
	Bio       *string `json:"bio"`
	Website   *string `json:"website"`
	Phone     *string `json:"phone"`
	Gender    *string `json:"gender"`
	IsPrivate *bool   `json:"is_private"`
}

type userService struct {
	userRepo   UserRepository
	followRepo FollowRepository
}

func NewUserService(userRepo UserRepository, followRepo FollowRepository) UserService {
	return &userService{userRepo: userRepo, followRepo: followRepo}
}

func (s *userService) Register(ctx context.Context, username, email, password, fullName string) (*dbmysql.User, string, error) {
	if err := common.ValidateUsername(username); err != nil {
		return nil, "", err
	}
	if err := common.ValidateEmail(email); err != nil {
		return nil, "", err
	}
	if err := common.ValidatePassword(password); err != nil {
		return nil, "", err
	}

	// duplicate checks; the unique indexes remain the final arbiter
	if _, err := s.userRepo.GetUserByUsername(ctx, username); err == nil {
		return nil, "", ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}
	if _, err := s.userRepo.GetUserByEmail(ctx, email); err == nil {
		return nil, "", ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	hashed, err := common.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	u := &dbmysql.User{
		Username:     strings.TrimSpace(username),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: hashed,
		FullName:     fullName,
	}

	if err := s.userRepo.CreateUser(ctx, u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", ErrUsernameTaken
		}
		return nil, "", err
	}

	token, err := common.GenerateToken(u.ID, u.Username)
	if err != nil {
		return nil, "", err
	}

	return u, token, nil
}

// Login accepts either a username or an email.
func (s *userService) Login(ctx context.Context, login, password string) (*dbmysql.User, string, error) {
	if login == "" || password == "" {
		return nil, "", ErrInvalidCredentials
	}

	u, err := s.userRepo.GetUserByUsername(ctx, login)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		u, err = s.userRepo.GetUserByEmail(ctx, strings.ToLower(login))
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := common.CheckPassword(password, u.PasswordHash); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := common.GenerateToken(u.ID, u.Username)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// GetProfile works for anonymous viewers too; viewerID zero means no session.
func (s *userService) GetProfile(ctx context.Context, viewerID, userID uint64) (*Profile, error) {
	u, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	followers, err := s.followRepo.FollowersCount(ctx, userID)
	if err != nil {
		return nil, err
	}
	following, err := s.followRepo.FollowingCount(ctx, userID)
	if err != nil {
		return nil, err
	}
	posts, err := s.userRepo.PostsCount(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile := &Profile{
		User:           *u,
		FollowersCount: followers,
		FollowingCount: following,
		PostsCount:     posts,
	}

	if viewerID != 0 {
		profile.IsOwnProfile = viewerID == userID
		if !profile.IsOwnProfile {
			isFollowing, err := s.followRepo.IsFollowing(ctx, viewerID, userID)
			if err != nil {
				return nil, err
			}
			profile.IsFollowing = isFollowing
		}
	}

	return profile, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID uint64, update ProfileUpdate) (*dbmysql.User, error) {
	u, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if update.FullName != nil {
		u.FullName = *update.FullName
	}
	if update.Bio != nil {
		u.Bio = *update.Bio
	}
	if update.Website != nil {
		u.Website = *update.Website
	}
	if update.Phone != nil {
		u.Phone = *update.Phone
	}
	if update.Gender != nil {
		u.Gender = *update.Gender
	}
	if update.IsPrivate != nil {
		u.IsPrivate = *update.IsPrivate
	}

	if err := s.userRepo.UpdateUser(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *userService) UpdateAvatar(ctx context.Context, userID uint64, fileID string) error {
	return s.userRepo.UpdateProfilePicture(ctx, userID, fileID)
}

// Follow rejects self-follow before touching storage; the unique edge index
// is the arbiter for duplicates under concurrent calls.
func (s *userService) Follow(ctx context.Context, followerID, followingID uint64) error {
	if followerID == followingID {
		return ErrSelfFollow
	}

	if _, err := s.userRepo.GetUserByID(ctx, followingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := s.followRepo.CreateFollow(ctx, followerID, followingID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyFollowing
		}
		return err
	}
	return nil
}

func (s *userService) Unfollow(ctx context.Context, followerID, followingID uint64) error {
	if followerID == followingID {
		return ErrSelfFollow
	}

	deleted, err := s.followRepo.DeleteFollow(ctx, followerID, followingID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrNotFollowing
	}
	return nil
}

func (s *userService) SearchUsers(ctx context.Context, query string, limit int) ([]dbmysql.User, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []dbmysql.User{}, nil
	}
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	return s.userRepo.SearchUsers(ctx, query, limit)
}
