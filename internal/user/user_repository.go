package user

import (
	"context"

	"gorm.io/gorm"

	"pixgram/internal/dbmysql"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *dbmysql.User) error
	GetUserByID(ctx context.Context, id uint64) (*dbmysql.User, error)
	GetUserByUsername(ctx context.Context, username string) (*dbmysql.User, error)
	GetUserByEmail(ctx context.Context, email string) (*dbmysql.User, error)
	UpdateUser(ctx context.Context, user *dbmysql.User) error
	UpdateProfilePicture(ctx context.Context, userID uint64, fileID string) error
	SearchUsers(ctx context.Context, query string, limit int) ([]dbmysql.User, error)
	PostsCount(ctx context.Context, userID uint64) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *dbmysql.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetUserByID(ctx context.Context, id uint64) (*dbmysql.User, error) {
	var user dbmysql.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (*dbmysql.User, error) {
	var user dbmysql.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*dbmysql.User, error) {
	var user dbmysql.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user *dbmysql.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) UpdateProfilePicture(ctx context.Context, userID uint64, fileID string) error {
	return r.db.WithContext(ctx).
		Model(&dbmysql.User{}).
		Where("id = ?", userID).
		Update("profile_picture", fileID).Error
}

func (r *userRepository) SearchUsers(ctx context.Context, query string, limit int) ([]dbmysql.User, error) {
	var users []dbmysql.User
	pattern := "%" + query + "%"
	err := r.db.WithContext(ctx).
		Where("username LIKE ? OR full_name LIKE ?", pattern, pattern).
		Order("username ASC").
		Limit(limit).
		Find(&users).Error
	return users, err
}

// PostsCount is computed on read; unlike the like/comment counters on posts
// it is never denormalized.
func (r *userRepository) PostsCount(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Post{}).
		Where("user_id = ? AND is_archived = ?", userID, false).
		Count(&count).Error
	return count, err
}
