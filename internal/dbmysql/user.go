package dbmysql

import (
	"time"
)

type User struct {
	ID             uint64    `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	Username       string    `gorm:"column:username;uniqueIndex;size:30;not null" json:"username"`
	Email          string    `gorm:"column:email;uniqueIndex;size:255;not null" json:"email"`
	PasswordHash   string    `gorm:"column:password_hash;size:255;not null" json:"-"`
	FullName       string    `gorm:"column:full_name;size:100" json:"full_name"`
	Bio            string    `gorm:"column:bio;type:text" json:"bio"`
	Website        string    `gorm:"column:website;size:255" json:"website"`
	Phone          string    `gorm:"column:phone;size:20" json:"phone"`
	Gender         string    `gorm:"column:gender;size:20" json:"gender"`
	ProfilePicture string    `gorm:"column:profile_picture;size:255" json:"profile_picture"`
	IsPrivate      bool      `gorm:"column:is_private;default:false" json:"is_private"`
	IsVerified     bool      `gorm:"column:is_verified;default:false" json:"is_verified"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string { return "users" }
