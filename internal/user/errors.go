package user

import "errors"

var (
	ErrNotFound           = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrSelfFollow         = errors.New("cannot follow yourself")
	ErrAlreadyFollowing   = errors.New("already following this user")
	ErrNotFollowing       = errors.New("not following this user")
)
