package interaction

import "errors"

var (
	ErrAlreadyLiked   = errors.New("already liked")
	ErrNotLiked       = errors.New("not liked")
	ErrPostNotFound   = errors.New("post not found")
	ErrNotFound       = errors.New("comment not found")
	ErrNotOwner       = errors.New("not the comment owner")
	ErrInvalidParent  = errors.New("parent comment does not belong to this post")
)
