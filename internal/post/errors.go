package post

import "errors"

var (
	// ErrNotFound covers both a missing post and an ownership mismatch:
	// owner-scoped updates that touch zero rows are indistinguishable from
	// a missing row at the query level, and are reported the same way.
	ErrNotFound = errors.New("post not found")
)
