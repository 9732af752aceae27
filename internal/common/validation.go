package common

import (
	"errors"
	"regexp"
	"strings"
)

// ValidationError marks bad-input failures so handlers can report them with
// a 400 and a field message instead of a generic storage failure.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func NewValidationError(msg string) error { return &ValidationError{msg: msg} }

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

var (
	emailRegex    = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_.]+$`)
)

func ValidateUsername(username string) error {
	username = strings.TrimSpace(username)
	if len(username) < 3 || len(username) > 30 {
		return NewValidationError("username must be between 3 and 30 characters")
	}

	if !usernameRegex.MatchString(username) {
		return NewValidationError("username can only contain letters, numbers, dots and underscores")
	}

	return nil
}

func ValidatePassword(password string) error {
	if len(password) < 6 {
		return NewValidationError("password must be at least 6 characters long")
	}

	if len(password) > 100 {
		return NewValidationError("password is too long")
	}

	return nil
}

func ValidateEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailRegex.MatchString(email) {
		return NewValidationError("invalid email format")
	}

	return nil
}

func ValidateCommentContent(content string) error {
	if len(strings.TrimSpace(content)) < 1 {
		return NewValidationError("content is required")
	}
	if len(content) > 500 {
		return NewValidationError("content must be at most 500 characters")
	}
	return nil
}

func ValidateCaption(caption string) error {
	if len(caption) > 2200 {
		return NewValidationError("caption must be at most 2200 characters")
	}
	return nil
}
