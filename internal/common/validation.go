package common

import (
	"regexp"
	"strings"
)

var (
	emailRegex    = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
)

const maxBioLength = 160

func ValidateUsername(username string) error {
	username = strings.TrimSpace(username)
	if len(username) < 3 || len(username) > 50 {
		return NewValidationError("username must be between 3 and 50 characters")
	}

	if !usernameRegex.MatchString(username) {
		return NewValidationError("username can only contain letters, numbers, and underscores")
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
	if email == "" {
		return nil
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if !emailRegex.MatchString(email) {
		return NewValidationError("invalid email format")
	}

	return nil
}

// ValidateContent rejects post and comment bodies that are empty after
// trimming. The label names the field in the user-facing message.
func ValidateContent(label, content string) error {
	if strings.TrimSpace(content) == "" {
		return NewValidationError("%s cannot be empty", label)
	}
	return nil
}

func ValidateBio(bio string) error {
	if len(bio) > maxBioLength {
		return NewValidationError("bio must be at most %d characters", maxBioLength)
	}
	return nil
}
