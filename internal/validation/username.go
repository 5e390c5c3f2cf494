package validation

import (
	"errors"
	"fmt"
	"regexp"
	"unicode"
)

// Ограничения для родительского аккаунта
const (
	MinUsernameLen = 3
	MaxUsernameLen = 32
	MinPasswordLen = 8
)

// usernamePattern латиница, цифры, точка, дефис и подчеркивание
var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

var (
	// ErrInvalidUsername wraps every username rule violation
	ErrInvalidUsername = errors.New("invalid username")
	// ErrWeakPassword wraps every password rule violation
	ErrWeakPassword = errors.New("weak password")
)

// ValidateUsername checks the parent account name used to sign in on a device.
func ValidateUsername(username string) error {
	switch {
	case username == "":
		return fmt.Errorf("%w: must not be empty", ErrInvalidUsername)
	case len(username) < MinUsernameLen:
		return fmt.Errorf("%w: must be at least %d characters long", ErrInvalidUsername, MinUsernameLen)
	case len(username) > MaxUsernameLen:
		return fmt.Errorf("%w: must not exceed %d characters", ErrInvalidUsername, MaxUsernameLen)
	case !usernamePattern.MatchString(username):
		return fmt.Errorf("%w: only letters, digits, '.', '-' and '_' are allowed", ErrInvalidUsername)
	}
	return nil
}

// ValidatePassword requires at least MinPasswordLen characters with one letter and one digit.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLen {
		return fmt.Errorf("%w: must be at least %d characters long", ErrWeakPassword, MinPasswordLen)
	}

	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return fmt.Errorf("%w: must contain letters and digits", ErrWeakPassword)
	}

	return nil
}
