package validation

import (
	"errors"
	"strings"
)

// ValidateUsername checks display-name requirements at registration.
func ValidateUsername(username string) error {
	trimmed := strings.TrimSpace(username)

	if trimmed == "" {
		return errors.New("username is required")
	}

	if len(trimmed) > 150 {
		return errors.New("username is too long (max 150 characters)")
	}

	return nil
}
