package validation

import (
	"errors"
)

// ErrInvalidRating is the validation failure for review ratings.
var ErrInvalidRating = errors.New("rating must be an integer between 1 and 5")

// ValidateRating checks a review rating against the allowed 1..5 range.
func ValidateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return ErrInvalidRating
	}
	return nil
}
