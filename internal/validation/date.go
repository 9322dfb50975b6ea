package validation

import (
	"errors"
	"time"
)

// ValidateDate checks a calendar date in YYYY-MM-DD form, the format
// expense dates are stored and filtered in.
func ValidateDate(date string) error {
	if date == "" {
		return errors.New("date is required")
	}

	_, err := time.Parse("2006-01-02", date)
	if err != nil {
		return errors.New("invalid date, expected YYYY-MM-DD")
	}

	return nil
}
