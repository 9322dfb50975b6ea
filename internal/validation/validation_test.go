package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRating(t *testing.T) {
	for _, rating := range []int{1, 2, 3, 4, 5} {
		assert.NoError(t, ValidateRating(rating))
	}
	for _, rating := range []int{0, -1, 6, 100} {
		assert.ErrorIs(t, ValidateRating(rating), ErrInvalidRating)
	}
}

func TestValidateDate(t *testing.T) {
	assert.NoError(t, ValidateDate("2025-03-10"))
	assert.NoError(t, ValidateDate("2024-02-29"))

	assert.Error(t, ValidateDate(""))
	assert.Error(t, ValidateDate("10/03/2025"))
	assert.Error(t, ValidateDate("2025-13-01"))
	assert.Error(t, ValidateDate("2025-02-30"))
	assert.Error(t, ValidateDate("2025-3-1"))
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("alice@example.com"))

	assert.Error(t, ValidateEmail(""))
	assert.Error(t, ValidateEmail("not-an-email"))
	assert.Error(t, ValidateEmail("@example.com"))
}

func TestValidateUsername(t *testing.T) {
	assert.NoError(t, ValidateUsername("alice"))

	assert.Error(t, ValidateUsername(""))
	assert.Error(t, ValidateUsername("   "))

	long := make([]byte, 151)
	for i := range long {
		long[i] = 'a'
	}
	assert.Error(t, ValidateUsername(string(long)))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("correct-horse-battery"))

	assert.Error(t, ValidatePassword(""))
	assert.Error(t, ValidatePassword("short"))
}
